package history

import (
	"fmt"

	"github.com/spf13/cobra"

	"vindecoder/internal/app/client"
)

// HistoryCmd - родительская команда для истории поиска
var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Недавние поиски",
	Long:  `Просмотр последних 10 декодированных VIN и повторный поиск по ним.`,
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := client.FromContext(cmd.Context())
	if !ok {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

func asJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}
