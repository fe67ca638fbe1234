// cmd/vindecoder/cmd/history/list.go
package history

import (
	"github.com/spf13/cobra"

	"vindecoder/internal/view"
)

var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Список недавних поисков",
	Long: `Показывает недавние поиски, новые первыми.

Номер в первой колонке передается в 'vindecoder history select'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		p := view.New(cmd.OutOrStdout())
		if asJSON(cmd) {
			return p.JSON(app.History())
		}
		return p.History(app.History())
	},
}
