// cmd/vindecoder/cmd/history/select.go
package history

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vindecoder/internal/app/client"
	"vindecoder/internal/domain/history"
	"vindecoder/internal/domain/vehicle"
	"vindecoder/internal/view"
)

var SelectCmd = &cobra.Command{
	Use:   "select [index]",
	Short: "Повторить поиск из истории",
	Long: `Декодирует VIN из указанной позиции истории (0 - самый новый).
Повторный поиск снова добавляется в начало истории.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		index, err := strconv.Atoi(args[0])
		if err != nil || index < 0 {
			return fmt.Errorf("неверный номер в истории: %q", args[0])
		}

		entries := app.History()
		if index >= len(entries) {
			return fmt.Errorf("%w: %d", history.ErrEntryNotFound, index)
		}
		code := entries[index].VIN

		rec, err := app.SelectHistory(cmd.Context(), index)
		if err != nil {
			if errors.Is(err, client.ErrBusy) {
				return err
			}
			return errors.New(vehicle.UserMessage(err))
		}

		p := view.New(cmd.OutOrStdout())
		if asJSON(cmd) {
			return p.JSON(view.NewVehicleJSON(code, rec))
		}
		return p.Vehicle(code, rec)
	},
}
