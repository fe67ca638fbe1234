// cmd/vindecoder/cmd/decode.go
package cmd

import (
	"github.com/spf13/cobra"

	"vindecoder/internal/domain/vin"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [vin]",
	Short: "Декодировать VIN",
	Long: `Проверяет VIN и запрашивает сервис декодирования.

Ввод приводится к верхнему регистру, пробелы по краям отбрасываются.
Допустимы ровно 17 символов из A-H, J-N, P, R-Z и 0-9. Успешный поиск
добавляется в историю.`,
	Example: "  vindecoder decode 1HGCM82633A004352",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		rec, err := app.Decode(cmd.Context(), args[0])
		if err != nil {
			return userError(err)
		}

		return printVehicle(cmd, vin.Normalize(args[0]), rec)
	},
}
