// cmd/vindecoder/cmd/scan.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vindecoder/internal/domain/scan"
	"vindecoder/internal/infrastructure/scanner"
)

var (
	scanInput   string
	scanCommand []string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Считать VIN сканером штрихкодов",
	Long: `Запускает сканер штрихкодов и ждет, пока один и тот же VIN будет
распознан три раза подряд. Принятый VIN сразу декодируется.

По умолчанию запускается внешняя программа из SCANNER_COMMAND
(zbarcam --raw --nodisplay). С флагом --input коды читаются построчно
из файла, "-" означает стандартный ввод.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}
		cfg := app.Config()

		var src scan.Source
		switch scanInput {
		case "":
			command := cfg.ScannerCommand
			if len(scanCommand) > 0 {
				command = scanCommand
			}
			src = scanner.NewCommandSource(command, cfg.ScanBuffer, app.Logger())
		case "-":
			src = scanner.NewReaderSource(cmd.InOrStdin(), cfg.ScanBuffer)
		default:
			f, err := os.Open(scanInput)
			if err != nil {
				return fmt.Errorf("ошибка открытия файла: %w", err)
			}
			defer f.Close()
			src = scanner.NewReaderSource(f, cfg.ScanBuffer)
		}

		if !jsonOutput {
			fmt.Fprintln(cmd.ErrOrStderr(), "Сканирование... наведите камеру на штрихкод VIN (Ctrl+C для отмены)")
		}

		code, rec, err := app.Scan(cmd.Context(), src)
		if err != nil {
			return userError(err)
		}

		return printVehicle(cmd, code, rec)
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanInput, "input", "i", "", `читать коды из файла ("-" для stdin)`)
	scanCmd.Flags().StringSliceVar(&scanCommand, "command", nil, "команда сканера вместо SCANNER_COMMAND")
}
