// cmd/vindecoder/cmd/serve.go
package cmd

import (
	"github.com/spf13/cobra"

	"vindecoder/internal/app/server"
	"vindecoder/internal/app/server/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTML страницу и JSON API",
	Long: `Поднимает HTTP сервер с HTML страницей декодера, JSON API
(/api/v1/...) и метриками Prometheus (/metrics).

Адрес берется из SERVER_ADDRESS или флага --addr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		addr := app.Config().ServerAddress
		if serveAddr != "" {
			addr = serveAddr
		}

		return server.Run(cmd.Context(), addr, api.New(app, app.Logger()), app.Logger())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "адрес HTTP сервера")
}
