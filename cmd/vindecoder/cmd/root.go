// cmd/vindecoder/cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"vindecoder/internal/app/client"
	"vindecoder/internal/config"
	"vindecoder/internal/domain/history"
	"vindecoder/internal/domain/scan"
	"vindecoder/internal/domain/vehicle"
	"vindecoder/internal/domain/vin"
	"vindecoder/internal/utils/logger"
	"vindecoder/internal/view"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	app        *client.App
	cfgFile    string
	backend    string
	debug      bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "vindecoder",
	Short: "VIN Decoder - расшифровка идентификационных номеров автомобилей",
	Long: `VIN Decoder проверяет 17-символьный VIN, запрашивает сервис декодирования
и показывает характеристики автомобиля в шести секциях.

VIN можно ввести вручную, считать сканером штрихкодов или выбрать из
истории последних поисков. Команда serve поднимает ту же функциональность
как HTML страницу и JSON API.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	closeApp()

	if err != nil {
		view.RenderError(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	env, level := cfg.Env, cfg.LogLevel
	if debug {
		env, level = config.EnvLocal, "debug"
	}
	log := logger.NewWithLevel(env, level)

	app, err = client.New(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(client.WithApp(cmd.Context(), app))
	return nil
}

func closeApp() {
	if app == nil {
		return
	}
	if err := app.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
	}
	app = nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".vindecoder"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if backend != "" {
		viper.Set("HISTORY_BACKEND", backend)
	}

	return config.Load()
}

// appFrom достает App, созданный в setupApp
func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := client.FromContext(cmd.Context())
	if !ok {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

// userError заменяет доменную ошибку сообщением для пользователя
func userError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, vin.ErrInvalidVIN):
		return err
	case errors.Is(err, client.ErrBusy):
		return err
	case errors.Is(err, history.ErrEntryNotFound):
		return err
	case errors.Is(err, scan.ErrCameraInit),
		errors.Is(err, scan.ErrNoResult),
		errors.Is(err, scan.ErrSessionActive):
		return errors.New(scan.UserMessage(err))
	case errors.Is(err, context.Canceled):
		return errors.New("прервано")
	default:
		return errors.New(vehicle.UserMessage(err))
	}
}

// printVehicle печатает результат декодирования в выбранном формате
func printVehicle(cmd *cobra.Command, code string, rec vehicle.Record) error {
	p := view.New(cmd.OutOrStdout())
	if jsonOutput {
		return p.JSON(view.NewVehicleJSON(code, rec))
	}
	return p.Vehicle(code, rec)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "хранилище истории (sqlite, postgres, redis, memory)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
}
