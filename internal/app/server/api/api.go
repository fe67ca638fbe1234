//GET  /api/v1/health                 # Проверка состояния
//GET  /api/v1/vehicles/{vin}         # Декодировать VIN
//GET  /api/v1/history                # Недавние поиски
//POST /api/v1/history/{index}/decode # Повторный поиск из истории
//GET  /metrics                       # Prometheus
//GET  /, POST /decode, POST /history/{index} # HTML страница

package api

import (
	"vindecoder/internal/app/client"
	healthAPI "vindecoder/internal/app/server/api/http/health"
	historyAPI "vindecoder/internal/app/server/api/http/history"
	"vindecoder/internal/app/server/api/http/middleware"
	"vindecoder/internal/app/server/api/http/middleware/logger"
	vehicleAPI "vindecoder/internal/app/server/api/http/vehicle"
	"vindecoder/internal/app/server/webui"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Vehicle *vehicleAPI.Handler
	History *historyAPI.Handler
	WebUI   *webui.Server
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(app *client.App, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("VIN Decoder API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(app, log)
	h.Health.SetupRoutes(API)
	h.Vehicle.SetupRoutes(API)
	h.History.SetupRoutes(API)
	h.WebUI.SetupRoutes(mux)

	mux.Handle("/metrics", app.Metrics().Handler())

	return mux
}

func handlers(app *client.App, log *slog.Logger) *Handlers {
	middlewares := middleware.NewContainer(logger.New(log).Middleware())

	healthHandler := healthAPI.NewHandler(app, log, middlewares.Take())
	vehicleHandler := vehicleAPI.NewHandler(app, log, middlewares.Take())

	middlewares.Add(middleware.NoStore)
	historyHandler := historyAPI.NewHandler(app, log, middlewares.Take())

	return &Handlers{
		Health:  healthHandler,
		Vehicle: vehicleHandler,
		History: historyHandler,
		WebUI:   webui.New(app, log),
	}
}
