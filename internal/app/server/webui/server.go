// Package webui отдает HTML страницу декодера поверх того же App, что и JSON API.
//
// Маршруты:
//
//	GET  /               форма, ошибка, секции и недавние поиски
//	POST /decode         декодирует VIN из формы
//	POST /history/{idx}  повторно декодирует VIN из истории
package webui

import (
	"context"
	_ "embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"vindecoder/internal/app/client"
	"vindecoder/internal/domain/history"
	"vindecoder/internal/domain/vehicle"
	"vindecoder/internal/domain/vin"
)

// App - операции приложения, которые использует страница
type App interface {
	Decode(ctx context.Context, input string) (vehicle.Record, error)
	SelectHistory(ctx context.Context, index int) (vehicle.Record, error)
	State() client.AppState
}

const (
	messageInvalidVIN = "Please enter a valid 17-character VIN (letters I, O and Q are not allowed)."
	messageBusy       = "A VIN is already being decoded. Please wait."
	messageNotFound   = "This search is no longer in the history."
)

//go:embed index.tmpl.html
var indexHTML string

type Server struct {
	app  App
	log  *slog.Logger
	tmpl *template.Template
}

func New(app App, log *slog.Logger) *Server {
	funcs := template.FuncMap{
		"when": func(e history.Entry) string {
			return e.Time().In(time.Local).Format("2006-01-02 15:04:05")
		},
	}
	return &Server{
		app:  app,
		log:  log.With(slog.String("component", "webui")),
		tmpl: template.Must(template.New("index").Funcs(funcs).Parse(indexHTML)),
	}
}

func (s *Server) SetupRoutes(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Post("/decode", s.handleDecode)
	r.Post("/history/{index}", s.handleHistory)
}

type page struct {
	Input    string
	VIN      string
	Error    string
	Sections []vehicle.Section
	History  []history.Entry
	Pattern  string
	Length   int
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, "", "")
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form: "+err.Error(), http.StatusBadRequest)
		return
	}
	input := r.FormValue("vin")

	_, err := s.app.Decode(r.Context(), input)
	s.respond(w, input, err)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		http.Error(w, "bad history index", http.StatusBadRequest)
		return
	}

	_, err = s.app.SelectHistory(r.Context(), index)
	s.respond(w, "", err)
}

func (s *Server) respond(w http.ResponseWriter, input string, err error) {
	switch {
	case err == nil:
		s.render(w, http.StatusOK, "", "")
	case errors.Is(err, vin.ErrInvalidVIN):
		s.render(w, http.StatusUnprocessableEntity, input, messageInvalidVIN)
	case errors.Is(err, client.ErrBusy):
		s.render(w, http.StatusConflict, input, messageBusy)
	case errors.Is(err, history.ErrEntryNotFound):
		s.render(w, http.StatusNotFound, input, messageNotFound)
	default:
		// сообщение об ошибке декодирования уже в состоянии App
		s.render(w, http.StatusOK, input, "")
	}
}

func (s *Server) render(w http.ResponseWriter, status int, input, message string) {
	state := s.app.State()

	p := page{
		Input:   input,
		VIN:     state.VIN,
		Error:   state.Error,
		History: state.History,
		Pattern: strings.Trim(vin.Pattern, "^$"),
		Length:  vin.Length,
	}
	if message != "" {
		p.Error = message
	}
	if p.Input == "" {
		p.Input = state.VIN
	}
	if state.Record != nil {
		p.Sections = vehicle.Sections(state.Record)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.Execute(w, p); err != nil {
		s.log.Error("template error", "error", err)
	}
}
