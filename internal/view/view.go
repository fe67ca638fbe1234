// Package view отвечает за вывод результатов в терминал
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"golang.org/x/term"

	"vindecoder/internal/domain/history"
	"vindecoder/internal/domain/vehicle"
)

// TimeLayout - формат времени в списке недавних поисков
const TimeLayout = "2006-01-02 15:04:05"

const labelWidth = 30

// Printer пишет в w, раскрашивая вывод только для терминала
type Printer struct {
	w       io.Writer
	title   *color.Color
	section *color.Color
	label   *color.Color
	alert   *color.Color
	muted   *color.Color
}

func New(w io.Writer) *Printer {
	p := &Printer{
		w:       w,
		title:   color.New(color.FgGreen, color.Bold),
		section: color.New(color.FgCyan, color.Bold),
		label:   color.New(color.FgHiBlack),
		alert:   color.New(color.FgRed, color.Bold),
		muted:   color.New(color.Faint),
	}

	colored := IsTerminal(w)
	for _, c := range []*color.Color{p.title, p.section, p.label, p.alert, p.muted} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// IsTerminal сообщает, подключен ли w к терминалу
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Vehicle печатает шесть секций с атрибутами автомобиля
func (p *Printer) Vehicle(code string, rec vehicle.Record) error {
	if _, err := p.title.Fprintf(p.w, "Vehicle Information: %s\n", code); err != nil {
		return err
	}

	for _, s := range vehicle.Sections(rec) {
		fmt.Fprintln(p.w)
		p.section.Fprintln(p.w, s.Title)
		if len(s.Fields) == 0 {
			p.muted.Fprintln(p.w, "  no data")
			continue
		}
		for _, f := range s.Fields {
			p.label.Fprintf(p.w, "  %-*s", labelWidth, f.Label)
			fmt.Fprintln(p.w, f.Value)
		}
	}
	return nil
}

// History печатает список недавних поисков, новые первыми
func (p *Printer) History(entries []history.Entry) error {
	p.section.Fprintln(p.w, "Recent Searches")
	if len(entries) == 0 {
		_, err := p.muted.Fprintln(p.w, "  no searches yet")
		return err
	}

	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("#", "VIN", "SEARCHED AT")
	for i, e := range entries {
		table.AddRow(strconv.Itoa(i), e.VIN, e.Time().In(time.Local).Format(TimeLayout))
	}
	_, err := fmt.Fprintln(p.w, table)
	return err
}

// Error печатает сообщение об ошибке для пользователя
func (p *Printer) Error(msg string) {
	p.alert.Fprintf(p.w, "✗ %s\n", msg)
}

// JSON печатает v с отступами
func (p *Printer) JSON(v any) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// RenderVehicle печатает атрибуты автомобиля в w
func RenderVehicle(w io.Writer, code string, rec vehicle.Record) error {
	return New(w).Vehicle(code, rec)
}

// RenderHistory печатает историю поиска в w
func RenderHistory(w io.Writer, entries []history.Entry) error {
	return New(w).History(entries)
}

// RenderError печатает сообщение об ошибке в w
func RenderError(w io.Writer, msg string) {
	New(w).Error(msg)
}

// VehicleJSON - представление результата декодирования для вывода в JSON
type VehicleJSON struct {
	VIN      string            `json:"vin"`
	Record   vehicle.Record    `json:"record"`
	Sections []vehicle.Section `json:"sections"`
}

// NewVehicleJSON собирает VehicleJSON из записи
func NewVehicleJSON(code string, rec vehicle.Record) VehicleJSON {
	return VehicleJSON{VIN: code, Record: rec, Sections: vehicle.Sections(rec)}
}
