package views

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/shubham-shewale/uptip/pkg/models"
)

var ErrUnknownTemplate = errors.New("views: unknown template")

var funcMap = template.FuncMap{
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
	"price": func(f float64) string { return humanize.Comma(int64(math.Round(f))) },
	"fixed": func(places int, f float64) string { return fmt.Sprintf("%.*f", places, f) },
	"dec": func(places int32, d decimal.Decimal) string {
		return d.StringFixed(places)
	},
	"signed": func(f float64) string {
		if f > 0 {
			return fmt.Sprintf("+%.1f", f)
		}
		return fmt.Sprintf("%.1f", f)
	},
	"deref": func(f *float64) string {
		if f == nil {
			return "—"
		}
		return fmt.Sprintf("%.1f", *f)
	},
	"statusClass": func(status string) string {
		switch strings.ToLower(status) {
		case "operational", "active", "current", "completed", "verified", "executed", "normal", "low", "compliant":
			return "ok"
		case "maintenance", "delayed", "pending", "negotiating", "medium", "monitor", "warning", "loading":
			return "warn"
		case "offline", "overdue", "high", "critical":
			return "err"
		default:
			return "dim"
		}
	},
	"join": strings.Join,
	"add":  func(a, b int) int { return a + b },
}

// Renderer executes the shared layout around one view template. All
// templates are parsed at construction.
type Renderer struct {
	pages map[models.ViewID]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[models.ViewID]*template.Template, len(catalog))}
	for _, e := range catalog {
		t, err := template.New(string(e.ID)).Funcs(funcMap).Parse(tmplBase + e.template)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", e.ID, err)
		}
		r.pages[e.ID] = t
	}
	return r, nil
}

// Render writes the full page for id. Nothing is written when building or
// executing fails.
func (r *Renderer) Render(w io.Writer, id models.ViewID, in Input) error {
	t, ok := r.pages[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	data, err := Build(id, in)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("execute %s template: %w", id, err)
	}
	_, err = buf.WriteTo(w)
	return err
}
