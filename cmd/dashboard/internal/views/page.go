package views

import (
	"net/url"
	"strings"
	"time"

	"github.com/shubham-shewale/uptip/pkg/models"
)

// Rand is the draw source for the simulated forecast bands.
type Rand interface {
	Float64() float64
}

// Input is everything a builder may read. Query carries the view's local UI
// state; it is never stored between requests.
type Input struct {
	Metrics models.LiveMetrics
	Query   url.Values
	Now     time.Time
	Rand    Rand
}

type NavItem struct {
	ID     models.ViewID
	Title  string
	Active bool
}

// Header is rendered by the shared layout on every page.
type Header struct {
	View    models.ViewID
	Title   string
	Metrics models.LiveMetrics
	Nav     []NavItem
}

// Page wraps shared Header + view-specific Content.
type Page[T any] struct {
	Header  Header
	Content T
}

// Option is one choice of a selector or tab strip.
type Option struct {
	Value  string
	Label  string
	Href   string
	Active bool
}

type choice struct {
	value string
	label string
}

// choose resolves key from the query against the allowed choices, falling
// back to def, and returns links that keep the rest of the query intact.
func choose(in Input, view models.ViewID, key, def string, choices []choice) (string, []Option) {
	selected := def
	if raw := strings.ToLower(strings.TrimSpace(in.Query.Get(key))); raw != "" {
		for _, c := range choices {
			if strings.ToLower(c.value) == raw {
				selected = c.value
				break
			}
		}
	}

	opts := make([]Option, 0, len(choices))
	for _, c := range choices {
		opts = append(opts, Option{
			Value:  c.value,
			Label:  c.label,
			Href:   link(in.Query, view, key, c.value),
			Active: c.value == selected,
		})
	}
	return selected, opts
}

func link(q url.Values, view models.ViewID, key, value string) string {
	next := url.Values{}
	for k, v := range q {
		next[k] = append([]string(nil), v...)
	}
	next.Set(key, value)
	return "/view/" + string(view) + "?" + next.Encode()
}

func nav(active models.ViewID) []NavItem {
	items := make([]NavItem, 0, len(catalog))
	for _, e := range catalog {
		items = append(items, NavItem{ID: e.ID, Title: e.Title, Active: e.ID == active})
	}
	return items
}
