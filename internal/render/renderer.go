// Package render превращает область отображения и запись рейтинга в
// HTML-фрагмент, SVG-бейдж или консольный превью. Один рендерер обслуживает
// все варианты раскладки, различия берутся из таблицы вариантов.
package render

import (
	"fmt"
	"html/template"

	"rating_widget/internal/domain"
	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/service/widget"
	"rating_widget/pkg/errcodes"
)

type Options struct {
	BrandName      string
	BadgeCaption   string
	SiteURL        string
	DefaultLogoURL string
}

func DefaultOptions() Options {
	return Options{
		BrandName:      "FINNRICK RATING™",
		BadgeCaption:   "Finnrick",
		SiteURL:        "https://finnrick.com",
		DefaultLogoURL: "/finnrick-logo.svg",
	}
}

type Renderer struct {
	opts Options
	tmpl *template.Template
}

func NewRenderer(opts Options) (*Renderer, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parseTemplates: %w", err)
	}

	return &Renderer{
		opts: opts,
		tmpl: tmpl,
	}, nil
}

// Render never mutates the record or the resolved display.
func (r *Renderer) Render(scope widget.Scope, record entity.RatingRecord, format Format) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch format {
	case FormatHTML:
		out, err = r.HTML(scope, record)
		if err != nil {
			return nil, fmt.Errorf("r.HTML: %w", err)
		}
	case FormatSVG:
		out = r.SVG(scope.Display())
	case FormatTerminal:
		out = []byte(r.Terminal(scope, record) + "\n")
	default:
		return nil, domain.NewError(errcodes.InvalidFormat, fmt.Sprintf("unknown render format %q", format))
	}

	rendersTotal.WithLabelValues(format.String(), scope.Variant().String()).Inc()

	return out, nil
}
