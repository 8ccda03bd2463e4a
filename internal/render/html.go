package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/service/widget"
	"rating_widget/internal/domain/value"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("template.ParseFS: %w", err)
	}

	return tmpl, nil
}

type htmlView struct {
	Brand       string
	Variant     value.Variant
	Classes     entity.SizeClassSet
	LayoutClass string
	Mini        bool

	ShowHeader  bool
	ShowTooltip bool
	ShowDetails bool
	ShowFooter  bool

	Grade value.Grade
	Label string
	Color template.CSS

	Vendor       string
	Product      string
	SamplesCount int
	LastTestDate string

	HasStars    bool
	Stars       []widget.StarFill
	StarRating  string
	ReviewCount int

	LogoURL string
	Link    string
}

func (r *Renderer) newHTMLView(scope widget.Scope, record entity.RatingRecord) htmlView {
	display := scope.Display()
	stars := widget.Stars(record.StarRating)

	logoURL := record.LogoURL
	if logoURL == "" {
		logoURL = r.opts.DefaultLogoURL
	}

	return htmlView{
		Brand:       r.opts.BrandName,
		Variant:     scope.Variant(),
		Classes:     display.SizeClasses,
		LayoutClass: layoutClass(scope.Layout()),
		Mini:        scope.Variant() == value.VariantMini,

		ShowHeader:  scope.ShowHeader(),
		ShowTooltip: scope.ShowTooltip(),
		ShowDetails: scope.ShowDetails(),
		ShowFooter:  scope.ShowFooter(),

		Grade: display.Grade,
		Label: display.Label,
		// Цвет собирается из чисел таблицы, поэтому безопасен для CSS.
		Color: template.CSS(display.Color.String()), //nolint:gosec

		Vendor:       record.Vendor,
		Product:      record.Product,
		SamplesCount: record.SamplesCount,
		LastTestDate: record.LastTestDate,

		HasStars:    record.HasStars(),
		Stars:       stars[:],
		StarRating:  strconv.FormatFloat(record.StarRating, 'f', -1, 64),
		ReviewCount: record.ReviewCount,

		LogoURL: logoURL,
		Link:    widget.LinkURL(r.opts.SiteURL, record),
	}
}

func (r *Renderer) HTML(scope widget.Scope, record entity.RatingRecord) ([]byte, error) {
	var buf bytes.Buffer

	if err := r.tmpl.ExecuteTemplate(&buf, "widget", r.newHTMLView(scope, record)); err != nil {
		return nil, fmt.Errorf("tmpl.ExecuteTemplate: %w", err)
	}

	return buf.Bytes(), nil
}

func layoutClass(o value.Orientation) string {
	if o == value.OrientationVertical {
		return "flex-col items-center gap-3"
	}

	return "items-start gap-3"
}
