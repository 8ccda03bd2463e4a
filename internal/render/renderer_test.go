package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rating_widget/internal/domain"
	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/service/resolver"
	"rating_widget/internal/domain/service/widget"
	"rating_widget/internal/domain/value"
	"rating_widget/internal/render"
)

func newRecord(variant value.Variant) entity.RatingRecord {
	return entity.RatingRecord{
		Grade:        value.GradeA,
		Vendor:       "Polaris Peptides",
		Product:      "Semaglutide",
		SamplesCount: 6,
		LastTestDate: "19 Feb 2025",
		Variant:      variant,
	}
}

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()

	r, err := render.NewRenderer(render.DefaultOptions())
	require.NoError(t, err)

	return r
}

func TestHTMLDesktop(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	r := newRenderer(t)

	record := newRecord(value.VariantDesktop)
	scope := widget.NewScope(ctx, record, resolver.NewResolver())

	out, err := r.Render(scope, record, render.FormatHTML)
	rq.NoError(err)

	html := string(out)

	rq.Contains(html, `data-variant="desktop"`)
	rq.Contains(html, "FINNRICK RATING™")
	rq.Contains(html, "rating-widget__help")
	rq.Contains(html, "Polaris Peptides")
	rq.Contains(html, "Semaglutide")
	rq.Contains(html, "Tested 6 Samples")
	rq.Contains(html, "Last test 19 Feb 2025")
	rq.Contains(html, "EXCELLENT")
	rq.Contains(html, "background-color: rgb(14, 138, 74)")
	rq.Contains(html, "Verified by")
	rq.Contains(html, `src="/finnrick-logo.svg"`)
	rq.Contains(html, "w-16 h-16")
	rq.NotContains(html, "<a ")
	rq.NotContains(html, "rating-widget__stars")
}

func TestHTMLCompactSuppressesSections(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	r := newRenderer(t)

	for _, g := range value.Grades() {
		for _, v := range []value.Variant{value.VariantCompact, value.VariantMini} {
			record := newRecord(v)
			record.Grade = g

			out, err := r.HTML(widget.NewScope(ctx, record, resolver.NewResolver()), record)
			rq.NoError(err)

			html := string(out)

			rq.NotContains(html, "rating-widget__header")
			rq.NotContains(html, "rating-widget__footer")
			rq.NotContains(html, "Tested 6 Samples")
			rq.NotContains(html, "Last test")
			rq.Contains(html, ">"+g.String()+"<")
		}
	}
}

func TestHTMLInteractiveWithStars(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	r := newRenderer(t)

	record := newRecord(value.VariantEmbed)
	record.Interactive = true
	record.ProductID = "sample-product"
	record.StarRating = 4.8
	record.ReviewCount = 127
	record.LogoURL = "https://cdn.example.com/logo.svg"
	record.LabelOverride = "TOP <PICK>"

	out, err := r.HTML(widget.NewScope(ctx, record, resolver.NewResolver()), record)
	rq.NoError(err)

	html := string(out)

	rq.Contains(html, `href="https://finnrick.com/products/sample-product"`)
	rq.Contains(html, `target="_blank"`)
	rq.Contains(html, "View Details")
	rq.Contains(html, "Based on 127 verified reviews")
	rq.Equal(4, strings.Count(html, "star--full"))
	rq.Equal(1, strings.Count(html, "star--half"))
	rq.Contains(html, ">4.8<")
	rq.Contains(html, `src="https://cdn.example.com/logo.svg"`)
	rq.Contains(html, "TOP &lt;PICK&gt;")
	rq.NotContains(html, "rating-widget__help")
}

func TestHTMLMobileLayout(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	r := newRenderer(t)

	record := newRecord(value.VariantMobile)

	out, err := r.HTML(widget.NewScope(ctx, record, resolver.NewResolver()), record)
	rq.NoError(err)
	rq.Contains(string(out), "flex-col items-center")

	record.Horizontal = true

	out, err = r.HTML(widget.NewScope(ctx, record, resolver.NewResolver()), record)
	rq.NoError(err)
	rq.NotContains(string(out), "flex-col items-center")
}

func TestSVG(t *testing.T) {
	rq := require.New(t)
	r := newRenderer(t)

	svg := string(r.SVG(resolver.Resolve(value.GradeC, "OKAY & FINE", value.VariantDesktop)))

	rq.True(strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`))
	rq.Contains(svg, `height="28"`)
	rq.Contains(svg, `stop-color="#ffb800"`)
	rq.Contains(svg, `stop-color="#e6a500"`)
	rq.Contains(svg, "C · OKAY &amp; FINE")
	rq.Contains(svg, ">FINNRICK<")

	small := string(r.SVG(resolver.Resolve(value.GradeE, "", value.VariantMini)))
	rq.Contains(small, `height="20"`)
	rq.Contains(small, "E · BAD")
}

func TestTerminal(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	r := newRenderer(t)

	record := newRecord(value.VariantDesktop)
	record.StarRating = 3.5

	out, err := r.Render(widget.NewScope(ctx, record, resolver.NewResolver()), record, render.FormatTerminal)
	rq.NoError(err)

	text := string(out)

	rq.Contains(text, "FINNRICK RATING™")
	rq.Contains(text, "EXCELLENT")
	rq.Contains(text, "Tested 6 Samples")
	rq.Contains(text, "Last test 19 Feb 2025")
	rq.Contains(text, "★★★")
	rq.Contains(text, "Verified by")

	compact := newRecord(value.VariantCompact)

	out, err = r.Render(widget.NewScope(ctx, compact, resolver.NewResolver()), compact, render.FormatTerminal)
	rq.NoError(err)
	rq.NotContains(string(out), "Tested 6 Samples")
	rq.NotContains(string(out), "Verified by")
}

func TestRenderZeroScopePanics(t *testing.T) {
	rq := require.New(t)
	r := newRenderer(t)

	rq.PanicsWithValue(domain.ErrScopeNotRooted, func() {
		_, _ = r.Render(widget.Scope{}, newRecord(value.VariantDesktop), render.FormatHTML)
	})
}

func TestParseFormat(t *testing.T) {
	rq := require.New(t)

	f, err := render.ParseFormat("")
	rq.NoError(err)
	rq.Equal(render.FormatHTML, f)

	f, err = render.ParseFormat("SVG")
	rq.NoError(err)
	rq.Equal(render.FormatSVG, f)
	rq.Equal("image/svg+xml; charset=utf-8", f.ContentType())

	_, err = render.ParseFormat("pdf")
	rq.ErrorContains(err, `unknown render format "pdf"`)

	_, err = newRenderer(t).Render(
		widget.NewScope(context.Background(), newRecord(value.VariantDesktop), resolver.NewResolver()),
		newRecord(value.VariantDesktop),
		render.Format("pdf"),
	)
	rq.Error(err)
}
