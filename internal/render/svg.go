package render

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/value"
)

type svgMetrics struct {
	height   int
	fontSize int
	charW    float64
	padding  float64
	radius   int
}

//nolint:gochecknoglobals
var svgSizes = map[value.BadgeSize]svgMetrics{
	value.BadgeSizeSmall:  {height: 20, fontSize: 11, charW: 6.5, padding: 10, radius: 3},
	value.BadgeSizeMedium: {height: 24, fontSize: 13, charW: 7.7, padding: 12, radius: 4},
	value.BadgeSizeLarge:  {height: 28, fontSize: 15, charW: 8.9, padding: 14, radius: 5},
}

// SVG renders a self-contained flat badge: brand on grey on the left, grade
// and label in the grade color on the right.
func (r *Renderer) SVG(display entity.ResolvedDisplay) []byte {
	m, ok := svgSizes[display.BadgeSize]
	if !ok {
		m = svgSizes[value.BadgeSizeSmall]
	}

	left := strings.ToUpper(r.opts.BadgeCaption)
	right := display.Grade.String()

	if display.Label != "" {
		right += " · " + display.Label
	}

	leftW := float64(utf8.RuneCountInString(left))*m.charW + m.padding
	rightW := float64(utf8.RuneCountInString(right))*m.charW + m.padding
	totalW := leftW + rightW
	textY := float64(m.height)/2 + float64(m.fontSize)/2 - 1

	left = html.EscapeString(left)
	right = html.EscapeString(right)

	return fmt.Appendf(nil, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%d" role="img" aria-label="%s: %s">
  <title>%s: %s</title>
  <linearGradient id="s" x2="0" y2="100%%">
    <stop offset="0" stop-color="%s"/>
    <stop offset="1" stop-color="%s"/>
  </linearGradient>
  <clipPath id="r">
    <rect width="%.0f" height="%d" rx="%d" fill="#fff"/>
  </clipPath>
  <g clip-path="url(#r)">
    <rect width="%.0f" height="%d" fill="#555"/>
    <rect x="%.0f" width="%.0f" height="%d" fill="url(#s)"/>
  </g>
  <g fill="#fff" text-anchor="middle" font-family="Verdana,Geneva,DejaVu Sans,sans-serif" font-size="%d">
    <text x="%.1f" y="%.1f">%s</text>
    <text x="%.1f" y="%.1f" font-weight="bold">%s</text>
  </g>
</svg>
`,
		totalW, m.height, left, right,
		left, right,
		display.Color.Hex(),
		display.GradientTo.Hex(),
		totalW, m.height, m.radius,
		leftW, m.height,
		leftW, rightW, m.height,
		m.fontSize,
		leftW/2, textY, left,
		leftW+rightW/2, textY, right,
	)
}
