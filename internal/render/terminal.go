package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/service/widget"
	"rating_widget/internal/domain/value"
)

const (
	terminalWhite = lipgloss.Color("#ffffff")
	terminalMuted = lipgloss.Color("#666666")
	terminalStar  = lipgloss.Color("#facc15")
)

// Terminal renders a console preview of the widget with the same section
// rules as the HTML renderer.
func (r *Renderer) Terminal(scope widget.Scope, record entity.RatingRecord) string {
	display := scope.Display()
	color := lipgloss.Color(display.Color.Hex())

	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(terminalWhite).
		Background(color).
		Padding(0, 1).
		Render(display.Grade.String())

	if scope.Variant() != value.VariantMini {
		label := lipgloss.NewStyle().
			Foreground(terminalWhite).
			Background(color).
			Padding(0, 1).
			Render(display.Label)
		badge = lipgloss.JoinHorizontal(lipgloss.Center, badge, label)
	}

	content := r.terminalContent(scope, record)

	var row string

	if scope.Layout() == value.OrientationVertical {
		row = lipgloss.JoinVertical(lipgloss.Center, badge, content)
	} else {
		row = lipgloss.JoinHorizontal(lipgloss.Top, badge, " ", content)
	}

	sections := make([]string, 0, 3)

	if scope.ShowHeader() {
		sections = append(sections, lipgloss.NewStyle().Bold(true).Render(r.opts.BrandName))
	}

	sections = append(sections, row)

	if scope.ShowFooter() {
		footer := "Verified by " + r.opts.BrandName
		if link := widget.LinkURL(r.opts.SiteURL, record); link != "" {
			footer += "  " + link
		}

		sections = append(sections, lipgloss.NewStyle().Foreground(terminalMuted).Render(footer))
	}

	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if scope.Variant() == value.VariantMini {
		box = lipgloss.NewStyle()
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (r *Renderer) terminalContent(scope widget.Scope, record entity.RatingRecord) string {
	lines := make([]string, 0, 6)

	if scope.Variant() != value.VariantMini && record.Vendor != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(record.Vendor))
	}

	if scope.ShowDetails() {
		if record.Product != "" {
			lines = append(lines, record.Product)
		}

		lines = append(lines, fmt.Sprintf("Tested %d Samples", record.SamplesCount))

		if record.LastTestDate != "" {
			lines = append(lines, lipgloss.NewStyle().Foreground(terminalMuted).Render("Last test "+record.LastTestDate))
		}
	}

	if record.HasStars() {
		lines = append(lines, terminalStars(record.StarRating))

		if record.ReviewCount > 0 && scope.Variant() != value.VariantMini {
			lines = append(lines, fmt.Sprintf("Based on %d verified reviews", record.ReviewCount))
		}
	}

	return strings.Join(lines, "\n")
}

func terminalStars(rating float64) string {
	var b strings.Builder

	for _, fill := range widget.Stars(rating) {
		switch fill {
		case widget.StarFull:
			b.WriteString("★")
		case widget.StarHalf:
			b.WriteString("⯪")
		default:
			b.WriteString("☆")
		}
	}

	return lipgloss.NewStyle().Foreground(terminalStar).Render(b.String()) + fmt.Sprintf(" %g", rating)
}
