package server

import (
	"fmt"
	"strings"

	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/value"
	"rating_widget/pkg/rest"
)

func newRESTGradeStyle(style entity.GradeStyle) rest.GradeStyle {
	return rest.GradeStyle{
		Grade:      style.Grade.String(),
		Color:      style.Color.String(),
		ColorHex:   style.Color.Hex(),
		GradientTo: style.GradientTo.String(),
		Label:      style.Labels.Classic,
		CardLabel:  style.Labels.Card,
		Rank:       style.Rank,
	}
}

func newRESTSizeClassSet(s entity.SizeClassSet) rest.SizeClassSet {
	return rest.SizeClassSet{
		Card:       s.Card,
		Badge:      s.Badge,
		RatingText: s.RatingText,
		DetailText: s.DetailText,
		Star:       s.Star,
		Logo:       s.Logo,
	}
}

func newRESTDisplayConfig(cfg entity.DisplayConfig) rest.DisplayConfig {
	return rest.DisplayConfig{
		Variant:     cfg.Variant.String(),
		ShowHeader:  cfg.ShowHeader,
		ShowFooter:  cfg.ShowFooter,
		ShowTooltip: cfg.ShowTooltip,
		ShowDetails: cfg.ShowDetails,
		Orientation: string(cfg.Orientation),
		BadgeSize:   string(cfg.BadgeSize),
		SizeClasses: newRESTSizeClassSet(cfg.SizeClasses),
	}
}

func newRESTResolvedDisplay(d entity.ResolvedDisplay) rest.ResolvedDisplay {
	return rest.ResolvedDisplay{
		Grade:       d.Grade.String(),
		Color:       d.Color.String(),
		ColorHex:    d.Color.Hex(),
		GradientTo:  d.GradientTo.String(),
		Label:       d.Label,
		SizeClasses: newRESTSizeClassSet(d.SizeClasses),
		Orientation: string(d.Orientation),
		BadgeSize:   string(d.BadgeSize),
		Fallback:    d.Fallback,
	}
}

// Неизвестная оценка не является ошибкой запроса: ее судьбу решает сервис.
func parseGrade(s string) value.Grade {
	grade, _ := value.ParseGrade(s)
	return grade
}

func newDomainRatingRecord(r rest.RenderRequest) (entity.RatingRecord, error) {
	variant, err := value.ParseVariant(r.Variant)
	if err != nil {
		return entity.RatingRecord{}, fmt.Errorf("value.ParseVariant: %w", err)
	}

	return entity.RatingRecord{
		Grade:         parseGrade(r.Grade),
		LabelOverride: strings.TrimSpace(r.LabelOverride),
		Vendor:        strings.TrimSpace(r.Vendor),
		Product:       strings.TrimSpace(r.Product),
		SamplesCount:  r.SamplesCount,
		LastTestDate:  strings.TrimSpace(r.LastTestDate),
		Variant:       variant,
		LogoURL:       r.LogoURL,
		Interactive:   r.Interactive,
		Horizontal:    r.Horizontal,
		ProductID:     strings.TrimSpace(r.ProductID),
		StarRating:    r.StarRating,
		ReviewCount:   r.ReviewCount,
	}, nil
}
