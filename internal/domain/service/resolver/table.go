package resolver

import (
	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/value"
)

// Таблицы заполняются один раз при старте процесса и больше не меняются.
//
//nolint:gochecknoglobals
var gradeTable = map[value.Grade]entity.GradeStyle{
	value.GradeA: {
		Grade:      value.GradeA,
		Color:      value.RGB{R: 14, G: 138, B: 74},
		GradientTo: value.RGB{R: 10, G: 120, B: 65},
		Labels:     entity.GradeLabels{Classic: "EXCELLENT", Card: "GREAT"},
		Rank:       1,
	},
	value.GradeB: {
		Grade:      value.GradeB,
		Color:      value.RGB{R: 115, G: 200, B: 44},
		GradientTo: value.RGB{R: 100, G: 180, B: 35},
		Labels:     entity.GradeLabels{Classic: "GOOD", Card: "GOOD"},
		Rank:       2,
	},
	value.GradeC: {
		Grade:      value.GradeC,
		Color:      value.RGB{R: 255, G: 184, B: 0},
		GradientTo: value.RGB{R: 230, G: 165, B: 0},
		Labels:     entity.GradeLabels{Classic: "OKAY", Card: "OKAY"},
		Rank:       3,
	},
	value.GradeD: {
		Grade:      value.GradeD,
		Color:      value.RGB{R: 244, G: 114, B: 22},
		GradientTo: value.RGB{R: 220, G: 100, B: 15},
		Labels:     entity.GradeLabels{Classic: "POOR", Card: "POOR"},
		Rank:       4,
	},
	value.GradeE: {
		Grade:      value.GradeE,
		Color:      value.RGB{R: 239, G: 49, B: 32},
		GradientTo: value.RGB{R: 215, G: 40, B: 25},
		Labels:     entity.GradeLabels{Classic: "BAD", Card: "BAD"},
		Rank:       5,
	},
}

//nolint:gochecknoglobals
var variantTable = map[value.Variant]entity.DisplayConfig{
	value.VariantDesktop: {
		Variant:     value.VariantDesktop,
		ShowHeader:  true,
		ShowFooter:  true,
		ShowTooltip: true,
		ShowDetails: true,
		Orientation: value.OrientationHorizontal,
		BadgeSize:   value.BadgeSizeLarge,
		SizeClasses: entity.SizeClassSet{
			Card:       "max-w-sm bg-gray-100 border-gray-200",
			Badge:      "w-16 h-16",
			RatingText: "text-2xl",
			DetailText: "text-sm leading-[140%]",
			Star:       "w-4 h-4",
			Logo:       "h-5",
		},
	},
	value.VariantMobile: {
		Variant:     value.VariantMobile,
		ShowHeader:  true,
		ShowFooter:  true,
		ShowTooltip: true,
		ShowDetails: true,
		Orientation: value.OrientationVertical,
		BadgeSize:   value.BadgeSizeMedium,
		SizeClasses: entity.SizeClassSet{
			Card:       "max-w-xs bg-gray-100 border-gray-200",
			Badge:      "w-14 h-14",
			RatingText: "text-xl",
			DetailText: "text-xs",
			Star:       "w-3 h-3",
			Logo:       "h-4",
		},
	},
	value.VariantCompact: {
		Variant:     value.VariantCompact,
		Orientation: value.OrientationHorizontal,
		BadgeSize:   value.BadgeSizeSmall,
		SizeClasses: entity.SizeClassSet{
			Card:       "max-w-xs bg-white border-gray-200 shadow-sm",
			Badge:      "w-8 h-8",
			RatingText: "text-sm",
			DetailText: "text-xs",
			Star:       "w-3 h-3",
			Logo:       "h-3",
		},
	},
	value.VariantEmbed: {
		Variant:     value.VariantEmbed,
		ShowHeader:  true,
		ShowFooter:  true,
		ShowDetails: true,
		Orientation: value.OrientationHorizontal,
		BadgeSize:   value.BadgeSizeMedium,
		SizeClasses: entity.SizeClassSet{
			Card:       "max-w-sm bg-white border-gray-200 shadow-md",
			Badge:      "w-10 h-10",
			RatingText: "text-lg",
			DetailText: "text-sm",
			Star:       "w-3 h-3",
			Logo:       "h-4",
		},
	},
	value.VariantMini: {
		Variant:     value.VariantMini,
		Orientation: value.OrientationHorizontal,
		BadgeSize:   value.BadgeSizeSmall,
		SizeClasses: entity.SizeClassSet{
			Card:       "inline-flex bg-white rounded-lg shadow-sm",
			Badge:      "w-6 h-6",
			RatingText: "text-xs",
			DetailText: "text-xs",
			Star:       "w-3 h-3",
			Logo:       "h-3",
		},
	},
}

// Lookup возвращает стиль оценки. Для неизвестной оценки подставляется
// стиль оценки A.
func Lookup(grade value.Grade) entity.GradeStyle {
	style, _ := lookup(grade, value.GradeA)
	return style
}

func lookup(grade, fallback value.Grade) (entity.GradeStyle, bool) {
	if style, ok := gradeTable[grade]; ok {
		return style, false
	}

	if style, ok := gradeTable[fallback]; ok {
		return style, true
	}

	return gradeTable[value.GradeA], true
}

// Styles returns the grade table ordered from best to worst.
func Styles() []entity.GradeStyle {
	grades := value.Grades()
	styles := make([]entity.GradeStyle, 0, len(grades))

	for _, g := range grades {
		styles = append(styles, gradeTable[g])
	}

	return styles
}

// Config returns display options for the variant. Unknown variants get the
// desktop row.
func Config(variant value.Variant) entity.DisplayConfig {
	if cfg, ok := variantTable[variant]; ok {
		return cfg
	}

	return variantTable[value.VariantDesktop]
}

func Configs() []entity.DisplayConfig {
	variants := value.Variants()
	configs := make([]entity.DisplayConfig, 0, len(variants))

	for _, v := range variants {
		configs = append(configs, variantTable[v])
	}

	return configs
}
