package entity

import "rating_widget/internal/domain/value"

type GradeLabels struct {
	Classic string `json:"classic"`
	Card    string `json:"card"`
}

func (l GradeLabels) For(set value.LabelSet) string {
	if set == value.LabelSetCard {
		return l.Card
	}

	return l.Classic
}

type GradeStyle struct {
	Grade      value.Grade `json:"grade"`
	Color      value.RGB   `json:"color"`
	GradientTo value.RGB   `json:"gradientTo"`
	Labels     GradeLabels `json:"labels"`
	Rank       int         `json:"rank"`
}

type SizeClassSet struct {
	Card       string `json:"card"`
	Badge      string `json:"badge"`
	RatingText string `json:"ratingText"`
	DetailText string `json:"detailText"`
	Star       string `json:"star"`
	Logo       string `json:"logo"`
}

// DisplayConfig набор опций отображения для одного варианта раскладки.
type DisplayConfig struct {
	Variant     value.Variant     `json:"variant"`
	ShowHeader  bool              `json:"showHeader"`
	ShowFooter  bool              `json:"showFooter"`
	ShowTooltip bool              `json:"showTooltip"`
	ShowDetails bool              `json:"showDetails"`
	Orientation value.Orientation `json:"orientation"`
	BadgeSize   value.BadgeSize   `json:"badgeSize"`
	SizeClasses SizeClassSet      `json:"sizeClasses"`
}

// ResolvedDisplay is a pure function of (grade, label override, variant).
type ResolvedDisplay struct {
	Grade       value.Grade       `json:"grade"`
	Color       value.RGB         `json:"color"`
	GradientTo  value.RGB         `json:"gradientTo"`
	Label       string            `json:"label"`
	SizeClasses SizeClassSet      `json:"sizeClasses"`
	Orientation value.Orientation `json:"orientation"`
	BadgeSize   value.BadgeSize   `json:"badgeSize"`
	Fallback    bool              `json:"fallback"`
}
