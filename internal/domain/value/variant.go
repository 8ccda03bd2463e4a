package value

import (
	"fmt"
	"strings"
)

// Variant режим раскладки виджета.
type Variant string

const (
	VariantDesktop Variant = "desktop"
	VariantMobile  Variant = "mobile"
	VariantCompact Variant = "compact"
	VariantEmbed   Variant = "embed"
	VariantMini    Variant = "mini"
)

func Variants() []Variant {
	return []Variant{VariantDesktop, VariantMobile, VariantCompact, VariantEmbed, VariantMini}
}

func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))

	if !v.IsValid() {
		return "", fmt.Errorf("unknown variant %q", s)
	}

	return v, nil
}

func (v Variant) IsValid() bool {
	switch v {
	case VariantDesktop, VariantMobile, VariantCompact, VariantEmbed, VariantMini:
		return true
	default:
		return false
	}
}

func (v Variant) String() string {
	return string(v)
}

type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

type BadgeSize string

const (
	BadgeSizeSmall  BadgeSize = "small"
	BadgeSizeMedium BadgeSize = "medium"
	BadgeSizeLarge  BadgeSize = "large"
)

// LabelSet выбирает колонку подписей по умолчанию в таблице оценок.
type LabelSet string

const (
	LabelSetClassic LabelSet = "classic"
	LabelSetCard    LabelSet = "card"
)

func ParseLabelSet(s string) (LabelSet, error) {
	switch ls := LabelSet(strings.ToLower(strings.TrimSpace(s))); ls {
	case LabelSetClassic, LabelSetCard:
		return ls, nil
	default:
		return "", fmt.Errorf("unknown label set %q", s)
	}
}

func (ls LabelSet) String() string {
	return string(ls)
}
