// Package widget содержит общую для всех секций виджета область
// отображения и производные от записи рейтинга значения (звёзды, ссылка).
package widget

import (
	"context"

	"rating_widget/internal/domain"
	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/service/resolver"
	"rating_widget/internal/domain/value"
)

type displayResolver interface {
	Resolve(context.Context, value.Grade, string, value.Variant) entity.ResolvedDisplay
}

// Scope is built once per widget instance and passed explicitly to every
// section renderer. Reading a zero Scope panics with domain.ErrScopeNotRooted.
type Scope struct {
	rooted      bool
	variant     value.Variant
	display     entity.ResolvedDisplay
	config      entity.DisplayConfig
	interactive bool
	horizontal  bool
}

func NewScope(ctx context.Context, record entity.RatingRecord, r displayResolver) Scope {
	return Scope{
		rooted:      true,
		variant:     record.Variant,
		display:     r.Resolve(ctx, record.Grade, record.LabelOverride, record.Variant),
		config:      resolver.Config(record.Variant),
		interactive: record.Interactive,
		horizontal:  record.Horizontal,
	}
}

func (s Scope) Variant() value.Variant {
	s.mustBeRooted()
	return s.variant
}

func (s Scope) Display() entity.ResolvedDisplay {
	s.mustBeRooted()
	return s.display
}

func (s Scope) Config() entity.DisplayConfig {
	s.mustBeRooted()
	return s.config
}

func (s Scope) Interactive() bool {
	s.mustBeRooted()
	return s.interactive
}

// Layout returns the orientation of the badge/content row. Mobile widgets
// may be switched to a horizontal row by the record.
func (s Scope) Layout() value.Orientation {
	s.mustBeRooted()

	if s.variant == value.VariantMobile && s.horizontal {
		return value.OrientationHorizontal
	}

	return s.display.Orientation
}

func (s Scope) ShowHeader() bool  { return s.Config().ShowHeader }
func (s Scope) ShowFooter() bool  { return s.Config().ShowFooter }
func (s Scope) ShowTooltip() bool { return s.Config().ShowTooltip }
func (s Scope) ShowDetails() bool { return s.Config().ShowDetails }

func (s Scope) mustBeRooted() {
	if !s.rooted {
		panic(domain.ErrScopeNotRooted)
	}
}
