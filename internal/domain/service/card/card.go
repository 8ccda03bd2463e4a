package card

import (
	"context"
	"fmt"
	"log/slog"

	"rating_widget/internal/domain"
	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/service/resolver"
	"rating_widget/internal/domain/service/widget"
	"rating_widget/internal/domain/value"
	"rating_widget/internal/render"
	"rating_widget/pkg/contextx"
	"rating_widget/pkg/errcodes"
	"rating_widget/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Resolver interface {
	Resolve(context.Context, value.Grade, string, value.Variant) entity.ResolvedDisplay
}

type Renderer interface {
	Render(widget.Scope, entity.RatingRecord, render.Format) ([]byte, error)
	SVG(entity.ResolvedDisplay) []byte
}

type RenderCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

type KeyFunc func(entity.RatingRecord, string) (string, error)

// CardService собирает виджет: разрешает оценку, строит область
// отображения и рендерит результат, по возможности через кэш.
type CardService struct {
	resolver     Resolver
	renderer     Renderer
	cache        RenderCache
	cacheKey     KeyFunc
	strictGrades bool
}

func NewCardService(
	resolver Resolver,
	renderer Renderer,
	cache RenderCache,
	cacheKey KeyFunc,
) *CardService {
	return &CardService{
		resolver: resolver,
		renderer: renderer,
		cache:    cache,
		cacheKey: cacheKey,
	}
}

// WithStrictGrades makes unknown grades a request error instead of falling
// back to the default grade style.
func (s *CardService) WithStrictGrades(strict bool) *CardService {
	s.strictGrades = strict
	return s
}

func (s *CardService) Grades() []entity.GradeStyle {
	return resolver.Styles()
}

func (s *CardService) Variants() []entity.DisplayConfig {
	return resolver.Configs()
}

func (s *CardService) Resolve(
	ctx context.Context,
	grade value.Grade,
	labelOverride string,
	variant value.Variant,
) (entity.ResolvedDisplay, error) {
	if err := s.checkGrade(grade); err != nil {
		return entity.ResolvedDisplay{}, err
	}

	return s.resolver.Resolve(ctx, grade, labelOverride, variant), nil
}

func (s *CardService) Badge(
	ctx context.Context,
	grade value.Grade,
	labelOverride string,
	variant value.Variant,
) ([]byte, error) {
	display, err := s.Resolve(ctx, grade, labelOverride, variant)
	if err != nil {
		return nil, err
	}

	return s.renderer.SVG(display), nil
}

func (s *CardService) Render(ctx context.Context, record entity.RatingRecord, format render.Format) ([]byte, error) {
	if err := s.checkGrade(record.Grade); err != nil {
		return nil, err
	}

	key, err := s.cacheKey(record, format.String())
	if err != nil {
		return nil, fmt.Errorf("cacheKey: %w", err)
	}

	// Scope строится до обращения к кэшу, чтобы подстановка оценки
	// логировалась и считалась и при попадании в кэш.
	scope := widget.NewScope(ctx, record, s.resolver)

	// Ошибки кэша не должны ломать рендер.
	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		logger(ctx).Error("cache.Get", slog.String(logx.FieldCacheKey, key), logx.Error(err))
	}

	if found {
		return cached, nil
	}

	out, err := s.renderer.Render(scope, record, format)
	if err != nil {
		return nil, fmt.Errorf("renderer.Render: %w", err)
	}

	if err = s.cache.Set(ctx, key, out); err != nil {
		logger(ctx).Error("cache.Set", slog.String(logx.FieldCacheKey, key), logx.Error(err))
	}

	return out, nil
}

func (s *CardService) checkGrade(grade value.Grade) error {
	if s.strictGrades && !grade.IsValid() {
		return domain.NewError(errcodes.InvalidGrade, fmt.Sprintf("unknown grade %q", grade))
	}

	return nil
}
