package resolver

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/value"
	"rating_widget/pkg/contextx"
	"rating_widget/pkg/logx"
)

const (
	defaultMemoTTL    = time.Hour
	memoCleanupPeriod = 10 * time.Minute
	memoKeySeparator  = "\x00"
	memoUnknown       = "?"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Options параметры разрешения, общие для всего процесса.
type Options struct {
	LabelSet      value.LabelSet
	FallbackGrade value.Grade
}

func DefaultOptions() Options {
	return Options{
		LabelSet:      value.LabelSetClassic,
		FallbackGrade: value.GradeA,
	}
}

// Resolve превращает оценку, подпись и вариант в готовые атрибуты
// отображения с настройками по умолчанию.
func Resolve(grade value.Grade, labelOverride string, variant value.Variant) entity.ResolvedDisplay {
	return ResolveWith(DefaultOptions(), grade, labelOverride, variant)
}

// ResolveWith is the pure core of Resolve. Color and label depend only on
// grade and labelOverride; sizes and orientation depend only on variant.
func ResolveWith(
	opts Options,
	grade value.Grade,
	labelOverride string,
	variant value.Variant,
) entity.ResolvedDisplay {
	style, fallback := lookup(grade, opts.FallbackGrade)
	cfg := Config(variant)

	label := strings.TrimSpace(labelOverride)
	if label == "" {
		label = style.Labels.For(opts.LabelSet)
	}

	return entity.ResolvedDisplay{
		Grade:       style.Grade,
		Color:       style.Color,
		GradientTo:  style.GradientTo,
		Label:       label,
		SizeClasses: cfg.SizeClasses,
		Orientation: cfg.Orientation,
		BadgeSize:   cfg.BadgeSize,
		Fallback:    fallback,
	}
}

// Resolver мемоизирует результаты ResolveWith. Безопасен для
// конкурентного использования.
type Resolver struct {
	options Options
	memo    *cache.Cache
}

type Option func(*Resolver)

func WithLabelSet(labelSet value.LabelSet) Option {
	return func(r *Resolver) {
		r.options.LabelSet = labelSet
	}
}

func WithFallbackGrade(grade value.Grade) Option {
	return func(r *Resolver) {
		if grade.IsValid() {
			r.options.FallbackGrade = grade
		}
	}
}

func WithMemoTTL(ttl time.Duration) Option {
	return func(r *Resolver) {
		r.memo = cache.New(ttl, memoCleanupPeriod)
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		options: DefaultOptions(),
		memo:    cache.New(defaultMemoTTL, memoCleanupPeriod),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Resolver) Options() Options {
	return r.options
}

// Resolve мемоизирует только базовый результат по паре (оценка, вариант):
// все неизвестные оценки и варианты сводятся к одному ключу, а подпись
// накладывается после, так что размер кэша ограничен таблицами.
func (r *Resolver) Resolve(
	ctx context.Context,
	grade value.Grade,
	labelOverride string,
	variant value.Variant,
) entity.ResolvedDisplay {
	key := memoKey(grade, variant)

	display, found := r.memoized(key)
	if found {
		memoHitsTotal.Inc()
	} else {
		display = ResolveWith(r.options, grade, "", variant)
		r.memo.Set(key, display, cache.DefaultExpiration)
	}

	if label := strings.TrimSpace(labelOverride); label != "" {
		display.Label = label
	}

	r.observe(ctx, grade, display)

	return display
}

func (r *Resolver) memoized(key string) (entity.ResolvedDisplay, bool) {
	cached, found := r.memo.Get(key)
	if !found {
		return entity.ResolvedDisplay{}, false
	}

	display, ok := cached.(entity.ResolvedDisplay)

	return display, ok
}

func (r *Resolver) observe(ctx context.Context, requested value.Grade, display entity.ResolvedDisplay) {
	resolutionsTotal.WithLabelValues(display.Grade.String()).Inc()

	if !display.Fallback {
		return
	}

	fallbacksTotal.Inc()

	logger(ctx).Warn(
		"unknown grade replaced with fallback",
		slog.String(logx.FieldGrade, requested.String()),
		slog.String("fallback-grade", display.Grade.String()),
	)
}

func memoKey(grade value.Grade, variant value.Variant) string {
	if !grade.IsValid() {
		grade = memoUnknown
	}

	if !variant.IsValid() {
		variant = memoUnknown
	}

	return grade.String() + memoKeySeparator + variant.String()
}
