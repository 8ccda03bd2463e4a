package resolver_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/service/resolver"
	"rating_widget/internal/domain/value"
)

func TestResolveColorIndependentOfVariant(t *testing.T) {
	rq := require.New(t)

	for _, g := range value.Grades() {
		expected := resolver.Lookup(g)

		for _, v := range value.Variants() {
			display := resolver.Resolve(g, "", v)

			rq.Equal(expected.Color, display.Color, "grade %s variant %s", g, v)
			rq.Equal(expected.GradientTo, display.GradientTo)
			rq.Equal(expected.Labels.Classic, display.Label)
			rq.False(display.Fallback)
		}
	}
}

func TestResolveSizesIndependentOfGrade(t *testing.T) {
	rq := require.New(t)

	for _, v := range value.Variants() {
		expected := resolver.Config(v)

		for _, g := range append(value.Grades(), value.Grade("Q")) {
			display := resolver.Resolve(g, "", v)

			rq.Equal(expected.SizeClasses, display.SizeClasses, "grade %s variant %s", g, v)
			rq.Equal(expected.Orientation, display.Orientation)
			rq.Equal(expected.BadgeSize, display.BadgeSize)
		}
	}
}

func TestResolveLabelPrecedence(t *testing.T) {
	rq := require.New(t)

	for _, g := range value.Grades() {
		for _, v := range value.Variants() {
			rq.Equal("CUSTOM", resolver.Resolve(g, "CUSTOM", v).Label)
			rq.Equal(resolver.Lookup(g).Labels.Classic, resolver.Resolve(g, "", v).Label)
			rq.Equal(resolver.Lookup(g).Labels.Classic, resolver.Resolve(g, "   ", v).Label)
		}
	}
}

func TestResolveFallback(t *testing.T) {
	rq := require.New(t)

	for _, v := range value.Variants() {
		unknown := resolver.Resolve(value.Grade("Z"), "", v)
		best := resolver.Resolve(value.GradeA, "", v)

		rq.Equal(best.Color, unknown.Color)
		rq.Equal(best.Label, unknown.Label)
		rq.Equal(value.GradeA, unknown.Grade)
		rq.True(unknown.Fallback)
		rq.False(best.Fallback)
	}
}

func TestResolveWithFallbackGrade(t *testing.T) {
	rq := require.New(t)

	opts := resolver.DefaultOptions()
	opts.FallbackGrade = value.GradeE

	display := resolver.ResolveWith(opts, value.Grade("?"), "", value.VariantDesktop)

	rq.Equal(value.GradeE, display.Grade)
	rq.Equal(value.RGB{R: 239, G: 49, B: 32}, display.Color)
	rq.Equal("BAD", display.Label)
	rq.True(display.Fallback)
}

func TestResolveScenarios(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		grade    value.Grade
		label    string
		variant  value.Variant
		labelSet value.LabelSet
		expected entity.ResolvedDisplay
	}{
		{
			name:     "A desktop classic labels",
			grade:    value.GradeA,
			variant:  value.VariantDesktop,
			labelSet: value.LabelSetClassic,
			expected: entity.ResolvedDisplay{
				Grade:       value.GradeA,
				Color:       value.RGB{R: 14, G: 138, B: 74},
				GradientTo:  value.RGB{R: 10, G: 120, B: 65},
				Label:       "EXCELLENT",
				SizeClasses: resolver.Config(value.VariantDesktop).SizeClasses,
				Orientation: value.OrientationHorizontal,
				BadgeSize:   value.BadgeSizeLarge,
			},
		},
		{
			name:     "A desktop card labels",
			grade:    value.GradeA,
			variant:  value.VariantDesktop,
			labelSet: value.LabelSetCard,
			expected: entity.ResolvedDisplay{
				Grade:       value.GradeA,
				Color:       value.RGB{R: 14, G: 138, B: 74},
				GradientTo:  value.RGB{R: 10, G: 120, B: 65},
				Label:       "GREAT",
				SizeClasses: resolver.Config(value.VariantDesktop).SizeClasses,
				Orientation: value.OrientationHorizontal,
				BadgeSize:   value.BadgeSizeLarge,
			},
		},
		{
			name:     "C mobile with override",
			grade:    value.GradeC,
			label:    "OKAY-ISH",
			variant:  value.VariantMobile,
			labelSet: value.LabelSetClassic,
			expected: entity.ResolvedDisplay{
				Grade:       value.GradeC,
				Color:       value.RGB{R: 255, G: 184, B: 0},
				GradientTo:  value.RGB{R: 230, G: 165, B: 0},
				Label:       "OKAY-ISH",
				SizeClasses: resolver.Config(value.VariantMobile).SizeClasses,
				Orientation: value.OrientationVertical,
				BadgeSize:   value.BadgeSizeMedium,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			opts := resolver.DefaultOptions()
			opts.LabelSet = tc.labelSet

			rq.Equal(tc.expected, resolver.ResolveWith(opts, tc.grade, tc.label, tc.variant))
		})
	}
}

func TestCompactAndMiniSuppressSections(t *testing.T) {
	rq := require.New(t)

	for _, v := range []value.Variant{value.VariantCompact, value.VariantMini} {
		cfg := resolver.Config(v)

		rq.False(cfg.ShowHeader)
		rq.False(cfg.ShowFooter)
		rq.False(cfg.ShowDetails)
		rq.False(cfg.ShowTooltip)
	}

	rq.Equal(resolver.Config(value.VariantDesktop), resolver.Config(value.Variant("watch")))
}

func TestStylesOrdered(t *testing.T) {
	rq := require.New(t)

	styles := resolver.Styles()
	rq.Len(styles, 5)

	for i, style := range styles {
		rq.Equal(i+1, style.Rank)
	}

	rq.Len(resolver.Configs(), len(value.Variants()))
}

func TestResolverMemoIsIdempotent(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	r := resolver.NewResolver(resolver.WithLabelSet(value.LabelSetCard))

	first := r.Resolve(ctx, value.GradeB, "", value.VariantEmbed)
	second := r.Resolve(ctx, value.GradeB, "", value.VariantEmbed)

	rq.Equal(first, second)
	rq.Equal(resolver.ResolveWith(r.Options(), value.GradeB, "", value.VariantEmbed), first)
}

func TestResolverIgnoresInvalidFallbackGrade(t *testing.T) {
	rq := require.New(t)

	r := resolver.NewResolver(resolver.WithFallbackGrade(value.Grade("X")))

	rq.Equal(value.GradeA, r.Options().FallbackGrade)
}

func TestResolverConcurrentUse(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	r := resolver.NewResolver()

	var wg sync.WaitGroup

	results := make([]entity.ResolvedDisplay, 64)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			g := value.Grades()[i%5]
			v := value.Variants()[i%5]
			results[i] = r.Resolve(ctx, g, "", v)
		}(i)
	}

	wg.Wait()

	for i, display := range results {
		g := value.Grades()[i%5]
		v := value.Variants()[i%5]

		rq.Equal(resolver.ResolveWith(r.Options(), g, "", v), display)
	}
}
