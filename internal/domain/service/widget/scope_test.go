package widget_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"rating_widget/internal/domain"
	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/service/resolver"
	"rating_widget/internal/domain/service/widget"
	"rating_widget/internal/domain/value"
)

func TestNewScope(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	record := entity.RatingRecord{
		Grade:        value.GradeC,
		Vendor:       "Polaris Peptides",
		Variant:      value.VariantDesktop,
		Interactive:  true,
		SamplesCount: 6,
	}

	scope := widget.NewScope(ctx, record, resolver.NewResolver())

	rq.Equal(value.VariantDesktop, scope.Variant())
	rq.Equal(resolver.Resolve(value.GradeC, "", value.VariantDesktop), scope.Display())
	rq.Equal(resolver.Config(value.VariantDesktop), scope.Config())
	rq.True(scope.Interactive())
	rq.True(scope.ShowHeader())
	rq.True(scope.ShowFooter())
	rq.True(scope.ShowDetails())
	rq.True(scope.ShowTooltip())
	rq.Equal(value.OrientationHorizontal, scope.Layout())
}

func TestScopeCompactSuppressesSections(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	for _, g := range value.Grades() {
		scope := widget.NewScope(ctx, entity.RatingRecord{Grade: g, Variant: value.VariantCompact}, resolver.NewResolver())

		rq.False(scope.ShowHeader())
		rq.False(scope.ShowFooter())
		rq.False(scope.ShowDetails())
	}
}

func TestScopeMobileHorizontalOverride(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	r := resolver.NewResolver()

	vertical := widget.NewScope(ctx, entity.RatingRecord{Grade: value.GradeA, Variant: value.VariantMobile}, r)
	rq.Equal(value.OrientationVertical, vertical.Layout())

	horizontal := widget.NewScope(ctx, entity.RatingRecord{Grade: value.GradeA, Variant: value.VariantMobile, Horizontal: true}, r)
	rq.Equal(value.OrientationHorizontal, horizontal.Layout())
	rq.Equal(value.OrientationVertical, horizontal.Display().Orientation)

	desktop := widget.NewScope(ctx, entity.RatingRecord{Grade: value.GradeA, Variant: value.VariantDesktop, Horizontal: true}, r)
	rq.Equal(value.OrientationHorizontal, desktop.Layout())
}

func TestZeroScopePanics(t *testing.T) {
	rq := require.New(t)

	var scope widget.Scope

	rq.PanicsWithValue(domain.ErrScopeNotRooted, func() { scope.Variant() })
	rq.PanicsWithValue(domain.ErrScopeNotRooted, func() { scope.Display() })
	rq.PanicsWithValue(domain.ErrScopeNotRooted, func() { scope.ShowFooter() })
	rq.PanicsWithValue(domain.ErrScopeNotRooted, func() { scope.Layout() })
}

func TestScopesAreIsolated(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	r := resolver.NewResolver()

	records := []entity.RatingRecord{
		{Grade: value.GradeA, LabelOverride: "FIRST", Variant: value.VariantDesktop},
		{Grade: value.GradeE, LabelOverride: "SECOND", Variant: value.VariantCompact},
	}

	scopes := make([]widget.Scope, len(records))

	var wg sync.WaitGroup

	for i, record := range records {
		wg.Add(1)

		go func() {
			defer wg.Done()

			scopes[i] = widget.NewScope(ctx, record, r)
		}()
	}

	wg.Wait()

	rq.Equal("FIRST", scopes[0].Display().Label)
	rq.Equal(value.GradeA, scopes[0].Display().Grade)
	rq.Equal(value.VariantDesktop, scopes[0].Variant())

	rq.Equal("SECOND", scopes[1].Display().Label)
	rq.Equal(value.GradeE, scopes[1].Display().Grade)
	rq.Equal(value.VariantCompact, scopes[1].Variant())
}
