package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/stretchr/testify/require"

	"rating_widget/internal/domain/value"
)

func TestParseDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := parse(env.Options{Environment: map[string]string{}}) //nolint:exhaustruct
	rq.NoError(err)

	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.Equal("info", cfg.Log.Level)
	rq.Equal("text", cfg.Log.Format)
	rq.False(cfg.Redis.Enabled())
	rq.Equal(value.LabelSetClassic, cfg.Widget.LabelSet)
	rq.Equal(value.GradeA, cfg.Widget.FallbackGrade)
	rq.False(cfg.Widget.StrictGrades)
	rq.Equal("FINNRICK RATING™", cfg.Widget.BrandName)
	rq.Equal("https://finnrick.com", cfg.Widget.SiteURL)
	rq.Equal("/finnrick-logo.svg", cfg.Widget.DefaultLogoURL)
	rq.Equal(time.Hour, cfg.Widget.ResolveTTL)
	rq.Equal(10*time.Minute, cfg.Widget.RenderTTL)
}

func TestParse(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		environ map[string]string
		wantErr bool
		check   func(Config)
	}{
		{
			name: "Widget overrides",
			environ: map[string]string{
				"WIDGET_LABEL_SET":      " Card ",
				"WIDGET_FALLBACK_GRADE": "c",
				"WIDGET_STRICT_GRADES":  "true",
				"REDIS_ADDRESS":         "localhost:6379",
			},
			check: func(cfg Config) {
				rq.Equal(value.LabelSetCard, cfg.Widget.LabelSet)
				rq.Equal(value.GradeC, cfg.Widget.FallbackGrade)
				rq.True(cfg.Widget.StrictGrades)
				rq.True(cfg.Redis.Enabled())
			},
		},
		{
			name:    "Unknown label set",
			environ: map[string]string{"WIDGET_LABEL_SET": "fancy"},
			wantErr: true,
		},
		{
			name:    "Unknown fallback grade",
			environ: map[string]string{"WIDGET_FALLBACK_GRADE": "F"},
			wantErr: true,
		},
		{
			name:    "Bad duration",
			environ: map[string]string{"HTTP_SHUTDOWN_TIMEOUT": "soon"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			cfg, err := parse(env.Options{Environment: tc.environ}) //nolint:exhaustruct
			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)
			tc.check(cfg)
		})
	}
}
