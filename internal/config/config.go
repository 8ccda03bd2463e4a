package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"rating_widget/internal/domain/value"
)

type Config struct {
	App     App
	Log     Log
	HTTP    HTTP
	Probe   Probe
	Metrics Metrics
	Redis   Redis
	Widget  Widget
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"rating-widget"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen  int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

// Redis необязателен: без адреса кэш рендера выключен.
type Redis struct {
	Address            string `env:"REDIS_ADDRESS"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNS" envDefault:"5"`
}

func (r Redis) Enabled() bool {
	return r.Address != ""
}

type Widget struct {
	LabelSet       value.LabelSet `env:"WIDGET_LABEL_SET" envDefault:"classic"`
	FallbackGrade  value.Grade    `env:"WIDGET_FALLBACK_GRADE" envDefault:"A"`
	StrictGrades   bool           `env:"WIDGET_STRICT_GRADES" envDefault:"false"`
	BrandName      string         `env:"WIDGET_BRAND_NAME" envDefault:"FINNRICK RATING™"`
	BadgeCaption   string         `env:"WIDGET_BADGE_CAPTION" envDefault:"Finnrick"`
	SiteURL        string         `env:"WIDGET_SITE_URL" envDefault:"https://finnrick.com"`
	DefaultLogoURL string         `env:"WIDGET_DEFAULT_LOGO_URL" envDefault:"/finnrick-logo.svg"`
	ResolveTTL     time.Duration  `env:"WIDGET_RESOLVE_CACHE_TTL" envDefault:"1h"`
	RenderTTL      time.Duration  `env:"WIDGET_RENDER_CACHE_TTL" envDefault:"10m"`
}

func (w *Widget) normalize() error {
	labelSet, err := value.ParseLabelSet(string(w.LabelSet))
	if err != nil {
		return fmt.Errorf("value.ParseLabelSet: %w", err)
	}

	grade, ok := value.ParseGrade(string(w.FallbackGrade))
	if !ok {
		return fmt.Errorf("unknown fallback grade %q", w.FallbackGrade)
	}

	w.LabelSet = labelSet
	w.FallbackGrade = grade

	return nil
}

// Load читает .env (если есть) и переменные окружения.
func Load() (Config, error) {
	_ = godotenv.Load()

	return parse(env.Options{}) //nolint:exhaustruct
}

func parse(opts env.Options) (Config, error) {
	var config Config

	if err := env.ParseWithOptions(&config, opts); err != nil {
		return Config{}, fmt.Errorf("env.ParseWithOptions: %w", err)
	}

	if err := config.Widget.normalize(); err != nil {
		return Config{}, fmt.Errorf("widget: %w", err)
	}

	return config, nil
}
