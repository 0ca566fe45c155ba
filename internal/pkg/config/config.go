package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/samirrijal/geoframe/internal/core/domain"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Projection ProjectionConfig `mapstructure:"projection"`
	Frame      FrameConfig      `mapstructure:"frame"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ProjectionConfig struct {
	PlanarSystem string `mapstructure:"planar_system"`
}

// PointConfig is a coordinate pair; it is read as longitude/latitude for
// geographic corners and as x/y for planar corners.
type PointConfig struct {
	Longitude float64 `mapstructure:"longitude"`
	Latitude  float64 `mapstructure:"latitude"`
	X         float64 `mapstructure:"x"`
	Y         float64 `mapstructure:"y"`
}

func (p PointConfig) Geo() domain.GeoPoint {
	return domain.GeoPoint{Longitude: p.Longitude, Latitude: p.Latitude}
}

func (p PointConfig) Flat() domain.FlatPoint {
	return domain.FlatPoint{X: p.X, Y: p.Y}
}

// FrameConfig describes the initial bounding frame. When FlatLT and FlatRB
// are both set, an axis-aligned frame uses them instead of projecting LT/RB.
type FrameConfig struct {
	Mode   string       `mapstructure:"mode"`
	LT     PointConfig  `mapstructure:"lt"`
	LB     PointConfig  `mapstructure:"lb"`
	RB     PointConfig  `mapstructure:"rb"`
	FlatLT *PointConfig `mapstructure:"flat_lt"`
	FlatRB *PointConfig `mapstructure:"flat_rb"`
}

// GeoCorners returns the configured geographic corners.
func (f FrameConfig) GeoCorners() domain.Corners[domain.GeoPoint] {
	return domain.Corners[domain.GeoPoint]{LT: f.LT.Geo(), LB: f.LB.Geo(), RB: f.RB.Geo()}
}

// HasFlat reports whether explicit planar corners are configured.
func (f FrameConfig) HasFlat() bool {
	return f.FlatLT != nil && f.FlatRB != nil
}

// Borders returns the configured corners for SetBorders.
func (f FrameConfig) Borders() domain.Borders {
	b := domain.Borders{WGS: f.GeoCorners()}
	if f.HasFlat() {
		b.Flat.LT = f.FlatLT.Flat()
		b.Flat.LB = domain.FlatPoint{X: f.FlatLT.X, Y: f.FlatRB.Y}
		b.Flat.RB = f.FlatRB.Flat()
	}
	return b
}

// NATSConfig enables frame change propagation between instances.
type NATSConfig struct {
	URL     string `mapstructure:"url"`
	Enabled bool   `mapstructure:"enabled"`
}

type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
	Endpoint    string `mapstructure:"endpoint"`
	Enabled     bool   `mapstructure:"enabled"`
}

// Load reads configuration from file and environment variables.
func Load(service string) (*Config, error) {
	v := viper.New()
	setDefaults(v, service)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: GEOFRAME_FRAME_MODE → frame.mode
	v.SetEnvPrefix("GEOFRAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return decode(v)
}

func setDefaults(v *viper.Viper, service string) {
	d := domain.DefaultCorners

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("projection.planar_system", "GOOGLE")
	v.SetDefault("frame.mode", string(domain.FrameRotated))
	v.SetDefault("frame.lt.longitude", d.LT.Longitude)
	v.SetDefault("frame.lt.latitude", d.LT.Latitude)
	v.SetDefault("frame.lb.longitude", d.LB.Longitude)
	v.SetDefault("frame.lb.latitude", d.LB.Latitude)
	v.SetDefault("frame.rb.longitude", d.RB.Longitude)
	v.SetDefault("frame.rb.latitude", d.RB.Latitude)
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.enabled", false)
	v.SetDefault("telemetry.service_name", service)
	v.SetDefault("telemetry.endpoint", "localhost:4317")
	v.SetDefault("telemetry.enabled", false)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
// Corner coordinates are validated when the frame is built.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}
	if c.Projection.PlanarSystem == "" {
		errs = append(errs, "projection.planar_system is required")
	}
	if !domain.FrameMode(c.Frame.Mode).Valid() {
		errs = append(errs, fmt.Sprintf("frame.mode must be %s or %s, got %q",
			domain.FrameRotated, domain.FrameAxisAligned, c.Frame.Mode))
	}
	if (c.Frame.FlatLT == nil) != (c.Frame.FlatRB == nil) {
		errs = append(errs, "frame.flat_lt and frame.flat_rb must be set together")
	}
	if c.NATS.Enabled && c.NATS.URL == "" {
		errs = append(errs, "nats.url is required when nats is enabled")
	}
	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		errs = append(errs, "telemetry.endpoint is required when telemetry is enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
