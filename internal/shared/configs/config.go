package configs

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Tracking TrackingConfig `mapstructure:"tracking" validate:"required"`
	Meters   MetersConfig   `mapstructure:"meters"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// TrackingConfig holds the cadence at which rate meters are updated.
type TrackingConfig struct {
	TickIntervalMs int `mapstructure:"tick_interval_ms" validate:"required,min=1"`
}

// MetersConfig declares the meters served by the application.
type MetersConfig struct {
	Rates      []RateMeterConfig      `mapstructure:"rates" validate:"dive"`
	Aggregates []AggregateMeterConfig `mapstructure:"aggregates" validate:"dive"`
}

// RateMeterConfig declares a rate meter. IntervalSeconds defaults to 0.5 when omitted.
type RateMeterConfig struct {
	Name            string  `mapstructure:"name" validate:"required"`
	IntervalSeconds float32 `mapstructure:"interval_seconds" validate:"omitempty,gt=0"`
}

// AggregateMeterConfig declares an aggregate meter.
type AggregateMeterConfig struct {
	Name      string `mapstructure:"name" validate:"required"`
	Threshold int    `mapstructure:"threshold" validate:"required,min=1,max=255"`
	Unit      string `mapstructure:"unit"`
	ValueType string `mapstructure:"value_type" validate:"required,oneof=int float"`
}
