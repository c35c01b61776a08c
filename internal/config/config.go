// Package config loads the startup parameters from command-line flags,
// a .env file and environment variables, in increasing order of priority,
// and validates the result.
package config

import (
	"flag"
	"log"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the startup parameters. The DatabaseDSN is opaque to the
// in-memory backend but still required, so switching to a durable backend
// is a wiring change rather than a configuration change.
type Config struct {
	Port           int    `env:"PORT" validate:"gt=0"`
	DatabaseDSN    string `env:"DATABASE_URL" validate:"required"`
	JWTSecret      string `env:"JWT_SECRET" validate:"required,min=32"`
	MaxConnections int    `env:"MAX_CONNECTIONS" validate:"gt=0"`
	LogLevel       string `env:"LOG_LEVEL" validate:"loglevel"`
}

var defaultConfig = Config{
	Port:           8080,
	MaxConnections: 100,
	LogLevel:       "info",
}

func applyDefaults(values *Config, defaults Config) {
	if values.Port == 0 {
		values.Port = defaults.Port
	}

	if values.MaxConnections == 0 {
		values.MaxConnections = defaults.MaxConnections
	}

	if values.LogLevel == "" {
		values.LogLevel = defaults.LogLevel
	}
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	value := fieldLevel.Field().String()

	allowedLogLevels := map[string]bool{
		"debug":   true,
		"info":    true,
		"warning": true,
		"error":   true,
		"fatal":   true,
	}

	return allowedLogLevels[value]
}

func (c *Config) validate() error {
	validate := validator.New()

	err := validate.RegisterValidation("loglevel", validateLogLevel)
	if err != nil {
		return err
	}

	return validate.Struct(c)
}

// Option configures the behavior of New.
type Option func(*initOptions)

type initOptions struct {
	disableFlagsParsing bool
}

// WithDisableFlagsParsing disables command-line flag parsing.
// Tests need it because the test binary owns the flag set.
func WithDisableFlagsParsing(disableFlagsParsing bool) Option {
	return func(options *initOptions) {
		options.disableFlagsParsing = disableFlagsParsing
	}
}

// New builds the configuration from defaults, flags, a .env file and
// environment variables, then validates it.
func New(optionsProto ...Option) (*Config, error) {
	options := &initOptions{
		disableFlagsParsing: false,
	}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	err := godotenv.Load()
	if err != nil {
		log.Printf("Unable to load .env file: %v", err)
	}

	values := &Config{}
	applyDefaults(values, defaultConfig)

	if !options.disableFlagsParsing {
		flag.IntVar(&values.Port, "p", values.Port, "port to announce the service on")
		flag.StringVar(&values.DatabaseDSN, "d", values.DatabaseDSN, "a string with the database connection details")
		flag.StringVar(&values.JWTSecret, "s", values.JWTSecret, "secret key for signing session tokens")
		flag.IntVar(&values.MaxConnections, "c", values.MaxConnections, "maximum number of simultaneous connections")
		flag.StringVar(&values.LogLevel, "l", values.LogLevel, "logger level")
		flag.Parse()
	}

	var valuesFromEnv Config
	err = env.Parse(&valuesFromEnv)
	if err != nil {
		return nil, err
	}

	if valuesFromEnv.Port != 0 {
		values.Port = valuesFromEnv.Port
	}

	if valuesFromEnv.DatabaseDSN != "" {
		values.DatabaseDSN = valuesFromEnv.DatabaseDSN
	}

	if valuesFromEnv.JWTSecret != "" {
		values.JWTSecret = valuesFromEnv.JWTSecret
	}

	if valuesFromEnv.MaxConnections != 0 {
		values.MaxConnections = valuesFromEnv.MaxConnections
	}

	if valuesFromEnv.LogLevel != "" {
		values.LogLevel = valuesFromEnv.LogLevel
	}

	err = values.validate()
	if err != nil {
		return nil, err
	}

	return values, nil
}
