// SPDX-License-Identifier: EPL-2.0

// Package config loads the audnorm configuration: built-in defaults, then an
// optional YAML file, then AUDNORM_* environment variables. Command line
// flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ik5/audnorm/audio"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// Method is the rate converter: cubic or soxr.
	Method  string `yaml:"method"`
	Workers int    `yaml:"workers"`
	Output  Output `yaml:"output"`
	Log     Log    `yaml:"log"`
}

type Output struct {
	// Dir receives <name>.wav files when no bucket is set. "-" means stdout.
	Dir string `yaml:"dir"`
	S3  S3     `yaml:"s3"`
}

type S3 struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
	// Region overrides the AWS configuration chain when set.
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	PathStyle bool   `yaml:"path_style"`
}

type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Method:  "cubic",
		Workers: runtime.NumCPU(),
		Output:  Output{Dir: "."},
		Log:     Log{Level: "info", Format: "text"},
	}
}

// Load builds the configuration. path may be empty; a named file that does
// not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error

	c.Method = envStr("AUDNORM_METHOD", c.Method)
	if c.Workers, err = envInt("AUDNORM_WORKERS", c.Workers); err != nil {
		return err
	}
	c.Output.Dir = envStr("AUDNORM_OUTPUT_DIR", c.Output.Dir)
	c.Output.S3.Bucket = envStr("AUDNORM_S3_BUCKET", c.Output.S3.Bucket)
	c.Output.S3.Prefix = envStr("AUDNORM_S3_PREFIX", c.Output.S3.Prefix)
	c.Output.S3.Region = envStr("AUDNORM_S3_REGION", c.Output.S3.Region)
	c.Output.S3.Endpoint = envStr("AUDNORM_S3_ENDPOINT", c.Output.S3.Endpoint)
	if c.Output.S3.PathStyle, err = envBool("AUDNORM_S3_PATH_STYLE", c.Output.S3.PathStyle); err != nil {
		return err
	}
	c.Log.Level = envStr("AUDNORM_LOG_LEVEL", c.Log.Level)
	c.Log.Format = envStr("AUDNORM_LOG_FORMAT", c.Log.Format)

	return nil
}

func (c Config) Validate() error {
	if _, err := audio.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: method: %w", ErrInvalid, err)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, c.Workers)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	if c.Output.S3.Bucket == "" && c.Output.Dir == "" {
		return fmt.Errorf("%w: output dir or s3 bucket required", ErrInvalid)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, key, v)
	}
	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, key, v)
	}
	return b, nil
}
