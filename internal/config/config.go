package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/onair/internal/twitch"
)

// Config is the resolved runtime configuration.
type Config struct {
	Channels        []string      `key:"channels" validate:"required,min=1,dive,required"`
	ClientID        string        `key:"client_id" validate:"required"`
	ClientSecret    string        `key:"client_secret" validate:"required"`
	TimezoneOffset  int           `key:"timezone_offset" validate:"gte=-14,lte=14"`
	UseWatchdog     bool          `key:"use_watchdog"`
	WatchdogTimeout time.Duration `key:"watchdog_timeout" validate:"gt=0"`
	UpdateDelay     time.Duration `key:"update_delay" validate:"gt=0"`
	NowLiveDelay    time.Duration `key:"nowlive_delay" validate:"gt=0"`
	ScrollDelay     time.Duration `key:"scroll_delay" validate:"gt=0"`
	Debug           bool          `key:"debug"`
	LogFile         string        `key:"log_file"`
	AuthURL         string        `key:"auth_url" validate:"required,url"`
	StreamsURL      string        `key:"streams_url" validate:"required,url"`
}

const (
	defaultConfigPath      = "~/.config/onair/config.toml"
	defaultLogFile         = "~/.local/share/onair/onair.log"
	defaultWatchdogTimeout = 16 * time.Second
	defaultUpdateDelay     = 63 * time.Second
	defaultNowLiveDelay    = 15 * time.Second
	defaultScrollDelay     = 30 * time.Millisecond

	envClientID     = "ONAIR_CLIENT_ID"
	envClientSecret = "ONAIR_CLIENT_SECRET"
)

const (
	defaultAuthURL    = twitch.DefaultAuthURL
	defaultStreamsURL = twitch.DefaultStreamsURL
)

// fileConfig mirrors the on-disk layout. Durations are Go duration strings.
type fileConfig struct {
	Channels        []string `toml:"channels" yaml:"channels"`
	ClientID        string   `toml:"client_id" yaml:"client_id"`
	ClientSecret    string   `toml:"client_secret" yaml:"client_secret"`
	TimezoneOffset  int      `toml:"timezone_offset" yaml:"timezone_offset"`
	UseWatchdog     bool     `toml:"use_watchdog" yaml:"use_watchdog"`
	WatchdogTimeout string   `toml:"watchdog_timeout" yaml:"watchdog_timeout"`
	UpdateDelay     string   `toml:"update_delay" yaml:"update_delay"`
	NowLiveDelay    string   `toml:"nowlive_delay" yaml:"nowlive_delay"`
	ScrollDelay     string   `toml:"scroll_delay" yaml:"scroll_delay"`
	Debug           bool     `toml:"debug" yaml:"debug"`
	LogFile         string   `toml:"log_file" yaml:"log_file"`
	AuthURL         string   `toml:"auth_url" yaml:"auth_url"`
	StreamsURL      string   `toml:"streams_url" yaml:"streams_url"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		WatchdogTimeout: defaultWatchdogTimeout,
		UpdateDelay:     defaultUpdateDelay,
		NowLiveDelay:    defaultNowLiveDelay,
		ScrollDelay:     defaultScrollDelay,
		LogFile:         mustExpand(defaultLogFile),
		AuthURL:         defaultAuthURL,
		StreamsURL:      defaultStreamsURL,
	}
}

// Load locates and parses the config file, falling back to defaults when it is
// missing. Credentials from the environment override the file. Load does not
// validate; call Validate before use.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if isYAML(resolved) {
		err = yaml.Unmarshal(bytes, &raw)
	} else {
		err = toml.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Channels = cleanChannels(raw.Channels)
	cfg.ClientID = strings.TrimSpace(raw.ClientID)
	cfg.ClientSecret = strings.TrimSpace(raw.ClientSecret)
	cfg.TimezoneOffset = raw.TimezoneOffset
	cfg.UseWatchdog = raw.UseWatchdog
	cfg.Debug = raw.Debug

	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"watchdog_timeout", raw.WatchdogTimeout, &cfg.WatchdogTimeout},
		{"update_delay", raw.UpdateDelay, &cfg.UpdateDelay},
		{"nowlive_delay", raw.NowLiveDelay, &cfg.NowLiveDelay},
		{"scroll_delay", raw.ScrollDelay, &cfg.ScrollDelay},
	}
	for _, d := range durations {
		value := strings.TrimSpace(d.raw)
		if value == "" {
			continue
		}
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: %s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if v := strings.TrimSpace(raw.AuthURL); v != "" {
		cfg.AuthURL = v
	}
	if v := strings.TrimSpace(raw.StreamsURL); v != "" {
		cfg.StreamsURL = v
	}

	applyEnv(&cfg)
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("key"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

// Validate checks required fields and ranges. The error lists every failing
// key.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = describe(fe)
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must not be empty"
	case "gte", "lte":
		return field + " must be between -14 and 14"
	case "gt":
		return field + " must be positive"
	case "url":
		return field + " must be an absolute URL"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envClientID)); v != "" {
		cfg.ClientID = v
	}
	if v := strings.TrimSpace(os.Getenv(envClientSecret)); v != "" {
		cfg.ClientSecret = v
	}
}

func cleanChannels(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, name := range in {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
