package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/daymark/internal/daystate"
	"github.com/username/daymark/internal/marking"
	"github.com/username/daymark/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Markings MarkingsConfig `mapstructure:"markings"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents the calendar view switches
type CalendarConfig struct {
	MarkingType         string `mapstructure:"marking_type"` // dot, multi-dot, period, multi-period, custom
	DisabledByDefault   bool   `mapstructure:"disabled_by_default"`
	DisableDaySelection bool   `mapstructure:"disable_day_selection"`
	MinDate             string `mapstructure:"min_date"` // YYYY-MM-DD
	MaxDate             string `mapstructure:"max_date"` // YYYY-MM-DD

	// Touch suppression switches; nil means the switch is not supplied
	DisableTouchForDisabledDays *bool `mapstructure:"disable_touch_for_disabled_days"`
	DisableTouchForInactiveDays *bool `mapstructure:"disable_touch_for_inactive_days"`
}

// MarkingsConfig represents marked-dates sources
type MarkingsConfig struct {
	File     string         `mapstructure:"file"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
}

// HolidaysConfig represents the production calendar used for rest days
type HolidaysConfig struct {
	Type     string `mapstructure:"type"` // "none" or "isdayoff"
	APIURL   string `mapstructure:"api_url"`
	CacheTTL string `mapstructure:"cache_ttl"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.daymark")
		v.AddConfigPath("/etc/daymark")
	}

	// Read environment variables, e.g. DAYMARK_CALENDAR_MIN_DATE
	v.SetEnvPrefix("daymark")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := setDefaults(v); err != nil {
		return nil, err
	}

	// Read config file. Without an explicit path a missing file is fine:
	// defaults and environment still apply.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults registers every key so that environment overrides are seen
// by Unmarshal even when the key is absent from the file
func setDefaults(v *viper.Viper) error {
	v.SetDefault("calendar.marking_type", string(marking.TypeDot))
	v.SetDefault("calendar.disabled_by_default", false)
	v.SetDefault("calendar.disable_day_selection", false)
	v.SetDefault("calendar.min_date", "")
	v.SetDefault("calendar.max_date", "")
	v.SetDefault("markings.file", "")
	v.SetDefault("markings.holidays.type", "none")
	v.SetDefault("markings.holidays.api_url", "")
	v.SetDefault("markings.holidays.cache_ttl", "24h")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	// Touch switches have no default: unset must stay distinguishable from false
	for _, key := range []string{
		"calendar.disable_touch_for_disabled_days",
		"calendar.disable_touch_for_inactive_days",
	} {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, ok := marking.ParseType(c.Calendar.MarkingType); !ok {
		return fmt.Errorf("calendar.marking_type must be one of dot, multi-dot, period, multi-period, custom, got '%s'", c.Calendar.MarkingType)
	}

	minDate, err := parseBound(c.Calendar.MinDate)
	if err != nil {
		return fmt.Errorf("calendar.min_date: %w", err)
	}
	maxDate, err := parseBound(c.Calendar.MaxDate)
	if err != nil {
		return fmt.Errorf("calendar.max_date: %w", err)
	}
	if !minDate.IsZero() && !maxDate.IsZero() && minDate.After(maxDate) {
		return fmt.Errorf("calendar.min_date %s is after calendar.max_date %s", c.Calendar.MinDate, c.Calendar.MaxDate)
	}

	switch c.Markings.Holidays.GetType() {
	case "none", "isdayoff":
	default:
		return fmt.Errorf("markings.holidays.type must be 'none' or 'isdayoff', got '%s'", c.Markings.Holidays.Type)
	}

	return nil
}

func parseBound(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateutil.MarkingFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, got '%s'", value)
	}
	return t, nil
}

// GetMarkingType returns the configured marking type, dot by default
func (c *CalendarConfig) GetMarkingType() marking.Type {
	t, _ := marking.ParseType(c.MarkingType)
	return t
}

// GetContext returns the range bounds as a day-state context
func (c *CalendarConfig) GetContext() daystate.Context {
	minDate, _ := parseBound(c.MinDate)
	maxDate, _ := parseBound(c.MaxDate)
	return daystate.Context{MinDate: minDate, MaxDate: maxDate}
}

// GetOptions returns the view-wide day-state switches
func (c *CalendarConfig) GetOptions() daystate.Options {
	return daystate.Options{
		DisabledByDefault:   c.DisabledByDefault,
		DisableDaySelection: c.DisableDaySelection,
	}
}

// GetTouchPolicy returns the touch suppression switches
func (c *CalendarConfig) GetTouchPolicy() marking.TouchPolicy {
	return marking.TouchPolicy{
		DisabledDays: c.DisableTouchForDisabledDays,
		InactiveDays: c.DisableTouchForInactiveDays,
	}
}

// GetType returns the holiday source type, "none" by default
func (h *HolidaysConfig) GetType() string {
	if h.Type == "" {
		return "none"
	}
	return h.Type
}

// GetCacheTTL returns cache TTL duration
func (h *HolidaysConfig) GetCacheTTL() time.Duration {
	if h.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(h.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}
