package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/courierloop/delivery-notifier/internal/policy"
)

// Config holds the main configuration for the application.
type Config struct {
	Server       Server         `mapstructure:"server"`
	Database     Database       `mapstructure:"database"`
	Redis        Redis          `mapstructure:"redis"`
	SMS          SMS            `mapstructure:"sms"`
	LLM          LLM            `mapstructure:"llm"`
	RoutePlanner RoutePlanner   `mapstructure:"route_planner"`
	Schedule     Schedule       `mapstructure:"schedule"`
	Delivery     Delivery       `mapstructure:"delivery"`
	Retry        retry.Strategy `mapstructure:"retry"`
}

// Server holds HTTP server-related configuration.
type Server struct {
	HTTPPort string `mapstructure:"http_port"` // HTTP port to listen on
}

// Database holds database master and slave configuration.
type Database struct {
	Master DatabaseNode   `mapstructure:"master"`
	Slaves []DatabaseNode `mapstructure:"slaves"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DatabaseNode holds connection parameters for a single database node.
type DatabaseNode struct {
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	User    string `mapstructure:"user"`
	Pass    string `mapstructure:"pass"`
	Name    string `mapstructure:"name"`
	SSLMode string `mapstructure:"ssl_mode"`
}

// Redis holds Redis connection parameters.
type Redis struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// SMS holds the outbound SMS gateway configuration.
type SMS struct {
	APIURL string `mapstructure:"api_url"`
	Token  string `mapstructure:"token"`
	From   string `mapstructure:"from"` // sender number shown to customers
}

// LLM defines how to contact the chat-completions API backing the date
// extraction oracle and the staff summary renderer.
type LLM struct {
	Endpoint string `mapstructure:"endpoint"`
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"api_key"`
}

// RoutePlanner holds the route-planning provider API configuration.
type RoutePlanner struct {
	APIURL string `mapstructure:"api_url"`
	APIKey string `mapstructure:"api_key"`
}

// Trigger configures one daily scheduled batch.
type Trigger struct {
	Hour     int      `mapstructure:"hour"`
	Minute   int      `mapstructure:"minute"`
	Weekdays []string `mapstructure:"weekdays"` // empty means every day
}

// WeekdaySet parses the trigger's weekday names. An empty list means the
// trigger is valid on every day of the week.
func (t Trigger) WeekdaySet() (map[time.Weekday]bool, error) {
	set := make(map[time.Weekday]bool, len(t.Weekdays))

	if len(t.Weekdays) == 0 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			set[d] = true
		}
		return set, nil
	}

	for _, name := range t.Weekdays {
		w, err := policy.ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		set[w] = true
	}

	return set, nil
}

// Schedule holds the daily trigger and batch pacing configuration.
type Schedule struct {
	Timezone        string        `mapstructure:"timezone"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	SendDelay       time.Duration `mapstructure:"send_delay"` // pause between batch sends
	CustomerSend    Trigger       `mapstructure:"customer_send"`
	StaffSummary    Trigger       `mapstructure:"staff_summary"`
	StaffRecipients []string      `mapstructure:"staff_recipients"`
}

// StorePolicy is the per-store delivery-day configuration.
type StorePolicy struct {
	Days          []string `mapstructure:"days"`
	FlexibleDays  []string `mapstructure:"flexible_days"`
	Blackouts     []string `mapstructure:"blackouts"` // YYYY-MM-DD
	ExceptionNote string   `mapstructure:"exception_note"`
}

// Delivery holds ingestion and rescheduling policy configuration.
type Delivery struct {
	CountryCode    string                 `mapstructure:"country_code"` // dialing prefix for national numbers
	MinLeadDays    int                    `mapstructure:"min_lead_days"`
	Stores         map[string]StorePolicy `mapstructure:"stores"`
	Classification map[string]string      `mapstructure:"classification"` // stop classification key -> store tag
}

// DSN returns the PostgreSQL DSN string for connecting to this database node.
func (n DatabaseNode) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		n.User, n.Pass, n.Host, n.Port, n.Name, n.SSLMode,
	)
}

// Location resolves the schedule timezone, defaulting to UTC.
func (s Schedule) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		zlog.Logger.Warn().Str("timezone", s.Timezone).Msg("unknown timezone, using UTC")
		return time.UTC
	}

	return loc
}

// Policies converts the raw delivery configuration into a policy.Set.
func (d Delivery) Policies() (policy.Set, error) {
	set := policy.Set{
		Stores:      make(map[string]policy.Store, len(d.Stores)),
		MinLeadDays: d.MinLeadDays,
	}

	for tag, sp := range d.Stores {
		st := policy.Store{ExceptionNote: sp.ExceptionNote}

		for _, name := range sp.Days {
			w, err := policy.ParseWeekday(name)
			if err != nil {
				return policy.Set{}, fmt.Errorf("store %s: %w", tag, err)
			}
			st.Days = append(st.Days, w)
		}

		for _, name := range sp.FlexibleDays {
			w, err := policy.ParseWeekday(name)
			if err != nil {
				return policy.Set{}, fmt.Errorf("store %s: %w", tag, err)
			}
			st.FlexibleDays = append(st.FlexibleDays, w)
		}

		for _, raw := range sp.Blackouts {
			date, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return policy.Set{}, fmt.Errorf("store %s: bad blackout date %q: %w", tag, raw, err)
			}
			st.Blackouts = append(st.Blackouts, date)
		}

		set.Stores[tag] = st
	}

	return set, nil
}

// mustBindEnv binds critical environment variables to Viper keys.
//
// It panics if any environment variable cannot be bound.
func mustBindEnv() {
	bindings := map[string]string{
		"database.master.host": "DB_HOST",
		"database.master.port": "DB_PORT",
		"database.master.user": "DB_USER",
		"database.master.pass": "DB_PASSWORD",
		"database.master.name": "DB_NAME",

		"redis.address":  "REDIS_ADDRESS",
		"redis.password": "REDIS_PASSWORD",
		"redis.database": "REDIS_DATABASE",

		"sms.api_url": "SMS_API_URL",
		"sms.token":   "SMS_TOKEN",
		"sms.from":    "SMS_FROM",

		"llm.endpoint": "LLM_ENDPOINT",
		"llm.model":    "LLM_MODEL",
		"llm.api_key":  "LLM_API_KEY",

		"route_planner.api_url": "ROUTE_PLANNER_API_URL",
		"route_planner.api_key": "ROUTE_PLANNER_API_KEY",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			zlog.Logger.Panic().Err(err).Msgf("failed to bind env %s", env)
		}
	}
}

// Must loads and validates the configuration from file and environment variables.
//
// It panics if configuration cannot be read or unmarshalled.
func Must() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to read config")
	}

	mustBindEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msgf("failed to unmarshal config: %v", err)
	}

	return &cfg
}
