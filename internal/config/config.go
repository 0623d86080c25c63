package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/premium-barber/booking-service/internal/domain"
	"github.com/premium-barber/booking-service/pkg/types"
)

// Config is the full service configuration, loaded from a TOML file.
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	SMS      SMS      `toml:"sms"`
	Business Business `toml:"business"`
}

type Server struct {
	HTTPPort     int `toml:"http_port"`
	ReadTimeout  int `toml:"read_timeout"`  // seconds
	WriteTimeout int `toml:"write_timeout"` // seconds
	IdleTimeout  int `toml:"idle_timeout"`  // seconds
}

type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type SMS struct {
	GatewayURL string `toml:"gateway_url"`
	Username   string `toml:"username"`
	APIKey     string `toml:"api_key"`
	DemoMode   bool   `toml:"demo_mode"`
	Timeout    int    `toml:"timeout"` // seconds
}

// Business holds the shop's booking policy. Missing values fall back to the
// shop defaults, so a minimal config stays valid.
type Business struct {
	Name           string            `toml:"name"`
	OpenTime       string            `toml:"open_time"`
	CloseTime      string            `toml:"close_time"`
	SlotGrid       []string          `toml:"slot_grid"`
	ClosedWeekdays []string          `toml:"closed_weekdays"`
	BufferMinutes  *int              `toml:"buffer_minutes"`
	MaxAdvanceDays *int              `toml:"max_advance_days"`
	Services       []BusinessService `toml:"services"`
}

type BusinessService struct {
	Name            string `toml:"name"`
	Category        string `toml:"category"`
	DurationMinutes int    `toml:"duration_minutes"`
	PriceMinorUnits int64  `toml:"price_minor_units"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port <= 0 {
		return fmt.Errorf("database.port must be positive")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics.path is required when metrics are enabled")
	}
	if !c.SMS.DemoMode && (c.SMS.GatewayURL == "" || c.SMS.APIKey == "") {
		return fmt.Errorf("sms.gateway_url and sms.api_key are required unless sms.demo_mode is set")
	}
	return nil
}

// DSN builds the postgres connection string.
func (d *Database) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslmode)
}

// SMSTimeout returns the gateway client timeout.
func (s *SMS) SMSTimeout() time.Duration {
	if s.Timeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.Timeout) * time.Second
}

// BusinessName returns the configured shop name, or the default.
func (b *Business) BusinessName() string {
	if b.Name == "" {
		return "Premium Cuts & Spa"
	}
	return b.Name
}

// Catalog builds the service catalog from config, falling back to the shop's
// standard offering when no services are configured.
func (b *Business) Catalog() (*domain.ServiceCatalog, error) {
	if len(b.Services) == 0 {
		return domain.NewServiceCatalog(domain.DefaultServices())
	}

	defs := make([]domain.ServiceDefinition, len(b.Services))
	for i, s := range b.Services {
		defs[i] = domain.ServiceDefinition{
			Name:            s.Name,
			Category:        domain.ServiceCategory(s.Category),
			DurationMinutes: s.DurationMinutes,
			PriceMinorUnits: s.PriceMinorUnits,
		}
	}
	return domain.NewServiceCatalog(defs)
}

// Calendar builds the business calendar from config, using the shop defaults
// for any section left unset. The returned calendar is already validated.
func (b *Business) Calendar() (domain.BusinessCalendar, error) {
	calendar := domain.DefaultCalendar()

	if b.OpenTime != "" {
		calendar.OpenTime = types.TimeString(b.OpenTime)
	}
	if b.CloseTime != "" {
		calendar.CloseTime = types.TimeString(b.CloseTime)
	}
	if len(b.SlotGrid) > 0 {
		grid := make([]types.TimeString, len(b.SlotGrid))
		for i, s := range b.SlotGrid {
			grid[i] = types.TimeString(s)
		}
		calendar.SlotGrid = grid
	}
	if len(b.ClosedWeekdays) > 0 {
		days, err := parseWeekdays(b.ClosedWeekdays)
		if err != nil {
			return domain.BusinessCalendar{}, err
		}
		calendar.ClosedWeekdays = days
	}
	if b.BufferMinutes != nil {
		calendar.BufferMinutes = *b.BufferMinutes
	}
	if b.MaxAdvanceDays != nil {
		calendar.MaxAdvanceDays = *b.MaxAdvanceDays
	}

	if err := calendar.Validate(); err != nil {
		return domain.BusinessCalendar{}, fmt.Errorf("business calendar: %w", err)
	}
	return calendar, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, len(names))
	for i, name := range names {
		day, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		days[i] = day
	}
	return days, nil
}
