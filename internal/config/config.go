package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"

	WatchdogHardware = "hardware"
	WatchdogSystemd  = "systemd"
	WatchdogNone     = "none"
)

type Config struct {
	ConfigFile string
	LogLevel   zerolog.Level
	LogFile    string

	// hardware
	I2CBus         string `json:"i2c_bus"`
	ENS160Address  uint16 `json:"ens160_address"`
	DisplayEnabled *bool  `json:"display_enabled"`
	LEDGPIO        int    `json:"led_gpio"`
	SafeMode       bool   `json:"safe_mode"`

	// persistence
	StoreBackend     string `json:"store_backend"`
	DataDir          string `json:"data_dir"`
	DBPath           string `json:"db_path"`
	FreshCalibration bool   `json:"fresh_calibration"`

	// watchdog
	Watchdog          string `json:"watchdog"`
	WatchdogDevice    string `json:"watchdog_device"`
	WatchdogTimeoutMs int    `json:"watchdog_timeout_ms"`

	// timing
	SampleIntervalSeconds     int `json:"sample_interval_seconds"`
	FeedIntervalMs            int `json:"feed_interval_ms"`
	CalibrationSaveIntervalMs int `json:"calibration_save_interval_ms"`
	CalibratedBadgeMs         int `json:"calibrated_badge_ms"`
	RecoveryDelayMs           int `json:"recovery_delay_ms"`
	SettleMs                  int `json:"settle_ms"`
	BootDisplayMs             int `json:"boot_display_ms"`

	// metrics
	EnableDatadog bool     `json:"enable_datadog"`
	DDAgentAddr   string   `json:"dd_agent_addr"`
	DDNamespace   string   `json:"dd_namespace"`
	DDTags        []string `json:"dd_tags"`

	// service install
	BootScriptFilePath string `json:"boot_script_file_path"`
	GPIOServicePath    string `json:"gpio_service_path"`
	MainServicePath    string `json:"main_service_path"`
	ServiceUser        string `json:"service_user"`
	BinaryPath         string `json:"binary_path"`
	WorkingDir         string `json:"working_dir"`
}

func Load() Config {
	var cfg Config
	var logLevel string

	flag.StringVar(&cfg.ConfigFile, "config-file", "config.json", "Path to monitor config file")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFile, "log-file", "", "Append JSON logs to this file instead of the console")
	flag.Parse()

	fileCfg := LoadFile(cfg.ConfigFile)
	fileCfg.ConfigFile = cfg.ConfigFile
	fileCfg.LogFile = cfg.LogFile
	fileCfg.LogLevel = ParseLogLevel(logLevel)
	return fileCfg
}

// LoadFile reads a config file without touching the command line. It panics
// on an unreadable or invalid file.
func LoadFile(path string) Config {
	var cfg Config
	if err := cfg.load(path); err != nil {
		panic(err.Error())
	}
	cfg.applyDefaults()
	cfg.validate()
	return cfg
}

func (cfg *Config) load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func ParseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (cfg *Config) applyDefaults() {
	if cfg.ENS160Address == 0 {
		cfg.ENS160Address = 0x53
	}
	if cfg.DisplayEnabled == nil {
		enabled := true
		cfg.DisplayEnabled = &enabled
	}
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = StoreFile
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "data/aq-monitor.db"
	}
	if cfg.Watchdog == "" {
		cfg.Watchdog = WatchdogHardware
	}
	if cfg.WatchdogDevice == "" {
		cfg.WatchdogDevice = "/dev/watchdog"
	}
	if cfg.WatchdogTimeoutMs == 0 {
		cfg.WatchdogTimeoutMs = 8388
	}
	if cfg.SampleIntervalSeconds == 0 {
		cfg.SampleIntervalSeconds = 30
	}
	if cfg.FeedIntervalMs == 0 {
		cfg.FeedIntervalMs = 1000
	}
	if cfg.CalibrationSaveIntervalMs == 0 {
		cfg.CalibrationSaveIntervalMs = 60000
	}
	if cfg.CalibratedBadgeMs == 0 {
		cfg.CalibratedBadgeMs = 10000
	}
	if cfg.RecoveryDelayMs == 0 {
		cfg.RecoveryDelayMs = 1000
	}
	if cfg.SettleMs == 0 {
		cfg.SettleMs = 2000
	}
	if cfg.BootDisplayMs == 0 {
		cfg.BootDisplayMs = 3000
	}
	if cfg.DDNamespace == "" {
		cfg.DDNamespace = "aq_monitor."
	}
	if cfg.BootScriptFilePath == "" {
		cfg.BootScriptFilePath = "/usr/local/bin/aq-monitor-gpio.sh"
	}
	if cfg.GPIOServicePath == "" {
		cfg.GPIOServicePath = "/etc/systemd/system/aq-monitor-gpio.service"
	}
	if cfg.MainServicePath == "" {
		cfg.MainServicePath = "/etc/systemd/system/aq-monitor.service"
	}
	if cfg.ServiceUser == "" {
		cfg.ServiceUser = "pi"
	}
	if cfg.BinaryPath == "" {
		cfg.BinaryPath = "/usr/local/bin/aq-monitor"
	}
	if cfg.WorkingDir == "" {
		cfg.WorkingDir = "/home/pi/aq-monitor"
	}
}

func (cfg *Config) validate() {
	var problems []string

	switch cfg.StoreBackend {
	case StoreFile, StoreSQLite:
	default:
		problems = append(problems, fmt.Sprintf("store_backend %q (want %q or %q)", cfg.StoreBackend, StoreFile, StoreSQLite))
	}

	switch cfg.Watchdog {
	case WatchdogHardware, WatchdogSystemd, WatchdogNone:
	default:
		problems = append(problems, fmt.Sprintf("watchdog %q (want %q, %q or %q)", cfg.Watchdog, WatchdogHardware, WatchdogSystemd, WatchdogNone))
	}

	if cfg.Watchdog != WatchdogNone && cfg.FeedIntervalMs >= cfg.WatchdogTimeoutMs {
		problems = append(problems, fmt.Sprintf("feed_interval_ms %d must be shorter than watchdog_timeout_ms %d", cfg.FeedIntervalMs, cfg.WatchdogTimeoutMs))
	}
	if cfg.ENS160Address > 0x7f {
		problems = append(problems, fmt.Sprintf("ens160_address 0x%x is not a 7-bit address", cfg.ENS160Address))
	}
	if cfg.LEDGPIO < 0 {
		problems = append(problems, fmt.Sprintf("led_gpio %d", cfg.LEDGPIO))
	}
	if cfg.EnableDatadog && cfg.DDAgentAddr == "" {
		problems = append(problems, "enable_datadog requires dd_agent_addr")
	}

	for name, v := range map[string]int{
		"sample_interval_seconds":      cfg.SampleIntervalSeconds,
		"feed_interval_ms":             cfg.FeedIntervalMs,
		"calibration_save_interval_ms": cfg.CalibrationSaveIntervalMs,
		"calibrated_badge_ms":          cfg.CalibratedBadgeMs,
		"recovery_delay_ms":            cfg.RecoveryDelayMs,
		"settle_ms":                    cfg.SettleMs,
		"boot_display_ms":              cfg.BootDisplayMs,
	} {
		if v < 0 {
			problems = append(problems, fmt.Sprintf("%s must not be negative", name))
		}
	}

	if len(problems) > 0 {
		panic("Invalid config: " + strings.Join(problems, "; "))
	}
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

func (cfg Config) SampleInterval() time.Duration {
	return time.Duration(cfg.SampleIntervalSeconds) * time.Second
}

func (cfg Config) FeedInterval() time.Duration            { return ms(cfg.FeedIntervalMs) }
func (cfg Config) WatchdogTimeout() time.Duration         { return ms(cfg.WatchdogTimeoutMs) }
func (cfg Config) CalibrationSaveInterval() time.Duration { return ms(cfg.CalibrationSaveIntervalMs) }
func (cfg Config) CalibratedBadge() time.Duration         { return ms(cfg.CalibratedBadgeMs) }
func (cfg Config) RecoveryDelay() time.Duration           { return ms(cfg.RecoveryDelayMs) }
func (cfg Config) Settle() time.Duration                  { return ms(cfg.SettleMs) }
func (cfg Config) BootDisplay() time.Duration             { return ms(cfg.BootDisplayMs) }
