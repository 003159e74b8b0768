package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Config describes one analysis run: where the three tables live and what
// to do with the reports.
type Config struct {
	Data struct {
		Flights  string `json:"flights"`  // raw flight records (.csv or .xlsx)
		Airports string `json:"airports"` // airport reference table
		Airlines string `json:"airlines"` // airline reference table
		Charset  string `json:"charset"`  // "", "utf-8", "latin1" or "gbk"
	} `json:"data"`

	Output struct {
		XLSX string `json:"xlsx"` // workbook path, empty disables export
	} `json:"output"`

	LogFile  string   `json:"log_file"` // extra zap sink, empty for stdout only
	Watch    bool     `json:"watch"`    // re-run when a dataset file changes
	Schedule Duration `json:"schedule"` // re-run interval, zero disables
}

var (
	once     sync.Once
	instance *Config
	loadErr  error
)

// Load reads the JSON config once per process.
func Load(path string) (*Config, error) {
	once.Do(func() {
		instance, loadErr = read(path)
	})
	return instance, loadErr
}

func read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Data.Flights == "" || cfg.Data.Airports == "" || cfg.Data.Airlines == "" {
		return nil, fmt.Errorf("config %s: flights, airports and airlines paths are all required", path)
	}
	if cfg.Watch && time.Duration(cfg.Schedule) > 0 {
		return nil, fmt.Errorf("config %s: watch and schedule are mutually exclusive", path)
	}
	return &cfg, nil
}

// Duration wraps time.Duration so intervals read as JSON strings like "10m".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
