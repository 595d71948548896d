package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// structuredJSONConfig mirrors [StructuredConfig] for the persisted file,
// substituting [Duration] for time.Duration so intervals round-trip as
// human-readable strings like "5s" instead of nanosecond integers.
type structuredJSONConfig struct {
	Server Server `json:"server,omitempty"`

	Local Local `json:"local,omitempty"`

	Download struct {
		MaxRetries       int      `json:"max_retries"`
		RetryDelay       Duration `json:"retry_delay"`
		ChunkSize        int      `json:"chunk_size"`
		ProgressInterval Duration `json:"progress_interval"`
		ConnectTimeout   Duration `json:"connect_timeout"`
		ReadTimeout      Duration `json:"read_timeout"`
	} `json:"download,omitempty"`

	Filter Filter `json:"filter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: jsonCfg.Server,
		Local:  jsonCfg.Local,
		Download: Download{
			MaxRetries:       jsonCfg.Download.MaxRetries,
			RetryDelay:       time.Duration(jsonCfg.Download.RetryDelay),
			ChunkSize:        jsonCfg.Download.ChunkSize,
			ProgressInterval: time.Duration(jsonCfg.Download.ProgressInterval),
			ConnectTimeout:   time.Duration(jsonCfg.Download.ConnectTimeout),
			ReadTimeout:      time.Duration(jsonCfg.Download.ReadTimeout),
		},
		Filter: jsonCfg.Filter,
	}

	return cfg, nil
}

// Save writes the configuration to path as indented JSON, creating or
// replacing the file. Credentials are stored as-is; the file should live in
// a directory with appropriate permissions.
func (cfg *StructuredConfig) Save(path string) error {
	var jsonCfg structuredJSONConfig
	jsonCfg.Server = cfg.Server
	jsonCfg.Local = cfg.Local
	jsonCfg.Download.MaxRetries = cfg.Download.MaxRetries
	jsonCfg.Download.RetryDelay = Duration(cfg.Download.RetryDelay)
	jsonCfg.Download.ChunkSize = cfg.Download.ChunkSize
	jsonCfg.Download.ProgressInterval = Duration(cfg.Download.ProgressInterval)
	jsonCfg.Download.ConnectTimeout = Duration(cfg.Download.ConnectTimeout)
	jsonCfg.Download.ReadTimeout = Duration(cfg.Download.ReadTimeout)
	jsonCfg.Filter = cfg.Filter

	data, err := json.MarshalIndent(&jsonCfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding json configs: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
