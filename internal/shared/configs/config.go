package configs

import (
	"access-log-analytics/internal/models"
	"access-log-analytics/internal/reports"
)

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Analysis    AnalysisConfig    `mapstructure:"analysis" validate:"required"`
	Output      OutputConfig      `mapstructure:"output" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int   `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int   `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int   `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int   `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int   `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	MaxBodyBytes      int64 `mapstructure:"max_body_bytes" validate:"min=0"`               // 0 = unlimited
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// AnalysisConfig holds the defaults of every report run.
type AnalysisConfig struct {
	InputPath            string     `mapstructure:"input_path"`
	FailedLoginThreshold int        `mapstructure:"failed_login_threshold" validate:"min=0"`
	TopN                 TopNConfig `mapstructure:"top_n" validate:"required"`
	Breakdowns           []string   `mapstructure:"breakdowns" validate:"dive,attribute"`
}

// TopNConfig holds the size of each report table: "all" or a positive integer.
type TopNConfig struct {
	RequestsPerIP string `mapstructure:"requests_per_ip" validate:"required,topn"`
	Endpoints     string `mapstructure:"endpoints" validate:"required,topn"`
	Suspicious    string `mapstructure:"suspicious" validate:"required,topn"`
	Breakdowns    string `mapstructure:"breakdowns" validate:"required,topn"`
}

// OutputConfig holds the flat result dump configuration.
type OutputConfig struct {
	FileName string `mapstructure:"file_name" validate:"required"`
}

// ReportOptions converts the analysis section into pipeline options.
// The config must have passed validation.
func (c *AnalysisConfig) ReportOptions() reports.Options {
	return reports.Options{
		FailedLoginThreshold: c.FailedLoginThreshold,
		RequestsPerIPTopN:    mustParseTopN(c.TopN.RequestsPerIP),
		EndpointsTopN:        mustParseTopN(c.TopN.Endpoints),
		SuspiciousTopN:       mustParseTopN(c.TopN.Suspicious),
		BreakdownsTopN:       mustParseTopN(c.TopN.Breakdowns),
		BreakdownAttributes:  mustParseAttributes(c.Breakdowns),
	}
}

// mustParseAttributes keeps nil as nil so an unset list falls back to the
// pipeline defaults.
func mustParseAttributes(names []string) []models.Attribute {
	if names == nil {
		return nil
	}
	attributes := make([]models.Attribute, 0, len(names))
	for _, name := range names {
		attribute, err := models.NewAttributeFromString(name)
		if err != nil {
			panic(err)
		}
		attributes = append(attributes, attribute)
	}
	return attributes
}

func mustParseTopN(s string) models.TopN {
	n, err := models.ParseTopN(s)
	if err != nil {
		panic(err)
	}
	return n
}
