package configs

import (
	"fmt"
	"strings"

	"access-log-analytics/internal/aggregators"
	"access-log-analytics/internal/models"
	"access-log-analytics/internal/reports"
	"access-log-analytics/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Command-line flags that override analysis settings of the config file.
const (
	FlagThreshold     = "threshold"
	FlagTopIP         = "top-ip"
	FlagTopEndpoints  = "top-endpoints"
	FlagTopSuspicious = "top-suspicious"
	FlagTopBreakdowns = "top-breakdowns"
	FlagBreakdowns    = "breakdowns"
	FlagInputPath     = "input"
	FlagOutput        = "output"
)

var flagKeys = map[string]string{
	FlagThreshold:     "analysis.failed_login_threshold",
	FlagTopIP:         "analysis.top_n.requests_per_ip",
	FlagTopEndpoints:  "analysis.top_n.endpoints",
	FlagTopSuspicious: "analysis.top_n.suspicious",
	FlagTopBreakdowns: "analysis.top_n.breakdowns",
	FlagBreakdowns:    "analysis.breakdowns",
	FlagInputPath:     "analysis.input_path",
	FlagOutput:        "output.file_name",
}

// RegisterAnalysisFlags adds the analysis override flags to fs.
// Flag defaults only apply when neither the config file nor the command line sets a value.
func RegisterAnalysisFlags(fs *pflag.FlagSet) {
	fs.Int(FlagThreshold, aggregators.DefaultFailedLoginThreshold, "failed login attempts an IP may make before it is flagged")
	fs.String(FlagTopIP, models.TopNAll.String(), `rows of the "Requests per IP" table (1, 5, 10, all or any positive integer)`)
	fs.String(FlagTopEndpoints, "1", `rows of the "Most Accessed Endpoint" table`)
	fs.String(FlagTopSuspicious, models.TopNAll.String(), `rows of the "Suspicious Activity" table`)
	fs.String(FlagTopBreakdowns, "10", "rows of each breakdown table")
	fs.StringSlice(FlagBreakdowns, breakdownNames(), "attributes to break the report down by (ip, url, status, method, timezone)")
	fs.String(FlagInputPath, "", "log file analyzed when no file argument is given")
	fs.StringP(FlagOutput, "o", "", "file name of the CSV result dump")
}

// LoadConfig reads configuration from file and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	return LoadConfigWithFlags(configPath, nil)
}

// LoadConfigWithFlags reads configuration from file, lets the flags registered by
// RegisterAnalysisFlags override it, and validates the result. fs may be nil.
func LoadConfigWithFlags(configPath string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	if fs != nil {
		for flag, key := range flagKeys {
			f := fs.Lookup(flag)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", flag, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("analysis.failed_login_threshold", aggregators.DefaultFailedLoginThreshold)
	v.SetDefault("analysis.top_n.requests_per_ip", models.TopNAll.String())
	v.SetDefault("analysis.top_n.endpoints", "1")
	v.SetDefault("analysis.top_n.suspicious", models.TopNAll.String())
	v.SetDefault("analysis.top_n.breakdowns", "10")
	v.SetDefault("analysis.breakdowns", breakdownNames())
	v.SetDefault("output.file_name", "log_analysis_results.csv")
}

func breakdownNames() []string {
	defaults := reports.DefaultBreakdownAttributes()
	names := make([]string, 0, len(defaults))
	for _, attribute := range defaults {
		names = append(names, string(attribute))
	}
	return names
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.Analysis.TopN.Endpoints" -> "analysis.topn.endpoints"
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min":
		return fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		return fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case validators.TagTopN:
		return fmt.Sprintf("%s (all or a positive integer, got %q)", field, e.Value())
	case validators.TagAttribute:
		return fmt.Sprintf("%s (one of ip, url, status, method, timezone, got %q)", field, e.Value())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
