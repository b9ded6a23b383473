package http

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"access-log-analytics/internal/models"
	"access-log-analytics/internal/reports"
	"access-log-analytics/internal/shared/validators"
)

// reportQuery holds the optional query parameters of POST /reports.
// Absent parameters keep the server defaults.
type reportQuery struct {
	Threshold     string `query:"threshold" validate:"omitempty,number"`
	TopIP         string `query:"top_ip" validate:"omitempty,topn"`
	TopEndpoints  string `query:"top_endpoints" validate:"omitempty,topn"`
	TopSuspicious string `query:"top_suspicious" validate:"omitempty,topn"`
	TopBreakdowns string `query:"top_breakdowns" validate:"omitempty,topn"`
}

type reportQueryParser struct {
	validate *validators.Validate
	defaults reports.Options
}

func newReportQueryParser(defaults reports.Options) *reportQueryParser {
	validate := validators.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("query")
	})
	return &reportQueryParser{validate: validate, defaults: defaults}
}

// Parse validates the query and merges it over the defaults.
func (p *reportQueryParser) Parse(values url.Values) (reports.Options, error) {
	query := reportQuery{
		Threshold:     values.Get("threshold"),
		TopIP:         values.Get("top_ip"),
		TopEndpoints:  values.Get("top_endpoints"),
		TopSuspicious: values.Get("top_suspicious"),
		TopBreakdowns: values.Get("top_breakdowns"),
	}

	if err := p.validate.Struct(&query); err != nil {
		if ve, ok := err.(validators.ValidationErrors); ok && len(ve) > 0 {
			return reports.Options{}, errInvalidReportQuery(ve[0].Field(), toString(ve[0].Value()), expectation(ve[0].Tag()), err)
		}
		return reports.Options{}, errInvalidReportQuery("", "", err.Error(), err)
	}

	opts := p.defaults
	if query.Threshold != "" {
		threshold, err := strconv.Atoi(query.Threshold)
		if err != nil {
			return reports.Options{}, errInvalidReportQuery("threshold", query.Threshold, expectation("number"), err)
		}
		opts.FailedLoginThreshold = threshold
	}
	overrideTopN(&opts.RequestsPerIPTopN, query.TopIP)
	overrideTopN(&opts.EndpointsTopN, query.TopEndpoints)
	overrideTopN(&opts.SuspiciousTopN, query.TopSuspicious)
	overrideTopN(&opts.BreakdownsTopN, query.TopBreakdowns)
	if names := splitList(values, "breakdowns"); names != nil {
		attributes := make([]models.Attribute, 0, len(names))
		for _, name := range names {
			attribute, err := models.NewAttributeFromString(name)
			if err != nil {
				return reports.Options{}, errInvalidReportQuery("breakdowns", name, expectation(validators.TagAttribute), err)
			}
			attributes = append(attributes, attribute)
		}
		opts.BreakdownAttributes = attributes
	}
	return opts, nil
}

// splitList reads a repeatable, comma separated parameter. It returns nil when
// the parameter is absent and an empty slice when it is present but blank.
func splitList(values url.Values, key string) []string {
	raw, ok := values[key]
	if !ok {
		return nil
	}
	list := make([]string, 0, len(raw))
	for _, value := range raw {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				list = append(list, item)
			}
		}
	}
	return list
}

// overrideTopN sets *dst from an already validated, possibly empty value.
func overrideTopN(dst *models.TopN, value string) {
	if value == "" {
		return
	}
	if n, err := models.ParseTopN(value); err == nil {
		*dst = n
	}
}

func expectation(tag string) string {
	switch tag {
	case "number":
		return "must be a non-negative integer"
	case validators.TagTopN:
		return `must be "all" or a positive integer`
	case validators.TagAttribute:
		return "must be one of ip, url, status, method, timezone"
	default:
		return "failed on " + tag
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
