package models

import (
	"fmt"
	"strings"
)

// Attribute names a LogRecord field that reports can be grouped by.
type Attribute string

const (
	AttributeIPAddress Attribute = "ip"
	AttributeURL       Attribute = "url"
	AttributeStatus    Attribute = "status"
	AttributeMethod    Attribute = "method"
	AttributeTimezone  Attribute = "timezone"
)

// Attributes lists every supported grouping attribute.
var Attributes = []Attribute{
	AttributeIPAddress,
	AttributeURL,
	AttributeStatus,
	AttributeMethod,
	AttributeTimezone,
}

// IsValid reports whether a is one of Attributes.
func (a Attribute) IsValid() bool {
	for _, known := range Attributes {
		if a == known {
			return true
		}
	}
	return false
}

// NewAttributeFromString parses an attribute name, case-insensitively.
func NewAttributeFromString(s string) (Attribute, error) {
	attribute := Attribute(strings.ToLower(strings.TrimSpace(s)))
	if !attribute.IsValid() {
		return "", fmt.Errorf("invalid attribute: %q", s)
	}
	return attribute, nil
}

// Key returns the value of the attribute on record, or "" for an invalid attribute.
func (a Attribute) Key(record *LogRecord) string {
	switch a {
	case AttributeIPAddress:
		return record.IPAddress
	case AttributeURL:
		return record.URL
	case AttributeStatus:
		return record.Status
	case AttributeMethod:
		return record.Method
	case AttributeTimezone:
		return record.Timezone
	default:
		return ""
	}
}

// KeyHeader is the column title used for the attribute in exported tables.
func (a Attribute) KeyHeader() string {
	switch a {
	case AttributeIPAddress:
		return "IP Address"
	case AttributeURL:
		return "URL"
	case AttributeStatus:
		return "Status"
	case AttributeMethod:
		return "Method"
	case AttributeTimezone:
		return "Timezone"
	default:
		return string(a)
	}
}
