package parsers

import (
	"strings"

	"access-log-analytics/internal/models"
)

const (
	maxTokens = 11
	minTokens = 9
)

// Token positions in a line of the form
//
//	<ip> <ident> <user> [<timestamp> <timezone>] "<method> <url> <protocol>" <status> <size> "<message>"
//
// ident and user (1 and 2) are never surfaced but still occupy their positions.
const (
	tokenIPAddress = 0
	tokenTimestamp = 3
	tokenTimezone  = 4
	tokenMethod    = 5
	tokenURL       = 6
	tokenProtocol  = 7
	tokenStatus    = 8
	tokenSize      = 9
	tokenMessage   = 10
)

type LineParser interface {
	// Parse turns one raw log line into a record.
	// It returns false for malformed lines, which callers skip silently.
	Parse(line string) (*models.LogRecord, bool)
}

type lineParser struct{}

func NewLineParser() LineParser {
	return &lineParser{}
}

func (p *lineParser) Parse(line string) (*models.LogRecord, bool) {
	line = trimLineEnding(line)

	// The last token keeps its embedded spaces: messages are free text.
	tokens := strings.SplitN(line, " ", maxTokens)
	if len(tokens) < minTokens {
		return nil, false
	}

	record := &models.LogRecord{
		IPAddress: tokens[tokenIPAddress],
		Timestamp: strings.TrimPrefix(tokens[tokenTimestamp], "["),
		Timezone:  strings.TrimSuffix(tokens[tokenTimezone], "]"),
		Method:    strings.Trim(tokens[tokenMethod], `"`),
		URL:       tokens[tokenURL],
		Protocol:  strings.Trim(tokens[tokenProtocol], `"`),
		Status:    tokens[tokenStatus],
	}

	if len(tokens) > tokenSize {
		size := trimLineEnding(tokens[tokenSize])
		record.Size = &size
	}
	if len(tokens) > tokenMessage {
		message := strings.Trim(trimLineEnding(tokens[tokenMessage]), `"`)
		record.Message = &message
	}

	return record, true
}

func trimLineEnding(s string) string {
	return strings.TrimRight(s, "\r\n")
}
