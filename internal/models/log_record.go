package models

// LogRecord is one parsed access-log line.
//
// Example source line:
//
//	10.0.0.1 - - [01/Jan/2024:00:00:00 +0000] "GET /login HTTP/1.1" 401 512 "Invalid credentials"
//
// Status is kept as the raw token and compared as a string; logs may carry
// non-numeric placeholders such as "-". Size and Message are nil when the line
// did not have the corresponding token.
//
// Records are created by the parser and never mutated afterwards.
type LogRecord struct {
	IPAddress string  `json:"ipAddress"`
	Timestamp string  `json:"timestamp"`
	Timezone  string  `json:"timezone"`
	Method    string  `json:"method"`
	URL       string  `json:"url"`
	Protocol  string  `json:"protocol"`
	Status    string  `json:"status"`
	Size      *string `json:"size,omitempty"`
	Message   *string `json:"message,omitempty"`
}

// HasMessage reports whether the record carries a message equal to msg.
func (r *LogRecord) HasMessage(msg string) bool {
	return r.Message != nil && *r.Message == msg
}
