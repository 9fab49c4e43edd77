// Package redact strips sensitive fragments from strings before they are
// logged: connection strings, credentials, tokens and raw SQL. Error
// messages pass through it on their way into structured logs so a
// database error can never leak a password into the log stream.
package redact

import "regexp"

// Placeholder substituted for redacted fragments.
const Placeholder = "[REDACTED]"

var (
	dbConnPattern   = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)
	passwordPattern = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)
	secretPattern   = regexp.MustCompile(`(?i)(api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)
	jwtPattern      = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)
	sqlPattern      = regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)\s[\s\w,*()='"$]+(FROM|INTO|SET|WHERE)[\s\w,*()='"$]*`)
)

var patterns = []*regexp.Regexp{
	dbConnPattern,
	passwordPattern,
	secretPattern,
	jwtPattern,
	sqlPattern,
}

// String returns s with every sensitive fragment replaced by the
// placeholder.
func String(s string) string {
	for _, p := range patterns {
		s = p.ReplaceAllString(s, Placeholder)
	}
	return s
}

// Error redacts an error's message. Returns an empty string for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
