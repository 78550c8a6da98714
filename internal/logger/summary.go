package logger

import (
	"fmt"
	"regexp"
	"strings"
)

// ParamInfo is a logging view of one bound parameter. It carries pre-rendered
// type and direction names so this package stays independent of the parameter
// model.
type ParamInfo struct {
	Name      string
	Type      string
	Direction string
	Value     any
}

// Summarizer renders parameter collections for error logs and masks values of
// sensitively named parameters to prevent accidental logging of secrets.
type Summarizer struct {
	sensitiveFields []string
	maskValue       string
	// Compiled patterns for faster matching
	patterns []*regexp.Regexp
}

// NewSummarizer creates a new summarizer with the specified sensitive field names.
// If no fields are provided, a default set of common sensitive field names is used.
func NewSummarizer(sensitiveFields []string) *Summarizer {
	if len(sensitiveFields) == 0 {
		// Default sensitive field names (common patterns)
		sensitiveFields = []string{
			"password", "passwd", "pwd",
			"token", "api_key", "apikey", "api_token",
			"secret", "auth", "authorization",
			"credit_card", "card_number", "cvv", "cvc",
			"ssn", "social_security",
			"private_key", "priv_key",
		}
	}

	// Compile patterns for efficient matching
	patterns := make([]*regexp.Regexp, 0, len(sensitiveFields))
	for _, field := range sensitiveFields {
		// Match the field as a whole underscore-delimited segment of the
		// normalized parameter name, so "user_secret" matches "secret" but
		// "passport" does not match "pass" or "password".
		pattern := regexp.MustCompile(`(?i)(?:^|[^a-z0-9])` + regexp.QuoteMeta(field) + `(?:[^a-z0-9]|$)`)
		patterns = append(patterns, pattern)
	}

	return &Summarizer{
		sensitiveFields: sensitiveFields,
		maskValue:       "***REDACTED***",
		patterns:        patterns,
	}
}

// Describe renders a parameter collection as ordinal-numbered lines, one per
// parameter, suitable for error logs:
//
//	1. @CustomerID (Int32, Input) = 42
//	2. @Password (String, Input) = ***REDACTED***
//
// It returns "None" when no parameter collection was built.
func (s *Summarizer) Describe(params []ParamInfo) string {
	if len(params) == 0 {
		return "None"
	}

	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s (%s, %s) = %s",
			i+1, p.Name, p.Type, p.Direction, s.renderValue(p))
	}
	return b.String()
}

// renderValue formats a single parameter value, masking sensitive names.
func (s *Summarizer) renderValue(p ParamInfo) string {
	if s.isSensitiveName(p.Name) {
		return s.maskValue
	}
	return s.formatValue(p.Value)
}

// isSensitiveName checks whether a parameter name matches any sensitive pattern.
// Names are compared underscore-normalized so @ApiKey and @api_key both match.
func (s *Summarizer) isSensitiveName(name string) bool {
	normalized := normalizeName(name)
	for _, pattern := range s.patterns {
		if pattern.MatchString(normalized) {
			return true
		}
	}
	return false
}

// normalizeName strips the "@" sigil and converts CamelCase to snake_case.
func normalizeName(name string) string {
	name = strings.TrimPrefix(name, "@")
	var b strings.Builder
	for i, r := range name {
		if i > 0 && 'A' <= r && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// formatValue formats a single parameter value for logging.
// Truncates very long values to prevent log pollution.
func (s *Summarizer) formatValue(v any) string {
	if v == nil {
		return "NULL"
	}

	str := fmt.Sprintf("%v", v)

	const maxLen = 100
	if len(str) > maxLen {
		return str[:maxLen] + "..."
	}

	return str
}
