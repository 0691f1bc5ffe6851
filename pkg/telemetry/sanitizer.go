package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// PIILevel defines how much caller-supplied text may reach logs and spans.
type PIILevel string

const (
	// PIILevelNone redacts all user content
	PIILevelNone PIILevel = "none"
	// PIILevelHashed replaces detected PII with salted hashes
	PIILevelHashed PIILevel = "hashed"
	// PIILevelFull performs no PII sanitization (credentials are still masked)
	PIILevelFull PIILevel = "full"
)

// DefaultPreviewLength bounds how many runes of user text are logged.
const DefaultPreviewLength = 200

type piiRule struct {
	label   string
	pattern *regexp.Regexp
	hashed  bool
}

// Sanitizer scrubs room descriptions and chat messages before they are logged.
type Sanitizer struct {
	level      PIILevel
	salt       string
	previewLen int
	rules      []piiRule
	secrets    *regexp.Regexp
}

// NewSanitizer creates a sanitizer; salt keeps hashes stable per deployment.
func NewSanitizer(level PIILevel, salt string) *Sanitizer {
	return &Sanitizer{
		level:      level,
		salt:       salt,
		previewLen: DefaultPreviewLength,
		rules: []piiRule{
			{label: "EMAIL", pattern: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`), hashed: true},
			{label: "CC", pattern: regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`)},
			{label: "PHONE", pattern: regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`), hashed: true},
			{label: "IP", pattern: regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), hashed: true},
		},
		secrets: regexp.MustCompile(`(?i)(bearer\s+[a-z0-9._\-]+|\bsk-[a-z0-9_\-]{8,})`),
	}
}

// Level returns the configured level.
func (s *Sanitizer) Level() PIILevel {
	return s.level
}

// Sanitize applies the configured PII level to free text from a caller or the model.
func (s *Sanitizer) Sanitize(input string) string {
	if input == "" {
		return ""
	}
	masked := s.secrets.ReplaceAllString(input, "[SECRET:REDACTED]")

	switch s.level {
	case PIILevelNone:
		return "[REDACTED]"
	case PIILevelFull:
		return masked
	default:
		return s.hashPII(masked)
	}
}

// Preview sanitizes input and truncates it for log lines.
func (s *Sanitizer) Preview(input string) string {
	sanitized := s.Sanitize(input)
	if utf8.RuneCountInString(sanitized) <= s.previewLen {
		return sanitized
	}
	runes := []rune(sanitized)
	return string(runes[:s.previewLen]) + "..."
}

func (s *Sanitizer) hashPII(input string) string {
	result := input
	for _, rule := range s.rules {
		rule := rule
		result = rule.pattern.ReplaceAllStringFunc(result, func(match string) string {
			if !rule.hashed {
				return fmt.Sprintf("[%s:REDACTED]", rule.label)
			}
			return fmt.Sprintf("[%s:%s]", rule.label, s.hash(match))
		})
	}
	return result
}

// hash returns the first 8 hex chars of a salted SHA-256.
func (s *Sanitizer) hash(data string) string {
	sum := sha256.Sum256([]byte(data + s.salt))
	return hex.EncodeToString(sum[:])[:8]
}
