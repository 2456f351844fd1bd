package services

import (
	"regexp"
	"strings"

	"sensiblenews/internal/config"
)

// ValidationError carries the human-readable reasons a submission was
// rejected before reaching the moderation engine.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationError) add(msg string) {
	e.Messages = append(e.Messages, msg)
}

// Patterns for markup that must never reach storage, whatever the
// sanitizer would later do with it.
var (
	scriptPattern       = regexp.MustCompile(`(?is)<\s*script`)
	onEventPattern      = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	jsProtocolPattern   = regexp.MustCompile(`(?i)javascript\s*:`)
	dataURIPattern      = regexp.MustCompile(`(?i)data\s*:\s*text/html`)
	dangerousSubstrings = []string{"<?php", "<%", "eval(", "expression("}
)

// ContainsDangerousContent reports whether input carries script injection
// markers.
func ContainsDangerousContent(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}
	if scriptPattern.MatchString(input) ||
		onEventPattern.MatchString(input) ||
		jsProtocolPattern.MatchString(input) ||
		dataURIPattern.MatchString(input) {
		return true
	}
	lower := strings.ToLower(input)
	for _, s := range dangerousSubstrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// ValidateComment checks comment content before moderation runs. Returns a
// *ValidationError listing every violation, or nil.
func ValidateComment(content string) error {
	verr := &ValidationError{}

	if strings.TrimSpace(content) == "" {
		verr.add("Comment cannot be empty")
		return verr
	}

	if len(content) < config.DefaultCommentMinLength {
		verr.add("Comment is too short (minimum 2 characters)")
	}

	if len(content) > config.DefaultCommentMaxLength {
		verr.add("Comment is too long (maximum 2000 characters)")
	}

	if ContainsDangerousContent(content) {
		verr.add("Comment contains potentially dangerous content")
	}

	if len(verr.Messages) > 0 {
		return verr
	}
	return nil
}

// ValidateReportReason checks a report's reason string.
func ValidateReportReason(reason string) error {
	verr := &ValidationError{}

	if strings.TrimSpace(reason) == "" {
		verr.add("Report reason is required")
	} else if len(reason) > 200 {
		verr.add("Report reason is too long (maximum 200 characters)")
	}

	if len(verr.Messages) > 0 {
		return verr
	}
	return nil
}
