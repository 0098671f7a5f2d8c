// Package validators holds the declarative field-presence rules evaluated
// against incoming request bodies before any handler logic runs.
package validators

import "strings"

type Rule struct {
	Field   string
	Message string
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// EventRules guard create-event and update-event payloads.
var EventRules = []Rule{
	{Field: "title", Message: "Title is required"},
	{Field: "content", Message: "Content for the post is required."},
}

// Check evaluates rules against the named fields of a request body. Each rule
// is a pure non-empty requirement; a nil result means pass.
func Check(rules []Rule, fields map[string]string) []FieldError {
	var errs []FieldError
	for _, rule := range rules {
		if strings.TrimSpace(fields[rule.Field]) == "" {
			errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
		}
	}
	return errs
}
