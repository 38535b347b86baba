package http

import "strings"

// containsFieldMsg reports whether any validation detail for the named field
// mentions substr. Used by handler tests to pin error payloads without
// depending on exact message wording.
func containsFieldMsg(details []FieldError, field, substr string) bool {
	for _, d := range details {
		if d.Field != field {
			continue
		}
		if strings.Contains(d.Message, substr) {
			return true
		}
	}
	return false
}
