// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips dangerous markup from user-supplied text
// before it is stored. Descriptions may carry basic formatting, so the
// policy allows common user-generated-content tags while removing
// scripts, event handlers, and javascript: URLs.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize returns the input with unsafe HTML removed.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	return policy.Sanitize(input)
}
