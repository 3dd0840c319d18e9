package adapters

import (
	"regexp"
	"strings"

	apperrors "github.com/gitfolio/gitfolio/internal/errors"
)

// GitHub usernames are 1-39 alphanumeric characters with single interior
// hyphens.
var (
	profileURLPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?github\.com/([a-zA-Z0-9](?:[a-zA-Z0-9]|-[a-zA-Z0-9]){0,38})$`)
	usernamePattern   = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9]|-[a-zA-Z0-9]){0,38}$`)
)

// ParseUsername extracts a GitHub username from either a profile URL or a
// bare handle.
func ParseUsername(input string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(input), "/")

	if m := profileURLPattern.FindStringSubmatch(trimmed); m != nil && len(m[1]) <= 39 {
		return m[1], nil
	}
	if len(trimmed) <= 39 && usernamePattern.MatchString(trimmed) {
		return trimmed, nil
	}
	return "", apperrors.NewValidationError("invalid GitHub username or profile URL")
}
