package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUsername(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "bare username", input: "octocat", expected: "octocat"},
		{name: "hyphenated username", input: "my-user-1", expected: "my-user-1"},
		{name: "surrounding whitespace", input: "  octocat  ", expected: "octocat"},
		{name: "profile url", input: "https://github.com/octocat", expected: "octocat"},
		{name: "profile url without scheme", input: "github.com/octocat", expected: "octocat"},
		{name: "profile url with www", input: "https://www.github.com/octocat", expected: "octocat"},
		{name: "trailing slash", input: "https://github.com/octocat/", expected: "octocat"},
		{name: "empty input", input: "", wantErr: true},
		{name: "leading hyphen", input: "-octocat", wantErr: true},
		{name: "double hyphen", input: "octo--cat", wantErr: true},
		{name: "repo url is not a profile", input: "https://github.com/octocat/hello", wantErr: true},
		{name: "too long", input: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", wantErr: true},
		{name: "illegal characters", input: "octo cat", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUsername(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
