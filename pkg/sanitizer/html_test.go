package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/workopia/pkg/sanitizer"
)

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips script injection",
			input:    `<p>Hello</p><script>alert('xss')</script>`,
			expected: "Hello",
		},
		{
			name:     "strips nested tags",
			input:    `<div><p>Senior <strong>Go</strong> developer</p></div>`,
			expected: "Senior Go developer",
		},
		{
			name:     "strips event handlers",
			input:    `<img src="x" onerror="alert('xss')">`,
			expected: "",
		},
		{
			name:     "keeps link text",
			input:    `<a href="javascript:alert('xss')">apply</a>`,
			expected: "apply",
		},
		{
			name:     "decodes entities",
			input:    `Smith & Sons <b>Ltd</b>`,
			expected: "Smith & Sons Ltd",
		},
		{
			name:     "keeps quotes and apostrophes",
			input:    `O'Reilly "Media"`,
			expected: `O'Reilly "Media"`,
		},
		{
			name:     "trims whitespace",
			input:    "   Boston  \n",
			expected: "Boston",
		},
		{
			name:     "whitespace only becomes empty",
			input:    " <br> ",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripTags(tt.input))
		})
	}
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains string
		absent   string
	}{
		{
			name:     "keeps formatting",
			input:    `<p>We offer <strong>remote</strong> work</p>`,
			contains: "<strong>remote</strong>",
		},
		{
			name:   "drops script",
			input:  `<p>ok</p><script>alert(1)</script>`,
			absent: "<script",
		},
		{
			name:   "drops event handler",
			input:  `<p onclick="alert(1)">click</p>`,
			absent: "onclick",
		},
		{
			name:     "adds nofollow to links",
			input:    `<a href="https://example.com">site</a>`,
			contains: `rel="nofollow`,
		},
		{
			name:   "drops javascript url",
			input:  `<a href="javascript:alert(1)">x</a>`,
			absent: "javascript:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := sanitizer.SanitizeHTML(tt.input)
			if tt.contains != "" {
				assert.Contains(t, out, tt.contains)
			}
			if tt.absent != "" {
				assert.NotContains(t, out, tt.absent)
			}
		})
	}
}
