package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected Tag
	}{
		{
			name:     "flat results shape from the API export",
			input:    `{"scanMetadata":{"scanId":"1234"},"results":[{"type":"containers"}]}`,
			expected: TagResultsJSON,
		},
		{
			name:     "flat results shape from the CLI json export",
			input:    `{"results":[{"type":"containers"}]}`,
			expected: TagResultsJSON,
		},
		{
			name:     "flat results shape with an empty results array",
			input:    `{"results":[]}`,
			expected: TagResultsJSON,
		},
		{
			name:     "nested report shape from the CLI jsonv2 export",
			input:    `{"reportType":"security","images":[{"image":"python:alpine3.8"}]}`,
			expected: TagReportJSON,
		},
		{
			name:     "nested report shape wins over a stray results key",
			input:    `{"reportType":"security","images":[],"results":[]}`,
			expected: TagReportJSON,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tag, err := Detect([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, tag)
		})
	}
}

func TestDetectUnrecognized(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{
			name:  "unrelated document",
			input: `{"foo":"bar"}`,
		},
		{
			name:  "empty document",
			input: `{}`,
		},
		{
			name:  "reportType marker without an images section",
			input: `{"reportType":"security"}`,
		},
		{
			name:  "images section without a reportType marker",
			input: `{"images":[]}`,
		},
		{
			name:  "results holding an object instead of a sequence",
			input: `{"results":{"type":"containers"}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tag, err := Detect([]byte(tc.input))
			assert.Equal(t, TagUnknown, tag)
			require.ErrorIs(t, err, ErrUnrecognizedFormat)
		})
	}
}

func TestDetectInvalidJSON(t *testing.T) {
	_, err := Detect([]byte("not a scan report"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnrecognizedFormat)
}
