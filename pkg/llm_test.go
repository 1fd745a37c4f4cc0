package pkg

import (
	"testing"

	"jobhunter/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```":   `{"a":1}`,
		"```JSON\n{\"a\":1}```":     `{"a":1}`,
		"```\n{\"a\":1}\n```  ":     `{"a":1}`,
		`{"a":1}`:                   `{"a":1}`,
		"Dear hiring manager,\nHi": "Dear hiring manager,\nHi",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripCodeFences(in))
	}
}

func TestDecodeCompletion(t *testing.T) {
	type reply struct {
		Subject string `json:"subject"`
	}

	got, err := DecodeCompletion[reply](` {"subject":"Hello"} `)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Subject)

	_, err = DecodeCompletion[reply]("Sure! Here is your email")
	require.Error(t, err)
	assert.Equal(t, apperr.KindMalformedResponse, apperr.KindOf(err))
}

func TestUsageFrom(t *testing.T) {
	assert.Equal(t, Usage{InputTokens: 12, OutputTokens: 34}, usageFrom(map[string]any{"InputTokens": 12, "OutputTokens": 34}))
	assert.Equal(t, Usage{InputTokens: 5, OutputTokens: 7}, usageFrom(map[string]any{"PromptTokens": 5, "CompletionTokens": float64(7)}))
	assert.Equal(t, Usage{}, usageFrom(nil))
}
