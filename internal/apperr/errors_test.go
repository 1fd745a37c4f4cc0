package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("job %s not found", "abc")))
	assert.Equal(t, KindValidation, KindOf(Validation("bad")))
	assert.Equal(t, KindExternalService, KindOf(External(errors.New("dial tcp"), "smtp failed")))
	assert.Equal(t, KindMalformedResponse, KindOf(Malformed(errors.New("eof"), "bad json")))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("loading application: %w", NotFound("application not found"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestMessage(t *testing.T) {
	err := External(errors.New("connection refused"), "SMTP connection failed")
	assert.Equal(t, "SMTP connection failed", Message(err))
	assert.Equal(t, "SMTP connection failed: connection refused", err.Error())
	assert.True(t, errors.Is(err, ErrExternalService))

	assert.Equal(t, "plain", Message(errors.New("plain")))
}
