package event

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	assert.True(t, IsDuplicate(NewDuplicate("workout")))
	assert.True(t, IsNotFound(NewNotFound("workout")))
	assert.True(t, IsInvalidName(NewInvalidName("", "name is empty")))
	assert.True(t, IsCorruptStore(NewCorruptStore("/tmp/data.json", errors.New("bad json"))))
	assert.Equal(t, CodeIOFailure, CodeOf(NewIOFailure("read store file", errors.New("boom"))))
}

func TestPredicatesRejectOtherCodes(t *testing.T) {
	err := NewNotFound("workout")
	assert.False(t, IsDuplicate(err))
	assert.False(t, IsInvalidName(err))
	assert.False(t, IsCorruptStore(err))
}

func TestCodeOf_NonDomainError(t *testing.T) {
	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
	assert.Equal(t, Code(""), CodeOf(nil))
}

func TestMatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading store: %w", NewNotFound("workout"))
	require.True(t, IsNotFound(wrapped))
	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewCorruptStore("/tmp/data.json", cause)
	assert.Contains(t, err.Error(), "CORRUPT_STORE")
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
	assert.ErrorIs(t, err, cause)
}

func TestDuplicateMessageHintsAtDid(t *testing.T) {
	// Duplicate errors point users at the update verb.
	err := NewDuplicate("workout")
	assert.Contains(t, err.Message, "did")
	assert.Equal(t, "workout", err.Name)
}
