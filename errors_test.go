package rrdb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigErrorWrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := configErrorf(cause, "bad thing %d", 1)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "bad thing 1")
	assert.Contains(t, err.Error(), "boom")
}

func TestCorruptionErrorIsErrCorrupt(t *testing.T) {
	err := corruptionErrorf("/tmp/x.rrdb", nil, "short read")
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Contains(t, err.Error(), "/tmp/x.rrdb")
}

func TestDomainErrorIsErrNoSuitableArchive(t *testing.T) {
	err := domainErrorf("out of range")
	assert.ErrorIs(t, err, ErrNoSuitableArchive)
}

func TestPropagationErrorUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := &PropagationError{FromSecondsPerPoint: 10, ToSecondsPerPoint: 60, Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "10s")
	assert.Contains(t, err.Error(), "60s")
}

func TestIOErrorUnwraps(t *testing.T) {
	cause := errors.New("permission denied")
	err := ioErrorf("open", "/tmp/x.rrdb", cause)
	assert.ErrorIs(t, err, cause)
}
