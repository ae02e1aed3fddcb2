package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure_DriverCode(t *testing.T) {
	driverErr := &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}

	assert.True(t, IsSerializationFailure(driverErr))
	assert.True(t, IsSerializationFailure(fmt.Errorf("commit: %w", driverErr)))
}

func TestIsSerializationFailure_WrappedSentinel(t *testing.T) {
	assert.True(t, IsSerializationFailure(ErrSerialization))
	assert.True(t, IsSerializationFailure(fmt.Errorf("process: %w", ErrSerialization)))
}

func TestIsSerializationFailure_OtherErrors(t *testing.T) {
	assert.False(t, IsSerializationFailure(nil))
	assert.False(t, IsSerializationFailure(errors.New("connection refused")))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
}

func TestWrapSerialization(t *testing.T) {
	driverErr := &pq.Error{Code: "40001"}

	wrapped := wrapSerialization(driverErr)
	assert.ErrorIs(t, wrapped, ErrSerialization)

	other := errors.New("disk full")
	assert.Equal(t, other, wrapSerialization(other))
	assert.NoError(t, wrapSerialization(nil))
}

func TestWriter_NilTransactionGuards(t *testing.T) {
	writer := &Writer{}

	assert.NoError(t, writer.Commit())
	assert.NoError(t, writer.Rollback())
}
