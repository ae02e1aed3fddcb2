package storage

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrSerialization marks a serializable-isolation conflict detected by
// Postgres. It is surfaced to the caller untouched; retrying is the caller's
// decision, never the storage layer's.
var ErrSerialization = errors.New("storage: serialization conflict")

// SQLSTATE for serialization_failure.
const serializationFailureCode = "40001"

func wrapSerialization(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == serializationFailureCode {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return err
}

// IsSerializationFailure reports whether err is a store-level serialization
// conflict, wrapped or raw from the driver.
func IsSerializationFailure(err error) bool {
	if errors.Is(err, ErrSerialization) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == serializationFailureCode
}
