package inftable

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidKey is returned for keys with characters outside 'a'..'z'.
	ErrInvalidKey = errors.New("invalid key")
	// ErrKeyNotFound is returned by Lookup, Delete and LocatePath for absent keys.
	ErrKeyNotFound = errors.New("key not found")
)

// KeyError records a failed table operation and the key that caused it.
type KeyError struct {
	Op  string
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return e.Op + " " + strconv.Quote(e.Key) + ": " + e.Err.Error()
}

func (e *KeyError) Unwrap() error { return e.Err }

// Cause lets errors.Cause reach the sentinel.
func (e *KeyError) Cause() error { return e.Err }

func newKeyError(op, key string, err error) error {
	return errors.WithStack(&KeyError{Op: op, Key: key, Err: err})
}
