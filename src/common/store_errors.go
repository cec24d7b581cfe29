package common

import "fmt"

// StoreErrType enumerates the kinds of errors that stores can return.
type StoreErrType uint32

const (
	// KeyNotFound means the requested item is not in the store and nothing,
	// not even a Root, could serve as a legitimate fallback.
	KeyNotFound StoreErrType = iota
	// TooLate means the requested item was evicted from a bounded cache.
	TooLate
	// PassedIndex means the requested index is below the cached window.
	PassedIndex
	// SkippedIndex means an insertion would leave a gap in a sequence.
	SkippedIndex
	// NoRoot means a participant has neither resident events nor a Root.
	NoRoot
	// UnknownParticipant means the participant was not declared at
	// construction time.
	UnknownParticipant
	// Empty means the index exists but contains no items.
	Empty
	// KeyAlreadyExists means an insertion would overwrite a declared key.
	KeyAlreadyExists
)

// StoreErr is a tagged error returned by store lookups and insertions. It
// records which cache produced the error, the kind of error, and the key that
// failed to resolve.
type StoreErr struct {
	dataType string
	errType  StoreErrType
	key      string
}

// NewStoreErr creates a StoreErr.
func NewStoreErr(dataType string, errType StoreErrType, key string) StoreErr {
	return StoreErr{
		dataType: dataType,
		errType:  errType,
		key:      key,
	}
}

// Error implements the error interface.
func (e StoreErr) Error() string {
	m := ""
	switch e.errType {
	case KeyNotFound:
		m = "Not Found"
	case TooLate:
		m = "Too Late"
	case PassedIndex:
		m = "Passed Index"
	case SkippedIndex:
		m = "Skipped Index"
	case NoRoot:
		m = "No Root"
	case UnknownParticipant:
		m = "Unknown Participant"
	case Empty:
		m = "Empty"
	case KeyAlreadyExists:
		m = "Key Already Exists"
	}

	return fmt.Sprintf("%s, %s, %s", e.dataType, e.key, m)
}

// Is checks that an error is of type StoreErr and that its code matches the
// provided StoreErrType.
func Is(err error, t StoreErrType) bool {
	storeErr, ok := err.(StoreErr)
	return ok && storeErr.errType == t
}
