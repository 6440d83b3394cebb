package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Absence is a normal lookup result, not a failure.
var (
	ErrReportNotFound  = errors.New("report not found")
	ErrProductNotFound = errors.New("product not found")
)

// InitializationError means the underlying storage could not be opened.
// Fatal to the session, the caller decides what to do with it.
type InitializationError struct {
	Path string
	Err  error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("storage init failed for %s: %v", e.Path, e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// TransactionError means a multi-step operation failed partway. The
// whole operation is reported as one failure, no partial success.
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s: transaction failed: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }

// ValidationError carries the required fields the caller left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
