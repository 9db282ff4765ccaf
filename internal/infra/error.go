package infra

import (
	"errors"
	"log/slog"

	"course-cart/internal/pkg/errs"
)

type StorageErrorKind string

// StorageError classifies failures reported by a key-value backend.
type StorageError struct {
	Kind    StorageErrorKind
	Backend string
	msg     string
	err     error
}

func (e StorageError) Error() string {
	prefix := string(e.Kind)
	if e.Backend != "" {
		prefix += " (" + e.Backend + ")"
	}
	if e.err != nil {
		return prefix + ": " + e.msg + ": " + e.err.Error()
	}
	return prefix + ": " + e.msg
}

func (e StorageError) Unwrap() error {
	return e.err
}

func WrapStorageErr(slogger *slog.Logger, backend string, kind StorageErrorKind, msg string, err error) error {
	slogger.Error("Storage error: "+msg,
		slog.String("kind", string(kind)),
		slog.String("backend", backend),
	)

	if err != nil {
		err = errs.Mark(errs.Wrap(err, msg), errs.ErrStorageOperationFailed)
	}

	return StorageError{Kind: kind, Backend: backend, msg: msg, err: err}
}

func IsKind(err error, kind StorageErrorKind) bool {
	var e StorageError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindUnavailable StorageErrorKind = "UNAVAILABLE"
	KindTimeout     StorageErrorKind = "TIMEOUT"
	KindReadFailed  StorageErrorKind = "READ_FAILED"
	KindWriteFailed StorageErrorKind = "WRITE_FAILED"
)
