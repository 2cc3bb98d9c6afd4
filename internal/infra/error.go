package infra

import (
	"errors"
	"log/slog"

	"parkdesk/internal/pkg/errs"
)

type StorageErrorKind string

type StorageError struct {
	Kind StorageErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StorageError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StorageError) Unwrap() error {
	return e.err
}

func WrapStorageErr(slogger *slog.Logger, kind StorageErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}

	slogger.Error("Storage error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return StorageError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind StorageErrorKind) bool {
	var e StorageError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     StorageErrorKind = "NOT_FOUND"
	KindStoreFailure StorageErrorKind = "STORE_FAILURE"
	KindMalformed    StorageErrorKind = "MALFORMED_RECORD"
)
