package infra

import (
	"context"
	"errors"
	"log/slog"

	"shift-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs once at the repository boundary and returns a classified error.
// Not-found and lost-race outcomes are expected traffic and are not logged as errors.
func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	level := slog.LevelError
	switch kind {
	case KindNotFound:
		level = slog.LevelDebug
	case KindPreconditionFailed:
		level = slog.LevelWarn
	}
	slogger.Log(context.Background(), level, "Repository error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindFromPgError classifies a raw pgx error.
func KindFromPgError(err error) RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}
	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return KindDuplicateKey
	case pgErrCodeExclusionViolation, pgErrCodeSerializationFailure:
		return KindPreconditionFailed
	case pgErrCodeCheckViolation:
		return KindInvalidRecord
	default:
		return KindDBFailure
	}
}

const (
	pgErrCodeUniqueViolation      = "23505"
	pgErrCodeCheckViolation       = "23514"
	pgErrCodeExclusionViolation   = "23P01"
	pgErrCodeSerializationFailure = "40001"
)

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindInvalidRecord      RepositoryErrorKind = "INVALID_RECORD"
	KindPreconditionFailed RepositoryErrorKind = "PRECONDITION_FAILED"
)
