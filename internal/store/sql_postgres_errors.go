package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement is worth retrying.
// The repositories never retry on their own; the classification is logged
// so transient outages are distinguishable from bad queries.
type ErrorClassification int

// PostgresErrorClassifier maps pgx driver errors to an [ErrorClassification].
type PostgresErrorClassifier struct{}

const (
	// NonRetryable is the default, including constraint violations.
	NonRetryable ErrorClassification = iota

	// Retryable covers connection loss, serialization failures and deadlocks.
	Retryable
)

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not come from
// PostgreSQL, such as sql.ErrNoRows or a cancelled context, are
// [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] by its
// SQLSTATE class. Connection exceptions (08), transaction rollbacks (40) and
// operator intervention (57) are retryable; everything else, including data
// exceptions and integrity violations, is not.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgerrcode.IsOperatorIntervention(pgErr.Code):
		return Retryable
	}

	return NonRetryable
}
