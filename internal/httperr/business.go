package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeTimeConflict    = "time_conflict"
	CodeInvalidWindow   = "invalid_window"
	CodeInvalidDuration = "invalid_duration"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsExclusionConflict reports Postgres exclusion (23P01) and unique (23505)
// violations, which the booking ledger raises for double-booked windows.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" || pgErr.Code == "23505"
	}
	return false
}
