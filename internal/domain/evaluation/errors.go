package evaluation

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// ErrDuplicateWeek signals that an evaluation already exists for the
// (employee, week-start) pair. The uniqueness constraint is the only
// serialization between concurrent submissions.
var ErrDuplicateWeek = errors.New("evaluation already submitted for this week")

func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicateWeek
	}
	return err
}
