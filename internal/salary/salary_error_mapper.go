package salary

import (
	"errors"
	"strings"

	salaryerrors "go-salary/internal/salary/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueEmailConstraint = "users_email_key"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if isUniqueEmailViolation(err) {
		return salaryerrors.ErrEmailAlreadyExists
	}

	return err
}

func isUniqueEmailViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == uniqueEmailConstraint
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueEmailConstraint)
}
