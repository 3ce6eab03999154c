package employee

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	employeeerrors "go-arquivo/internal/employee/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return employeeerrors.ErrRegistrationAlreadyExists
		case "23503":
			if strings.Contains(pgErr.ConstraintName, "department") {
				return employeeerrors.ErrDepartmentNotFound
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") || strings.Contains(errMsg, "unique constraint") {
		return employeeerrors.ErrRegistrationAlreadyExists
	}

	return err
}
