package cabinet

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	cabineterrors "go-arquivo/internal/cabinet/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_drawer_number":
			return cabineterrors.ErrDrawerAlreadyExists
		default:
			return cabineterrors.ErrCabinetAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") || strings.Contains(errMsg, "unique constraint") {
		if strings.Contains(errMsg, "uq_drawer_number") {
			return cabineterrors.ErrDrawerAlreadyExists
		}
		return cabineterrors.ErrCabinetAlreadyExists
	}

	return err
}
