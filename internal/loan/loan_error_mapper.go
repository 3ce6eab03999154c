package loan

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	loanerrors "go-arquivo/internal/loan/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return loanerrors.ErrEmployeeNotFound
	}

	return err
}
