package document

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	documenterrors "go-arquivo/internal/document/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		if strings.Contains(pgErr.ConstraintName, "employee") {
			return documenterrors.ErrEmployeeNotFound
		}
		return documenterrors.ErrDocumentTypeNotFound
	}

	return err
}
