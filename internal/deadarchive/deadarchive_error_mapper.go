package deadarchive

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	deadarchiveerrors "go-arquivo/internal/deadarchive/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return deadarchiveerrors.ErrBoxAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") || strings.Contains(errMsg, "unique constraint") {
		return deadarchiveerrors.ErrBoxAlreadyExists
	}

	return err
}
