package deadarchiveerrors

import (
	"net/http"

	"go-arquivo/internal/shared/apperror"
)

var (
	ErrBoxNotFound = apperror.New(
		apperror.CodeNotFound,
		"Archive box not found",
		http.StatusNotFound,
	)
	ErrBoxAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Archive box with the same number already exists",
		http.StatusConflict,
	)
	ErrBoxFull = apperror.New(
		apperror.CodeConflict,
		"Archive box is at capacity",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotTerminated = apperror.New(
		apperror.CodeInvalidState,
		"Only terminated employees can be transferred to the dead archive",
		http.StatusConflict,
	)
	ErrInvalidEligibilityDate = apperror.New(
		apperror.CodeInvalidInput,
		"Disposal eligibility date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Archive item not found",
		http.StatusNotFound,
	)
	ErrItemAlreadyDisposed = apperror.New(
		apperror.CodeInvalidState,
		"Archive item has already been disposed",
		http.StatusConflict,
	)
)
