package cabineterrors

import (
	"net/http"

	"go-arquivo/internal/shared/apperror"
)

var (
	ErrCabinetNotFound = apperror.New(
		apperror.CodeNotFound,
		"File cabinet not found",
		http.StatusNotFound,
	)
	ErrDrawerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Drawer not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrCabinetAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"File cabinet with the same number already exists",
		http.StatusConflict,
	)
	ErrDrawerAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Drawer with the same number already exists in this cabinet",
		http.StatusConflict,
	)
	ErrEmployeeTerminated = apperror.New(
		apperror.CodeInvalidState,
		"Terminated employees cannot occupy a drawer position",
		http.StatusConflict,
	)
	ErrPositionOutOfRange = apperror.New(
		apperror.CodeConflict,
		"Position number exceeds the drawer capacity",
		http.StatusConflict,
	)
)
