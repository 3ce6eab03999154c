package loanerrors

import (
	"net/http"

	"go-arquivo/internal/shared/apperror"
)

var (
	ErrLoanNotFound = apperror.New(
		apperror.CodeNotFound,
		"Loan not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidReturnDate = apperror.New(
		apperror.CodeInvalidInput,
		"Return date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrAlreadyReturned = apperror.New(
		apperror.CodeInvalidState,
		"Loan has already been returned",
		http.StatusConflict,
	)
)
