package documenterrors

import (
	"net/http"

	"go-arquivo/internal/shared/apperror"
)

var (
	ErrDocumentTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Document type not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
