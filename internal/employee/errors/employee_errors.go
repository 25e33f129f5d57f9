package employeeerrors

import (
	"net/http"

	"github.com/i-gitit/employee-dashboard/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrDirectoryUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Employee directory could not be loaded",
		http.StatusServiceUnavailable,
	)
)
