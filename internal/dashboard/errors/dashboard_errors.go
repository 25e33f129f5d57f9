package dashboarderrors

import (
	"net/http"

	"github.com/i-gitit/employee-dashboard/internal/shared/apperror"
)

var ErrSessionNotFound = apperror.New(
	apperror.CodeNotFound,
	"Dashboard session not found",
	http.StatusNotFound,
)
