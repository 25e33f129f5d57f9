package employee

import (
	"net/http"

	"github.com/i-gitit/employee-dashboard/internal/shared/apperror"
	"github.com/i-gitit/employee-dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// stateFromQuery maps the list-view controls onto FilterSortState. Every
// param is optional; anything unrecognized degrades instead of erroring.
func stateFromQuery(c *gin.Context) FilterSortState {
	return FilterSortState{
		SearchTerm: c.Query("q"),
		Department: c.DefaultQuery("department", DepartmentAll),
		SortBy:     NormalizeSortKey(c.DefaultQuery("sort_by", string(SortByName))),
		SortOrder:  NormalizeSortOrder(c.DefaultQuery("sort_order", string(SortAsc))),
	}
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	state := stateFromQuery(c)
	h.logger.Debug("http get employees",
		zap.String("q", state.SearchTerm),
		zap.String("department", state.Department),
	)

	resp, err := h.service.GetDirectory(ctx, state)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewListMeta(resp.TotalCount, resp.ResultCount)
	response.Success(c, http.StatusOK, resp.Employees, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	h.logger.Debug("http get employee by id", zap.String("employee_id", id))

	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetLeaveBalance(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	h.logger.Debug("http get leave balance", zap.String("employee_id", id))

	resp, err := h.service.GetLeaveBalance(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDepartments(c *gin.Context) {
	ctx := c.Request.Context()
	h.logger.Debug("http get departments")

	depts, err := h.service.GetDepartments(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// The selector always carries the no-restriction option first.
	options := append([]string{DepartmentAll}, depts...)
	response.Success(c, http.StatusOK, options, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()
	h.logger.Debug("http refresh directory")

	count, err := h.service.Refresh(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"refreshed": true, "records": count}, nil)
}
