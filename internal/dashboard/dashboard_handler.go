package dashboard

import (
	"net/http"

	dashboarderrors "github.com/i-gitit/employee-dashboard/internal/dashboard/errors"
	"github.com/i-gitit/employee-dashboard/internal/employee"
	"github.com/i-gitit/employee-dashboard/internal/shared/apperror"
	"github.com/i-gitit/employee-dashboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service  employee.Service
	sessions *SessionStore
	logger   *zap.Logger
}

func NewHandler(service employee.Service, sessions *SessionStore, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{
		service:  service,
		sessions: sessions,
		logger:   l,
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("dashboard request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateSession(c *gin.Context) {
	sess := h.sessions.Create()
	h.logger.Debug("dashboard session created", zap.String("session_id", sess.ID))

	response.Success(c, http.StatusCreated, SessionResponse{
		SessionID: sess.ID,
		State:     mapState(sess.Controller.State()),
	}, nil)
}

func (h *Handler) GetView(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		h.writeServiceError(c, dashboarderrors.ErrSessionNotFound)
		return
	}

	h.renderView(c, sess)
}

func (h *Handler) ApplyFilters(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		h.writeServiceError(c, dashboarderrors.ErrSessionNotFound)
		return
	}

	var req FilterIntentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("apply filters validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	ctrl := sess.Controller
	if req.SearchTerm != nil {
		ctrl.SetSearchTerm(*req.SearchTerm)
	}
	if req.Department != nil {
		ctrl.SetDepartment(*req.Department)
	}
	if req.SortBy != nil {
		ctrl.SetSortBy(employee.NormalizeSortKey(*req.SortBy))
	}
	if req.SortOrder != nil {
		ctrl.SetSortOrder(employee.NormalizeSortOrder(*req.SortOrder))
	}

	h.renderView(c, sess)
}

func (h *Handler) Reset(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		h.writeServiceError(c, dashboarderrors.ErrSessionNotFound)
		return
	}

	sess.Controller.Reset()
	h.logger.Debug("dashboard session reset", zap.String("session_id", sess.ID))

	h.renderView(c, sess)
}

// renderView pulls the (possibly cached) collection and recomputes the
// derived view for this session's current state.
func (h *Handler) renderView(c *gin.Context, sess *Session) {
	records, err := h.service.Records(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	view := sess.Controller.View(records)
	meta := response.NewListMeta(view.TotalCount, view.ResultCount)
	response.Success(c, http.StatusOK, mapView(sess.ID, view), &meta)
}
