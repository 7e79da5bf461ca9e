package salary

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"go-salary/internal/shared/apperror"
	"go-salary/internal/shared/contextutil"
	"go-salary/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgSubmissionCreated = "New user salary details added successfully."
	msgSalaryUpdated     = "User salary details updated successfully."
	msgUserDeleted       = "User deleted successfully"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("salary.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	meta := contextutil.ExtractMetadata(c.Request.Context())
	h.logger.Warn("salary request failed",
		zap.String("request_id", meta.RequestID),
		zap.Uint("user_id", meta.UserID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// bindJSON decodes the body only; field rules are enforced by the service.
// An empty body decodes to the zero request so it fails field validation.
func (h *Handler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("http decode body failed", zap.String("path", c.FullPath()), zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Malformed JSON body", err.Error())
		return false
	}
	return true
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitSalaryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	res, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status, message := http.StatusOK, msgSalaryUpdated
	if res.Status == SubmitStatusCreated {
		status, message = http.StatusCreated, msgSubmissionCreated
	}

	response.Success(c, status, SubmitResponse{
		Status:  res.Status,
		Message: message,
		User:    res.Record,
	}, nil)
}

func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	caller, _ := contextutil.GetIdentity(ctx)
	h.logger.Debug("http list salaries", zap.Uint("user_id", caller.UserID))

	records, err := h.service.List(ctx, caller)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Salaries: records}, response.NewMeta(len(records)))
}

func (h *Handler) UpdateCommission(c *gin.Context) {
	ctx := c.Request.Context()
	caller, _ := contextutil.GetIdentity(ctx)

	var req UpdateCommissionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	record, err := h.service.UpdateCommission(ctx, caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, MutationResponse{
		Message: fmt.Sprintf("Commission updated successfully for user %s", record.Name),
		User:    record,
	}, nil)
}

func (h *Handler) UpdateSalary(c *gin.Context) {
	ctx := c.Request.Context()
	caller, _ := contextutil.GetIdentity(ctx)

	var req UpdateSalaryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	record, err := h.service.UpdateSalary(ctx, caller, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, MutationResponse{
		Message: msgSalaryUpdated,
		User:    record,
	}, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	caller, _ := contextutil.GetIdentity(ctx)

	if err := h.service.Delete(ctx, caller, c.Param("email")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, MessageResponse{Message: msgUserDeleted}, nil)
}
