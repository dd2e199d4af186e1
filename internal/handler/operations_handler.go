package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-context-mcp/internal/dto"
	"github.com/noah-isme/student-context-mcp/internal/service"
	appErrors "github.com/noah-isme/student-context-mcp/pkg/errors"
	"github.com/noah-isme/student-context-mcp/pkg/response"
)

type operationRegistry interface {
	Operations() []service.Operation
	Call(ctx context.Context, name string, args map[string]any) (dto.Result, error)
}

// OperationsHandler exposes the query operations as plain JSON endpoints.
type OperationsHandler struct {
	registry operationRegistry
}

// NewOperationsHandler constructs OperationsHandler.
func NewOperationsHandler(registry operationRegistry) *OperationsHandler {
	return &OperationsHandler{registry: registry}
}

// List godoc
// @Summary List operations
// @Tags Operations
// @Produce json
// @Success 200 {object} dto.Result
// @Router /api/v1/operations [get]
func (h *OperationsHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.registry.Operations())
}

// Call godoc
// @Summary Call an operation by name
// @Tags Operations
// @Accept json
// @Produce json
// @Param payload body dto.CallRequest true "Operation call"
// @Success 200 {object} dto.Result
// @Failure 400 {object} dto.Result
// @Failure 404 {object} dto.Result
// @Router /api/v1/operations/call [post]
func (h *OperationsHandler) Call(c *gin.Context) {
	var req dto.CallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	result, err := h.registry.Call(c.Request.Context(), req.Name, req.Arguments)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Result(c, http.StatusOK, result)
}

// Profile godoc
// @Summary Get student profile
// @Tags Students
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {object} dto.Result
// @Failure 404 {object} dto.Result
// @Router /api/v1/students/{student_id}/profile [get]
func (h *OperationsHandler) Profile(c *gin.Context) {
	result, err := h.registry.Call(c.Request.Context(), "get_student_profile", map[string]any{
		"student_id": c.Param("student_id"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Result(c, response.StatusFor(result), result)
}
