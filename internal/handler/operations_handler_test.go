package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-context-mcp/internal/dto"
	"github.com/noah-isme/student-context-mcp/internal/service"
	appErrors "github.com/noah-isme/student-context-mcp/pkg/errors"
)

type registryMock struct {
	ops      []service.Operation
	result   dto.Result
	err      error
	called   bool
	lastName string
	lastArgs map[string]any
}

func (m *registryMock) Operations() []service.Operation { return m.ops }

func (m *registryMock) Call(ctx context.Context, name string, args map[string]any) (dto.Result, error) {
	m.called = true
	m.lastName = name
	m.lastArgs = args
	return m.result, m.err
}

type envelopeBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) envelopeBody {
	t.Helper()
	var body envelopeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestOperationsHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockReg := &registryMock{ops: []service.Operation{{Name: "get_course_topic", Kind: service.KindTool}}}
	handler := NewOperationsHandler(mockReg)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/operations", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.True(t, body.Success)
	assert.Contains(t, string(body.Data), `"name":"get_course_topic"`)
	assert.Contains(t, string(body.Data), `"kind":"tool"`)
}

func TestOperationsHandlerCall(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockReg := &registryMock{result: dto.Failure(appErrors.Clone(appErrors.ErrTopicNotFound, "No current topic found for course AI-201"))}
	handler := NewOperationsHandler(mockReg)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/operations/call", bytes.NewBufferString(`{"name":"get_course_topic","arguments":{"course_code":"AI-201"}}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Call(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "get_course_topic", mockReg.lastName)
	assert.Equal(t, map[string]any{"course_code": "AI-201"}, mockReg.lastArgs)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	body := decodeBody(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "TOPIC_NOT_FOUND", body.Error.Code)
}

func TestOperationsHandlerCallInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockReg := &registryMock{}
	handler := NewOperationsHandler(mockReg)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/operations/call", bytes.NewBufferString(`{"arguments":{}}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Call(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockReg.called)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, w).Error.Code)
}

func TestOperationsHandlerCallRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockReg := &registryMock{err: appErrors.Clone(appErrors.ErrUnknownOperation, "unknown operation: nope")}
	handler := NewOperationsHandler(mockReg)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/operations/call", bytes.NewBufferString(`{"name":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Call(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "UNKNOWN_OPERATION", body.Error.Code)
	assert.Equal(t, "null", string(body.Data))
}

func TestOperationsHandlerProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		result dto.Result
		err    error
		status int
	}{
		{"found", dto.Success(dto.StudentProfile{}), nil, http.StatusOK},
		{"missing student", dto.Failure(appErrors.ErrStudentNotFound), nil, http.StatusNotFound},
		{"internal fault", dto.Failure(appErrors.Clone(appErrors.ErrInternal, "Failed to fetch student profile")), nil, http.StatusInternalServerError},
		{"rejected", dto.Result{}, appErrors.Clone(appErrors.ErrValidation, "student_id is required"), http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockReg := &registryMock{result: tc.result, err: tc.err}
			handler := NewOperationsHandler(mockReg)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/students/S123/profile", nil)
			c.Params = gin.Params{{Key: "student_id", Value: "S123"}}

			handler.Profile(c)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "get_student_profile", mockReg.lastName)
			assert.Equal(t, "S123", mockReg.lastArgs["student_id"])
		})
	}
}
