package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-context-mcp/internal/handler"
	"github.com/noah-isme/student-context-mcp/internal/mcpserver"
	"github.com/noah-isme/student-context-mcp/internal/repository"
	"github.com/noah-isme/student-context-mcp/internal/service"
	"github.com/noah-isme/student-context-mcp/pkg/config"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := repository.NewStore(repository.DefaultSeed(), nil)
	require.NoError(t, err)
	registry := service.NewRegistry(service.NewQueryService(store, nil), nil, nil)
	cfg := &config.Config{MCP: config.MCPConfig{ServerName: "StudentContextMCP", ServerVersion: "test", EndpointPath: "/mcp", Stateless: true}}
	r := handler.NewRouter(handler.RouterDeps{
		Config:   cfg,
		Registry: registry,
		MCP:      mcpserver.New(cfg.MCP, registry, nil).HTTPHandler(),
	})
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func TestRunUsageErrors(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage: student-mcp-client")

	stderr.Reset()
	assert.Equal(t, 2, run([]string{"--bogus"}, &stdout, &stderr))
	assert.Equal(t, 0, run([]string{"--help"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}

func TestRunAgainstServer(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	ts := newServer(t)
	server := "--server=" + ts.URL + "/mcp"

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{server, "call", "get_course_topic", "course_code=AI-101"}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), `"topic": "Introduction to Lists"`)

	stdout.Reset()
	require.Equal(t, 0, run([]string{server, "profile", "S404"}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), `"code": "STUDENT_NOT_FOUND"`)

	stdout.Reset()
	require.Equal(t, 0, run([]string{server, "discover"}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "get_covered_topics")
	assert.Contains(t, stdout.String(), "students://{student_id}/profile")

	assert.Equal(t, 1, run([]string{server, "call", "get_next_class", "course_code=AI-101", "section=Z"}, &stdout, &stderr))
}

func TestRunRejectsBadCommandsOffline(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	unreachable := "--server=http://127.0.0.1:1/mcp"

	for _, argv := range [][]string{
		{unreachable, "explode"},
		{unreachable, "profile"},
		{unreachable, "discover", "extra"},
		{unreachable, "call"},
		{unreachable, "call", "get_course_topic", "course_code"},
	} {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run(argv, &stdout, &stderr), argv)
		assert.NotContains(t, stderr.String(), "could not reach", argv)
	}
}

func TestRunHintsWhenServerIsDown(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL + "/mcp"
	ts.Close()

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"--server=" + url, "discover"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "could not reach "+url+"; is student-mcp-server running?")
	assert.Empty(t, stdout.String())
}

func TestCheckCommand(t *testing.T) {
	args, err := checkCommand([]string{"call", "get_class_schedule", "course_code=AI-101", "section=A"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"course_code": "AI-101", "section": "A"}, args)

	_, err = checkCommand([]string{"profile", "S123"})
	assert.NoError(t, err)

	_, err = checkCommand(nil)
	assert.ErrorIs(t, err, errUsage)

	_, err = checkCommand([]string{"explode"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "explode"`)
}
