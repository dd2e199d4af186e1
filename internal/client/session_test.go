package client

import (
	"context"
	"errors"
	"testing"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-context-mcp/internal/mcpserver"
	"github.com/noah-isme/student-context-mcp/internal/repository"
	"github.com/noah-isme/student-context-mcp/internal/service"
	"github.com/noah-isme/student-context-mcp/pkg/config"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	store, err := repository.NewStore(repository.DefaultSeed(), nil)
	require.NoError(t, err)
	registry := service.NewRegistry(service.NewQueryService(store, nil), nil, nil)
	srv := mcpserver.New(config.MCPConfig{ServerName: "StudentContextMCP", ServerVersion: "test"}, registry, nil)

	c, err := mcpclient.NewInProcessClient(srv.MCP())
	require.NoError(t, err)
	require.NoError(t, c.Start(context.Background()))

	s, err := Open(context.Background(), c, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenReportsServerInfo(t *testing.T) {
	s := newSession(t)

	assert.Equal(t, "StudentContextMCP", s.ServerInfo().Name)
	assert.Contains(t, s.Instructions(), "students://{student_id}/profile")
}

func TestDiscover(t *testing.T) {
	s := newSession(t)

	cat, err := s.Discover(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(cat.Tools))
	for _, tool := range cat.Tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"get_class_schedule", "get_course_topic", "get_covered_topics", "get_next_class"}, names)
	assert.Equal(t, []string{"course_code", "section"}, cat.Tools[0].Required)

	require.Len(t, cat.Templates, 1)
	assert.Equal(t, "students://{student_id}/profile", cat.Templates[0].URITemplate)
	assert.Equal(t, "application/json", cat.Templates[0].MIMEType)
}

func TestReadProfile(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()

	env, err := s.ReadProfile(ctx, "S123")
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"name":"Ayaan Qureshi"`)

	env, err = s.ReadProfile(ctx, "S404")
	require.NoError(t, err)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "STUDENT_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Student not found", env.Error.Message)

	env, err = s.ReadProfile(ctx, "S 123")
	require.NoError(t, err)
	require.NotNil(t, env.Error)
	assert.Equal(t, "STUDENT_NOT_FOUND", env.Error.Code)
}

func TestCallTool(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()

	env, err := s.CallTool(ctx, "get_next_class", map[string]any{"course_code": "AI-101", "section": "A"})
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"next_class_time":"2025-06-09T10:00:00Z"`)

	env, err = s.CallTool(ctx, "get_course_topic", map[string]any{"course_code": "AI-301"})
	require.NoError(t, err)
	assert.Equal(t, "TOPIC_NOT_FOUND", env.Error.Code)

	_, err = s.CallTool(ctx, "get_next_class", map[string]any{"course_code": "AI-101", "section": "Q"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrToolRejected))
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
}

func TestParseArguments(t *testing.T) {
	args, err := ParseArguments([]string{"course_code=AI-101", "section=A", "note=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"course_code": "AI-101", "section": "A", "note": "a=b"}, args)

	args, err = ParseArguments(nil)
	require.NoError(t, err)
	assert.Empty(t, args)

	for _, bad := range []string{"course_code", "=AI-101"} {
		_, err := ParseArguments([]string{bad})
		assert.Error(t, err, bad)
	}
}
