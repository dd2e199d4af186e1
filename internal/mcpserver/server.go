// Package mcpserver exposes the query operations over the Model Context Protocol.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/noah-isme/student-context-mcp/internal/dto"
	"github.com/noah-isme/student-context-mcp/internal/service"
	"github.com/noah-isme/student-context-mcp/pkg/config"
	appErrors "github.com/noah-isme/student-context-mcp/pkg/errors"
)

const instructions = `Student context server.
Tools: get_class_schedule and get_next_class take a course_code (AI-101, AI-201, AI-202 or AI-301) and a section (A, B or C);
get_course_topic takes a course_code; get_covered_topics takes a student_id.
Resource: students://{student_id}/profile returns the student and their enrollment.
Every answer is a JSON envelope {success, data, error}.`

// Server wires the operation registry into an MCP server.
type Server struct {
	cfg      config.MCPConfig
	mcp      *server.MCPServer
	registry *service.Registry
	logger   *zap.Logger
}

// New registers every operation of the registry as an MCP tool or resource template.
func New(cfg config.MCPConfig, registry *service.Registry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		registry: registry,
		logger:   logger,
		mcp: server.NewMCPServer(
			cfg.ServerName,
			cfg.ServerVersion,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithInstructions(instructions),
			server.WithRecovery(),
		),
	}

	for _, op := range registry.Operations() {
		switch op.Kind {
		case service.KindTool:
			s.mcp.AddTool(toolFor(op), s.toolHandler(op.Name))
		case service.KindResource:
			s.mcp.AddResourceTemplate(templateFor(op), s.resourceHandler(op.Name))
		}
	}
	return s
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *server.MCPServer { return s.mcp }

// HTTPHandler returns the streamable HTTP transport for the server.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp,
		server.WithEndpointPath(s.cfg.EndpointPath),
		server.WithStateLess(s.cfg.Stateless),
	)
}

func toolFor(op service.Operation) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(op.Description),
		mcp.WithTitleAnnotation(op.Title),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	}
	for _, p := range op.Params {
		propOpts := []mcp.PropertyOption{mcp.Required(), mcp.Description(p.Description)}
		if len(p.Enum) > 0 {
			propOpts = append(propOpts, mcp.Enum(p.Enum...))
		}
		opts = append(opts, mcp.WithString(p.Name, propOpts...))
	}
	return mcp.NewTool(op.Name, opts...)
}

func templateFor(op service.Operation) mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(op.URITemplate, op.Title,
		mcp.WithTemplateDescription(op.Description),
		mcp.WithTemplateMIMEType("application/json"),
	)
}

func (s *Server) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.registry.Call(ctx, name, req.GetArguments())
		if err != nil {
			appErr := appErrors.FromError(err)
			s.logger.Debug("tool call rejected", zap.String("tool", name), zap.String("code", appErr.Code), zap.Error(err))
			return mcp.NewToolResultError(fmt.Sprintf("%s: %s", appErr.Code, appErr.Message)), nil
		}
		s.logger.Debug("tool call", zap.String("tool", name), zap.Bool("success", result.Success))

		raw, err := encode(result)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(raw), nil
	}
}

func (s *Server) resourceHandler(name string) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		result, err := s.registry.Call(ctx, name, map[string]any{
			"student_id": templateArg(req.Params.Arguments, "student_id"),
		})
		if err != nil {
			return nil, err
		}
		s.logger.Debug("resource read", zap.String("uri", req.Params.URI), zap.Bool("success", result.Success))

		raw, err := encode(result)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     raw,
			},
		}, nil
	}
}

// templateArg returns a variable bound by the resource template match. mcp-go
// stores matched values as []string.
func templateArg(args map[string]any, key string) any {
	switch v := args[key].(type) {
	case []string:
		if len(v) == 0 {
			return nil
		}
		return v[0]
	case string:
		return v
	}
	return nil
}

func encode(result dto.Result) (string, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(raw), nil
}
