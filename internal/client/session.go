// Package client talks to the student context server over MCP.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/student-context-mcp/pkg/errors"
)

const clientName = "student-mcp-client"

// ErrToolRejected is returned when the server refused a tool call at its boundary.
var ErrToolRejected = errors.New("tool call rejected")

// Envelope mirrors the server's result envelope with the payload left raw.
type Envelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Error   *appErrors.Error `json:"error"`
}

// ToolInfo summarises one discovered tool.
type ToolInfo struct {
	Name        string
	Description string
	Required    []string
}

// TemplateInfo summarises one discovered resource template.
type TemplateInfo struct {
	Name        string
	URITemplate string
	Description string
	MIMEType    string
}

// Catalogue lists what the server offers.
type Catalogue struct {
	Tools     []ToolInfo
	Templates []TemplateInfo
}

// Session is an initialised MCP client session.
type Session struct {
	c      *mcpclient.Client
	init   *mcp.InitializeResult
	logger *zap.Logger
}

// Connect opens a streamable HTTP session against serverURL.
func Connect(ctx context.Context, serverURL string, logger *zap.Logger) (*Session, error) {
	c, err := mcpclient.NewStreamableHttpClient(serverURL)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	if err := c.Start(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("start client: %w", err)
	}
	s, err := Open(ctx, c, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return s, nil
}

// Open performs the MCP initialize handshake on a started client.
func Open(ctx context.Context, c *mcpclient.Client, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{Name: clientName, Version: "1.0.0"}

	res, err := c.Initialize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}
	logger.Info("connected to mcp server",
		zap.String("server", res.ServerInfo.Name),
		zap.String("version", res.ServerInfo.Version),
		zap.String("protocol", res.ProtocolVersion),
	)
	return &Session{c: c, init: res, logger: logger}, nil
}

// ServerInfo returns the server identity reported during initialize.
func (s *Session) ServerInfo() mcp.Implementation { return s.init.ServerInfo }

// Instructions returns the usage instructions the server advertised.
func (s *Session) Instructions() string { return s.init.Instructions }

// Close ends the session.
func (s *Session) Close() error { return s.c.Close() }

// Discover lists tools and resource templates.
func (s *Session) Discover(ctx context.Context) (*Catalogue, error) {
	tools, err := s.c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	templates, err := s.c.ListResourceTemplates(ctx, mcp.ListResourceTemplatesRequest{})
	if err != nil {
		return nil, fmt.Errorf("list resource templates: %w", err)
	}

	cat := &Catalogue{}
	for _, t := range tools.Tools {
		required := append([]string(nil), t.InputSchema.Required...)
		sort.Strings(required)
		cat.Tools = append(cat.Tools, ToolInfo{Name: t.Name, Description: t.Description, Required: required})
	}
	for _, t := range templates.ResourceTemplates {
		info := TemplateInfo{Name: t.Name, Description: t.Description, MIMEType: t.MIMEType}
		if t.URITemplate != nil && t.URITemplate.Template != nil {
			info.URITemplate = t.URITemplate.Raw()
		}
		cat.Templates = append(cat.Templates, info)
	}
	sort.Slice(cat.Tools, func(i, j int) bool { return cat.Tools[i].Name < cat.Tools[j].Name })
	return cat, nil
}

// ReadProfile reads the students://{student_id}/profile resource.
func (s *Session) ReadProfile(ctx context.Context, studentID string) (*Envelope, error) {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = "students://" + url.PathEscape(studentID) + "/profile"

	res, err := s.c.ReadResource(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", req.Params.URI, err)
	}
	for _, content := range res.Contents {
		switch tc := content.(type) {
		case mcp.TextResourceContents:
			return decodeEnvelope(tc.Text)
		case *mcp.TextResourceContents:
			return decodeEnvelope(tc.Text)
		}
	}
	return nil, fmt.Errorf("read %s: no text contents", req.Params.URI)
}

// CallTool invokes a tool and decodes its envelope. Boundary rejections are
// reported as ErrToolRejected.
func (s *Session) CallTool(ctx context.Context, name string, args map[string]any) (*Envelope, error) {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := s.c.CallTool(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", name, err)
	}
	text := textContent(res.Content)
	if res.IsError {
		return nil, fmt.Errorf("%w: %s", ErrToolRejected, text)
	}
	return decodeEnvelope(text)
}

// ParseArguments turns key=value pairs into tool arguments.
func ParseArguments(pairs []string) (map[string]any, error) {
	args := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q is not key=value", pair)
		}
		args[key] = value
	}
	return args, nil
}

func textContent(contents []mcp.Content) string {
	parts := make([]string, 0, len(contents))
	for _, content := range contents {
		switch tc := content.(type) {
		case mcp.TextContent:
			parts = append(parts, tc.Text)
		case *mcp.TextContent:
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func decodeEnvelope(text string) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return &env, nil
}
