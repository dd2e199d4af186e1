package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/noah-isme/student-context-mcp/internal/client"
	"github.com/noah-isme/student-context-mcp/pkg/config"
	"github.com/noah-isme/student-context-mcp/pkg/logger"
)

const usage = `Usage: student-mcp-client [flags] <command> [args]

Commands:
  discover                         list tools and resource templates
  profile <student_id>             read students://{student_id}/profile
  call <tool> [key=value ...]      call a tool

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("student-mcp-client", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("server", "http://localhost:8000/mcp", "MCP endpoint URL")
	fs.Duration("timeout", 30*time.Second, "overall request timeout")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	args := fs.Args()
	toolArgs, err := checkCommand(args)
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
		}
		fs.Usage()
		return 2
	}

	cfg, err := config.LoadClient(fs)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	logr, err := logger.New(config.EnvDevelopment, cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "failed to init logger: %v\n", err)
		return 1
	}
	defer logr.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	session, err := client.Connect(ctx, cfg.ServerURL, logr)
	if err != nil {
		logr.Error("connect failed", zap.String("server", cfg.ServerURL), zap.Error(err))
		if errors.Is(err, syscall.ECONNREFUSED) {
			fmt.Fprintf(stderr, "could not reach %s; is student-mcp-server running?\n", cfg.ServerURL)
		}
		return 1
	}
	defer session.Close() //nolint:errcheck

	var env *client.Envelope
	switch args[0] {
	case "discover":
		err = discover(ctx, session, stdout)
	case "profile":
		env, err = session.ReadProfile(ctx, args[1])
	case "call":
		env, err = session.CallTool(ctx, args[1], toolArgs)
	}
	if err == nil && env != nil {
		err = printJSON(stdout, env)
	}

	if err != nil {
		logr.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		return 1
	}
	return 0
}

var errUsage = errors.New("usage")

// checkCommand validates the subcommand and its arguments without touching
// the network. For call it returns the parsed tool arguments.
func checkCommand(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, errUsage
	}
	switch cmd := args[0]; cmd {
	case "discover":
		if len(args) != 1 {
			return nil, errUsage
		}
		return nil, nil
	case "profile":
		if len(args) != 2 {
			return nil, errUsage
		}
		return nil, nil
	case "call":
		if len(args) < 2 {
			return nil, errUsage
		}
		return client.ParseArguments(args[2:])
	default:
		return nil, fmt.Errorf("unknown command %q", cmd)
	}
}

func discover(ctx context.Context, session *client.Session, out io.Writer) error {
	cat, err := session.Discover(ctx)
	if err != nil {
		return err
	}

	info := session.ServerInfo()
	fmt.Fprintf(out, "%s %s\n\n", info.Name, info.Version)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOOL\tREQUIRED\tDESCRIPTION")
	for _, t := range cat.Tools {
		fmt.Fprintf(w, "%s\t%v\t%s\n", t.Name, t.Required, t.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "RESOURCE\tMIME\tDESCRIPTION")
	for _, t := range cat.Templates {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.URITemplate, t.MIMEType, t.Description)
	}
	return w.Flush()
}

func printJSON(out io.Writer, env *client.Envelope) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
