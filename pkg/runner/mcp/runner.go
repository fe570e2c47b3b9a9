package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/weeklog/pkg/store"
)

// Transport selects how the MCP server is exposed.
type Transport string

const (
	// TransportStdio serves a single client over stdin/stdout.
	TransportStdio Transport = "stdio"
	// TransportHTTP serves the streamable HTTP transport.
	TransportHTTP Transport = "http"
)

// ParseTransport normalizes a user-supplied transport name.
func ParseTransport(s string) (Transport, error) {
	switch Transport(strings.ToLower(strings.TrimSpace(s))) {
	case "", TransportStdio:
		return TransportStdio, nil
	case TransportHTTP:
		return TransportHTTP, nil
	default:
		return "", fmt.Errorf("unknown transport %q, want stdio or http", s)
	}
}

// MCP serves the journal over the Model Context Protocol.
type MCP struct {
	Version   string
	Transport Transport

	// Addr, Path, CertFile and KeyFile apply to the http transport only.
	Addr     string
	Path     string
	CertFile string
	KeyFile  string

	// Out receives the listen announcement. Defaults to stderr so the
	// stream on stdout stays clean.
	Out io.Writer

	Persistence store.Persistence
}

// Do executes the runner.
func (n *MCP) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not serve mcp, no persistence")
	}
	version := n.Version
	if version == "" {
		version = "dev"
	}

	svc := NewService(n.Persistence)
	srv := server.NewMCPServer(
		"weeklog MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Log, review and read weekly activity and mood journal entries."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	registerTools(srv, svc)
	registerResources(srv, svc)

	switch n.Transport {
	case "", TransportStdio:
		return server.ServeStdio(srv)
	case TransportHTTP:
		return n.serveHTTP(ctx, srv)
	default:
		return fmt.Errorf("unknown transport %q", n.Transport)
	}
}

func (n *MCP) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	if (n.CertFile == "") != (n.KeyFile == "") {
		return errors.New("tls needs both a cert and a key file")
	}

	path := n.Path
	if path == "" {
		path = "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	addr := n.Addr
	if addr == "" {
		addr = "127.0.0.1:8338"
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux}

	scheme := "http"
	if n.CertFile != "" {
		scheme = "https"
	}
	out := n.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "listening on %s://%s%s\n", scheme, ln.Addr(), path)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if n.CertFile != "" {
		err = httpSrv.ServeTLS(ln, n.CertFile, n.KeyFile)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
