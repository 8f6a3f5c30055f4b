package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/creational"
	"github.com/aretw0/creational/pkg/computer"
	"github.com/aretw0/creational/pkg/document"
	"github.com/aretw0/creational/pkg/prompt"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// PatternsURI is the resource listing the catalog.
const PatternsURI = "creational://patterns"

// Engine defines what the MCP server needs from the catalog.
type Engine interface {
	BuildComputer(spec computer.Spec) creational.Outcome
	BuildPreset(name string) (creational.Outcome, error)
	OrderHamburger(selector string) (creational.Outcome, error)
	GenerateReport(selector string) (creational.Outcome, error)
	ServeMeal(selector string) (creational.Outcome, error)
	AssembleVehicle(selector string) (creational.Outcome, error)
	CloneDocument(ctx context.Context, name string, o document.Overrides) (creational.Outcome, error)
}

// Server exposes the catalog as an MCP server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the logger for transport events and rejected selections.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		logger:    slog.Default(),
		mcpServer: server.NewMCPServer("creational-mcp", strings.TrimSpace(creational.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// ComputerArgs are the arguments of build_computer.
type ComputerArgs struct {
	Preset string `mapstructure:"preset"`
	computer.Spec `mapstructure:",squash"`
}

// SelectionArgs are the arguments of the factory tools.
type SelectionArgs struct {
	Selector string `mapstructure:"selector"`
}

// CloneArgs are the arguments of clone_document.
type CloneArgs struct {
	Name               string `mapstructure:"name"`
	document.Overrides `mapstructure:",squash"`
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("build_computer",
		mcp.WithDescription("Build a computer with the Builder pattern, from a preset or from individual parts."),
		mcp.WithString("preset", mcp.Description("Name of a preset such as basic or gamer (optional)")),
		mcp.WithString("cpu", mcp.Description("Processor")),
		mcp.WithString("ram", mcp.Description("Memory")),
		mcp.WithString("storage", mcp.Description("Storage")),
		mcp.WithString("gpu", mcp.Description("Graphics card, omit for none")),
		mcp.WithOutputSchema[creational.Outcome](),
	), mcp.NewStructuredToolHandler(s.handleBuildComputer))

	s.mcpServer.AddTool(mcp.NewTool("order_hamburger",
		mcp.WithDescription("Order a hamburger from a restaurant chosen with the Factory Method pattern."),
		mcp.WithString("selector", mcp.Required(), mcp.Description("chicken or beef")),
		mcp.WithOutputSchema[creational.Outcome](),
	), mcp.NewStructuredToolHandler(s.selection(s.engine.OrderHamburger)))

	s.mcpServer.AddTool(mcp.NewTool("generate_report",
		mcp.WithDescription("Generate a report from a factory chosen with the Factory Method pattern."),
		mcp.WithString("selector", mcp.Required(), mcp.Description("sales, inventory or management")),
		mcp.WithOutputSchema[creational.Outcome](),
	), mcp.NewStructuredToolHandler(s.selection(s.engine.GenerateReport)))

	s.mcpServer.AddTool(mcp.NewTool("serve_meal",
		mcp.WithDescription("Serve a hamburger and a drink from one Abstract Factory family."),
		mcp.WithString("selector", mcp.Required(), mcp.Description("fast or healthy")),
		mcp.WithOutputSchema[creational.Outcome](),
	), mcp.NewStructuredToolHandler(s.selection(s.engine.ServeMeal)))

	s.mcpServer.AddTool(mcp.NewTool("assemble_vehicle",
		mcp.WithDescription("Assemble a car and its engine from one Abstract Factory family."),
		mcp.WithString("selector", mcp.Required(), mcp.Description("electric or gas")),
		mcp.WithOutputSchema[creational.Outcome](),
	), mcp.NewStructuredToolHandler(s.selection(s.engine.AssembleVehicle)))

	s.mcpServer.AddTool(mcp.NewTool("clone_document",
		mcp.WithDescription("Clone a document template with the Prototype pattern and change the copy."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Template name, for example sample")),
		mcp.WithString("title", mcp.Description("New title for the copy")),
		mcp.WithString("content", mcp.Description("New content for the copy")),
		mcp.WithString("author", mcp.Description("New author for the copy")),
		mcp.WithOutputSchema[creational.Outcome](),
	), mcp.NewStructuredToolHandler(s.handleCloneDocument))

	s.mcpServer.AddTool(mcp.NewTool("explain_pattern",
		mcp.WithDescription("Explain a creational pattern in markdown."),
		mcp.WithString("pattern", mcp.Required(), mcp.Description("builder, factory-method, abstract-factory or prototype")),
	), s.handleExplain)
}

func decodeArgs(args map[string]interface{}, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (s *Server) handleBuildComputer(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (creational.Outcome, error) {
	var in ComputerArgs
	if err := decodeArgs(args, &in); err != nil {
		return creational.Outcome{}, err
	}
	if in.Preset != "" {
		return s.engine.BuildPreset(in.Preset)
	}
	return s.engine.BuildComputer(in.Spec), nil
}

func (s *Server) selection(create func(string) (creational.Outcome, error)) func(context.Context, mcp.CallToolRequest, map[string]interface{}) (creational.Outcome, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (creational.Outcome, error) {
		var in SelectionArgs
		if err := decodeArgs(args, &in); err != nil {
			return creational.Outcome{}, err
		}
		clean, err := prompt.CleanSelector(in.Selector)
		if err != nil {
			s.logger.Warn("MCP selection rejected", "error", err, "size", len(in.Selector))
			return creational.Outcome{}, fmt.Errorf("input rejected: %w", err)
		}
		return create(clean)
	}
}

func (s *Server) handleCloneDocument(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (creational.Outcome, error) {
	var in CloneArgs
	if err := decodeArgs(args, &in); err != nil {
		return creational.Outcome{}, err
	}
	if in.Name == "" {
		return creational.Outcome{}, fmt.Errorf("name is required")
	}
	return s.engine.CloneDocument(ctx, in.Name, in.Overrides)
}

func (s *Server) handleExplain(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, _ := request.GetArguments()["pattern"].(string)
	md, err := creational.Explain(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(md), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(PatternsURI, "Creational Patterns Catalog",
		mcp.WithMIMEType("application/json"),
	), s.readPatterns)
}

func (s *Server) readPatterns(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(creational.Patterns())
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      PatternsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
