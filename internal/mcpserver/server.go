// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes ccase conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/erraggy/ccase"
	"github.com/erraggy/ccase/casestyle"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `ccase MCP server: converts identifiers and phrases between case conventions (snake_case, camelCase, kebab-case, SCREAMING_SNAKE_CASE and more).

Use list_cases to see every case name. Names match without regard to case or punctuation, so "screaming", "ScreamingSnake" and "SCREAMING_SNAKE" are the same case.

Configuration via environment variables set in your MCP client config:
- CCASE_MAX_INPUTS (default: 1000) - maximum inputs per convert call
- CCASE_STYLES_FILE - YAML, TOML or JSON file with extra case definitions`

// registry is the style registry tools resolve names against.
// Run replaces it when CCASE_STYLES_FILE is set.
var registry = casestyle.Default()

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	reg, err := loadRegistry(cfg.StylesFile)
	if err != nil {
		return err
	}
	registry = reg

	server := mcp.NewServer(
		&mcp.Implementation{Name: "ccase", Version: ccase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

// loadRegistry returns the default registry extended with the styles in path.
func loadRegistry(path string) (*casestyle.Registry, error) {
	if path == "" {
		return casestyle.Default(), nil
	}
	styles, err := casestyle.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading CCASE_STYLES_FILE: %w", err)
	}
	reg, err := casestyle.Default().With(styles...)
	if err != nil {
		return nil, fmt.Errorf("loading CCASE_STYLES_FILE: %w", err)
	}
	slog.Debug("loaded custom styles", "file", path, "count", len(styles))
	return reg, nil
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert one or more strings to a case. Set to (a case name from list_cases) or pattern (a name from list_patterns) with an optional delimiter. Input is split into words at the default boundaries unless from (the case the input is written in) or boundaries (a string of examples such as \"aA-\") is given. Results are returned in input order. Random cases are reproducible when seed is set.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "split",
		Description: "Split a string into words without changing their case. Uses the boundaries of from or the boundaries string when given and the default boundaries otherwise. Useful to preview how convert will see an input.",
	}, handleSplit)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_cases",
		Description: "List every case name with its short name, alias target, pattern, delimiter, boundaries and an example of the name written in that case.",
	}, handleListCases)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_patterns",
		Description: "List the word patterns usable with convert's pattern argument, with an example of each.",
	}, handleListPatterns)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_boundaries",
		Description: "List the built-in word boundaries with the sample text that selects each in a boundaries string and whether it is a default boundary.",
	}, handleListBoundaries)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
