package mcpserver

import (
	"context"

	"github.com/erraggy/ccase/internal/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listInput struct{}

type listCasesOutput struct {
	Cases []catalog.Case `json:"cases"`
	Count int            `json:"count"`
}

type listPatternsOutput struct {
	Patterns []catalog.Pattern `json:"patterns"`
}

type listBoundariesOutput struct {
	Boundaries []catalog.Boundary `json:"boundaries"`
}

func handleListCases(_ context.Context, _ *mcp.CallToolRequest, _ listInput) (*mcp.CallToolResult, listCasesOutput, error) {
	cases := catalog.Cases(registry)
	return nil, listCasesOutput{Cases: cases, Count: len(cases)}, nil
}

func handleListPatterns(_ context.Context, _ *mcp.CallToolRequest, _ listInput) (*mcp.CallToolResult, listPatternsOutput, error) {
	return nil, listPatternsOutput{Patterns: catalog.Patterns()}, nil
}

func handleListBoundaries(_ context.Context, _ *mcp.CallToolRequest, _ listInput) (*mcp.CallToolResult, listBoundariesOutput, error) {
	return nil, listBoundariesOutput{Boundaries: catalog.Boundaries()}, nil
}
