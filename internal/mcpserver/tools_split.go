package mcpserver

import (
	"context"

	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/internal/options"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type splitInput struct {
	Input      string `json:"input"                jsonschema:"String to split into words."`
	From       string `json:"from,omitempty"       jsonschema:"Case the input is written in. Its boundaries are used to split."`
	Boundaries string `json:"boundaries,omitempty" jsonschema:"Example string selecting the boundaries to split at."`
}

type splitOutput struct {
	Words      []string `json:"words"`
	Boundaries string   `json:"boundaries"`
}

func handleSplit(_ context.Context, _ *mcp.CallToolRequest, input splitInput) (*mcp.CallToolResult, splitOutput, error) {
	if err := options.ValidateExclusive(
		options.Flag{Name: "from", Set: input.From != ""},
		options.Flag{Name: "boundaries", Set: input.Boundaries != ""},
	); err != nil {
		return errResult(err), splitOutput{}, nil
	}

	set := boundary.Defaults()
	switch {
	case input.From != "":
		style, err := registry.Resolve(input.From)
		if err != nil {
			return errResult(err), splitOutput{}, nil
		}
		set = style.Boundaries
	case input.Boundaries != "":
		set = boundary.FromString(input.Boundaries)
	}

	words := boundary.Split(input.Input, set)
	if words == nil {
		words = []string{}
	}
	return nil, splitOutput{Words: words, Boundaries: set.String()}, nil
}
