package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/ccase/caseerrors"
	"github.com/erraggy/ccase/converter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Inputs     []string `json:"inputs"               jsonschema:"Strings to convert. One output is returned per input in the same order."`
	To         string   `json:"to,omitempty"         jsonschema:"Target case name such as snake or camel or screaming. Required unless pattern is set."`
	From       string   `json:"from,omitempty"       jsonschema:"Case the inputs are written in. Its boundaries are used to split. Cannot be combined with boundaries."`
	Boundaries string   `json:"boundaries,omitempty" jsonschema:"Example string selecting the boundaries to split at such as aA- for lower-upper transitions and hyphens."`
	Pattern    string   `json:"pattern,omitempty"    jsonschema:"Word pattern name to use instead of a target case."`
	Delimiter  string   `json:"delimiter,omitempty"  jsonschema:"String joining output words when pattern is set."`
	Seed       *uint64  `json:"seed,omitempty"       jsonschema:"Seed making random and pseudo-random cases reproducible."`
}

type convertOutput struct {
	Outputs []string `json:"outputs"`
	Count   int      `json:"count"`
}

func handleConvert(ctx context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if len(input.Inputs) == 0 {
		return errResult(&caseerrors.MissingError{What: "inputs", Message: "at least one input is required"}), convertOutput{}, nil
	}
	if len(input.Inputs) > cfg.MaxInputs {
		return errResult(fmt.Errorf("too many inputs: %d (max %d, set CCASE_MAX_INPUTS to raise)", len(input.Inputs), cfg.MaxInputs)), convertOutput{}, nil
	}

	c, err := converter.New(buildConverterOptions(input)...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	outputs, err := c.ConvertAll(ctx, input.Inputs)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	return nil, convertOutput{Outputs: outputs, Count: len(outputs)}, nil
}

// buildConverterOptions translates the MCP input into converter options.
// Empty strings mean the argument was not given; conflicts are left to
// converter.New to report.
func buildConverterOptions(input convertInput) []converter.Option {
	opts := []converter.Option{converter.WithRegistry(registry)}

	if input.To != "" {
		opts = append(opts, converter.WithTargetName(input.To))
	}
	if input.From != "" {
		opts = append(opts, converter.WithSourceName(input.From))
	}
	if input.Boundaries != "" {
		opts = append(opts, converter.WithBoundaryString(input.Boundaries))
	}
	if input.Pattern != "" {
		opts = append(opts, converter.WithPatternName(input.Pattern))
	}
	if input.Delimiter != "" {
		opts = append(opts, converter.WithDelimiter(input.Delimiter))
	}
	if input.Seed != nil {
		opts = append(opts, converter.WithSeed(*input.Seed))
	}

	return opts
}
