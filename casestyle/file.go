package casestyle

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/caseerrors"
	"github.com/erraggy/ccase/pattern"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v4"
)

// File formats accepted by Parse.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Definition is the on-disk form of a custom style.
type Definition struct {
	Name       string `yaml:"name"                 toml:"name"       json:"name"                 validate:"required,max=64"`
	Short      string `yaml:"short,omitempty"      toml:"short"      json:"short,omitempty"      validate:"omitempty,max=32"`
	Pattern    string `yaml:"pattern"              toml:"pattern"    json:"pattern"              validate:"required"`
	Delimiter  string `yaml:"delimiter"            toml:"delimiter"  json:"delimiter"`
	Boundaries string `yaml:"boundaries,omitempty" toml:"boundaries" json:"boundaries,omitempty"`
}

// File is the document holding custom style definitions.
type File struct {
	Styles []Definition `yaml:"styles" toml:"styles" json:"styles" validate:"min=1,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile reads custom styles from path. The format is chosen by extension:
// .yaml/.yml, .toml or .json.
func LoadFile(path string) ([]Style, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the user on purpose
	if err != nil {
		return nil, &caseerrors.ConfigError{Option: "styles", Value: path, Message: "reading style file", Cause: err}
	}

	styles, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return styles, nil
}

func formatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", &caseerrors.ConfigError{
			Option:  "styles",
			Value:   path,
			Message: "unsupported style file extension (want .yaml, .yml, .toml or .json)",
		}
	}
}

// Parse decodes and validates style definitions in the given format.
func Parse(data []byte, format string) ([]Style, error) {
	var doc File
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, &caseerrors.ConfigError{Option: "format", Value: format, Message: "unsupported style file format"}
	}
	if err != nil {
		return nil, &caseerrors.ConfigError{Option: "styles", Message: "decoding " + format, Cause: err}
	}

	if err := validate.Struct(doc); err != nil {
		return nil, &caseerrors.ConfigError{Option: "styles", Message: formatValidationErrors(err)}
	}

	styles := make([]Style, 0, len(doc.Styles))
	for _, def := range doc.Styles {
		s, err := def.Style()
		if err != nil {
			return nil, err
		}
		styles = append(styles, s)
	}
	return styles, nil
}

// Style converts the definition into a Style, resolving its pattern name and
// boundary string.
func (d Definition) Style() (Style, error) {
	p, err := pattern.Resolve(d.Pattern)
	if err != nil {
		return Style{}, &caseerrors.ConfigError{Option: "pattern", Value: d.Pattern, Message: "style " + d.Name, Cause: err}
	}
	return Style{
		Name:       d.Name,
		Short:      d.Short,
		Boundaries: boundary.FromString(d.Boundaries),
		Pattern:    p,
		Delimiter:  d.Delimiter,
	}, nil
}

// formatValidationErrors flattens validator errors into one message.
func formatValidationErrors(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "File.")
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must have at least %s item(s)", field, e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters long", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", field, e.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
