// Package introspect describes the exported greeting surface as a
// machine-readable namespace document.
package introspect

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	NamespaceName    = "Greet"
	NamespaceVersion = 1
	LibraryName      = "greetctl"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var (
	ErrMissingNamespace = errors.New("introspect: missing namespace")
	ErrMissingLibrary   = errors.New("introspect: no library to introspect")
	ErrUnknownFormat    = errors.New("introspect: unknown format")
)

type Namespace struct {
	Name      string     `toml:"name" yaml:"name"`
	Version   int        `toml:"version" yaml:"version"`
	Library   string     `toml:"library" yaml:"library"`
	Functions []Function `toml:"functions" yaml:"functions"`
}

type Function struct {
	Name    string  `toml:"name" yaml:"name"`
	Doc     string  `toml:"doc" yaml:"doc"`
	Params  []Param `toml:"params" yaml:"params"`
	Returns string  `toml:"returns" yaml:"returns"`
}

type Param struct {
	Name string `toml:"name" yaml:"name"`
	Type string `toml:"type" yaml:"type"`
	Doc  string `toml:"doc" yaml:"doc"`
}

// Describe returns the namespace document for the greet operation.
func Describe() Namespace {
	return Namespace{
		Name:    NamespaceName,
		Version: NamespaceVersion,
		Library: LibraryName,
		Functions: []Function{{
			Name: "greet",
			Doc:  "Emits a greeting message, directed at a given entity.",
			Params: []Param{{
				Name: "recipient",
				Type: "string",
				Doc:  "who to greet",
			}},
			Returns: "none",
		}},
	}
}

func Validate(ns Namespace) error {
	if strings.TrimSpace(ns.Name) == "" {
		return ErrMissingNamespace
	}
	if strings.TrimSpace(ns.Library) == "" {
		return fmt.Errorf("namespace %s: %w", ns.Name, ErrMissingLibrary)
	}
	if ns.Version < 0 {
		return fmt.Errorf("namespace %s: negative version %d", ns.Name, ns.Version)
	}
	for i, fn := range ns.Functions {
		if strings.TrimSpace(fn.Name) == "" {
			return fmt.Errorf("function[%d] missing name", i)
		}
		for j, p := range fn.Params {
			if strings.TrimSpace(p.Name) == "" {
				return fmt.Errorf("function %s param[%d] missing name", fn.Name, j)
			}
		}
	}
	return nil
}

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatTOML, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// Encode validates ns and writes it to w in the requested format.
func Encode(w io.Writer, ns Namespace, format Format) error {
	if err := Validate(ns); err != nil {
		return err
	}
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(ns); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ns); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
