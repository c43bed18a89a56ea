// Package encode renders output documents as YAML or JSON. YAML printed to
// a terminal is colorized.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid output format %q", s)
}

func YAML(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func JSON(v any) ([]byte, error) {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(d, '\n'), nil
}

// Fprint writes v to w in the requested format. YAML written to a terminal
// is colorized.
func Fprint(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		d, err := JSON(v)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case FormatYAML:
		d, err := YAML(v)
		if err != nil {
			return err
		}
		if isTerminal(w) {
			d = Colorize(d)
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("invalid output format %q", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
