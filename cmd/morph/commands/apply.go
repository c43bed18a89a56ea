package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	morph "github.com/morph-format/go-morph"
	"github.com/morph-format/go-morph/encode"
	"github.com/morph-format/go-morph/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type applyConfig struct {
	*cli.Command
	Mapping  string `cli:"name=mapping aliases=m desc='mapping document (YAML or JSON)'"`
	Output   string `cli:"name=output aliases=o desc='output format: yaml or json'"`
	Check    string `cli:"name=check desc='compare outputs to this document instead of printing'"`
	Defaults string `cli:"name=defaults desc='merge outputs over this defaults document'"`
}

// ApplyCommand returns the apply subcommand.
func ApplyCommand() *cli.Command {
	cfg := &applyConfig{Output: string(encode.FormatYAML)}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "apply").
		WithSynopsis("apply -m <mapping> [input...] - Transform input documents").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *applyConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Mapping == "" {
		return fmt.Errorf("no mapping document, use -m")
	}
	format, err := encode.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	mapping, err := os.ReadFile(cfg.Mapping)
	if err != nil {
		return fmt.Errorf("failed to read mapping: %w", err)
	}
	t, err := morph.New().CompileBytes(mapping)
	if err != nil {
		return fmt.Errorf("failed to compile %s: %w", cfg.Mapping, err)
	}

	var defaults []byte
	if cfg.Defaults != "" {
		defaults, err = readJSON(cfg.Defaults)
		if err != nil {
			return err
		}
	}
	var expected any
	if cfg.Check != "" {
		d, err := os.ReadFile(cfg.Check)
		if err != nil {
			return fmt.Errorf("failed to read expected document: %w", err)
		}
		expected, err = parse.Document(d)
		if err != nil {
			return err
		}
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, input := range inputs {
		out, err := cfg.apply(t, input, defaults)
		if err != nil {
			return err
		}
		if cfg.Check != "" {
			if err := check(cc, input, expected, out); err != nil {
				return err
			}
			continue
		}
		if err := encode.Fprint(cc.Out, out, format); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *applyConfig) apply(t *morph.Transformation, input string, defaults []byte) (any, error) {
	var (
		data []byte
		err  error
	)
	if input == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	out, err := t.EvaluateBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	if defaults == nil {
		return out, nil
	}
	return mergeDefaults(out, defaults)
}

// mergeDefaults overlays out on the defaults document with a JSON merge
// patch, so explicit output values win and defaults fill the gaps.
func mergeDefaults(out any, defaults []byte) (any, error) {
	d, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(defaults, d)
	if err != nil {
		return nil, fmt.Errorf("failed to merge defaults: %w", err)
	}
	return parse.Document(merged)
}

// readJSON reads a YAML or JSON file and re-encodes it as JSON bytes.
func readJSON(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	v, err := parse.Document(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func check(cc *cli.Context, input string, expected, got any) error {
	if reflect.DeepEqual(expected, got) {
		fmt.Fprintf(cc.Out, "%s: %s\n", input, color.GreenString("ok"))
		return nil
	}
	wantText, err := encode.YAML(expected)
	if err != nil {
		return err
	}
	gotText, err := encode.YAML(got)
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(wantText), string(gotText), false)
	fmt.Fprintf(cc.Out, "%s: %s\n%s", input, color.RedString("mismatch"),
		dmp.DiffPrettyText(diffs))
	return fmt.Errorf("%s: output does not match expected document", input)
}
