package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	j "github.com/goccy/go-json"
	"github.com/spf13/pflag"

	goarr "github.com/reoring/goarr"
	"github.com/reoring/goarr/i18n"
	"github.com/reoring/goarr/record"
	jsondrv "github.com/reoring/goarr/source/json"
)

func lookup(name string) (*record.Descriptor, error) {
	d, ok := record.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown record %q (see goarr records)", name)
	}
	return d, nil
}

// decodeCmd validates a captured response against a record and prints the
// canonical re-encoding, or one line per issue.
func decodeCmd(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "decode")
	var name, lang, driver string
	var collect, allowDup bool
	fs.StringVarP(&name, "record", "r", "", "registered record name, e.g. sonarr.QueueItem")
	fs.BoolVar(&collect, "collect", false, "report every issue instead of stopping at the first")
	fs.BoolVar(&allowDup, "allow-duplicate-keys", false, "accept objects with repeated keys")
	fs.StringVar(&lang, "lang", "", "message language (en, ja)")
	fs.StringVar(&driver, "json-driver", "go-json", "JSON parser: go-json or encoding/json")
	color := colorFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if name == "" || fs.NArg() != 1 {
		fmt.Fprintln(e.stderr, "usage: goarr decode --record NAME FILE")
		return errUsage
	}
	if lang != "" {
		i18n.SetLanguage(lang)
	}
	switch driver {
	case "go-json":
	case "encoding/json":
		goarr.SetJSONDriver(jsondrv.Driver())
		defer goarr.UseDefaultJSONDriver()
	default:
		return fmt.Errorf("unknown --json-driver %q", driver)
	}
	desc, err := lookup(name)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	ctx = goarr.WithCollect(ctx, collect)

	out, err := decodeFile(ctx, desc, data, allowDup)
	if iss, ok := goarr.AsIssues(err); ok {
		for _, it := range iss {
			fmt.Fprintln(e.stdout, it.String())
		}
		return fmt.Errorf("%d issue(s) in %s", len(iss), fs.Arg(0))
	}
	if err != nil {
		return err
	}
	return writeJSON(e, out, *color)
}

// decodeFile accepts a single record or an array of them.
func decodeFile(ctx context.Context, desc *record.Descriptor, data []byte, allowDup bool) (any, error) {
	wire, err := goarr.UnmarshalWire(data, allowDup)
	if err != nil {
		return nil, err
	}
	elems, isList := wire.([]any)
	if !isList {
		v, err := record.DecodeInto(ctx, desc, wire)
		if err != nil {
			return nil, err
		}
		return record.Encode(ctx, v)
	}
	var issues goarr.Issues
	out := make([]any, 0, len(elems))
	for i, el := range elems {
		v, err := record.DecodeInto(ctx, desc, el)
		if err != nil {
			iss, ok := goarr.AsIssues(err)
			if !ok {
				return nil, err
			}
			issues = append(issues, goarr.RebaseIssues(goarr.Root().Index(i), iss)...)
			if !goarr.IsCollect(ctx) {
				break
			}
			continue
		}
		m, err := record.Encode(ctx, v)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}

func schemaCmd(_ context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "schema")
	color := colorFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(e.stderr, "usage: goarr schema NAME")
		return errUsage
	}
	desc, err := lookup(fs.Arg(0))
	if err != nil {
		return err
	}
	s, err := record.JSONSchema(desc)
	if err != nil {
		return err
	}
	return writeJSON(e, s, *color)
}

func colorFlag(fs *pflag.FlagSet) *bool {
	return fs.Bool("color", false, "highlight JSON output for a 256-colour terminal")
}

// writeJSON prints v indented, optionally highlighted.
func writeJSON(e *env, v any, color bool) error {
	b, err := j.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if color {
		if err := quick.Highlight(e.stdout, string(b)+"\n", "json", "terminal256", "monokai"); err == nil {
			return nil
		}
	}
	_, err = fmt.Fprintln(e.stdout, string(b))
	return err
}

func recordsCmd(_ context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "records")
	var prefix string
	fs.StringVar(&prefix, "prefix", "", "only names starting with prefix, e.g. radarr.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	for _, n := range record.Registered() {
		if strings.HasPrefix(n, prefix) {
			fmt.Fprintln(e.stdout, n)
		}
	}
	return nil
}
