package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	persona "github.com/Krustal/persona"
	"github.com/Krustal/persona/i18n"
	"github.com/Krustal/persona/schemadoc"
	"github.com/Krustal/persona/schemahcl"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	case "convert":
		convertCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "persona CLI\n\nUsage:\n  persona check [-lang en|ja] [-loose] [-choices file] schema.{json,yaml,hcl}\n  persona convert [-loose] -o out.{json,yaml} schema.{json,yaml,hcl}\n\nNotes:\n  - check loads a schema (and optionally a choice document) and reports what is choosable and what is unanswered.\n  - convert rewrites a schema document into the format named by the output extension.\n  - -loose ignores unrecognized keys in JSON/YAML schema documents.")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var lang string
	var choicesFile string
	var loose bool
	fs.StringVar(&lang, "lang", "en", "message language for reported issues (en/ja)")
	fs.StringVar(&choicesFile, "choices", "", "choice document to replay against the schema")
	fs.BoolVar(&loose, "loose", false, "ignore unrecognized keys in JSON/YAML schema documents")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	schema, err := loadSchema(fs.Arg(0), loose)
	if err != nil {
		reportIssues(err)
		os.Exit(1)
	}

	var initial []persona.Choice
	if choicesFile != "" {
		initial, err = loadChoices(choicesFile)
		if err != nil {
			reportIssues(err)
			os.Exit(1)
		}
	}

	b, err := persona.New(schema, initial...)
	if err != nil {
		reportIssues(err)
		os.Exit(1)
	}

	fields := b.Fields()
	missing := b.Missing()
	fmt.Printf("ok: %d choosable, %d unanswered\n", len(fields), len(missing))
	if req := b.Requires(); len(req) > 0 {
		fmt.Printf("required: %s\n", strings.Join(req, ", "))
	}
	for _, p := range missing {
		fmt.Printf("missing: %s\n", p)
	}
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var out string
	var loose bool
	fs.StringVar(&out, "o", "", "output filename; extension picks the format")
	fs.BoolVar(&loose, "loose", false, "ignore unrecognized keys in JSON/YAML schema documents")
	_ = fs.Parse(args)
	if fs.NArg() != 1 || out == "" {
		fs.Usage()
		os.Exit(2)
	}

	schema, err := loadSchema(fs.Arg(0), loose)
	if err != nil {
		reportIssues(err)
		os.Exit(1)
	}

	var data []byte
	switch ext(out) {
	case ".json":
		data, err = schemadoc.EncodeSchema(schema)
	case ".yaml", ".yml":
		data, err = schemadoc.EncodeSchemaYAML(schema)
	default:
		fatalf("unsupported output format %q (use .json, .yaml or .yml)", ext(out))
	}
	if err != nil {
		reportIssues(err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func loadSchema(path string, loose bool) (*persona.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opt := schemadoc.DecodeOpt{IgnoreUnknown: loose}
	switch ext(path) {
	case ".json":
		return schemadoc.DecodeSchema(data, opt)
	case ".yaml", ".yml":
		return schemadoc.DecodeSchemaYAML(data, opt)
	case ".hcl":
		return schemahcl.DecodeSchema(data, filepath.Base(path))
	default:
		return nil, fmt.Errorf("unsupported schema format %q (use .json, .yaml, .yml or .hcl)", ext(path))
	}
}

func loadChoices(path string) ([]persona.Choice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext(path) {
	case ".json":
		return schemadoc.DecodeChoices(data)
	case ".yaml", ".yml":
		return schemadoc.DecodeChoicesYAML(data)
	case ".hcl":
		return schemahcl.DecodeChoices(data, filepath.Base(path))
	default:
		return nil, fmt.Errorf("unsupported choice format %q (use .json, .yaml, .yml or .hcl)", ext(path))
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func reportIssues(err error) {
	iss, ok := persona.AsIssues(err)
	if !ok {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	for _, it := range iss {
		msg := it.Message
		if msg == "" {
			msg = i18n.T(it.Code, nil)
		}
		path := it.Path
		if path == "" {
			path = "."
		}
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", path, it.Code, msg)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
