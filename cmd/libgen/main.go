package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	internalloader "github.com/samuelho-dev/monorepo-library-generator/internal/openapi/loader"
	internalparser "github.com/samuelho-dev/monorepo-library-generator/internal/openapi/parser"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/compiler"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/diag"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/fragment"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/naming"
	pkgopenapi "github.com/samuelho-dev/monorepo-library-generator/pkg/openapi"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/scaffold"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

var optionFlags = []string{"includeCQRS", "includeRPC"}

func main() {
	domain := flag.String("domain", "", "domain name, e.g. \"user profile\"")
	scope := flag.String("scope", "acme", "package scope without the leading @")
	project := flag.String("project", "", "project name (defaults to the scope)")
	libraryType := flag.String("type", "feature", "library type label")
	templatesDir := flag.String("templates", "", "definitions directory (builtin set if empty)")
	output := flag.String("output", "", "output directory (stdout if empty)")
	flagList := flag.String("flags", "", "comma-separated option flags, e.g. includeCQRS,includeRPC")
	openapiSource := flag.String("openapi", "", "OpenAPI document path or URL to import an RPC module from")
	interactive := flag.Bool("interactive", false, "prompt for missing inputs")
	flag.Parse()

	opts := naming.Options{Scope: *scope, ProjectName: *project, LibraryType: *libraryType}
	flags := parseFlags(*flagList)

	if *interactive {
		if err := promptInputs(domain, &opts, flags); err != nil {
			log.Fatalf("prompt: %v", err)
		}
	}
	if *domain == "" {
		log.Fatalf("a domain name is required (use -domain or -interactive)")
	}

	ctx := context.Background()

	variants, err := naming.Derive(*domain, opts)
	if err != nil {
		log.Fatalf("derive naming: %v", err)
	}

	defs, err := loadDefinitions(*templatesDir)
	if err != nil {
		log.Fatalf("load definitions: %v", err)
	}

	if *openapiSource != "" {
		def, err := importOpenAPI(ctx, *openapiSource)
		if err != nil {
			log.Fatalf("import openapi: %v", err)
		}
		defs = append(defs, def)
	}

	c := compiler.New(compiler.WithRegistry(fragment.Builtin()))
	results, err := c.CompileBatch(ctx, defs, variants.Context(flags, nil))
	reportFailures(err)

	var files []string
	for _, result := range results {
		if *output == "" {
			fmt.Printf("// --- %s (%s)\n%s\n", result.TemplateID, result.Path, result.Text)
			continue
		}
		target := filepath.Join(*output, result.Path)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			log.Fatalf("create output directory: %v", err)
		}
		if err := os.WriteFile(target, []byte(result.Text), 0o644); err != nil {
			log.Fatalf("write %s: %v", target, err)
		}
		files = append(files, result.Path)
		fmt.Printf("Generated %s\n", target)
	}

	if *output != "" {
		if err := writeScaffold(*output, variants, files); err != nil {
			log.Fatalf("scaffold: %v", err)
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

// writeScaffold renders the non-code assets (README, project metadata)
// next to the generated sources.
func writeScaffold(output string, variants naming.Variants, files []string) error {
	engine, err := scaffold.Default()
	if err != nil {
		return err
	}

	data := map[string]any{
		"packageName": variants.PackageName,
		"scope":       variants.Scope,
		"libraryType": variants.LibraryType,
		"projectName": variants.ProjectName,
		"className":   variants.ClassName,
		"description": fmt.Sprintf("Generated %s library for the %s domain.", variants.LibraryType, variants.FileName),
		"files":       files,
	}

	for asset, target := range map[string]string{
		"readme.md":    "README.md",
		"project.json": "project.json",
	} {
		text, err := engine.RenderTemplate(asset, data)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(output, target), []byte(text), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func parseFlags(list string) map[string]bool {
	flags := make(map[string]bool)
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			flags[name] = true
		}
	}
	return flags
}

func loadDefinitions(dir string) ([]template.Definition, error) {
	if dir == "" {
		return template.Builtin()
	}
	return template.LoadFS(os.DirFS(dir))
}

func importOpenAPI(ctx context.Context, source string) (template.Definition, error) {
	loaderOpts := pkgopenapi.NewLoaderOptions()
	var src pkgopenapi.Source
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		loaderOpts.AllowHTTP = true
		src = pkgopenapi.SourceFromURL(source)
	} else {
		src = pkgopenapi.SourceFromFile(source)
	}

	doc, err := internalloader.New(loaderOpts).Load(ctx, src)
	if err != nil {
		return template.Definition{}, err
	}

	operations, err := internalparser.New(pkgopenapi.NewParserOptions()).Operations(ctx, doc)
	if err != nil {
		return template.Definition{}, err
	}

	return pkgopenapi.Definition("openapi-rpc", operations), nil
}

func promptInputs(domain *string, opts *naming.Options, flags map[string]bool) error {
	if *domain == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "Domain name:",
			Help:    "Human-readable name, e.g. \"user profile\".",
		}, domain, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	if err := survey.AskOne(&survey.Select{
		Message: "Library type:",
		Options: []string{"feature", "data-access", "util"},
		Default: opts.LibraryType,
	}, &opts.LibraryType); err != nil {
		return err
	}

	var selected []string
	if err := survey.AskOne(&survey.MultiSelect{
		Message: "Optional modules:",
		Options: optionFlags,
	}, &selected); err != nil {
		return err
	}
	for _, name := range selected {
		flags[name] = true
	}
	return nil
}

// reportFailures prints every diagnostic of every failed definition; the
// batch still emits whatever compiled cleanly.
func reportFailures(err error) {
	if err == nil {
		return
	}
	for _, failure := range flatten(err) {
		var ce *diag.CompilationError
		if !errors.As(failure, &ce) {
			fmt.Fprintln(os.Stderr, failure.Error())
			continue
		}
		fmt.Fprintln(os.Stderr, ce.Error())
		for _, d := range ce.Diagnostics {
			fmt.Fprintf(os.Stderr, "  %s\n", d.String())
		}
	}
}

func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}
