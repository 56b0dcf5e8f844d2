package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/tombstone/internal/config"
	"github.com/vk/tombstone/internal/ctxlog"
	"github.com/vk/tombstone/internal/fsutil"
	"github.com/vk/tombstone/internal/lang"
	"github.com/zclconf/go-cty/cty"
)

// Extension is the file extension this loader reads.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// evalContext exposes LOCAL as a bare identifier.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			string(lang.Local): cty.StringVal(string(lang.Local)),
		},
	}
}

// Load parses every .hcl file under paths and returns the declarations in
// the order they appear.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		decls, diags := decodeBody(hclFile.Body)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		model.Append(decls...)
	}

	logger.Debug("HCL loading complete.", "files", len(files), "declarations", len(model.Declarations))
	return model, nil
}

// LoadSource decodes a single in-memory manifest. filename is used only in
// positions and diagnostics.
func (l *Loader) LoadSource(src []byte, filename string) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL source %s: %w", filename, diags)
	}
	decls, diags := decodeBody(hclFile.Body)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL source %s: %w", filename, diags)
	}
	return &config.Model{Declarations: decls}, nil
}

// decodeBody translates every top-level block into declarations. hcl.Body
// returns blocks in source order, which is what keeps program duplicates
// deterministic.
func decodeBody(body hcl.Body) ([]config.Declaration, hcl.Diagnostics) {
	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	evalCtx := evalContext()
	var decls []config.Declaration
	for _, block := range content.Blocks {
		origin := fmt.Sprintf("%s:%d,%d", block.DefRange.Filename, block.DefRange.Start.Line, block.DefRange.Start.Column)

		switch block.Type {
		case "program":
			var b programBlock
			if d := gohcl.DecodeBody(block.Body, evalCtx, &b); d.HasErrors() {
				diags = append(diags, d...)
				continue
			}
			decl := config.Program(block.Labels[0], b.Language)
			decl.Origin = origin
			decls = append(decls, decl)

		case "interpreter":
			var b interpreterBlock
			if d := gohcl.DecodeBody(block.Body, evalCtx, &b); d.HasErrors() {
				diags = append(diags, d...)
				continue
			}
			languages, d := b.targets(block)
			if d.HasErrors() {
				diags = append(diags, d...)
				continue
			}
			for _, language := range languages {
				decl := config.Interpreter(b.Base, language)
				decl.Origin = origin
				decls = append(decls, decl)
			}

		case "translator":
			var b translatorBlock
			if d := gohcl.DecodeBody(block.Body, evalCtx, &b); d.HasErrors() {
				diags = append(diags, d...)
				continue
			}
			decl := config.Translator(b.Base, b.Source, b.Target)
			decl.Origin = origin
			decls = append(decls, decl)
		}
	}
	return decls, diags
}

// targets returns the languages an interpreter block declares.
func (b *interpreterBlock) targets(block *hcl.Block) ([]string, hcl.Diagnostics) {
	switch {
	case b.Language != nil && len(b.Languages) > 0:
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Conflicting interpreter languages",
			Detail:   `Set either "language" or "languages", not both.`,
			Subject:  block.DefRange.Ptr(),
		}}
	case b.Language != nil:
		return []string{*b.Language}, nil
	case len(b.Languages) > 0:
		return b.Languages, nil
	default:
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Missing interpreter language",
			Detail:   `An interpreter block requires "language" or "languages".`,
			Subject:  block.DefRange.Ptr(),
		}}
	}
}
