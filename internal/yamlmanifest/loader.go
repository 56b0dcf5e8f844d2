// Package yamlmanifest provides the YAML implementation of the
// config.Loader interface:
//
//	declarations:
//	  - program: {name: hello, language: Java}
//	  - interpreter: {base: LOCAL, language: C}
//	  - translator: {base: LOCAL, source: Java, target: C}
//
// Each list entry must hold exactly one of program, interpreter and
// translator. Entries are returned in document order.
package yamlmanifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/tombstone/internal/config"
	"github.com/vk/tombstone/internal/ctxlog"
	"github.com/vk/tombstone/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions this loader reads.
var Extensions = []string{".yaml", ".yml"}

type document struct {
	Declarations []entry `yaml:"declarations"`
}

type entry struct {
	Program     *programEntry     `yaml:"program"`
	Interpreter *interpreterEntry `yaml:"interpreter"`
	Translator  *translatorEntry  `yaml:"translator"`

	line, column int
}

type programEntry struct {
	Name     string `yaml:"name"`
	Language string `yaml:"language"`
}

type interpreterEntry struct {
	Base     string `yaml:"base"`
	Language string `yaml:"language"`
}

type translatorEntry struct {
	Base   string `yaml:"base"`
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// UnmarshalYAML records the entry's position so declarations can point
// back at the manifest.
func (e *entry) UnmarshalYAML(node *yaml.Node) error {
	// node.Decode does not inherit the decoder's KnownFields setting.
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			switch key.Value {
			case "program", "interpreter", "translator":
			default:
				return fmt.Errorf("line %d: unknown declaration kind %q", key.Line, key.Value)
			}
		}
	}

	type plain entry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = entry(p)
	e.line, e.column = node.Line, node.Column
	return nil
}

// Loader reads YAML manifests.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every YAML file under paths.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML manifests.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open YAML manifest %s: %w", file, err)
		}
		m, err := l.Decode(f, file)
		f.Close()
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}
	return model, nil
}

// Decode reads a single manifest from r. filename is used only in positions.
func (l *Loader) Decode(r io.Reader, filename string) (*config.Model, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML manifest %s: %w", filename, err)
	}

	model := &config.Model{}
	for i, e := range doc.Declarations {
		decl, err := e.declaration()
		if err != nil {
			return nil, fmt.Errorf("%s: declaration %d: %w", filename, i+1, err)
		}
		decl.Origin = fmt.Sprintf("%s:%d,%d", filename, e.line, e.column)
		model.Append(decl)
	}
	return model, nil
}

// DecodeBytes is a convenience wrapper around Decode.
func (l *Loader) DecodeBytes(src []byte, filename string) (*config.Model, error) {
	return l.Decode(bytes.NewReader(src), filename)
}

func (e entry) declaration() (config.Declaration, error) {
	set := 0
	var decl config.Declaration
	if e.Program != nil {
		set++
		decl = config.Program(e.Program.Name, e.Program.Language)
	}
	if e.Interpreter != nil {
		set++
		decl = config.Interpreter(e.Interpreter.Base, e.Interpreter.Language)
	}
	if e.Translator != nil {
		set++
		decl = config.Translator(e.Translator.Base, e.Translator.Source, e.Translator.Target)
	}
	if set != 1 {
		return config.Declaration{}, fmt.Errorf("%w: expected exactly one of program, interpreter or translator, got %d", config.ErrInvalidDeclaration, set)
	}
	return decl, nil
}
