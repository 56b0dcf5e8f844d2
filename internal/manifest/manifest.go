// Package manifest loads declaration manifests of any supported format and
// merges them into one config.Model.
package manifest

import (
	"context"
	"fmt"

	"github.com/vk/tombstone/internal/config"
	"github.com/vk/tombstone/internal/ctxlog"
	"github.com/vk/tombstone/internal/fsutil"
	"github.com/vk/tombstone/internal/hcl"
	"github.com/vk/tombstone/internal/yamlmanifest"
)

// Loader dispatches each manifest file to the loader for its extension.
type Loader struct {
	byExt map[string]config.Loader
}

var _ config.Loader = (*Loader)(nil)

// NewLoader returns a Loader that understands HCL and YAML manifests.
func NewLoader() *Loader {
	l := &Loader{byExt: make(map[string]config.Loader)}
	l.Register(hcl.NewLoader(), hcl.Extension)
	l.Register(yamlmanifest.NewLoader(), yamlmanifest.Extensions...)
	return l
}

// Register binds a loader to one or more file extensions, replacing any
// previous binding.
func (l *Loader) Register(loader config.Loader, extensions ...string) {
	for _, ext := range extensions {
		l.byExt[ext] = loader
	}
}

// Extensions returns the registered extensions.
func (l *Loader) Extensions() []string {
	exts := make([]string, 0, len(l.byExt))
	for ext := range l.byExt {
		exts = append(exts, ext)
	}
	return exts
}

// Load reads every manifest under paths. Files are read in the order the
// paths are given, directories in lexical order, so the first definition
// of a program is the first one a reader would see.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 && len(paths) > 0 {
		return nil, fmt.Errorf("no manifest files found in %v", paths)
	}

	model := &config.Model{}
	for _, file := range files {
		loader := l.loaderFor(file)
		m, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		logger.Debug("Manifest loaded.", "file", file, "declarations", len(m.Declarations))
		model.Merge(m)
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	logger.Info("Manifests loaded.", "files", len(files), "declarations", len(model.Declarations))
	return model, nil
}

func (l *Loader) loaderFor(file string) config.Loader {
	for ext, loader := range l.byExt {
		if fsutil.HasExtension(file, ext) {
			return loader
		}
	}
	// FindFilesByExtension only returns registered extensions.
	panic(fmt.Sprintf("manifest: no loader for %s", file))
}
