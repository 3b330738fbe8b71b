package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

//go:embed locales/*.yaml
var locales embed.FS

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// DefaultAdapter loads the bundled validation messages.
func DefaultAdapter() TranslationAdapter {
	return NewFSAdapter(locales, "locales")
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter reads every JSON and YAML file of one directory in a file system.
// Files are read in lexical order and later files override earlier keys.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter reads dir inside fsys. Use os.DirFS for files on disk.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	result := make(map[string]map[string]any)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if entry.IsDir() {
			continue
		}

		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		translations, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		merge(result, translations)
	}
	return result, nil
}

// ChainAdapter merges the output of several adapters. Later adapters override
// keys of earlier ones, so custom catalogs can be layered over DefaultAdapter.
type ChainAdapter []TranslationAdapter

func (c ChainAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any)
	for _, a := range c {
		if a == nil {
			continue
		}
		translations, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		merge(result, translations)
	}
	return result, nil
}

func merge(dst, src map[string]map[string]any) {
	for lang, tree := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(tree))
		}
		mergeTree(dst[lang], tree)
	}
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		sub, ok := v.(map[string]any)
		existing, isMap := dst[k].(map[string]any)
		if ok && isMap {
			mergeTree(existing, sub)
			continue
		}
		if ok {
			copied := make(map[string]any, len(sub))
			mergeTree(copied, sub)
			dst[k] = copied
			continue
		}
		dst[k] = v
	}
}
