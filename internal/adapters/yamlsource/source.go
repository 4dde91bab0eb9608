// Package yamlsource reads project documents from YAML files. A document
// file looks like:
//
//	existing: false
//	project:
//	  name: Sprint 1
//	  todos:
//	    - title: Plan
//	      status: done
//	      progress: 100
//
// Paths given to New may be files or directories; directories contribute
// their *.yaml and *.yml files, not recursively.
package yamlsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen11/go-ddd-kit/internal/ports"
	"github.com/jsamuelsen11/go-ddd-kit/internal/sample/project"
)

// ErrNoDocuments is returned when the configured paths contain no YAML files.
var ErrNoDocuments = errors.New("no yaml documents found")

// Source implements ports.DocumentSource over a set of paths.
type Source struct {
	paths []string
}

var _ ports.DocumentSource = (*Source)(nil)

// New returns a Source reading the given files and directories.
func New(paths ...string) *Source {
	return &Source{paths: slices.Clone(paths)}
}

// Documents decodes every file in path order, directory entries sorted by
// name. A file that cannot be decoded yields a Document with Err set.
func (s *Source) Documents(ctx context.Context) ([]ports.Document, error) {
	files, err := s.files()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoDocuments
	}

	docs := make([]ports.Document, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docs = append(docs, decode(path))
	}
	return docs, nil
}

func (s *Source) files() ([]string, error) {
	var out []string
	for _, p := range s.paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("reading document path: %w", err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", p, err)
		}
		for _, e := range entries {
			if e.Type()&fs.ModeType == 0 && isYAML(e.Name()) {
				out = append(out, filepath.Join(p, e.Name()))
			}
		}
	}
	return out, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func decode(path string) ports.Document {
	doc := ports.Document{Name: path}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		doc.Err = fmt.Errorf("parsing %s: %w", path, err)
		return doc
	}
	if !k.Exists("project") {
		doc.Err = fmt.Errorf("%s: missing top-level project key", path)
		return doc
	}

	var dto project.DTO
	if err := k.Unmarshal("project", &dto); err != nil {
		doc.Err = fmt.Errorf("decoding project in %s: %w", path, err)
		return doc
	}

	doc.Existing = k.Bool("existing")
	doc.Project = dto
	return doc
}
