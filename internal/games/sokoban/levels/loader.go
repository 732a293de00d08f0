// Package levels loads Sokoban level collections from SLC (XML) and YAML
// containers, from disk or from the packs compiled into the binary.
// This package depends on core but core does not depend on levels.
package levels

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/formats"
)

// Format identifies a container format.
type Format string

const (
	FormatSLC  Format = "slc"
	FormatYAML Format = "yaml"
)

// Collection is an ordered sequence of levels. The order is the play order.
type Collection struct {
	ID          string
	Title       string
	Description string
	Author      string
	Levels      []*core.Level
	FilePath    string // empty for built-in packs
}

// Len returns the number of levels.
func (c *Collection) Len() int {
	return len(c.Levels)
}

// Level returns a fresh copy of the level at index (0-based), or nil if
// the index is out of range. The collection itself is never mutated by play.
func (c *Collection) Level(index int) *core.Level {
	if index < 0 || index >= len(c.Levels) {
		return nil
	}
	return c.Levels[index].Clone()
}

// DisplayTitle returns the title, falling back to the ID.
func (c *Collection) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.ID
}

// LoadError is the single error type returned by every loading entry point.
// Err is one of: an I/O error (*fs.PathError and friends), a container
// syntax error (*xml.SyntaxError, yaml), or a *core.InvalidCharError for a
// bad level block.
type LoadError struct {
	Source string
	Level  int // 1-based level number, 0 when the error is not level specific
	Err    error
}

func (e *LoadError) Error() string {
	if e.Level > 0 {
		return fmt.Sprintf("loading %s: level %d: %v", e.Source, e.Level, e.Err)
	}
	return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// newLoadError wraps a parser error, lifting level information out of
// block errors.
func newLoadError(source string, err error) *LoadError {
	var blockErr *formats.BlockError
	if errors.As(err, &blockErr) {
		return &LoadError{Source: source, Level: blockErr.Index + 1, Err: blockErr.Err}
	}
	return &LoadError{Source: source, Err: err}
}

// Load reads a whole collection from r in the given format.
// The collection ID is left empty.
func Load(r io.Reader, format Format) (*Collection, error) {
	return load(r, format, string(format)+" stream")
}

func load(r io.Reader, format Format, source string) (*Collection, error) {
	var (
		parsed formats.Collection
		err    error
	)

	switch format {
	case FormatSLC:
		parsed, err = formats.ParseSLC(r)
	case FormatYAML:
		var data []byte
		data, err = io.ReadAll(r)
		if err == nil {
			parsed, err = formats.ParseYAML(data)
		}
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, newLoadError(source, err)
	}

	return &Collection{
		Title:       parsed.Title,
		Description: parsed.Description,
		Author:      parsed.Author,
		Levels:      parsed.Levels,
	}, nil
}

// FormatForPath picks the container format from a file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".slc", ".xml":
		return FormatSLC, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// LoadFile loads a collection file. The ID is the file name without its
// extension.
func LoadFile(path string) (*Collection, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("unsupported extension %q", filepath.Ext(path))}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	c, err := load(bytes.NewReader(data), format, path)
	if err != nil {
		return nil, err
	}
	c.ID = collectionID(path)
	c.FilePath = path
	return c, nil
}

// collectionID derives an ID from a file name.
func collectionID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Loader scans a directory of user collections.
type Loader struct {
	Root string
}

// NewLoader creates a new collection loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively loads every supported file under Root, sorted by ID.
// Files that fail to load are skipped and returned in skipped so the
// caller can report them. A missing Root is not an error.
func (l *Loader) LoadAll() (collections []*Collection, skipped []error, err error) {
	err = filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == l.Root && errors.Is(err, os.ErrNotExist) {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := FormatForPath(path); !ok {
			return nil
		}

		c, loadErr := LoadFile(path)
		if loadErr != nil {
			skipped = append(skipped, loadErr)
			return nil
		}
		collections = append(collections, c)
		return nil
	})
	if err != nil {
		return nil, skipped, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(collections, func(i, j int) bool {
		return collections[i].ID < collections[j].ID
	})
	return collections, skipped, nil
}

// Resolve loads a collection by name: a built-in pack ID, or else a path
// to a collection file.
func Resolve(name string) (*Collection, error) {
	if c, err := Builtin(name); err == nil {
		return c, nil
	}
	return LoadFile(name)
}
