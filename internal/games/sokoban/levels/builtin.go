package levels

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed packs/*
var packFS embed.FS

// BuiltinNames returns the IDs of the packs compiled into the binary.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(packFS, "packs")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := FormatForPath(e.Name()); ok {
			names = append(names, collectionID(e.Name()))
		}
	}
	sort.Strings(names)
	return names
}

// Builtin loads a pack compiled into the binary by ID.
func Builtin(id string) (*Collection, error) {
	entries, err := fs.ReadDir(packFS, "packs")
	if err != nil {
		return nil, &LoadError{Source: "builtin:" + id, Err: err}
	}

	for _, e := range entries {
		if collectionID(e.Name()) != id {
			continue
		}
		format, ok := FormatForPath(e.Name())
		if !ok {
			continue
		}

		data, err := packFS.ReadFile(path.Join("packs", e.Name()))
		if err != nil {
			return nil, &LoadError{Source: "builtin:" + id, Err: err}
		}
		c, err := load(bytes.NewReader(data), format, "builtin:"+id)
		if err != nil {
			return nil, err
		}
		c.ID = id
		return c, nil
	}

	return nil, &LoadError{Source: "builtin:" + id, Err: fmt.Errorf("no such pack")}
}

// MustBuiltin is like Builtin but panics on error.
func MustBuiltin(id string) *Collection {
	c, err := Builtin(id)
	if err != nil {
		panic(err)
	}
	return c
}
