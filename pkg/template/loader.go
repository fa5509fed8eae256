package template

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a single YAML definition document. The path argument is
// only used to label errors.
func Parse(data []byte, path string) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("template: parse %s: %w", path, err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, fmt.Errorf("template: %s: %w", path, err)
	}
	return def, nil
}

// LoadFS walks the provided filesystem and parses every YAML definition
// file, preserving lexical path order so batch output is stable. Ids must
// be unique across the loaded set.
func LoadFS(fsys fs.FS) ([]Definition, error) {
	if fsys == nil {
		return nil, nil
	}

	var defs []Definition
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("template: read %s: %w", path, err)
		}

		fileDefs, err := parseDocuments(data, path)
		if err != nil {
			return err
		}

		for _, def := range fileDefs {
			if prev, dup := seen[def.ID]; dup {
				return fmt.Errorf("template: duplicate definition id %q (files %s and %s)", def.ID, prev, path)
			}
			seen[def.ID] = path
			defs = append(defs, def)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return defs, nil
}

// parseDocuments handles multi-document YAML files so related definitions
// can live together, one document per generated file.
func parseDocuments(data []byte, path string) ([]Definition, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	var defs []Definition
	for {
		var def Definition
		if err := decoder.Decode(&def); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("template: parse %s: %w", path, err)
		}
		if def.ID == "" && len(def.Sections) == 0 && len(def.Conditionals) == 0 {
			// Empty document (e.g. trailing separator); skip.
			continue
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("template: %s: %w", path, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
