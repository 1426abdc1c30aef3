package messages

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Messages map[string]string `json:"messages" yaml:"messages"`
}

// LoadFS walks the provided filesystem and parses JSON/YAML message catalog
// files, later files overriding earlier ones. When fsys is nil or holds no
// catalog files, an empty catalog is returned.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	merged := make(map[string]string)
	if fsys == nil {
		return New(merged)
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("messages: read %s: %w", path, err)
		}

		doc, err := parseCatalog(data, path)
		if err != nil {
			return err
		}
		for kind, template := range doc.Messages {
			trimmed := strings.TrimSpace(kind)
			if trimmed == "" {
				return fmt.Errorf("messages: file %s defines an empty message kind", path)
			}
			merged[trimmed] = template
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return New(merged)
}

func parseCatalog(data []byte, source string) (catalogFile, error) {
	var doc catalogFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return catalogFile{}, fmt.Errorf("messages: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return catalogFile{}, fmt.Errorf("messages: parse %s: invalid JSON or YAML", source)
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
