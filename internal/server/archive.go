package server

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"

	"bizforge/internal/models"
)

// BuildArchive zips a generated file map. Entries are written in sorted
// path order so the same file map always produces the same archive layout.
func BuildArchive(files models.FileMap) ([]byte, error) {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, path := range paths {
		entry, err := zw.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create archive entry %s: %w", path, err)
		}
		if _, err := entry.Write([]byte(files[path])); err != nil {
			return nil, fmt.Errorf("write archive entry %s: %w", path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}
