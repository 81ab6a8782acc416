package digest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadQuery reads and trims the persona and job files.
func LoadQuery(personaPath, jobPath string) (persona, job string, err error) {
	if persona, err = readInput(personaPath); err != nil {
		return "", "", err
	}
	if job, err = readInput(jobPath); err != nil {
		return "", "", err
	}
	return persona, job, nil
}

func readInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrMissingInputFile, path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", fmt.Errorf("%w: %s cannot be empty", ErrEmptyInput, filepath.Base(path))
	}
	return s, nil
}

// FindDocuments lists the PDFs directly inside dir, sorted by name so that
// repeated runs see the same order.
func FindDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDocuments, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocuments, dir)
	}
	sort.Strings(out)
	return out, nil
}
