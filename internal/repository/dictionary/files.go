package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSource reads charged words from every *.txt file in a directory.
// Files hold one word per line; blank lines and lines starting with # are skipped.
type FileSource struct {
	dir string
}

// NewFileSource creates a FileSource for dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Words returns the raw words of all files, in file name order.
func (s *FileSource) Words(ctx context.Context) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", s.dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no *.txt files in %s", s.dir)
	}

	var words []string
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("read dictionary: %w", err)
		}
		fileWords, err := readWords(p)
		if err != nil {
			return nil, err
		}
		words = append(words, fileWords...)
	}
	return words, nil
}

func readWords(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return words, nil
}
