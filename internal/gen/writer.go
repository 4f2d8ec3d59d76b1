package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes the generated files into outputDir, creating it when
// needed. A file whose content is already up to date is left untouched so
// that repeated go:generate runs do not bump modification times.
//
// Each file is written to a temporary sibling and renamed into place, so a
// bridge on disk is never partially written.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		path := filepath.Join(outputDir, file.Filename)

		if current, err := os.ReadFile(path); err == nil && bytes.Equal(current, file.Content) {
			continue
		}

		if err := writeAtomic(path, file.Content); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

func writeAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// writeUnformatted saves source that go/format rejected as
// "<name>.unformatted.go" in dir, headed by the formatter error, so the
// template output can be inspected. The name keeps the .go suffix for
// editors but never collides with a bridge file.
func writeUnformatted(dir, filename string, content []byte, cause error) error {
	if dir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// go/format: %v\n\n", cause)
	buf.Write(content)

	name := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return writeAtomic(filepath.Join(dir, name), buf.Bytes())
}
