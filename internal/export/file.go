package export

import (
	"io"
	"os"
	"path/filepath"
)

// WriteFile creates dir/name, creating dir if needed, and fills it with fn.
// A failed close is reported like a failed write. It returns the file's path.
func WriteFile(dir, name string, fn func(io.Writer) error) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := writeClose(f, fn); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func writeClose(wc io.WriteCloser, fn func(io.Writer) error) (err error) {
	defer func() {
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(wc)
}
