package leetlist

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// WriteWordlist writes words to w one per line, each terminated by a newline
func WriteWordlist(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveWordlist writes words to the file at path, truncating it.
// an empty path means nothing was chosen and is a no-op
func SaveWordlist(path string, words []string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if err := WriteWordlist(f, words); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
