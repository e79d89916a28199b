package fs

import (
	"os"
	"path/filepath"

	"github.com/GBuch1/spider"
)

// WriteFile writes data to path, creating parent directories as needed.
// The data is written to a temporary file first and renamed into place,
// so an interrupted run never leaves a truncated report behind.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return nil
}

// EncodeText converts UTF-8 text to the encoding named by label.
// Returns EINVALID if the label is unknown.
func EncodeText(label string, text []byte) ([]byte, error) {
	enc, err := LookupEncoding(label)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes(text)
	if err != nil {
		return nil, spider.Errorf(spider.EINVALID, "encode as %s: %v", label, err)
	}
	return out, nil
}
