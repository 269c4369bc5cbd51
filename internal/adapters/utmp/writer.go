package utmp

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Write appends recs to w in the on-disk layout.
func Write(w io.Writer, order binary.ByteOrder, recs ...Record) error {
	for i, rec := range recs {
		if _, err := w.Write(Encode(rec, order)); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	return nil
}

// WriteFile creates path holding recs, replacing any existing file.
func WriteFile(path string, order binary.ByteOrder, recs ...Record) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create session log %q: %w", path, err)
	}

	if err := Write(file, order, recs...); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close session log %q: %w", path, err)
	}

	return nil
}
