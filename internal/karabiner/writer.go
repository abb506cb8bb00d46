package karabiner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrUnwritable is returned when the document cannot be rendered or written.
var ErrUnwritable = errors.New("output unwritable")

const filePerm = 0o644

// Marshal renders doc as indented JSON with a trailing newline.
// Non-ASCII text and HTML characters are written as is.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	err := enc.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding document: %w", ErrUnwritable, err)
	}

	return buf.Bytes(), nil
}

// Write renders doc to w.
func Write(w io.Writer, doc *Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrUnwritable, err)
	}

	return nil
}

// WriteFile renders doc to path, creating or truncating the file.
func WriteFile(doc *Document, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrUnwritable, path, err)
	}

	return nil
}
