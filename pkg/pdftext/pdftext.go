// Package pdftext extracts plain text from PDF documents.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText is returned when a document parses but carries no extractable text,
// for example a scanned image.
var ErrNoText = errors.New("pdf contains no extractable text")

// FromReader reads a whole document from r and extracts its text.
func FromReader(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	return FromBytes(ctx, data)
}

// FromBytes extracts text from an in-memory PDF. Whitespace runs are collapsed.
func FromBytes(ctx context.Context, data []byte) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("empty pdf data")
	}

	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("parse pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	text = strings.Join(strings.Fields(buf.String()), " ")
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
