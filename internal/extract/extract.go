// Package extract turns uploaded file bytes into plain text.
package extract

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/set-night/healthdash/internal/config"
	"github.com/set-night/healthdash/internal/domain"
)

// Ext returns the lower-cased extension of name, including the dot.
func Ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// Allowed reports whether name carries an extension the upload endpoint accepts.
func Allowed(name string) bool {
	return slices.Contains(config.AllowedExtensions, Ext(name))
}

// Text extracts plain text from data according to the extension of name.
// Extensions without an extractor yield an empty string.
func Text(name string, data []byte) (string, error) {
	switch Ext(name) {
	case ".pdf":
		return PDF(data)
	case ".txt":
		return Plain(data)
	default:
		return "", nil
	}
}

// Plain returns data verbatim when it is valid UTF-8.
func Plain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", domain.BadInput("Error decoding text file: invalid UTF-8")
	}
	return string(data), nil
}

// PDF concatenates the text of every page in order and trims the result.
func PDF(data []byte) (text string, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", domain.BadInput("Error extracting text from PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", domain.BadInput("Error extracting text from PDF: %v", err)
	}

	var sb strings.Builder
	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			return "", domain.BadInput("Error extracting text from PDF page %d: %v", i, err)
		}
		sb.WriteString(pageText)
	}

	return strings.TrimSpace(sb.String()), nil
}
