// Package ingestion turns uploaded resume files into clean plain text.
// Binary formats (PDF, Word) go through docconv, HTML is stripped with
// goquery, and plain text is read directly.
package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/PuerkitoBio/goquery"
)

// supportedExtensions maps accepted file extensions to their extraction route
var supportedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".rtf":  true,
	".odt":  true,
	".html": true,
	".htm":  true,
	".txt":  true,
}

// IsSupported reports whether a filename has an extension the extractor handles
func IsSupported(filename string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SaveUpload writes an uploaded file into dir and returns its full path.
// The directory is created if it does not exist.
func SaveUpload(dir, filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	// Strip any path components a client might smuggle into the filename
	path := filepath.Join(dir, filepath.Base(filename))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return path, nil
}

// ExtractText extracts the plain text of a resume file and cleans it.
// Returns UnsupportedTypeError for unknown extensions and ExtractionError
// when the document cannot be read.
func ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var text string
	switch ext {
	case ".pdf", ".doc", ".docx", ".rtf", ".odt":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Cause: err}
		}
		text = res.Body
	case ".html", ".htm":
		stripped, err := extractHTML(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Cause: err}
		}
		text = stripped
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Cause: err}
		}
		text = string(content)
	default:
		return "", &UnsupportedTypeError{Extension: ext}
	}

	return CleanText(text), nil
}

// extractHTML strips markup and returns the visible text of an HTML document
func extractHTML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript").Remove()

	// Pull text per block element so sections stay on separate lines
	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})
	if sb.Len() == 0 {
		return doc.Text(), nil
	}
	return sb.String(), nil
}
