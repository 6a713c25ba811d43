package extraction

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"

	"github.com/nguyenthenguyen/docx"
)

var (
	xmlTagRe       = regexp.MustCompile(`<[^>]+>`)
	paragraphEndRe = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	tabRe          = regexp.MustCompile(`<w:tab\s*/>`)
)

// maxDocumentXMLBytes caps the decompressed document body
var maxDocumentXMLBytes int64 = 64 << 20

// docxStrategies lists the DOCX presets in the order they are tried
func docxStrategies() []Strategy {
	return []Strategy{
		{Name: "DOCX Paragraphs", Extract: extractDOCXParagraphs},
		{Name: "DOCX Raw", Extract: extractDOCXRaw},
	}
}

// extractDOCXParagraphs reads the document body through the docx library
func extractDOCXParagraphs(data []byte) (string, error) {
	r := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(r, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return documentXMLToText(doc.Editable().GetContent()), nil
}

// extractDOCXRaw opens the archive directly and reads word/document.xml,
// for files the docx library refuses
func extractDOCXRaw(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx archive: %w", err)
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()

		content, err := io.ReadAll(io.LimitReader(rc, maxDocumentXMLBytes+1))
		if err != nil {
			return "", err
		}
		if int64(len(content)) > maxDocumentXMLBytes {
			return "", fmt.Errorf("word/document.xml exceeds %d bytes", maxDocumentXMLBytes)
		}
		return documentXMLToText(string(content)), nil
	}
	return "", fmt.Errorf("no word/document.xml found in docx")
}

func documentXMLToText(xml string) string {
	xml = paragraphEndRe.ReplaceAllString(xml, "\n")
	xml = tabRe.ReplaceAllString(xml, " ")
	text := xmlTagRe.ReplaceAllString(xml, "")
	return normalizeWhitespace(html.UnescapeString(text))
}
