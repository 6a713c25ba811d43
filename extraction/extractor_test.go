package extraction

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/utils"
)

func testConfig() *config.Config {
	return &config.Config{ExtractorMaxBytes: 1 << 20, MinTextLength: 50}
}

func words(n int) string {
	vocab := []string{"engineer", "designed", "systems", "leading", "teams", "across", "cloud", "platforms"}
	out := make([]string, n)
	for i := range out {
		out[i] = vocab[i%len(vocab)]
	}
	return strings.Join(out, " ")
}

func TestExtractStopsAtFirstPassingStrategy(t *testing.T) {
	e := NewExtractor(testConfig())

	var calls []string
	fail := func(name string) Strategy {
		return Strategy{Name: name, Extract: func([]byte) (string, error) {
			calls = append(calls, name)
			return "", errors.New("cannot parse")
		}}
	}
	e.strategies[MediaTypePDF] = []Strategy{
		fail("Standard"),
		{Name: "Normalized", Extract: func([]byte) (string, error) {
			calls = append(calls, "Normalized")
			panic("malformed xref")
		}},
		{Name: "Raw Complex", Extract: func([]byte) (string, error) {
			calls = append(calls, "Raw Complex")
			return words(500), nil
		}},
		fail("Row Ordered"),
	}

	result, err := e.Extract(UploadedDocument{Data: []byte("%PDF-1.4"), MediaType: MediaTypePDF, Size: 8, FileName: "cv.pdf"})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if result.StrategyUsed != "Raw Complex" {
		t.Errorf("StrategyUsed = %q, want Raw Complex", result.StrategyUsed)
	}
	if result.CleanedText == "" {
		t.Error("CleanedText is empty")
	}
	if result.TextLength != len([]rune(result.CleanedText)) {
		t.Errorf("TextLength = %d, want %d", result.TextLength, len([]rune(result.CleanedText)))
	}
	if got := strings.Join(calls, ","); got != "Standard,Normalized,Raw Complex" {
		t.Errorf("strategies called = %s", got)
	}
	if len(result.Attempts) != 2 {
		t.Errorf("Attempts = %+v, want 2 entries", result.Attempts)
	}
}

func TestExtractRejectsLowQualityText(t *testing.T) {
	e := NewExtractor(testConfig())
	e.strategies[MediaTypePDF] = []Strategy{
		{Name: "Standard", Extract: func([]byte) (string, error) { return "short", nil }},
		{Name: "Normalized", Extract: func([]byte) (string, error) { return strings.Repeat("12345 -- ", 20), nil }},
	}

	_, err := e.Extract(UploadedDocument{Data: []byte("x"), MediaType: MediaTypePDF, Size: 1})
	if !utils.IsKind(err, utils.KindExtractionExhausted) {
		t.Fatalf("Extract() error = %v, want ExtractionExhausted", err)
	}
}

func TestExtractEnforcesInputRules(t *testing.T) {
	cfg := testConfig()
	cfg.ExtractorMaxBytes = 10
	e := NewExtractor(cfg)

	tests := []struct {
		name string
		doc  UploadedDocument
		want utils.ErrorKind
	}{
		{"missing", UploadedDocument{MediaType: MediaTypePDF}, utils.KindMissingPayload},
		{"unsupported", UploadedDocument{Data: []byte("x"), MediaType: "image/png", Size: 1}, utils.KindUnsupportedMediaType},
		{"declared too large", UploadedDocument{Data: []byte("x"), MediaType: MediaTypeText, Size: 11}, utils.KindPayloadTooLarge},
		{"actual too large", UploadedDocument{Data: []byte(strings.Repeat("a", 11)), MediaType: MediaTypeText, Size: 1}, utils.KindPayloadTooLarge},
		// type is checked before size
		{"unsupported and large", UploadedDocument{Data: []byte(strings.Repeat("a", 11)), MediaType: "image/png", Size: 11}, utils.KindUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Extract(tt.doc)
			if got := utils.KindOf(err); got != tt.want {
				t.Errorf("Extract() kind = %q, want %q (err %v)", got, tt.want, err)
			}
		})
	}
}

func TestExtractPlainText(t *testing.T) {
	e := NewExtractor(testConfig())
	body := "Jane Doe\r\n\r\n\r\n\r\nExperience\t\tSenior Engineer  at Acme\nPage 1 of 2\n" + words(80)

	result, err := e.Extract(UploadedDocument{Data: []byte(body), MediaType: "text/plain; charset=utf-8", Size: int64(len(body))})
	if err != nil {
		t.Fatal(err)
	}
	if result.StrategyUsed != "Plain Text" {
		t.Errorf("StrategyUsed = %q", result.StrategyUsed)
	}
	if strings.Contains(result.CleanedText, "Page 1 of 2") {
		t.Error("page marker should be removed")
	}
	if !strings.HasPrefix(result.CleanedText, "Jane Doe\n\nExperience Senior Engineer at Acme\n") {
		t.Errorf("CleanedText = %q", result.CleanedText[:60])
	}
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml":            documentXML,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractDOCX(t *testing.T) {
	paragraph := func(s string) string { return "<w:p><w:r><w:t>" + s + "</w:t></w:r></w:p>" }
	xml := `<?xml version="1.0" encoding="UTF-8"?><w:document><w:body>` +
		paragraph("Jane Doe") +
		paragraph("Experience &amp; Skills") +
		paragraph(words(60)) +
		`</w:body></w:document>`
	data := buildDOCX(t, xml)

	raw, err := extractDOCXRaw(data)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(raw, "Jane Doe\nExperience & Skills\n") {
		t.Errorf("extractDOCXRaw() = %q", raw[:40])
	}

	e := NewExtractor(testConfig())
	result, err := e.Extract(UploadedDocument{Data: data, MediaType: MediaTypeDOCX, Size: int64(len(data)), FileName: "cv.docx"})
	if err != nil {
		t.Fatal(err)
	}
	if result.StrategyUsed != "DOCX Paragraphs" && result.StrategyUsed != "DOCX Raw" {
		t.Errorf("StrategyUsed = %q", result.StrategyUsed)
	}
	if !strings.Contains(result.CleanedText, "Experience & Skills") {
		t.Errorf("CleanedText = %q", result.CleanedText)
	}
}

func TestExtractDOCXRawRejectsNonArchive(t *testing.T) {
	if _, err := extractDOCXRaw([]byte("not a zip")); err == nil {
		t.Error("expected error for non-zip input")
	}
}

func TestExtractDOCXRawCapsDocumentSize(t *testing.T) {
	defer func(limit int64) { maxDocumentXMLBytes = limit }(maxDocumentXMLBytes)
	maxDocumentXMLBytes = 2 << 10

	// highly repetitive content deflates to a tiny archive
	body := `<w:document><w:body><w:p><w:r><w:t>` + strings.Repeat("a", 8<<10) + `</w:t></w:r></w:p></w:body></w:document>`
	data := buildDOCX(t, body)
	if len(data) > int(maxDocumentXMLBytes) {
		t.Fatalf("archive is %d bytes, want it smaller than the limit", len(data))
	}

	if _, err := extractDOCXRaw(data); err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Errorf("extractDOCXRaw() err = %v, want size limit error", err)
	}
}

func TestIsValidText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"whitespace", "   \n\t ", false},
		{"short", "Jane Doe engineer", false},
		{"numeric noise", strings.Repeat("1234 5678 ", 10), false},
		{"ratio exactly 0.3", strings.Repeat("abc1234567", 6), false},
		{"resume text", words(20), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidText(tt.text, 50); got != tt.want {
				t.Errorf("IsValidText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveMediaType(t *testing.T) {
	tests := []struct {
		declared, filename, want string
	}{
		{"application/pdf", "cv.pdf", MediaTypePDF},
		{"Application/PDF; name=cv.pdf", "cv.pdf", MediaTypePDF},
		{"", "cv.DOCX", MediaTypeDOCX},
		{"application/octet-stream", "notes.txt", MediaTypeText},
		{"application/octet-stream", "scan.png", "application/octet-stream"},
		{"image/png", "cv.pdf", "image/png"},
	}
	for _, tt := range tests {
		if got := ResolveMediaType(tt.declared, tt.filename); got != tt.want {
			t.Errorf("ResolveMediaType(%q, %q) = %q, want %q", tt.declared, tt.filename, got, tt.want)
		}
	}
}
