package extraction

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	horizontalSpaceRe = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	blankLinesRe      = regexp.MustCompile(`\n{3,}`)
)

// pdfStrategies lists the PDF presets in the order they are tried
func pdfStrategies() []Strategy {
	return []Strategy{
		{Name: "Standard", Extract: extractPDFStandard},
		{Name: "Normalized", Extract: extractPDFNormalized},
		{Name: "Raw Complex", Extract: extractPDFRawComplex},
		{Name: "Row Ordered", Extract: extractPDFRowOrdered},
	}
}

func openPDF(data []byte) (*pdf.Reader, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}
	if r.NumPage() == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}
	return r, nil
}

// extractPDFStandard reads plain text page by page
func extractPDFStandard(data []byte) (string, error) {
	r, err := openPDF(data)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractPDFNormalized reads the whole document at once and normalizes whitespace
func extractPDFNormalized(data []byte) (string, error) {
	r, err := openPDF(data)
	if err != nil {
		return "", err
	}

	textReader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting plain text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, textReader); err != nil {
		return "", fmt.Errorf("reading text buffer: %w", err)
	}
	return normalizeWhitespace(buf.String()), nil
}

// extractPDFRawComplex rebuilds lines from the positioned text items of each page.
// Items on the same baseline are joined, with a space where there is a visible gap.
func extractPDFRawComplex(data []byte) (string, error) {
	r, err := openPDF(data)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		sb.WriteString(combineTextItems(page.Content().Text))
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

func combineTextItems(items []pdf.Text) string {
	if len(items) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(items))
	copy(sorted, items)
	// top to bottom, then left to right
	sort.SliceStable(sorted, func(a, b int) bool {
		if !sameLine(sorted[a], sorted[b]) {
			return sorted[a].Y > sorted[b].Y
		}
		return sorted[a].X < sorted[b].X
	})

	var sb strings.Builder
	prev := sorted[0]
	sb.WriteString(prev.S)
	for _, t := range sorted[1:] {
		switch {
		case !sameLine(prev, t):
			sb.WriteString("\n")
		case t.X-(prev.X+prev.W) > math.Max(prev.FontSize, 1)*0.15:
			sb.WriteString(" ")
		}
		sb.WriteString(t.S)
		prev = t
	}
	return sb.String()
}

func sameLine(a, b pdf.Text) bool {
	tolerance := math.Max(math.Min(a.FontSize, b.FontSize)*0.5, 1)
	return math.Abs(a.Y-b.Y) < tolerance
}

// extractPDFRowOrdered uses the library's row grouping and normalizes whitespace
func extractPDFRowOrdered(data []byte) (string, error) {
	r, err := openPDF(data)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			sb.WriteString(strings.Join(words, " "))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return normalizeWhitespace(sb.String()), nil
}

// normalizeWhitespace collapses horizontal whitespace and blank line runs
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = horizontalSpaceRe.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
