package extraction

import (
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/resumeinsight/backend/config"
	"github.com/resumeinsight/backend/utils"
)

// minLetterRatio is the share of letters a passing text must exceed
const minLetterRatio = 0.3

// Strategy is one named way of turning a document buffer into text
type Strategy struct {
	Name    string
	Extract func(data []byte) (string, error)
}

// Attempt records a strategy that was tried and rejected
type Attempt struct {
	Strategy string `json:"strategy"`
	Error    string `json:"error"`
}

// ExtractionResult is the output of a successful extraction
type ExtractionResult struct {
	RawText          string    `json:"rawText"`
	CleanedText      string    `json:"cleanedText"`
	StrategyUsed     string    `json:"strategyUsed"`
	ProcessingTimeMs int64     `json:"processingTimeMs"`
	TextLength       int       `json:"textLength"`
	Attempts         []Attempt `json:"attempts,omitempty"`
}

// Extractor runs the ordered strategies for a document's media type
type Extractor struct {
	input         *InputValidator
	minTextLength int
	strategies    map[string][]Strategy
}

// NewExtractor creates an extractor from configuration
func NewExtractor(cfg *config.Config) *Extractor {
	return &Extractor{
		input:         NewInputValidator(cfg.ExtractorMaxBytes),
		minTextLength: cfg.MinTextLength,
		strategies: map[string][]Strategy{
			MediaTypePDF:  pdfStrategies(),
			MediaTypeDOCX: docxStrategies(),
			MediaTypeText: {{Name: "Plain Text", Extract: extractPlainText}},
		},
	}
}

// Extract validates the upload and returns the text of the first strategy
// whose output passes the quality bar. Later strategies are never run.
func (e *Extractor) Extract(doc UploadedDocument) (*ExtractionResult, error) {
	if err := e.input.Validate(doc); err != nil {
		return nil, err
	}

	start := time.Now()
	strategies := e.strategies[NormalizeMediaType(doc.MediaType)]
	var attempts []Attempt

	for _, strategy := range strategies {
		text, err := runStrategy(strategy, doc.Data)
		if err != nil {
			log.Printf("[Extractor] Strategy %q failed for %s: %v", strategy.Name, doc.FileName, err)
			attempts = append(attempts, Attempt{Strategy: strategy.Name, Error: err.Error()})
			continue
		}

		if reason := e.checkText(text); reason != "" {
			log.Printf("[Extractor] Strategy %q rejected for %s: %s", strategy.Name, doc.FileName, reason)
			attempts = append(attempts, Attempt{Strategy: strategy.Name, Error: reason})
			continue
		}

		cleaned := Clean(text)
		result := &ExtractionResult{
			RawText:          text,
			CleanedText:      cleaned,
			StrategyUsed:     strategy.Name,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
			TextLength:       len([]rune(cleaned)),
			Attempts:         attempts,
		}
		log.Printf("[Extractor] Extracted %d chars from %s using %q in %dms",
			result.TextLength, doc.FileName, strategy.Name, result.ProcessingTimeMs)
		return result, nil
	}

	log.Printf("[Extractor] All %d strategies exhausted for %s", len(strategies), doc.FileName)
	return nil, utils.NewExtractionExhausted(len(strategies))
}

// runStrategy calls a strategy, turning a library panic into an error
func runStrategy(s Strategy, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.Extract(data)
}

// IsValidText reports whether extracted text meets the quality bar
func IsValidText(text string, minLength int) bool {
	return checkText(text, minLength) == ""
}

func (e *Extractor) checkText(text string) string {
	return checkText(text, e.minTextLength)
}

// checkText returns why text fails the quality bar, or "" if it passes
func checkText(text string, minLength int) string {
	trimmed := []rune(strings.TrimSpace(text))
	if len(trimmed) == 0 {
		return "no text"
	}
	if len(trimmed) < minLength {
		return fmt.Sprintf("text too short (%d chars, minimum %d)", len(trimmed), minLength)
	}

	letters := 0
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	ratio := float64(letters) / float64(len(trimmed))
	if ratio <= minLetterRatio {
		return fmt.Sprintf("letter ratio %.2f too low", ratio)
	}
	return ""
}

func extractPlainText(data []byte) (string, error) {
	return strings.ToValidUTF8(string(data), ""), nil
}
