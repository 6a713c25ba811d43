package export

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/resumeinsight/backend/models"
)

// SheetName is the worksheet holding the history rows
const SheetName = "Analyses"

// ContentType is the media type of the workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Headers are the column titles of the history sheet, in order
var Headers = []string{
	"Uploaded",
	"File",
	"Target Role",
	"Status",
	"Overall",
	"ATS Score",
	"ATS Level",
	"Missing Keywords",
	"Quick Fixes",
	"Summary",
}

// maxCellText keeps long text cells readable in spreadsheet viewers
const maxCellText = 500

// HistoryWorkbook renders a user's analyses as an XLSX workbook.
// Score columns stay empty for records that were not fully processed.
func HistoryWorkbook(records []*models.AnalysisRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with a default sheet, reuse it
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	row := 2
	for _, r := range records {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(SheetName, cell, v)
		}

		write(1, r.UploadedAt.UTC().Format(time.RFC3339))
		write(2, r.FileName)
		write(3, r.TargetRole)
		write(4, string(r.ProcessingStatus))

		if r.IsFullyProcessed() {
			a := r.AIAnalysis
			write(5, a.OverallScore)
			write(6, a.ATSScore.Score)
			write(7, a.ATSScore.Level)
			write(8, truncate(strings.Join(a.ATSImprovement.MissingKeywords, ", "), maxCellText))
			write(9, truncate(strings.Join(a.ATSImprovement.QuickFixes, "\n"), maxCellText))
			write(10, truncate(a.OverallSummary, maxCellText))
		}

		row++
	}

	_ = f.SetColWidth(SheetName, "A", "A", 22) // uploaded
	_ = f.SetColWidth(SheetName, "B", "C", 28) // file, role
	_ = f.SetColWidth(SheetName, "D", "G", 14) // status, scores
	_ = f.SetColWidth(SheetName, "H", "I", 48)
	_ = f.SetColWidth(SheetName, "J", "J", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	log.Printf("[Export] Wrote %d analyses in %dms", len(records), time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
