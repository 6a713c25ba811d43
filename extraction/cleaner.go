package extraction

import (
	"regexp"
	"strings"
)

var unicodeReplacer = strings.NewReplacer(
	"\u00a0", " ", // no-break space
	"\u2002", " ",
	"\u2003", " ",
	"\u2009", " ",
	"\u202f", " ",
	"\u2010", "-",
	"\u2011", "-",
	"\u2012", "-",
	"\u2013", "-",
	"\u2014", "-",
	"\u2015", "-",
	"\u2212", "-",
	"\u2018", "'",
	"\u2019", "'",
	"\u201a", "'",
	"\u201c", `"`,
	"\u201d", `"`,
	"\u201e", `"`,
	"\u2026", "...",
	"\ufb00", "ff",
	"\ufb01", "fi",
	"\ufb02", "fl",
	"\ufb03", "ffi",
	"\ufb04", "ffl",
)

var lineEndingReplacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\f", "\n",
	"\v", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
	"\t", " ",
)

var zeroWidthReplacer = strings.NewReplacer(
	"\u200b", "",
	"\u200c", "",
	"\u200d", "",
	"\u2060", "",
	"\ufeff", "",
	"\u00ad", "", // soft hyphen
)

var (
	multiSpaceRe   = regexp.MustCompile(` {2,}`)
	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
	tipRe          = regexp.MustCompile(`(?i)\(\s*tip\s*:[^)]*\)`)

	artifactLineRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^page \d+( of \d+)?$`),
		regexp.MustCompile(`^\d+$`),
		regexp.MustCompile(`^-+$`),
	}
)

// Clean normalizes extracted text. It is deterministic and idempotent:
// Clean(Clean(x)) == Clean(x).
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.ToValidUTF8(raw, "")
	text = unicodeReplacer.Replace(text)
	text = lineEndingReplacer.Replace(text)
	text = zeroWidthReplacer.Replace(text)
	text = strings.TrimSpace(collapseWhitespace(text))

	// dropping an artifact can join the halves of a tip, and dropping a tip
	// can leave a bare page marker, so repeat until nothing changes
	for {
		next := strings.TrimSpace(collapseWhitespace(removeArtifacts(text)))
		if next == text {
			return text
		}
		text = next
	}
}

// collapseWhitespace squeezes spaces, trims every line and limits blank runs to one
func collapseWhitespace(text string) string {
	text = multiSpaceRe.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	return multiNewlineRe.ReplaceAllString(text, "\n\n")
}

// removeArtifacts drops page number, digit-only and dash-only lines, then tip annotations
func removeArtifacts(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if isArtifactLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	text = strings.Join(kept, "\n")

	// removing one tip can expose another around it
	for tipRe.MatchString(text) {
		text = tipRe.ReplaceAllString(text, "")
	}
	return text
}

func isArtifactLine(line string) bool {
	for _, re := range artifactLineRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
