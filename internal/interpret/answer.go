package interpret

import (
	"regexp"
	"strings"
)

var (
	// "... results: [(52,), (53,)]" — a bracketed list after a trailing colon
	trailingColonList = regexp.MustCompile(`:\s*\[.*\]\s*$`)
	// "... are (52,), (53,)" or "... are 52, 53" — a bare or bracketed tuple
	// run starting at a digit. Requires a comma/closing bracket after the
	// leading number so a sentence ending in a plain value is left alone.
	trailingTupleRun = regexp.MustCompile(`(^|\s)[\[(]{0,2}\d[\d\s.'"]*[,)\]][\d\s,.'")(\[\]]*$`)
	// trailing row echo appended by some agent runs
	returnedRows = regexp.MustCompile(`(?is)\s*returned rows\s*:.*$`)
)

// pipeTableColumns scans the answer line-by-line for a Markdown-style table
// header: the first line with at least two pipes. On a hit it returns the
// trimmed non-empty segments as columns and the answer truncated to the text
// before that line; the table body renders from rows instead.
func pipeTableColumns(answer string) ([]string, string, bool) {
	lines := strings.Split(answer, "\n")
	for i, line := range lines {
		if strings.Count(line, "|") < 2 {
			continue
		}
		var cols []string
		for _, seg := range strings.Split(line, "|") {
			if s := strings.TrimSpace(seg); s != "" {
				cols = append(cols, s)
			}
		}
		if len(cols) == 0 {
			return nil, answer, false
		}
		return cols, strings.TrimRight(strings.Join(lines[:i], "\n"), " \t\n"), true
	}
	return nil, answer, false
}

// stripTrailingTuples removes a printed list-of-tuples fragment from the end
// of the answer text. It never yields columns.
func stripTrailingTuples(answer string) string {
	if loc := trailingColonList.FindStringIndex(answer); loc != nil {
		return strings.TrimSpace(answer[:loc[0]+1])
	}
	if loc := trailingTupleRun.FindStringIndex(answer); loc != nil {
		return strings.TrimSpace(answer[:loc[0]])
	}
	return answer
}

func stripReturnedRows(answer string) string {
	if loc := returnedRows.FindStringIndex(answer); loc != nil {
		return strings.TrimSpace(answer[:loc[0]])
	}
	return answer
}
