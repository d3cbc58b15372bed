package interpret

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	createTable    = regexp.MustCompile(`(?i)\bcreate\s+table\b`)
	constraintLine = regexp.MustCompile(`(?i)^(primary\s+key|foreign\s+key|unique\b|check\b|constraint\b|references\b)`)
	quotedIdent    = regexp.MustCompile("^[\"'`\\[]([^\"'`\\]]+)")
)

// columnsFromSchema scans the agent trace for a schema-inspection step and
// parses column names out of its CREATE TABLE dump. A step matches either by
// tool name (contains "sql_db_schema") or by the observation text itself.
// The trace shape varies between agent runs, so lookups are tolerant: steps
// may be (action, observation) pairs or objects with named fields.
func columnsFromSchema(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	steps := gjson.GetBytes(raw, "intermediate_steps")
	var cols []string
	steps.ForEach(func(_, step gjson.Result) bool {
		tool := step.Get("0.tool").String()
		if tool == "" {
			tool = step.Get("action.tool").String()
		}
		obs := step.Get("1").String()
		if obs == "" {
			obs = step.Get("observation").String()
		}
		if !strings.Contains(strings.ToLower(tool), "sql_db_schema") && !createTable.MatchString(obs) {
			return true
		}
		cols = createTableColumns(obs)
		return cols == nil // keep scanning until a dump parses
	})
	return cols
}

// createTableColumns takes the body between the first balanced parentheses,
// drops constraint lines, and reads one column name per remaining line: a
// quoted leading identifier, or the first whitespace-delimited token.
func createTableColumns(dump string) []string {
	open := strings.Index(dump, "(")
	if open < 0 {
		return nil
	}
	end, depth := -1, 0
	for i := open; i < len(dump) && end < 0; i++ {
		switch dump[i] {
		case '(':
			depth++
		case ')':
			if depth--; depth == 0 {
				end = i
			}
		}
	}
	if end < 0 {
		return nil
	}

	var cols []string
	for _, line := range strings.Split(dump[open+1:end], "\n") {
		line = strings.TrimSuffix(strings.TrimSpace(line), ",")
		line = strings.TrimSpace(line)
		if line == "" || constraintLine.MatchString(line) {
			continue
		}
		if m := quotedIdent.FindStringSubmatch(line); m != nil {
			cols = append(cols, m[1])
			continue
		}
		cols = append(cols, strings.Fields(line)[0])
	}
	return cols
}
