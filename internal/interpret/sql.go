package interpret

import (
	"regexp"
	"strings"
)

var (
	selectClause = regexp.MustCompile(`(?is)\bselect\b(.+?)\bfrom\b`)
	asAlias      = regexp.MustCompile("(?i)\\s+as\\s+(\"[^\"]+\"|'[^']+'|`[^`]+`|\\[[^\\]]+\\]|[A-Za-z_][A-Za-z0-9_]*)\\s*$")
)

// columnsFromSQL derives display names from the first statement's
// SELECT ... FROM clause. The split is comma-naive: expressions with embedded
// commas, e.g. SUBSTR(a, 1, 2), split wrong. Known limitation; the cell
// renderer tolerates the resulting header/arity mismatch.
func columnsFromSQL(sql string) []string {
	m := selectClause.FindStringSubmatch(sql)
	if m == nil {
		return nil
	}
	list := strings.TrimSpace(m[1])
	if strings.HasPrefix(strings.ToLower(list), "distinct ") {
		list = strings.TrimSpace(list[len("distinct"):])
	}

	var cols []string
	for _, expr := range strings.Split(list, ",") {
		name := displayName(strings.TrimSpace(expr))
		if name == "" || name == "*" {
			// a bare * carries no meaningful column names
			continue
		}
		cols = append(cols, name)
	}
	return cols
}

// displayName resolves one select expression to a header, in order: an
// explicit AS alias, a trailing bare-word alias, the segment after the last
// dot, or the raw expression with surrounding quote characters stripped.
func displayName(expr string) string {
	if expr == "" {
		return ""
	}
	if m := asAlias.FindStringSubmatch(expr); m != nil {
		return trimQuotes(m[1])
	}
	if fields := strings.Fields(expr); len(fields) > 1 {
		if last := fields[len(fields)-1]; !strings.ContainsAny(last, "()") {
			return trimQuotes(last)
		}
	}
	if i := strings.LastIndex(expr, "."); i >= 0 {
		return strings.Trim(expr[i+1:], " \t`'\"()[]")
	}
	return trimQuotes(expr)
}

func trimQuotes(s string) string {
	return strings.Trim(s, " \t`'\"[]")
}
