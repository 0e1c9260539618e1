package firebirddialect

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	selectPattern = regexp.MustCompile(`(?i)^\s*SELECT\b`)
	limitPattern  = regexp.MustCompile(`(?i)\s+LIMIT\s+\d+`)
	offsetPattern = regexp.MustCompile(`(?i)\s+OFFSET\s+\d+`)
)

// RewriteLimitOffset converts a portable SELECT with LIMIT/OFFSET clauses
// into the FIRST/SKIP form. Trailing LIMIT and OFFSET clauses are stripped
// and replaced with directives placed right after the SELECT keyword, limit
// first. nil pointers leave that clause out; when both are nil, or the
// statement is not a SELECT, the input passes through untouched.
func RewriteLimitOffset(sql string, limit *int, offset *int) string {
	if limit == nil && offset == nil {
		return sql
	}
	loc := selectPattern.FindStringIndex(sql)
	if loc == nil {
		return sql
	}
	sql = stripFirst(sql, limitPattern)
	sql = stripFirst(sql, offsetPattern)

	directive := ""
	if limit != nil {
		directive += " FIRST " + strconv.Itoa(*limit)
	}
	if offset != nil {
		directive += " SKIP " + strconv.Itoa(*offset)
	}
	return sql[:loc[1]] + directive + sql[loc[1]:]
}

// ApplyLimitOffset appends pagination to a SELECT that carries no
// LIMIT/OFFSET text of its own. Negative values mean "not set". An offset
// converts to the 1-indexed inclusive ROWS n TO m form; an offset alone
// becomes a SKIP directive since ROWS has no offset-only spelling.
func ApplyLimitOffset(sql string, limit int, offset int) string {
	switch {
	case limit >= 0 && offset >= 0:
		return fmt.Sprintf("%s ROWS %d TO %d", sql, offset+1, offset+limit)
	case limit >= 0:
		return fmt.Sprintf("%s ROWS %d", sql, limit)
	case offset >= 0:
		loc := selectPattern.FindStringIndex(sql)
		if loc == nil {
			return sql
		}
		return sql[:loc[1]] + " SKIP " + strconv.Itoa(offset) + sql[loc[1]:]
	}
	return sql
}

func stripFirst(sql string, pattern *regexp.Regexp) string {
	if loc := pattern.FindStringIndex(sql); loc != nil {
		return sql[:loc[0]] + sql[loc[1]:]
	}
	return sql
}
