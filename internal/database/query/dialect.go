// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects the SQL flavour a query is rendered for.
type Dialect int

const (
	// DuckDB uses ? placeholders, ILIKE and LIMIT.
	DuckDB Dialect = iota
	// Oracle uses :n placeholders, UPPER(..) LIKE UPPER(..) and FETCH FIRST.
	Oracle
)

func (d Dialect) String() string {
	switch d {
	case DuckDB:
		return "duckdb"
	case Oracle:
		return "oracle"
	default:
		return "dialect(" + strconv.Itoa(int(d)) + ")"
	}
}

// containsIgnoreCase returns a predicate matching column against one bound
// LIKE pattern, ignoring case.
func (d Dialect) containsIgnoreCase(column string) string {
	if d == Oracle {
		return fmt.Sprintf("UPPER(%s) LIKE UPPER(?)", column)
	}
	return column + " ILIKE ?"
}

// limitClause returns the row limiting suffix, or "" when n <= 0.
func (d Dialect) limitClause(n int) string {
	if n <= 0 {
		return ""
	}
	if d == Oracle {
		return fmt.Sprintf("FETCH FIRST %d ROWS ONLY", n)
	}
	return fmt.Sprintf("LIMIT %d", n)
}

// Rebind rewrites ? placeholders into the dialect's bind syntax. Question
// marks inside single-quoted literals are left alone.
func Rebind(d Dialect, sql string) string {
	if d != Oracle {
		return sql
	}

	var b strings.Builder
	b.Grow(len(sql) + 8)

	n := 0
	inLiteral := false
	for i := 0; i < len(sql); i++ {
		c := sql[i]
		switch {
		case c == '\'':
			inLiteral = !inLiteral
			b.WriteByte(c)
		case c == '?' && !inLiteral:
			n++
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
