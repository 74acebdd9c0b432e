// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

package query

import (
	"strings"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
// Clauses are written with ? placeholders; Select.Build rebinds them for
// the target dialect.
//
// Example usage:
//
//	wb := query.NewWhereBuilder(query.DuckDB)
//	wb.AddContainsIgnoreCase("organisation_name", "acme")
//	wb.AddNotNull("route")
//	whereClause, args := wb.Build()
//	// organisation_name ILIKE ? AND route IS NOT NULL   ["%acme%"]
type WhereBuilder struct {
	dialect Dialect
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder for dialect.
func NewWhereBuilder(dialect Dialect) *WhereBuilder {
	return &WhereBuilder{
		dialect: dialect,
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw WHERE clause with its arguments.
//
// Parameters:
//   - clause: SQL condition fragment using ? placeholders (e.g., "route = ?")
//   - args: Arguments to bind to placeholders in the clause
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddContainsIgnoreCase matches rows whose column contains value anywhere,
// ignoring case. value is wrapped in % wildcards; % and _ inside value keep
// their LIKE meaning.
func (wb *WhereBuilder) AddContainsIgnoreCase(column, value string) *WhereBuilder {
	return wb.AddClause(wb.dialect.containsIgnoreCase(column), "%"+value+"%")
}

// AddNotNull excludes rows where column is NULL.
func (wb *WhereBuilder) AddNotNull(column string) *WhereBuilder {
	return wb.AddClause(column + " IS NOT NULL")
}

// Build constructs the final WHERE clause and returns it with arguments.
// Clauses are joined with "AND". Returns ("1=1", []) if no clauses were added.
// Placeholders are still ?; use Select.Build or Rebind for Oracle.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix returns the WHERE clause with "WHERE " prefix.
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	whereClause, args := wb.Build()
	return "WHERE " + whereClause, args
}

// Count returns the number of clauses added to the builder.
func (wb *WhereBuilder) Count() int {
	return len(wb.clauses)
}

// IsEmpty returns true if no clauses have been added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}

// Select describes a single-table SELECT.
type Select struct {
	Columns []string
	Table   string
	Where   *WhereBuilder // nil selects every row
	Limit   int           // <= 0 means no limit
}

// Build renders the statement for dialect with its bind arguments.
func (s Select) Build(dialect Dialect) (string, []interface{}) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(s.Columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(s.Table)

	args := []interface{}{}
	if s.Where != nil && !s.Where.IsEmpty() {
		var where string
		where, args = s.Where.BuildWithPrefix()
		b.WriteString(" ")
		b.WriteString(where)
	}

	if limit := dialect.limitClause(s.Limit); limit != "" {
		b.WriteString(" ")
		b.WriteString(limit)
	}

	return Rebind(dialect, b.String()), args
}
