// ABOUTME: Safe SQL query builder for the SQLite content cache
// ABOUTME: Validates table and column names and keeps every value parameterized

package sqlite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// QueryBuilder provides a safe way to build SQL queries with automatic parameterization
type QueryBuilder struct {
	query  string
	params []interface{}
}

// Table and column name validation - only alphanumeric, underscore allowed
var safeNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// NewQueryBuilder creates a new query builder instance
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		params: make([]interface{}, 0),
	}
}

// ValidateName validates table/column names to prevent SQL injection
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}

	if !safeNamePattern.MatchString(name) {
		return fmt.Errorf("invalid name: %s (only alphanumeric and underscore allowed)", name)
	}

	if len(name) > 64 {
		return fmt.Errorf("name too long: %s (max 64 characters)", name)
	}

	return nil
}

// Select builds a SELECT query
func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	for _, col := range columns {
		if err := ValidateName(col); err != nil {
			// Fall back to * rather than splice an unsafe name
			qb.query = "SELECT * "
			return qb
		}
	}

	if len(columns) == 0 {
		qb.query = "SELECT * "
	} else {
		qb.query = "SELECT " + strings.Join(columns, ", ") + " "
	}

	return qb
}

// From adds FROM clause
func (qb *QueryBuilder) From(table string) *QueryBuilder {
	if err := ValidateName(table); err != nil {
		return qb
	}

	qb.query += "FROM " + table + " "
	return qb
}

// Where adds WHERE clause with parameterized conditions
func (qb *QueryBuilder) Where(column string, operator string, value interface{}) *QueryBuilder {
	if err := ValidateName(column); err != nil {
		return qb
	}

	allowedOperators := map[string]bool{
		"=":  true,
		"!=": true,
		">":  true,
		"<":  true,
		">=": true,
		"<=": true,
	}

	if !allowedOperators[operator] {
		operator = "=" // Default to equals for safety
	}

	qb.appendCondition(column + " " + operator + " ?")
	qb.params = append(qb.params, value)

	return qb
}

// WhereNull adds a column IS NULL condition
func (qb *QueryBuilder) WhereNull(column string) *QueryBuilder {
	if err := ValidateName(column); err != nil {
		return qb
	}

	qb.appendCondition(column + " IS NULL")
	return qb
}

func (qb *QueryBuilder) appendCondition(condition string) {
	if strings.Contains(qb.query, "WHERE") {
		qb.query += "AND "
	} else {
		qb.query += "WHERE "
	}
	qb.query += condition + " "
}

// OrderBy adds an ascending ORDER BY clause
func (qb *QueryBuilder) OrderBy(column string) *QueryBuilder {
	if err := ValidateName(column); err != nil {
		return qb
	}

	qb.query += "ORDER BY " + column + " "
	return qb
}

// Insert builds an INSERT query
func (qb *QueryBuilder) Insert(table string) *QueryBuilder {
	if err := ValidateName(table); err != nil {
		return qb
	}

	qb.query = "INSERT INTO " + table + " "
	return qb
}

// Values adds VALUES clause
func (qb *QueryBuilder) Values(columns []string, values []interface{}) *QueryBuilder {
	if len(columns) != len(values) {
		return qb // Invalid input
	}

	validColumns := make([]string, 0, len(columns))
	validValues := make([]interface{}, 0, len(values))

	for i, col := range columns {
		if err := ValidateName(col); err == nil {
			validColumns = append(validColumns, col)
			validValues = append(validValues, values[i])
		}
	}

	if len(validColumns) == 0 {
		return qb
	}

	placeholders := make([]string, len(validColumns))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	qb.query += "(" + strings.Join(validColumns, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	qb.params = append(qb.params, validValues...)

	return qb
}

// Build returns the built query and parameters
func (qb *QueryBuilder) Build() (string, []interface{}) {
	return strings.TrimSpace(qb.query), qb.params
}

// ValidateURL checks a cache key before it reaches the database
func ValidateURL(url string) error {
	if url == "" {
		return errors.New("url cannot be empty")
	}

	if strings.Contains(url, "\x00") {
		return errors.New("url cannot contain null bytes")
	}

	return nil
}

// contentColumns are read in this order by every SELECT on the content table
var contentColumns = []string{"url", "title", "source", "tags", "parsed_content", "archived_at"}

// ContentQueries provides pre-built queries for one content table
type ContentQueries struct {
	table string
}

// NewContentQueries creates queries for table. The name must pass ValidateName.
func NewContentQueries(table string) (*ContentQueries, error) {
	if err := ValidateName(table); err != nil {
		return nil, fmt.Errorf("invalid cache table: %w", err)
	}
	return &ContentQueries{table: table}, nil
}

// CreateTable returns the schema statement for the content table
func (cq *ContentQueries) CreateTable() string {
	return `CREATE TABLE IF NOT EXISTS ` + cq.table + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT UNIQUE,
		title TEXT,
		parsed_content TEXT,
		source TEXT CHECK(source IN ('ReadLater', 'Vault')),
		tags JSON,
		archived_at DATETIME
	)`
}

// QueryByURL builds the single-entry lookup
func (cq *ContentQueries) QueryByURL(url string) (string, []interface{}) {
	return NewQueryBuilder().
		Select(contentColumns...).
		From(cq.table).
		Where("url", "=", url).
		Build()
}

// QueryAll builds the full listing in insertion order
func (cq *ContentQueries) QueryAll() (string, []interface{}) {
	return NewQueryBuilder().
		Select(contentColumns...).
		From(cq.table).
		OrderBy("id").
		Build()
}

// QueryUnarchived builds the listing of entries without an archive mark
func (cq *ContentQueries) QueryUnarchived() (string, []interface{}) {
	return NewQueryBuilder().
		Select(contentColumns...).
		From(cq.table).
		WhereNull("archived_at").
		OrderBy("id").
		Build()
}

// Insert builds the insert of one entry
func (cq *ContentQueries) Insert(url, title, content string, source interface{}, tags string) (string, []interface{}) {
	return NewQueryBuilder().
		Insert(cq.table).
		Values(
			[]string{"url", "title", "parsed_content", "source", "tags"},
			[]interface{}{url, title, content, source, tags},
		).
		Build()
}

// Count builds a row count query, optionally limited to archived entries
func (cq *ContentQueries) Count(archivedOnly bool) string {
	query := "SELECT COUNT(*) FROM " + cq.table
	if archivedOnly {
		query += " WHERE archived_at IS NOT NULL"
	}
	return query
}
