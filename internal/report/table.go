// Package report turns uploaded marketplace spreadsheets into normalized
// tables and classifies them as orders or items reports.
package report

import (
	"errors"
	"strings"
)

var (
	ErrUnknownReport      = errors.New("arquivo não reconhecido: use relatório de pedidos ou itens da 99Food")
	ErrMissingOrderColumn = errors.New("o arquivo precisa conter a coluna 'ID do pedido'")
	ErrInvalidTimestamp   = errors.New("data/hora do pedido inválida")
	ErrInvalidNumber      = errors.New("valor numérico inválido")
	ErrEmptyTable         = errors.New("o arquivo não contém linhas")
)

// Table is an in-memory tabular dataset with normalized column names.
// Column lookup is by the trimmed, lowercased header text.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NormalizeColumn applies the header normalization contract: trim
// whitespace, lowercase.
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewTable builds a Table from a raw header row and data rows, normalizing
// every column name. When two headers normalize to the same name the first
// occurrence wins.
func NewTable(header []string, rows [][]string) *Table {
	t := &Table{
		columns: make([]string, len(header)),
		index:   make(map[string]int, len(header)),
		rows:    rows,
	}
	for i, raw := range header {
		name := NormalizeColumn(raw)
		t.columns[i] = name
		if _, ok := t.index[name]; !ok {
			t.index[name] = i
		}
	}
	return t
}

// Columns returns the normalized column names in file order.
func (t *Table) Columns() []string { return t.columns }

// Rows returns the data rows.
func (t *Table) Rows() [][]string { return t.rows }

// HasColumns reports whether every given normalized column name is present.
func (t *Table) HasColumns(names ...string) bool {
	for _, name := range names {
		if _, ok := t.index[name]; !ok {
			return false
		}
	}
	return true
}

// Cell returns the value of the named column in the given row, or "" when
// the column is absent or the row is shorter than the header. Spreadsheet
// rows routinely omit trailing empty cells.
func (t *Table) Cell(row []string, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
