package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// orderColumn must be present in every ingestible report, whatever its kind.
const orderColumn = "id do pedido"

// Load parses raw spreadsheet bytes into a Table. The format is picked by
// file extension: CSV goes through encoding/csv, everything else through
// the Excel reader. Every loaded table must contain the order-id column.
func Load(name string, raw []byte) (*Table, error) {
	var (
		t   *Table
		err error
	)
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		t, err = loadCSV(raw)
	} else {
		t, err = loadExcel(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("ler arquivo %s: %w", name, err)
	}
	if !t.HasColumns(orderColumn) {
		return nil, ErrMissingOrderColumn
	}
	return t, nil
}

func loadExcel(raw []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("abrir planilha: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyTable
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ler aba %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	return NewTable(rows[0], rows[1:]), nil
}

func loadCSV(raw []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1 // ragged rows are handled by Table.Cell
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ler csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	return NewTable(rows[0], rows[1:]), nil
}
