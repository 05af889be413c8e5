package report

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		columns []string
		kind    Kind
		err     error
	}{
		{
			name:    "pedidos report",
			columns: []string{"ID do Pedido", "Status", "Data e Hora do Pedido"},
			kind:    KindPedidos,
		},
		{
			name:    "itens report",
			columns: []string{"id do pedido", "nome do item", "quantidade vendida"},
			kind:    KindItens,
		},
		{
			name:    "superset of both is classified as pedidos",
			columns: []string{"id do pedido", "status", "nome do item", "quantidade vendida"},
			kind:    KindPedidos,
		},
		{
			name:    "unrecognized columns",
			columns: []string{"foo", "bar"},
			err:     ErrUnknownReport,
		},
		{
			name:    "order id alone is not enough",
			columns: []string{"id do pedido"},
			err:     ErrUnknownReport,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := Classify(NewTable(tc.columns, nil))
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind != tc.kind {
				t.Fatalf("expected %q, got %q", tc.kind, kind)
			}
		})
	}
}

func TestTableNormalizationAndCells(t *testing.T) {
	table := NewTable(
		[]string{"  ID do Pedido ", "STATUS", "Tempo Preparo"},
		[][]string{
			{"A1", "Concluído", "12.5"},
			{"A2"}, // short row
		},
	)

	if !table.HasColumns("id do pedido", "status", "tempo preparo") {
		t.Fatalf("normalized columns missing: %v", table.Columns())
	}

	rows := table.Rows()
	if got := table.Cell(rows[0], "status"); got != "Concluído" {
		t.Fatalf("expected status cell, got %q", got)
	}
	if got := table.Cell(rows[1], "status"); got != "" {
		t.Fatalf("short row should yield empty cell, got %q", got)
	}
	if got := table.Cell(rows[0], "inexistente"); got != "" {
		t.Fatalf("unknown column should yield empty cell, got %q", got)
	}
}
