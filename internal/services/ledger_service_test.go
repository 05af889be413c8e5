package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"financeiro/internal/core"
	"financeiro/internal/storage"
)

func newTestRepo(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "financeiro.db"))
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestAddEntryNormalizesTipo(t *testing.T) {
	svc := NewLedgerService(newTestRepo(t))
	ctx := context.Background()

	id, err := svc.AddEntry(ctx, "ENTRADA", "  Venda do dia  ", "150.00", "2024-01-10", "vendas")
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if id == 0 {
		t.Fatal("expected assigned id")
	}

	list, err := svc.ListEntries(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(list))
	}
	e := list[0]
	if e.Tipo != core.Entrada {
		t.Fatalf("tipo not normalized: %q", e.Tipo)
	}
	if e.Descricao != "Venda do dia" {
		t.Fatalf("descricao not trimmed: %q", e.Descricao)
	}
	if e.ValorCentavos != 15000 || e.Valor != 150.0 {
		t.Fatalf("amount mismatch: %d centavos, %v display", e.ValorCentavos, e.Valor)
	}
}

func TestAddEntryRejectsBadInput(t *testing.T) {
	svc := NewLedgerService(newTestRepo(t))
	ctx := context.Background()

	cases := []struct {
		name                               string
		tipo, descricao, valor, data, categoria string
		wantErr                            error
	}{
		{"invalid tipo", "invalid", "x", "10", "2024-01-01", "c", core.ErrInvalidTipo},
		{"negative amount", "saida", "x", "-1", "2024-01-01", "c", core.ErrNegativeAmount},
		{"unparseable amount", "saida", "x", "abc", "2024-01-01", "c", core.ErrInvalidAmount},
		{"empty descricao", "entrada", "   ", "10", "2024-01-01", "c", core.ErrEmptyDescricao},
		{"bad date", "entrada", "x", "10", "10/01/2024", "c", core.ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.AddEntry(ctx, tc.tipo, tc.descricao, tc.valor, tc.data, tc.categoria); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	// None of the rejected entries may have been persisted
	list, err := svc.ListEntries(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("rejected entries were persisted: %d rows", len(list))
	}
}

func TestBalance(t *testing.T) {
	svc := NewLedgerService(newTestRepo(t))
	ctx := context.Background()

	saldo, err := svc.Balance(ctx)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if saldo != 0 {
		t.Fatalf("empty ledger balance should be 0, got %v", saldo)
	}

	if _, err := svc.AddEntry(ctx, "entrada", "venda", "100.00", "2024-01-01", "vendas"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddEntry(ctx, "saida", "compra", "30.00", "2024-01-02", "compras"); err != nil {
		t.Fatalf("add: %v", err)
	}

	saldo, err = svc.Balance(ctx)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if saldo != 70.0 {
		t.Fatalf("expected 70.00, got %v", saldo)
	}
}

func TestListEntriesInRange(t *testing.T) {
	svc := NewLedgerService(newTestRepo(t))
	ctx := context.Background()

	for _, data := range []string{"2023-12-31", "2024-01-01", "2024-01-31", "2024-02-01"} {
		if _, err := svc.AddEntry(ctx, "entrada", "venda "+data, "10", data, "vendas"); err != nil {
			t.Fatalf("add %s: %v", data, err)
		}
	}

	list, err := svc.ListEntriesInRange(ctx, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].Data != "2024-01-01" || list[1].Data != "2024-01-31" {
		t.Fatalf("bounds should be inclusive and ascending: %s, %s", list[0].Data, list[1].Data)
	}

	if _, err := svc.ListEntriesInRange(ctx, "", "2024-01-31"); !errors.Is(err, core.ErrEmptyPeriod) {
		t.Fatalf("expected ErrEmptyPeriod, got %v", err)
	}
}

func TestImportNFEXMLNotImplemented(t *testing.T) {
	svc := NewLedgerService(newTestRepo(t))

	res := svc.ImportNFEXML(context.Background(), "nota.xml")
	if res.Status != core.StatusNaoImplementado {
		t.Fatalf("expected %q, got %q", core.StatusNaoImplementado, res.Status)
	}
	if res.Arquivo != "nota.xml" {
		t.Fatalf("arquivo not echoed: %q", res.Arquivo)
	}
	if res.Mensagem == "" {
		t.Fatal("expected explanatory message")
	}
}
