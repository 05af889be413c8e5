package services

import (
	"context"
	"errors"
	"testing"

	"financeiro/internal/filestore"
	"financeiro/internal/report"
	"financeiro/internal/storage"
)

const (
	pedidosCSV = "ID do Pedido,Status,Data e Hora do Pedido,Tempo Preparo,Tempo Entrega\n" +
		"P1,Concluído,2024-03-10 12:30:00,15,20\n" +
		"P2,Concluído,2024-03-11 19:45:00,10,\n" +
		",ignorado,2024-03-11 20:00:00,,\n"

	itensCSV = "ID do Pedido,Nome do Item,Quantidade Vendida,Receita do Item,Preço Médio\n" +
		"P1,X-Burger,2,50,25\n" +
		"P1,Refrigerante,1,8,8\n" +
		"P2,X-Burger,1,25,25\n"
)

func newIngestService(t *testing.T) (*IngestService, *storage.SQLiteRepository) {
	t.Helper()
	repo := newTestRepo(t)
	return NewIngestService(repo, filestore.New(t.TempDir()), nil), repo
}

func TestIngestBatchRejectsEmpty(t *testing.T) {
	svc, _ := newIngestService(t)
	if _, err := svc.IngestBatch(context.Background(), nil); !errors.Is(err, ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles, got %v", err)
	}
}

func TestIngestBatchEndToEnd(t *testing.T) {
	svc, repo := newIngestService(t)
	ctx := context.Background()

	summary, err := svc.IngestBatch(ctx, []UploadedFile{
		{Name: "pedidos.csv", Data: []byte(pedidosCSV)},
		{Name: "itens.csv", Data: []byte(itensCSV)},
	})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	// The row with an empty order id is skipped and not counted
	if summary.Pedidos != 2 || summary.Itens != 3 {
		t.Fatalf("expected 2 pedidos and 3 itens, got %+v", summary)
	}
	if len(summary.Arquivos) != 2 {
		t.Fatalf("expected manifest for 2 files, got %d", len(summary.Arquivos))
	}
	if summary.Arquivos[0].Tipo != report.KindPedidos || summary.Arquivos[0].Linhas != 2 {
		t.Fatalf("unexpected manifest: %+v", summary.Arquivos[0])
	}
	if summary.Arquivos[1].Tipo != report.KindItens || summary.Arquivos[1].Linhas != 3 {
		t.Fatalf("unexpected manifest: %+v", summary.Arquivos[1])
	}

	// Missing tempo entrega defaulted to zero
	p2, err := repo.GetPedido(ctx, "P2")
	if err != nil {
		t.Fatalf("get pedido: %v", err)
	}
	if p2.TempoEntregaMin != 0 || p2.TempoPreparoMin != 10 {
		t.Fatalf("numeric defaults wrong: %+v", p2)
	}

	// Dashboard over the ingested data
	dash, err := NewAnalyticsService(repo).Dashboard(ctx, storage.DashboardFilter{})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.KPIs.FaturamentoTotal != 83 {
		t.Fatalf("expected total revenue 83, got %v", dash.KPIs.FaturamentoTotal)
	}
	if dash.KPIs.TotalPedidos != 2 {
		t.Fatalf("expected 2 distinct orders, got %d", dash.KPIs.TotalPedidos)
	}
	if len(dash.Produtos.RankingFaturamento) != 2 {
		t.Fatalf("expected 2 ranked items, got %d", len(dash.Produtos.RankingFaturamento))
	}
	if dash.Produtos.RankingFaturamento[0].NomeItem != "X-Burger" {
		t.Fatalf("unexpected top item: %+v", dash.Produtos.RankingFaturamento[0])
	}
	if len(dash.ProvedoresFuturos) == 0 {
		t.Fatal("expected future providers in payload")
	}
}

func TestIngestSamePedidosTwiceUpserts(t *testing.T) {
	svc, repo := newIngestService(t)
	ctx := context.Background()

	first := "ID do Pedido,Status,Data e Hora do Pedido\nP1,Em preparo,2024-03-10 12:30:00\n"
	second := "ID do Pedido,Status,Data e Hora do Pedido\nP1,Concluído,2024-03-10 12:30:00\n"

	if _, err := svc.IngestBatch(ctx, []UploadedFile{{Name: "a.csv", Data: []byte(first)}}); err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	if _, err := svc.IngestBatch(ctx, []UploadedFile{{Name: "b.csv", Data: []byte(second)}}); err != nil {
		t.Fatalf("second ingest: %v", err)
	}

	count, err := repo.CountPedidos(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("re-ingest must not duplicate orders, got %d rows", count)
	}

	p, err := repo.GetPedido(ctx, "P1")
	if err != nil {
		t.Fatalf("get pedido: %v", err)
	}
	if p.Status != "Concluído" || p.ArquivoOrigem != "b.csv" {
		t.Fatalf("latest import should win: %+v", p)
	}
}

func TestIngestItensTwiceDuplicates(t *testing.T) {
	svc, repo := newIngestService(t)
	ctx := context.Background()

	file := UploadedFile{Name: "itens.csv", Data: []byte(itensCSV)}
	for i := 0; i < 2; i++ {
		if _, err := svc.IngestBatch(ctx, []UploadedFile{file}); err != nil {
			t.Fatalf("ingest %d: %v", i+1, err)
		}
	}

	count, err := repo.CountItens(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	// Items have no dedup key: re-import doubles the rows
	if count != 6 {
		t.Fatalf("expected 6 item rows, got %d", count)
	}
}

func TestIngestBatchAbortsOnUnknownReport(t *testing.T) {
	svc, repo := newIngestService(t)
	ctx := context.Background()

	good := UploadedFile{Name: "pedidos.csv", Data: []byte(pedidosCSV)}
	bad := UploadedFile{Name: "estranho.csv", Data: []byte("id do pedido,foo\nP9,x\n")}
	after := UploadedFile{Name: "itens.csv", Data: []byte(itensCSV)}

	_, err := svc.IngestBatch(ctx, []UploadedFile{good, bad, after})
	if !errors.Is(err, report.ErrUnknownReport) {
		t.Fatalf("expected ErrUnknownReport, got %v", err)
	}

	// The file before the failure keeps its committed rows
	pedidos, err := repo.CountPedidos(ctx)
	if err != nil {
		t.Fatalf("count pedidos: %v", err)
	}
	if pedidos != 2 {
		t.Fatalf("committed rows from earlier files must survive, got %d", pedidos)
	}

	// The file after the failure was never processed
	itens, err := repo.CountItens(ctx)
	if err != nil {
		t.Fatalf("count itens: %v", err)
	}
	if itens != 0 {
		t.Fatalf("files after the failure must not be processed, got %d rows", itens)
	}
}

func TestIngestPedidosRequiresTimestamp(t *testing.T) {
	svc, repo := newIngestService(t)
	ctx := context.Background()

	missing := "ID do Pedido,Status,Data e Hora do Pedido\n" +
		"P1,Concluído,2024-03-10 12:30:00\n" +
		"P2,Concluído,\n"

	_, err := svc.IngestBatch(ctx, []UploadedFile{{Name: "pedidos.csv", Data: []byte(missing)}})
	if !errors.Is(err, report.ErrInvalidTimestamp) {
		t.Fatalf("expected ErrInvalidTimestamp, got %v", err)
	}

	// The whole file aborts: not even the valid first row is committed
	count, err := repo.CountPedidos(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("failing file must not commit rows, got %d", count)
	}
}

func TestIngestItensSkipsIncompleteRows(t *testing.T) {
	svc, _ := newIngestService(t)
	ctx := context.Background()

	raw := "ID do Pedido,Nome do Item,Quantidade Vendida\n" +
		"P1,X-Burger,2\n" +
		"P1,,3\n" +
		",Refrigerante,1\n"

	summary, err := svc.IngestBatch(ctx, []UploadedFile{{Name: "itens.csv", Data: []byte(raw)}})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if summary.Itens != 1 {
		t.Fatalf("rows without id or name must be skipped, got %d", summary.Itens)
	}
}
