package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"financeiro/internal/amqp"
	"financeiro/internal/core"
	"financeiro/internal/filestore"
	"financeiro/internal/report"
	"financeiro/internal/storage"
)

// ErrNoFiles rejects an import request before any I/O happens.
var ErrNoFiles = errors.New("nenhum arquivo foi enviado")

type (
	// UploadedFile is one raw report file as received from the upload.
	UploadedFile struct {
		Name string
		Data []byte
	}

	// FileManifest records what one file contributed to a batch.
	FileManifest struct {
		Nome   string      `json:"nome"`
		Tipo   report.Kind `json:"tipo"`
		Linhas int         `json:"linhas"`
	}

	// BatchSummary is the result of one IngestBatch call.
	BatchSummary struct {
		Pedidos  int            `json:"pedidos"`
		Itens    int            `json:"itens"`
		Arquivos []FileManifest `json:"arquivos"`
	}
)

// IngestService runs the report pipeline: persist raw bytes, parse,
// classify, dispatch to the orders upsert or the items insert.
type IngestService struct {
	repo     *storage.SQLiteRepository
	files    *filestore.Store
	events   *amqp.Client // optional; nil skips event publishing
	provider core.Provider
}

func NewIngestService(repo *storage.SQLiteRepository, files *filestore.Store, events *amqp.Client) *IngestService {
	return &IngestService{
		repo:     repo,
		files:    files,
		events:   events,
		provider: core.Provedor99Food,
	}
}

// IngestBatch processes files sequentially. The first failure aborts the
// batch: earlier files keep their committed rows, the failing file and
// everything after it are not processed.
func (s *IngestService) IngestBatch(ctx context.Context, files []UploadedFile) (*BatchSummary, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	summary := &BatchSummary{}

	for _, file := range files {
		if _, err := s.files.Save(s.provider.Slug, file.Name, file.Data); err != nil {
			return nil, fmt.Errorf("salvar arquivo %s: %w", file.Name, err)
		}

		table, err := report.Load(file.Name, file.Data)
		if err != nil {
			return nil, err
		}

		kind, err := report.Classify(table)
		if err != nil {
			return nil, err
		}

		var rows int
		switch kind {
		case report.KindPedidos:
			rows, err = s.ingestPedidos(ctx, table, file.Name)
			summary.Pedidos += rows
		case report.KindItens:
			rows, err = s.ingestItens(ctx, table, file.Name)
			summary.Itens += rows
		}
		if err != nil {
			return nil, fmt.Errorf("importar %s: %w", file.Name, err)
		}

		summary.Arquivos = append(summary.Arquivos, FileManifest{Nome: file.Name, Tipo: kind, Linhas: rows})

		slog.InfoContext(ctx, "Report file ingested",
			"arquivo", file.Name,
			"tipo", kind,
			"linhas", rows)
	}

	s.publishImported(ctx, summary)

	return summary, nil
}

// ingestPedidos validates every row before anything is written, so a parse
// error aborts the file with no partial commit. Rows with an empty order id
// are skipped and not counted; a missing timestamp is an error, while the
// duration columns default to zero when absent.
func (s *IngestService) ingestPedidos(ctx context.Context, t *report.Table, origem string) (int, error) {
	var pedidos []storage.PedidoParams
	for _, row := range t.Rows() {
		pedidoID := strings.TrimSpace(t.Cell(row, "id do pedido"))
		if pedidoID == "" {
			continue
		}

		dataHora, err := report.ParseTimestamp(t.Cell(row, "data e hora do pedido"))
		if err != nil {
			return 0, fmt.Errorf("pedido %s: %w", pedidoID, err)
		}
		preparo, err := report.ParseNumber(t.Cell(row, "tempo preparo"))
		if err != nil {
			return 0, fmt.Errorf("pedido %s: %w", pedidoID, err)
		}
		entrega, err := report.ParseNumber(t.Cell(row, "tempo entrega"))
		if err != nil {
			return 0, fmt.Errorf("pedido %s: %w", pedidoID, err)
		}

		pedidos = append(pedidos, storage.PedidoParams{
			PedidoID:        pedidoID,
			DataHoraPedido:  dataHora,
			Status:          strings.TrimSpace(t.Cell(row, "status")),
			TempoPreparoMin: preparo,
			TempoEntregaMin: entrega,
			ArquivoOrigem:   origem,
		})
	}
	return s.repo.SavePedidos(ctx, pedidos)
}

// ingestItens skips rows missing the order id or the item name; the three
// numeric columns default to zero when absent. Inserts are append-only.
func (s *IngestService) ingestItens(ctx context.Context, t *report.Table, origem string) (int, error) {
	var itens []storage.ItemParams
	for _, row := range t.Rows() {
		pedidoID := strings.TrimSpace(t.Cell(row, "id do pedido"))
		nomeItem := strings.TrimSpace(t.Cell(row, "nome do item"))
		if pedidoID == "" || nomeItem == "" {
			continue
		}

		quantidade, err := report.ParseNumber(t.Cell(row, "quantidade vendida"))
		if err != nil {
			return 0, fmt.Errorf("item %s: %w", nomeItem, err)
		}
		receita, err := report.ParseNumber(t.Cell(row, "receita do item"))
		if err != nil {
			return 0, fmt.Errorf("item %s: %w", nomeItem, err)
		}
		precoMedio, err := report.ParseNumber(t.Cell(row, "preço médio"))
		if err != nil {
			return 0, fmt.Errorf("item %s: %w", nomeItem, err)
		}

		itens = append(itens, storage.ItemParams{
			PedidoID:          pedidoID,
			NomeItem:          nomeItem,
			QuantidadeVendida: quantidade,
			ReceitaItem:       receita,
			PrecoMedio:        precoMedio,
			ArquivoOrigem:     origem,
		})
	}
	return s.repo.SaveItens(ctx, itens)
}

// publishImported emits the batch event. Failures are logged, never
// surfaced: the import itself already committed.
func (s *IngestService) publishImported(ctx context.Context, summary *BatchSummary) {
	if s.events == nil {
		return
	}

	arquivos := make([]string, len(summary.Arquivos))
	for i, m := range summary.Arquivos {
		arquivos[i] = m.Nome
	}

	msg := amqp.NewReportImportedMessage(s.provider.Slug, summary.Pedidos, summary.Itens, arquivos)
	if err := s.events.PublishReportImported(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish report imported event", "error", err)
	}
}
