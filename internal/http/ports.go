package http

import (
	"context"

	"financeiro/internal/core"
	"financeiro/internal/services"
	"financeiro/internal/storage"
)

// Ports consumed by the HTTP layer. The services satisfy them directly;
// tests can substitute fakes.
type (
	LedgerAPI interface {
		AddEntry(ctx context.Context, tipo, descricao, valor, data, categoria string) (int64, error)
		ListEntries(ctx context.Context) ([]core.Lancamento, error)
		ListEntriesInRange(ctx context.Context, inicio, fim string) ([]core.Lancamento, error)
		Balance(ctx context.Context) (float64, error)
		ImportNFEXML(ctx context.Context, arquivo string) core.NFEImportResult
	}

	IngestAPI interface {
		IngestBatch(ctx context.Context, files []services.UploadedFile) (*services.BatchSummary, error)
	}

	AnalyticsAPI interface {
		Dashboard(ctx context.Context, f storage.DashboardFilter) (*core.Dashboard, error)
	}
)
