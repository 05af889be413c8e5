// Package services holds the business rules on top of the storage layer:
// the ledger, report ingestion and dashboard analytics.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"financeiro/internal/core"
	"financeiro/internal/storage"
)

// LedgerService owns the income/expense ledger rules. Amounts cross this
// boundary as decimal strings and are stored as integer centavos.
type LedgerService struct {
	repo *storage.SQLiteRepository
}

func NewLedgerService(repo *storage.SQLiteRepository) *LedgerService {
	return &LedgerService{repo: repo}
}

// AddEntry validates and persists one ledger entry, returning its id.
// Tipo is normalized to lowercase and must be entrada or saida; valor must
// parse as a non-negative decimal; data must be an ISO calendar date.
func (s *LedgerService) AddEntry(ctx context.Context, tipo, descricao, valor, data, categoria string) (int64, error) {
	t, err := core.NormalizeTipo(tipo)
	if err != nil {
		return 0, err
	}

	descricao = strings.TrimSpace(descricao)
	if descricao == "" {
		return 0, core.ErrEmptyDescricao
	}

	centavos, err := core.ToMinorUnits(valor)
	if err != nil {
		return 0, err
	}
	if centavos < 0 {
		return 0, core.ErrNegativeAmount
	}

	data = strings.TrimSpace(data)
	if _, err := time.Parse("2006-01-02", data); err != nil {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidDate, data)
	}

	id, err := s.repo.CreateLancamento(ctx, storage.CreateLancamentoParams{
		Tipo:          t,
		Descricao:     descricao,
		ValorCentavos: centavos,
		Data:          data,
		Categoria:     strings.TrimSpace(categoria),
	})
	if err != nil {
		return 0, fmt.Errorf("add entry: %w", err)
	}
	return id, nil
}

// ListEntries returns every ledger entry, most recent first.
func (s *LedgerService) ListEntries(ctx context.Context) ([]core.Lancamento, error) {
	return s.repo.ListLancamentos(ctx)
}

// ListEntriesInRange returns entries between inicio and fim inclusive,
// oldest first. Both bounds are required.
func (s *LedgerService) ListEntriesInRange(ctx context.Context, inicio, fim string) ([]core.Lancamento, error) {
	inicio = strings.TrimSpace(inicio)
	fim = strings.TrimSpace(fim)
	if inicio == "" || fim == "" {
		return nil, core.ErrEmptyPeriod
	}
	for _, d := range []string{inicio, fim} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, fmt.Errorf("%w: %q", core.ErrInvalidDate, d)
		}
	}
	return s.repo.ListLancamentosPorPeriodo(ctx, inicio, fim)
}

// Balance returns sum(entradas) - sum(saidas) as a display amount.
func (s *LedgerService) Balance(ctx context.Context) (float64, error) {
	centavos, err := s.repo.SaldoCentavos(ctx)
	if err != nil {
		return 0, err
	}
	return core.ToDisplayAmount(centavos), nil
}

// ImportNFEXML is the extension point for the future NF-e invoice import.
// It returns a typed not-implemented result so callers can branch on the
// status instead of recovering from an error.
func (s *LedgerService) ImportNFEXML(ctx context.Context, arquivo string) core.NFEImportResult {
	slog.InfoContext(ctx, "NF-e import requested but not implemented", "arquivo", arquivo)
	return core.NFEImportResult{
		Status:   core.StatusNaoImplementado,
		Mensagem: "Importação de XML de NF-e será implementada em versão futura.",
		Arquivo:  arquivo,
	}
}
