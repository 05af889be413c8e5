package services

import (
	"context"
	"fmt"

	"financeiro/internal/core"
	"financeiro/internal/storage"
)

// AnalyticsService assembles the marketplace dashboard payload from the
// read-side aggregation queries.
type AnalyticsService struct {
	repo *storage.SQLiteRepository
}

func NewAnalyticsService(repo *storage.SQLiteRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Dashboard runs the KPI, series and ranking queries under the given
// filter and returns the complete payload. Queries run sequentially; each
// one is a short read against the store.
func (s *AnalyticsService) Dashboard(ctx context.Context, f storage.DashboardFilter) (*core.Dashboard, error) {
	kpis, err := s.repo.DashboardKPIs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	porDia, err := s.repo.FaturamentoPorDia(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	porHora, err := s.repo.PedidosPorHora(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	porSemana, err := s.repo.VendasPorDiaSemana(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	rankingFaturamento, err := s.repo.RankingFaturamento(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	rankingQuantidade, err := s.repo.RankingQuantidade(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	// The filter catalog ignores the active filters on purpose: it feeds
	// the product selector, which must always list everything.
	produtos, err := s.repo.ListProdutos(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	return &core.Dashboard{
		KPIs: kpis,
		Graficos: core.Graficos{
			FaturamentoPorDia:  porDia,
			PedidosPorHora:     porHora,
			VendasPorDiaSemana: porSemana,
		},
		Produtos: core.Produtos{
			RankingFaturamento: rankingFaturamento,
			RankingQuantidade:  rankingQuantidade,
			Filtro:             produtos,
		},
		ProvedoresFuturos: core.ProvedoresFuturos,
	}, nil
}
