package storage

import (
	"context"
	"fmt"
	"strings"

	"financeiro/internal/core"
)

// DashboardFilter narrows the dashboard queries. All fields are optional
// and conjunctive: empty string means no restriction. Dates apply to the
// date portion of the order timestamp, inclusive on both ends; Produto is
// an exact item-name match.
type DashboardFilter struct {
	DataInicial string
	DataFinal   string
	Produto     string
}

// where builds the shared filter clause over the pedidos(p)/itens(i) join.
func (f DashboardFilter) where() (string, []any) {
	conds := []string{"1=1"}
	var args []any

	if f.DataInicial != "" {
		conds = append(conds, "date(p.data_hora_pedido) >= date(?)")
		args = append(args, f.DataInicial)
	}
	if f.DataFinal != "" {
		conds = append(conds, "date(p.data_hora_pedido) <= date(?)")
		args = append(args, f.DataFinal)
	}
	if f.Produto != "" {
		conds = append(conds, "i.nome_item = ?")
		args = append(args, f.Produto)
	}

	return strings.Join(conds, " AND "), args
}

// DashboardKPIs computes the headline aggregates. The LEFT JOIN keeps
// orders without items in the order count; the ticket médio guards against
// dividing by zero orders.
func (r *SQLiteRepository) DashboardKPIs(ctx context.Context, f DashboardFilter) (core.KPIs, error) {
	where, args := f.where()

	var kpis core.KPIs
	err := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT
			COALESCE(SUM(i.receita_item), 0) AS faturamento_total,
			COUNT(DISTINCT p.pedido_id) AS total_pedidos,
			COALESCE(SUM(i.quantidade_vendida), 0) AS total_itens_vendidos,
			CASE
				WHEN COUNT(DISTINCT p.pedido_id) = 0 THEN 0
				ELSE COALESCE(SUM(i.receita_item), 0) / COUNT(DISTINCT p.pedido_id)
			END AS ticket_medio
		FROM bi_99food_pedidos p
		LEFT JOIN bi_99food_itens i ON i.pedido_id = p.pedido_id
		WHERE %s`, where), args...).
		Scan(&kpis.FaturamentoTotal, &kpis.TotalPedidos, &kpis.TotalItensVendidos, &kpis.TicketMedio)
	if err != nil {
		return core.KPIs{}, fmt.Errorf("dashboard kpis: %w", err)
	}
	return kpis, nil
}

// FaturamentoPorDia returns revenue grouped by calendar day, ascending.
func (r *SQLiteRepository) FaturamentoPorDia(ctx context.Context, f DashboardFilter) ([]core.PontoDia, error) {
	where, args := f.where()

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT date(p.data_hora_pedido) AS dia, COALESCE(SUM(i.receita_item), 0) AS valor
		FROM bi_99food_pedidos p
		LEFT JOIN bi_99food_itens i ON i.pedido_id = p.pedido_id
		WHERE %s
		GROUP BY date(p.data_hora_pedido)
		ORDER BY dia`, where), args...)
	if err != nil {
		return nil, fmt.Errorf("faturamento por dia: %w", err)
	}
	defer rows.Close()

	var out []core.PontoDia
	for rows.Next() {
		var p core.PontoDia
		if err := rows.Scan(&p.Dia, &p.Valor); err != nil {
			return nil, fmt.Errorf("scan faturamento por dia: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// PedidosPorHora returns distinct-order counts grouped by hour of day.
func (r *SQLiteRepository) PedidosPorHora(ctx context.Context, f DashboardFilter) ([]core.PontoHora, error) {
	where, args := f.where()

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT strftime('%%H', p.data_hora_pedido) AS hora, COUNT(DISTINCT p.pedido_id) AS pedidos
		FROM bi_99food_pedidos p
		LEFT JOIN bi_99food_itens i ON i.pedido_id = p.pedido_id
		WHERE %s
		GROUP BY strftime('%%H', p.data_hora_pedido)
		ORDER BY hora`, where), args...)
	if err != nil {
		return nil, fmt.Errorf("pedidos por hora: %w", err)
	}
	defer rows.Close()

	var out []core.PontoHora
	for rows.Next() {
		var p core.PontoHora
		if err := rows.Scan(&p.Hora, &p.Pedidos); err != nil {
			return nil, fmt.Errorf("scan pedidos por hora: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// VendasPorDiaSemana returns revenue grouped by weekday, ordered by the
// weekday index (0=Domingo .. 6=Sábado) and labeled in Portuguese.
func (r *SQLiteRepository) VendasPorDiaSemana(ctx context.Context, f DashboardFilter) ([]core.PontoSemana, error) {
	where, args := f.where()

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT
			CASE cast(strftime('%%w', p.data_hora_pedido) as integer)
				WHEN 0 THEN 'Domingo'
				WHEN 1 THEN 'Segunda'
				WHEN 2 THEN 'Terça'
				WHEN 3 THEN 'Quarta'
				WHEN 4 THEN 'Quinta'
				WHEN 5 THEN 'Sexta'
				ELSE 'Sábado'
			END AS dia_semana,
			COALESCE(SUM(i.receita_item), 0) AS valor
		FROM bi_99food_pedidos p
		LEFT JOIN bi_99food_itens i ON i.pedido_id = p.pedido_id
		WHERE %s
		GROUP BY strftime('%%w', p.data_hora_pedido)
		ORDER BY cast(strftime('%%w', p.data_hora_pedido) as integer)`, where), args...)
	if err != nil {
		return nil, fmt.Errorf("vendas por dia da semana: %w", err)
	}
	defer rows.Close()

	var out []core.PontoSemana
	for rows.Next() {
		var p core.PontoSemana
		if err := rows.Scan(&p.DiaSemana, &p.Valor); err != nil {
			return nil, fmt.Errorf("scan vendas por dia da semana: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// RankingFaturamento returns the top 10 items by total revenue. Rankings
// use an INNER JOIN: an item must belong to some order to rank.
func (r *SQLiteRepository) RankingFaturamento(ctx context.Context, f DashboardFilter) ([]core.RankingItem, error) {
	return r.ranking(ctx, f, "COALESCE(SUM(i.receita_item), 0)")
}

// RankingQuantidade returns the top 10 items by total quantity sold.
func (r *SQLiteRepository) RankingQuantidade(ctx context.Context, f DashboardFilter) ([]core.RankingItem, error) {
	return r.ranking(ctx, f, "COALESCE(SUM(i.quantidade_vendida), 0)")
}

func (r *SQLiteRepository) ranking(ctx context.Context, f DashboardFilter, metric string) ([]core.RankingItem, error) {
	where, args := f.where()

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT i.nome_item, %s AS valor
		FROM bi_99food_pedidos p
		JOIN bi_99food_itens i ON i.pedido_id = p.pedido_id
		WHERE %s
		GROUP BY i.nome_item
		ORDER BY valor DESC
		LIMIT 10`, metric, where), args...)
	if err != nil {
		return nil, fmt.Errorf("ranking: %w", err)
	}
	defer rows.Close()

	var out []core.RankingItem
	for rows.Next() {
		var item core.RankingItem
		if err := rows.Scan(&item.NomeItem, &item.Valor); err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// ListProdutos returns every distinct item name ever ingested, unfiltered,
// sorted ascending. Feeds the product selection control.
func (r *SQLiteRepository) ListProdutos(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT nome_item
		FROM bi_99food_itens
		ORDER BY nome_item`)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var nome string
		if err := rows.Scan(&nome); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		out = append(out, nome)
	}
	return out, rows.Err()
}
