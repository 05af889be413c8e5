// Package storage is the SQLite persistence layer: the ledger table and the
// marketplace orders/items tables, plus the dashboard read queries.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"financeiro/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateLancamentoParams carries an already validated, already encoded
// ledger entry. The amount arrives in centavos: encoding happens in the
// service layer, never here.
type CreateLancamentoParams struct {
	Tipo          core.TipoLancamento
	Descricao     string
	ValorCentavos int64
	Data          string
	Categoria     string
}

func (r *SQLiteRepository) CreateLancamento(ctx context.Context, p CreateLancamentoParams) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO lancamentos (tipo, descricao, valor_centavos, data, categoria)
		VALUES (?, ?, ?, ?, ?)`,
		string(p.Tipo), p.Descricao, p.ValorCentavos, p.Data, p.Categoria)
	if err != nil {
		return 0, fmt.Errorf("insert lancamento: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("lancamento id: %w", err)
	}

	slog.InfoContext(ctx, "Lancamento saved",
		"id", id,
		"tipo", p.Tipo,
		"valor_centavos", p.ValorCentavos,
		"data", p.Data)

	return id, nil
}

// ListLancamentos returns every ledger entry, most recent date first, ties
// broken by id descending.
func (r *SQLiteRepository) ListLancamentos(ctx context.Context) ([]core.Lancamento, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, tipo, descricao, valor_centavos, data, categoria, criado_em
		FROM lancamentos
		ORDER BY data DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list lancamentos: %w", err)
	}
	defer rows.Close()

	return scanLancamentos(rows)
}

// ListLancamentosPorPeriodo returns entries with data between inicio and fim
// inclusive, oldest first. Dates are compared as ISO text: lexicographic
// order equals chronological order for YYYY-MM-DD.
func (r *SQLiteRepository) ListLancamentosPorPeriodo(ctx context.Context, inicio, fim string) ([]core.Lancamento, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, tipo, descricao, valor_centavos, data, categoria, criado_em
		FROM lancamentos
		WHERE data BETWEEN ? AND ?
		ORDER BY data ASC, id ASC`,
		inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("list lancamentos por periodo: %w", err)
	}
	defer rows.Close()

	return scanLancamentos(rows)
}

// SaldoCentavos computes sum(entradas) - sum(saidas) in centavos.
func (r *SQLiteRepository) SaldoCentavos(ctx context.Context) (int64, error) {
	var entradas, saidas int64
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN tipo = 'entrada' THEN valor_centavos ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN tipo = 'saida' THEN valor_centavos ELSE 0 END), 0)
		FROM lancamentos`).Scan(&entradas, &saidas)
	if err != nil {
		return 0, fmt.Errorf("saldo: %w", err)
	}
	return entradas - saidas, nil
}

func scanLancamentos(rows *sql.Rows) ([]core.Lancamento, error) {
	var out []core.Lancamento
	for rows.Next() {
		var (
			l        core.Lancamento
			tipo     string
			criadoEm string
		)
		if err := rows.Scan(&l.ID, &tipo, &l.Descricao, &l.ValorCentavos, &l.Data, &l.Categoria, &criadoEm); err != nil {
			return nil, fmt.Errorf("scan lancamento: %w", err)
		}
		l.Tipo = core.TipoLancamento(tipo)
		l.Valor = core.ToDisplayAmount(l.ValorCentavos)
		l.CriadoEm = parseStoredTimestamp(criadoEm)
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lancamentos: %w", err)
	}
	return out, nil
}

// parseStoredTimestamp decodes SQLite's CURRENT_TIMESTAMP text. A zero time
// is returned for anything unexpected; created-at markers are informational.
func parseStoredTimestamp(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// PedidoParams is one validated orders-report row ready for upsert.
type PedidoParams struct {
	PedidoID        string
	DataHoraPedido  string
	Status          string
	TempoPreparoMin float64
	TempoEntregaMin float64
	ArquivoOrigem   string
}

// ItemParams is one validated items-report row ready for insert.
type ItemParams struct {
	PedidoID          string
	NomeItem          string
	QuantidadeVendida float64
	ReceitaItem       float64
	PrecoMedio        float64
	ArquivoOrigem     string
}

// SavePedidos upserts every row in one transaction. On pedido_id conflict
// the timestamp, status, durations and source file are overwritten and
// atualizado_em is bumped; criado_em keeps the original insertion marker.
func (r *SQLiteRepository) SavePedidos(ctx context.Context, pedidos []PedidoParams) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin pedidos tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO bi_99food_pedidos (
			pedido_id,
			data_hora_pedido,
			status,
			tempo_preparo_min,
			tempo_entrega_min,
			arquivo_origem
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(pedido_id) DO UPDATE SET
			data_hora_pedido = excluded.data_hora_pedido,
			status = excluded.status,
			tempo_preparo_min = excluded.tempo_preparo_min,
			tempo_entrega_min = excluded.tempo_entrega_min,
			arquivo_origem = excluded.arquivo_origem,
			atualizado_em = CURRENT_TIMESTAMP`)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert pedido: %w", err)
	}
	defer stmt.Close()

	for _, p := range pedidos {
		if _, err := stmt.ExecContext(ctx,
			p.PedidoID, p.DataHoraPedido, p.Status,
			p.TempoPreparoMin, p.TempoEntregaMin, p.ArquivoOrigem); err != nil {
			return 0, fmt.Errorf("upsert pedido %s: %w", p.PedidoID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit pedidos: %w", err)
	}
	return len(pedidos), nil
}

// SaveItens inserts every row in one transaction. Items are append-only:
// there is no dedup key, so re-importing a file duplicates its rows.
func (r *SQLiteRepository) SaveItens(ctx context.Context, itens []ItemParams) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin itens tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO bi_99food_itens (
			pedido_id,
			nome_item,
			quantidade_vendida,
			receita_item,
			preco_medio,
			arquivo_origem
		) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert item: %w", err)
	}
	defer stmt.Close()

	for _, it := range itens {
		if _, err := stmt.ExecContext(ctx,
			it.PedidoID, it.NomeItem, it.QuantidadeVendida,
			it.ReceitaItem, it.PrecoMedio, it.ArquivoOrigem); err != nil {
			return 0, fmt.Errorf("insert item %s: %w", it.NomeItem, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit itens: %w", err)
	}
	return len(itens), nil
}

// CountPedidos returns the number of stored orders.
func (r *SQLiteRepository) CountPedidos(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bi_99food_pedidos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pedidos: %w", err)
	}
	return n, nil
}

// CountItens returns the number of stored item rows.
func (r *SQLiteRepository) CountItens(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bi_99food_itens`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count itens: %w", err)
	}
	return n, nil
}

// GetPedido fetches one order by its external id.
func (r *SQLiteRepository) GetPedido(ctx context.Context, pedidoID string) (*core.Pedido, error) {
	var (
		p          core.Pedido
		criadoEm   string
		atualizado string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, pedido_id, data_hora_pedido, status,
		       tempo_preparo_min, tempo_entrega_min, arquivo_origem,
		       criado_em, atualizado_em
		FROM bi_99food_pedidos
		WHERE pedido_id = ?`, pedidoID).
		Scan(&p.ID, &p.PedidoID, &p.DataHoraPedido, &p.Status,
			&p.TempoPreparoMin, &p.TempoEntregaMin, &p.ArquivoOrigem,
			&criadoEm, &atualizado)
	if err != nil {
		return nil, fmt.Errorf("get pedido %s: %w", pedidoID, err)
	}
	p.CriadoEm = parseStoredTimestamp(criadoEm)
	p.AtualizadoEm = parseStoredTimestamp(atualizado)
	return &p, nil
}
