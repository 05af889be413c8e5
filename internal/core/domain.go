package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Entrada TipoLancamento = "entrada"
	Saida   TipoLancamento = "saida"
)

type (
	// TipoLancamento is the kind of a ledger entry: money in or money out.
	TipoLancamento string

	// Lancamento is a single ledger entry. ValorCentavos is the stored
	// amount in integer centavos; Valor carries the decoded display amount.
	Lancamento struct {
		ID            int64          `json:"id"`
		Tipo          TipoLancamento `json:"tipo"`
		Descricao     string         `json:"descricao"`
		ValorCentavos int64          `json:"valor_centavos"`
		Valor         float64        `json:"valor"`
		Data          string         `json:"data"` // YYYY-MM-DD
		Categoria     string         `json:"categoria"`
		CriadoEm      time.Time      `json:"criado_em"`
	}

	// Pedido is a marketplace order imported from a settlement report.
	// Re-importing the same PedidoID overwrites everything except CriadoEm.
	Pedido struct {
		ID              int64     `json:"id"`
		PedidoID        string    `json:"pedido_id"`
		DataHoraPedido  string    `json:"data_hora_pedido"` // YYYY-MM-DD HH:MM:SS
		Status          string    `json:"status"`
		TempoPreparoMin float64   `json:"tempo_preparo_min"`
		TempoEntregaMin float64   `json:"tempo_entrega_min"`
		ArquivoOrigem   string    `json:"arquivo_origem"`
		CriadoEm        time.Time `json:"criado_em"`
		AtualizadoEm    time.Time `json:"atualizado_em"`
	}

	// ItemPedido is one sold-item row from an items report. Rows are
	// append-only: the source schema defines no dedup key for items.
	ItemPedido struct {
		ID                int64   `json:"id"`
		PedidoID          string  `json:"pedido_id"`
		NomeItem          string  `json:"nome_item"`
		QuantidadeVendida float64 `json:"quantidade_vendida"`
		ReceitaItem       float64 `json:"receita_item"`
		PrecoMedio        float64 `json:"preco_medio"`
		ArquivoOrigem     string  `json:"arquivo_origem"`
	}

	// Provider identifies a marketplace whose reports we can ingest.
	Provider struct {
		Slug string `json:"slug"`
		Nome string `json:"nome"`
	}
)

// Provedor99Food is the only marketplace with ingestion support today.
var Provedor99Food = Provider{Slug: "99food", Nome: "99Food"}

// ProvedoresFuturos are surfaced on the dashboard as upcoming integrations.
var ProvedoresFuturos = []Provider{
	{Slug: "ifood", Nome: "iFood"},
	{Slug: "keeta", Nome: "Keeta"},
}

var (
	ErrInvalidTipo    = errors.New("tipo inválido: use 'entrada' ou 'saida'")
	ErrNegativeAmount = errors.New("valor não pode ser negativo")
	ErrInvalidAmount  = errors.New("valor monetário inválido")
	ErrEmptyDescricao = errors.New("descrição não pode ser vazia")
	ErrInvalidDate    = errors.New("data inválida: use o formato YYYY-MM-DD")
	ErrEmptyPeriod    = errors.New("data inicial e data final são obrigatórias")
)

// NormalizeTipo trims and lowercases a raw tipo value, validating it
// against the fixed entrada/saida enum.
func NormalizeTipo(raw string) (TipoLancamento, error) {
	switch t := TipoLancamento(strings.ToLower(strings.TrimSpace(raw))); t {
	case Entrada, Saida:
		return t, nil
	default:
		return "", ErrInvalidTipo
	}
}

// StatusNaoImplementado marks extension points that exist but have no
// implementation yet.
const StatusNaoImplementado = "nao_implementado"

// NFEImportResult is the typed outcome of the future NF-e XML import.
// Callers branch on Status instead of handling an error.
type NFEImportResult struct {
	Status   string `json:"status"`
	Mensagem string `json:"mensagem"`
	Arquivo  string `json:"arquivo"`
}
