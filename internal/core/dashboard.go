package core

// KPIs are the headline aggregates for the marketplace dashboard.
type KPIs struct {
	FaturamentoTotal   float64 `json:"faturamento_total"`
	TotalPedidos       int64   `json:"total_pedidos"`
	TotalItensVendidos float64 `json:"total_itens_vendidos"`
	TicketMedio        float64 `json:"ticket_medio"`
}

// PontoDia is revenue grouped by calendar day.
type PontoDia struct {
	Dia   string  `json:"dia"` // YYYY-MM-DD
	Valor float64 `json:"valor"`
}

// PontoHora is the distinct-order count for one hour of the day (00-23).
type PontoHora struct {
	Hora    string `json:"hora"`
	Pedidos int64  `json:"pedidos"`
}

// PontoSemana is revenue grouped by weekday, labeled in Portuguese and
// ordered Domingo through Sábado.
type PontoSemana struct {
	DiaSemana string  `json:"dia_semana"`
	Valor     float64 `json:"valor"`
}

// RankingItem is one row of a top-products ranking; Valor is either total
// revenue or total quantity depending on the ranking.
type RankingItem struct {
	NomeItem string  `json:"nome_item"`
	Valor    float64 `json:"valor"`
}

// Graficos groups the time series shown on the dashboard.
type Graficos struct {
	FaturamentoPorDia  []PontoDia    `json:"faturamento_por_dia"`
	PedidosPorHora     []PontoHora   `json:"pedidos_por_hora"`
	VendasPorDiaSemana []PontoSemana `json:"vendas_por_dia_semana"`
}

// Produtos groups the product rankings and the filter catalog.
type Produtos struct {
	RankingFaturamento []RankingItem `json:"ranking_faturamento"`
	RankingQuantidade  []RankingItem `json:"ranking_quantidade"`
	Filtro             []string      `json:"filtro"`
}

// Dashboard is the full analytics payload consumed by the web dashboard.
type Dashboard struct {
	KPIs              KPIs       `json:"kpis"`
	Graficos          Graficos   `json:"graficos"`
	Produtos          Produtos   `json:"produtos"`
	ProvedoresFuturos []Provider `json:"provedores_futuros"`
}
