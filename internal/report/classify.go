package report

const (
	KindPedidos Kind = "pedidos"
	KindItens   Kind = "itens"
)

// Kind is the detected report flavor of an uploaded file.
type Kind string

// Required column sets per report kind, in classification priority order.
// A file carrying both sets is a pedidos report: the orders predicate runs
// first.
var (
	pedidosColumns = []string{"id do pedido", "status"}
	itensColumns   = []string{"id do pedido", "nome do item", "quantidade vendida"}
)

// Classify inspects the table's normalized column set and decides whether
// it is an orders or an items report. Returns ErrUnknownReport when the
// columns match neither.
func Classify(t *Table) (Kind, error) {
	if t.HasColumns(pedidosColumns...) {
		return KindPedidos, nil
	}
	if t.HasColumns(itensColumns...) {
		return KindItens, nil
	}
	return "", ErrUnknownReport
}
