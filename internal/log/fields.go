package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldTipo          = "tipo"
	FieldValorCentavos = "valor_centavos"
	FieldData          = "data"
	FieldCategoria     = "categoria"
	FieldPedidoID      = "pedido_id"
	FieldArquivo       = "arquivo"
	FieldLinhas        = "linhas"
	FieldProvider      = "provider"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentLedger    = "ledger"
	ComponentIngest    = "ingest"
	ComponentAnalytics = "analytics"
	ComponentStorage   = "storage"
	ComponentAMQP      = "amqp"
	ComponentFilestore = "filestore"
)
