package amqp

import (
	"encoding/json"
	"time"
)

// ReportImportedMessage summarizes one completed batch import. Consumers
// that need row-level data query the database; the event only says what
// changed and when.
type ReportImportedMessage struct {
	Provider  string    `json:"provider"`
	Pedidos   int       `json:"pedidos"`
	Itens     int       `json:"itens"`
	Arquivos  []string  `json:"arquivos"`
	Timestamp time.Time `json:"timestamp"`
}

func NewReportImportedMessage(provider string, pedidos, itens int, arquivos []string) *ReportImportedMessage {
	return &ReportImportedMessage{
		Provider:  provider,
		Pedidos:   pedidos,
		Itens:     itens,
		Arquivos:  arquivos,
		Timestamp: time.Now(),
	}
}

func (m *ReportImportedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ReportImportedMessageFromJSON(data []byte) (*ReportImportedMessage, error) {
	var msg ReportImportedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
