package domain

import "time"

// FinancialTransaction é um lançamento do fluxo de caixa, em centavos.
type FinancialTransaction struct {
	ID          int64        `json:"id"`
	Type        MovementType `json:"type"`
	Category    string       `json:"category"`
	Value       int64        `json:"value"`
	Date        time.Time    `json:"date"`
	Description *string      `json:"description,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// TransactionRequest é o payload para registrar um lançamento.
// Date é opcional; quando ausente usa o instante atual.
type TransactionRequest struct {
	Type        MovementType `json:"type"`
	Category    string       `json:"category"`
	Value       int64        `json:"value"`
	Date        *time.Time   `json:"date,omitempty"`
	Description *string      `json:"description,omitempty"`
}

// TransactionFilter restringe a listagem de lançamentos.
// Start é inclusivo; End é exclusivo quando EndExclusive for true.
type TransactionFilter struct {
	Start        *time.Time
	End          *time.Time
	EndExclusive bool
}
