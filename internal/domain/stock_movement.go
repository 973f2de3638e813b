package domain

import (
	"math"
	"time"
)

// MaxQuantity é o maior valor aceito pelas colunas INT de quantidade.
const MaxQuantity = math.MaxInt32

// MovementType identifica a direção de uma movimentação ou transação.
type MovementType string

const (
	Entrada MovementType = "entrada"
	Saida   MovementType = "saida"
)

// Valid informa se o tipo é entrada ou saida.
func (t MovementType) Valid() bool {
	return t == Entrada || t == Saida
}

// StockMovement é um registro imutável do log de movimentações.
// ProductID é apenas uma referência: o produto pode não existir mais.
type StockMovement struct {
	ID          int64        `json:"id"`
	ProductID   int64        `json:"product_id"`
	Type        MovementType `json:"type"`
	Quantity    int          `json:"quantity"`
	Date        time.Time    `json:"date"`
	Observation *string      `json:"observation,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Delta é o efeito da movimentação sobre a quantidade do produto.
func (m StockMovement) Delta() int {
	if m.Type == Saida {
		return -m.Quantity
	}
	return m.Quantity
}

// MovementRequest é o payload para registrar uma movimentação.
type MovementRequest struct {
	ProductID   int64        `json:"product_id"`
	Type        MovementType `json:"type"`
	Quantity    int          `json:"quantity"`
	Observation *string      `json:"observation,omitempty"`
}

// MovementResult é a movimentação criada e o resultado do ajuste de quantidade.
// ProductAdjusted é false quando o produto referenciado não existe.
type MovementResult struct {
	StockMovement
	ProductAdjusted bool `json:"product_adjusted"`
	NewQuantity     *int `json:"new_quantity,omitempty"`
}

// MovementFilter restringe a listagem de movimentações.
type MovementFilter struct {
	ProductID *int64
	Start     *time.Time
	End       *time.Time
}
