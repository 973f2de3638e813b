package domain

import (
	"time"
)

// DefaultLowStockThreshold é o limite padrão para alertas de estoque baixo.
const DefaultLowStockThreshold = 10

// Product representa um item do estoque.
// Preços são sempre inteiros em centavos.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Quantity      int       `json:"quantity"` // pode ficar negativa após saídas além do disponível
	PurchasePrice int64     `json:"purchase_price"`
	SalePrice     int64     `json:"sale_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductUpdate carrega uma atualização parcial; campos nil não são alterados.
type ProductUpdate struct {
	Name          *string `json:"name,omitempty"`
	Category      *string `json:"category,omitempty"`
	Quantity      *int    `json:"quantity,omitempty"`
	PurchasePrice *int64  `json:"purchase_price,omitempty"`
	SalePrice     *int64  `json:"sale_price,omitempty"`
}

// IsEmpty informa se nenhum campo foi enviado.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Category == nil && u.Quantity == nil &&
		u.PurchasePrice == nil && u.SalePrice == nil
}
