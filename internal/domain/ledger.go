package domain

import "time"

// Funções de agregação do livro-razão. Todas são puras: o resultado depende
// apenas das fatias recebidas, e a aritmética é feita em inteiros (centavos).

// TotalInventoryValue soma quantity * purchasePrice de todos os produtos.
// Quantidades negativas contribuem com termos negativos.
func TotalInventoryValue(products []Product) int64 {
	var total int64
	for _, p := range products {
		total += int64(p.Quantity) * p.PurchasePrice
	}
	return total
}

// FilterLowStock retorna, na ordem recebida, os produtos com quantity <= threshold.
func FilterLowStock(products []Product, threshold int) []Product {
	low := make([]Product, 0)
	for _, p := range products {
		if p.Quantity <= threshold {
			low = append(low, p)
		}
	}
	return low
}

// BalanceSummary agrega entradas e saídas de um conjunto de lançamentos.
type BalanceSummary struct {
	Entrada int64 `json:"entrada"`
	Saida   int64 `json:"saida"`
	Balance int64 `json:"balance"`
}

// Summarize soma entradas e saídas; Balance = Entrada - Saida.
func Summarize(transactions []FinancialTransaction) BalanceSummary {
	var s BalanceSummary
	for _, t := range transactions {
		switch t.Type {
		case Entrada:
			s.Entrada += t.Value
		case Saida:
			s.Saida += t.Value
		}
	}
	s.Balance = s.Entrada - s.Saida
	return s
}

// CurrentBalance é o saldo de todo o log de lançamentos.
func CurrentBalance(transactions []FinancialTransaction) int64 {
	return Summarize(transactions).Balance
}

// MonthWindow é o intervalo [Start, End) de um mês civil em um fuso.
type MonthWindow struct {
	Start time.Time
	End   time.Time
}

// NewMonthWindow calcula o mês no fuso loc. Dezembro avança para janeiro do ano seguinte.
func NewMonthWindow(year int, month time.Month, loc *time.Location) MonthWindow {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return MonthWindow{Start: start, End: start.AddDate(0, 1, 0)}
}

// Contains informa se t pertence ao mês (início inclusivo, fim exclusivo).
func (w MonthWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// MonthlyBalance resume apenas os lançamentos cuja data cai dentro da janela.
func MonthlyBalance(transactions []FinancialTransaction, w MonthWindow) BalanceSummary {
	inMonth := make([]FinancialTransaction, 0, len(transactions))
	for _, t := range transactions {
		if w.Contains(t.Date) {
			inMonth = append(inMonth, t)
		}
	}
	return Summarize(inMonth)
}
