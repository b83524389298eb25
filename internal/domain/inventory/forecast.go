package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/smart-inventory/internal/domain"
)

// ForecastDemand estima la demanda del próximo periodo como la media aritmética de las ventas,
// redondeada al entero más cercano (mitades se alejan de cero: 2.5 → 3).
// Retorna domain.ErrInvalidInput si no hay historial.
func ForecastDemand(sales []int) (int, error) {
	if len(sales) == 0 {
		return 0, domain.ErrInvalidInput
	}
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(decimal.NewFromInt(int64(s)))
	}
	mean := total.Div(decimal.NewFromInt(int64(len(sales))))
	return int(mean.Round(0).IntPart()), nil
}
