package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-bi/internal/application/dto"
	"github.com/jhoicas/ventas-bi/internal/domain/entity"
)

// emptyKPI valor que muestran las tarjetas cuando no hay ventas.
const emptyKPI = "0"

// ComputeKPIs reduce las filas a total, promedio y máximo de amount (como moneda) más el conteo.
// Sin filas devuelve "0" en los tres indicadores y count 0.
func ComputeKPIs(rows []entity.SalesRow) dto.KPIsDTO {
	if len(rows) == 0 {
		return dto.KPIsDTO{Total: emptyKPI, Avg: emptyKPI, Max: emptyKPI}
	}

	total := decimal.Zero
	maxAmount := rows[0].Amount
	for _, r := range rows {
		total = total.Add(r.Amount)
		if r.Amount.GreaterThan(maxAmount) {
			maxAmount = r.Amount
		}
	}
	avg := total.Div(decimal.NewFromInt(int64(len(rows))))

	return dto.KPIsDTO{
		Total: formatCurrency(total),
		Avg:   formatCurrency(avg),
		Max:   formatCurrency(maxAmount),
		Count: len(rows),
	}
}

// formatCurrency: "$30.00". Los empates redondean al par ($0.125 -> $0.12).
func formatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixedBank(2)
}
