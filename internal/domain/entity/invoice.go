package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura. El id lo genera la base de datos (serial);
// AddDate lo asigna el store al crear (CURRENT_DATE) y es inmutable.
// Invariante: PaidDate es no-nulo si y solo si el último cambio de Paid fue a true.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time // nil = sin pagar
}
