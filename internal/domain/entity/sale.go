package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra una venta confirmada. Inmutable después del insert; nunca se
// borra desde esta capa, por eso el reporte tolera referencias colgantes.
type Sale struct {
	ID         int64
	ProductID  int64
	Quantity   int64
	TotalValue decimal.Decimal // precio al momento de la venta × cantidad
	SaleDate   time.Time       // asignado por el store al insertar
	UserID     *int64          // nil para ventas atribuidas al sistema
}

// SaleReportRow fila del reporte de ventas. ProductName y UserName son punteros
// porque el LEFT JOIN puede dejarlos en NULL si el producto o usuario fue
// eliminado después de la venta.
type SaleReportRow struct {
	SaleID      int64
	ProductName *string
	Quantity    int64
	TotalValue  decimal.Decimal
	SaleDate    time.Time
	UserName    *string
}
