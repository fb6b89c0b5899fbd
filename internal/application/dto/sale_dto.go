package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest venta a registrar.
type RegisterSaleRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// RegisterSaleResponse confirmación de una venta exitosa.
type RegisterSaleResponse struct {
	SaleID     int64           `json:"sale_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int64           `json:"quantity"`
	TotalValue decimal.Decimal `json:"total_value"`
	SaleDate   time.Time       `json:"sale_date"`
	Message    string          `json:"message"`
}

// SaleReportRowResponse fila del reporte de ventas. ProductName y UserName
// quedan en null cuando el producto o usuario referido ya no existe.
type SaleReportRowResponse struct {
	ID          int64           `json:"id"`
	ProductName *string         `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	TotalValue  decimal.Decimal `json:"total_value"`
	SaleDate    time.Time       `json:"sale_date"`
	UserName    *string         `json:"user_name"`
}
