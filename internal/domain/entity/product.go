package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de la tienda.
// Quantity nunca es negativo: el protocolo de venta lo garantiza verificando y
// descontando dentro de la misma transacción.
type Product struct {
	ID             int64
	Name           string
	Brand          string // set recomendado en catalog; valores desconocidos se coercen a "Outra"
	Style          string
	Type           string
	Price          decimal.Decimal // precio de venta, no negativo
	Quantity       int64
	ExpirationDate string // fecha calendario como texto "YYYY-MM-DD"
	Image          []byte // blob opaco; vacío = sin imagen
}
