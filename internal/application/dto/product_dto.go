package dto

import "github.com/shopspring/decimal"

// UpsertProductRequest alta o modificación de producto. Con ID presente y
// existente se actualiza (la imagen sólo si vienen bytes nuevos); con ID
// presente y ausente se inserta con esa clave explícita; sin ID el store
// asigna una.
type UpsertProductRequest struct {
	ID             *int64          `json:"id"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Style          string          `json:"style"`
	Type           string          `json:"type"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int64           `json:"quantity"`
	ExpirationDate string          `json:"expiration_date"`
	Image          []byte          `json:"image"`
}

// UpsertProductResponse id resultante del upsert.
type UpsertProductResponse struct {
	ID int64 `json:"id"`
}

// ProductResponse proyección de un producto.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Style          string          `json:"style"`
	Type           string          `json:"type"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int64           `json:"quantity"`
	ExpirationDate string          `json:"expiration_date"`
	Image          []byte          `json:"image,omitempty"`
}
