package repository

import (
	"context"

	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
)

// SaleRegistrar ejecuta el protocolo transaccional de venta: verificar stock,
// descontar e insertar la venta como unidad atómica, reintentando la unidad
// completa ante contención de locks.
type SaleRegistrar interface {
	RegisterSale(ctx context.Context, productID, quantity int64, userID *int64) (*entity.Sale, error)
}

// SaleRepository define el puerto de lectura sobre ventas.
type SaleRepository interface {
	// Report lista todas las ventas con LEFT JOIN a products y users: las
	// ventas cuyo producto o usuario fue eliminado aparecen con campos nulos,
	// nunca se omiten.
	Report() ([]*entity.SaleReportRow, error)
}
