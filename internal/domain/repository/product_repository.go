package repository

import "github.com/tu-usuario/tienda-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Insert crea un producto; si product.ID > 0 se usa como clave explícita
	// (importaciones), si no el store asigna una.
	Insert(product *entity.Product) (int64, error)
	// Update sobreescribe los campos del producto. La imagen sólo se toca
	// cuando withImage es true (bytes nuevos presentes).
	Update(product *entity.Product, withImage bool) error
	GetByID(id int64) (*entity.Product, error)
	Exists(id int64) (bool, error)
	List() ([]*entity.Product, error)
	Delete(id int64) error
}
