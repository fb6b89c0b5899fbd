package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el store SQLite.
type ProductRepo struct {
	exec *Executor
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(exec *Executor) *ProductRepo {
	return &ProductRepo{exec: exec}
}

const productColumns = `id, name, COALESCE(brand, ''), COALESCE(style, ''), COALESCE(type, ''),
	COALESCE(price, 0), COALESCE(quantity, 0), COALESCE(expiration_date, ''), image`

func scanProduct(scan func(dest ...any) error) (*entity.Product, error) {
	var p entity.Product
	err := scan(
		&p.ID, &p.Name, &p.Brand, &p.Style, &p.Type,
		&p.Price, &p.Quantity, &p.ExpirationDate, &p.Image,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert crea un producto. Con product.ID > 0 el id viaja explícito (clave del
// caller, p. ej. importaciones); si no, el store asigna uno y se devuelve.
func (r *ProductRepo) Insert(product *entity.Product) (int64, error) {
	ctx := context.Background()
	if product.ID > 0 {
		err := r.exec.Write(ctx, `
			INSERT INTO products (id, name, brand, style, type, price, quantity, expiration_date, image)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			product.ID, product.Name, product.Brand, product.Style, product.Type,
			product.Price, product.Quantity, product.ExpirationDate, product.Image,
		)
		if err != nil {
			return 0, fmt.Errorf("insert product: %w", err)
		}
		return product.ID, nil
	}
	id, err := r.exec.WriteWithID(ctx, `
		INSERT INTO products (name, brand, style, type, price, quantity, expiration_date, image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		product.Name, product.Brand, product.Style, product.Type,
		product.Price, product.Quantity, product.ExpirationDate, product.Image,
	)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// Update sobreescribe el producto. La imagen sólo se actualiza cuando
// withImage es true: un upsert sin bytes nuevos preserva el blob existente.
func (r *ProductRepo) Update(product *entity.Product, withImage bool) error {
	ctx := context.Background()
	var err error
	if withImage {
		err = r.exec.Write(ctx, `
			UPDATE products SET name = ?, brand = ?, style = ?, type = ?, price = ?, quantity = ?, expiration_date = ?, image = ?
			WHERE id = ?`,
			product.Name, product.Brand, product.Style, product.Type,
			product.Price, product.Quantity, product.ExpirationDate, product.Image, product.ID,
		)
	} else {
		err = r.exec.Write(ctx, `
			UPDATE products SET name = ?, brand = ?, style = ?, type = ?, price = ?, quantity = ?, expiration_date = ?
			WHERE id = ?`,
			product.Name, product.Brand, product.Style, product.Type,
			product.Price, product.Quantity, product.ExpirationDate, product.ID,
		)
	}
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	var p *entity.Product
	err := r.exec.QueryRow(context.Background(),
		"SELECT "+productColumns+" FROM products WHERE id = ?",
		func(row *sql.Row) error {
			var err error
			p, err = scanProduct(row.Scan)
			return err
		}, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Exists verifica si hay un producto con ese id.
func (r *ProductRepo) Exists(id int64) (bool, error) {
	var found int64
	err := r.exec.QueryRow(context.Background(),
		"SELECT id FROM products WHERE id = ?",
		func(row *sql.Row) error { return row.Scan(&found) }, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("product exists: %w", err)
	}
	return true, nil
}

// List lista todos los productos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.exec.Query(context.Background(),
		"SELECT "+productColumns+" FROM products ORDER BY id",
		func(rows *sql.Rows) error {
			for rows.Next() {
				p, err := scanProduct(rows.Scan)
				if err != nil {
					return fmt.Errorf("scan product: %w", err)
				}
				list = append(list, p)
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// Delete elimina un producto por ID. Las ventas históricas del producto quedan
// con la referencia colgante; el reporte las tolera vía LEFT JOIN.
func (r *ProductRepo) Delete(id int64) error {
	if err := r.exec.Write(context.Background(), "DELETE FROM products WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
