package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo lecturas de reporting sobre ventas. La escritura de ventas no pasa
// por acá: es exclusiva del SaleTxRunner.
type SaleRepo struct {
	exec *Executor
}

// NewSaleRepository construye el adaptador de lectura de ventas.
func NewSaleRepository(exec *Executor) *SaleRepo {
	return &SaleRepo{exec: exec}
}

// Report lista todas las ventas. LEFT JOIN a products y users: una venta cuyo
// producto o usuario fue eliminado aparece con el nombre en NULL en lugar de
// desaparecer del reporte.
func (r *SaleRepo) Report() ([]*entity.SaleReportRow, error) {
	var list []*entity.SaleReportRow
	err := r.exec.Query(context.Background(), `
		SELECT s.id, p.name, s.quantity, s.total_value, s.sale_date, u.name
		FROM sales s
		LEFT JOIN products p ON s.product_id = p.id
		LEFT JOIN users u ON s.user_id = u.id
		ORDER BY s.id`,
		func(rows *sql.Rows) error {
			for rows.Next() {
				var row entity.SaleReportRow
				if err := rows.Scan(&row.SaleID, &row.ProductName, &row.Quantity,
					&row.TotalValue, &row.SaleDate, &row.UserName); err != nil {
					return fmt.Errorf("scan sale: %w", err)
				}
				list = append(list, &row)
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("sales report: %w", err)
	}
	return list, nil
}
