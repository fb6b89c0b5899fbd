package sale

import (
	"context"
	"fmt"

	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// SaleUseCase registra ventas a través del protocolo transaccional y expone
// el reporte. La atomicidad check→descuento→insert vive en el SaleRegistrar;
// acá sólo se adapta entrada/salida.
type SaleUseCase struct {
	registrar repository.SaleRegistrar
	saleRepo  repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(registrar repository.SaleRegistrar, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{registrar: registrar, saleRepo: saleRepo}
}

// Register registra una venta atribuida al usuario dado (nil = sistema).
// Los fallos llegan como errores de dominio: ErrProductNotFound,
// ErrInsufficientStock, ErrInvalidInput o ErrSystemBusy.
func (uc *SaleUseCase) Register(ctx context.Context, in dto.RegisterSaleRequest, userID *int64) (*dto.RegisterSaleResponse, error) {
	s, err := uc.registrar.RegisterSale(ctx, in.ProductID, in.Quantity, userID)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterSaleResponse{
		SaleID:     s.ID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		TotalValue: s.TotalValue,
		SaleDate:   s.SaleDate,
		Message:    fmt.Sprintf("venta registrada con éxito, total %s", s.TotalValue.StringFixed(2)),
	}, nil
}

// Report devuelve todas las ventas; las que refieren productos o usuarios
// eliminados aparecen con los nombres en null.
func (uc *SaleUseCase) Report() ([]dto.SaleReportRowResponse, error) {
	rows, err := uc.saleRepo.Report()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleReportRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SaleReportRowResponse{
			ID:          r.SaleID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			TotalValue:  r.TotalValue,
			SaleDate:    r.SaleDate,
			UserName:    r.UserName,
		})
	}
	return out, nil
}
