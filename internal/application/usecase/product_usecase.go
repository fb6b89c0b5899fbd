package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/catalog"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// ProductUseCase operaciones de catálogo: upsert por id, borrado, lecturas.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Upsert crea o actualiza un producto. Con ID presente y existente actualiza
// (la imagen sólo si vienen bytes nuevos); con ID presente y ausente inserta
// con esa clave explícita; sin ID inserta con clave asignada por el store.
// Marca/estilo/tipo se coercen al set recomendado ("Outra"/"Outro" si no
// coinciden), nunca se rechazan.
func (uc *ProductUseCase) Upsert(in dto.UpsertProductRequest) (*dto.UpsertProductResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Name:           in.Name,
		Brand:          catalog.NormalizeBrand(in.Brand),
		Style:          catalog.NormalizeStyle(in.Style),
		Type:           catalog.NormalizeType(in.Type),
		Price:          in.Price,
		Quantity:       in.Quantity,
		ExpirationDate: in.ExpirationDate,
		Image:          in.Image,
	}
	if in.ID != nil && *in.ID > 0 {
		product.ID = *in.ID
		exists, err := uc.productRepo.Exists(*in.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			if err := uc.productRepo.Update(product, len(in.Image) > 0); err != nil {
				return nil, err
			}
			return &dto.UpsertProductResponse{ID: *in.ID}, nil
		}
	}
	id, err := uc.productRepo.Insert(product)
	if err != nil {
		return nil, err
	}
	return &dto.UpsertProductResponse{ID: id}, nil
}

// Delete elimina un producto por id.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.productRepo.Delete(id)
}

// GetByID obtiene un producto. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p, true), nil
}

// List devuelve los productos cuyo nombre, marca, estilo o tipo contiene el
// texto buscado (sin distinguir mayúsculas ni acentos). Query vacío lista todo.
// Las respuestas de listado omiten el blob de imagen.
func (uc *ProductUseCase) List(query string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if query != "" &&
			!catalog.Matches(p.Name, query) && !catalog.Matches(p.Brand, query) &&
			!catalog.Matches(p.Style, query) && !catalog.Matches(p.Type, query) {
			continue
		}
		out = append(out, *toProductResponse(p, false))
	}
	return out, nil
}

func toProductResponse(p *entity.Product, withImage bool) *dto.ProductResponse {
	out := &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Brand:          p.Brand,
		Style:          p.Style,
		Type:           p.Type,
		Price:          p.Price,
		Quantity:       p.Quantity,
		ExpirationDate: p.ExpirationDate,
	}
	if withImage {
		out.Image = p.Image
	}
	return out
}
