package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
}

// VariantRepository define el puerto de persistencia para variantes.
// GetByID se usa en la validación de remitos para derivar el ProductID.
type VariantRepository interface {
	Create(variant *entity.Variant) error
	GetByID(id string) (*entity.Variant, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Variant, error)
}
