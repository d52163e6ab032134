package repository

import (
	"context"
	"fmt"

	"crm-backend/internal/model"

	"gorm.io/gorm"
)

// ProductRepository reads the product dimension table.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	GetByName(ctx context.Context, name string) (*model.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

func (r *productRepository) GetByName(ctx context.Context, name string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
