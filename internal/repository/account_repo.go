package repository

import (
	"context"
	"fmt"

	"crm-backend/internal/model"

	"gorm.io/gorm"
)

// AccountRepository reads the account dimension table.
type AccountRepository interface {
	ListAll(ctx context.Context) ([]model.Account, error)
	GetByName(ctx context.Context, name string) (*model.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) ListAll(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := r.db.WithContext(ctx).Order("name").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	return accounts, nil
}

func (r *accountRepository) GetByName(ctx context.Context, name string) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).First(&account, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
