package repositories

import (
	"context"
	"errors"

	"payproc/internal/models"

	"gorm.io/gorm"
)

var ErrDuplicateRecord = errors.New("record already in ledger")

type LedgerRepository interface {
	Create(ctx context.Context, entry *models.LedgerEntry) error
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Create(ctx context.Context, entry *models.LedgerEntry) error {
	err := r.db.WithContext(ctx).Create(entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateRecord
	}
	return err
}
