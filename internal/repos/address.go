package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/contactdesk/contactdesk-backend/internal/logger"
	"github.com/contactdesk/contactdesk-backend/internal/types"
)

type AddressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, address *types.Address) error
	// GetForContact scopes the lookup to one contact; callers must have
	// resolved that contact under ownership first.
	GetForContact(ctx context.Context, tx *gorm.DB, contactID, id uint) (*types.Address, error)
	CountForContact(ctx context.Context, tx *gorm.DB, contactID, id uint) (int64, error)
	// Replace rewrites every scalar field, same contract as
	// ContactRepo.Replace.
	Replace(ctx context.Context, tx *gorm.DB, address *types.Address) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	ListByContact(ctx context.Context, tx *gorm.DB, contactID uint) ([]types.Address, error)
}

type addressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAddressRepo(db *gorm.DB, baseLog *logger.Logger) AddressRepo {
	return &addressRepo{db: db, log: baseLog.With("repo", "AddressRepo")}
}

func (ar *addressRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ar.db
}

func (ar *addressRepo) Create(ctx context.Context, tx *gorm.DB, address *types.Address) error {
	return ar.handle(tx).WithContext(ctx).Create(address).Error
}

func (ar *addressRepo) GetForContact(ctx context.Context, tx *gorm.DB, contactID, id uint) (*types.Address, error) {
	var address types.Address
	err := ar.handle(tx).WithContext(ctx).
		Where("contact_id = ? AND id = ?", contactID, id).
		First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (ar *addressRepo) CountForContact(ctx context.Context, tx *gorm.DB, contactID, id uint) (int64, error) {
	var count int64
	err := ar.handle(tx).WithContext(ctx).
		Model(&types.Address{}).
		Where("contact_id = ? AND id = ?", contactID, id).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (ar *addressRepo) Replace(ctx context.Context, tx *gorm.DB, address *types.Address) error {
	return ar.handle(tx).WithContext(ctx).
		Model(&types.Address{}).
		Where("id = ?", address.ID).
		Select("street", "city", "province", "country", "postal_code").
		Updates(address).Error
}

func (ar *addressRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return ar.handle(tx).WithContext(ctx).
		Delete(&types.Address{}, id).Error
}

func (ar *addressRepo) ListByContact(ctx context.Context, tx *gorm.DB, contactID uint) ([]types.Address, error) {
	var addresses []types.Address
	err := ar.handle(tx).WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("id ASC").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}
