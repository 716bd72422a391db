package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/contactdesk/contactdesk-backend/internal/logger"
	"github.com/contactdesk/contactdesk-backend/internal/types"
)

// SearchFilter is the predicate set for a contact search. Username is the
// implicit ownership scope and is always applied; the other fields add one
// AND term each when non-empty.
type SearchFilter struct {
	Username string
	Name     string
	Email    string
	Phone    string
}

type ContactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) error
	// GetOwned resolves a contact under ownership. A contact that exists
	// but belongs to someone else is indistinguishable from one that does
	// not exist: both come back (nil, nil).
	GetOwned(ctx context.Context, tx *gorm.DB, username string, id uint) (*types.Contact, error)
	CountOwned(ctx context.Context, tx *gorm.DB, username string, id uint) (int64, error)
	// Replace rewrites every scalar field from the given record. Optional
	// fields that are nil are written as NULL; contacts are replaced,
	// never merge-patched.
	Replace(ctx context.Context, tx *gorm.DB, contact *types.Contact) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	Search(ctx context.Context, tx *gorm.DB, filter SearchFilter, limit, offset int) ([]types.Contact, error)
	CountSearch(ctx context.Context, tx *gorm.DB, filter SearchFilter) (int64, error)
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	return &contactRepo{db: db, log: baseLog.With("repo", "ContactRepo")}
}

func (cr *contactRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return cr.db
}

func (cr *contactRepo) Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) error {
	return cr.handle(tx).WithContext(ctx).Create(contact).Error
}

func (cr *contactRepo) GetOwned(ctx context.Context, tx *gorm.DB, username string, id uint) (*types.Contact, error) {
	var contact types.Contact
	err := cr.handle(tx).WithContext(ctx).
		Where("username = ? AND id = ?", username, id).
		First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (cr *contactRepo) CountOwned(ctx context.Context, tx *gorm.DB, username string, id uint) (int64, error) {
	var count int64
	err := cr.handle(tx).WithContext(ctx).
		Model(&types.Contact{}).
		Where("username = ? AND id = ?", username, id).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (cr *contactRepo) Replace(ctx context.Context, tx *gorm.DB, contact *types.Contact) error {
	return cr.handle(tx).WithContext(ctx).
		Model(&types.Contact{}).
		Where("id = ?", contact.ID).
		Select("first_name", "last_name", "email", "phone").
		Updates(contact).Error
}

func (cr *contactRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return cr.handle(tx).WithContext(ctx).
		Delete(&types.Contact{}, id).Error
}

// applyFilter composes the WHERE clause: the ownership scope first, then one
// AND term per supplied optional filter. The name term matches first OR last
// name. LIKE follows the store's default collation (case-sensitive on
// Postgres).
func applyFilter(q *gorm.DB, filter SearchFilter) *gorm.DB {
	q = q.Where("username = ?", filter.Username)
	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		q = q.Where("(first_name LIKE ? OR last_name LIKE ?)", pattern, pattern)
	}
	if filter.Email != "" {
		q = q.Where("email LIKE ?", "%"+filter.Email+"%")
	}
	if filter.Phone != "" {
		q = q.Where("phone LIKE ?", "%"+filter.Phone+"%")
	}
	return q
}

func (cr *contactRepo) Search(ctx context.Context, tx *gorm.DB, filter SearchFilter, limit, offset int) ([]types.Contact, error) {
	var contacts []types.Contact
	q := applyFilter(cr.handle(tx).WithContext(ctx).Model(&types.Contact{}), filter)
	// Ascending id keeps page boundaries stable across requests.
	err := q.Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (cr *contactRepo) CountSearch(ctx context.Context, tx *gorm.DB, filter SearchFilter) (int64, error) {
	var count int64
	q := applyFilter(cr.handle(tx).WithContext(ctx).Model(&types.Contact{}), filter)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
