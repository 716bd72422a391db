package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/contactdesk/contactdesk-backend/internal/apierr"
	"github.com/contactdesk/contactdesk-backend/internal/logger"
	"github.com/contactdesk/contactdesk-backend/internal/repos"
	"github.com/contactdesk/contactdesk-backend/internal/types"
	"github.com/contactdesk/contactdesk-backend/internal/validation"
)

type ContactService interface {
	Create(ctx context.Context, req validation.ContactRequest) (types.ContactResponse, error)
	Get(ctx context.Context, id uint) (types.ContactResponse, error)
	// Update is a replace: every scalar field is rewritten from the
	// request, omitted optionals included.
	Update(ctx context.Context, id uint, req validation.ContactRequest) (types.ContactResponse, error)
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, req validation.SearchContactsRequest) (types.ContactPage, error)
}

type contactService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.ContactRepo
}

func NewContactService(db *gorm.DB, baseLog *logger.Logger, contactRepo repos.ContactRepo) ContactService {
	return &contactService{
		db:          db,
		log:         baseLog.With("service", "ContactService"),
		contactRepo: contactRepo,
	}
}

func (cs *contactService) Create(ctx context.Context, req validation.ContactRequest) (types.ContactResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return types.ContactResponse{}, err
	}
	if err := validation.Check(req); err != nil {
		return types.ContactResponse{}, err
	}

	contact := types.Contact{
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := cs.contactRepo.Create(ctx, nil, &contact); err != nil {
		return types.ContactResponse{}, fmt.Errorf("create contact: %w", err)
	}
	return contact.ToResponse(), nil
}

func (cs *contactService) Get(ctx context.Context, id uint) (types.ContactResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return types.ContactResponse{}, err
	}
	contact, err := cs.contactRepo.GetOwned(ctx, nil, user.Username, id)
	if err != nil {
		return types.ContactResponse{}, fmt.Errorf("get contact: %w", err)
	}
	if contact == nil {
		return types.ContactResponse{}, apierr.NotFound("contact is not found")
	}
	return contact.ToResponse(), nil
}

func (cs *contactService) Update(ctx context.Context, id uint, req validation.ContactRequest) (types.ContactResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return types.ContactResponse{}, err
	}
	if err := validation.Check(req); err != nil {
		return types.ContactResponse{}, err
	}

	contact := types.Contact{
		ID:        id,
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	// Ownership check and write share one transaction so the row cannot
	// change hands between them.
	err = cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := cs.contactRepo.CountOwned(ctx, tx, user.Username, id)
		if err != nil {
			return fmt.Errorf("check contact: %w", err)
		}
		if count != 1 {
			return apierr.NotFound("contact is not found")
		}
		return cs.contactRepo.Replace(ctx, tx, &contact)
	})
	if err != nil {
		return types.ContactResponse{}, err
	}
	return contact.ToResponse(), nil
}

func (cs *contactService) Delete(ctx context.Context, id uint) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := cs.contactRepo.CountOwned(ctx, tx, user.Username, id)
		if err != nil {
			return fmt.Errorf("check contact: %w", err)
		}
		if count != 1 {
			return apierr.NotFound("contact is not found")
		}
		return cs.contactRepo.Delete(ctx, tx, id)
	})
}

func (cs *contactService) Search(ctx context.Context, req validation.SearchContactsRequest) (types.ContactPage, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return types.ContactPage{}, err
	}
	if err := validation.Check(req); err != nil {
		return types.ContactPage{}, err
	}

	filter := repos.SearchFilter{
		Username: user.Username,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	offset := (req.Page - 1) * req.Size

	contacts, err := cs.contactRepo.Search(ctx, nil, filter, req.Size, offset)
	if err != nil {
		return types.ContactPage{}, fmt.Errorf("search contacts: %w", err)
	}
	total, err := cs.contactRepo.CountSearch(ctx, nil, filter)
	if err != nil {
		return types.ContactPage{}, fmt.Errorf("count contacts: %w", err)
	}

	data := make([]types.ContactResponse, 0, len(contacts))
	for i := range contacts {
		data = append(data, contacts[i].ToResponse())
	}
	totalPage := int((total + int64(req.Size) - 1) / int64(req.Size))

	return types.ContactPage{
		Data: data,
		Paging: types.Paging{
			Page:      req.Page,
			TotalItem: int(total),
			TotalPage: totalPage,
		},
	}, nil
}
