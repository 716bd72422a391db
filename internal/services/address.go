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

type AddressService interface {
	Create(ctx context.Context, contactID uint, req validation.AddressRequest) (types.AddressResponse, error)
	Get(ctx context.Context, contactID, addressID uint) (types.AddressResponse, error)
	// Update is a replace, same contract as ContactService.Update.
	Update(ctx context.Context, contactID, addressID uint, req validation.AddressRequest) (types.AddressResponse, error)
	Delete(ctx context.Context, contactID, addressID uint) error
	List(ctx context.Context, contactID uint) ([]types.AddressResponse, error)
}

type addressService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.ContactRepo
	addressRepo repos.AddressRepo
}

func NewAddressService(db *gorm.DB, baseLog *logger.Logger, contactRepo repos.ContactRepo, addressRepo repos.AddressRepo) AddressService {
	return &addressService{
		db:          db,
		log:         baseLog.With("service", "AddressService"),
		contactRepo: contactRepo,
		addressRepo: addressRepo,
	}
}

// verifyContact resolves the parent contact under ownership. Every address
// operation goes through here first; an unowned or missing contact is the
// same 404 either way.
func (s *addressService) verifyContact(ctx context.Context, tx *gorm.DB, contactID uint) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	count, err := s.contactRepo.CountOwned(ctx, tx, user.Username, contactID)
	if err != nil {
		return fmt.Errorf("check contact: %w", err)
	}
	if count != 1 {
		return apierr.NotFound("contact is not found")
	}
	return nil
}

func (s *addressService) Create(ctx context.Context, contactID uint, req validation.AddressRequest) (types.AddressResponse, error) {
	if err := s.verifyContact(ctx, nil, contactID); err != nil {
		return types.AddressResponse{}, err
	}
	if err := validation.Check(req); err != nil {
		return types.AddressResponse{}, err
	}

	address := types.Address{
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	if err := s.addressRepo.Create(ctx, nil, &address); err != nil {
		return types.AddressResponse{}, fmt.Errorf("create address: %w", err)
	}
	return address.ToResponse(), nil
}

func (s *addressService) Get(ctx context.Context, contactID, addressID uint) (types.AddressResponse, error) {
	if err := s.verifyContact(ctx, nil, contactID); err != nil {
		return types.AddressResponse{}, err
	}
	address, err := s.addressRepo.GetForContact(ctx, nil, contactID, addressID)
	if err != nil {
		return types.AddressResponse{}, fmt.Errorf("get address: %w", err)
	}
	if address == nil {
		return types.AddressResponse{}, apierr.NotFound("address is not found")
	}
	return address.ToResponse(), nil
}

func (s *addressService) Update(ctx context.Context, contactID, addressID uint, req validation.AddressRequest) (types.AddressResponse, error) {
	if err := validation.Check(req); err != nil {
		return types.AddressResponse{}, err
	}

	address := types.Address{
		ID:         addressID,
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.verifyContact(ctx, tx, contactID); err != nil {
			return err
		}
		count, err := s.addressRepo.CountForContact(ctx, tx, contactID, addressID)
		if err != nil {
			return fmt.Errorf("check address: %w", err)
		}
		if count != 1 {
			return apierr.NotFound("address is not found")
		}
		return s.addressRepo.Replace(ctx, tx, &address)
	})
	if err != nil {
		return types.AddressResponse{}, err
	}
	return address.ToResponse(), nil
}

func (s *addressService) Delete(ctx context.Context, contactID, addressID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.verifyContact(ctx, tx, contactID); err != nil {
			return err
		}
		count, err := s.addressRepo.CountForContact(ctx, tx, contactID, addressID)
		if err != nil {
			return fmt.Errorf("check address: %w", err)
		}
		if count != 1 {
			return apierr.NotFound("address is not found")
		}
		return s.addressRepo.Delete(ctx, tx, addressID)
	})
}

func (s *addressService) List(ctx context.Context, contactID uint) ([]types.AddressResponse, error) {
	if err := s.verifyContact(ctx, nil, contactID); err != nil {
		return nil, err
	}
	addresses, err := s.addressRepo.ListByContact(ctx, nil, contactID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	responses := make([]types.AddressResponse, 0, len(addresses))
	for i := range addresses {
		responses = append(responses, addresses[i].ToResponse())
	}
	return responses, nil
}
