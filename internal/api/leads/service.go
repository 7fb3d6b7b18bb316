package leads

import (
	"context"
	"errors"
	"fmt"

	"github.com/SkylineKAI/platform-api/internal/loaders"
	"github.com/SkylineKAI/platform-api/internal/types"
)

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrLeadNotFound     = errors.New("lead not found")
	ErrAccessDenied     = errors.New("access denied")
)

// Store is the persistence slice behind the CRM endpoints.
type Store interface {
	GetBusiness(ctx context.Context, id string) (*types.Business, error)
	CreateLead(ctx context.Context, in loaders.LeadInput) (*types.Lead, error)
	GetLead(ctx context.Context, id string) (*types.Lead, error)
	GetLeadsByBusiness(ctx context.Context, businessID string) ([]types.Lead, error)
	UpdateLead(ctx context.Context, id string, upd loaders.LeadUpdate) (*types.Lead, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create captures a lead. Widgets call this without auth, so the only
// gate is that the target business exists.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*types.Lead, error) {
	business, err := s.store.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load business: %w", err)
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	source := req.Source
	if source == "" {
		source = "web"
	}

	return s.store.CreateLead(ctx, loaders.LeadInput{
		BusinessID: req.BusinessID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Message:    req.Message,
		Source:     source,
		Status:     types.LeadStatusNew,
	})
}

func (s *Service) List(ctx context.Context, userID, businessID string) ([]types.Lead, error) {
	if err := s.checkOwnership(ctx, userID, businessID); err != nil {
		return nil, err
	}
	return s.store.GetLeadsByBusiness(ctx, businessID)
}

func (s *Service) Update(ctx context.Context, userID, leadID string, req *UpdateRequest) (*types.Lead, error) {
	lead, err := s.store.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	if err := s.checkOwnership(ctx, userID, lead.BusinessID); err != nil {
		return nil, err
	}

	return s.store.UpdateLead(ctx, leadID, loaders.LeadUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
		Status:  req.Status,
	})
}

func (s *Service) checkOwnership(ctx context.Context, userID, businessID string) error {
	business, err := s.store.GetBusiness(ctx, businessID)
	if err != nil {
		return fmt.Errorf("failed to load business: %w", err)
	}
	if business == nil || business.UserID != userID {
		return ErrAccessDenied
	}
	return nil
}
