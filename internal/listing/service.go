// AngelaMos | 2026
// service.go

package listing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/locagram/locagram-api/internal/core"
	"github.com/locagram/locagram-api/internal/quota"
)

// ProfileProvider supplies the account snapshot the permission gate
// decides on and keeps the owner's running listing counter in step.
type ProfileProvider interface {
	GateProfile(ctx context.Context, userID string) (*quota.Profile, error)
	ListingCreated(ctx context.Context, userID string) error
	ListingDeleted(ctx context.Context, userID string) error
}

type Service struct {
	repo      Repository
	gate      *quota.Gate
	profiles  ProfileProvider
	maxImages int
}

func NewService(
	repo Repository,
	gate *quota.Gate,
	profiles ProfileProvider,
	maxImages int,
) *Service {
	return &Service{
		repo:      repo,
		gate:      gate,
		profiles:  profiles,
		maxImages: maxImages,
	}
}

func (s *Service) Browse(
	ctx context.Context,
	filter Filter,
) ([]Listing, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Featured(ctx context.Context) ([]Listing, error) {
	return s.repo.ListFeatured(ctx)
}

// Get returns a listing and counts the view. The counter is
// best-effort: a failed increment never hides the listing.
func (s *Service) Get(ctx context.Context, id string) (*Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViews(ctx, id); err != nil {
		slog.Warn("failed to increment views", "listing_id", id, "error", err)
	} else {
		l.Views++
	}

	return l, nil
}

func (s *Service) ContactRequested(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.repo.IncrementContacts(ctx, id)
}

func (s *Service) Mine(
	ctx context.Context,
	userID string,
) ([]Listing, error) {
	if userID == "" {
		return nil, fmt.Errorf("list own listings: %w", core.ErrUnauthorized)
	}

	return s.repo.ListByOwner(ctx, userID)
}

// Permissions evaluates the publish gate for the caller without writing
// anything, so the client can disable forms up front.
func (s *Service) Permissions(
	ctx context.Context,
	userID string,
) (quota.Decision, error) {
	profile, err := s.profiles.GateProfile(ctx, userID)
	if err != nil {
		return quota.Decision{}, err
	}

	active, err := s.repo.CountActiveByOwner(ctx, userID)
	if err != nil {
		return quota.Decision{}, err
	}

	return s.gate.Check(profile, active), nil
}

// Create publishes a new listing for userID. Every permission check runs
// before any write: gate (status, categories, quota), then category
// authorization, then image constraints.
func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreateListingRequest,
) (*Listing, error) {
	if userID == "" {
		return nil, core.UnauthorizedError(quota.ReasonNotAuthenticated)
	}

	profile, err := s.profiles.GateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	active, err := s.repo.CountActiveByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	decision := s.gate.Check(profile, active)
	if !decision.CanCreate {
		return nil, permissionError(decision.Reason)
	}

	if !s.gate.CategoryAllowed(profile, req.Category) {
		return nil, core.ForbiddenError(quota.ReasonCategoryNotAuthorized)
	}

	if len(req.Images) > s.maxImages {
		return nil, core.BadRequestError(fmt.Sprintf(
			"a listing may carry at most %d images", s.maxImages))
	}

	l := &Listing{
		ID:           ulid.Make().String(),
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Location:     req.Location,
		City:         req.City,
		Category:     req.Category,
		Images:       core.StringList(req.Images),
		Status:       StatusActive,
		Availability: req.Availability,
		Negotiable:   req.Negotiable,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		UserID:       userID,
		LandArea:     req.LandArea,
		IsFurnished:  req.IsFurnished,
		Capacity:     req.Capacity,
		Equipment:    req.Equipment,
		Rooms:        req.Rooms,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	if err := s.profiles.ListingCreated(ctx, userID); err != nil {
		slog.Warn("failed to bump listings count",
			"user_id", userID, "error", err)
	}

	return l, nil
}

func (s *Service) Update(
	ctx context.Context,
	userID string,
	isAdmin bool,
	id string,
	req UpdateListingRequest,
) (*Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.UserID != userID && !isAdmin {
		return nil, fmt.Errorf("update listing: %w", core.ErrForbidden)
	}

	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.Price != nil {
		l.Price = *req.Price
	}
	if req.Location != nil {
		l.Location = *req.Location
	}
	if req.City != nil {
		l.City = *req.City
	}
	if req.Images != nil {
		if len(req.Images) > s.maxImages {
			return nil, core.BadRequestError(fmt.Sprintf(
				"a listing may carry at most %d images", s.maxImages))
		}
		l.Images = core.StringList(req.Images)
	}
	if req.Availability != nil {
		l.Availability = *req.Availability
	}
	if req.Negotiable != nil {
		l.Negotiable = *req.Negotiable
	}
	if req.ContactPhone != nil {
		l.ContactPhone = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		l.ContactEmail = *req.ContactEmail
	}
	if req.LandArea != nil {
		l.LandArea = req.LandArea
	}
	if req.IsFurnished != nil {
		l.IsFurnished = *req.IsFurnished
	}
	if req.Capacity != nil {
		l.Capacity = *req.Capacity
	}
	if req.Equipment != nil {
		l.Equipment = *req.Equipment
	}
	if req.Rooms != nil {
		l.Rooms = *req.Rooms
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) UpdateStatus(
	ctx context.Context,
	userID string,
	isAdmin bool,
	id, status string,
) (*Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.UserID != userID && !isAdmin {
		return nil, fmt.Errorf("update listing status: %w", core.ErrForbidden)
	}

	if l.Status == status {
		return l, nil
	}

	if !CanTransition(l.Status, status) {
		return nil, core.BadRequestError(fmt.Sprintf(
			"cannot move listing from %q to %q", l.Status, status))
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	l.Status = status
	return l, nil
}

func (s *Service) SetFeatured(
	ctx context.Context,
	id string,
	featured bool,
) error {
	return s.repo.SetFeatured(ctx, id, featured)
}

func (s *Service) Delete(
	ctx context.Context,
	userID string,
	isAdmin bool,
	id string,
) error {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if l.UserID != userID && !isAdmin {
		return fmt.Errorf("delete listing: %w", core.ErrForbidden)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.profiles.ListingDeleted(ctx, l.UserID); err != nil {
		slog.Warn("failed to bump listings count",
			"user_id", l.UserID, "error", err)
	}

	return nil
}

func permissionError(reason string) error {
	switch reason {
	case quota.ReasonNotAuthenticated:
		return core.UnauthorizedError(reason)
	case quota.ReasonQuotaExceeded:
		return core.QuotaExceededError(reason)
	default:
		return core.ForbiddenError(reason)
	}
}
