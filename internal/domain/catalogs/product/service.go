package product

import (
	"context"
	"fmt"

	"stocktake/internal/core/apperror"
	"stocktake/internal/domain/notify"
	"stocktake/pkg/logger"
)

// Service provides business operations for the product catalog.
type Service struct {
	repo  Repository
	relay *notify.Relay
}

// NewService creates a new product service.
func NewService(repo Repository, relay *notify.Relay) *Service {
	return &Service{
		repo:  repo,
		relay: relay,
	}
}

// List returns all live products.
func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

// Get returns one product by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	return s.repo.Get(ctx, id)
}

// Add creates a product. The code must be unique among live products.
func (s *Service) Add(ctx context.Context, p *Product) (*Product, error) {
	if err := p.Validate(ctx); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByCode(ctx, p.Code)
	if err != nil {
		return nil, fmt.Errorf("check code: %w", err)
	}
	if existing != nil {
		return nil, apperror.NewDuplicateCode(p.Code)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	logger.Info(ctx, "product added",
		"product_id", p.ID,
		"code", p.Code,
	)
	s.relay.Publish(
		fmt.Sprintf("Product %q has been added successfully!", p.Name),
		notify.SeveritySuccess,
	)

	return p, nil
}

// Edit applies a partial update. Code uniqueness is re-validated only when
// the code itself changes.
func (s *Service) Edit(ctx context.Context, id int64, patch Patch) (*Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Code != nil && *patch.Code != p.Code {
		existing, err := s.repo.FindByCode(ctx, *patch.Code)
		if err != nil {
			return nil, fmt.Errorf("check code: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.NewDuplicateCode(*patch.Code)
		}
	}

	patch.Apply(p)
	if err := p.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	logger.Info(ctx, "product updated", "product_id", p.ID)
	s.relay.Publish(
		fmt.Sprintf("Product %q has been updated successfully!", p.Name),
		notify.SeveritySuccess,
	)

	return p, nil
}

// Adjust steps the on-hand quantity by delta, clamping at zero.
// Under-adjustment silently clamps rather than failing.
func (s *Service) Adjust(ctx context.Context, id int64, delta int64) (*Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next := p.Quantity + delta
	if next < 0 {
		next = 0
	}
	p.Quantity = next

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	logger.Info(ctx, "product quantity adjusted",
		"product_id", p.ID,
		"delta", delta,
		"quantity", p.Quantity,
	)
	s.relay.Publish(
		fmt.Sprintf("Quantity for %q has been updated!", p.Name),
		notify.SeverityInfo,
	)

	return p, nil
}

// Remove deletes a product. Historical orders keep their denormalized name
// snapshots, so they stay readable after the product disappears.
func (s *Service) Remove(ctx context.Context, id int64) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info(ctx, "product removed",
		"product_id", id,
		"code", p.Code,
	)
	s.relay.Publish(
		fmt.Sprintf("Product %q has been deleted successfully!", p.Name),
		notify.SeveritySuccess,
	)

	return nil
}
