package sales

import (
	"context"
	"fmt"

	"stocktake/internal/core/apperror"
	"stocktake/internal/domain/catalogs/product"
	"stocktake/internal/domain/notify"
	"stocktake/internal/domain/posting"
	"stocktake/pkg/logger"
)

// Service provides business operations for the sales order ledger.
type Service struct {
	repo     Repository
	products product.Repository
	engine   *posting.Engine
	relay    *notify.Relay
}

// NewService creates a new sales order service.
func NewService(repo Repository, products product.Repository, engine *posting.Engine, relay *notify.Relay) *Service {
	return &Service{
		repo:     repo,
		products: products,
		engine:   engine,
		relay:    relay,
	}
}

// List returns all sales orders.
func (s *Service) List(ctx context.Context) ([]*SalesOrder, error) {
	return s.repo.List(ctx)
}

// Get returns one sales order by ID.
func (s *Service) Get(ctx context.Context, id int64) (*SalesOrder, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the order, posts its stock movements and appends it to
// the ledger. The engine checks every line against current stock before any
// mutation: if any line exceeds availability the whole order is rejected
// with all shortages reported, and no product quantity changes.
func (s *Service) Create(ctx context.Context, o *SalesOrder) (*SalesOrder, error) {
	if err := o.Validate(ctx); err != nil {
		return nil, err
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	if !o.Status.IsValid() {
		return nil, apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(o.Status))
	}

	// Snapshot product names into the lines so the order stays readable
	// after a product is edited or removed.
	for i := range o.Lines {
		p, err := s.products.Get(ctx, o.Lines[i].ProductID)
		if err != nil {
			return nil, err
		}
		o.Lines[i].Name = p.Name
	}

	if err := s.engine.Post(ctx, o); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("append order: %w", err)
	}

	logger.Info(ctx, "sales order created",
		"order_id", o.ID,
		"customer", o.Customer,
		"lines", len(o.Lines),
		"total_amount", o.TotalAmount,
	)
	s.relay.Publish(
		fmt.Sprintf("Sales order #%d for %s has been added and inventory has been updated!", o.ID, o.Customer),
		notify.SeveritySuccess,
	)

	return o, nil
}

// SetStatus moves the order to any of the known statuses. No transition is
// rejected, and no inventory adjustment happens: cancelling a sales order
// does not return items to inventory.
func (s *Service) SetStatus(ctx context.Context, id int64, status Status) (*SalesOrder, error) {
	if !status.IsValid() {
		return nil, apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(status))
	}

	o, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "sales order status changed",
		"order_id", o.ID,
		"status", status,
	)

	if status == StatusCancelled {
		s.relay.Publish(
			fmt.Sprintf("Sales order #%d for %s has been cancelled. Note: This does not automatically return items to inventory.", o.ID, o.Customer),
			notify.SeverityWarning,
		)
	} else {
		s.relay.Publish(
			fmt.Sprintf("Sales order #%d for %s status changed to %s", o.ID, o.Customer, status),
			notify.SeveritySuccess,
		)
	}

	return o, nil
}
