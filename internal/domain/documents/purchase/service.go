package purchase

import (
	"context"
	"fmt"

	"stocktake/internal/core/apperror"
	"stocktake/internal/domain/catalogs/product"
	"stocktake/internal/domain/notify"
	"stocktake/internal/domain/posting"
	"stocktake/pkg/logger"
)

// Service provides business operations for the purchase order ledger.
type Service struct {
	repo     Repository
	products product.Repository
	engine   *posting.Engine
	relay    *notify.Relay
}

// NewService creates a new purchase order service.
func NewService(repo Repository, products product.Repository, engine *posting.Engine, relay *notify.Relay) *Service {
	return &Service{
		repo:     repo,
		products: products,
		engine:   engine,
		relay:    relay,
	}
}

// List returns all purchase orders.
func (s *Service) List(ctx context.Context) ([]*PurchaseOrder, error) {
	return s.repo.List(ctx)
}

// Get returns one purchase order by ID.
func (s *Service) Get(ctx context.Context, id int64) (*PurchaseOrder, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the order, posts its stock movements (every line adds
// quantity to the referenced product) and appends it to the ledger.
// Posting runs exactly once, here; it is never re-applied on status change.
func (s *Service) Create(ctx context.Context, o *PurchaseOrder) (*PurchaseOrder, error) {
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

	logger.Info(ctx, "purchase order created",
		"order_id", o.ID,
		"distributor", o.Distributor,
		"lines", len(o.Lines),
		"total_cost", o.TotalCost,
	)
	s.relay.Publish(
		fmt.Sprintf("Purchase order #%d from %s has been added and inventory has been updated!", o.ID, o.Distributor),
		notify.SeveritySuccess,
	)

	return o, nil
}

// SetStatus moves the order to any of the known statuses. No transition is
// rejected, and no inventory adjustment happens: cancelling a purchase order
// does not remove the stock it added.
func (s *Service) SetStatus(ctx context.Context, id int64, status Status) (*PurchaseOrder, error) {
	if !status.IsValid() {
		return nil, apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(status))
	}

	o, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "purchase order status changed",
		"order_id", o.ID,
		"status", status,
	)
	s.relay.Publish(
		fmt.Sprintf("Purchase order #%d from %s status changed to %s", o.ID, o.Distributor, status),
		notify.SeveritySuccess,
	)

	return o, nil
}
