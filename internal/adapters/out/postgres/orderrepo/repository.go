package orderrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const claimReadySQL = `
UPDATE orders
SET courier_id = ?, status = ?, picked_at = ?
WHERE id = ?
  AND courier_id IS NULL
  AND status = ?
  AND NOT EXISTS (
    SELECT 1 FROM orders busy WHERE busy.courier_id = ? AND busy.status = ?
  )`

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker transitionTracker
}

// transitionTracker collects the status changes to flush on commit.
type transitionTracker interface {
	TrackTransitions(transitions ...order.Transition)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker transitionTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err, ConsumerActiveIndex) {
			return errs.NewConflictErrorWithCause("consumer has active order", err)
		}
		if isNumericOverflow(err) {
			return errs.NewValueIsInvalidErrorWithCause("total", err)
		}
		return err
	}

	r.track(aggregate)
	return nil
}

// Update saves status, courier and pick-up time. Line items and the total
// are immutable and never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":     dto.Status,
		"courier_id": dto.CourierID,
		"picked_at":  dto.PickedAt,
	})
	if result.Error != nil {
		if isUniqueViolation(result.Error, CourierOnTheWayIndex) {
			return errs.NewCourierBusyError(aggregate.Courier())
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.track(aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order by ID and locks its row (SELECT ... FOR UPDATE).
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// HasActiveOrder reports whether the consumer has an order that is not delivered.
func (r *GormOrderRepository) HasActiveOrder(ctx context.Context, consumerID kernel.UUID) (bool, error) {
	if err := consumerID.Validate(); err != nil {
		return false, err
	}

	var exists bool
	err := r.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM orders WHERE consumer_id = ? AND status <> ?)",
			consumerID.Bytes(), int(order.Delivered)).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ClaimReady binds the courier with a single conditional update. The
// predicate (From) and target (To) come from the claim transition; losing a
// race shows up as zero affected rows and is classified afterwards.
func (r *GormOrderRepository) ClaimReady(ctx context.Context, claim order.Transition) (*order.Order, error) {
	if err := claim.Validate(); err != nil {
		return nil, err
	}

	orderID := claim.OrderID()
	courierID := claim.ActorID()

	result := r.db.WithContext(ctx).Exec(claimReadySQL,
		courierID.Bytes(), int(claim.To()), claim.OccurredAt(),
		orderID.Bytes(),
		int(claim.From()),
		courierID.Bytes(), int(claim.To()),
	)
	if result.Error != nil {
		// The transaction is aborted after a constraint error, so no
		// follow-up classification query is possible here.
		if isUniqueViolation(result.Error, CourierOnTheWayIndex) {
			return nil, errs.NewCourierBusyError(courierID.String())
		}
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, r.classifyFailedClaim(ctx, claim)
	}

	r.tracker.TrackTransitions(claim)
	return r.Get(ctx, orderID)
}

func (r *GormOrderRepository) classifyFailedClaim(ctx context.Context, claim order.Transition) error {
	var busy, exists bool

	err := r.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM orders WHERE courier_id = ? AND status = ?)",
			claim.ActorID().Bytes(), int(claim.To())).
		Scan(&busy).Error
	if err != nil {
		return err
	}
	if busy {
		return errs.NewCourierBusyError(claim.ActorID().String())
	}

	err = r.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)", claim.OrderID().Bytes()).
		Scan(&exists).Error
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("order", claim.OrderID().String())
	}

	return errs.NewAlreadyClaimedError(claim.OrderID().String())
}

func (r *GormOrderRepository) get(ctx context.Context, query *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("position").
		Find(&dto.Items).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	r.tracker.TrackTransitions(aggregate.PendingTransitions()...)
	aggregate.ClearPendingTransitions()
}
