// Package postgres provides the GORM-based Unit of Work for the dispatch
// use cases and the schema migration.
//
// A unit of work owns one database transaction. Repositories obtained from it
// run inside that transaction and report order transitions back to it; on
// Commit the unit of work appends them to order_status_history and to the
// outbox before committing, so the audit trail and the published events can
// never disagree with the order rows.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Exclusivity is enforced by the store: conditional updates, partial
//     unique indexes and row locks
package postgres

import (
	"context"
	"errors"

	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/outboxrepo"
	"fooddelivery/internal/adapters/out/postgres/tokenrepo"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db         *gorm.DB
	eventTopic string
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// eventTopic is the outbox topic that order.changed events are written to.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, "order.changed")
func NewGormUnitOfWorkFactory(db *gorm.DB, eventTopic string) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, eventTopic: eventTopic}
}

// Create produces a new UnitOfWork instance.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                 f.db,
		eventTopic:         f.eventTopic,
		trackedTransitions: make([]order.Transition, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and the order
// transitions recorded during it.
type GormUnitOfWork struct {
	db                 *gorm.DB
	tx                 *gorm.DB
	eventTopic         string
	trackedTransitions []order.Transition
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes tracked transitions to the status history and the outbox,
// then commits. If flushing fails the transaction is rolled back.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flush(ctx); err != nil {
		return errors.Join(err, uow.Rollback(ctx))
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedTransitions = uow.trackedTransitions[:0]
	return err
}

// Rollback discards all changes made within the current transaction.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedTransitions = uow.trackedTransitions[:0]
	return err
}

// OrderRepository provides access to order persistence within the unit of work.
// Without an active transaction the repository uses the main connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// MealRepository provides read access to the meal catalog within the unit of work.
func (uow *GormUnitOfWork) MealRepository() ports.MealRepository {
	return catalogrepo.NewGormMealRepository(uow.conn())
}

// OutboxRepository provides access to pending outbox messages within the unit of work.
func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// AccessTokenRepository provides token maintenance within the unit of work.
func (uow *GormUnitOfWork) AccessTokenRepository() ports.AccessTokenRepository {
	return tokenrepo.NewGormAccessTokenRepository(uow.conn())
}

// TrackTransitions registers order transitions to be flushed on Commit.
// Called by repository implementations after a successful write.
func (uow *GormUnitOfWork) TrackTransitions(transitions ...order.Transition) {
	uow.trackedTransitions = append(uow.trackedTransitions, transitions...)
}

func (uow *GormUnitOfWork) flush(ctx context.Context) error {
	if len(uow.trackedTransitions) == 0 {
		return nil
	}

	if err := orderrepo.NewGormStatusHistory(uow.tx).Append(ctx, uow.trackedTransitions); err != nil {
		return err
	}

	return outboxrepo.NewGormOutboxRepository(uow.tx).AddTransitions(ctx, uow.eventTopic, uow.trackedTransitions)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
