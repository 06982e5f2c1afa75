// Package postgres holds the GORM unit of work and the schema migration for
// the order and promotion tables.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin run on the plain connection and commit
// immediately. Each UnitOfWork owns one transaction, so goroutines must not
// share an instance.
package postgres

import (
	"context"

	"shiporder/internal/adapters/out/postgres/orderrepo"
	"shiporder/internal/core/domain/model/kernel"
	"shiporder/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written through the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory hands out one unit of work per command, all sharing
// the same connection pool.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatalf("Error connecting to database: %v", err)
//	}
//	factory := NewGormUnitOfWorkFactory(db)
//	handler := commands.NewChangeOrderCommandHandler(factory, quoter, publisher, logger)
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with its own transaction state and an
// empty list of tracked aggregates.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork wraps one GORM transaction and records every order aggregate
// the repositories add or update inside it.
//
// Orders read through OrderRepository inside the transaction are locked until
// Commit or Rollback, so two commands editing the same order run one after
// the other.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("begin: %w", err)
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	repo := uow.OrderRepository()
//	o, err := repo.Get(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	if err := o.Cancel(); err != nil {
//	    return err
//	}
//	if err := repo.Update(ctx, o); err != nil {
//	    return fmt.Errorf("update order: %w", err)
//	}
//
//	return uow.Commit(ctx)
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Repositories obtained afterwards run inside it.
// A second call while one is open is a no-op, so nested helpers may call
// Begin without opening a nested transaction. A failed Begin leaves the unit
// of work without a transaction and it may be retried.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("begin: %w", err)
//	}
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

// Commit makes every write of the transaction durable and releases the row
// locks taken by OrderRepository().Get. The transaction is closed afterwards;
// call Begin again to start another one.
//
// Returns gorm.ErrInvalidTransaction when no transaction is open.
//
// Example:
//
//	if err := repo.Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.Commit(ctx); err != nil {
//	    return fmt.Errorf("commit: %w", err)
//	}
//	publisher.PublishOrderChanged(ctx, o)
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the writes of the transaction and forgets the aggregates
// tracked in it.
//
// Returns gorm.ErrInvalidTransaction when no transaction is open, which makes
// the deferred Rollback that follows a successful Commit harmless.
//
// Example:
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := o.Apply(changes); err != nil {
//	    return err // rolled back by the deferred call
//	}
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns a repository bound to the open transaction, or to
// the plain connection when Begin has not been called, in which case every
// call commits on its own and Get takes no lasting lock.
//
// The repository reports each order it adds or updates back to the unit of
// work through TrackAggregate.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// TrackAggregate is called by the repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
