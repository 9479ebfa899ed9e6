package repository

import (
	"food-order/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	Menu  MenuRepository
	Order OrderRepository
}

// NewMemoryRepository builds the default in-memory backend. All three
// entity views share one store so order totals see menu mutations.
func NewMemoryRepository(log *zap.Logger) *Repository {
	s := newMemoryStore(log)
	return &Repository{
		User:  &memoryUserRepository{store: s},
		Menu:  &memoryMenuRepository{store: s},
		Order: &memoryOrderRepository{store: s},
	}
}

// NewPostgresRepository builds the pgx-backed alternative backend.
func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewPostgresUserRepository(db, log),
		Menu:  NewPostgresMenuRepository(db, log),
		Order: NewPostgresOrderRepository(db, log),
	}
}
