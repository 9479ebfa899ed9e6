package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"food-order/internal/data/entity"
	"food-order/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// memoryStore holds the three entity collections in process memory. One
// RWMutex guards all of them: net/http serves requests concurrently, and
// the store is the only shared state. Records are copied on the way in and
// out so callers never hold a reference into the collections.
type memoryStore struct {
	mu        sync.RWMutex
	users     []entity.User
	menuItems []entity.MenuItem
	orders    []entity.Order
	log       *zap.Logger
}

func newMemoryStore(log *zap.Logger) *memoryStore {
	return &memoryStore{
		log: log.With(zap.String("repository", "memory")),
	}
}

// ==================== USERS ====================

type memoryUserRepository struct {
	store *memoryStore
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, *user)
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*entity.User, 0, len(s.users))
	for i := range s.users {
		user := s.users[i]
		users = append(users, &user)
	}
	return users, nil
}

// ==================== MENU ====================

type memoryMenuRepository struct {
	store *memoryStore
}

func (r *memoryMenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.menuItems = append(s.menuItems, *item)
	return nil
}

func (r *memoryMenuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if item := s.findMenuItem(id); item != nil {
		found := *item
		return &found, nil
	}
	return nil, nil
}

func (r *memoryMenuRepository) FindAll(ctx context.Context, onlyAvailable bool) ([]*entity.MenuItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*entity.MenuItem, 0, len(s.menuItems))
	for i := range s.menuItems {
		if onlyAvailable && !s.menuItems[i].IsAvailable {
			continue
		}
		item := s.menuItems[i]
		items = append(items, &item)
	}
	return items, nil
}

func (r *memoryMenuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menuItems {
		if s.menuItems[i].ID == item.ID {
			s.menuItems[i] = *item
			return nil
		}
	}
	return apperr.New(apperr.KindNotFound, "Menu item not found")
}

func (r *memoryMenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menuItems {
		if s.menuItems[i].ID == id {
			s.menuItems = append(s.menuItems[:i], s.menuItems[i+1:]...)
			s.log.Info("Menu item deleted", zap.String("menu_item_id", id.String()))
			return nil
		}
	}
	return apperr.New(apperr.KindNotFound, "Menu item not found")
}

func (r *memoryMenuRepository) ComputeOrderTotal(ctx context.Context, items []entity.OrderItem) (float64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, it := range items {
		item := s.findMenuItem(it.MenuItemID)
		if item == nil || !item.IsAvailable {
			return 0, apperr.New(apperr.KindInvalidInput, "Menu item unavailable")
		}
		total += item.Price * float64(it.Quantity)
	}
	return roundTotal(total), nil
}

// caller must hold the lock
func (s *memoryStore) findMenuItem(id uuid.UUID) *entity.MenuItem {
	for i := range s.menuItems {
		if s.menuItems[i].ID == id {
			return &s.menuItems[i]
		}
	}
	return nil
}

// ==================== ORDERS ====================

type memoryOrderRepository struct {
	store *memoryStore
}

func (r *memoryOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *order
	stored.Items = append([]entity.OrderItem(nil), order.Items...)
	s.orders = append(s.orders, stored)
	return nil
}

func (r *memoryOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			order := copyOrder(&s.orders[i])
			return order, nil
		}
	}
	return nil, nil
}

func (r *memoryOrderRepository) FindAll(ctx context.Context, filter OrderFilter) ([]*entity.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []*entity.Order
	for i := range s.orders {
		if filter.UserID != nil && s.orders[i].UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && s.orders[i].Status != *filter.Status {
			continue
		}
		orders = append(orders, copyOrder(&s.orders[i]))
	}
	return orders, nil
}

func (r *memoryOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now()
			return copyOrder(&s.orders[i]), nil
		}
	}
	return nil, nil
}

func copyOrder(order *entity.Order) *entity.Order {
	c := *order
	c.Items = append([]entity.OrderItem(nil), order.Items...)
	return &c
}
