package repository

import (
	"context"
	"fmt"

	"food-order/internal/data/entity"
	"food-order/pkg/apperr"
	"food-order/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	FindAll(ctx context.Context, onlyAvailable bool) ([]*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ComputeOrderTotal sums price*quantity over the line items, rounded
	// half-up to 2 decimals. Unknown or unavailable items fail with an
	// invalid-input error.
	ComputeOrderTotal(ctx context.Context, items []entity.OrderItem) (float64, error)
}

type postgresMenuRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresMenuRepository(db database.PgxIface, log *zap.Logger) MenuRepository {
	return &postgresMenuRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu")),
	}
}

func (r *postgresMenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, name, description, price, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.IsAvailable,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create menu item",
			zap.Error(err),
			zap.String("name", item.Name),
		)
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	return nil
}

func (r *postgresMenuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	query := `
		SELECT id, name, description, price, is_available, created_at, updated_at
		FROM menu_items
		WHERE id = $1
	`

	var item entity.MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.IsAvailable,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find menu item by ID",
			zap.Error(err),
			zap.String("menu_item_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find menu item: %w", err)
	}

	return &item, nil
}

func (r *postgresMenuRepository) FindAll(ctx context.Context, onlyAvailable bool) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, name, description, price, is_available, created_at, updated_at
		FROM menu_items
	`
	if onlyAvailable {
		query += ` WHERE is_available = TRUE`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all menu items",
			zap.Error(err),
			zap.Bool("only_available", onlyAvailable),
		)
		return nil, fmt.Errorf("failed to find menu items: %w", err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		var item entity.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.IsAvailable,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan menu item row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return items, nil
}

func (r *postgresMenuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, is_available = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.IsAvailable,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update menu item",
			zap.Error(err),
			zap.String("menu_item_id", item.ID.String()),
		)
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "Menu item not found")
	}

	return nil
}

func (r *postgresMenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM menu_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete menu item",
			zap.Error(err),
			zap.String("menu_item_id", id.String()),
		)
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "Menu item not found")
	}

	r.log.Info("Menu item deleted", zap.String("menu_item_id", id.String()))
	return nil
}

func (r *postgresMenuRepository) ComputeOrderTotal(ctx context.Context, items []entity.OrderItem) (float64, error) {
	total := 0.0
	for _, it := range items {
		item, err := r.FindByID(ctx, it.MenuItemID)
		if err != nil {
			return 0, err
		}
		if item == nil || !item.IsAvailable {
			return 0, apperr.New(apperr.KindInvalidInput, "Menu item unavailable")
		}
		total += item.Price * float64(it.Quantity)
	}
	return roundTotal(total), nil
}
