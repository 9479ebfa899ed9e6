package usecase

import (
	"context"
	"time"

	"food-order/internal/data/entity"
	"food-order/internal/data/repository"
	"food-order/internal/dto/request"
	"food-order/internal/dto/response"
	"food-order/pkg/apperr"
	"food-order/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MenuService interface {
	List(ctx context.Context, onlyAvailable bool) ([]response.MenuItemResponse, error)
	Create(ctx context.Context, req *request.MenuItemRequest) (*response.MenuItemResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*response.MenuItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.MenuItemUpdateRequest) (*response.MenuItemResponse, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type menuService struct {
	menu repository.MenuRepository
	log  *zap.Logger
}

func NewMenuService(menu repository.MenuRepository, log *zap.Logger) MenuService {
	return &menuService{
		menu: menu,
		log:  log.With(zap.String("service", "menu")),
	}
}

func (s *menuService) List(ctx context.Context, onlyAvailable bool) ([]response.MenuItemResponse, error) {
	items, err := s.menu.FindAll(ctx, onlyAvailable)
	if err != nil {
		s.log.Error("Failed to list menu items", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to list menu items", err)
	}

	return response.MenuItemsToResponse(items), nil
}

func (s *menuService) Create(ctx context.Context, req *request.MenuItemRequest) (*response.MenuItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create menu item validation failed", zap.Any("errors", errs))
		return nil, apperr.Newf(apperr.KindInvalidInput, "Validation failed: %s", utils.FormatValidationErrors(errs))
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	now := time.Now()
	item := &entity.MenuItem{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		IsAvailable: isAvailable,
	}

	if err := s.menu.Create(ctx, item); err != nil {
		s.log.Error("Failed to create menu item", zap.Error(err), zap.String("name", req.Name))
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to create menu item", err)
	}

	s.log.Info("Menu item created",
		zap.String("menu_item_id", item.ID.String()),
		zap.String("name", item.Name))

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) Get(ctx context.Context, id uuid.UUID) (*response.MenuItemResponse, error) {
	item, err := s.menu.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find menu item", zap.Error(err), zap.String("menu_item_id", id.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to find menu item", err)
	}
	if item == nil {
		return nil, apperr.New(apperr.KindNotFound, "Menu item not found")
	}

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) Update(ctx context.Context, id uuid.UUID, req *request.MenuItemUpdateRequest) (*response.MenuItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update menu item validation failed", zap.Any("errors", errs))
		return nil, apperr.Newf(apperr.KindInvalidInput, "Validation failed: %s", utils.FormatValidationErrors(errs))
	}

	item, err := s.menu.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find menu item", zap.Error(err), zap.String("menu_item_id", id.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to find menu item", err)
	}
	if item == nil {
		return nil, apperr.New(apperr.KindNotFound, "Menu item not found")
	}

	// Apply the patch field by field
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	item.UpdatedAt = time.Now()

	if err := s.menu.Update(ctx, item); err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, err
		}
		s.log.Error("Failed to update menu item", zap.Error(err), zap.String("menu_item_id", id.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to update menu item", err)
	}

	s.log.Info("Menu item updated", zap.String("menu_item_id", id.String()))

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.menu.Delete(ctx, id); err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return err
		}
		s.log.Error("Failed to delete menu item", zap.Error(err), zap.String("menu_item_id", id.String()))
		return apperr.Wrap(apperr.KindInternal, "Failed to delete menu item", err)
	}

	return nil
}
