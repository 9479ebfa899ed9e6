package usecase

import (
	"context"
	"testing"

	"food-order/internal/data/repository"
	"food-order/internal/dto/request"
	"food-order/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newMenuFixture(t *testing.T) MenuService {
	t.Helper()
	repo := repository.NewMemoryRepository(zap.NewNop())
	return NewMenuService(repo.Menu, zap.NewNop())
}

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
func strPtr(s string) *string     { return &s }

func TestMenuCreate(t *testing.T) {
	ctx := context.Background()
	svc := newMenuFixture(t)

	item, err := svc.Create(ctx, &request.MenuItemRequest{
		Name:        "Burger",
		Description: "Beef patty",
		Price:       floatPtr(9.5),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if item.Name != "Burger" || item.Price != 9.5 {
		t.Errorf("item = %+v", item)
	}
	if !item.IsAvailable {
		t.Errorf("isAvailable should default to true")
	}

	unavailable, err := svc.Create(ctx, &request.MenuItemRequest{
		Name:        "Special",
		Price:       floatPtr(20),
		IsAvailable: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if unavailable.IsAvailable {
		t.Errorf("explicit isAvailable=false ignored")
	}

	free, err := svc.Create(ctx, &request.MenuItemRequest{Name: "Water", Price: floatPtr(0)})
	if err != nil {
		t.Fatalf("Create with zero price: %v", err)
	}
	if free.Price != 0 {
		t.Errorf("zero price stored as %v", free.Price)
	}
}

func TestMenuCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newMenuFixture(t)

	tests := []struct {
		name string
		req  *request.MenuItemRequest
	}{
		{"missing name", &request.MenuItemRequest{Price: floatPtr(5)}},
		{"missing price", &request.MenuItemRequest{Name: "Burger"}},
		{"negative price", &request.MenuItemRequest{Name: "Burger", Price: floatPtr(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			if !apperr.IsKind(err, apperr.KindInvalidInput) {
				t.Errorf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestMenuGet(t *testing.T) {
	ctx := context.Background()
	svc := newMenuFixture(t)

	created, err := svc.Create(ctx, &request.MenuItemRequest{Name: "Burger", Price: floatPtr(9.5)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(ctx, uuid.MustParse(created.ID))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Burger" {
		t.Errorf("Get = %+v", got)
	}

	if _, err := svc.Get(ctx, uuid.New()); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestMenuUpdatePatch(t *testing.T) {
	ctx := context.Background()
	svc := newMenuFixture(t)

	created, err := svc.Create(ctx, &request.MenuItemRequest{
		Name:        "Burger",
		Description: "Beef patty",
		Price:       floatPtr(9.5),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id := uuid.MustParse(created.ID)

	// Only the provided fields change
	updated, err := svc.Update(ctx, id, &request.MenuItemUpdateRequest{Price: floatPtr(10.25)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Price != 10.25 {
		t.Errorf("price = %v, want 10.25", updated.Price)
	}
	if updated.Name != "Burger" || updated.Description != "Beef patty" {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	updated, err = svc.Update(ctx, id, &request.MenuItemUpdateRequest{
		Name:        strPtr("Cheeseburger"),
		IsAvailable: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Cheeseburger" || updated.IsAvailable {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.Price != 10.25 {
		t.Errorf("price reset by unrelated patch: %v", updated.Price)
	}

	if _, err := svc.Update(ctx, id, &request.MenuItemUpdateRequest{Price: floatPtr(-2)}); !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Errorf("negative price: expected invalid input, got %v", err)
	}

	if _, err := svc.Update(ctx, uuid.New(), &request.MenuItemUpdateRequest{Price: floatPtr(1)}); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("missing item: expected not found, got %v", err)
	}
}

func TestMenuRemove(t *testing.T) {
	ctx := context.Background()
	svc := newMenuFixture(t)

	created, err := svc.Create(ctx, &request.MenuItemRequest{Name: "Burger", Price: floatPtr(9.5)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id := uuid.MustParse(created.ID)

	if err := svc.Remove(ctx, id); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if err := svc.Remove(ctx, id); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestMenuList(t *testing.T) {
	ctx := context.Background()
	svc := newMenuFixture(t)

	svc.Create(ctx, &request.MenuItemRequest{Name: "A", Price: floatPtr(1)})
	svc.Create(ctx, &request.MenuItemRequest{Name: "B", Price: floatPtr(2), IsAvailable: boolPtr(false)})

	all, err := svc.List(ctx, false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("List(false) = %d, want 2", len(all))
	}

	available, err := svc.List(ctx, true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(available) != 1 || available[0].Name != "A" {
		t.Errorf("List(true) = %+v", available)
	}
}
