package repositories

import (
	"context"
	"testing"
	"time"

	"product-catalog/models"
)

func TestMemoryProductRepositoryLifecycle(t *testing.T) {
	repo := NewMemoryProductRepository()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	ctx := context.Background()

	first := &models.Product{Name: "First", Description: "first product", Price: 1, ImageURL: "https://example.com/1.png"}
	second := &models.Product{Name: "Second", Description: "second product", Price: 2, ImageURL: "https://example.com/2.png"}
	for _, p := range []*models.Product{first, second} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if p.ID == "" || p.CreatedAt.IsZero() {
			t.Fatalf("Create did not assign id and timestamp: %+v", p)
		}
	}
	if first.ID == second.ID {
		t.Fatal("Create assigned the same id twice")
	}

	products, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(products) != 2 || products[0].ID != second.ID || products[1].ID != first.ID {
		t.Fatalf("List is not newest first: %+v", products)
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("second Delete of the same id returned error: %v", err)
	}
	if err := repo.Delete(ctx, "does-not-exist"); err != nil {
		t.Fatalf("Delete of unknown id returned error: %v", err)
	}

	products, _ = repo.List(ctx)
	if len(products) != 1 || products[0].ID != second.ID {
		t.Fatalf("unexpected products after delete: %+v", products)
	}
}

func TestMemoryProductRepositoryHonoursCancelledContext(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Create(ctx, &models.Product{Name: "x"}); err == nil {
		t.Error("Create should fail on a cancelled context")
	}
	if _, err := repo.List(ctx); err == nil {
		t.Error("List should fail on a cancelled context")
	}
}
