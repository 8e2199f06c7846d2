package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"product-catalog/models"

	"github.com/google/uuid"
)

// MemoryProductRepository keeps products in process memory. It enforces no
// name uniqueness, so duplicate detection relies entirely on the write path.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
	now      func() time.Time
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: map[string]models.Product{},
		now:      time.Now,
	}
}

func (r *MemoryProductRepository) Create(ctx context.Context, p *models.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = r.now().UTC()
	r.products[p.ID] = *p
	return nil
}

func (r *MemoryProductRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}

func (r *MemoryProductRepository) List(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	products := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	r.mu.RUnlock()

	sort.SliceStable(products, func(i, j int) bool {
		if products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].ID > products[j].ID
		}
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}
