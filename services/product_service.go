package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"product-catalog/models"
	"product-catalog/repositories"
	"product-catalog/utils"

	"go.uber.org/zap"
)

// ImageMirror copies an image to storage we control and returns its new URL.
type ImageMirror interface {
	Mirror(ctx context.Context, sourceURL string) (string, error)
}

// ProductNotifier is told about every successfully created product.
type ProductNotifier interface {
	ProductCreated(ctx context.Context, p models.Product) error
}

const notifyTimeout = 30 * time.Second

type ProductService struct {
	store    repositories.ProductStore
	cache    repositories.ListingCache
	mirror   ImageMirror
	notifier ProductNotifier

	notifications sync.WaitGroup
}

type ProductServiceOption func(*ProductService)

func WithImageMirror(m ImageMirror) ProductServiceOption {
	return func(s *ProductService) { s.mirror = m }
}

func WithNotifier(n ProductNotifier) ProductServiceOption {
	return func(s *ProductService) { s.notifier = n }
}

func NewProductService(store repositories.ProductStore, cache repositories.ListingCache, opts ...ProductServiceOption) *ProductService {
	if cache == nil {
		cache = repositories.NoopListingCache{}
	}
	s := &ProductService{store: store, cache: cache}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitProduct validates form, rejects names already in the catalog and
// inserts the product.
//
// The duplicate check reads the whole collection and is not atomic with the
// insert. Two concurrent submissions of the same name can both pass it unless
// the store enforces uniqueness itself.
func (s *ProductService) SubmitProduct(ctx context.Context, form models.ProductForm) models.ActionResult {
	form = trimForm(form)

	if fieldErrors := validateProductForm(form); fieldErrors != nil {
		return models.ActionResult{
			Success: false,
			Message: "Validation failed. Please check your inputs.",
			Code:    models.CodeValidation,
			Errors:  fieldErrors,
		}
	}
	price, _ := parsePrice(form.Price)

	existing, err := s.store.List(ctx)
	if err != nil {
		zap.S().Errorw("duplicate check failed", "name", form.Name, "error", err)
		return storageFailure("Failed to check existing products. Please try again.", err)
	}
	if nameTaken(existing, form.Name) {
		return duplicateName(form.Name)
	}

	imageURL := utils.FixImageURL(form.ImageURL)
	if s.mirror != nil {
		mirrored, err := s.mirror.Mirror(ctx, imageURL)
		if err != nil {
			zap.S().Warnw("image mirror failed, keeping source URL", "url", imageURL, "error", err)
		} else {
			imageURL = mirrored
		}
	}

	product := &models.Product{
		Name:        form.Name,
		Description: form.Description,
		Price:       price,
		ImageURL:    imageURL,
	}
	if err := s.store.Create(ctx, product); err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			return duplicateName(form.Name)
		}
		zap.S().Errorw("error adding product to store", "name", form.Name, "error", err)
		return storageFailure("Failed to add product to database. Please try again.", err)
	}

	s.cache.Invalidate(ctx)
	zap.S().Infow("product created", "id", product.ID, "name", product.Name)

	if s.notifier != nil {
		s.notify(*product)
	}

	return models.ActionResult{
		Success: true,
		Message: "Product added successfully!",
		Data:    product,
	}
}

// notify runs the notifier off the request path. The request context is not
// used since it ends with the response.
func (s *ProductService) notify(p models.Product) {
	s.notifications.Add(1)
	go func() {
		defer s.notifications.Done()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.ProductCreated(ctx, p); err != nil {
			zap.S().Warnw("product notification failed", "id", p.ID, "error", err)
		}
	}()
}

// Wait blocks until every pending notification has finished.
func (s *ProductService) Wait() {
	s.notifications.Wait()
}

// DeleteProduct removes the product with id. No existence check is made, so
// deleting an unknown id succeeds.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) models.ActionResult {
	id = strings.TrimSpace(id)
	if id == "" {
		result := models.ActionResult{
			Success: false,
			Message: "Product ID is required.",
			Code:    models.CodeIDRequired,
		}
		result.AddError(models.FormErrorKey, result.Message)
		return result
	}

	if err := s.store.Delete(ctx, id); err != nil {
		zap.S().Errorw("error deleting product", "id", id, "error", err)
		return storageFailure("Failed to delete product.", err)
	}

	s.cache.Invalidate(ctx)
	zap.S().Infow("product deleted", "id", id)

	return models.ActionResult{
		Success: true,
		Message: "Product deleted successfully.",
	}
}

// ListProducts returns the catalog newest first, served from the listing
// cache while it is fresh.
//
// A read that overlaps a write can store its pre-write result after the
// write's Invalidate. That listing stays stale until the cache TTL expires.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if products, ok := s.cache.Get(ctx); ok {
		return products, nil
	}

	products, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	s.cache.Set(ctx, products)
	return products, nil
}

// FindDuplicateNames groups live products whose names collide ignoring case.
// Each group is ordered oldest first, and groups are ordered by their oldest member.
func (s *ProductService) FindDuplicateNames(ctx context.Context) ([]models.DuplicateGroup, error) {
	products, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	byName := map[string][]models.Product{}
	var order []string
	for _, p := range products {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if _, seen := byName[key]; !seen {
			order = append(order, key)
		}
		byName[key] = append(byName[key], p)
	}

	groups := []models.DuplicateGroup{}
	for _, key := range order {
		members := byName[key]
		if len(members) < 2 {
			continue
		}
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].CreatedAt.Before(members[j].CreatedAt)
		})
		groups = append(groups, models.DuplicateGroup{Name: members[0].Name, Products: members})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Products[0].CreatedAt.Before(groups[j].Products[0].CreatedAt)
	})
	return groups, nil
}

func nameTaken(products []models.Product, name string) bool {
	for _, p := range products {
		if strings.EqualFold(strings.TrimSpace(p.Name), name) {
			return true
		}
	}
	return false
}

func duplicateName(name string) models.ActionResult {
	result := models.ActionResult{
		Success: false,
		Message: fmt.Sprintf("A product named %q already exists.", name),
		Code:    models.CodeDuplicateName,
	}
	result.AddError("name", "A product with this name already exists.")
	return result
}

func storageFailure(base string, err error) models.ActionResult {
	msg := base
	if code := repositories.StorageErrorCode(err); code != "" {
		msg += fmt.Sprintf(" (Error code: %s)", code)
	} else if err != nil && err.Error() != "" {
		msg += fmt.Sprintf(" (%s)", err.Error())
	}

	result := models.ActionResult{
		Success: false,
		Message: msg,
		Code:    models.CodeStorage,
	}
	result.AddError(models.FormErrorKey, msg)
	return result
}
