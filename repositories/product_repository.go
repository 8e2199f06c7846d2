package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"product-catalog/models"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductStore is the document store contract the write path depends on.
type ProductStore interface {
	// Create inserts p, filling in ID and CreatedAt.
	Create(ctx context.Context, p *models.Product) error
	// Delete removes the product with id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
	// List returns every product, newest first.
	List(ctx context.Context) ([]models.Product, error)
}

// ErrDuplicateName is returned when the store itself rejects a name that
// collides with an existing product.
var ErrDuplicateName = errors.New("product name already exists")

// StoreError tags an error raised by our own store code with a short code.
type StoreError struct {
	Code string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// StorageErrorCode extracts a diagnostic code from a driver error, or "" when
// the error carries none.
func StorageErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		if len(writeErr.WriteErrors) > 0 {
			return strconv.Itoa(writeErr.WriteErrors[0].Code)
		}
		if writeErr.WriteConcernError != nil {
			return strconv.Itoa(writeErr.WriteConcernError.Code)
		}
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Name != "" {
			return cmdErr.Name
		}
		return strconv.Itoa(int(cmdErr.Code))
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "deadline-exceeded"
	}
	if errors.Is(err, context.Canceled) {
		return "cancelled"
	}
	return ""
}
