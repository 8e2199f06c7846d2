package repositories

import (
	"context"
	"errors"
	"fmt"

	"product-catalog/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	pgUniqueViolation           = "23505"
	pgInvalidTextRepresentation = "22P02"
)

type PostgresProductRepository struct {
	db *pgxpool.Pool
}

func NewPostgresProductRepository(db *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (name, description, price, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, created_at
	`
	err := r.db.QueryRow(ctx, query, p.Name, p.Description, p.Price, p.ImageURL).
		Scan(&p.ID, &p.CreatedAt)
	return insertError(err)
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return deleteError(id, err)
}

func (r *PostgresProductRepository) List(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id::text, name, description, price, image_url, created_at
	          FROM products ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func insertError(err error) error {
	if err == nil {
		return nil
	}
	if pgErrorCode(err) == pgUniqueViolation {
		return fmt.Errorf("%w: %v", ErrDuplicateName, err)
	}
	return fmt.Errorf("failed to insert product: %w", err)
}

// deleteError treats an id the uuid column cannot parse as a missing row.
func deleteError(id string, err error) error {
	if err == nil {
		return nil
	}
	if pgErrorCode(err) == pgInvalidTextRepresentation {
		zap.S().Debugf("Delete of non-UUID %q matched nothing", id)
		return nil
	}
	return fmt.Errorf("failed to delete product: %w", err)
}
