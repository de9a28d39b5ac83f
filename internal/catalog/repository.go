package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stride-commerce/stride/internal/platform/httpx"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Repository defines persistence operations for the catalog.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id int64, product Product) (Product, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL-backed repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	const query = `
		SELECT id, sku, name, price, image, description, created_at, updated_at
		FROM products ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Price, &p.Image, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("catalog: scan: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	const query = `
		SELECT id, sku, name, price, image, description, created_at, updated_at
		FROM products WHERE id = $1`
	var p Product
	err := r.db.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.SKU, &p.Name, &p.Price, &p.Image, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, fmt.Errorf("product not found: %w", httpx.ErrNotFound)
		}
		return Product{}, fmt.Errorf("catalog: get: %w", err)
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	const query = `
		INSERT INTO products (sku, name, price, image, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, product.SKU, product.Name, product.Price, product.Image, product.Description).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Product{}, fmt.Errorf("sku already exists: %w", httpx.ErrDuplicate)
		}
		return Product{}, fmt.Errorf("catalog: create: %w", err)
	}
	return product, nil
}

func (r *repository) Update(ctx context.Context, id int64, product Product) (Product, error) {
	const query = `
		UPDATE products
		SET sku = $1, name = $2, price = $3, image = $4, description = $5, updated_at = now()
		WHERE id = $6
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, product.SKU, product.Name, product.Price, product.Image, product.Description, id).
		Scan(&product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, fmt.Errorf("product not found: %w", httpx.ErrNotFound)
		}
		if isUniqueViolation(err) {
			return Product{}, fmt.Errorf("sku already exists: %w", httpx.ErrDuplicate)
		}
		return Product{}, fmt.Errorf("catalog: update: %w", err)
	}
	product.ID = id
	return product, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("catalog: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product not found: %w", httpx.ErrNotFound)
	}
	return nil
}
