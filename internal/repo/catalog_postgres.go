package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hubhand/storefront/internal/models"
)

const productColumns = `id, name, description, price, category, stock_quantity, is_active, created_at, updated_at`

const queryTimeout = 3 * time.Second

// PostgresCatalogRepository reads the products table through database/sql.
type PostgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

// withViewer runs fn inside a read-only transaction with the caller's
// identity claims exposed as request.jwt.claims, so row-level policies in
// the store can evaluate them. The setting is transaction-local and the
// claims are attached fresh on every call.
func (r *PostgresCatalogRepository) withViewer(ctx context.Context, viewer string, fn func(ctx context.Context, tx *sql.Tx) error) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("begin catalog query: %w", err)
	}
	defer tx.Rollback()

	if viewer != "" {
		if _, err := tx.ExecContext(ctx, `SELECT set_config('request.jwt.claims', $1, true)`, viewer); err != nil {
			return fmt.Errorf("attach viewer claims: %w", err)
		}
	}

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresCatalogRepository) All(ctx context.Context, viewer string) ([]models.Product, error) {
	var products []models.Product
	err := r.withViewer(ctx, viewer, func(ctx context.Context, tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT `+productColumns+` FROM products WHERE is_active = true ORDER BY created_at DESC`)
		if err != nil {
			return err
		}
		products, err = scanProducts(rows)
		return err
	})
	return products, err
}

func (r *PostgresCatalogRepository) ByCategory(ctx context.Context, viewer, category string) ([]models.Product, error) {
	var products []models.Product
	err := r.withViewer(ctx, viewer, func(ctx context.Context, tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT `+productColumns+` FROM products WHERE is_active = true AND category = $1 ORDER BY created_at DESC`,
			category)
		if err != nil {
			return err
		}
		products, err = scanProducts(rows)
		return err
	})
	return products, err
}

// Page returns one sorted page of the filtered catalog plus the count of all
// rows matching the filter. The count ignores the limit/offset range but
// respects the category filter.
func (r *PostgresCatalogRepository) Page(ctx context.Context, viewer string, req PageRequest) ([]models.Product, int, error) {
	req = req.normalized()
	conditions, args, argIdx := pageConditions(req.Category)

	var (
		products []models.Product
		total    int
	)
	err := r.withViewer(ctx, viewer, func(ctx context.Context, tx *sql.Tx) error {
		countQuery := `SELECT COUNT(*) FROM products` + conditions
		if err := tx.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
			return err
		}

		query := `SELECT ` + productColumns + ` FROM products` + conditions +
			` ORDER BY ` + req.Sort.orderClause() +
			fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		rows, err := tx.QueryContext(ctx, query, append(args, req.Limit, req.Offset)...)
		if err != nil {
			return err
		}
		products, err = scanProducts(rows)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ByID returns (nil, nil) when no active row matches the identifier. The
// store's no-row signal is the only condition mapped to not-found; every
// other failure surfaces as an error.
func (r *PostgresCatalogRepository) ByID(ctx context.Context, viewer string, id uuid.UUID) (*models.Product, error) {
	var product *models.Product
	err := r.withViewer(ctx, viewer, func(ctx context.Context, tx *sql.Tx) error {
		var p models.Product
		err := tx.QueryRowContext(ctx,
			`SELECT `+productColumns+` FROM products WHERE id = $1 AND is_active = true`,
			id).
			Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.StockQuantity, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		product = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *PostgresCatalogRepository) Newest(ctx context.Context, viewer string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.withViewer(ctx, viewer, func(ctx context.Context, tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT `+productColumns+` FROM products WHERE is_active = true ORDER BY created_at DESC LIMIT $1`,
			limit)
		if err != nil {
			return err
		}
		products, err = scanProducts(rows)
		return err
	})
	return products, err
}

func pageConditions(category string) (string, []any, int) {
	conditions := ` WHERE is_active = true`
	args := []any{}
	argIdx := 1

	if category != "" {
		conditions += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, category)
		argIdx++
	}

	return conditions, args, argIdx
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.StockQuantity, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
