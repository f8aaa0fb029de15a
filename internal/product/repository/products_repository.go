package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"bakery/internal/domain"
)

const productColumns = `id, slug, name, description, price, category, imageUrl,
		       isActive, isDeleted, createdAt, updatedAt`

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) FindActive(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM Product
		WHERE isActive = 1
		  AND isDeleted = 0
		ORDER BY category, name`

	return r.query(ctx, query)
}

func (r *MySQLRepository) FindByIDs(ctx context.Context, ids []int) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM Product
		WHERE id IN (%s)
		  AND isDeleted = 0
		ORDER BY id`,
		productColumns,
		strings.Join(placeholders, ", "),
	)

	return r.query(ctx, query, args...)
}

func (r *MySQLRepository) query(ctx context.Context, query string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var description, category, imageURL sql.NullString
		err := rows.Scan(
			&p.ID, &p.Slug, &p.Name, &description, &p.Price,
			&category, &imageURL,
			&p.IsActive, &p.IsDeleted,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		p.Description = description.String
		p.Category = category.String
		p.ImageURL = imageURL.String
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}
