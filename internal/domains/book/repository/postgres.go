package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf-backend/internal/domains/book/model"
)

// postgresRepository implements RepositoryInterface on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new book repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// searchFilter is the OR across the five searchable fields. The pattern
// is always bound as a parameter, never interpolated. year is compared
// as text so a numeric fragment like "201" matches 2010..2019.
const searchFilter = `
        lower(b.title) LIKE $1
        OR lower(coalesce(b.description, '')) LIKE $1
        OR b.year::text LIKE $1
        OR lower(a.first_name) LIKE $1
        OR lower(coalesce(a.last_name, '')) LIKE $1
`

func (r *postgresRepository) Search(ctx context.Context, pattern string, limit, offset int) ([]model.SearchRow, int64, error) {
	query := `
        SELECT b.id, b.title, b.year, b.description, a.first_name, a.last_name
        FROM book b
        JOIN author a ON b.author_id = a.id
        WHERE ` + searchFilter + `
        ORDER BY b.id DESC
        LIMIT $2 OFFSET $3
    `

	rows, err := r.pool.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search books: %w", err)
	}
	defer rows.Close()

	var results []model.SearchRow
	for rows.Next() {
		var row model.SearchRow
		err := rows.Scan(
			&row.ID,
			&row.Title,
			&row.Year,
			&row.Description,
			&row.FirstName,
			&row.LastName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book row: %w", err)
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating books: %w", err)
	}

	countQuery := `
        SELECT COUNT(*)
        FROM book b
        JOIN author a ON b.author_id = a.id
        WHERE ` + searchFilter

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	return results, total, nil
}

func (r *postgresRepository) CountByAuthor(ctx context.Context, pattern string, year int) ([]model.AuthorBookCount, error) {
	query := `
        SELECT a.first_name, COUNT(b.id) AS total_books
        FROM author a
        JOIN book b ON b.author_id = a.id
        WHERE lower(a.first_name) LIKE $1 AND b.year = $2
        GROUP BY a.id, a.first_name
        ORDER BY a.id
    `

	rows, err := r.pool.Query(ctx, query, pattern, year)
	if err != nil {
		return nil, fmt.Errorf("failed to count books by author: %w", err)
	}
	defer rows.Close()

	var counts []model.AuthorBookCount
	for rows.Next() {
		var c model.AuthorBookCount
		if err := rows.Scan(&c.FirstName, &c.TotalBooks); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counts: %w", err)
	}

	return counts, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*model.Book, error) {
	query := `
        SELECT id, title, year, description, stock, author_id, created_date
        FROM book
        WHERE id = $1
    `

	var b model.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.Year,
		&b.Description,
		&b.Stock,
		&b.AuthorID,
		&b.CreatedDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

// UpdateStock applies the delta in a single statement. The stock floor
// lives in the WHERE clause so concurrent deltas cannot race past it.
func (r *postgresRepository) UpdateStock(ctx context.Context, id, delta int) (*model.Book, error) {
	query := `
        UPDATE book
        SET stock = stock + $2
        WHERE id = $1 AND stock + $2 >= 0
        RETURNING id, title, year, description, stock, author_id, created_date
    `

	var b model.Book
	err := r.pool.QueryRow(ctx, query, id, delta).Scan(
		&b.ID,
		&b.Title,
		&b.Year,
		&b.Description,
		&b.Stock,
		&b.AuthorID,
		&b.CreatedDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the book does not exist or the delta was rejected
			// by the stock floor. Distinguish the two.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, model.ErrInsufficientStock
		}
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	return &b, nil
}
