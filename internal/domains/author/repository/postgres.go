package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf-backend/internal/domains/author/model"
	bookmodel "bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/pkg/database"
)

// postgresRepository implements RepositoryInterface on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new author repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// CreateWithBooks is the explicit two-step transactional write: insert
// the author, then each book referencing the new author id. The
// transaction helper rolls everything back on the first failure.
func (r *postgresRepository) CreateWithBooks(ctx context.Context, a *model.Author, books []bookmodel.Book) (*model.Author, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Author, error) {
		authorQuery := `
            INSERT INTO author (first_name, last_name)
            VALUES ($1, $2)
            RETURNING id, first_name, last_name, created_date
        `

		var created model.Author
		err := tx.QueryRow(ctx, authorQuery, a.FirstName, a.LastName).Scan(
			&created.ID,
			&created.FirstName,
			&created.LastName,
			&created.CreatedDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create author: %w", err)
		}

		bookQuery := `
            INSERT INTO book (title, year, description, stock, author_id)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id, title, year, description, stock, author_id, created_date
        `

		created.Books = make([]bookmodel.Book, len(books))
		for i, b := range books {
			err := tx.QueryRow(ctx, bookQuery, b.Title, b.Year, b.Description, b.Stock, created.ID).Scan(
				&created.Books[i].ID,
				&created.Books[i].Title,
				&created.Books[i].Year,
				&created.Books[i].Description,
				&created.Books[i].Stock,
				&created.Books[i].AuthorID,
				&created.Books[i].CreatedDate,
			)
			if err != nil {
				return nil, fmt.Errorf("failed to create book %q: %w", b.Title, err)
			}
		}

		return &created, nil
	})
}

func (r *postgresRepository) GetWithBooks(ctx context.Context, id int) (*model.Author, error) {
	authorQuery := `
        SELECT id, first_name, last_name, created_date
        FROM author
        WHERE id = $1
    `

	var a model.Author
	err := r.pool.QueryRow(ctx, authorQuery, id).Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	booksQuery := `
        SELECT id, title, year, description, stock, author_id, created_date
        FROM book
        WHERE author_id = $1
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, booksQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query author books: %w", err)
	}
	defer rows.Close()

	a.Books = []bookmodel.Book{}
	for rows.Next() {
		var b bookmodel.Book
		err := rows.Scan(&b.ID, &b.Title, &b.Year, &b.Description, &b.Stock, &b.AuthorID, &b.CreatedDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		a.Books = append(a.Books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return &a, nil
}

// ListWithBooks loads every author and their books in one LEFT JOIN,
// grouping rows in memory. Authors without books appear with an empty
// book list.
func (r *postgresRepository) ListWithBooks(ctx context.Context) ([]model.AuthorBooks, error) {
	query := `
        SELECT a.id, a.first_name, a.last_name,
               b.id, b.title, b.year, b.description
        FROM author a
        LEFT JOIN book b ON b.author_id = a.id
        ORDER BY a.id, b.id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors with books: %w", err)
	}
	defer rows.Close()

	var listing []model.AuthorBooks
	for rows.Next() {
		var (
			authorID  int
			firstName string
			lastName  *string

			bookID      *int
			title       *string
			year        *int
			description *string
		)

		err := rows.Scan(&authorID, &firstName, &lastName, &bookID, &title, &year, &description)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}

		if len(listing) == 0 || listing[len(listing)-1].ID != authorID {
			a := model.Author{FirstName: firstName, LastName: lastName}
			listing = append(listing, model.AuthorBooks{
				ID:     authorID,
				Author: a.FullName(),
				Books:  []model.BookSummary{},
			})
		}

		// NULL book columns mean the author has no books.
		if bookID != nil {
			current := &listing[len(listing)-1]
			current.Books = append(current.Books, model.BookSummary{
				ID:          *bookID,
				Title:       *title,
				Year:        *year,
				Description: description,
			})
			current.TotalBooks = len(current.Books)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listing: %w", err)
	}

	return listing, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM author WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	return nil
}
