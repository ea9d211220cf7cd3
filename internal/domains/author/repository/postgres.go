package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/shared/paging"
	"catalog-backend/pkg/database"
)

// postgresRepository implements RepositoryInterface on pgx
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// OrderClause maps a sort directive to its ORDER BY clause.
// Queries alias the author table as "a" and the count as "num_of_books";
// id ascending keeps ties reproducible.
func OrderClause(sort model.AuthorSort) string {
	switch sort {
	case model.SortByNumOfBooks:
		return "num_of_books DESC, a.id ASC"
	default:
		return "a.created_at DESC, a.id ASC"
	}
}

func (r *postgresRepository) Create(ctx context.Context, a model.Author) (model.Author, error) {
	query := `
        INSERT INTO author (first_name, last_name, created_at)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `

	var (
		id        int64
		createdAt time.Time
	)
	err := database.Conn(ctx, r.pool).QueryRow(ctx, query,
		a.FirstName(),
		a.LastName(),
		a.CreatedAt(),
	).Scan(&id, &createdAt)
	if err != nil {
		return model.Author{}, fmt.Errorf("failed to create author: %w", err)
	}

	return model.RestoreAuthor(id, a.FirstName(), a.LastName(), createdAt), nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (model.Author, error) {
	query := `
        SELECT id, first_name, last_name, created_at
        FROM author
        WHERE id = $1
    `

	a, err := scanAuthor(database.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Author{}, model.ErrAuthorNotFound
		}
		return model.Author{}, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, firstName, lastName string) (model.Author, error) {
	query := `
        SELECT id, first_name, last_name, created_at
        FROM author
        WHERE first_name = $1 AND last_name = $2
        ORDER BY id
        LIMIT 1
    `

	a, err := scanAuthor(database.Conn(ctx, r.pool).QueryRow(ctx, query, firstName, lastName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Author{}, model.ErrAuthorNameNotFound
		}
		return model.Author{}, fmt.Errorf("failed to find author by name: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) Update(ctx context.Context, a model.Author) error {
	id, ok := a.Identity().Value()
	if !ok {
		return model.ErrAuthorNotFound
	}

	query := `
        UPDATE author
        SET first_name = $1, last_name = $2
        WHERE id = $3
    `

	tag, err := database.Conn(ctx, r.pool).Exec(ctx, query, a.FirstName(), a.LastName(), id)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) CountBooks(ctx context.Context, id int64) (int64, error) {
	query := `SELECT COUNT(*) FROM author_book WHERE author_id = $1`

	var count int64
	if err := database.Conn(ctx, r.pool).QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) List(ctx context.Context, sort model.AuthorSort, page paging.Request) (paging.Page[model.AuthorView], error) {
	db := database.Conn(ctx, r.pool)

	var total int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM author`).Scan(&total); err != nil {
		return paging.Page[model.AuthorView]{}, fmt.Errorf("failed to count authors: %w", err)
	}

	query := fmt.Sprintf(`
        SELECT a.id, a.first_name, a.last_name, a.created_at,
               COUNT(ab.book_isbn) AS num_of_books
        FROM author a
        LEFT JOIN author_book ab ON ab.author_id = a.id
        GROUP BY a.id
        ORDER BY %s
        LIMIT $1 OFFSET $2
    `, OrderClause(sort))

	rows, err := db.Query(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return paging.Page[model.AuthorView]{}, fmt.Errorf("failed to list authors: %w", err)
	}

	views, err := CollectAuthorViews(rows)
	if err != nil {
		return paging.Page[model.AuthorView]{}, fmt.Errorf("failed to scan authors: %w", err)
	}

	return paging.NewPage(views, total, page), nil
}

func (r *postgresRepository) DeleteAll(ctx context.Context) error {
	_, err := database.Conn(ctx, r.pool).Exec(ctx, `TRUNCATE author_book, author RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to delete authors: %w", err)
	}
	return nil
}

func scanAuthor(row pgx.Row) (model.Author, error) {
	var (
		id        int64
		firstName string
		lastName  string
		createdAt time.Time
	)
	if err := row.Scan(&id, &firstName, &lastName, &createdAt); err != nil {
		return model.Author{}, err
	}
	return model.RestoreAuthor(id, firstName, lastName, createdAt), nil
}

// CollectAuthorViews reads rows of (id, first_name, last_name, created_at,
// num_of_books) and closes them
func CollectAuthorViews(rows pgx.Rows) ([]model.AuthorView, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.AuthorView, error) {
		var (
			id        int64
			firstName string
			lastName  string
			createdAt time.Time
			count     int64
		)
		if err := row.Scan(&id, &firstName, &lastName, &createdAt, &count); err != nil {
			return model.AuthorView{}, err
		}
		return model.AuthorView{
			Author:            model.RestoreAuthor(id, firstName, lastName, createdAt),
			NumOfBooksWritten: count,
		}, nil
	})
}
