package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	authorModel "catalog-backend/internal/domains/author/model"
	authorRepo "catalog-backend/internal/domains/author/repository"
	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/paging"
	"catalog-backend/pkg/database"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// postgresRepository implements RepositoryInterface on pgx
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// bookRow is a book before its authors are attached
type bookRow struct {
	isbn      int64
	title     string
	genre     string
	createdAt time.Time
}

// ════════════════════════════════════════════════════════════════
// WRITE
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) Create(ctx context.Context, b model.Book) error {
	return database.WithTransaction(ctx, r.pool, pgx.TxOptions{}, func(ctx context.Context) error {
		db := database.Conn(ctx, r.pool)

		_, err := db.Exec(ctx, `
            INSERT INTO book (isbn, title, genre, created_at)
            VALUES ($1, $2, $3, $4)
        `, b.Isbn(), b.Title(), b.Genre(), b.CreatedAt())
		if err != nil {
			return mapWriteErr(err, "failed to create book")
		}

		authors := b.Authors()
		rows := make([][]any, len(authors))
		for i, a := range authors {
			rows[i] = []any{a.ID(), b.Isbn(), int16(i)}
		}

		_, err = db.CopyFrom(ctx,
			pgx.Identifier{"author_book"},
			[]string{"author_id", "book_isbn", "position"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return mapWriteErr(err, "failed to link book authors")
		}
		return nil
	})
}

func mapWriteErr(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return model.ErrDuplicateIsbn.WithCause(err)
		case pgForeignKeyViolation:
			return authorModel.ErrAuthorNotFound.WithCause(err)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (r *postgresRepository) DeleteAll(ctx context.Context) error {
	_, err := database.Conn(ctx, r.pool).Exec(ctx, `TRUNCATE author_book, book`)
	if err != nil {
		return fmt.Errorf("failed to delete books: %w", err)
	}
	return nil
}

// ════════════════════════════════════════════════════════════════
// READ: single book
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) GetByIsbn(ctx context.Context, isbn int64) (model.Book, error) {
	db := database.Conn(ctx, r.pool)

	var row bookRow
	err := db.QueryRow(ctx, `
        SELECT isbn, title, genre, created_at
        FROM book
        WHERE isbn = $1
    `, isbn).Scan(&row.isbn, &row.title, &row.genre, &row.createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, model.ErrBookNotFound
		}
		return model.Book{}, fmt.Errorf("failed to get book by isbn: %w", err)
	}

	books, err := r.attachAuthors(ctx, db, []bookRow{row})
	if err != nil {
		return model.Book{}, err
	}
	return books[0], nil
}

func (r *postgresRepository) ExistsByIsbn(ctx context.Context, isbn int64) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM book WHERE isbn = $1)`, isbn,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}

// ════════════════════════════════════════════════════════════════
// READ: paginated listings
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) ListAll(ctx context.Context, page paging.Request) (paging.Page[model.Book], error) {
	return r.listBooks(ctx, page,
		`SELECT COUNT(*) FROM book`,
		`SELECT isbn, title, genre, created_at FROM book b`,
	)
}

func (r *postgresRepository) ListByTitle(ctx context.Context, title string, page paging.Request) (paging.Page[model.Book], error) {
	return r.listBooks(ctx, page,
		`SELECT COUNT(*) FROM book WHERE title = $1`,
		`SELECT isbn, title, genre, created_at FROM book b WHERE b.title = $1`,
		title,
	)
}

func (r *postgresRepository) ListByGenre(ctx context.Context, genre string, page paging.Request) (paging.Page[model.Book], error) {
	return r.listBooks(ctx, page,
		`SELECT COUNT(*) FROM book WHERE lower(genre) = lower($1)`,
		`SELECT isbn, title, genre, created_at FROM book b WHERE lower(b.genre) = lower($1)`,
		genre,
	)
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID int64, page paging.Request) (paging.Page[model.Book], error) {
	return r.listBooks(ctx, page,
		`SELECT COUNT(*) FROM author_book WHERE author_id = $1`,
		`SELECT b.isbn, b.title, b.genre, b.created_at
         FROM book b
         JOIN author_book ab ON ab.book_isbn = b.isbn
         WHERE ab.author_id = $1`,
		authorID,
	)
}

// listBooks runs a count query and a page query sharing the same filter
// arguments. selectQuery must alias book as "b"; ordering and paging are
// appended here.
func (r *postgresRepository) listBooks(ctx context.Context, page paging.Request, countQuery, selectQuery string, args ...any) (paging.Page[model.Book], error) {
	db := database.Conn(ctx, r.pool)

	var total int64
	if err := db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return paging.Page[model.Book]{}, fmt.Errorf("failed to count books: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf("%s ORDER BY b.created_at DESC, b.isbn ASC LIMIT $%d OFFSET $%d", selectQuery, n+1, n+2)
	args = append(args, page.Limit(), page.Offset())

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return paging.Page[model.Book]{}, fmt.Errorf("failed to list books: %w", err)
	}
	bookRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (bookRow, error) {
		var b bookRow
		err := row.Scan(&b.isbn, &b.title, &b.genre, &b.createdAt)
		return b, err
	})
	if err != nil {
		return paging.Page[model.Book]{}, fmt.Errorf("failed to scan books: %w", err)
	}

	books, err := r.attachAuthors(ctx, db, bookRows)
	if err != nil {
		return paging.Page[model.Book]{}, err
	}
	return paging.NewPage(books, total, page), nil
}

// attachAuthors loads the authors of all rows with one query
func (r *postgresRepository) attachAuthors(ctx context.Context, db database.DBTX, rows []bookRow) ([]model.Book, error) {
	if len(rows) == 0 {
		return []model.Book{}, nil
	}

	isbns := make([]int64, len(rows))
	for i, row := range rows {
		isbns[i] = row.isbn
	}

	authorRows, err := db.Query(ctx, `
        SELECT ab.book_isbn, a.id, a.first_name, a.last_name, a.created_at
        FROM author_book ab
        JOIN author a ON a.id = ab.author_id
        WHERE ab.book_isbn = ANY($1)
        ORDER BY ab.book_isbn, ab.position, a.id
    `, isbns)
	if err != nil {
		return nil, fmt.Errorf("failed to load book authors: %w", err)
	}
	defer authorRows.Close()

	byIsbn := make(map[int64][]authorModel.Author, len(rows))
	for authorRows.Next() {
		var (
			isbn      int64
			id        int64
			firstName string
			lastName  string
			createdAt time.Time
		)
		if err := authorRows.Scan(&isbn, &id, &firstName, &lastName, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan book author: %w", err)
		}
		byIsbn[isbn] = append(byIsbn[isbn], authorModel.RestoreAuthor(id, firstName, lastName, createdAt))
	}
	if err := authorRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load book authors: %w", err)
	}

	books := make([]model.Book, len(rows))
	for i, row := range rows {
		books[i] = model.RestoreBook(row.isbn, row.title, row.genre, row.createdAt, byIsbn[row.isbn])
	}
	return books, nil
}

// ════════════════════════════════════════════════════════════════
// READ: aggregates
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) FindAuthors(ctx context.Context, isbn int64, sort authorModel.AuthorSort) ([]authorModel.AuthorView, error) {
	query := fmt.Sprintf(`
        SELECT a.id, a.first_name, a.last_name, a.created_at,
               (SELECT COUNT(*) FROM author_book c WHERE c.author_id = a.id) AS num_of_books
        FROM author a
        JOIN author_book ab ON ab.author_id = a.id
        WHERE ab.book_isbn = $1
        ORDER BY %s
    `, authorRepo.OrderClause(sort))

	rows, err := database.Conn(ctx, r.pool).Query(ctx, query, isbn)
	if err != nil {
		return nil, fmt.Errorf("failed to find book authors: %w", err)
	}
	views, err := authorRepo.CollectAuthorViews(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan book authors: %w", err)
	}
	return views, nil
}

func (r *postgresRepository) FindRecentIsbns(ctx context.Context, since time.Time) ([]int64, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
        SELECT isbn
        FROM book
        WHERE created_at >= $1
        ORDER BY created_at DESC, isbn ASC
    `, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to find recent isbns: %w", err)
	}

	isbns, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan recent isbns: %w", err)
	}
	return isbns, nil
}
