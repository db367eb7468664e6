package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Sayog-Shendre/bloger-page/internal/models"
)

var ErrNotFound = errors.New("post not found")

// timeLayout is ISO-8601 with fixed-width milliseconds, so that for
// UTC values string order equals time order (listing sorts on the
// stored text).
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS posts (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	image      TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
)`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS posts (
	id         BIGSERIAL PRIMARY KEY,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	image      TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
)`

// Store owns the posts table. Initialization is lazy: the first
// operation creates the table and seeds sample rows if it is empty,
// guarded by a sync.Once so concurrent cold-start requests cannot
// double-seed.
type Store struct {
	db       *sql.DB
	postgres bool

	initOnce sync.Once
	initErr  error

	now func() time.Time // test hook
}

func NewStore(db *sql.DB, dsn string) *Store {
	return &Store{db: db, postgres: IsPostgres(dsn), now: time.Now}
}

func (s *Store) init(ctx context.Context) error {
	s.initOnce.Do(func() {
		schema := sqliteSchema
		if s.postgres {
			schema = postgresSchema
		}
		if _, err := s.db.ExecContext(ctx, schema); err != nil {
			s.initErr = fmt.Errorf("create posts table: %w", err)
			return
		}

		var n int64
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
			s.initErr = fmt.Errorf("count posts: %w", err)
			return
		}
		if n > 0 {
			return
		}
		if err := s.seed(ctx); err != nil {
			s.initErr = fmt.Errorf("seed posts: %w", err)
			return
		}
		log.Printf("db.Store: posts table seeded with %d sample posts", len(samplePosts))
	})
	return s.initErr
}

func (s *Store) seed(ctx context.Context) error {
	for _, p := range samplePosts {
		created := s.now().UTC().Add(-p.age).Format(timeLayout)
		_, err := s.db.ExecContext(ctx,
			s.q(`INSERT INTO posts (title, content, image, created_at) VALUES (?, ?, ?, ?)`),
			p.title, p.content, p.image, created,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// q rewrites ? placeholders to $1..$n for the postgres driver.
func (s *Store) q(query string) string {
	if !s.postgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (s *Store) Count(ctx context.Context) (int, error) {
	if err := s.init(ctx); err != nil {
		return 0, err
	}
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n)
	return n, err
}

// ListPage returns posts ordered by created_at descending, sliced by
// limit/offset. Callers derive offset from page/limit and keep it
// non-negative; no clamping happens here.
func (s *Store) ListPage(ctx context.Context, limit, offset int) ([]models.Post, error) {
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		s.q(`SELECT id, title, content, image, created_at FROM posts ORDER BY created_at DESC LIMIT ? OFFSET ?`),
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return scanPosts(rows)
}

func (s *Store) ListAll(ctx context.Context) ([]models.Post, error) {
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, image, created_at FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanPosts(rows)
}

func (s *Store) GetByID(ctx context.Context, id int64) (models.Post, error) {
	if err := s.init(ctx); err != nil {
		return models.Post{}, err
	}
	var p models.Post
	err := s.db.QueryRowContext(ctx,
		s.q(`SELECT id, title, content, image, created_at FROM posts WHERE id = ?`), id,
	).Scan(&p.ID, &p.Title, &p.Content, &p.Image, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Post{}, ErrNotFound
	}
	return p, err
}

// Insert assigns created_at = now and returns the new id.
func (s *Store) Insert(ctx context.Context, title, content, image string) (int64, error) {
	if err := s.init(ctx); err != nil {
		return 0, err
	}
	created := s.now().UTC().Format(timeLayout)

	if s.postgres {
		var id int64
		err := s.db.QueryRowContext(ctx,
			s.q(`INSERT INTO posts (title, content, image, created_at) VALUES (?, ?, ?, ?) RETURNING id`),
			title, content, image, created,
		).Scan(&id)
		return id, err
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO posts (title, content, image, created_at) VALUES (?, ?, ?, ?)`,
		title, content, image, created,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update replaces the three mutable fields; created_at is untouched.
// Returns ErrNotFound when id does not exist.
func (s *Store) Update(ctx context.Context, id int64, title, content, image string) error {
	if err := s.init(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		s.q(`UPDATE posts SET title = ?, content = ?, image = ? WHERE id = ?`),
		title, content, image, id,
	)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.init(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM posts WHERE id = ?`), id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	defer rows.Close()
	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Image, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
