package repo

import (
	"context"

	dom "github.com/Paldom/go-todo-service/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepo is the persistence port for todos. Point lookups carry no owner
// filter; ownership is enforced one layer up, in the service.
type TodoRepo interface {
	List(ctx context.Context, owner string) ([]dom.Todo, error)
	Get(ctx context.Context, id string) (dom.Todo, error)
	Create(ctx context.Context, title, owner string) (dom.Todo, error)
	Update(ctx context.Context, t dom.Todo) (dom.Todo, error)
	Delete(ctx context.Context, id string) error
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

const todoColumns = `id, title, completed, created_at, updated_at, created_by, updated_by`

// List returns todos newest first. An empty owner returns everything;
// a non-empty owner restricts the result to rows created by that owner.
func (r *PGTodoRepo) List(ctx context.Context, owner string) ([]dom.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todo
		WHERE $1 = '' OR created_by = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed,
			&t.CreatedAt, &t.UpdatedAt, &t.CreatedBy, &t.UpdatedBy); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) Get(ctx context.Context, id string) (dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todo WHERE id = $1`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(&t.ID, &t.Title, &t.Completed,
		&t.CreatedAt, &t.UpdatedAt, &t.CreatedBy, &t.UpdatedBy)
	return t, err
}

func (r *PGTodoRepo) Create(ctx context.Context, title, owner string) (dom.Todo, error) {
	query := `
		INSERT INTO todo (id, title, created_by, updated_by)
		VALUES ($1, $2, $3, $3)
		RETURNING ` + todoColumns
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, uuid.New(), title, owner).Scan(
		&t.ID, &t.Title, &t.Completed,
		&t.CreatedAt, &t.UpdatedAt, &t.CreatedBy, &t.UpdatedBy)
	return t, err
}

// Update re-persists the whole mutated entity and returns the refreshed row.
func (r *PGTodoRepo) Update(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		UPDATE todo
		SET title = $2, completed = $3, updated_by = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + todoColumns
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, t.ID, t.Title, t.Completed, t.UpdatedBy).Scan(
		&out.ID, &out.Title, &out.Completed,
		&out.CreatedAt, &out.UpdatedAt, &out.CreatedBy, &out.UpdatedBy)
	return out, err
}

// Delete removes the row permanently. Deleting an absent row is not an error;
// the service resolves existence before calling Delete.
func (r *PGTodoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM todo WHERE id = $1`, id)
	return err
}
