package service

import (
	"context"
	"errors"
	"log"

	"github.com/Paldom/go-todo-service/internal/auth"
	dom "github.com/Paldom/go-todo-service/internal/domain"
	"github.com/Paldom/go-todo-service/internal/dto"
	"github.com/Paldom/go-todo-service/internal/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUnauthorized = errors.New("user id missing")
	ErrNotFound     = errors.New("not found")
)

// TodoService enforces ownership: a todo is visible and mutable only to the
// identity recorded in created_by. A todo that belongs to someone else is
// reported exactly like one that does not exist.
type TodoService struct {
	repo   repo.TodoRepo
	logger *log.Logger
}

func NewTodoService(r repo.TodoRepo, logger *log.Logger) *TodoService {
	return &TodoService{repo: r, logger: logger}
}

// resolveOwner returns the acting user id from the request identity,
// or ErrUnauthorized when the gateway forwarded no user id.
func (s *TodoService) resolveOwner(ctx context.Context) (string, error) {
	u := auth.FromContext(ctx)
	if u.UserID == "" {
		return "", ErrUnauthorized
	}
	return u.UserID, nil
}

// loadOwned fetches a todo and checks it belongs to owner. Absence and owner
// mismatch are indistinguishable on purpose: both come back as ErrNotFound.
func (s *TodoService) loadOwned(ctx context.Context, id, owner string) (dom.Todo, error) {
	if _, err := uuid.Parse(id); err != nil {
		return dom.Todo{}, ErrNotFound
	}
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	if t.CreatedBy != owner {
		return dom.Todo{}, ErrNotFound
	}
	return t, nil
}

func (s *TodoService) List(ctx context.Context) ([]dto.TodoResponse, error) {
	owner, err := s.resolveOwner(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("listing todos for user %s", owner)
	list, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

func (s *TodoService) Get(ctx context.Context, id string) (dto.TodoResponse, error) {
	owner, err := s.resolveOwner(ctx)
	if err != nil {
		return dto.TodoResponse{}, err
	}
	t, err := s.loadOwned(ctx, id, owner)
	if err != nil {
		return dto.TodoResponse{}, err
	}
	return toResponse(t), nil
}

func (s *TodoService) Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error) {
	owner, err := s.resolveOwner(ctx)
	if err != nil {
		return dto.TodoResponse{}, err
	}
	s.logger.Printf("creating todo for user %s", owner)
	t, err := s.repo.Create(ctx, req.Title, owner)
	if err != nil {
		return dto.TodoResponse{}, err
	}
	return toResponse(t), nil
}

func (s *TodoService) Update(ctx context.Context, id string, req dto.UpdateTodoRequest) (dto.TodoResponse, error) {
	owner, err := s.resolveOwner(ctx)
	if err != nil {
		return dto.TodoResponse{}, err
	}
	t, err := s.loadOwned(ctx, id, owner)
	if err != nil {
		return dto.TodoResponse{}, err
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Completed != nil {
		t.Completed = *req.Completed
	}
	// Every mutation re-stamps the acting identity, touched fields or not.
	t.UpdatedBy = owner
	s.logger.Printf("updating todo %s", id)
	t, err = s.repo.Update(ctx, t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.TodoResponse{}, ErrNotFound
		}
		return dto.TodoResponse{}, err
	}
	return toResponse(t), nil
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	owner, err := s.resolveOwner(ctx)
	if err != nil {
		return err
	}
	t, err := s.loadOwned(ctx, id, owner)
	if err != nil {
		return err
	}
	s.logger.Printf("deleting todo %s", id)
	return s.repo.Delete(ctx, t.ID.String())
}

// Mapping to the external representation is a plain field copy.
func toResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		CreatedBy: t.CreatedBy,
		UpdatedBy: t.UpdatedBy,
	}
}

func toResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = toResponse(list[i])
	}
	return out
}
