package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Paldom/go-todo-service/internal/auth"
	"github.com/Paldom/go-todo-service/internal/dto"
	"github.com/Paldom/go-todo-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTodoService lets each test script the service layer, the same way the
// upstream layers are faked in the service tests.
type stubTodoService struct {
	listFn   func(ctx context.Context) ([]dto.TodoResponse, error)
	getFn    func(ctx context.Context, id string) (dto.TodoResponse, error)
	createFn func(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	updateFn func(ctx context.Context, id string, req dto.UpdateTodoRequest) (dto.TodoResponse, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubTodoService) List(ctx context.Context) ([]dto.TodoResponse, error) {
	return s.listFn(ctx)
}

func (s *stubTodoService) Get(ctx context.Context, id string) (dto.TodoResponse, error) {
	return s.getFn(ctx, id)
}

func (s *stubTodoService) Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubTodoService) Update(ctx context.Context, id string, req dto.UpdateTodoRequest) (dto.TodoResponse, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubTodoService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newTestRouter(svc TodoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/v1", auth.UserInfoMiddleware())
	h := NewTodoHandler(svc)
	api.GET("/todos", h.List)
	api.POST("/todos", h.Create)
	api.GET("/todos/:id", h.GetByID)
	api.PATCH("/todos/:id", h.Update)
	api.DELETE("/todos/:id", h.Delete)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(auth.HeaderUserID, "u1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sampleTodo(id, title string) dto.TodoResponse {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return dto.TodoResponse{
		ID: id, Title: title,
		CreatedAt: now, UpdatedAt: now,
		CreatedBy: "u1", UpdatedBy: "u1",
	}
}

func TestCreateReturns201(t *testing.T) {
	var gotReq dto.CreateTodoRequest
	svc := &stubTodoService{
		createFn: func(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error) {
			gotReq = req
			return sampleTodo("id-1", req.Title), nil
		},
	}
	rec := doRequest(newTestRouter(svc), http.MethodPost, "/v1/todos", `{"title":"Buy milk"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Buy milk", gotReq.Title)

	var res dto.TodoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "id-1", res.ID)
	assert.Equal(t, "u1", res.CreatedBy)
}

func TestCreateValidationBoundary(t *testing.T) {
	svc := &stubTodoService{
		createFn: func(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error) {
			t.Fatal("service must not be reached on invalid payload")
			return dto.TodoResponse{}, nil
		},
	}
	r := newTestRouter(svc)

	cases := map[string]string{
		"empty title":   `{"title":""}`,
		"missing title": `{}`,
		"overlong":      fmt.Sprintf(`{"title":%q}`, strings.Repeat("a", 256)),
		"wrong type":    `{"title":42}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(r, http.MethodPost, "/v1/todos", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateValidationBoundary(t *testing.T) {
	svc := &stubTodoService{
		updateFn: func(ctx context.Context, id string, req dto.UpdateTodoRequest) (dto.TodoResponse, error) {
			t.Fatal("service must not be reached on invalid payload")
			return dto.TodoResponse{}, nil
		},
	}
	rec := doRequest(newTestRouter(svc), http.MethodPatch, "/v1/todos/x",
		fmt.Sprintf(`{"title":%q}`, strings.Repeat("a", 256)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePassesPartialPayload(t *testing.T) {
	var gotReq dto.UpdateTodoRequest
	svc := &stubTodoService{
		updateFn: func(ctx context.Context, id string, req dto.UpdateTodoRequest) (dto.TodoResponse, error) {
			gotReq = req
			return sampleTodo(id, "A"), nil
		},
	}
	rec := doRequest(newTestRouter(svc), http.MethodPatch, "/v1/todos/id-1", `{"completed":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, gotReq.Title, "absent fields must stay nil")
	require.NotNil(t, gotReq.Completed)
	assert.True(t, *gotReq.Completed)
}

func TestErrorMapping(t *testing.T) {
	svc := &stubTodoService{
		getFn: func(ctx context.Context, id string) (dto.TodoResponse, error) {
			switch id {
			case "missing":
				return dto.TodoResponse{}, service.ErrNotFound
			case "anon":
				return dto.TodoResponse{}, service.ErrUnauthorized
			default:
				return dto.TodoResponse{}, fmt.Errorf("connection lost")
			}
		},
	}
	r := newTestRouter(svc)

	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, "/v1/todos/missing", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, http.MethodGet, "/v1/todos/anon", "").Code)
	assert.Equal(t, http.StatusInternalServerError, doRequest(r, http.MethodGet, "/v1/todos/boom", "").Code)
}

func TestDeleteReturns204(t *testing.T) {
	svc := &stubTodoService{
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	rec := doRequest(newTestRouter(svc), http.MethodDelete, "/v1/todos/id-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestListWrapsPageEnvelope(t *testing.T) {
	items := make([]dto.TodoResponse, 0, 120)
	for i := 0; i < 120; i++ {
		items = append(items, sampleTodo(fmt.Sprintf("id-%d", i), fmt.Sprintf("todo %d", i)))
	}
	svc := &stubTodoService{
		listFn: func(ctx context.Context) ([]dto.TodoResponse, error) { return items, nil },
	}
	r := newTestRouter(svc)

	rec := doRequest(r, http.MethodGet, "/v1/todos?page=2&size=50", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page dto.TodoPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 120, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 50, page.Size)
	assert.Equal(t, 3, page.Pages)
	require.Len(t, page.Items, 50)
	assert.Equal(t, "id-50", page.Items[0].ID)
}

func TestPaginate(t *testing.T) {
	items := []dto.TodoResponse{sampleTodo("a", "a"), sampleTodo("b", "b"), sampleTodo("c", "c")}

	page := paginate(items, 1, 2)
	assert.Equal(t, []string{"a", "b"}, idsOf(page.Items))
	assert.Equal(t, 2, page.Pages)

	page = paginate(items, 2, 2)
	assert.Equal(t, []string{"c"}, idsOf(page.Items))

	// Past the end: an empty page, not an error.
	page = paginate(items, 9, 2)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 3, page.Total)

	page = paginate(nil, 1, 50)
	assert.NotNil(t, page.Items)
	assert.Zero(t, page.Total)
	assert.Zero(t, page.Pages)
}

func idsOf(items []dto.TodoResponse) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}
