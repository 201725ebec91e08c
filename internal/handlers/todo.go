package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Paldom/go-todo-service/internal/dto"
	"github.com/Paldom/go-todo-service/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// TodoService is what the HTTP layer needs from the todo service.
type TodoService interface {
	List(ctx context.Context) ([]dto.TodoResponse, error)
	Get(ctx context.Context, id string) (dto.TodoResponse, error)
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateTodoRequest) (dto.TodoResponse, error)
	Delete(ctx context.Context, id string) error
}

type TodoHandler struct {
	svc TodoService
}

func NewTodoHandler(svc TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// List godoc
// @Summary      List the caller's todos
// @Tags         todos
// @Produce      json
// @Param        page  query     int  false  "Page number (1-based)"
// @Param        size  query     int  false  "Page size (max 100)"
// @Success      200   {object}  dto.TodoPage
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	page, size := pageParams(c)
	c.JSON(http.StatusOK, paginate(list, page, size))
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.TodoResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	t, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Update godoc
// @Summary      Partially update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "Todo ID"
// @Param        body  body      dto.UpdateTodoRequest  true  "Fields to change"
// @Success      200   {object}  dto.TodoResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /todos/{id} [patch]
func (h *TodoHandler) Update(c *gin.Context) {
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Param        id   path  string  true  "Todo ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// paginate slices the already-fetched list into a page envelope. Paging the
// query itself is a known non-feature at the expected scale of this resource.
func paginate(items []dto.TodoResponse, page, size int) dto.TodoPage {
	total := len(items)
	pages := (total + size - 1) / size
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	out := items[start:end]
	if out == nil {
		out = []dto.TodoResponse{}
	}
	return dto.TodoPage{Items: out, Total: total, Page: page, Size: size, Pages: pages}
}
