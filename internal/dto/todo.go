package dto

import "time"

type CreateTodoRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

// UpdateTodoRequest is a partial update: nil means "leave unchanged".
type UpdateTodoRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=255"`
	Completed *bool   `json:"completed"`
}

type TodoResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by"`
}

// TodoPage is the paginated list envelope.
type TodoPage struct {
	Items []TodoResponse `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Pages int            `json:"pages"`
}
