// Package dto defines data transfer objects for the todo feature's HTTP transport layer.
package dto

// CreateTodoReq represents the request body for creating a todo.
// The completion flag is ignored on create; new todos always start incomplete.
type CreateTodoReq struct {
	Description string `json:"description" binding:"required"`
	Completed   bool   `json:"completed"`
}

// UpdateTodoReq represents the request body for updating a todo.
// Both fields are optional; empty values leave the stored value unchanged.
type UpdateTodoReq struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TodoItem represents a single todo in API responses.
type TodoItem struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Email       string `json:"email"`
}

// TodoListRes represents the response body for the todo list endpoint.
type TodoListRes struct {
	Todos []TodoItem `json:"todos"`
}
