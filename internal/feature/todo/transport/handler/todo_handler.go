// Package handler はtodoフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/todo/domain/entity"
	"todo_backend/internal/feature/todo/transport/http/dto"
	"todo_backend/internal/feature/todo/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

// TodoUsecase はTodo操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TodoUsecase interface {
	Create(ctx context.Context, description, ownerEmail string) error
	ListByOwner(ctx context.Context, email string) ([]entity.Todo, error)
	Update(ctx context.Context, id uint, description string, completed bool) error
	Delete(ctx context.Context, id uint) error
}

// TodoHandler はTodo操作のHTTPリクエストを処理します。
// 認証ミドルウェアがコンテキストにセットしたオーナー情報を利用します。
type TodoHandler struct {
	todos TodoUsecase
}

// NewTodoHandler はTodoHandlerの新しいインスタンスを生成します。
func NewTodoHandler(todos TodoUsecase) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// ownerEmail は認証ミドルウェアがセットしたメールアドレスを取得します。
func ownerEmail(c *gin.Context) string {
	return c.GetString(jwtmw.ContextEmail)
}

// Create はTodo作成APIエンドポイントを処理します。
// オーナーは認証クレームのメールアドレスで、新規Todoは常に未完了です。
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.todos.Create(c.Request.Context(), req.Description, ownerEmail(c)); err != nil {
		slog.Error("todo create failed", "error", err, "email", ownerEmail(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo added successfully"})
}

// List は認証済みユーザーのTodo一覧取得APIエンドポイントを処理します。
// 一覧が空の場合は404を返します。
func (h *TodoHandler) List(c *gin.Context) {
	todos, err := h.todos.ListByOwner(c.Request.Context(), ownerEmail(c))
	if err != nil {
		slog.Error("todo list failed", "error", err, "email", ownerEmail(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(todos) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todos not Found!"})
		return
	}
	out := make([]dto.TodoItem, 0, len(todos))
	for _, t := range todos {
		out = append(out, dto.TodoItem{
			ID:          t.ID,
			Description: t.Description,
			Completed:   t.Completed,
			Email:       t.Email,
		})
	}
	c.JSON(http.StatusOK, dto.TodoListRes{Todos: out})
}

// Update はTodo更新APIエンドポイントを処理します。
// descriptionとcompletedはそれぞれ指定された場合のみ反映されます。
func (h *TodoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}
	var req dto.UpdateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.todos.Update(c.Request.Context(), uint(id), req.Description, req.Completed); err != nil {
		if errors.Is(err, usecase.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not Found!"})
			return
		}
		slog.Error("todo update failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo updated successfully"})
}

// Delete はTodo削除APIエンドポイントを処理します。
func (h *TodoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}
	if err := h.todos.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not Found!"})
			return
		}
		slog.Error("todo delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}
