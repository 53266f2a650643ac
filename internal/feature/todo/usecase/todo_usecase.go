// Package usecase はtodoフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"todo_backend/internal/feature/todo/domain/entity"
)

// TodoRepository はTodoエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type TodoRepository interface {
	// Create persists a new todo to the storage.
	Create(ctx context.Context, todo *entity.Todo) error

	// ListByEmail retrieves all todos owned by the given email address.
	ListByEmail(ctx context.Context, email string) ([]entity.Todo, error)

	// FindByID retrieves a todo by its ID.
	// It returns ErrTodoNotFound if no such todo exists.
	FindByID(ctx context.Context, id uint) (*entity.Todo, error)

	// Save persists changes to an existing todo.
	Save(ctx context.Context, todo *entity.Todo) error

	// Delete removes a todo by its ID.
	// It returns ErrTodoNotFound if no such todo exists.
	Delete(ctx context.Context, id uint) error
}

// TodoUsecase はTodo操作のビジネスロジックを提供します。
type TodoUsecase struct {
	todos TodoRepository
}

// NewTodoUsecase はTodoUsecaseの新しいインスタンスを生成します。
func NewTodoUsecase(todos TodoRepository) *TodoUsecase {
	return &TodoUsecase{todos: todos}
}

// Create は認証済みユーザーをオーナーとして新しいTodoを作成します。
// 新規Todoは常に未完了状態で作成されます。
func (u *TodoUsecase) Create(ctx context.Context, description, ownerEmail string) error {
	todo := &entity.Todo{
		Description: description,
		Completed:   false,
		Email:       ownerEmail,
	}
	return u.todos.Create(ctx, todo)
}

// ListByOwner は指定されたオーナーのTodo一覧を返します。
func (u *TodoUsecase) ListByOwner(ctx context.Context, email string) ([]entity.Todo, error) {
	return u.todos.ListByEmail(ctx, email)
}

// Update はTodoを部分更新します。descriptionは空でない場合のみ、
// completedはtrueの場合のみ反映されます。
// TODO: オーナーのメールアドレスで絞り込み、他ユーザーのTodoを更新できないようにする
func (u *TodoUsecase) Update(ctx context.Context, id uint, description string, completed bool) error {
	todo, err := u.todos.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if completed {
		todo.Completed = completed
	}
	if description != "" {
		todo.Description = description
	}
	return u.todos.Save(ctx, todo)
}

// Delete はTodoをIDで削除します。
// TODO: オーナーのメールアドレスで絞り込み、他ユーザーのTodoを削除できないようにする
func (u *TodoUsecase) Delete(ctx context.Context, id uint) error {
	return u.todos.Delete(ctx, id)
}
