// Package adapters はtodoフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo_backend/internal/feature/todo/domain/entity"
	"todo_backend/internal/feature/todo/usecase"
)

// todoMySQL はTodoRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type todoMySQL struct {
	db *gorm.DB
}

// todoMySQLがTodoRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TodoRepository = (*todoMySQL)(nil)

// NewTodoMySQL は指定されたgorm.DB接続でtodoMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewTodoMySQL(db *gorm.DB) *todoMySQL {
	return &todoMySQL{db: db}
}

// Create はTodoをデータベースに追加します。
func (r *todoMySQL) Create(ctx context.Context, t *entity.Todo) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// ListByEmail はオーナーのメールアドレスでTodo一覧を取得します。
func (r *todoMySQL) ListByEmail(ctx context.Context, email string) ([]entity.Todo, error) {
	var todos []entity.Todo
	if err := r.db.WithContext(ctx).Where("email = ?", email).Order("id").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// FindByID はIDでTodoを取得します。
// Todoが存在しない場合、usecase.ErrTodoNotFoundを返します。
func (r *todoMySQL) FindByID(ctx context.Context, id uint) (*entity.Todo, error) {
	var t entity.Todo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTodoNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Save は既存のTodoの変更を永続化します。
func (r *todoMySQL) Save(ctx context.Context, t *entity.Todo) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete はIDでTodoを削除します。
// Todoが存在しない場合、usecase.ErrTodoNotFoundを返します。
func (r *todoMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Todo{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTodoNotFound
	}
	return nil
}
