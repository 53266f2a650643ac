package router

import (
	"github.com/gin-gonic/gin"

	authhandler "todo_backend/internal/feature/auth/transport/handler"
	todohandler "todo_backend/internal/feature/todo/transport/handler"
	"todo_backend/internal/platform/http/handler"
	jwtmw "todo_backend/internal/platform/jwt"
)

func NewRouter(authHandler *authhandler.AuthHandler, todoHandler *todohandler.TodoHandler,
	verifier *jwtmw.Verifier) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/api/auth/signup", authHandler.Signup)
	// ログイン（JWT 発行、フォームエンコード）
	r.POST("/api/auth/token", authHandler.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → Bearerヘッダーまたはtokenクッキーが必要になる
	auth := r.Group("/api")
	auth.Use(jwtmw.AuthRequired(verifier))
	{
		auth.POST("/todo", todoHandler.Create)
		auth.GET("/todo", todoHandler.List)
		auth.PUT("/todo/:id", todoHandler.Update)
		auth.DELETE("/todo/:id", todoHandler.Delete)
	}

	return r
}
