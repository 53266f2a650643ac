// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/auth/transport/http/dto"
	"todo_backend/internal/feature/auth/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は新規ユーザーを登録し、自動ログイン用のJWTトークンを返します。
	Signup(ctx context.Context, email, password string) (string, error)
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth     AuthUsecase
	tokenTTL time.Duration
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// tokenTTLはトークンと配送用Cookieの有効期間です。
func NewAuthHandler(auth AuthUsecase, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, tokenTTL: tokenTTL}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignupReqにバインド
// - バリデーションエラー時は400を返却
// - メール重複時は400を返却（既存レコードは変更されない）
// - 成功時はトークンをCookieにセットし201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("signup rejected: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already exists"})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// 登録直後の自動ログイン：トークンはCookieで配送する
	jwtmw.SetAuthCookie(c, token, h.tokenTTL)
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// Login はトークン発行APIエンドポイント（POST /api/auth/token）を処理します。
// - フォームデータ（username/password）をLoginFormにバインド
// - バリデーションエラー時は400を返却
// - ユーザー未登録時は404、パスワード不一致時は401を返却
// - 認証成功時はトークンをボディとCookieの両方で返却
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			slog.Warn("login failed: unknown user", "email", form.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, gin.H{"error": "User does not exist"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login failed: bad password", "email", form.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		default:
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	jwtmw.SetAuthCookie(c, token, h.tokenTTL)
	slog.Info("user login successful", "email", form.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenRes{AccessToken: token, TokenType: "bearer"})
}
