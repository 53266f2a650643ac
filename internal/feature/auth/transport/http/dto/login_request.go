// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginForm は/tokenエンドポイントのフォームボディを表します。
// OAuth2パスワードフロー互換のため、フィールド名はusername/passwordです
// （usernameにはメールアドレスが入ります）。
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenRes はログイン成功時のレスポンスボディを表します。
type TokenRes struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
