package redis

import "testing"

// TestNewRedisClient_Unreachable は接続できないアドレスに対してエラーが返ることを検証します。
func TestNewRedisClient_Unreachable(t *testing.T) {
	t.Parallel()

	// ポート1には何もリッスンしていない前提
	rdb, err := NewRedisClient("127.0.0.1:1", "")

	if err == nil {
		t.Fatal("expected connection error, got nil")
	}
	if rdb != nil {
		t.Error("expected nil client on connection failure")
	}
}
