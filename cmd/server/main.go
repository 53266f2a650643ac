package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"todo_backend/internal/app/router"
	authadapters "todo_backend/internal/feature/auth/adapters"
	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authusecase "todo_backend/internal/feature/auth/usecase"
	todoadapters "todo_backend/internal/feature/todo/adapters"
	todohandler "todo_backend/internal/feature/todo/transport/handler"
	todousecase "todo_backend/internal/feature/todo/usecase"
	"todo_backend/internal/platform/cache"
	"todo_backend/internal/platform/config"
	infradb "todo_backend/internal/platform/db"
	infraredis "todo_backend/internal/platform/redis"
	jwtmw "todo_backend/internal/platform/jwt"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// 設定（JWT_SECRET必須）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// db
	db := infradb.OpenDB(cfg.DB)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT発行・検証
	generator, err := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("invalid JWT configuration: %v", err)
	}
	verifier := jwtmw.NewVerifier(cfg.JWTSecret, cfg.JWTAlgorithm)

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	todoRepo := todoadapters.NewTodoMySQL(db)

	// Redisキャッシュでラップ
	cachedTodoRepo := cache.NewCachingTodoRepository(rdb, 0, todoRepo, "todos")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, generator)
	todoUC := todousecase.NewTodoUsecase(cachedTodoRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, cfg.TokenTTL)
	todoH := todohandler.NewTodoHandler(todoUC)

	// ルータ生成
	router := router.NewRouter(authH, todoH, verifier)

	// CORS追加
	router.Use(cors.Default())

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
