package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-lobby/internal/config"
	"github.com/yourusername/trivia-lobby/internal/handler"
	"github.com/yourusername/trivia-lobby/internal/middleware"
	pgRepo "github.com/yourusername/trivia-lobby/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-lobby/internal/repository/redis"
	"github.com/yourusername/trivia-lobby/internal/service"
	"github.com/yourusername/trivia-lobby/pkg/auth"
	"github.com/yourusername/trivia-lobby/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}

	// Репозитории
	playerRepo := pgRepo.NewPlayerRepo(db)
	lobbyRepo := pgRepo.NewLobbyRepo(db)
	roundRepo := pgRepo.NewRoundRepo(db)
	answerRepo := pgRepo.NewAnswerRepo(db)
	crowdRepo := pgRepo.NewCrowdMeterRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	agentJobRepo := pgRepo.NewAgentJobRepo(db)
	agentRegistrationRepo := pgRepo.NewAgentRegistrationRepo(db)
	cacheRepo := redisRepo.NewCacheRepo(redisClient)

	// Сервис гостевых токенов
	tokenService, err := auth.NewGuestTokenService(cfg.Identity.TokenSecret, cfg.Identity.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to create guest token service: %v", err)
		os.Exit(1)
	}

	// Сервисы
	lobbyService := service.NewLobbyService(lobbyRepo, playerRepo)
	playerService := service.NewPlayerService(playerRepo)
	roundService := service.NewRoundService(lobbyRepo, roundRepo, answerRepo, crowdRepo, questionRepo, playerRepo, cacheRepo)
	gameFinalizer := service.NewGameFinalizer(lobbyRepo, roundRepo, answerRepo, playerRepo, cacheRepo)
	questionService := service.NewQuestionService(questionRepo)
	agentService := service.NewAgentService(agentRegistrationRepo, agentJobRepo, questionRepo)

	// Загружаем стартовый банк вопросов при первом запуске
	if err := questionService.SeedDefaultQuestions(); err != nil {
		log.Printf("Failed to seed question bank: %v", err)
		os.Exit(1)
	}

	// Обработчики
	authHandler := handler.NewAuthHandler(tokenService)
	lobbyHandler := handler.NewLobbyHandler(lobbyService, playerService)
	gameHandler := handler.NewGameHandler(roundService, gameFinalizer)
	questionHandler := handler.NewQuestionHandler(questionService)
	agentHandler := handler.NewAgentHandler(agentService)

	// Middleware
	identityMiddleware := middleware.NewIdentityMiddleware(tokenService)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Роутер
	router := gin.Default()

	if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		log.Printf("Warning: failed to set trusted proxies: %v", err)
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Маршруты API
	api := router.Group("/api")
	{
		// Выдача гостевых токенов (с лимитом на создание личностей)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/guest", rateLimiter.Limit(middleware.GuestTokenRateLimitConfig()), authHandler.IssueGuestToken)
		}

		// Лидерборд и банк вопросов доступны без токена
		api.GET("/leaderboard", lobbyHandler.GetLeaderboard)
		api.GET("/questions", questionHandler.ListQuestions)
		api.GET("/questions/export", questionHandler.ExportQuestions)

		// Игровые маршруты требуют идентификации
		authed := api.Group("/")
		authed.Use(identityMiddleware.RequireIdentity())
		{
			authed.GET("/me", lobbyHandler.GetMe)

			lobbies := authed.Group("/lobbies")
			{
				lobbies.POST("/join", lobbyHandler.JoinLobby)

				lobby := lobbies.Group("/:id")
				lobby.Use(middleware.ExtractUintParam("id", "lobbyID"))
				{
					lobby.GET("", lobbyHandler.GetLobby)
					lobby.POST("/start", gameHandler.StartGame)
					lobby.POST("/finalize", gameHandler.FinalizeGame)
					lobby.GET("/standings", gameHandler.GetStandings)
					lobby.PUT("/lightning", lobbyHandler.SetLightning)
				}
			}

			rounds := authed.Group("/rounds/:id")
			rounds.Use(middleware.ExtractUintParam("id", "roundID"))
			{
				rounds.GET("", gameHandler.GetRound)
				rounds.POST("/begin", gameHandler.BeginRound)
				rounds.POST("/answers", gameHandler.SubmitAnswer)
				rounds.POST("/score", gameHandler.ScoreRound)
				rounds.GET("/crowd-meter", gameHandler.GetCrowdMeter)
			}

			agents := authed.Group("/agents")
			agents.Use(rateLimiter.Limit(middleware.AgentRateLimitConfig()))
			{
				agents.POST("/register", agentHandler.RegisterAgent)

				agent := agents.Group("/:id")
				agent.Use(middleware.ExtractUintParam("id", "agentID"))
				{
					agent.POST("/jobs", agentHandler.RequestWork)
					agent.POST("/questions", agentHandler.SubmitQuestions)
				}
			}

			jobs := authed.Group("/agent-jobs")
			jobs.Use(rateLimiter.Limit(middleware.AgentRateLimitConfig()))
			{
				jobs.GET("", agentHandler.ListJobs)

				job := jobs.Group("/:id")
				job.Use(middleware.ExtractUintParam("id", "jobID"))
				{
					job.PUT("/status", agentHandler.UpdateJobStatus)
				}
			}
		}
	}

	// HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown по SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
