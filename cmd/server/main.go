package main

import (
	"database/sql"
	"log"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"github.com/LiamSteyn/international-payments-portal/internal/command"
	"github.com/LiamSteyn/international-payments-portal/internal/config"
	"github.com/LiamSteyn/international-payments-portal/internal/cqrs"
	"github.com/LiamSteyn/international-payments-portal/internal/events"
	"github.com/LiamSteyn/international-payments-portal/internal/handler"
	"github.com/LiamSteyn/international-payments-portal/internal/middleware"
	"github.com/LiamSteyn/international-payments-portal/internal/models"
	"github.com/LiamSteyn/international-payments-portal/internal/query"
	redisClient "github.com/LiamSteyn/international-payments-portal/internal/redisclient"
	"github.com/LiamSteyn/international-payments-portal/internal/repository"
	"github.com/LiamSteyn/international-payments-portal/internal/token"
)

func main() {
	cfg := config.Load()
	if cfg.DevSecret {
		log.Println("WARNING: JWT_SECRET is not set; using the insecure development signing key")
	}

	// Storage: in-memory by default (records last for the process lifetime),
	// PostgreSQL when DATABASE_URL is set.
	var principalRepo repository.PrincipalRepository
	var transactionRepo repository.TransactionRepository
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		principalRepo = repository.NewPostgresPrincipalRepository(db)
		transactionRepo = repository.NewPostgresTransactionRepository(db)
		log.Println("Using PostgreSQL-backed stores")
	} else {
		principalRepo = repository.NewMemoryPrincipalRepository()
		transactionRepo = repository.NewMemoryTransactionRepository()
		log.Println("Using in-memory stores")
	}

	// Event publishing is optional; without Redis the portal runs standalone.
	var publisher *events.Publisher
	if cfg.RedisAddr != "" {
		redis, err := redisClient.NewClient(cfg.RedisAddr, cfg.RedisPassword, 0)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redis.Close()
		publisher = events.NewPublisher(redis.Client)
	}

	tokens := token.NewManager([]byte(cfg.JWTSecret), cfg.TokenTTL)

	principalCmds := command.NewPrincipalCommandService(principalRepo, publisher, cfg.BcryptCost)
	paymentCmds := command.NewPaymentCommandService(transactionRepo, publisher)
	authQrys := query.NewAuthQueryService(principalRepo, tokens)
	paymentQrys := query.NewPaymentQueryService(transactionRepo)

	principalCmds.Seed(defaultFixtures())

	authHandler := handler.NewAuthHandler(authQrys)
	paymentHandler := handler.NewPaymentHandler(paymentCmds, paymentQrys)

	router := gin.Default()
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	v1.POST("/auth/login", authHandler.Login)

	payments := v1.Group("/payments", middleware.AuthMiddleware(tokens),
		middleware.RequireRoles(models.RoleCustomer, models.RoleEmployee))
	{
		payments.POST("", paymentHandler.RecordPayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:transactionId", paymentHandler.GetPayment)
	}

	log.Printf("Payments portal starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// defaultFixtures are the pre-seeded logins for the demo profile.
// Registration is disabled, so these are the only credentials unless a
// durable store is provisioned out of band.
func defaultFixtures() []cqrs.CreatePrincipalCommand {
	return []cqrs.CreatePrincipalCommand{
		{Email: "customer@example.com", Password: "Customer1!", Role: models.RoleCustomer},
		{Email: "employee@example.com", Password: "Employee1!", Role: models.RoleEmployee},
	}
}
