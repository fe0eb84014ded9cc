package routes

import (
	"context"
	"log"
	"strconv"
	"time"

	_ "marcenaria_rampanelli/docs" // This will be auto-generated
	"marcenaria_rampanelli/internal/adapter/http/handlers"
	repository2 "marcenaria_rampanelli/internal/adapter/persistence/repository"
	"marcenaria_rampanelli/internal/config"
	"marcenaria_rampanelli/internal/infrastructure/database"
	"marcenaria_rampanelli/internal/infrastructure/documents"
	"marcenaria_rampanelli/internal/infrastructure/payments"
	"marcenaria_rampanelli/internal/usecase"
	"marcenaria_rampanelli/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err = router.Run(":" + strconv.Itoa(cfg.App.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ctx := context.Background()
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	materialRepo := repository2.NewMaterialDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	if err := materialRepo.SeedIfEmpty(ctx, repository2.SeedMaterials()); err != nil {
		log.Printf("Failed to seed material catalog: %v", err)
	}
	if err := quoteRepo.SeedIfEmpty(ctx, repository2.SeedQuotes()); err != nil {
		log.Printf("Failed to seed sample quotes: %v", err)
	}

	directory := repository2.NewClientMemoryDirectory()
	if quotes, err := quoteRepo.List(ctx); err != nil {
		log.Printf("Failed to load quotes for the client directory: %v", err)
	} else {
		for _, c := range repository2.SeedClients(quotes) {
			if _, err := directory.Add(ctx, c); err != nil {
				log.Printf("Failed to add directory entry: %v", err)
			}
		}
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	materialUseCase := usecase.NewMaterialUseCase(materialRepo)
	clientUseCase := usecase.NewClientUseCase(directory)
	documentUseCase := usecase.NewDocumentUseCase(quoteRepo, documents.NewPDFRenderer())
	authUseCase := usecase.NewAuthUseCase(
		cfg.Auth.OperatorEmail,
		cfg.Auth.OperatorPassword,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, quoteRepo, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	materialHandler := handlers.NewMaterialHandler(materialUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	v1.POST("/auth/login", authHandler.Login)

	// Rotas protegidas
	protected := v1.Group("")
	protected.Use(authMiddleware(authUseCase))
	addQuoteRoutes(protected, quoteHandler, documentHandler, paymentHandler)
	addCatalogRoutes(protected, materialHandler, clientHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
