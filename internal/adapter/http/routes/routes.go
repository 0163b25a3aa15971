package routes

import (
	"log"
	"os"
	"strconv"

	_ "freightdesk/docs" // This will be auto-generated
	"freightdesk/internal/adapter/http/handlers"
	"freightdesk/internal/adapter/persistence/repository"
	"freightdesk/internal/infrastructure/catalog"
	"freightdesk/internal/infrastructure/database"
	"freightdesk/internal/usecase"
	"freightdesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	draftRepo := repository.NewDraftDynamoRepository(ddb)
	store := usecase.NewSessionStore(draftRepo)

	var catalogGw interfaces.ICatalogGateway
	gw, err := catalog.NewHTTPGateway(os.Getenv("CATALOG_BASE_URL"))
	if err != nil {
		log.Printf("Catalog gateway not configured: %v", err)
	} else {
		catalogGw = gw
	}

	quoteHandler := handlers.NewQuoteHandler(store, catalogGw)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
