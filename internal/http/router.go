package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mrlokans/library/docs"
)

const swaggerIndexPath = "/swagger/index.html"

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.Books)
	customersController := NewCustomersController(cfg.Customers)
	loansController := NewLoansController(cfg.Loans)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Books
	router.GET("/livros", booksController.List)
	router.POST("/livros", booksController.Create)
	router.PUT("/livros/:id", booksController.Update)
	router.DELETE("/livros/:id", booksController.Delete)

	// Customers
	router.GET("/clientes", customersController.List)
	router.POST("/clientes", customersController.Create)
	router.PUT("/clientes/:id", customersController.Update)
	router.DELETE("/clientes/:id", customersController.Delete)

	// Loans
	router.GET("/emprestimos", loansController.List)
	router.POST("/emprestimos", loansController.Create)
	router.DELETE("/emprestimos/:id", loansController.Delete)

	if cfg.DocsEnabled {
		if cfg.Version != "" {
			docs.SwaggerInfo.Version = cfg.Version
		}
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
			ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		))
		router.GET("/api-docs", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, swaggerIndexPath)
		})
	}

	return router
}
