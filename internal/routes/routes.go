package routes

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/01moynul/inventory-golang/internal/handlers"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware tells the browser that cross-origin calls to the API are
// allowed. The API carries no credentials, so a wildcard origin is fine.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// The browser sends an empty preflight request first; reply 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())

	api := router.Group("/api")
	{
		// --- Health Check ---
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success":   true,
				"message":   "API is running",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		// --- Category Routes ---
		categories := api.Group("/categories")
		{
			categories.GET("", h.GetAllCategories)
			categories.GET("/:id", h.GetCategory)
			categories.POST("", h.CreateCategory)
			categories.PUT("/:id", h.UpdateCategory)
			categories.DELETE("/:id", h.DeleteCategory)
		}

		// --- Product Routes ---
		products := api.Group("/products")
		{
			products.GET("", h.GetAllProducts)
			products.GET("/:id", h.GetProduct)
			products.GET("/category/:categoryId", h.GetProductsByCategory)
			products.POST("", h.CreateProduct)
			products.PUT("/:id", h.UpdateProduct)
			products.PATCH("/:id/stock", h.UpdateProductStock)
			products.DELETE("/:id", h.DeleteProduct)
		}
	}

	// --- Static Frontend ---
	router.StaticFile("/", "./web/index.html")
	router.StaticFile("/app.js", "./web/app.js")
	router.StaticFile("/styles.css", "./web/styles.css")

	// Unmatched /api/* paths get the JSON 404 envelope; anything else falls
	// through to the frontend.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path),
			})
			return
		}
		c.File("./web/index.html")
	})

	return router
}
