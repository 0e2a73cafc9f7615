package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/demaceo/mhi/internal/api/handlers"
	"github.com/demaceo/mhi/internal/api/middleware"
	"github.com/demaceo/mhi/internal/captcha"
	"github.com/demaceo/mhi/internal/config"
	"github.com/demaceo/mhi/internal/services"
	"github.com/demaceo/mhi/web"
)

// SetupRouter configures and returns the main Gin engine: the marketing pages,
// the static assets, and the form submission API.
func SetupRouter(cfg *config.Config, leadService services.ILeadService) *gin.Engine {
	captchaVerifier := captcha.NewTurnstileVerifier(cfg)

	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())

	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)

	r.Use(middleware.CORSMiddleware())

	contactHandler := handlers.NewContactHandler(leadService)
	siteHandler := handlers.NewSiteHandler(cfg)

	// Pages and assets stay unthrottled: a single page visit bursts several
	// requests and must never trip a limiter. Only the submission API is
	// gated behind captcha + rate limiting.
	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/", siteHandler.Home)
	r.GET("/about", siteHandler.About)
	r.GET("/services", siteHandler.Services)
	r.GET("/work", siteHandler.Work)
	r.GET("/work/:slug", siteHandler.WorkDetail)
	r.GET("/contact", siteHandler.Contact)
	r.GET("/privacy", siteHandler.Privacy)
	r.GET("/terms", siteHandler.Terms)

	v1 := r.Group("/v1")
	// Order matters: captcha sets the verification flag the limiter reads.
	v1.Use(middleware.CaptchaMiddleware(cfg, captchaVerifier))
	v1.Use(rateLimiter.Limit())
	{
		v1.POST("/contact", contactHandler.Submit)

		v1.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})
	}

	return r
}

// SetupServiceRouter configures and returns the service Gin engine. Runs on a
// separate port for operational commands and end-to-end test support.
func SetupServiceRouter(cfg *config.Config, rdb *redis.Client, shutdownChan chan<- struct{}) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.POST("/api", func(c *gin.Context) {
		var req struct {
			Method    string          `json:"method"`
			Arguments json.RawMessage `json:"arguments"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
			return
		}

		switch req.Method {
		case "shutdown":
			fmt.Println("Received shutdown command via Service API")
			c.JSON(http.StatusOK, gin.H{"success": true, "result": "Shutdown initiated"})
			select {
			case shutdownChan <- struct{}{}:
				fmt.Println("Shutdown signal sent successfully.")
			default:
				fmt.Println("Shutdown channel already signaled or blocked.")
			}
		case "getTestEmail":
			if rdb == nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Mock email capture not enabled"})
				return
			}
			var args []string // Expect ["kind", "email"]
			if err := json.Unmarshal(req.Arguments, &args); err != nil || len(args) != 2 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid arguments: expected JSON array [kind, email]"})
				return
			}
			kind := args[0]
			emailAddr := args[1]
			redisKey := fmt.Sprintf("mockemail:%s:%s", emailAddr, kind)

			// Poll Redis briefly for the key
			var emailJsonData string
			var getErr error
			found := false
			ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
			defer cancel()
			for i := 0; i < 10; i++ { // Poll up to ~2 seconds
				emailJsonData, getErr = rdb.Get(ctx, redisKey).Result()
				if getErr == nil {
					found = true
					rdb.Del(ctx, redisKey) // Delete after fetching
					break
				}
				if getErr != redis.Nil {
					log.Printf("Service API: Error getting key %s from Redis: %v", redisKey, getErr)
					c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Redis error"})
					return
				}
				time.Sleep(200 * time.Millisecond)
			}

			if !found {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": fmt.Sprintf("Test email not found in Redis for key %s", redisKey)})
				return
			}

			var emailData map[string]interface{}
			if err := json.Unmarshal([]byte(emailJsonData), &emailData); err != nil {
				log.Printf("Service API: Error unmarshalling email data from key %s: %v", redisKey, err)
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to parse stored email data"})
				return
			}

			c.JSON(http.StatusOK, gin.H{"success": true, "data": emailData})

		default:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": fmt.Sprintf("Unknown service method: %s", req.Method)})
		}
	})
	return r
}
