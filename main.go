package main

import (
	"fmt"
	"log"
	"regexp"
	"staffeval/config"
	"staffeval/controller"
	"staffeval/docs"
	"staffeval/service"
	"strings"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// @title           Staff Evaluation API
// @version         1.0
// @description     Backend API for peer evaluations between staff members of a group.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	t := time.Now()

	cfg := config.Env()
	db, err := config.InitDB(
		config.DSN(cfg.DatabaseHost, cfg.DatabasePort, cfg.PostgresUser, cfg.PostgresPassword, cfg.DatabaseName),
		cfg.DatabaseSchema,
	)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	err = r.SetTrustedProxies(nil)
	if err != nil {
		fmt.Println("Failed to set trusted proxies:", err)
		return
	}
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r, cfg.CorsOrigins)
	cacheStore := persistence.NewInMemoryStore(60 * time.Second)
	controller.SetRoutes(r, db, cacheStore, evaluationPublisher(cfg))
	fmt.Println("Server started in", time.Since(t))
	err = r.Run(":" + cfg.Port)
	if err != nil {
		fmt.Println("Failed to start server:", err)
	}
}

func evaluationPublisher(cfg *config.Config) service.EvaluationPublisher {
	if cfg.KafkaBroker == "" {
		return service.NoopEvaluationPublisher{}
	}
	if err := config.CreateTopic(cfg.EvaluationTopic); err != nil {
		log.Printf("Failed to create topic %s: %v", cfg.EvaluationTopic, err)
	}
	writer, err := config.GetWriter(cfg.EvaluationTopic)
	if err != nil {
		log.Printf("Evaluation events disabled: %v", err)
		return service.NoopEvaluationPublisher{}
	}
	return service.NewKafkaEvaluationPublisher(writer)
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/metrics"},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	re := regexp.MustCompile(`\d+`)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.Split(c.Request.URL.String(), "?")[0]
		url = re.ReplaceAllString(url, "?")
		return strings.TrimPrefix(url, "/api")
	}
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func setCors(r *gin.Engine, origins []string) {
	corsConfigGetOptions := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	corsConfigOtherMethods := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			requestedMethod := c.GetHeader("Access-Control-Request-Method")
			if requestedMethod == "GET" || requestedMethod == "OPTIONS" {
				cors.New(corsConfigGetOptions)(c)
			} else {
				cors.New(corsConfigOtherMethods)(c)
			}
			c.AbortWithStatus(204)
			return
		}

		if c.Request.Method == "GET" {
			cors.New(corsConfigGetOptions)(c)
		} else {
			cors.New(corsConfigOtherMethods)(c)
		}
	})
}
