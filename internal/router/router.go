package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nomad-place-api/internal/client"
	"nomad-place-api/internal/handler"
	"nomad-place-api/internal/metrics"
	"nomad-place-api/internal/middleware"
	"nomad-place-api/internal/repository"
	"nomad-place-api/internal/service"
)

// Config holds all dependencies needed to build the router
type Config struct {
	DB             *gorm.DB
	RedisClient    *redis.Client
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	BoardsBasePath string
	Metrics        *metrics.Metrics
	NaverClient    client.NaverMapClient
}

// Setup creates the gin engine with all routes and middleware wired
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS())
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Initialize repositories
	cafeRepo := repository.NewCafeRepository(cfg.DB)
	ratingRepo := repository.NewRatingRepository(cfg.DB)
	reviewRepo := repository.NewReviewRepository(cfg.DB)
	boardRepo := repository.NewBoardRepository(cfg.DB)
	postRepo := repository.NewPostRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	profileRepo := repository.NewProfileRepository(cfg.DB)

	// Initialize services
	cafeService := service.NewCafeService(cafeRepo, profileRepo, cfg.NaverClient, cfg.RedisClient, cfg.Metrics, cfg.Logger)
	ratingService := service.NewRatingService(ratingRepo, cafeRepo, cafeService, cfg.Metrics, cfg.Logger)
	reviewService := service.NewReviewService(reviewRepo, cafeRepo, cfg.Logger)
	boardService := service.NewBoardService(boardRepo, cfg.Logger)
	postService := service.NewPostService(postRepo, boardService, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, postRepo, boardService, cfg.Logger)
	profileService := service.NewProfileService(profileRepo, cfg.Logger)
	directionService := service.NewDirectionService(cafeRepo, cfg.NaverClient, cfg.Logger)

	// Initialize handlers
	cafeHandler := handler.NewCafeHandler(cafeService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	boardHandler := handler.NewBoardHandler(boardService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	profileHandler := handler.NewProfileHandler(profileService)
	directionHandler := handler.NewDirectionHandler(directionService)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.RedisClient)

	// Health and operational endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := middleware.Auth(cfg.JWTSecret)
	optionalAuth := middleware.AuthOptional(cfg.JWTSecret)

	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "/api/places"
	}
	boardsBasePath := cfg.BoardsBasePath
	if boardsBasePath == "" {
		boardsBasePath = "/api/boards"
	}

	// Place catalog, ratings, reviews, directions, profiles
	places := r.Group(basePath)
	{
		places.GET("/health", healthHandler.Health)
		places.GET("/ready", healthHandler.Ready)

		// Public reads carry optional identity so nearby search can fall
		// back to the caller's stored profile location
		public := places.Group("", optionalAuth)
		{
			public.POST("/cafes/nearby", cafeHandler.NearbyCafes)
			public.GET("/cafes/midpoint", cafeHandler.MidpointCafes)
			public.GET("/cafes/by-name/:name", cafeHandler.GetCafeByName)
			public.GET("/cafes/:cafeId", cafeHandler.GetCafe)
			public.GET("/cafes/:cafeId/ratings", ratingHandler.GetRatingSummary)
			public.GET("/cafes/:cafeId/reviews", reviewHandler.ListReviews)
			public.GET("/search", cafeHandler.SearchPlaces)
			public.POST("/directions", directionHandler.GetDirections)
			public.POST("/directions/meet", directionHandler.GetMeetingDirections)
		}

		authenticated := places.Group("", requireAuth)
		{
			authenticated.POST("/cafes/:cafeId/ratings", ratingHandler.SubmitRating)
			authenticated.PATCH("/ratings/:ratingId", ratingHandler.UpdateRating)
			authenticated.DELETE("/ratings/:ratingId", ratingHandler.DeleteRating)
			authenticated.POST("/cafes/:cafeId/reviews", reviewHandler.CreateReview)
			authenticated.PATCH("/reviews/:reviewId", reviewHandler.UpdateReview)
			authenticated.DELETE("/reviews/:reviewId", reviewHandler.DeleteReview)
			authenticated.GET("/profiles/me", profileHandler.GetMyProfile)
			authenticated.PUT("/profiles/me", profileHandler.UpdateMyProfile)
		}
	}

	// Community boards
	boards := r.Group(boardsBasePath)
	{
		public := boards.Group("", optionalAuth)
		{
			public.GET("/:kind", boardHandler.ListBoards)
			public.GET("/:kind/:boardId/posts", postHandler.ListPosts)
			public.GET("/:kind/:boardId/posts/:postId", postHandler.GetPost)
			public.GET("/:kind/:boardId/posts/:postId/comments", commentHandler.ListComments)
			public.GET("/:kind/:boardId/posts/:postId/comments/:commentId", commentHandler.GetComment)
		}

		authenticated := boards.Group("", requireAuth)
		{
			authenticated.POST("/:kind", boardHandler.CreateBoard)
			authenticated.POST("/:kind/:boardId/posts", postHandler.CreatePost)
			authenticated.PATCH("/:kind/:boardId/posts/:postId", postHandler.UpdatePost)
			authenticated.DELETE("/:kind/:boardId/posts/:postId", postHandler.DeletePost)
			authenticated.POST("/:kind/:boardId/posts/:postId/comments", commentHandler.CreateComment)
			authenticated.PATCH("/:kind/:boardId/posts/:postId/comments/:commentId", commentHandler.UpdateComment)
			authenticated.DELETE("/:kind/:boardId/posts/:postId/comments/:commentId", commentHandler.DeleteComment)
		}
	}

	return r
}
