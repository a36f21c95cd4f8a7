package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	adapterhttp "library-backend/internal/adapter/http"
	"library-backend/internal/adapter/middleware"
	"library-backend/internal/adapter/repository/mysql"
	"library-backend/internal/config"
	"library-backend/internal/domain/user"
	"library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/db"
	usecaseAI "library-backend/internal/usecase/ai"
	usecaseBook "library-backend/internal/usecase/book"
	usecaseFavorite "library-backend/internal/usecase/favorite"
	usecaseLoan "library-backend/internal/usecase/loan"
	usecaseReview "library-backend/internal/usecase/review"
	usecaseUser "library-backend/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories
	loanRepo := mysql.NewLoanRepository(gdb)
	bookRepo := mysql.NewBookRepository(gdb)
	authorRepo := mysql.NewAuthorRepository(gdb)
	categoryRepo := mysql.NewCategoryRepository(gdb)
	reviewRepo := mysql.NewReviewRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	favoriteRepo := mysql.NewFavoriteRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	// usecases
	loanUC := usecaseLoan.NewUsecase(loanRepo, bookRepo, unit, cfg.FineDailyRate)
	bookUC := usecaseBook.NewUsecase(bookRepo, authorRepo, categoryRepo)
	reviewUC := usecaseReview.NewUsecase(reviewRepo, loanRepo, bookRepo)
	userUC := usecaseUser.NewUsecase(userRepo, cfg.JWTSecret, cfg.JWTTTLHours)
	favoriteUC := usecaseFavorite.NewUsecase(favoriteRepo, bookRepo)
	aiUC := usecaseAI.NewUsecase(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel, nil, rdb,
		time.Duration(cfg.AICacheTTLSec)*time.Second)

	// handlers
	authH := adapterhttp.NewAuthHandler(userUC)
	loanH := adapterhttp.NewLoanHandler(loanUC)
	bookH := adapterhttp.NewBookHandler(bookUC)
	reviewH := adapterhttp.NewReviewHandler(reviewUC)
	favoriteH := adapterhttp.NewFavoriteHandler(favoriteUC)
	aiH := adapterhttp.NewAIHandler(aiUC, bookUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Validator = adapterhttp.NewValidator()

	auth := middleware.JWT(cfg.JWTSecret)
	managerOnly := middleware.RequireRole(user.RoleManager)
	borrowerOnly := middleware.RequireRole(user.RoleBorrower)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", adapterhttp.Health)

	// public auth
	e.POST("/auth/register", authH.Register)
	e.POST("/auth/login", authH.Login)
	e.GET("/auth/me", authH.Me, auth)

	// catalog: reads are open to any authenticated actor, writes manager-only
	books := e.Group("/books", auth)
	books.GET("", bookH.List)
	books.GET("/:bookID", bookH.Get)
	books.POST("", bookH.Create, managerOnly)
	books.PATCH("/:bookID", bookH.Update, managerOnly)
	books.DELETE("/:bookID", bookH.Delete, managerOnly)

	authors := e.Group("/authors", auth)
	authors.GET("", bookH.ListAuthors)
	authors.POST("", bookH.CreateAuthor, managerOnly)
	authors.PATCH("/:authorID", bookH.UpdateAuthor, managerOnly)
	authors.DELETE("/:authorID", bookH.DeleteAuthor, managerOnly)

	categories := e.Group("/categories", auth)
	categories.GET("", bookH.ListCategories)
	categories.POST("", bookH.CreateCategory, managerOnly)
	categories.PATCH("/:categoryID", bookH.UpdateCategory, managerOnly)
	categories.DELETE("/:categoryID", bookH.DeleteCategory, managerOnly)

	// loan lifecycle; every mutating transition is idempotency-guarded
	loans := e.Group("/loans", auth)
	loans.POST("", loanH.Create, borrowerOnly, idemp)
	loans.GET("", loanH.List, managerOnly)
	loans.GET("/my", loanH.ListMine)
	loans.GET("/summary", loanH.Summary)
	loans.GET("/:loanID", loanH.Get)
	loans.POST("/:loanID/approve", loanH.Approve, managerOnly, idemp)
	loans.POST("/:loanID/return", loanH.Return, idemp)
	loans.POST("/:loanID/cancel", loanH.Cancel, borrowerOnly, idemp)
	loans.POST("/:loanID/renew", loanH.Renew, idemp)
	loans.POST("/:loanID/pay-fine", loanH.PayFine, borrowerOnly, idemp)

	// reviews
	reviews := e.Group("/reviews", auth)
	reviews.POST("", reviewH.Create, borrowerOnly)
	reviews.GET("", reviewH.List, managerOnly)
	reviews.POST("/:reviewID/approve", reviewH.Approve, managerOnly)
	reviews.POST("/:reviewID/reject", reviewH.Reject, managerOnly)
	books.GET("/:bookID/reviews", reviewH.ListForBook)
	books.GET("/:bookID/can-review", reviewH.CanReview, borrowerOnly)

	// favorites
	books.POST("/:bookID/favorite", favoriteH.Add, borrowerOnly)
	books.DELETE("/:bookID/favorite", favoriteH.Remove, borrowerOnly)
	books.GET("/:bookID/favorite", favoriteH.Status, borrowerOnly)
	e.GET("/favorites", favoriteH.List, auth, borrowerOnly)

	// ai assistant
	books.POST("/:bookID/summary", aiH.Summarize)
	books.POST("/:bookID/chat", aiH.Chat)

	// users (manager console)
	e.GET("/users", authH.ListUsers, auth, managerOnly)

	log.Printf("listening on :%s", cfg.AppPort)
	if err := e.Start(":" + cfg.AppPort); err != nil {
		log.Fatal(err)
	}
}
