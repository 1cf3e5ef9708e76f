package container

import (
	"context"
	"fmt"
	"time"

	"scentpress-backend/internal/config"
	infraCache "scentpress-backend/internal/infrastructure/cache"
	"scentpress-backend/internal/infrastructure/database"
	"scentpress-backend/internal/infrastructure/storage"
	"scentpress-backend/internal/shared/upload"
	"scentpress-backend/pkg/cache"
	"scentpress-backend/pkg/jwt"
	"scentpress-backend/pkg/logger"

	"scentpress-backend/internal/domains/admin"
	adminHandler "scentpress-backend/internal/domains/admin/handler"
	adminRepo "scentpress-backend/internal/domains/admin/repository"
	adminService "scentpress-backend/internal/domains/admin/service"
	"scentpress-backend/internal/domains/author"
	authorHandler "scentpress-backend/internal/domains/author/handler"
	authorRepo "scentpress-backend/internal/domains/author/repository"
	authorService "scentpress-backend/internal/domains/author/service"
	"scentpress-backend/internal/domains/blog"
	blogHandler "scentpress-backend/internal/domains/blog/handler"
	blogRepo "scentpress-backend/internal/domains/blog/repository"
	blogService "scentpress-backend/internal/domains/blog/service"
	"scentpress-backend/internal/domains/category"
	categoryHandler "scentpress-backend/internal/domains/category/handler"
	categoryRepo "scentpress-backend/internal/domains/category/repository"
	categoryService "scentpress-backend/internal/domains/category/service"
	"scentpress-backend/internal/domains/comment"
	commentHandler "scentpress-backend/internal/domains/comment/handler"
	commentRepo "scentpress-backend/internal/domains/comment/repository"
	commentService "scentpress-backend/internal/domains/comment/service"
	"scentpress-backend/internal/domains/designer"
	designerHandler "scentpress-backend/internal/domains/designer/handler"
	designerRepo "scentpress-backend/internal/domains/designer/repository"
	designerService "scentpress-backend/internal/domains/designer/service"
	"scentpress-backend/internal/domains/feedback"
	feedbackHandler "scentpress-backend/internal/domains/feedback/handler"
	feedbackRepo "scentpress-backend/internal/domains/feedback/repository"
	feedbackService "scentpress-backend/internal/domains/feedback/service"
	"scentpress-backend/internal/domains/note"
	noteHandler "scentpress-backend/internal/domains/note/handler"
	noteRepo "scentpress-backend/internal/domains/note/repository"
	noteService "scentpress-backend/internal/domains/note/service"
	"scentpress-backend/internal/domains/perfumer"
	perfumerHandler "scentpress-backend/internal/domains/perfumer/handler"
	perfumerRepo "scentpress-backend/internal/domains/perfumer/repository"
	perfumerService "scentpress-backend/internal/domains/perfumer/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in layer order: config, infrastructure,
// repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Images     upload.Store
	JWTManager *jwt.Manager

	AdminRepo    admin.Repository
	BlogRepo     blog.Repository
	DesignerRepo designer.Repository
	PerfumerRepo perfumer.Repository
	NoteRepo     note.Repository
	AuthorRepo   author.Repository
	CategoryRepo category.Repository
	CommentRepo  comment.Repository
	FeedbackRepo feedback.Repository

	AdminService    admin.Service
	BlogService     blog.Service
	DesignerService designer.Service
	PerfumerService perfumer.Service
	NoteService     note.Service
	AuthorService   author.Service
	CategoryService category.Service
	CommentService  comment.Service
	FeedbackService feedback.Service

	AdminHandler    *adminHandler.AdminHandler
	BlogHandler     *blogHandler.BlogHandler
	DesignerHandler *designerHandler.DesignerHandler
	PerfumerHandler *perfumerHandler.PerfumerHandler
	NoteHandler     *noteHandler.NoteHandler
	AuthorHandler   *authorHandler.AuthorHandler
	CategoryHandler *categoryHandler.CategoryHandler
	CommentHandler  *commentHandler.CommentHandler
	FeedbackHandler *feedbackHandler.FeedbackHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("configuration loaded", map[string]interface{}{"environment": cfg.App.Environment})

	db := database.NewPostgresDB(&cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis)
	if err := redisCache.Ping(context.Background()); err != nil {
		// Cache is an optimization, not a dependency worth failing boot for.
		logger.Warn("redis unreachable, continuing without warm cache", map[string]interface{}{"error": err.Error()})
	}
	c.Cache = redisCache

	images, err := storage.NewMinIOStorage(cfg.MinIO, storage.NewImageProcessor())
	if err != nil {
		return nil, fmt.Errorf("failed to init image storage: %w", err)
	}
	c.Images = images

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AdminRepo = adminRepo.NewPostgresRepository(pool)
	c.BlogRepo = blogRepo.NewPostgresRepository(pool)
	c.DesignerRepo = designerRepo.NewPostgresRepository(pool)
	c.PerfumerRepo = perfumerRepo.NewPostgresRepository(pool)
	c.NoteRepo = noteRepo.NewPostgresRepository(pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
	c.FeedbackRepo = feedbackRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AdminService = adminService.NewAdminService(c.AdminRepo, c.JWTManager)
	c.DesignerService = designerService.NewDesignerService(c.DesignerRepo, c.Images)
	c.PerfumerService = perfumerService.NewPerfumerService(c.PerfumerRepo, c.Images)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.Images)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.NoteService = noteService.NewNoteService(c.NoteRepo, c.CategoryRepo, c.Images)
	c.BlogService = blogService.NewBlogService(
		c.BlogRepo, c.DesignerRepo, c.PerfumerRepo, c.AuthorRepo, c.NoteRepo,
		c.Images, c.Cache,
	)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.BlogRepo)
	c.FeedbackService = feedbackService.NewFeedbackService(c.FeedbackRepo)
}

func (c *Container) initHandlers() {
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.DesignerHandler = designerHandler.NewDesignerHandler(c.DesignerService)
	c.PerfumerHandler = perfumerHandler.NewPerfumerHandler(c.PerfumerService)
	c.NoteHandler = noteHandler.NewNoteHandler(c.NoteService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.FeedbackHandler = feedbackHandler.NewFeedbackHandler(c.FeedbackService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis connection", err)
		}
	}
}
