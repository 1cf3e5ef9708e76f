package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scentpress-backend/internal/shared/middleware"
	"scentpress-backend/internal/shared/upload"
	"scentpress-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	admin := middleware.RequireAdmin(c.JWTManager)

	router.POST("/admin/login", c.AdminHandler.Login)

	// Write routes for multipart entities run the upload middleware first:
	// files are stored before the handler validates, and the pipeline
	// compensates against the resulting manifest on failure.
	blog := router.Group("/blog")
	{
		blogFiles := upload.Files(c.Images, "image1", "image2")
		blog.POST("/addBlog", admin, blogFiles, c.BlogHandler.Add)
		blog.GET("/getAllBlogs", c.BlogHandler.GetAll)
		blog.GET("/getBlogBySlug/:slug", c.BlogHandler.GetBySlug)
		blog.PUT("/updateBlog/:id", admin, blogFiles, c.BlogHandler.Update)
		blog.DELETE("/deleteBlog/:id", admin, c.BlogHandler.Delete)
	}

	designer := router.Group("/designer")
	{
		designerFiles := upload.Files(c.Images, "logo")
		designer.POST("/addDesigner", admin, designerFiles, c.DesignerHandler.Add)
		designer.GET("/getAllDesigners", c.DesignerHandler.GetAll)
		designer.GET("/getDesignerBySlug/:slug", c.DesignerHandler.GetBySlug)
		designer.PUT("/updateDesigner/:slug", admin, designerFiles, c.DesignerHandler.Update)
		designer.DELETE("/deleteDesigner/:id", admin, c.DesignerHandler.Delete)
	}

	perfumer := router.Group("/perfumer")
	{
		perfumerFiles := upload.Files(c.Images, "image")
		perfumer.POST("/addPerfumer", admin, perfumerFiles, c.PerfumerHandler.Add)
		perfumer.GET("/getAllPerfumers", c.PerfumerHandler.GetAll)
		perfumer.GET("/getPerfumerBySlug/:slug", c.PerfumerHandler.GetBySlug)
		perfumer.PUT("/updatePerfumer/:id", admin, perfumerFiles, c.PerfumerHandler.Update)
		perfumer.DELETE("/deletePerfumer/:id", admin, c.PerfumerHandler.Delete)
	}

	note := router.Group("/note")
	{
		noteFiles := upload.Files(c.Images, "profilePic", "coverPic")
		note.POST("/addNote", admin, noteFiles, c.NoteHandler.Add)
		note.GET("/getAllNotes", c.NoteHandler.GetAll)
		note.GET("/getNoteBySlug/:slug", c.NoteHandler.GetBySlug)
		note.PUT("/updateNote/:id", admin, noteFiles, c.NoteHandler.Update)
		note.DELETE("/deleteNote/:id", admin, c.NoteHandler.Delete)
	}

	author := router.Group("/author")
	{
		authorFiles := upload.Files(c.Images, "authorPic")
		author.POST("/addAuthor", admin, authorFiles, c.AuthorHandler.Add)
		author.GET("/getAllAuthors", c.AuthorHandler.GetAll)
		author.GET("/getAuthorBySlug/:slug", c.AuthorHandler.GetBySlug)
		author.PUT("/updateAuthor/:id", admin, authorFiles, c.AuthorHandler.Update)
		author.DELETE("/deleteAuthor/:id", admin, c.AuthorHandler.Delete)
	}

	category := router.Group("/category")
	{
		category.POST("/addCategory", admin, c.CategoryHandler.Add)
		category.GET("/getAllCategories", c.CategoryHandler.GetAll)
		category.GET("/getCategory/:id", c.CategoryHandler.GetByID)
		category.PUT("/updateCategory/:id", admin, c.CategoryHandler.Update)
		category.DELETE("/deleteCategory/:id", admin, c.CategoryHandler.Delete)
	}

	comment := router.Group("/comment")
	{
		comment.POST("/addComment", c.CommentHandler.Add)
		comment.GET("/getAllComments", c.CommentHandler.GetAll)
		comment.PUT("/approveComment/:id", admin, c.CommentHandler.Approve)
		comment.DELETE("/deleteComment/:id", admin, c.CommentHandler.Delete)
	}

	feedback := router.Group("/feedback")
	{
		feedback.POST("/addFeedback", c.FeedbackHandler.Add)
		feedback.GET("/getAllFeedbacks", admin, c.FeedbackHandler.GetAll)
		feedback.DELETE("/deleteFeedback/:id", admin, c.FeedbackHandler.Delete)
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
			status = http.StatusServiceUnavailable
		}
		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}
		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}
