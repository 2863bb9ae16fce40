package news

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/virtualzone/virtualzone-api/internal/middleware"
)

// NewsRoutes sets up the public news/posts feed, comment submission and
// admin moderation endpoints.
func NewsRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	newsRepo := NewNewsRepository(db)
	newsController := NewNewsController(newsRepo)

	router.GET("/news", newsController.GetAllNews)
	router.GET("/news/:news_id", newsController.GetNewsByID)
	router.GET("/news/:news_id/comments", newsController.GetComments)
	router.POST("/news/:news_id/comments", newsController.CreateComment)
	router.GET("/posts", newsController.GetPosts)
	router.POST("/comments/:comment_id/report", newsController.ReportComment)

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(mw.AdminMiddleware())
	{
		adminRoutes.POST("/news", newsController.CreateNews)
		adminRoutes.PUT("/news/:news_id", newsController.UpdateNews)
		adminRoutes.DELETE("/news/:news_id", newsController.DeleteNews)
		adminRoutes.GET("/comments", newsController.GetAllComments)
		adminRoutes.PUT("/comments/:comment_id/approve", newsController.ApproveComment)
		adminRoutes.PUT("/comments/:comment_id/hide", newsController.HideComment)
		adminRoutes.DELETE("/comments/:comment_id", newsController.DeleteComment)
	}
}
