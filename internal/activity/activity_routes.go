package activity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/virtualzone/virtualzone-api/config"
	mw "github.com/virtualzone/virtualzone-api/internal/middleware"
	"github.com/virtualzone/virtualzone-api/pkg/responses"
)

// ActivityRoutes registers the admin activity-log read endpoint.
func ActivityRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	repo := NewActivityRepository(db)

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(mw.AdminMiddleware())
	{
		adminRoutes.GET("/activity", func(c *gin.Context) {
			page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
			limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
			entries, total, err := repo.GetAll(page, limit)
			if err != nil {
				responses.InternalServerError(c, "Failed to fetch activity log")
				return
			}
			responses.SendPaginated(c, http.StatusOK, "", entries, total, page, limit)
		})
	}
}
