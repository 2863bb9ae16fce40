package club

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/virtualzone/virtualzone-api/internal/activity"
	"github.com/virtualzone/virtualzone-api/pkg/responses"
)

// ClubController handles club management requests.
type ClubController struct {
	repo     ClubRepository
	activity activity.ActivityRepository
}

// NewClubController creates a new club controller.
func NewClubController(repo ClubRepository, activityRepo activity.ActivityRepository) *ClubController {
	return &ClubController{repo: repo, activity: activityRepo}
}

type CreateClubRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	ShortName string `json:"short_name" binding:"max=10"`
	Logo      string `json:"logo"`
	Budget    int64  `json:"budget" binding:"gte=0"`
	Stadium   string `json:"stadium"`
	Founded   int    `json:"founded"`
}

type UpdateClubRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=100"`
	ShortName *string `json:"short_name" binding:"omitempty,max=10"`
	Logo      *string `json:"logo"`
	Stadium   *string `json:"stadium"`
	Founded   *int    `json:"founded"`
}

type AssignManagerRequest struct {
	UserID *uint `json:"user_id"` // nil unassigns the current manager
}

type AdjustBudgetRequest struct {
	Delta  int64  `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"max=200"`
}

// GetAllClubs godoc
// @Summary List clubs
// @Tags Clubs
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse{data=[]Club}
// @Router /clubs [get]
func (cc *ClubController) GetAllClubs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filters := map[string]interface{}{}
	if name := c.Query("name"); name != "" {
		filters["name"] = name
	}

	clubs, total, err := cc.repo.GetAll(page, limit, filters)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch clubs")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", clubs, total, page, limit)
}

// GetClubByID godoc
// @Summary Get a club
// @Tags Clubs
// @Produce json
// @Param club_id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=Club}
// @Failure 404 {object} responses.ErrorResponse
// @Router /clubs/{club_id} [get]
func (cc *ClubController) GetClubByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid club ID")
		return
	}
	club, err := cc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch club")
		return
	}
	if club == nil {
		responses.NotFound(c, "Club")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", club)
}

// CreateClub godoc
// @Summary Create a club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club body CreateClubRequest true "Club data"
// @Success 201 {object} responses.SuccessResponse{data=Club}
// @Failure 409 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/clubs [post]
func (cc *ClubController) CreateClub(c *gin.Context) {
	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if existing, _ := cc.repo.GetByName(req.Name); existing != nil {
		responses.SendError(c, http.StatusConflict, "Club name already exists")
		return
	}

	club := Club{
		Name:      req.Name,
		ShortName: req.ShortName,
		Logo:      req.Logo,
		Budget:    req.Budget,
		Stadium:   req.Stadium,
		Founded:   req.Founded,
	}
	if err := cc.repo.Create(&club); err != nil {
		responses.InternalServerError(c, "Failed to create club")
		return
	}

	cc.activity.Append("admin", "club_created", fmt.Sprintf("Club %s creado con presupuesto %d", club.Name, club.Budget))
	responses.SendSuccess(c, http.StatusCreated, "Club created successfully", club)
}

// UpdateClub godoc
// @Summary Update a club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path int true "Club ID"
// @Param club body UpdateClubRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Club}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/clubs/{club_id} [put]
func (cc *ClubController) UpdateClub(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid club ID")
		return
	}

	var req UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	club, err := cc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch club")
		return
	}
	if club == nil {
		responses.NotFound(c, "Club")
		return
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.ShortName != nil {
		club.ShortName = *req.ShortName
	}
	if req.Logo != nil {
		club.Logo = *req.Logo
	}
	if req.Stadium != nil {
		club.Stadium = *req.Stadium
	}
	if req.Founded != nil {
		club.Founded = *req.Founded
	}

	if err := cc.repo.Update(club); err != nil {
		responses.InternalServerError(c, "Failed to update club")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club updated successfully", club)
}

// AssignManager godoc
// @Summary Assign or clear a club's manager (DT)
// @Description Clears the previous manager's club link in the same transaction.
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path int true "Club ID"
// @Param manager body AssignManagerRequest true "Manager user ID (null to unassign)"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/clubs/{club_id}/manager [put]
func (cc *ClubController) AssignManager(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid club ID")
		return
	}

	var req AssignManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	club, err := cc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch club")
		return
	}
	if club == nil {
		responses.NotFound(c, "Club")
		return
	}

	if err := cc.repo.AssignManager(uint(id), req.UserID); err != nil {
		responses.InternalServerError(c, "Failed to assign manager")
		return
	}

	if req.UserID != nil {
		cc.activity.Append("admin", "manager_assigned", fmt.Sprintf("Nuevo DT asignado al club %s", club.Name))
	} else {
		cc.activity.Append("admin", "manager_cleared", fmt.Sprintf("DT del club %s retirado", club.Name))
	}
	responses.SendSuccess(c, http.StatusOK, "Manager updated successfully", nil)
}

// AdjustBudget godoc
// @Summary Adjust a club's budget
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path int true "Club ID"
// @Param adjustment body AdjustBudgetRequest true "Budget delta"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/clubs/{club_id}/budget [put]
func (cc *ClubController) AdjustBudget(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid club ID")
		return
	}

	var req AdjustBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	club, err := cc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch club")
		return
	}
	if club == nil {
		responses.NotFound(c, "Club")
		return
	}
	if club.Budget+req.Delta < 0 {
		responses.BadRequest(c, "Budget cannot go negative")
		return
	}

	if err := cc.repo.AdjustBudget(uint(id), req.Delta); err != nil {
		responses.InternalServerError(c, "Failed to adjust budget")
		return
	}

	cc.activity.Append("admin", "budget_adjusted", fmt.Sprintf("Presupuesto del club %s ajustado en %d (%s)", club.Name, req.Delta, req.Reason))
	responses.SendSuccess(c, http.StatusOK, "Budget adjusted successfully", nil)
}

// DeleteClub godoc
// @Summary Delete a club
// @Tags Clubs
// @Param club_id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/clubs/{club_id} [delete]
func (cc *ClubController) DeleteClub(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid club ID")
		return
	}

	club, err := cc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch club")
		return
	}
	if club == nil {
		responses.NotFound(c, "Club")
		return
	}

	if err := cc.repo.Delete(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete club")
		return
	}

	cc.activity.Append("admin", "club_deleted", fmt.Sprintf("Club %s eliminado", club.Name))
	responses.SendSuccess(c, http.StatusOK, "Club deleted successfully", nil)
}
