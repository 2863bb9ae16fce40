package player

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/virtualzone/virtualzone-api/pkg/responses"
)

// PlayerController handles player management requests.
type PlayerController struct {
	repo PlayerRepository
}

// NewPlayerController creates a new player controller.
func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

type CreatePlayerRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=100"`
	Position      string `json:"position" binding:"required"`
	Rating        int    `json:"rating" binding:"required,gte=1,lte=99"`
	Age           int    `json:"age" binding:"gte=14,lte=50"`
	Nationality   string `json:"nationality"`
	ClubID        *uint  `json:"club_id"`
	TransferValue int64  `json:"transfer_value" binding:"gte=0"`
	MarketValue   int64  `json:"market_value" binding:"gte=0"`
}

type UpdatePlayerRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=100"`
	Position      *string `json:"position"`
	Rating        *int    `json:"rating" binding:"omitempty,gte=1,lte=99"`
	Age           *int    `json:"age" binding:"omitempty,gte=14,lte=50"`
	Nationality   *string `json:"nationality"`
	TransferValue *int64  `json:"transfer_value" binding:"omitempty,gte=0"`
	MarketValue   *int64  `json:"market_value" binding:"omitempty,gte=0"`
}

type ListPlayerRequest struct {
	Listed bool `json:"listed"`
}

// GetAllPlayers godoc
// @Summary List players
// @Tags Players
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param club_id query int false "Filter by club"
// @Param position query string false "Filter by position"
// @Param transfer_listed query bool false "Filter by transfer-listed flag"
// @Success 200 {object} responses.PaginatedResponse{data=[]Player}
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filters := map[string]interface{}{}
	if clubID := c.Query("club_id"); clubID != "" {
		filters["club_id"] = clubID
	}
	if position := c.Query("position"); position != "" {
		filters["position"] = position
	}
	if listed := c.Query("transfer_listed"); listed != "" {
		filters["transfer_listed"] = listed == "true"
	}
	if name := c.Query("name"); name != "" {
		filters["name"] = name
	}

	players, total, err := pc.repo.GetAll(page, limit, filters)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", players, total, page, limit)
}

// GetPlayerByID godoc
// @Summary Get a player
// @Tags Players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{player_id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	p, err := pc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", p)
}

// GetFreeAgents godoc
// @Summary List free agents
// @Tags Players
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Player}
// @Router /players/free-agents [get]
func (pc *PlayerController) GetFreeAgents(c *gin.Context) {
	players, err := pc.repo.GetFreeAgents()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch free agents")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", players)
}

// CreatePlayer godoc
// @Summary Create a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player data"
// @Success 201 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	p := Player{
		Name:          req.Name,
		Position:      req.Position,
		Rating:        req.Rating,
		Age:           req.Age,
		Nationality:   req.Nationality,
		ClubID:        req.ClubID,
		TransferValue: req.TransferValue,
		MarketValue:   req.MarketValue,
	}
	if err := pc.repo.Create(&p); err != nil {
		responses.InternalServerError(c, "Failed to create player")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", p)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player_id path int true "Player ID"
// @Param player body UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/players/{player_id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	p, err := pc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Position != nil {
		p.Position = *req.Position
	}
	if req.Rating != nil {
		p.Rating = *req.Rating
	}
	if req.Age != nil {
		p.Age = *req.Age
	}
	if req.Nationality != nil {
		p.Nationality = *req.Nationality
	}
	if req.TransferValue != nil {
		p.TransferValue = *req.TransferValue
	}
	if req.MarketValue != nil {
		p.MarketValue = *req.MarketValue
	}

	if err := pc.repo.Update(p); err != nil {
		responses.InternalServerError(c, "Failed to update player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", p)
}

// SetTransferListed godoc
// @Summary List or unlist a player for transfer
// @Tags Players
// @Accept json
// @Produce json
// @Param player_id path int true "Player ID"
// @Param listing body ListPlayerRequest true "Listed flag"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /players/{player_id}/transfer-listed [put]
func (pc *PlayerController) SetTransferListed(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	var req ListPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	p, err := pc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if err := pc.repo.SetTransferListed(uint(id), req.Listed); err != nil {
		responses.InternalServerError(c, "Failed to update listing")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Listing updated successfully", nil)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Tags Players
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/players/{player_id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	p, err := pc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if err := pc.repo.Delete(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted successfully", nil)
}
