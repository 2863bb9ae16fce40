package tournament

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/virtualzone/virtualzone-api/internal/models"
	"github.com/virtualzone/virtualzone-api/pkg/responses"
)

// TournamentController handles tournament and fixture requests.
type TournamentController struct {
	repo TournamentRepository
}

// NewTournamentController creates a new tournament controller.
func NewTournamentController(repo TournamentRepository) *TournamentController {
	return &TournamentController{repo: repo}
}

type CreateTournamentRequest struct {
	Name         string    `json:"name" binding:"required,min=2,max=100"`
	Season       string    `json:"season"`
	Participants []string  `json:"participants" binding:"required,min=2"`
	StartDate    time.Time `json:"start_date"`
}

type UpdateTournamentRequest struct {
	Name         *string   `json:"name" binding:"omitempty,min=2,max=100"`
	Season       *string   `json:"season"`
	Status       *string   `json:"status" binding:"omitempty,oneof=upcoming active finished"`
	Participants *[]string `json:"participants" binding:"omitempty,min=2"`
}

type GenerateFixturesRequest struct {
	Rounds  int    `json:"rounds" binding:"required,gte=1,lte=4"`
	GapDays int    `json:"gap_days" binding:"omitempty,gte=1"`
	Start   string `json:"start"` // RFC3339; tournament start date when empty
}

type UpdateMatchRequest struct {
	HomeScore *int    `json:"home_score" binding:"omitempty,gte=0"`
	AwayScore *int    `json:"away_score" binding:"omitempty,gte=0"`
	Status    *string `json:"status" binding:"omitempty,oneof=scheduled live finished"`
}

// GetAllTournaments godoc
// @Summary List tournaments
// @Tags Tournaments
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param status query string false "Filter by status"
// @Success 200 {object} responses.PaginatedResponse{data=[]Tournament}
// @Router /tournaments [get]
func (tc *TournamentController) GetAllTournaments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filters := map[string]interface{}{}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if name := c.Query("name"); name != "" {
		filters["name"] = name
	}

	tournaments, total, err := tc.repo.GetAll(page, limit, filters)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch tournaments")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", tournaments, total, page, limit)
}

// GetTournamentByID godoc
// @Summary Get a tournament with its fixtures
// @Tags Tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=Tournament}
// @Failure 404 {object} responses.ErrorResponse
// @Router /tournaments/{tournament_id} [get]
func (tc *TournamentController) GetTournamentByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid tournament ID")
		return
	}
	t, err := tc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch tournament")
		return
	}
	if t == nil {
		responses.NotFound(c, "Tournament")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", t)
}

// GetStandings godoc
// @Summary Get the computed table for a tournament
// @Tags Tournaments
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Standing}
// @Failure 404 {object} responses.ErrorResponse
// @Router /tournaments/{tournament_id}/standings [get]
func (tc *TournamentController) GetStandings(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid tournament ID")
		return
	}
	t, err := tc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch tournament")
		return
	}
	if t == nil {
		responses.NotFound(c, "Tournament")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", ComputeStandings(t.Participants, t.Matches))
}

// CreateTournament godoc
// @Summary Create a tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament body CreateTournamentRequest true "Tournament data"
// @Success 201 {object} responses.SuccessResponse{data=Tournament}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/tournaments [post]
func (tc *TournamentController) CreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	start := req.StartDate
	if start.IsZero() {
		start = time.Now()
	}
	t := Tournament{
		Name:         req.Name,
		Season:       req.Season,
		Status:       StatusUpcoming,
		Participants: models.StringSlice(req.Participants),
		StartDate:    start,
	}
	if err := tc.repo.Create(&t); err != nil {
		responses.InternalServerError(c, "Failed to create tournament")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Tournament created successfully", t)
}

// UpdateTournament godoc
// @Summary Update a tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param tournament body UpdateTournamentRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Tournament}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/tournaments/{tournament_id} [put]
func (tc *TournamentController) UpdateTournament(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid tournament ID")
		return
	}

	var req UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	t, err := tc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch tournament")
		return
	}
	if t == nil {
		responses.NotFound(c, "Tournament")
		return
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Season != nil {
		t.Season = *req.Season
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Participants != nil {
		t.Participants = models.StringSlice(*req.Participants)
	}

	if err := tc.repo.Update(t); err != nil {
		responses.InternalServerError(c, "Failed to update tournament")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tournament updated successfully", t)
}

// GenerateFixtures godoc
// @Summary Generate round-robin fixtures for a tournament
// @Description Destructive: replaces the tournament's existing match list.
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament ID"
// @Param params body GenerateFixturesRequest true "Generation parameters"
// @Success 200 {object} responses.SuccessResponse{data=[]Match}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/tournaments/{tournament_id}/fixtures [post]
func (tc *TournamentController) GenerateFixtures(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid tournament ID")
		return
	}

	var req GenerateFixturesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	t, err := tc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch tournament")
		return
	}
	if t == nil {
		responses.NotFound(c, "Tournament")
		return
	}
	if len(t.Participants) < 2 {
		responses.BadRequest(c, "Tournament needs at least two participants")
		return
	}

	start := t.StartDate
	if req.Start != "" {
		parsed, err := time.Parse(time.RFC3339, req.Start)
		if err != nil {
			responses.BadRequest(c, "Invalid start date, expected RFC3339")
			return
		}
		start = parsed
	}
	gapDays := req.GapDays
	if gapDays == 0 {
		gapDays = 7
	}

	fixtures := GenerateRoundRobin(t.Participants, req.Rounds, start, time.Duration(gapDays)*24*time.Hour)
	if err := tc.repo.ReplaceFixtures(uint(id), fixtures); err != nil {
		responses.InternalServerError(c, "Failed to save fixtures")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Fixtures generated successfully", fixtures)
}

// UpdateMatch godoc
// @Summary Update a match's score or status
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param match body UpdateMatchRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/matches/{match_id} [put]
func (tc *TournamentController) UpdateMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	m, err := tc.repo.GetMatchByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	if req.HomeScore != nil {
		m.HomeScore = req.HomeScore
	}
	if req.AwayScore != nil {
		m.AwayScore = req.AwayScore
	}
	if req.Status != nil {
		m.Status = *req.Status
	}

	if err := tc.repo.UpdateMatch(m); err != nil {
		responses.InternalServerError(c, "Failed to update match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match updated successfully", m)
}

// DeleteTournament godoc
// @Summary Delete a tournament and its fixtures
// @Tags Tournaments
// @Param tournament_id path int true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/tournaments/{tournament_id} [delete]
func (tc *TournamentController) DeleteTournament(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid tournament ID")
		return
	}

	t, err := tc.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch tournament")
		return
	}
	if t == nil {
		responses.NotFound(c, "Tournament")
		return
	}

	if err := tc.repo.Delete(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete tournament")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tournament deleted successfully", nil)
}
