package market

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	mw "github.com/virtualzone/virtualzone-api/internal/middleware"
	"github.com/virtualzone/virtualzone-api/pkg/responses"
)

// MarketController handles transfer-market HTTP requests.
type MarketController struct {
	service *Service
	repo    MarketRepository
}

// NewMarketController creates a new market controller.
func NewMarketController(service *Service, repo MarketRepository) *MarketController {
	return &MarketController{service: service, repo: repo}
}

type MakeOfferRequest struct {
	PlayerID uint   `json:"player_id" binding:"required"`
	FromClub string `json:"from_club"`
	ToClub   string `json:"to_club" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

type CounterOfferRequest struct {
	CounterAmount int64  `json:"counter_amount" binding:"required,gt=0"`
	Message       string `json:"message" binding:"max=500"`
}

type CounterResponseRequest struct {
	Accept  bool   `json:"accept"`
	Message string `json:"message" binding:"max=500"`
}

type RejectOfferRequest struct {
	Message string `json:"message" binding:"max=500"`
}

type MarketStatusRequest struct {
	Open bool `json:"open"`
}

type TransferDecisionRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason" binding:"max=200"`
}

// denied maps a workflow denial to the HTTP response the dashboard expects:
// the reason string as a 400, untouched, so the UI can show it verbatim.
func denied(c *gin.Context, reason string) {
	responses.SendError(c, http.StatusBadRequest, reason)
}

// GetMarketStatus godoc
// @Summary Get the global market state
// @Tags Market
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=MarketSettings}
// @Router /market/status [get]
func (mc *MarketController) GetMarketStatus(c *gin.Context) {
	settings, err := mc.repo.GetSettings()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch market status")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", settings)
}

// SetMarketStatus godoc
// @Summary Open or close the market
// @Tags Market
// @Accept json
// @Produce json
// @Param status body MarketStatusRequest true "Market state"
// @Success 200 {object} responses.SuccessResponse
// @Security ApiKeyAuth
// @Router /admin/market/status [put]
func (mc *MarketController) SetMarketStatus(c *gin.Context) {
	var req MarketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if err := mc.service.SetMarketOpen(req.Open); err != nil {
		responses.InternalServerError(c, "Failed to update market status")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Market status updated", nil)
}

// MakeOffer godoc
// @Summary Create a transfer offer (or sign a free agent directly)
// @Tags Market
// @Accept json
// @Produce json
// @Param offer body MakeOfferRequest true "Offer data"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Denial reason"
// @Security ApiKeyAuth
// @Router /market/offers [post]
func (mc *MarketController) MakeOffer(c *gin.Context) {
	var req MakeOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	userID, _ := mw.GetUserIDFromContext(c)
	reason, err := mc.service.MakeOffer(OfferRequest{
		PlayerID: req.PlayerID,
		FromClub: req.FromClub,
		ToClub:   req.ToClub,
		Amount:   req.Amount,
		UserID:   userID,
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to process offer")
		return
	}
	if reason != "" {
		denied(c, reason)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Oferta registrada", nil)
}

// GetOffers godoc
// @Summary List offers
// @Tags Market
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param status query string false "Filter by status"
// @Param player_id query int false "Filter by player"
// @Success 200 {object} responses.PaginatedResponse{data=[]TransferOffer}
// @Security ApiKeyAuth
// @Router /market/offers [get]
func (mc *MarketController) GetOffers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	offers, total, err := mc.repo.GetOffers(page, limit, offerFilters(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch offers")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", offers, total, page, limit)
}

func offerFilters(c *gin.Context) map[string]interface{} {
	filters := map[string]interface{}{}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if playerID := c.Query("player_id"); playerID != "" {
		filters["player_id"] = playerID
	}
	if clubID := c.Query("to_club_id"); clubID != "" {
		filters["to_club_id"] = clubID
	}
	if clubID := c.Query("from_club_id"); clubID != "" {
		filters["from_club_id"] = clubID
	}
	return filters
}

// GetOfferByID godoc
// @Summary Get an offer with its history
// @Tags Market
// @Produce json
// @Param offer_id path int true "Offer ID"
// @Success 200 {object} responses.SuccessResponse{data=TransferOffer}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /market/offers/{offer_id} [get]
func (mc *MarketController) GetOfferByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("offer_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid offer ID")
		return
	}
	offer, err := mc.repo.GetOfferByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch offer")
		return
	}
	if offer == nil {
		responses.NotFound(c, "Offer")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", offer)
}

// AcceptOffer godoc
// @Summary Accept an offer and execute the transfer
// @Tags Market
// @Produce json
// @Param offer_id path int true "Offer ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Denial reason"
// @Security ApiKeyAuth
// @Router /market/offers/{offer_id}/accept [post]
func (mc *MarketController) AcceptOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("offer_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid offer ID")
		return
	}
	reason, err := mc.service.ProcessTransfer(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to process transfer")
		return
	}
	if reason != "" {
		denied(c, reason)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Transferencia completada", nil)
}

// RejectOffer godoc
// @Summary Reject an offer
// @Tags Market
// @Accept json
// @Produce json
// @Param offer_id path int true "Offer ID"
// @Param rejection body RejectOfferRequest false "Optional message"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Denial reason"
// @Security ApiKeyAuth
// @Router /market/offers/{offer_id}/reject [post]
func (mc *MarketController) RejectOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("offer_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid offer ID")
		return
	}
	var req RejectOfferRequest
	_ = c.ShouldBindJSON(&req)

	reason, err := mc.service.RejectOffer(uint(id), req.Message)
	if err != nil {
		responses.InternalServerError(c, "Failed to reject offer")
		return
	}
	if reason != "" {
		denied(c, reason)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Oferta rechazada", nil)
}

// MakeCounterOffer godoc
// @Summary Propose a counter amount on a pending offer
// @Tags Market
// @Accept json
// @Produce json
// @Param offer_id path int true "Offer ID"
// @Param counter body CounterOfferRequest true "Counter amount"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Denial reason"
// @Security ApiKeyAuth
// @Router /market/offers/{offer_id}/counter [post]
func (mc *MarketController) MakeCounterOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("offer_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid offer ID")
		return
	}
	var req CounterOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	reason, err := mc.service.MakeCounterOffer(uint(id), req.CounterAmount, req.Message)
	if err != nil {
		responses.InternalServerError(c, "Failed to register counter-offer")
		return
	}
	if reason != "" {
		denied(c, reason)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Contraoferta registrada", nil)
}

// RespondToCounterOffer godoc
// @Summary Accept or reject a counter-offer
// @Tags Market
// @Accept json
// @Produce json
// @Param offer_id path int true "Offer ID"
// @Param response body CounterResponseRequest true "Response"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Denial reason"
// @Security ApiKeyAuth
// @Router /market/offers/{offer_id}/counter/respond [post]
func (mc *MarketController) RespondToCounterOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("offer_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid offer ID")
		return
	}
	var req CounterResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	reason, err := mc.service.RespondToCounterOffer(uint(id), req.Accept, req.Message)
	if err != nil {
		responses.InternalServerError(c, "Failed to respond to counter-offer")
		return
	}
	if reason != "" {
		denied(c, reason)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Respuesta registrada", nil)
}

// GetTransfers godoc
// @Summary List transfer records
// @Tags Market
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param status query string false "Filter by status"
// @Success 200 {object} responses.PaginatedResponse{data=[]Transfer}
// @Router /market/transfers [get]
func (mc *MarketController) GetTransfers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	transfers, total, err := mc.repo.GetTransfers(page, limit, transferFilters(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch transfers")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", transfers, total, page, limit)
}

func transferFilters(c *gin.Context) map[string]interface{} {
	filters := map[string]interface{}{}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if playerID := c.Query("player_id"); playerID != "" {
		filters["player_id"] = playerID
	}
	if clubName := c.Query("club"); clubName != "" {
		filters["club"] = clubName
	}
	return filters
}

// DecideTransfer godoc
// @Summary Approve or reject a pending transfer record (no budget movement)
// @Tags Market
// @Accept json
// @Produce json
// @Param transfer_id path int true "Transfer ID"
// @Param decision body TransferDecisionRequest true "Decision"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse "Denial reason"
// @Security ApiKeyAuth
// @Router /admin/market/transfers/{transfer_id}/decision [put]
func (mc *MarketController) DecideTransfer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("transfer_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid transfer ID")
		return
	}
	var req TransferDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	reason, err := mc.service.DecideTransfer(uint(id), req.Approve, req.Reason)
	if err != nil {
		responses.InternalServerError(c, "Failed to decide transfer")
		return
	}
	if reason != "" {
		denied(c, reason)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Decisión registrada", nil)
}

// GetValuation godoc
// @Summary Get a player's market valuation and suggested offer amounts
// @Tags Market
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /market/players/{player_id}/valuation [get]
func (mc *MarketController) GetValuation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	v, bands, reason, err := mc.service.Valuate(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to compute valuation")
		return
	}
	if reason != "" {
		denied(c, reason)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"base_value":       v.BaseValue,
		"min_transfer_fee": v.MinTransferFee,
		"suggested": gin.H{
			"low":  bands[0],
			"fair": bands[1],
			"high": bands[2],
		},
	})
}

// ExportOffers godoc
// @Summary Export the filtered offer list as CSV or JSON
// @Tags Market
// @Produce plain
// @Param format query string false "csv (default) or json"
// @Success 200 {string} string
// @Security ApiKeyAuth
// @Router /market/offers/export [get]
func (mc *MarketController) ExportOffers(c *gin.Context) {
	offers, _, err := mc.repo.GetOffers(1, 10000, offerFilters(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch offers")
		return
	}
	mc.writeExport(c, OfferExportRows(offers), "ofertas")
}

// ExportTransfers godoc
// @Summary Export the filtered transfer list as CSV or JSON
// @Tags Market
// @Produce plain
// @Param format query string false "csv (default) or json"
// @Success 200 {string} string
// @Security ApiKeyAuth
// @Router /market/transfers/export [get]
func (mc *MarketController) ExportTransfers(c *gin.Context) {
	transfers, _, err := mc.repo.GetTransfers(1, 10000, transferFilters(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch transfers")
		return
	}
	mc.writeExport(c, TransferExportRows(transfers), "traspasos")
}

func (mc *MarketController) writeExport(c *gin.Context, rows []ExportRow, name string) {
	filename := fmt.Sprintf("%s-%s", name, time.Now().Format("2006-01-02"))
	if c.DefaultQuery("format", "csv") == "json" {
		c.Header("Content-Disposition", `attachment; filename="`+filename+`.json"`)
		c.Header("Content-Type", "application/json")
		if err := WriteJSON(c.Writer, rows); err != nil {
			responses.InternalServerError(c, "Failed to write export")
		}
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := WriteCSV(c.Writer, rows); err != nil {
		responses.InternalServerError(c, "Failed to write export")
	}
}
