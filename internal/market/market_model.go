package market

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Offer lifecycle states. Accepted and rejected are terminal: once reached,
// no operation may mutate the offer again.
const (
	OfferPending      = "pending"
	OfferCounterOffer = "counter-offer"
	OfferAccepted     = "accepted"
	OfferRejected     = "rejected"
)

// Transfer record states for the lightweight admin approval path.
const (
	TransferPending  = "pending"
	TransferApproved = "approved"
	TransferRejected = "rejected"
)

// History actors.
const (
	ActorBuyer  = "buyer"
	ActorSeller = "seller"
)

// User-facing denial reasons. The workflow reports every failure as one of
// these strings instead of an error; callers surface them as notifications
// and leave state unchanged.
const (
	ReasonMarketClosed       = "El mercado está cerrado"
	ReasonPlayerNotFound     = "Jugador no encontrado"
	ReasonBuyerNotFound      = "Club comprador no encontrado"
	ReasonSellerNotFound     = "Club vendedor no encontrado"
	ReasonInsufficientBudget = "Presupuesto insuficiente"
	ReasonNotListed          = "El jugador no está transferible"
	ReasonBelowMinFee        = "La oferta está por debajo del valor mínimo"
	ReasonInvalidAmount      = "El monto de la oferta no es válido"
	ReasonDuplicateOffer     = "Ya tienes una oferta pendiente por este jugador"
	ReasonOfferNotFound      = "Oferta no encontrada"
	ReasonAlreadyProcessed   = "Oferta ya procesada"
	ReasonCounterPending     = "La oferta ya tiene una contraoferta pendiente"
	ReasonNoCounter          = "No hay contraoferta que responder"
	ReasonTransferNotFound   = "Transferencia no encontrada"
	ReasonTransferProcessed  = "Transferencia ya procesada"
)

// OfferEvent is one entry in an offer's append-only audit trail.
type OfferEvent struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Actor   string    `json:"actor"` // buyer | seller
	Action  string    `json:"action"`
	Details string    `json:"details,omitempty"`
}

// OfferHistory stores the audit trail as a JSONB column. Entries are only
// ever appended.
type OfferHistory []OfferEvent

func (h OfferHistory) Value() (driver.Value, error) {
	return json.Marshal(h)
}

// Scan unmarshals the JSONB column into the slice.
func (h *OfferHistory) Scan(src interface{}) error {
	if src == nil {
		*h = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("OfferHistory: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, h)
}

// TransferOffer is a proposed fee from a buying club for a listed player.
// FromClub is the selling club, ToClub the buying club. Names are
// denormalized for history entries and exports.
type TransferOffer struct {
	gorm.Model
	PlayerID       uint         `gorm:"index;not null" json:"player_id"`
	PlayerName     string       `json:"player_name"`
	FromClubID     uint         `gorm:"index;not null" json:"from_club_id"`
	FromClub       string       `json:"from_club"`
	ToClubID       uint         `gorm:"index;not null" json:"to_club_id"`
	ToClub         string       `json:"to_club"`
	Amount         int64        `gorm:"not null" json:"amount"`
	Status         string       `gorm:"index;not null;default:'pending'" json:"status"`
	CreatedByID    uint         `gorm:"index" json:"created_by_id"`
	CounterAmount  *int64       `json:"counter_amount,omitempty"`
	CounterMessage string       `json:"counter_message,omitempty"`
	History        OfferHistory `gorm:"type:jsonb" json:"history"`
}

// IsTerminal reports whether the offer has reached a final state.
func (o *TransferOffer) IsTerminal() bool {
	return o.Status == OfferAccepted || o.Status == OfferRejected
}

// FinalAmount is the fee a completed transfer moves: the counter amount when
// the seller countered, the original amount otherwise.
func (o *TransferOffer) FinalAmount() int64 {
	if o.CounterAmount != nil {
		return *o.CounterAmount
	}
	return o.Amount
}

// Transfer is the historical record of a completed (or admin-vetted) player
// movement. Records from the negotiation workflow are created approved;
// records entered through the simple admin market panel start pending and
// are decided with a status flip only, no budget movement.
type Transfer struct {
	gorm.Model
	PlayerID   uint      `gorm:"index;not null" json:"player_id"`
	PlayerName string    `json:"player_name"`
	FromClub   string    `json:"from_club"`
	ToClub     string    `json:"to_club"`
	Fee        int64     `gorm:"not null" json:"fee"`
	Date       time.Time `gorm:"index" json:"date"`
	Status     string    `gorm:"index;not null;default:'pending'" json:"status"`
	Reason     string    `json:"reason,omitempty"`
}

// MarketSettings is a singleton row controlling the global market state.
type MarketSettings struct {
	gorm.Model
	Open bool `gorm:"not null;default:true" json:"open"`
}
