package player

import "gorm.io/gorm"

// Player is a league player. ClubID is nil for free agents, who may be
// signed directly without an offer/negotiation cycle. Players are never
// hard-deleted by the transfer flow, only reassigned.
type Player struct {
	gorm.Model
	Name           string `gorm:"not null;index" json:"name"`
	Position       string `gorm:"index" json:"position"`
	Rating         int    `gorm:"not null;default:50" json:"rating"`
	Age            int    `json:"age"`
	Nationality    string `json:"nationality"`
	ClubID         *uint  `gorm:"index" json:"club_id,omitempty"`
	TransferValue  int64  `json:"transfer_value"`
	MarketValue    int64  `json:"market_value"`
	TransferListed bool   `gorm:"index;default:false" json:"transfer_listed"`
}
