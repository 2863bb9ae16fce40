package club

import "gorm.io/gorm"

// Club is a league club. Budget is an integer currency amount and must never
// be negative after a transfer; the market service guarantees that by
// rejecting offers the buyer cannot afford.
type Club struct {
	gorm.Model
	Name      string `gorm:"unique;not null" json:"name"`
	ShortName string `json:"short_name,omitempty"`
	Logo      string `json:"logo,omitempty"`
	ManagerID *uint  `gorm:"index" json:"manager_id,omitempty"`
	Budget    int64  `gorm:"not null;default:0" json:"budget"`
	Stadium   string `json:"stadium,omitempty"`
	Founded   int    `json:"founded,omitempty"`
}
