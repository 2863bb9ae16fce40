package activity

import "gorm.io/gorm"

// ActivityLog is a human-readable, append-only audit entry for
// user-facing and transfer-affecting mutations. Entries are never edited
// or removed.
type ActivityLog struct {
	gorm.Model
	Actor  string `gorm:"index" json:"actor"`
	Action string `gorm:"index;not null" json:"action"`
	Detail string `gorm:"type:text" json:"detail"`
}
