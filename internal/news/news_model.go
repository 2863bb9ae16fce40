package news

import (
	"time"

	"gorm.io/gorm"
)

// Comment moderation statuses.
const (
	CommentPending  = "pending"
	CommentApproved = "approved"
	CommentHidden   = "hidden"
)

// NewsItem is the canonical article record. The fan-facing "posts" feed is
// a projection of this table, never a second stored collection.
type NewsItem struct {
	gorm.Model
	Title    string    `gorm:"not null" json:"title"`
	Excerpt  string    `json:"excerpt,omitempty"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	Author   string    `gorm:"not null" json:"author"`
	Image    string    `json:"image,omitempty"`
	Category string    `gorm:"index" json:"category,omitempty"`
	Date     time.Time `gorm:"index" json:"date"`
	Comments []Comment `gorm:"foreignKey:NewsID" json:"comments,omitempty"`
}

// Comment is a fan comment on a news item. New comments start pending and
// only appear on the public site once approved.
type Comment struct {
	gorm.Model
	NewsID   uint   `gorm:"index;not null" json:"news_id"`
	Author   string `gorm:"not null" json:"author"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Status   string `gorm:"index;not null;default:'pending'" json:"status"`
	Reported bool   `gorm:"not null;default:false" json:"reported"`
	Flags    int    `gorm:"not null;default:0" json:"flags"`
}
