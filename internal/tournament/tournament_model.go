package tournament

import (
	"time"

	"gorm.io/gorm"

	"github.com/virtualzone/virtualzone-api/internal/models"
)

// Tournament statuses. Transitions are free-form: the admin panel may set
// any status from any other.
const (
	StatusUpcoming = "upcoming"
	StatusActive   = "active"
	StatusFinished = "finished"
)

// Match statuses.
const (
	MatchScheduled = "scheduled"
	MatchLive      = "live"
	MatchFinished  = "finished"
)

// Tournament owns a participant list (club names) and its fixture list.
type Tournament struct {
	gorm.Model
	Name         string             `gorm:"not null" json:"name"`
	Season       string             `json:"season,omitempty"`
	Status       string             `gorm:"index;not null;default:'upcoming'" json:"status"`
	Participants models.StringSlice `gorm:"type:jsonb" json:"participants"`
	StartDate    time.Time          `json:"start_date"`
	Matches      []Match            `gorm:"foreignKey:TournamentID" json:"matches,omitempty"`
}

// Match is a fixture between two participants within a tournament round.
type Match struct {
	gorm.Model
	TournamentID uint      `gorm:"index;not null" json:"tournament_id"`
	Round        int       `gorm:"not null" json:"round"`
	Matchday     int       `gorm:"not null" json:"matchday"`
	HomeTeam     string    `gorm:"not null" json:"home_team"`
	AwayTeam     string    `gorm:"not null" json:"away_team"`
	HomeScore    *int      `json:"home_score,omitempty"`
	AwayScore    *int      `json:"away_score,omitempty"`
	Status       string    `gorm:"index;not null;default:'scheduled'" json:"status"`
	Date         time.Time `gorm:"index" json:"date"`
}
