package tournament

import (
	"errors"

	"gorm.io/gorm"
)

// TournamentRepository defines the interface for tournament and fixture
// data operations.
type TournamentRepository interface {
	Create(t *Tournament) error
	GetByID(id uint) (*Tournament, error)
	GetAll(page, limit int, filters map[string]interface{}) ([]Tournament, int64, error)
	Update(t *Tournament) error
	Delete(id uint) error

	GetMatches(tournamentID uint) ([]Match, error)
	GetMatchByID(id uint) (*Match, error)
	UpdateMatch(m *Match) error
	ReplaceFixtures(tournamentID uint, matches []Match) error
}

type tournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new instance of TournamentRepository.
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) Create(t *Tournament) error {
	return r.db.Create(t).Error
}

func (r *tournamentRepository) GetByID(id uint) (*Tournament, error) {
	var t Tournament
	if err := r.db.Preload("Matches", func(db *gorm.DB) *gorm.DB {
		return db.Order("matchday asc, id asc")
	}).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tournamentRepository) GetAll(page, limit int, filters map[string]interface{}) ([]Tournament, int64, error) {
	var tournaments []Tournament
	var total int64

	query := r.db.Model(&Tournament{})
	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if name, ok := filters["name"]; ok {
		query = query.Where("name ILIKE ?", "%"+name.(string)+"%")
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&tournaments).Error; err != nil {
		return nil, 0, err
	}
	return tournaments, total, nil
}

func (r *tournamentRepository) Update(t *Tournament) error {
	return r.db.Save(t).Error
}

func (r *tournamentRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tournament_id = ?", id).Delete(&Match{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Tournament{}, id).Error
	})
}

func (r *tournamentRepository) GetMatches(tournamentID uint) ([]Match, error) {
	var matches []Match
	if err := r.db.Where("tournament_id = ?", tournamentID).
		Order("matchday asc, id asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *tournamentRepository) GetMatchByID(id uint) (*Match, error) {
	var m Match
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *tournamentRepository) UpdateMatch(m *Match) error {
	return r.db.Save(m).Error
}

// ReplaceFixtures swaps a tournament's whole match list for freshly
// generated fixtures. Regeneration is destructive; existing matches,
// including played ones, are removed.
func (r *tournamentRepository) ReplaceFixtures(tournamentID uint, matches []Match) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("tournament_id = ?", tournamentID).Delete(&Match{}).Error; err != nil {
			return err
		}
		if len(matches) == 0 {
			return nil
		}
		for i := range matches {
			matches[i].TournamentID = tournamentID
		}
		return tx.Create(&matches).Error
	})
}
