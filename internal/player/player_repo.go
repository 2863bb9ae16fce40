package player

import (
	"errors"

	"gorm.io/gorm"
)

// PlayerRepository defines the interface for player data operations.
type PlayerRepository interface {
	Create(p *Player) error
	GetByID(id uint) (*Player, error)
	GetAll(page, limit int, filters map[string]interface{}) ([]Player, int64, error)
	GetByClubID(clubID uint) ([]Player, error)
	GetTransferListed() ([]Player, error)
	GetFreeAgents() ([]Player, error)
	Update(p *Player) error
	SetTransferListed(id uint, listed bool) error
	Delete(id uint) error
	WithTransaction(txFunc func(PlayerRepository) error) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(p *Player) error {
	return r.db.Create(p).Error
}

func (r *playerRepository) GetByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetAll(page, limit int, filters map[string]interface{}) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.Model(&Player{})
	if clubID, ok := filters["club_id"]; ok {
		query = query.Where("club_id = ?", clubID)
	}
	if position, ok := filters["position"]; ok {
		query = query.Where("position = ?", position)
	}
	if listed, ok := filters["transfer_listed"]; ok {
		query = query.Where("transfer_listed = ?", listed)
	}
	if name, ok := filters["name"]; ok {
		query = query.Where("name ILIKE ?", "%"+name.(string)+"%")
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("rating desc").Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (r *playerRepository) GetByClubID(clubID uint) ([]Player, error) {
	var players []Player
	if err := r.db.Where("club_id = ?", clubID).Order("rating desc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) GetTransferListed() ([]Player, error) {
	var players []Player
	if err := r.db.Where("transfer_listed = ?", true).Order("rating desc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) GetFreeAgents() ([]Player, error) {
	var players []Player
	if err := r.db.Where("club_id IS NULL").Order("rating desc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) Update(p *Player) error {
	return r.db.Save(p).Error
}

func (r *playerRepository) SetTransferListed(id uint, listed bool) error {
	return r.db.Model(&Player{}).Where("id = ?", id).Update("transfer_listed", listed).Error
}

func (r *playerRepository) Delete(id uint) error {
	return r.db.Delete(&Player{}, id).Error
}

func (r *playerRepository) WithTransaction(txFunc func(PlayerRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&playerRepository{db: tx})
	})
}
