package club

import (
	"errors"

	"gorm.io/gorm"

	"github.com/virtualzone/virtualzone-api/internal/user"
)

// ClubRepository defines the interface for club data operations.
type ClubRepository interface {
	Create(c *Club) error
	GetByID(id uint) (*Club, error)
	GetByName(name string) (*Club, error)
	GetAll(page, limit int, filters map[string]interface{}) ([]Club, int64, error)
	Update(c *Club) error
	Delete(id uint) error
	AdjustBudget(id uint, delta int64) error
	AssignManager(clubID uint, userID *uint) error
	WithTransaction(txFunc func(ClubRepository) error) error
}

type clubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new instance of ClubRepository.
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(c *Club) error {
	return r.db.Create(c).Error
}

func (r *clubRepository) GetByID(id uint) (*Club, error) {
	var c Club
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *clubRepository) GetByName(name string) (*Club, error) {
	var c Club
	if err := r.db.Where("name = ?", name).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *clubRepository) GetAll(page, limit int, filters map[string]interface{}) ([]Club, int64, error) {
	var clubs []Club
	var total int64

	query := r.db.Model(&Club{})
	if name, ok := filters["name"]; ok {
		query = query.Where("name ILIKE ?", "%"+name.(string)+"%")
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&clubs).Error; err != nil {
		return nil, 0, err
	}
	return clubs, total, nil
}

func (r *clubRepository) Update(c *Club) error {
	return r.db.Save(c).Error
}

func (r *clubRepository) Delete(id uint) error {
	return r.db.Delete(&Club{}, id).Error
}

// AdjustBudget adds delta (which may be negative) to the club's budget.
func (r *clubRepository) AdjustBudget(id uint, delta int64) error {
	return r.db.Model(&Club{}).Where("id = ?", id).
		Update("budget", gorm.Expr("budget + ?", delta)).Error
}

// AssignManager sets the club's manager, clearing any previous manager's
// club link in the same transaction so the two tables never disagree.
// Passing nil unassigns the current manager.
func (r *clubRepository) AssignManager(clubID uint, userID *uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Detach whoever currently manages this club.
		if err := tx.Model(&user.User{}).Where("club_id = ?", clubID).
			Update("club_id", nil).Error; err != nil {
			return err
		}

		if userID != nil {
			if err := tx.Model(&user.User{}).Where("id = ?", *userID).
				Updates(map[string]interface{}{"club_id": clubID, "role": user.RoleDT}).Error; err != nil {
				return err
			}
		}

		return tx.Model(&Club{}).Where("id = ?", clubID).
			Update("manager_id", userID).Error
	})
}

func (r *clubRepository) WithTransaction(txFunc func(ClubRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&clubRepository{db: tx})
	})
}
