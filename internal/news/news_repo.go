package news

import (
	"errors"

	"gorm.io/gorm"
)

// NewsRepository defines the interface for news and comment data operations.
type NewsRepository interface {
	Create(n *NewsItem) error
	GetByID(id uint) (*NewsItem, error)
	GetAll(page, limit int, filters map[string]interface{}) ([]NewsItem, int64, error)
	Update(n *NewsItem) error
	Delete(id uint) error

	CreateComment(c *Comment) error
	GetCommentByID(id uint) (*Comment, error)
	GetComments(newsID uint, status string) ([]Comment, error)
	GetAllComments(page, limit int, filters map[string]interface{}) ([]Comment, int64, error)
	UpdateComment(c *Comment) error
	DeleteComment(id uint) error
}

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new instance of NewsRepository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(n *NewsItem) error {
	return r.db.Create(n).Error
}

func (r *newsRepository) GetByID(id uint) (*NewsItem, error) {
	var n NewsItem
	if err := r.db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *newsRepository) GetAll(page, limit int, filters map[string]interface{}) ([]NewsItem, int64, error) {
	var items []NewsItem
	var total int64

	query := r.db.Model(&NewsItem{})
	if category, ok := filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	if author, ok := filters["author"]; ok {
		query = query.Where("author ILIKE ?", "%"+author.(string)+"%")
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("date desc").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *newsRepository) Update(n *NewsItem) error {
	return r.db.Save(n).Error
}

// Delete removes an article and its comment thread together.
func (r *newsRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("news_id = ?", id).Delete(&Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&NewsItem{}, id).Error
	})
}

func (r *newsRepository) CreateComment(c *Comment) error {
	return r.db.Create(c).Error
}

func (r *newsRepository) GetCommentByID(id uint) (*Comment, error) {
	var c Comment
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *newsRepository) GetComments(newsID uint, status string) ([]Comment, error) {
	var comments []Comment
	query := r.db.Where("news_id = ?", newsID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *newsRepository) GetAllComments(page, limit int, filters map[string]interface{}) ([]Comment, int64, error) {
	var comments []Comment
	var total int64

	query := r.db.Model(&Comment{})
	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if reported, ok := filters["reported"]; ok {
		query = query.Where("reported = ?", reported)
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *newsRepository) UpdateComment(c *Comment) error {
	return r.db.Save(c).Error
}

func (r *newsRepository) DeleteComment(id uint) error {
	return r.db.Delete(&Comment{}, id).Error
}
