package activity

import "gorm.io/gorm"

// ActivityRepository records and lists audit entries.
type ActivityRepository interface {
	Append(actor, action, detail string) error
	GetAll(page, limit int) ([]ActivityLog, int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new instance of ActivityRepository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Append(actor, action, detail string) error {
	return r.db.Create(&ActivityLog{Actor: actor, Action: action, Detail: detail}).Error
}

func (r *activityRepository) GetAll(page, limit int) ([]ActivityLog, int64, error) {
	var entries []ActivityLog
	var total int64

	query := r.db.Model(&ActivityLog{})
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
