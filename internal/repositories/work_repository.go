package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bytestudio_backend/internal/models"
)

var ErrWorkNotFound = errors.New("work not found")

// WorkStats aggregates the numbers shown on the admin dashboard.
type WorkStats struct {
	TotalWorks   int64
	TotalViews   int64
	StorageBytes int64
}

// WorkRepository takes the *gorm.DB per call so services can pass a
// transaction handle when they need one.
type WorkRepository interface {
	List(db *gorm.DB, category string) ([]models.Work, error)
	FindByID(db *gorm.DB, id string) (*models.Work, error)
	Create(db *gorm.DB, work *models.Work) error
	Update(db *gorm.DB, id string, patch map[string]any) error
	Delete(db *gorm.DB, id string) error
	IncrementViews(db *gorm.DB, id string, delta int64) error
	Stats(db *gorm.DB) (*WorkStats, error)
}

type workRepository struct{}

func NewWorkRepository() WorkRepository { return &workRepository{} }

func (r *workRepository) List(db *gorm.DB, category string) ([]models.Work, error) {
	q := db.Model(&models.Work{}).Order("uploaded_at DESC")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	works := []models.Work{}
	if err := q.Find(&works).Error; err != nil {
		return nil, err
	}
	return works, nil
}

func (r *workRepository) FindByID(db *gorm.DB, id string) (*models.Work, error) {
	var work models.Work
	if err := db.First(&work, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}
	return &work, nil
}

func (r *workRepository) Create(db *gorm.DB, work *models.Work) error {
	return db.Create(work).Error
}

func (r *workRepository) Update(db *gorm.DB, id string, patch map[string]any) error {
	res := db.Model(&models.Work{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrWorkNotFound
	}
	return nil
}

func (r *workRepository) Delete(db *gorm.DB, id string) error {
	res := db.Delete(&models.Work{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrWorkNotFound
	}
	return nil
}

// IncrementViews bumps the counter in SQL so concurrent opens never lose
// updates.
func (r *workRepository) IncrementViews(db *gorm.DB, id string, delta int64) error {
	res := db.Model(&models.Work{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrWorkNotFound
	}
	return nil
}

func (r *workRepository) Stats(db *gorm.DB) (*WorkStats, error) {
	var stats WorkStats
	row := db.Model(&models.Work{}).
		Select("COUNT(*) AS total_works, COALESCE(SUM(views), 0) AS total_views, COALESCE(SUM(size), 0) AS storage_bytes").
		Row()
	if err := row.Scan(&stats.TotalWorks, &stats.TotalViews, &stats.StorageBytes); err != nil {
		return nil, err
	}
	return &stats, nil
}
