package repositories

import (
	"errors"

	"gorm.io/gorm"

	"bytestudio_backend/internal/models"
)

var ErrMessageNotFound = errors.New("message not found")

// Status filter values accepted by MessageRepository.List.
const (
	MessageStatusAll    = "all"
	MessageStatusRead   = "read"
	MessageStatusUnread = "unread"
)

type MessageRepository interface {
	List(db *gorm.DB, status string) ([]models.Message, error)
	FindByID(db *gorm.DB, id string) (*models.Message, error)
	Create(db *gorm.DB, msg *models.Message) error
	SetRead(db *gorm.DB, id string, read bool) error
	SetReplied(db *gorm.DB, id string, replied bool) error
	Delete(db *gorm.DB, id string) error
	Counts(db *gorm.DB) (total int64, unread int64, err error)
}

type messageRepository struct{}

func NewMessageRepository() MessageRepository { return &messageRepository{} }

func (r *messageRepository) List(db *gorm.DB, status string) ([]models.Message, error) {
	q := db.Model(&models.Message{}).Order("created_at DESC")
	switch status {
	case MessageStatusRead:
		q = q.Where("read = ?", true)
	case MessageStatusUnread:
		q = q.Where("read = ?", false)
	}
	msgs := []models.Message{}
	if err := q.Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *messageRepository) FindByID(db *gorm.DB, id string) (*models.Message, error) {
	var msg models.Message
	if err := db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) Create(db *gorm.DB, msg *models.Message) error {
	return db.Create(msg).Error
}

func (r *messageRepository) SetRead(db *gorm.DB, id string, read bool) error {
	return r.setFlag(db, id, "read", read)
}

func (r *messageRepository) SetReplied(db *gorm.DB, id string, replied bool) error {
	return r.setFlag(db, id, "replied", replied)
}

func (r *messageRepository) setFlag(db *gorm.DB, id, column string, value bool) error {
	res := db.Model(&models.Message{}).Where("id = ?", id).UpdateColumn(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *messageRepository) Delete(db *gorm.DB, id string) error {
	res := db.Delete(&models.Message{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *messageRepository) Counts(db *gorm.DB) (int64, int64, error) {
	var total, unread int64
	if err := db.Model(&models.Message{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := db.Model(&models.Message{}).Where("read = ?", false).Count(&unread).Error; err != nil {
		return 0, 0, err
	}
	return total, unread, nil
}
