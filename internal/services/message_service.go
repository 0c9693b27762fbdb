package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"bytestudio_backend/internal/email"
	"bytestudio_backend/internal/logger"
	"bytestudio_backend/internal/models"
	"bytestudio_backend/internal/repositories"
	"bytestudio_backend/internal/services/dto"
	"bytestudio_backend/pkg/apperrors"
)

type MessageCounts struct {
	Total  int64
	Unread int64
}

type MessageService interface {
	Submit(ctx context.Context, db *gorm.DB, req *dto.ContactRequest) (*models.Message, error)
	List(db *gorm.DB, status string) ([]models.Message, error)
	Open(ctx context.Context, db *gorm.DB, id string) (*models.Message, error)
	ToggleRead(ctx context.Context, db *gorm.DB, id string) (*models.Message, error)
	Reply(ctx context.Context, db *gorm.DB, id string, req *dto.ReplyRequest) error
	Delete(ctx context.Context, db *gorm.DB, id string) error
	Counts(db *gorm.DB) (*MessageCounts, error)
}

type messageService struct {
	msgRepo  repositories.MessageRepository
	mailer   email.Mailer
	fromName string
	events   Events
}

func NewMessageService(msgRepo repositories.MessageRepository, mailer email.Mailer, fromName string, events Events) MessageService {
	if fromName == "" {
		fromName = "Byte Studio"
	}
	return &messageService{msgRepo: msgRepo, mailer: mailer, fromName: fromName, events: events}
}

func (s *messageService) Submit(ctx context.Context, db *gorm.DB, req *dto.ContactRequest) (*models.Message, error) {
	msg := &models.Message{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Body:  strings.TrimSpace(req.Body),
	}
	if err := s.msgRepo.Create(db, msg); err != nil {
		return nil, apperrors.NewInternal("messages", "Failed to send your message. Please try again.", err)
	}
	logger.CtxInfo(ctx, "contact message received", "message_id", msg.ID)
	publish(s.events, "message.received", "info", fmt.Sprintf("New message from %s", msg.Name))
	return msg, nil
}

func (s *messageService) List(db *gorm.DB, status string) ([]models.Message, error) {
	switch status {
	case repositories.MessageStatusAll, repositories.MessageStatusRead, repositories.MessageStatusUnread, "":
	default:
		return nil, apperrors.NewBadRequest("messages", "Status must be all, read or unread.")
	}
	msgs, err := s.msgRepo.List(db, status)
	if err != nil {
		return nil, apperrors.NewInternal("messages", "Failed to load messages.", err)
	}
	return msgs, nil
}

// Open returns the message and marks it read on first open. Already-read
// messages produce no write at all.
func (s *messageService) Open(ctx context.Context, db *gorm.DB, id string) (*models.Message, error) {
	msg, err := s.find(db, id)
	if err != nil {
		return nil, err
	}
	if !msg.Read {
		if err := s.msgRepo.SetRead(db, id, true); err != nil {
			return nil, apperrors.NewInternal("messages", "Failed to mark the message as read.", err)
		}
		msg.Read = true
	}
	return msg, nil
}

func (s *messageService) ToggleRead(ctx context.Context, db *gorm.DB, id string) (*models.Message, error) {
	msg, err := s.find(db, id)
	if err != nil {
		return nil, err
	}
	if err := s.msgRepo.SetRead(db, id, !msg.Read); err != nil {
		return nil, apperrors.NewInternal("messages", "Failed to update the message.", err)
	}
	msg.Read = !msg.Read
	return msg, nil
}

// Reply emails the sender and flags the message as replied. The flag is only
// set after the send succeeds.
func (s *messageService) Reply(ctx context.Context, db *gorm.DB, id string, req *dto.ReplyRequest) error {
	msg, err := s.find(db, id)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Re: your message to %s", s.fromName)
	body := fmt.Sprintf("Hi %s,\n\n%s\n\n— %s", msg.Name, strings.TrimSpace(req.Body), s.fromName)
	if err := s.mailer.Send(ctx, msg.Email, subject, body); err != nil {
		return apperrors.Wrap(err, apperrors.CodeEmailFailure, "messages",
			"Failed to send the reply email.", 502)
	}

	if err := s.msgRepo.SetReplied(db, id, true); err != nil {
		return apperrors.NewInternal("messages", "Reply sent but the message could not be flagged.", err)
	}
	logger.CtxInfo(ctx, "reply sent", "message_id", id, "to", msg.Email)
	return nil
}

func (s *messageService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if _, err := s.find(db, id); err != nil {
		return err
	}
	if err := s.msgRepo.Delete(db, id); err != nil {
		return apperrors.NewInternal("messages", "Failed to delete the message.", err)
	}
	logger.CtxInfo(ctx, "message deleted", "message_id", id)
	return nil
}

func (s *messageService) Counts(db *gorm.DB) (*MessageCounts, error) {
	total, unread, err := s.msgRepo.Counts(db)
	if err != nil {
		return nil, apperrors.NewInternal("messages", "Failed to load message counts.", err)
	}
	return &MessageCounts{Total: total, Unread: unread}, nil
}

func (s *messageService) find(db *gorm.DB, id string) (*models.Message, error) {
	msg, err := s.msgRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, apperrors.NewInternal("messages", "Failed to load message.", err)
	}
	return msg, nil
}
