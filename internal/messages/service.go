package messages

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
)

// Service exposes the direct messaging workflow.
type Service interface {
	Compose(ctx context.Context, senderID uuid.UUID, req ComposeRequest) (*MessageDTO, error)
	Inbox(ctx context.Context, userID uuid.UUID, cursor string, limit int) (MessagePageDTO, error)
	Sent(ctx context.Context, userID uuid.UUID, cursor string, limit int) (MessagePageDTO, error)
	View(ctx context.Context, userID, id uuid.UUID) (*MessageDTO, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type repository interface {
	Create(ctx context.Context, message *models.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Message, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) (bool, error)
	ListInbox(ctx context.Context, userID uuid.UUID, cursor string, limit int) (MessagePageDTO, error)
	ListSent(ctx context.Context, userID uuid.UUID, cursor string, limit int) (MessagePageDTO, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type userFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// ServiceParams groups dependencies for the messages service.
type ServiceParams struct {
	Repo     repository
	UserRepo userFinder
}

type service struct {
	repo  repository
	users userFinder
}

// NewService builds a messages service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("messages repository is required")
	}
	if params.UserRepo == nil {
		return nil, fmt.Errorf("users repository is required")
	}
	return &service{repo: params.Repo, users: params.UserRepo}, nil
}

// Compose sends a message to an existing user.
func (s *service) Compose(ctx context.Context, senderID uuid.UUID, req ComposeRequest) (*MessageDTO, error) {
	if senderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sender id is required")
	}
	if req.RecipientID == senderID {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot send a message to yourself")
	}

	recipient, err := s.users.FindByID(ctx, req.RecipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "recipient not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load recipient")
	}
	if !recipient.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "recipient not found")
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Content:     req.Content,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create message")
	}
	return FromModel(message), nil
}

// Inbox returns messages addressed to the user.
func (s *service) Inbox(ctx context.Context, userID uuid.UUID, cursor string, limit int) (MessagePageDTO, error) {
	if userID == uuid.Nil {
		return MessagePageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	page, err := s.repo.ListInbox(ctx, userID, cursor, limit)
	if err != nil {
		return MessagePageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list inbox")
	}
	return page, nil
}

// Sent returns messages the user authored.
func (s *service) Sent(ctx context.Context, userID uuid.UUID, cursor string, limit int) (MessagePageDTO, error) {
	if userID == uuid.Nil {
		return MessagePageDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	page, err := s.repo.ListSent(ctx, userID, cursor, limit)
	if err != nil {
		return MessagePageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list sent messages")
	}
	return page, nil
}

// View loads a message for one of its participants. The recipient's first
// view flips the read flag; the sender's views never do.
func (s *service) View(ctx context.Context, userID, id uuid.UUID) (*MessageDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message id is required")
	}

	message, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "message not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load message")
	}
	if message.SenderID != userID && message.RecipientID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "message not found")
	}

	if message.RecipientID == userID && !message.IsRead {
		flipped, err := s.repo.MarkRead(ctx, id, userID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark message read")
		}
		if flipped {
			message.IsRead = true
		}
	}
	return FromModel(message), nil
}

// UnreadCount returns the user's unread inbox size.
func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count unread messages")
	}
	return count, nil
}
