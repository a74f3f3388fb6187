package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crest/internal/domain/ticket"
	"crest/internal/infrastructure/persistence/mappers"
	"crest/internal/infrastructure/persistence/models"
	"crest/internal/shared/db"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
}

func NewMessageRepository(gormDB *gorm.DB) ticket.MessageRepository {
	return &MessageRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewMessageMapper(),
	}
}

func (r *MessageRepositoryImpl) Save(ctx context.Context, m *ticket.Message) error {
	model := r.mapper.ToModel(m)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set message ID: %w", err)
	}
	return nil
}

// GetByTicketID returns the stored thread ordered ascending by creation
// time, ties broken by insertion order.
func (r *MessageRepositoryImpl) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	var ms []*models.ConversationMessageModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get messages by ticket ID: %w", err)
	}

	return r.mapper.ToEntities(ms)
}

func (r *MessageRepositoryImpl) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.ConversationMessageModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete messages by ticket ID: %w", err)
	}
	return nil
}
