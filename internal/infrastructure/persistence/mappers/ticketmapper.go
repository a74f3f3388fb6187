package mappers

import (
	"fmt"

	"crest/internal/domain/ticket"
	vo "crest/internal/domain/ticket/valueobjects"
	"crest/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between domain entities and
// persistence models.
type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) *models.TicketModel
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket status: %w", err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket priority: %w", err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Subject,
		model.Message,
		status,
		priority,
		model.OwnerID,
		model.IsLocked,
		model.LockedAt,
		model.UserID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ticketMapper) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}

	return &models.TicketModel{
		ID:        entity.ID(),
		Number:    entity.Number(),
		Subject:   entity.Subject(),
		Message:   entity.Message(),
		Status:    string(entity.Status()),
		Priority:  string(entity.Priority()),
		OwnerID:   entity.OwnerID(),
		IsLocked:  entity.IsLocked(),
		LockedAt:  entity.LockedAt(),
		UserID:    entity.UserID(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *ticketMapper) ToEntities(ms []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(ms))
	for _, model := range ms {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// MessageMapper converts conversation message rows.
type MessageMapper interface {
	ToEntity(model *models.ConversationMessageModel) (*ticket.Message, error)
	ToModel(entity *ticket.Message) *models.ConversationMessageModel
	ToEntities(models []*models.ConversationMessageModel) ([]*ticket.Message, error)
}

type messageMapper struct{}

func NewMessageMapper() MessageMapper {
	return &messageMapper{}
}

func (m *messageMapper) ToEntity(model *models.ConversationMessageModel) (*ticket.Message, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Body,
		model.IsStaff,
		model.CreatedAt,
	)
}

func (m *messageMapper) ToModel(entity *ticket.Message) *models.ConversationMessageModel {
	if entity == nil {
		return nil
	}
	return &models.ConversationMessageModel{
		ID:        entity.ID(),
		TicketID:  entity.TicketID(),
		UserID:    entity.UserID(),
		Body:      entity.Body(),
		IsStaff:   entity.IsStaff(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (m *messageMapper) ToEntities(ms []*models.ConversationMessageModel) ([]*ticket.Message, error) {
	entities := make([]*ticket.Message, 0, len(ms))
	for _, model := range ms {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
