package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crest/internal/domain/ticket"
	"crest/internal/domain/user"
	apperrors "crest/internal/shared/errors"
)

func TestLoadConversationUseCase_Execute_ComposesThread(t *testing.T) {
	tk := threadTicket(t, nil, false)
	author := uint(2)
	msg, err := ticket.ReconstructMessage(300, 12, &author, "On it", true, tk.CreatedAt().Add(time.Hour))
	require.NoError(t, err)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	messageRepo := &mockMessageRepository{
		GetByTicketIDFunc: func(ctx context.Context, id uint) ([]*ticket.Message, error) {
			return []*ticket.Message{msg}, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
			assert.ElementsMatch(t, []uint{2, 5}, ids, "author names are resolved in one batched lookup")
			return map[uint]*user.User{
				2: staffUser(t, 2, "alex"),
				5: regularUser(t, 5, "casey"),
			}, nil
		},
	}

	uc := NewLoadConversationUseCase(ticketRepo, messageRepo, userRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), LoadConversationCommand{
		TicketID: 12, ActorID: 2, IsStaff: true,
	})

	require.NoError(t, err)
	require.Len(t, result.Entries, 2)

	initial := result.Entries[0]
	assert.Equal(t, "initial-12", initial.ID)
	assert.Equal(t, "casey", initial.AuthorName)
	assert.False(t, initial.IsStaff)
	assert.Equal(t, tk.Message(), initial.Body)

	reply := result.Entries[1]
	assert.Equal(t, "300", reply.ID)
	assert.Equal(t, "alex", reply.AuthorName)
	assert.True(t, reply.IsStaff)
}

func TestLoadConversationUseCase_Execute_SubmitterMayRead(t *testing.T) {
	tk := threadTicket(t, ownerRef(2), true)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewLoadConversationUseCase(ticketRepo, &mockMessageRepository{}, &mockUserRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), LoadConversationCommand{
		TicketID: 12, ActorID: 5,
	})

	require.NoError(t, err, "the advisory lock gates writes, not reads")
	require.Len(t, result.Entries, 1)
}

func TestLoadConversationUseCase_Execute_StrangerRejected(t *testing.T) {
	tk := threadTicket(t, nil, false)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewLoadConversationUseCase(ticketRepo, &mockMessageRepository{}, &mockUserRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), LoadConversationCommand{
		TicketID: 12, ActorID: 99,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestLoadConversationUseCase_Execute_NameResolutionFailureDegrades(t *testing.T) {
	tk := threadTicket(t, nil, false)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
			return nil, assert.AnError
		},
	}

	uc := NewLoadConversationUseCase(ticketRepo, &mockMessageRepository{}, userRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), LoadConversationCommand{
		TicketID: 12, ActorID: 5,
	})

	require.NoError(t, err, "name resolution is best-effort")
	require.Len(t, result.Entries, 1)
	assert.Empty(t, result.Entries[0].AuthorName)
}
