package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crest/internal/domain/audit"
	"crest/internal/shared/logger"
)

// ---------- Mocks ----------

type mockAuditRepository struct {
	SaveFunc func(ctx context.Context, e *audit.Entry) error
	ListFunc func(ctx context.Context, actorID *uint, page, pageSize int) ([]*audit.Entry, int64, error)
}

func (m *mockAuditRepository) Save(ctx context.Context, e *audit.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockAuditRepository) List(ctx context.Context, actorID *uint, page, pageSize int) ([]*audit.Entry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, actorID, page, pageSize)
	}
	return nil, 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}

func (m *mockLogger) Info(msg string, args ...any) {}

func (m *mockLogger) Warn(msg string, args ...any) {}

func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...any) {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...any) {}

func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }

// ---------- Helpers ----------

func auditEntry(t *testing.T, actorID uint, action string) *audit.Entry {
	t.Helper()
	e, err := audit.NewEntry(actorID, action, "repeat violations", map[string]interface{}{
		"report_id": uint(9),
	})
	require.NoError(t, err)
	return e
}

// ---------- Tests ----------

func TestListAuditLogUseCase_Execute_Success(t *testing.T) {
	repo := &mockAuditRepository{
		ListFunc: func(ctx context.Context, actorID *uint, page, pageSize int) ([]*audit.Entry, int64, error) {
			assert.Nil(t, actorID, "no actor filter was requested")
			assert.Equal(t, 1, page)
			assert.Equal(t, 50, pageSize)
			return []*audit.Entry{
				auditEntry(t, 7, "resolve_report_account_suspend"),
				auditEntry(t, 7, "dismiss_report"),
			}, 12, nil
		},
	}
	uc := NewListAuditLogUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListAuditLogCommand{})

	require.NoError(t, err)
	assert.Equal(t, int64(12), result.Total)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "resolve_report_account_suspend", result.Entries[0].Action)
	assert.Equal(t, uint(7), result.Entries[0].ActorID)
	assert.Equal(t, "repeat violations", result.Entries[0].Reason)
	assert.Equal(t, uint(9), result.Entries[0].Payload["report_id"])
}

func TestListAuditLogUseCase_Execute_ActorFilter(t *testing.T) {
	actor := uint(7)
	var gotActor *uint
	repo := &mockAuditRepository{
		ListFunc: func(ctx context.Context, actorID *uint, page, pageSize int) ([]*audit.Entry, int64, error) {
			gotActor = actorID
			return nil, 0, nil
		},
	}
	uc := NewListAuditLogUseCase(repo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListAuditLogCommand{ActorID: &actor})

	require.NoError(t, err)
	require.NotNil(t, gotActor)
	assert.Equal(t, uint(7), *gotActor)
}

func TestListAuditLogUseCase_Execute_PaginationClamps(t *testing.T) {
	var gotPage, gotPageSize int
	repo := &mockAuditRepository{
		ListFunc: func(ctx context.Context, actorID *uint, page, pageSize int) ([]*audit.Entry, int64, error) {
			gotPage, gotPageSize = page, pageSize
			return nil, 0, nil
		},
	}
	uc := NewListAuditLogUseCase(repo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListAuditLogCommand{Page: -1, PageSize: 1000})

	require.NoError(t, err)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 50, gotPageSize)
}

func TestListAuditLogUseCase_Execute_RepositoryFailure(t *testing.T) {
	repo := &mockAuditRepository{
		ListFunc: func(ctx context.Context, actorID *uint, page, pageSize int) ([]*audit.Entry, int64, error) {
			return nil, 0, assert.AnError
		},
	}
	uc := NewListAuditLogUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListAuditLogCommand{})

	require.Error(t, err)
	assert.Nil(t, result)
}
