package usecases

import (
	"context"

	"crest/internal/domain/notification"
	"crest/internal/shared/logger"
)

// ---------- Mocks ----------

type mockNotificationRepository struct {
	CreateFunc                 func(ctx context.Context, n *notification.Notification) error
	BulkCreateFunc             func(ctx context.Context, notifications []*notification.Notification) error
	GetByIDFunc                func(ctx context.Context, id uint) (*notification.Notification, error)
	ListByUserIDFunc           func(ctx context.Context, userID uint, limit, offset int) ([]*notification.Notification, int64, error)
	CountUnreadFunc            func(ctx context.Context, userID uint) (int64, error)
	MarkAsReadFunc             func(ctx context.Context, id uint) error
	MarkAllAsReadFunc          func(ctx context.Context, userID uint) error
	DeleteFunc                 func(ctx context.Context, id uint) error
	DeleteByMetadataExceptFunc func(ctx context.Context, notificationType notification.Type, metaKey string, correlationID uint, exceptUserID uint) error
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) BulkCreate(ctx context.Context, notifications []*notification.Notification) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, notifications)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id uint) error {
	if m.MarkAsReadFunc != nil {
		return m.MarkAsReadFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) error {
	if m.MarkAllAsReadFunc != nil {
		return m.MarkAllAsReadFunc(ctx, userID)
	}
	return nil
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepository) DeleteByMetadataExcept(ctx context.Context, notificationType notification.Type, metaKey string, correlationID uint, exceptUserID uint) error {
	if m.DeleteByMetadataExceptFunc != nil {
		return m.DeleteByMetadataExceptFunc(ctx, notificationType, metaKey, correlationID, exceptUserID)
	}
	return nil
}

// ---------- Logger ----------

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
