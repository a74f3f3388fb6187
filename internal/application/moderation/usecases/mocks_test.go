package usecases

import (
	"context"

	appnotif "crest/internal/application/notification"
	"crest/internal/domain/audit"
	"crest/internal/domain/notification"
	"crest/internal/domain/report"
	"crest/internal/domain/user"
	"crest/internal/shared/logger"
)

type mockReportRepository struct {
	SaveFunc    func(ctx context.Context, r *report.Report) error
	UpdateFunc  func(ctx context.Context, r *report.Report) error
	GetByIDFunc func(ctx context.Context, reportID uint) (*report.Report, error)
	ListFunc    func(ctx context.Context, filter report.Filter) ([]*report.Report, int64, error)
}

func (m *mockReportRepository) Save(ctx context.Context, r *report.Report) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReportRepository) Update(ctx context.Context, r *report.Report) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReportRepository) GetByID(ctx context.Context, reportID uint) (*report.Report, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, reportID)
	}
	return nil, nil
}

func (m *mockReportRepository) List(ctx context.Context, filter report.Filter) ([]*report.Report, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockUserRepository struct {
	SaveFunc       func(ctx context.Context, u *user.User) error
	UpdateFunc     func(ctx context.Context, u *user.User) error
	GetByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	GetByIDsFunc   func(ctx context.Context, ids []uint) (map[uint]*user.User, error)
	ListStaffFunc  func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*user.User{}, nil
}

func (m *mockUserRepository) ListStaff(ctx context.Context) ([]*user.User, error) {
	if m.ListStaffFunc != nil {
		return m.ListStaffFunc(ctx)
	}
	return nil, nil
}

type mockContentRepository struct {
	OwnerIDFunc    func(ctx context.Context, table string, contentID uint) (uint, error)
	DeleteByIDFunc func(ctx context.Context, table string, contentID uint) error
}

func (m *mockContentRepository) OwnerID(ctx context.Context, table string, contentID uint) (uint, error) {
	if m.OwnerIDFunc != nil {
		return m.OwnerIDFunc(ctx, table, contentID)
	}
	return 0, nil
}

func (m *mockContentRepository) DeleteByID(ctx context.Context, table string, contentID uint) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, table, contentID)
	}
	return nil
}

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

type mockPublisher struct {
	PublishTicketChangedFunc       func(ctx context.Context, ticketID uint) error
	PublishConversationChangedFunc func(ctx context.Context, ticketID uint) error
	PublishReportChangedFunc       func(ctx context.Context, reportID uint) error
}

func (m *mockPublisher) PublishTicketChanged(ctx context.Context, ticketID uint) error {
	if m.PublishTicketChangedFunc != nil {
		return m.PublishTicketChangedFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockPublisher) PublishConversationChanged(ctx context.Context, ticketID uint) error {
	if m.PublishConversationChangedFunc != nil {
		return m.PublishConversationChangedFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockPublisher) PublishReportChanged(ctx context.Context, reportID uint) error {
	if m.PublishReportChangedFunc != nil {
		return m.PublishReportChangedFunc(ctx, reportID)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}

func (m *mockLogger) Info(msg string, args ...any) {}

func (m *mockLogger) Warn(msg string, args ...any) {}

func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestFanout(notificationRepo *mockNotificationRepository, userRepo *mockUserRepository) *appnotif.FanoutService {
	return appnotif.NewFanoutService(notificationRepo, userRepo, nil, &mockLogger{})
}
