package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crest/internal/domain/report"
	vo "crest/internal/domain/report/valueobjects"
	apperrors "crest/internal/shared/errors"
)

func pendingReport(t *testing.T) *report.Report {
	t.Helper()
	now := time.Now().UTC()
	r, err := report.ReconstructReport(
		1, 5, uintPtr(20), nil, "",
		"spam", vo.StatusPending,
		nil, nil, false, now, now,
	)
	require.NoError(t, err)
	return r
}

func TestClaimReportUseCase_Execute_Success(t *testing.T) {
	r := pendingReport(t)
	var updated *report.Report

	reportRepo := &mockReportRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*report.Report, error) { return r, nil },
		UpdateFunc: func(ctx context.Context, rep *report.Report) error {
			updated = rep
			return nil
		},
	}

	uc := NewClaimReportUseCase(reportRepo, &mockPublisher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ClaimReportCommand{ReportID: 1, HandlerID: 7})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, vo.StatusInProgress, updated.Status())
	assert.Equal(t, "in_progress", result.Report.Status)
	require.NotNil(t, result.Report.HandledBy)
	assert.Equal(t, uint(7), *result.Report.HandledBy)
}

func TestClaimReportUseCase_Execute_ReclaimIsNoop(t *testing.T) {
	r := pendingReport(t)
	require.NoError(t, r.Claim(7))

	updateCount := 0
	reportRepo := &mockReportRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*report.Report, error) { return r, nil },
		UpdateFunc: func(ctx context.Context, rep *report.Report) error {
			updateCount++
			return nil
		},
	}

	uc := NewClaimReportUseCase(reportRepo, &mockPublisher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ClaimReportCommand{ReportID: 1, HandlerID: 7})

	require.NoError(t, err, "re-claiming your own report succeeds")
	assert.Equal(t, "in_progress", result.Report.Status)
	assert.Equal(t, 1, updateCount)
}

func TestClaimReportUseCase_Execute_OtherHandlerForbidden(t *testing.T) {
	r := pendingReport(t)
	require.NoError(t, r.Claim(7))

	reportRepo := &mockReportRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*report.Report, error) { return r, nil },
	}

	uc := NewClaimReportUseCase(reportRepo, &mockPublisher{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), ClaimReportCommand{ReportID: 1, HandlerID: 8})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestClaimReportUseCase_Execute_TerminalReport(t *testing.T) {
	r := pendingReport(t)
	require.NoError(t, r.Dismiss(7))

	reportRepo := &mockReportRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*report.Report, error) { return r, nil },
	}

	uc := NewClaimReportUseCase(reportRepo, &mockPublisher{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), ClaimReportCommand{ReportID: 1, HandlerID: 8})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err), "a closed report fails the transition check, not exclusivity")
}

func TestClaimReportUseCase_Execute_PublishesChange(t *testing.T) {
	r := pendingReport(t)
	var published []uint

	reportRepo := &mockReportRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*report.Report, error) { return r, nil },
	}
	publisher := &mockPublisher{
		PublishReportChangedFunc: func(ctx context.Context, reportID uint) error {
			published = append(published, reportID)
			return nil
		},
	}

	uc := NewClaimReportUseCase(reportRepo, publisher, &mockLogger{})
	_, err := uc.Execute(context.Background(), ClaimReportCommand{ReportID: 1, HandlerID: 7})

	require.NoError(t, err)
	assert.Equal(t, []uint{1}, published)
}
