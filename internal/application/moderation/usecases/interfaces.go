package usecases

import "context"

// CreateReportExecutor defines the interface for filing a report.
type CreateReportExecutor interface {
	Execute(ctx context.Context, cmd CreateReportCommand) (*CreateReportResult, error)
}

// ClaimReportExecutor defines the interface for claiming a report.
type ClaimReportExecutor interface {
	Execute(ctx context.Context, cmd ClaimReportCommand) (*ClaimReportResult, error)
}

// ResolveReportExecutor defines the interface for resolving a report.
type ResolveReportExecutor interface {
	Execute(ctx context.Context, cmd ResolveReportCommand) (*ResolveReportResult, error)
}

// DismissReportExecutor defines the interface for dismissing a report.
type DismissReportExecutor interface {
	Execute(ctx context.Context, cmd DismissReportCommand) (*DismissReportResult, error)
}

// ListReportsExecutor defines the interface for the report queue listing.
type ListReportsExecutor interface {
	Execute(ctx context.Context, cmd ListReportsCommand) (*ListReportsResult, error)
}
