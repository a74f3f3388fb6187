package usecases

import "context"

// SubmitAppealExecutor defines the interface for filing an appeal.
type SubmitAppealExecutor interface {
	Execute(ctx context.Context, cmd SubmitAppealCommand) (*SubmitAppealResult, error)
}

// DecideAppealExecutor defines the interface for reviewing an appeal.
type DecideAppealExecutor interface {
	Execute(ctx context.Context, cmd DecideAppealCommand) (*DecideAppealResult, error)
}

// ListAppealsExecutor defines the interface for the appeal queue listing.
type ListAppealsExecutor interface {
	Execute(ctx context.Context, cmd ListAppealsCommand) (*ListAppealsResult, error)
}
