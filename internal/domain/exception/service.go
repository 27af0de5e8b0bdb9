package exception

import "context"

type ExceptionService interface {
	Request(ctx context.Context, req RequestExceptionRequest) (ExceptionResponse, error)

	// Decide approves or rejects a pending request exactly once.
	Decide(ctx context.Context, req DecideExceptionRequest) (ExceptionResponse, error)
	List(ctx context.Context, filter ExceptionFilter) ([]ExceptionResponse, error)
}
