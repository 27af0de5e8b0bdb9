package post

import "context"

type PostService interface {
	// Activate registers a new contract site.
	Activate(ctx context.Context, req ActivatePostRequest) (PostResponse, error)
	Get(ctx context.Context, id string) (PostResponse, error)
	List(ctx context.Context, filter PostFilter) ([]PostResponse, error)
}
