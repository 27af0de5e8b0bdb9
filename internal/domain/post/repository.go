package post

import "context"

type PostRepository interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id string) (Post, error)
	List(ctx context.Context, filter PostFilter) ([]Post, error)
}
