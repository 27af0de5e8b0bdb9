package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
)

type postRepository struct {
	mu    sync.RWMutex
	order []string
	posts map[string]post.Post
}

// NewPostRepository creates an empty post store
func NewPostRepository() post.PostRepository {
	return &postRepository{posts: make(map[string]post.Post)}
}

func (r *postRepository) Create(ctx context.Context, p post.Post) (post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	r.posts[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return post.Post{}, post.ErrPostNotFound
	}
	return p, nil
}

// List returns matching posts in activation order
func (r *postRepository) List(ctx context.Context, filter post.PostFilter) ([]post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]post.Post, 0, len(r.order))
	for _, id := range r.order {
		p := r.posts[id]
		if filter.Region != nil && p.Region != *filter.Region {
			continue
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
