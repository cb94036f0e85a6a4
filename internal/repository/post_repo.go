package repository

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/wordpress-mcp-server/internal/models"
	"github.com/wordpress-mcp-server/internal/wordpress"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	wp Requester
}

// NewPostRepo creates a new post repository
func NewPostRepo(wp Requester) PostRepository {
	return &postRepo{wp: wp}
}

// List fetches a single page of posts. Search and category filters are only
// sent when set.
func (r *postRepo) List(ctx context.Context, q models.PostQuery) ([]wordpress.Post, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("per_page", strconv.Itoa(q.PerPage))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if len(q.Categories) > 0 {
		params.Set("categories", joinIDs(q.Categories))
	}

	var posts []wordpress.Post
	if err := r.wp.Get(ctx, "posts", params, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID fetches one post
func (r *postRepo) GetByID(ctx context.Context, id int) (*wordpress.Post, error) {
	var post wordpress.Post
	if err := r.wp.Get(ctx, "posts/"+strconv.Itoa(id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Create publishes a new post
func (r *postRepo) Create(ctx context.Context, payload *wordpress.PostPayload) (*wordpress.Post, error) {
	var post wordpress.Post
	if err := r.wp.Post(ctx, "posts", payload, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
