package repository

import (
	"context"

	"github.com/wordpress-mcp-server/internal/wordpress"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	wp Requester
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(wp Requester) CommentRepository {
	return &commentRepo{wp: wp}
}

// List fetches the first page of comments
func (r *commentRepo) List(ctx context.Context) ([]wordpress.Comment, error) {
	var comments []wordpress.Comment
	if err := r.wp.Get(ctx, "comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
