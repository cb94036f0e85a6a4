package repository

import (
	"context"
	"net/url"

	"github.com/wordpress-mcp-server/internal/models"
	"github.com/wordpress-mcp-server/internal/wordpress"
)

// Requester is the subset of *wordpress.Client the repositories use
type Requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

var _ Requester = (*wordpress.Client)(nil)

// PostRepository defines the interface for post operations
type PostRepository interface {
	List(ctx context.Context, q models.PostQuery) ([]wordpress.Post, error)
	GetByID(ctx context.Context, id int) (*wordpress.Post, error)
	Create(ctx context.Context, payload *wordpress.PostPayload) (*wordpress.Post, error)
}

// CategoryRepository defines the interface for category operations
type CategoryRepository interface {
	List(ctx context.Context) ([]wordpress.Term, error)
	Create(ctx context.Context, payload *wordpress.CategoryPayload) (*wordpress.Term, error)
}

// TagRepository defines the interface for tag operations
type TagRepository interface {
	List(ctx context.Context) ([]wordpress.Term, error)
}

// MediaRepository defines the interface for media library operations
type MediaRepository interface {
	List(ctx context.Context) ([]wordpress.Media, error)
	GetByID(ctx context.Context, id int) (*wordpress.Media, error)
}

// UserRepository defines the interface for user operations
type UserRepository interface {
	List(ctx context.Context) ([]wordpress.User, error)
}

// CommentRepository defines the interface for comment operations
type CommentRepository interface {
	List(ctx context.Context) ([]wordpress.Comment, error)
}

// PageRepository defines the interface for page operations
type PageRepository interface {
	GetByID(ctx context.Context, id int) (*wordpress.Page, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Post     PostRepository
	Category CategoryRepository
	Tag      TagRepository
	Media    MediaRepository
	User     UserRepository
	Comment  CommentRepository
	Page     PageRepository
}

// New creates all repositories on top of the given REST client
func New(wp Requester) *Repositories {
	return &Repositories{
		Post:     NewPostRepo(wp),
		Category: NewCategoryRepo(wp),
		Tag:      NewTagRepo(wp),
		Media:    NewMediaRepo(wp),
		User:     NewUserRepo(wp),
		Comment:  NewCommentRepo(wp),
		Page:     NewPageRepo(wp),
	}
}
