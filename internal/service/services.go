package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/wordpress-mcp-server/internal/models"
	"github.com/wordpress-mcp-server/internal/repository"
)

// ContentGateway defines the typed operations on the remote site.
// Every operation returns a result or a *GatewayError, never both.
type ContentGateway interface {
	FetchPosts(ctx context.Context, q models.PostQuery) ([]models.Post, error)
	FetchCategories(ctx context.Context) ([]models.Category, error)
	FetchMedia(ctx context.Context) ([]models.Media, error)
	FetchTags(ctx context.Context) ([]models.Tag, error)
	FetchUsers(ctx context.Context) ([]models.User, error)
	FetchComments(ctx context.Context) ([]models.Comment, error)

	CreatePost(ctx context.Context, input models.PostInput) (*models.Post, error)
	CreateCategory(ctx context.Context, input models.CategoryInput) (*models.Category, error)

	GetPostByID(ctx context.Context, id int) (*models.Post, error)
	GetMedia(ctx context.Context, id int) (*models.Media, error)
	GetPage(ctx context.Context, id int) (*models.Page, error)
}

// NewContentGateway creates the gateway on top of the resource repositories
func NewContentGateway(repos *repository.Repositories, log zerolog.Logger) ContentGateway {
	return newContentService(repos, log)
}
