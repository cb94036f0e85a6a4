package service

import (
	"context"

	"github.com/wordpress-mcp-server/internal/models"
)

// unavailableGateway answers every operation with the same startup error,
// so the tool server can run while misconfigured.
type unavailableGateway struct {
	cause error
}

// NewUnavailableGateway returns a gateway whose operations all fail with cause
func NewUnavailableGateway(cause error) ContentGateway {
	return &unavailableGateway{cause: cause}
}

func (g *unavailableGateway) fail(op string) error {
	return &GatewayError{Op: op, Message: g.cause.Error(), Err: g.cause}
}

func (g *unavailableGateway) FetchPosts(context.Context, models.PostQuery) ([]models.Post, error) {
	return nil, g.fail("fetch posts")
}

func (g *unavailableGateway) FetchCategories(context.Context) ([]models.Category, error) {
	return nil, g.fail("fetch categories")
}

func (g *unavailableGateway) FetchMedia(context.Context) ([]models.Media, error) {
	return nil, g.fail("fetch media")
}

func (g *unavailableGateway) FetchTags(context.Context) ([]models.Tag, error) {
	return nil, g.fail("fetch tags")
}

func (g *unavailableGateway) FetchUsers(context.Context) ([]models.User, error) {
	return nil, g.fail("fetch users")
}

func (g *unavailableGateway) FetchComments(context.Context) ([]models.Comment, error) {
	return nil, g.fail("fetch comments")
}

func (g *unavailableGateway) CreatePost(context.Context, models.PostInput) (*models.Post, error) {
	return nil, g.fail("create post")
}

func (g *unavailableGateway) CreateCategory(context.Context, models.CategoryInput) (*models.Category, error) {
	return nil, g.fail("create category")
}

func (g *unavailableGateway) GetPostByID(context.Context, int) (*models.Post, error) {
	return nil, g.fail("get post")
}

func (g *unavailableGateway) GetMedia(context.Context, int) (*models.Media, error) {
	return nil, g.fail("get media")
}

func (g *unavailableGateway) GetPage(context.Context, int) (*models.Page, error) {
	return nil, g.fail("get page")
}
