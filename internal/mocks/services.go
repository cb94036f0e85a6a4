package mocks

import (
	"context"

	"github.com/wordpress-mcp-server/internal/models"
	"github.com/wordpress-mcp-server/internal/service"
)

// MockContentGateway is a mock implementation of ContentGateway.
// Unset funcs return empty results; Calls records every operation name.
type MockContentGateway struct {
	FetchPostsFunc      func(ctx context.Context, q models.PostQuery) ([]models.Post, error)
	FetchCategoriesFunc func(ctx context.Context) ([]models.Category, error)
	FetchMediaFunc      func(ctx context.Context) ([]models.Media, error)
	FetchTagsFunc       func(ctx context.Context) ([]models.Tag, error)
	FetchUsersFunc      func(ctx context.Context) ([]models.User, error)
	FetchCommentsFunc   func(ctx context.Context) ([]models.Comment, error)
	CreatePostFunc      func(ctx context.Context, input models.PostInput) (*models.Post, error)
	CreateCategoryFunc  func(ctx context.Context, input models.CategoryInput) (*models.Category, error)
	GetPostByIDFunc     func(ctx context.Context, id int) (*models.Post, error)
	GetMediaFunc        func(ctx context.Context, id int) (*models.Media, error)
	GetPageFunc         func(ctx context.Context, id int) (*models.Page, error)

	Calls          []string
	PostQueries    []models.PostQuery
	PostInputs     []models.PostInput
	CategoryInputs []models.CategoryInput
}

// Verify interface compliance
var _ service.ContentGateway = (*MockContentGateway)(nil)

func NewMockContentGateway() *MockContentGateway {
	return &MockContentGateway{}
}

func (m *MockContentGateway) FetchPosts(ctx context.Context, q models.PostQuery) ([]models.Post, error) {
	m.Calls = append(m.Calls, "FetchPosts")
	m.PostQueries = append(m.PostQueries, q)
	if m.FetchPostsFunc != nil {
		return m.FetchPostsFunc(ctx, q)
	}
	return []models.Post{}, nil
}

func (m *MockContentGateway) FetchCategories(ctx context.Context) ([]models.Category, error) {
	m.Calls = append(m.Calls, "FetchCategories")
	if m.FetchCategoriesFunc != nil {
		return m.FetchCategoriesFunc(ctx)
	}
	return []models.Category{}, nil
}

func (m *MockContentGateway) FetchMedia(ctx context.Context) ([]models.Media, error) {
	m.Calls = append(m.Calls, "FetchMedia")
	if m.FetchMediaFunc != nil {
		return m.FetchMediaFunc(ctx)
	}
	return []models.Media{}, nil
}

func (m *MockContentGateway) FetchTags(ctx context.Context) ([]models.Tag, error) {
	m.Calls = append(m.Calls, "FetchTags")
	if m.FetchTagsFunc != nil {
		return m.FetchTagsFunc(ctx)
	}
	return []models.Tag{}, nil
}

func (m *MockContentGateway) FetchUsers(ctx context.Context) ([]models.User, error) {
	m.Calls = append(m.Calls, "FetchUsers")
	if m.FetchUsersFunc != nil {
		return m.FetchUsersFunc(ctx)
	}
	return []models.User{}, nil
}

func (m *MockContentGateway) FetchComments(ctx context.Context) ([]models.Comment, error) {
	m.Calls = append(m.Calls, "FetchComments")
	if m.FetchCommentsFunc != nil {
		return m.FetchCommentsFunc(ctx)
	}
	return []models.Comment{}, nil
}

func (m *MockContentGateway) CreatePost(ctx context.Context, input models.PostInput) (*models.Post, error) {
	m.Calls = append(m.Calls, "CreatePost")
	m.PostInputs = append(m.PostInputs, input)
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(ctx, input)
	}
	return &models.Post{
		ID:         1,
		Title:      input.Title,
		Content:    input.Content,
		Slug:       input.Slug,
		Status:     input.Status,
		Categories: input.Categories,
		Tags:       input.Tags,
	}, nil
}

func (m *MockContentGateway) CreateCategory(ctx context.Context, input models.CategoryInput) (*models.Category, error) {
	m.Calls = append(m.Calls, "CreateCategory")
	m.CategoryInputs = append(m.CategoryInputs, input)
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(ctx, input)
	}
	return &models.Category{
		ID:          1,
		Name:        input.Name,
		Slug:        input.Slug,
		Parent:      input.Parent,
		Description: input.Description,
	}, nil
}

func (m *MockContentGateway) GetPostByID(ctx context.Context, id int) (*models.Post, error) {
	m.Calls = append(m.Calls, "GetPostByID")
	if m.GetPostByIDFunc != nil {
		return m.GetPostByIDFunc(ctx, id)
	}
	return &models.Post{ID: id}, nil
}

func (m *MockContentGateway) GetMedia(ctx context.Context, id int) (*models.Media, error) {
	m.Calls = append(m.Calls, "GetMedia")
	if m.GetMediaFunc != nil {
		return m.GetMediaFunc(ctx, id)
	}
	return &models.Media{ID: id}, nil
}

func (m *MockContentGateway) GetPage(ctx context.Context, id int) (*models.Page, error) {
	m.Calls = append(m.Calls, "GetPage")
	if m.GetPageFunc != nil {
		return m.GetPageFunc(ctx, id)
	}
	return &models.Page{ID: id}, nil
}
