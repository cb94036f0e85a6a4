package mocks

import (
	"context"
	"fmt"

	"github.com/wordpress-mcp-server/internal/models"
	"github.com/wordpress-mcp-server/internal/repository"
	"github.com/wordpress-mcp-server/internal/wordpress"
)

// MockPostRepository is an in-memory PostRepository that records calls
type MockPostRepository struct {
	Posts       map[int]*wordpress.Post
	ListFunc    func(ctx context.Context, q models.PostQuery) ([]wordpress.Post, error)
	CreateError error
	ListCalls   []models.PostQuery
	Created     []*wordpress.PostPayload
	nextID      int
}

// Verify interface compliance
var _ repository.PostRepository = (*MockPostRepository)(nil)

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		Posts:  make(map[int]*wordpress.Post),
		nextID: 1,
	}
}

func (m *MockPostRepository) List(ctx context.Context, q models.PostQuery) ([]wordpress.Post, error) {
	m.ListCalls = append(m.ListCalls, q)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	posts := make([]wordpress.Post, 0, len(m.Posts))
	for _, p := range m.Posts {
		posts = append(posts, *p)
	}
	return posts, nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int) (*wordpress.Post, error) {
	p, ok := m.Posts[id]
	if !ok {
		return nil, &wordpress.APIError{Status: 404, Code: "rest_post_invalid_id", Message: "Invalid post ID."}
	}
	return p, nil
}

// Create stores the post the way the remote API would: id, date and
// rendered wrappers are assigned server-side.
func (m *MockPostRepository) Create(ctx context.Context, payload *wordpress.PostPayload) (*wordpress.Post, error) {
	m.Created = append(m.Created, payload)
	if m.CreateError != nil {
		return nil, m.CreateError
	}

	post := &wordpress.Post{
		ID:         m.nextID,
		Date:       "2024-01-01T00:00:00",
		Slug:       payload.Slug,
		Status:     payload.Status,
		Title:      wordpress.Rendered{Rendered: payload.Title},
		Content:    wordpress.Rendered{Rendered: payload.Content},
		Excerpt:    wordpress.Rendered{Rendered: ""},
		Categories: payload.Categories,
		Tags:       payload.Tags,
	}
	m.Posts[post.ID] = post
	m.nextID++
	return post, nil
}

// MockCategoryRepository is an in-memory CategoryRepository that records calls
type MockCategoryRepository struct {
	Terms       []wordpress.Term
	ListError   error
	CreateError error
	Created     []*wordpress.CategoryPayload
}

// Verify interface compliance
var _ repository.CategoryRepository = (*MockCategoryRepository)(nil)

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{}
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]wordpress.Term, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Terms, nil
}

func (m *MockCategoryRepository) Create(ctx context.Context, payload *wordpress.CategoryPayload) (*wordpress.Term, error) {
	m.Created = append(m.Created, payload)
	if m.CreateError != nil {
		return nil, m.CreateError
	}

	term := wordpress.Term{
		ID:          len(m.Terms) + 1,
		Name:        payload.Name,
		Slug:        payload.Slug,
		Description: payload.Description,
		Parent:      payload.Parent,
		Taxonomy:    "category",
		Link:        fmt.Sprintf("https://blog.example.com/category/%s/", payload.Slug),
	}
	m.Terms = append(m.Terms, term)
	return &term, nil
}
