package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/wordpress-mcp-server/internal/models"
	"github.com/wordpress-mcp-server/internal/repository"
	"github.com/wordpress-mcp-server/internal/wordpress"
)

// contentService is the concrete implementation of ContentGateway.
// It holds no per-call state, so one instance serves concurrent calls.
type contentService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newContentService creates a new contentService
func newContentService(repos *repository.Repositories, log zerolog.Logger) *contentService {
	return &contentService{
		repos: repos,
		log:   log.With().Str("service", "content").Logger(),
	}
}

// FetchPosts fetches one page of posts with a single list call
func (s *contentService) FetchPosts(ctx context.Context, q models.PostQuery) ([]models.Post, error) {
	if q.Page < 1 {
		q.Page = models.DefaultPage
	}
	if q.PerPage < 1 {
		q.PerPage = models.DefaultPerPage
	}
	if q.PerPage > models.MaxPerPage {
		q.PerPage = models.MaxPerPage
	}

	s.log.Debug().
		Int("page", q.Page).
		Int("per_page", q.PerPage).
		Str("search", q.Search).
		Ints("categories", q.Categories).
		Msg("Fetching posts")

	posts, err := s.repos.Post.List(ctx, q)
	if err != nil {
		return nil, wrapError("fetch posts", err)
	}
	return mapAll(posts, toPost), nil
}

// FetchCategories fetches categories, dropping meta
func (s *contentService) FetchCategories(ctx context.Context) ([]models.Category, error) {
	terms, err := s.repos.Category.List(ctx)
	if err != nil {
		return nil, wrapError("fetch categories", err)
	}
	return mapAll(terms, toCategory), nil
}

// FetchMedia fetches the media library
func (s *contentService) FetchMedia(ctx context.Context) ([]models.Media, error) {
	items, err := s.repos.Media.List(ctx)
	if err != nil {
		return nil, wrapError("fetch media", err)
	}
	return mapAll(items, toMedia), nil
}

func (s *contentService) FetchTags(ctx context.Context) ([]models.Tag, error) {
	terms, err := s.repos.Tag.List(ctx)
	if err != nil {
		return nil, wrapError("fetch tags", err)
	}
	return mapAll(terms, toTag), nil
}

func (s *contentService) FetchUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repos.User.List(ctx)
	if err != nil {
		return nil, wrapError("fetch users", err)
	}
	return mapAll(users, toUser), nil
}

func (s *contentService) FetchComments(ctx context.Context) ([]models.Comment, error) {
	comments, err := s.repos.Comment.List(ctx)
	if err != nil {
		return nil, wrapError("fetch comments", err)
	}
	return mapAll(comments, toComment), nil
}

// CreatePost creates a post. status is forwarded so draft/publish intent is
// honored; an empty slug is derived from the title.
func (s *contentService) CreatePost(ctx context.Context, input models.PostInput) (*models.Post, error) {
	payload := &wordpress.PostPayload{
		Title:      input.Title,
		Content:    input.Content,
		Slug:       input.Slug,
		Status:     input.Status,
		Categories: ids(input.Categories),
		Tags:       ids(input.Tags),
	}
	if payload.Slug == "" {
		payload.Slug = models.Slugify(input.Title)
	}

	created, err := s.repos.Post.Create(ctx, payload)
	if err != nil {
		return nil, wrapError("create post", err)
	}

	post := toPost(*created)
	s.log.Info().
		Int("post_id", post.ID).
		Str("slug", post.Slug).
		Str("status", post.Status).
		Msg("Post created")

	return &post, nil
}

// CreateCategory creates a category. parent is forwarded; an empty slug is
// derived from the name.
func (s *contentService) CreateCategory(ctx context.Context, input models.CategoryInput) (*models.Category, error) {
	payload := &wordpress.CategoryPayload{
		Name:        input.Name,
		Description: input.Description,
		Slug:        input.Slug,
		Parent:      input.Parent,
	}
	if payload.Slug == "" {
		payload.Slug = models.Slugify(input.Name)
	}

	created, err := s.repos.Category.Create(ctx, payload)
	if err != nil {
		return nil, wrapError("create category", err)
	}

	category := toCategory(*created)
	s.log.Info().
		Int("category_id", category.ID).
		Str("slug", category.Slug).
		Msg("Category created")

	return &category, nil
}

func (s *contentService) GetPostByID(ctx context.Context, id int) (*models.Post, error) {
	found, err := s.repos.Post.GetByID(ctx, id)
	if err != nil {
		return nil, wrapError("get post", err)
	}
	post := toPost(*found)
	return &post, nil
}

func (s *contentService) GetMedia(ctx context.Context, id int) (*models.Media, error) {
	found, err := s.repos.Media.GetByID(ctx, id)
	if err != nil {
		return nil, wrapError("get media", err)
	}
	media := toMedia(*found)
	return &media, nil
}

func (s *contentService) GetPage(ctx context.Context, id int) (*models.Page, error) {
	found, err := s.repos.Page.GetByID(ctx, id)
	if err != nil {
		return nil, wrapError("get page", err)
	}
	page := toPage(*found)
	return &page, nil
}
