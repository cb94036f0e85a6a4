package service_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/wordpress-mcp-server/internal/config"
	"github.com/wordpress-mcp-server/internal/mocks"
	"github.com/wordpress-mcp-server/internal/models"
	"github.com/wordpress-mcp-server/internal/repository"
	"github.com/wordpress-mcp-server/internal/service"
	"github.com/wordpress-mcp-server/internal/wordpress"
)

type testHarness struct {
	gateway      service.ContentGateway
	postRepo     *mocks.MockPostRepository
	categoryRepo *mocks.MockCategoryRepository
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	postRepo := mocks.NewMockPostRepository()
	categoryRepo := mocks.NewMockCategoryRepository()

	repos := &repository.Repositories{
		Post:     postRepo,
		Category: categoryRepo,
	}

	return &testHarness{
		gateway:      service.NewContentGateway(repos, zerolog.Nop()),
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
	}
}

func TestFetchPosts_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		query models.PostQuery
		want  models.PostQuery
	}{
		{
			name:  "zero query uses page 1 and 10 per page",
			query: models.PostQuery{},
			want:  models.PostQuery{Page: 1, PerPage: 10},
		},
		{
			name:  "explicit page and per page are kept",
			query: models.PostQuery{Page: 2, PerPage: 5},
			want:  models.PostQuery{Page: 2, PerPage: 5},
		},
		{
			name:  "per page above the remote maximum is capped",
			query: models.PostQuery{Page: 1, PerPage: 500},
			want:  models.PostQuery{Page: 1, PerPage: 100},
		},
		{
			name:  "filters pass through",
			query: models.PostQuery{Page: 3, PerPage: 20, Search: "go", Categories: []int{4}},
			want:  models.PostQuery{Page: 3, PerPage: 20, Search: "go", Categories: []int{4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t)

			if _, err := h.gateway.FetchPosts(context.Background(), tt.query); err != nil {
				t.Fatalf("FetchPosts failed: %v", err)
			}
			if len(h.postRepo.ListCalls) != 1 {
				t.Fatalf("Expected exactly 1 list call, got %d", len(h.postRepo.ListCalls))
			}
			if !reflect.DeepEqual(h.postRepo.ListCalls[0], tt.want) {
				t.Errorf("Expected query %+v, got %+v", tt.want, h.postRepo.ListCalls[0])
			}
		})
	}
}

func TestFetchPosts_UnwrapsRenderedFields(t *testing.T) {
	h := newTestHarness(t)
	h.postRepo.ListFunc = func(ctx context.Context, q models.PostQuery) ([]wordpress.Post, error) {
		return []wordpress.Post{{
			ID:      9,
			Date:    "2024-03-01T08:00:00",
			Slug:    "hello-world",
			Status:  "publish",
			Title:   wordpress.Rendered{Rendered: "Hello World"},
			Content: wordpress.Rendered{Rendered: "<p>Body</p>"},
			Excerpt: wordpress.Rendered{Rendered: "<p>Body</p>\n"},
		}}, nil
	}

	posts, err := h.gateway.FetchPosts(context.Background(), models.PostQuery{})
	if err != nil {
		t.Fatalf("FetchPosts failed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(posts))
	}

	want := models.Post{
		ID:         9,
		Title:      "Hello World",
		Content:    "<p>Body</p>",
		Excerpt:    "<p>Body</p>\n",
		Date:       "2024-03-01T08:00:00",
		Status:     "publish",
		Categories: []int{},
		Tags:       []int{},
		Slug:       "hello-world",
	}
	if !reflect.DeepEqual(posts[0], want) {
		t.Errorf("Expected %+v, got %+v", want, posts[0])
	}
}

func TestCreatePost_RoundTrip(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	inputs := []models.PostInput{
		{Title: "First Post", Content: "<p>one</p>", Slug: "custom-slug", Categories: []int{}, Tags: []int{}, Status: "draft"},
		{Title: "Release Notes 1.2", Content: "<p>two</p>", Categories: []int{3}, Tags: []int{8, 9}, Status: "publish"},
		{Title: "pending", Content: "", Categories: []int{}, Tags: []int{}, Status: "pending"},
	}

	for _, input := range inputs {
		created, err := h.gateway.CreatePost(ctx, input)
		if err != nil {
			t.Fatalf("CreatePost(%q) failed: %v", input.Title, err)
		}
		if created.ID <= 0 {
			t.Errorf("Expected a positive id, got %d", created.ID)
		}

		fetched, err := h.gateway.GetPostByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetPostByID(%d) failed: %v", created.ID, err)
		}

		wantSlug := input.Slug
		if wantSlug == "" {
			wantSlug = models.Slugify(input.Title)
		}
		if fetched.Title != input.Title || fetched.Content != input.Content || fetched.Slug != wantSlug {
			t.Errorf("Round trip mismatch: input %+v, fetched %+v", input, fetched)
		}
	}
}

func TestCreatePost_ForwardsStatusAndDerivesSlug(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.gateway.CreatePost(context.Background(), models.PostInput{
		Title:      "Hello Big World",
		Content:    "<p>hi</p>",
		Categories: []int{1},
		Tags:       nil,
		Status:     "pending",
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	sent := h.postRepo.Created[0]
	if sent.Slug != "hello-big-world" {
		t.Errorf("Expected derived slug hello-big-world, got %q", sent.Slug)
	}
	if sent.Status != "pending" {
		t.Errorf("Expected status pending to be forwarded, got %q", sent.Status)
	}
	if sent.Tags == nil {
		t.Error("Tags should be sent as an empty list, not null")
	}
}

func TestCreateCategory_Defaults(t *testing.T) {
	h := newTestHarness(t)

	created, err := h.gateway.CreateCategory(context.Background(), models.CategoryInput{Name: "News"})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	if created.Name != "News" {
		t.Errorf("Expected name News, got %q", created.Name)
	}
	if created.Slug != "news" {
		t.Errorf("Expected slug news, got %q", created.Slug)
	}
	if created.Parent != 0 {
		t.Errorf("Expected parent 0, got %d", created.Parent)
	}
	if created.Description != "" {
		t.Errorf("Expected empty description, got %q", created.Description)
	}
}

func TestCreateCategory_ForwardsParent(t *testing.T) {
	h := newTestHarness(t)

	created, err := h.gateway.CreateCategory(context.Background(), models.CategoryInput{
		Name:   "Go Releases",
		Slug:   "go",
		Parent: 12,
	})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	sent := h.categoryRepo.Created[0]
	if sent.Parent != 12 {
		t.Errorf("Expected parent 12 in payload, got %d", sent.Parent)
	}
	if sent.Slug != "go" {
		t.Errorf("Explicit slug should be kept, got %q", sent.Slug)
	}
	if created.Parent != 12 {
		t.Errorf("Expected created parent 12, got %d", created.Parent)
	}
}

func TestGatewayErrors(t *testing.T) {
	h := newTestHarness(t)
	h.categoryRepo.ListError = &wordpress.APIError{Status: 401, Code: "rest_not_logged_in", Message: "You are not currently logged in."}
	h.postRepo.CreateError = errors.New("dial tcp: connection refused")

	_, err := h.gateway.FetchCategories(context.Background())
	var gwErr *service.GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("Expected GatewayError, got %T: %v", err, err)
	}
	if gwErr.Status != 401 || gwErr.Code != "rest_not_logged_in" {
		t.Errorf("Expected upstream status and code, got %+v", gwErr)
	}
	if gwErr.Message != "You are not currently logged in." {
		t.Errorf("Expected upstream message, got %q", gwErr.Message)
	}

	_, err = h.gateway.CreatePost(context.Background(), models.PostInput{Title: "x"})
	if !errors.As(err, &gwErr) {
		t.Fatalf("Expected GatewayError, got %T: %v", err, err)
	}
	if gwErr.Op != "create post" || gwErr.Status != 0 {
		t.Errorf("Unexpected gateway error: %+v", gwErr)
	}
	if !strings.Contains(gwErr.Error(), "connection refused") {
		t.Errorf("Expected cause in message, got %q", gwErr.Error())
	}
}

func TestUnavailableGateway(t *testing.T) {
	cause := &config.ConfigurationError{Vars: []string{"WP_PASSWORD"}}
	gw := service.NewUnavailableGateway(cause)

	_, err := gw.FetchMedia(context.Background())

	var gwErr *service.GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("Expected GatewayError, got %v", err)
	}
	var cfgErr *config.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Expected ConfigurationError in chain, got %v", err)
	}
	if gwErr.Op != "fetch media" {
		t.Errorf("Expected op fetch media, got %q", gwErr.Op)
	}
}
