package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/wordpress-mcp-server/internal/models"
	"github.com/wordpress-mcp-server/internal/repository"
	"github.com/wordpress-mcp-server/internal/service"
	"github.com/wordpress-mcp-server/internal/wordpress"
)

// fakeWordPress serves canned wp/v2 responses and counts requests per path
type fakeWordPress struct {
	*httptest.Server
	hits      map[string]*int32
	lastQuery atomic.Value
}

func newFakeWordPress(t *testing.T, routes map[string]string) *fakeWordPress {
	t.Helper()

	f := &fakeWordPress{hits: make(map[string]*int32)}
	for path := range routes {
		f.hits[path] = new(int32)
	}

	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"code":"rest_not_logged_in","message":"You are not currently logged in.","data":{"status":401}}`)
			return
		}

		path := strings.TrimPrefix(r.URL.Path, "/wp-json/wp/v2/")
		body, ok := routes[path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"code":"rest_no_route","message":"No route was found matching the URL and request method.","data":{"status":404}}`)
			return
		}
		atomic.AddInt32(f.hits[path], 1)
		f.lastQuery.Store(r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	t.Cleanup(f.Close)

	return f
}

func newLiveGateway(t *testing.T, f *fakeWordPress) service.ContentGateway {
	t.Helper()

	client, err := wordpress.NewClient(f.URL, "editor", "app-password")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return service.NewContentGateway(repository.New(client), zerolog.Nop())
}

func TestFetchCategories_DropsMeta(t *testing.T) {
	f := newFakeWordPress(t, map[string]string{
		"categories": `[{"id":1,"count":4,"description":"","link":"https://blog.example.com/category/uncategorized/","name":"Uncategorized","slug":"uncategorized","taxonomy":"category","parent":0,"meta":[],"_links":{"self":[{"href":"x"}]}}]`,
	})
	gw := newLiveGateway(t, f)

	categories, err := gw.FetchCategories(context.Background())
	if err != nil {
		t.Fatalf("FetchCategories failed: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("Expected 1 category, got %d", len(categories))
	}

	data, _ := json.Marshal(categories[0])
	var fields map[string]interface{}
	json.Unmarshal(data, &fields)

	for _, dropped := range []string{"meta", "taxonomy", "_links"} {
		if _, ok := fields[dropped]; ok {
			t.Errorf("Field %q should be dropped, got %s", dropped, data)
		}
	}
	for _, kept := range []string{"id", "name", "slug", "count", "parent", "description", "link"} {
		if _, ok := fields[kept]; !ok {
			t.Errorf("Field %q should be kept, got %s", kept, data)
		}
	}
}

func TestFetchPosts_SingleRemoteCall(t *testing.T) {
	f := newFakeWordPress(t, map[string]string{
		"posts": `[{"id":5,"date":"2024-02-02T09:00:00","slug":"a","status":"publish","title":{"rendered":"A"},"content":{"rendered":"<p>a</p>","protected":false},"excerpt":{"rendered":"<p>a</p>","protected":false},"categories":[1],"tags":[]}]`,
	})
	gw := newLiveGateway(t, f)

	posts, err := gw.FetchPosts(context.Background(), models.PostQuery{Page: 2, PerPage: 5})
	if err != nil {
		t.Fatalf("FetchPosts failed: %v", err)
	}
	if n := atomic.LoadInt32(f.hits["posts"]); n != 1 {
		t.Errorf("Expected exactly 1 remote list call, got %d", n)
	}
	if q := f.lastQuery.Load().(string); q != "page=2&per_page=5" {
		t.Errorf("Expected page=2&per_page=5 without filters, got %q", q)
	}
	if posts[0].Title != "A" || posts[0].Categories[0] != 1 {
		t.Errorf("Unexpected post: %+v", posts[0])
	}
}

func TestFetchMediaAndComments_Projection(t *testing.T) {
	f := newFakeWordPress(t, map[string]string{
		"media":    `[{"id":3,"date":"2024-01-05T10:00:00","slug":"logo","title":{"rendered":"Logo"},"mime_type":"image/png","media_type":"image","source_url":"https://blog.example.com/wp-content/uploads/logo.png","media_details":{"width":64,"height":64}}]`,
		"comments": `[{"id":8,"post":5,"parent":0,"author_name":"Ana","author_url":"","date":"2024-02-03T11:00:00","content":{"rendered":"<p>Nice post</p>\n"},"link":"https://blog.example.com/a/#comment-8","status":"approved","type":"comment","meta":[]}]`,
	})
	gw := newLiveGateway(t, f)
	ctx := context.Background()

	media, err := gw.FetchMedia(ctx)
	if err != nil {
		t.Fatalf("FetchMedia failed: %v", err)
	}
	if media[0].URL != "https://blog.example.com/wp-content/uploads/logo.png" || media[0].MimeType != "image/png" || media[0].Title != "Logo" {
		t.Errorf("Unexpected media projection: %+v", media[0])
	}

	comments, err := gw.FetchComments(ctx)
	if err != nil {
		t.Fatalf("FetchComments failed: %v", err)
	}
	if comments[0].Content != "<p>Nice post</p>\n" {
		t.Errorf("Expected unwrapped comment content, got %q", comments[0].Content)
	}
	if comments[0].Post != 5 || comments[0].Status != "approved" {
		t.Errorf("Unexpected comment projection: %+v", comments[0])
	}
}

func TestGateway_RemoteFailure(t *testing.T) {
	f := newFakeWordPress(t, map[string]string{})
	gw := newLiveGateway(t, f)

	_, err := gw.FetchTags(context.Background())

	var gwErr *service.GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("Expected GatewayError, got %v", err)
	}
	if gwErr.Status != http.StatusNotFound || gwErr.Code != "rest_no_route" {
		t.Errorf("Unexpected gateway error: %+v", gwErr)
	}
}

func TestFetchUsersTagsAndLookups_Projection(t *testing.T) {
	f := newFakeWordPress(t, map[string]string{
		"users":   `[{"id":2,"name":"Ana","url":"","description":"Editor","link":"https://blog.example.com/author/ana/","slug":"ana","avatar_urls":{"24":"x"},"meta":[]}]`,
		"tags":    `[{"id":11,"count":2,"description":"","link":"https://blog.example.com/tag/go/","name":"go","slug":"go","taxonomy":"post_tag","meta":[]}]`,
		"pages/4": `{"id":4,"date":"2024-01-01T00:00:00","slug":"about","status":"publish","parent":0,"link":"https://blog.example.com/about/","title":{"rendered":"About"},"content":{"rendered":"<p>us</p>","protected":false},"excerpt":{"rendered":"","protected":false}}`,
	})
	gw := newLiveGateway(t, f)
	ctx := context.Background()

	users, err := gw.FetchUsers(ctx)
	if err != nil {
		t.Fatalf("FetchUsers failed: %v", err)
	}
	if users[0].Name != "Ana" || users[0].Slug != "ana" || users[0].Description != "Editor" {
		t.Errorf("Unexpected user projection: %+v", users[0])
	}

	tags, err := gw.FetchTags(ctx)
	if err != nil {
		t.Fatalf("FetchTags failed: %v", err)
	}
	if tags[0].ID != 11 || tags[0].Count != 2 {
		t.Errorf("Unexpected tag projection: %+v", tags[0])
	}

	page, err := gw.GetPage(ctx, 4)
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if page.Title != "About" || page.Content != "<p>us</p>" || page.Link != "https://blog.example.com/about/" {
		t.Errorf("Unexpected page projection: %+v", page)
	}
}
