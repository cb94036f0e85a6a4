package service

import (
	"github.com/wordpress-mcp-server/internal/models"
	"github.com/wordpress-mcp-server/internal/wordpress"
)

// Projections from the native REST shapes. Rendered wrappers are unwrapped,
// fields outside the record shape (meta, media_details, ...) are dropped and
// nothing else is transformed.

func toPost(p wordpress.Post) models.Post {
	return models.Post{
		ID:         p.ID,
		Title:      p.Title.Rendered,
		Content:    p.Content.Rendered,
		Excerpt:    p.Excerpt.Rendered,
		Date:       p.Date,
		Status:     p.Status,
		Categories: ids(p.Categories),
		Tags:       ids(p.Tags),
		Slug:       p.Slug,
	}
}

func toCategory(t wordpress.Term) models.Category {
	return models.Category{
		ID:          t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		Count:       t.Count,
		Parent:      t.Parent,
		Description: t.Description,
		Link:        t.Link,
	}
}

func toTag(t wordpress.Term) models.Tag {
	return models.Tag{
		ID:          t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		Count:       t.Count,
		Description: t.Description,
		Link:        t.Link,
	}
}

func toMedia(m wordpress.Media) models.Media {
	return models.Media{
		ID:       m.ID,
		Title:    m.Title.Rendered,
		URL:      m.SourceURL,
		Date:     m.Date,
		MimeType: m.MimeType,
	}
}

func toUser(u wordpress.User) models.User {
	return models.User{
		ID:          u.ID,
		Name:        u.Name,
		Slug:        u.Slug,
		Description: u.Description,
		Link:        u.Link,
	}
}

func toComment(c wordpress.Comment) models.Comment {
	return models.Comment{
		ID:          c.ID,
		Post:        c.Post,
		Parent:      c.Parent,
		AuthorName:  c.AuthorName,
		AuthorEmail: c.AuthorEmail,
		AuthorURL:   c.AuthorURL,
		Date:        c.Date,
		Content:     c.Content.Rendered,
		Status:      c.Status,
		Type:        c.Type,
		Link:        c.Link,
	}
}

func toPage(p wordpress.Page) models.Page {
	return models.Page{
		ID:      p.ID,
		Title:   p.Title.Rendered,
		Content: p.Content.Rendered,
		Excerpt: p.Excerpt.Rendered,
		Date:    p.Date,
		Status:  p.Status,
		Slug:    p.Slug,
		Parent:  p.Parent,
		Link:    p.Link,
	}
}

// mapAll applies a projection to every item of a list response
func mapAll[T, R any](items []T, project func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, project(item))
	}
	return out
}

// ids never returns nil so records serialize as [] rather than null
func ids(in []int) []int {
	if in == nil {
		return []int{}
	}
	return in
}
