package tools

import "github.com/wordpress-mcp-server/internal/models"

// Tool arguments as decoded from a call. Pointer fields distinguish an
// absent argument from its zero value.

type FetchPostsArgs struct {
	Page    *int `json:"page" validate:"omitempty,min=1"`
	PerPage *int `json:"perPage" validate:"omitempty,min=1,max=100"`
}

type CreatePostArgs struct {
	Title      *string `json:"title" validate:"required"`
	Content    *string `json:"content" validate:"required"`
	Categories []int   `json:"categories" validate:"omitempty,dive,gt=0"`
	Tags       []int   `json:"tags" validate:"omitempty,dive,gt=0"`
	Slug       *string `json:"slug"`
	Status     *string `json:"status" validate:"omitempty,oneof=publish draft pending"`
}

type CreateCategoryArgs struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description"`
	Slug        *string `json:"slug"`
	Parent      *int    `json:"parent" validate:"omitempty,gte=0"`
}

type IDArgs struct {
	ID *int `json:"id" validate:"required,min=1"`
}

// postQuery fills unset paging arguments
func (a FetchPostsArgs) postQuery() models.PostQuery {
	return models.PostQuery{
		Page:    valueOr(a.Page, models.DefaultPage),
		PerPage: valueOr(a.PerPage, models.DefaultPerPage),
	}
}

// postInput fills every optional field so the gateway never sees an unset one
func (a CreatePostArgs) postInput() models.PostInput {
	return models.PostInput{
		Title:      valueOr(a.Title, ""),
		Content:    valueOr(a.Content, ""),
		Slug:       valueOr(a.Slug, ""),
		Categories: orEmpty(a.Categories),
		Tags:       orEmpty(a.Tags),
		Status:     valueOr(a.Status, models.PostStatusDraft),
	}
}

func (a CreateCategoryArgs) categoryInput() models.CategoryInput {
	return models.CategoryInput{
		Name:        valueOr(a.Name, ""),
		Description: valueOr(a.Description, ""),
		Slug:        valueOr(a.Slug, ""),
		Parent:      valueOr(a.Parent, 0),
	}
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func orEmpty(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}
