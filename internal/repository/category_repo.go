package repository

import (
	"context"

	"github.com/wordpress-mcp-server/internal/wordpress"
)

// categoryRepo is the concrete implementation of CategoryRepository
type categoryRepo struct {
	wp Requester
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(wp Requester) CategoryRepository {
	return &categoryRepo{wp: wp}
}

func (r *categoryRepo) List(ctx context.Context) ([]wordpress.Term, error) {
	var terms []wordpress.Term
	if err := r.wp.Get(ctx, "categories", nil, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

func (r *categoryRepo) Create(ctx context.Context, payload *wordpress.CategoryPayload) (*wordpress.Term, error) {
	var term wordpress.Term
	if err := r.wp.Post(ctx, "categories", payload, &term); err != nil {
		return nil, err
	}
	return &term, nil
}

// tagRepo is the concrete implementation of TagRepository
type tagRepo struct {
	wp Requester
}

// NewTagRepo creates a new tag repository
func NewTagRepo(wp Requester) TagRepository {
	return &tagRepo{wp: wp}
}

func (r *tagRepo) List(ctx context.Context) ([]wordpress.Term, error) {
	var terms []wordpress.Term
	if err := r.wp.Get(ctx, "tags", nil, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}
