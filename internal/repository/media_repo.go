package repository

import (
	"context"
	"strconv"

	"github.com/wordpress-mcp-server/internal/wordpress"
)

// mediaRepo is the concrete implementation of MediaRepository
type mediaRepo struct {
	wp Requester
}

// NewMediaRepo creates a new media repository
func NewMediaRepo(wp Requester) MediaRepository {
	return &mediaRepo{wp: wp}
}

func (r *mediaRepo) List(ctx context.Context) ([]wordpress.Media, error) {
	var items []wordpress.Media
	if err := r.wp.Get(ctx, "media", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mediaRepo) GetByID(ctx context.Context, id int) (*wordpress.Media, error) {
	var item wordpress.Media
	if err := r.wp.Get(ctx, "media/"+strconv.Itoa(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// pageRepo is the concrete implementation of PageRepository
type pageRepo struct {
	wp Requester
}

// NewPageRepo creates a new page repository
func NewPageRepo(wp Requester) PageRepository {
	return &pageRepo{wp: wp}
}

func (r *pageRepo) GetByID(ctx context.Context, id int) (*wordpress.Page, error) {
	var page wordpress.Page
	if err := r.wp.Get(ctx, "pages/"+strconv.Itoa(id), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
