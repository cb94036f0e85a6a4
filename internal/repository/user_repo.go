package repository

import (
	"context"

	"github.com/wordpress-mcp-server/internal/wordpress"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	wp Requester
}

// NewUserRepo creates a new user repository
func NewUserRepo(wp Requester) UserRepository {
	return &userRepo{wp: wp}
}

// List fetches the first page of users visible to the credentials
func (r *userRepo) List(ctx context.Context) ([]wordpress.User, error) {
	var users []wordpress.User
	if err := r.wp.Get(ctx, "users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
