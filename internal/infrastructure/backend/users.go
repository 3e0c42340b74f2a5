package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// GetUser consulta un usuario por id (se usa para la precondición de tienda cruzada).
func (c *Client) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	var user entity.User
	path := fmt.Sprintf("/users/%d", userID)
	if err := c.call(ctx, http.MethodGet, path, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
