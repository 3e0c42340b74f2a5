package backend

import (
	"context"
	"net/http"

	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse respuesta de POST /auth/login del backend.
type loginResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// Login autentica al operador contra el backend y devuelve su token Bearer
// junto con su identidad.
func (c *Client) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	var resp loginResponse
	body := loginRequest{Email: email, Password: password}
	if err := c.call(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, &resp.User, nil
}
