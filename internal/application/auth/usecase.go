package auth

import (
	"context"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
	"github.com/DeiVid1337/BossFront-sub002/pkg/jwt"
)

// JWTConfig configuración para generación del token de sesión local.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// BackendAuthenticator contrato mínimo hacia el backend para login.
type BackendAuthenticator interface {
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
}

// AuthUseCase login del operador: las credenciales se reenvían al backend y el
// Bearer que este emite se envuelve, junto con la identidad, en un JWT local
// firmado. El gateway nunca guarda contraseñas ni tokens; viajan en el claim.
type AuthUseCase struct {
	backend BackendAuthenticator
	jwtCfg  JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(backend BackendAuthenticator, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{backend: backend, jwtCfg: jwtCfg}
}

// Login autentica contra el backend y devuelve el token de sesión local.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	backendToken, user, err := uc.backend.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if backendToken == "" || user == nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(
		uc.jwtCfg.Secret,
		user.ID, user.StoreID, user.Role, backendToken,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:      user.ID,
			StoreID: user.StoreID,
			Email:   user.Email,
			Name:    user.Name,
			Role:    user.Role,
		},
	}, nil
}
