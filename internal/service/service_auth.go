package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/painel-produtividade/internal/config"
	"github.com/MKhiriev/painel-produtividade/internal/logger"
	"github.com/MKhiriev/painel-produtividade/internal/store"
	"github.com/MKhiriev/painel-produtividade/internal/utils"
	"github.com/MKhiriev/painel-produtividade/models"
)

type authService struct {
	users    store.UserRepository
	sessions store.SessionRepository
	auth     config.Auth
	logger   *logger.Logger
}

func NewAuthService(users store.UserRepository, sessions store.SessionRepository, auth config.Auth, logger *logger.Logger) AuthService {
	return &authService{users: users, sessions: sessions, auth: auth, logger: logger}
}

// Register creates the account with a bcrypt-hashed password. An omitted role
// defaults to member; the supreme role is never self-assignable here, only the
// startup bootstrap and an explicit admin call can grant it.
func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	role := req.UserType
	if role == "" {
		role = models.RoleMember
	}
	if !role.Valid() || role == models.RoleSupremeAdmin {
		return models.User{}, fmt.Errorf("%w: %s", ErrInvalidRole, req.UserType)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.users.CreateUser(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		UserType: role,
	})
	if err != nil {
		return models.User{}, err
	}

	log.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return models.User{}, err
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

func (s *authService) GetMe(ctx context.Context, userID int64) (models.User, error) {
	return s.users.FindUserByID(ctx, userID)
}

// UpdateProfile applies the non-empty fields of the request. A password
// change additionally requires the current password to verify against the
// stored hash.
func (s *authService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error) {
	fields := make(map[string]any)
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Avatar != "" {
		fields["avatar"] = req.Avatar
	}

	if req.NewPassword != "" {
		user, err := s.users.FindUserByID(ctx, userID)
		if err != nil {
			return models.User{}, err
		}
		if !utils.CheckPassword(user.Password, req.CurrentPassword) {
			return models.User{}, ErrWrongCurrentPassword
		}
		hash, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		fields["password"] = hash
	}

	if len(fields) == 0 {
		return models.User{}, ErrNoFieldsToUpdate
	}

	return s.users.UpdateProfile(ctx, userID, fields)
}

// CreateToken issues a signed token for the user and records it in the
// session audit table. The audit insert is best-effort; a failed insert is
// logged but never blocks the login.
func (s *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(s.auth.TokenIssuer, models.Identity{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		UserType: user.UserType,
	}, s.auth.TokenDuration, s.auth.TokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "CreateToken").Msg("error generating token")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if err := s.sessions.CreateSession(ctx, user.ID, token.SignedString); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("error recording session")
	}

	return token, nil
}

func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.auth.TokenSignKey, s.auth.TokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	identity := token.Claims.Identity()

	if s.auth.ReverifyRole {
		user, err := s.users.FindUserByID(ctx, identity.ID)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				return models.Identity{}, ErrTokenIsExpiredOrInvalid
			}
			return models.Identity{}, err
		}
		identity.Name = user.Name
		identity.Email = user.Email
		identity.UserType = user.UserType
	}

	return identity, nil
}
