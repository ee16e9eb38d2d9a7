package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mm-voicenote-be/internal/dto"
	"mm-voicenote-be/internal/entity"
	"mm-voicenote-be/internal/pkg/apperrors"
	"mm-voicenote-be/internal/repository/contract"
	"mm-voicenote-be/internal/repository/memory"
)

// The fabricated demo identity. Login is a stub: there is no credential
// check, and callers that send no profile get exactly this user.
var demoUser = entity.User{
	Id:     "user_123",
	Name:   "Zaw Zaw",
	Email:  "zawzaw@example.com",
	Avatar: "https://picsum.photos/seed/zaw/200",
}

type ISessionService interface {
	// Login moves the session machine to Authenticated and persists the
	// current-user record so it survives a restart.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout moves back to Anonymous and removes the persisted record.
	Logout(ctx context.Context, token string) error
	// Restore reads the persisted record. A nil user means Anonymous; this
	// is the only transition not driven by a user action.
	Restore(ctx context.Context) (*entity.User, error)
	// Resolve maps an authenticated request (token + user id claim) to its
	// user, preferring the in-memory cache over storage.
	Resolve(ctx context.Context, token, userId string) (*entity.User, error)
}

type sessionService struct {
	sessionRepo contract.SessionRepository
	tokenCache  *memory.TokenCache
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewSessionService(
	sessionRepo contract.SessionRepository,
	tokenCache *memory.TokenCache,
	jwtSecret string,
	tokenTTL time.Duration,
) ISessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		tokenCache:  tokenCache,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
	}
}

func (s *sessionService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user := demoUser
	if req != nil && req.Name != "" && req.Email != "" {
		user = entity.User{
			Id:     uuid.NewString(),
			Name:   req.Name,
			Email:  req.Email,
			Avatar: req.Avatar,
		}
	}

	if err := s.sessionRepo.SetCurrentUser(ctx, &user); err != nil {
		return nil, err
	}

	token, err := s.signToken(user.Id)
	if err != nil {
		return nil, err
	}
	s.tokenCache.Save(token, &user)

	return &dto.LoginResponse{
		Token: token,
		User:  &user,
	}, nil
}

func (s *sessionService) Logout(ctx context.Context, token string) error {
	if token != "" {
		s.tokenCache.Delete(token)
	}
	return s.sessionRepo.ClearCurrentUser(ctx)
}

func (s *sessionService) Restore(ctx context.Context) (*entity.User, error) {
	return s.sessionRepo.GetCurrentUser(ctx)
}

func (s *sessionService) Resolve(ctx context.Context, token, userId string) (*entity.User, error) {
	if user, found := s.tokenCache.Get(token); found {
		return user, nil
	}

	// Cache miss (restart with a still-valid token): fall back to the
	// persisted record, but only for the same identity.
	user, err := s.sessionRepo.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Id != userId {
		return nil, apperrors.ErrUnauthorized
	}
	s.tokenCache.Save(token, user)
	return user, nil
}

func (s *sessionService) signToken(userId string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
