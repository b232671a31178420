package services

import (
	"time"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthService is the session store for the single admin operator:
// Login creates a session, VerifyToken validates one, Logout revokes one.
// Every token is a signed JWT backed by a server-side session row, so
// revocation works before the 24h expiry.
type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyToken(db *gorm.DB, tokenStr string) (*dto.VerifyResponse, error)
	Logout(db *gorm.DB, tokenStr string) error
}

type authService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	issuer      *auth.TokenIssuer
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	issuer *auth.TokenIssuer,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		issuer:      issuer,
	}
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	username := req.Username
	if username == "" {
		username = "admin"
	}

	user, err := s.userRepo.FindByUsername(db, username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.ErrDatabase(err, "auth")
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, tokenID, expiresAt, err := s.issuer.Mint(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	session := &models.Session{
		UserID:    user.ID,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}
	if err := s.sessionRepo.Create(db, session); err != nil {
		return nil, apperrors.ErrDatabase(err, "auth")
	}

	// Housekeeping; a failure here must not block the login.
	_ = s.sessionRepo.DeleteExpired(db)

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) VerifyToken(db *gorm.DB, tokenStr string) (*dto.VerifyResponse, error) {
	claims, err := s.issuer.Parse(tokenStr)
	if err != nil {
		if apperrors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	session, err := s.sessionRepo.FindByTokenID(db, claims.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.ErrDatabase(err, "auth")
	}

	now := time.Now()
	if session.RevokedAt != nil {
		return nil, apperrors.ErrSessionRevoked
	}
	if !session.Active(now) {
		return nil, apperrors.ErrTokenExpired
	}

	return &dto.VerifyResponse{
		Authenticated: true,
		ExpiresAt:     session.ExpiresAt,
	}, nil
}

func (s *authService) Logout(db *gorm.DB, tokenStr string) error {
	claims, err := s.issuer.Parse(tokenStr)
	if err != nil {
		// An expired or garbled token has nothing left to revoke.
		return nil
	}
	if err := s.sessionRepo.Revoke(db, claims.ID); err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return nil
		}
		return apperrors.ErrDatabase(err, "auth")
	}
	return nil
}
