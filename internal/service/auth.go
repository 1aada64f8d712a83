package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/citypulse/waterlog-api/internal/apperror"
	"github.com/citypulse/waterlog-api/internal/config"
	"github.com/citypulse/waterlog-api/internal/models"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// RegisterInput carries a new account registration.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

// TokenPair is the credential set handed to a client after login or
// refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Claims are the verified contents of an access token.
type Claims struct {
	UserID int64
	Email  string
	Role   models.Role
}

// AuthService implements registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	CurrentUser(ctx context.Context, userID int64) (*models.User, error)
	VerifyAccessToken(token string) (*Claims, error)
}

type authService struct {
	users  UserRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewAuthService(users UserRepository, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		users:  users,
		logger: logger,
		cfg:    cfg,
	}
}

// Register creates a citizen account with a bcrypt-hashed password.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
	})

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperror.Validation("email", "must be a valid email address")
	}
	if len(input.Password) < 8 {
		return nil, apperror.Validation("password", "must be at least 8 characters")
	}
	if len(strings.TrimSpace(input.FullName)) < 2 {
		return nil, apperror.Validation("full_name", "must be at least 2 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Email:          email,
		HashedPassword: string(hashed),
		FullName:       strings.TrimSpace(input.FullName),
		Phone:          strings.TrimSpace(input.Phone),
		Role:           models.RoleCitizen,
	}
	if err := s.users.Create(ctx, user); err != nil {
		log.WithError(err).Warn("Failed to create user")
		return nil, fmt.Errorf("service: could not register user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
// Missing users and bad passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
	})

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		log.WithError(err).Warn("Login for unknown email")
		return nil, fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)
	}
	if !user.IsActive {
		log.WithField("user_id", user.ID).Warn("Login for deactivated account")
		return nil, fmt.Errorf("account deactivated: %w", apperror.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		log.WithField("user_id", user.ID).Warn("Login with wrong password")
		return nil, fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		log.WithError(err).Error("Failed to sign tokens")
		return nil, fmt.Errorf("service: could not issue tokens: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.parseToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token subject: %w", apperror.ErrUnauthorized)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account deactivated: %w", apperror.ErrUnauthorized)
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, fmt.Errorf("service: could not issue tokens: %w", err)
	}
	return pair, nil
}

// CurrentUser loads the account behind a verified access token.
func (s *authService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load user: %w", err)
	}
	return user, nil
}

// VerifyAccessToken checks signature, expiry and token type.
func (s *authService) VerifyAccessToken(token string) (*Claims, error) {
	return s.parseToken(token, tokenTypeAccess)
}

func (s *authService) issueTokens(user *models.User) (*TokenPair, error) {
	expiresAt := time.Now().Add(s.cfg.AccessTokenTTL)

	access, err := s.signToken(user, tokenTypeAccess, expiresAt)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, tokenTypeRefresh, time.Now().Add(s.cfg.RefreshTokenTTL))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *authService) signToken(user *models.User, tokenType string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"role":  string(user.Role),
		"typ":   tokenType,
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (s *authService) parseToken(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("token invalid")
		}
		return nil, fmt.Errorf("%v: %w", err, apperror.ErrUnauthorized)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type: %w", apperror.ErrUnauthorized)
	}

	typ, _ := mapClaims["typ"].(string)
	if typ != wantType {
		return nil, fmt.Errorf("wrong token type %q: %w", typ, apperror.ErrUnauthorized)
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad token subject: %w", apperror.ErrUnauthorized)
	}

	email, _ := mapClaims["email"].(string)
	roleStr, _ := mapClaims["role"].(string)
	role := models.Role(roleStr)
	if !role.Valid() {
		return nil, fmt.Errorf("bad token role: %w", apperror.ErrUnauthorized)
	}

	return &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
	}, nil
}
