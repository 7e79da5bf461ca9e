package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	autherrors "go-salary/internal/auth/errors"
	"go-salary/internal/domain"
	"go-salary/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
	GetMe(ctx context.Context, caller domain.Identity) (AuthResponse, error)
	EnsureAdmin(ctx context.Context, name, email, password string) error
}

type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type service struct {
	repo   Repository
	tokens TokenStore
	cfg    TokenConfig
	logger *zap.Logger
}

func NewService(repo Repository, tokens TokenStore, cfg TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &service{repo: repo, tokens: tokens, cfg: cfg, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	// 1. Ambil user
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("load user for login failed", zap.Error(err))
			return LoginResponse{}, err
		}
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	// 2. Akun hasil submit mandiri tidak punya password
	if !user.HasPassword() {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	// 3. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	role := domain.NormalizeRole(user.Role)
	token, expiresAt, err := s.generateToken(user.ID, role)
	if err != nil {
		log.Error("sign access token failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	log.Info("user logged in", zap.Uint("user_id", user.ID), zap.String("role", role))
	return LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User: AuthResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  role,
		},
	}, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return err
	}

	if err := s.tokens.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("revoke token failed", zap.Error(err))
		return err
	}
	return nil
}

// Authenticate validates token and loads the caller from storage. The role in
// the token is ignored so that privilege changes take effect immediately.
func (s *service) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return domain.Identity{}, err
	}

	revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("check token revocation failed", zap.Error(err))
		return domain.Identity{}, err
	}
	if revoked {
		return domain.Identity{}, autherrors.ErrTokenRevoked
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return domain.Identity{}, autherrors.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, uint(userID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Akun sudah dihapus
			return domain.Identity{}, autherrors.ErrInvalidToken
		}
		return domain.Identity{}, err
	}

	return domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   domain.NormalizeRole(user.Role),
	}, nil
}

func (s *service) GetMe(ctx context.Context, caller domain.Identity) (AuthResponse, error) {
	user, err := s.repo.GetByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrUserNotFound
		}
		return AuthResponse{}, err
	}

	return AuthResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  domain.NormalizeRole(user.Role),
	}, nil
}

// EnsureAdmin creates the administrator account, or promotes the existing
// record with that email and resets its password.
func (s *service) EnsureAdmin(ctx context.Context, name, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hash := string(hashed)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if user == nil {
		user = &User{Name: name, Email: email, Password: &hash, Role: domain.RoleAdmin}
		if err := s.repo.Create(ctx, user); err != nil {
			return err
		}
		s.logger.Info("admin account created", zap.Uint("user_id", user.ID), zap.String("email", email))
		return nil
	}

	user.Password = &hash
	user.Role = domain.RoleAdmin
	if user.Name == "" {
		user.Name = name
	}
	if err := s.repo.UpdateCredentials(ctx, user); err != nil {
		return err
	}
	s.logger.Info("admin account ensured", zap.Uint("user_id", user.ID), zap.String("email", email))
	return nil
}

func (s *service) generateToken(userID uint, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.TTL)

	claims := accessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *service) parseToken(tokenString string) (*accessClaims, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}
	if !token.Valid || claims.ID == "" {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}
