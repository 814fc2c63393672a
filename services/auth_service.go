package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"go-booking/models"
	"go-booking/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs an access token for an account
type TokenIssuer func(id primitive.ObjectID, role models.Role) (string, error)

// AuthService registers and logs in users and admins
type AuthService struct {
	users          UserStore
	admins         AdminStore
	issueToken     TokenIssuer
	adminSecretKey string
}

// NewAuthService creates an AuthService. An empty adminSecretKey disables
// admin self-registration.
func NewAuthService(stores Stores, issueToken TokenIssuer, adminSecretKey string) *AuthService {
	return &AuthService{
		users:          stores.Users,
		admins:         stores.Admins,
		issueToken:     issueToken,
		adminSecretKey: adminSecretKey,
	}
}

// RegisterUser creates a user account and returns a token for it
func (s *AuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, newError(ErrConflict, "Email already exists")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{Name: strings.TrimSpace(req.Name), Email: email, Password: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, newError(ErrConflict, "Email already exists")
		}
		return nil, err
	}
	return s.respond(user.ID, user.Name, models.RoleUser)
}

// LoginUser checks a user's credentials and returns a fresh token
func (s *AuthService) LoginUser(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ErrUnauthorized, "Invalid credentials")
		}
		return nil, err
	}
	if !CheckPassword(user.Password, req.Password) {
		return nil, newError(ErrUnauthorized, "Invalid credentials")
	}
	return s.respond(user.ID, user.Name, models.RoleUser)
}

// RegisterAdmin creates an admin account when the caller knows the
// configured secret key
func (s *AuthService) RegisterAdmin(ctx context.Context, req models.AdminRegisterRequest) (*models.AuthResponse, error) {
	if s.adminSecretKey == "" || subtle.ConstantTimeCompare([]byte(req.SecretKey), []byte(s.adminSecretKey)) != 1 {
		return nil, newError(ErrForbidden, "Invalid Secret Key")
	}

	email := normalizeEmail(req.Email)
	if _, err := s.admins.FindByEmail(ctx, email); err == nil {
		return nil, newError(ErrConflict, "Admin email already exists")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{Email: email, Password: hash}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, newError(ErrConflict, "Admin email already exists")
		}
		return nil, err
	}
	return s.respond(admin.ID, "Admin", models.RoleAdmin)
}

// LoginAdmin checks an admin's credentials and returns a fresh token
func (s *AuthService) LoginAdmin(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	admin, err := s.admins.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ErrUnauthorized, "Invalid Admin credentials")
		}
		return nil, err
	}
	if !CheckPassword(admin.Password, req.Password) {
		return nil, newError(ErrUnauthorized, "Invalid Admin credentials")
	}
	return s.respond(admin.ID, "Admin", models.RoleAdmin)
}

func (s *AuthService) respond(id primitive.ObjectID, name string, role models.Role) (*models.AuthResponse, error) {
	token, err := s.issueToken(id, role)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		Token: token,
		User:  models.AccountInfo{ID: id, Name: name, Role: role},
	}, nil
}

// HashPassword returns the bcrypt hash of password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
