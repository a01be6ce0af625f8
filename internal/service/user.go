package service

import (
	"StarWarsBlog/internal/model"
	"StarWarsBlog/internal/repo"
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserService инкапсулирует регистрацию и аутентификацию пользователей.
// Пароли хранятся только как bcrypt-хеши.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// RegisterRequest — вход регистрации.
type RegisterRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register создаёт пользователя. Дубликат email — ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    string(hash),
		MemberSince: time.Now().UTC(),
	}
	return s.repo.CreateUser(ctx, user)
}

// Login проверяет пару email/пароль. Несуществующий email и неверный
// пароль наружу неразличимы.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// List возвращает всех пользователей.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}
