package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/pkg/auth"
)

// emailSendTimeout ограничивает фоновую отправку приветственного письма
const emailSendTimeout = 10 * time.Second

// AuthService предоставляет регистрацию и вход пользователей
type AuthService struct {
	userRepo     repository.UserRepository
	jwtService   *auth.JWTService
	emailService EmailService
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(
	userRepo repository.UserRepository,
	jwtService *auth.JWTService,
	emailService EmailService,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		emailService: emailService,
	}
}

// RegisterUser регистрирует нового пользователя.
// Занятые email или username возвращаются как apperrors.ErrConflict.
// Приветственное письмо отправляется в фоне и не влияет на результат.
func (s *AuthService) RegisterUser(username, email, password string) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", apperrors.ErrConflict)
	}

	existing, err = s.userRepo.GetByUsername(username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username already taken: %w", apperrors.ErrConflict)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: password, // хешируется хуком BeforeSave
	}
	if err := s.userRepo.Create(user); err != nil {
		log.Printf("[AuthService] Ошибка создания пользователя email=%s: %v", email, err)
		return nil, err
	}

	log.Printf("[AuthService] Зарегистрирован пользователь ID=%d username=%s", user.ID, user.Username)

	go func(toEmail, toUsername string) {
		ctx, cancel := context.WithTimeout(context.Background(), emailSendTimeout)
		defer cancel()
		if err := s.emailService.SendWelcome(ctx, toEmail, toUsername); err != nil {
			log.Printf("[AuthService] Ошибка отправки приветственного письма email=%s: %v", toEmail, err)
		}
	}(user.Email, user.Username)

	return user, nil
}

// LoginUser проверяет учётные данные и возвращает подписанный access-токен.
// И отсутствующий пользователь, и неверный пароль дают одну и ту же ошибку,
// чтобы не раскрывать существование email.
func (s *AuthService) LoginUser(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	if !user.CheckPassword(password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// GetUserByID возвращает пользователя для эндпоинта профиля
func (s *AuthService) GetUserByID(userID uint) (*entity.User, error) {
	return s.userRepo.GetByID(userID)
}
