package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// ProfileService управляет учётными данными и профилем пользователя
type ProfileService struct {
	userRepo repository.UserRepository
}

// NewProfileService создает новый сервис профиля
func NewProfileService(userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// ChangePassword меняет пароль пользователя.
// Возвращает apperrors.ErrNotFound, если пользователь не существует, и
// apperrors.ErrInvalidCredentials, если текущий пароль не подошёл. При
// неверном текущем пароле хранимый хеш не меняется.
func (s *ProfileService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if !user.CheckPassword(currentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdatePassword(userID, newPassword); err != nil {
		log.Printf("[ProfileService] Ошибка обновления пароля для пользователя ID=%d: %v", userID, err)
		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Printf("[ProfileService] Пароль пользователя ID=%d обновлён", userID)
	return nil
}

// UpdateProfile обновляет username и/или email пользователя.
// nil означает "поле не передано", оно остаётся прежним. Каждое переданное
// поле, отличающееся от текущего, проверяется на уникальность среди ДРУГИХ
// пользователей (точное сравнение с учётом регистра); при занятости
// возвращается apperrors.ErrConflict и ни одно поле не применяется.
//
// Проверка и запись не атомарны: конкурентная регистрация между ними может
// занять то же значение. Запись в этом случае упадёт на уникальном индексе,
// и репозиторий вернёт ErrConflict.
func (s *ProfileService) UpdateProfile(userID uint, username, email *string) (*entity.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if username != nil && *username != user.Username {
		existing, err := s.userRepo.GetByUsername(*username)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if existing != nil && existing.ID != userID {
			return nil, fmt.Errorf("username already taken: %w", apperrors.ErrConflict)
		}
	}

	if email != nil && *email != user.Email {
		existing, err := s.userRepo.GetByEmail(*email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil && existing.ID != userID {
			return nil, fmt.Errorf("email already taken: %w", apperrors.ErrConflict)
		}
	}

	// Оба поля применяются только после того, как все проверки прошли
	if username != nil {
		user.Username = *username
	}
	if email != nil {
		user.Email = *email
	}

	if err := s.userRepo.Update(user); err != nil {
		log.Printf("[ProfileService] Ошибка обновления профиля пользователя ID=%d: %v", userID, err)
		return nil, err
	}

	return user, nil
}
