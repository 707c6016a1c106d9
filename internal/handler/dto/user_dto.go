package dto

import (
	"time"

	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// RegisterRequest представляет запрос на регистрацию
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse — ответ на успешный вход
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewTokenResponse создает ответ с access-токеном
func NewTokenResponse(token string) *TokenResponse {
	return &TokenResponse{AccessToken: token, TokenType: "bearer"}
}

// ChangePasswordRequest представляет запрос на смену пароля
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}

// UpdateProfileRequest представляет запрос на обновление профиля.
// Поля опциональны: nil означает "не менять".
type UpdateProfileRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// UserResponse — профиль пользователя в ответах API
type UserResponse struct {
	UserID   uint      `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

// NewUserResponse создает ответ с профилем пользователя
func NewUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		JoinedAt: user.CreatedAt,
	}
}

// LeaderboardEntry — одна строка лидерборда
type LeaderboardEntry struct {
	Rank         int    `json:"rank"`
	Username     string `json:"username"`
	TotalScore   int64  `json:"total_score"`
	QuizzesTaken int64  `json:"quizzes_taken"`
}

// LeaderboardResponse — страница лидерборда
type LeaderboardResponse struct {
	Entries  []LeaderboardEntry `json:"entries"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// NewLeaderboardResponse создает страницу лидерборда с вычисленными рангами
func NewLeaderboardResponse(users []entity.User, total int64, page, pageSize int) *LeaderboardResponse {
	entries := make([]LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = LeaderboardEntry{
			Rank:         (page-1)*pageSize + i + 1,
			Username:     u.Username,
			TotalScore:   u.TotalScore,
			QuizzesTaken: u.QuizzesTaken,
		}
	}
	return &LeaderboardResponse{
		Entries:  entries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
