package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/quiz-api/internal/handler/dto"
	"github.com/yourusername/quiz-api/internal/service"
)

// UserHandler обрабатывает запросы профиля, статистики и истории пользователя
type UserHandler struct {
	authService    *service.AuthService
	profileService *service.ProfileService
	statsService   *service.StatsService
	quizService    *service.QuizService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(
	authService *service.AuthService,
	profileService *service.ProfileService,
	statsService *service.StatsService,
	quizService *service.QuizService,
) *UserHandler {
	return &UserHandler{
		authService:    authService,
		profileService: profileService,
		statsService:   statsService,
		quizService:    quizService,
	}
}

// Me возвращает профиль текущего пользователя
// GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ChangePassword меняет пароль текущего пользователя
// POST /api/users/me/change-password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.profileService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// UpdateProfile обновляет username и/или email текущего пользователя
// PUT /api/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profileService.UpdateProfile(userID, req.Username, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    dto.NewUserResponse(user),
	})
}

// BasicStats возвращает базовую статистику текущего пользователя
// GET /api/users/me/stats
func (h *UserHandler) BasicStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.statsService.BasicStats(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Пользователь без результатов — валидное состояние, не 404
	if stats == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No quizzes taken yet"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ComprehensiveStats возвращает развёрнутый отчёт текущего пользователя
// GET /api/users/me/stats/comprehensive
func (h *UserHandler) ComprehensiveStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.statsService.ComprehensiveStats(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// History возвращает пагинированную историю текущего пользователя
// GET /api/users/me/history
func (h *UserHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, pageSize := paginationParams(c)

	items, total, err := h.quizService.GetUserHistory(userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoryResponse(items, total, page, pageSize))
}

// ExportHistory экспортирует историю текущего пользователя в CSV или Excel
// GET /api/users/me/history/export?format=csv|xlsx
func (h *UserHandler) ExportHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	format := c.DefaultQuery("format", "csv")

	items, err := h.quizService.GetFullHistory(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("quiz_history_%d_%s", userID, time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, items, filename)
	default:
		h.exportCSV(c, items, filename)
	}
}

// exportCSV экспортирует историю в CSV с правильным экранированием спецсимволов
func (h *UserHandler) exportCSV(c *gin.Context, items []service.HistoryItem, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Тема", "Сложность", "Очки", "Всего вопросов", "Дата"})

	for _, item := range items {
		writer.Write([]string{
			sanitizeForExcel(item.Topic),
			item.Difficulty,
			strconv.Itoa(item.Score),
			strconv.Itoa(item.TotalQuestions),
			item.CreatedAt.Format(time.RFC3339),
		})
	}
}

// exportXLSX экспортирует историю в Excel с использованием StreamWriter
func (h *UserHandler) exportXLSX(c *gin.Context, items []service.HistoryItem, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "История"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[UserHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"Тема", "Сложность", "Очки", "Всего вопросов", "Дата"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[UserHandler] Ошибка записи заголовков: %v", err)
	}

	for i, item := range items {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		row := []interface{}{
			sanitizeForExcel(item.Topic),
			item.Difficulty,
			item.Score,
			item.TotalQuestions,
			item.CreatedAt.Format(time.RFC3339),
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[UserHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[UserHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[UserHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}

// paginationParams читает page и page_size из query-параметров
func paginationParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
