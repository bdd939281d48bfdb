package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-lobby/internal/handler/dto"
	"github.com/yourusername/trivia-lobby/internal/service"
)

// QuestionHandler обрабатывает запросы к банку вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions возвращает вопросы с пагинацией (без правильных ответов)
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	questions, err := h.questionService.ListQuestions(page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}

	items := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		items = append(items, dto.NewQuestionResponse(&questions[i]))
	}
	c.JSON(http.StatusOK, items)
}

// ExportQuestions выгружает весь банк вопросов в Excel.
// Правильные ответы включаются: выгрузка предназначена для редакторов банка.
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	questions, err := h.questionService.ExportQuestions()
	if err != nil {
		handleError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Вопросы"
	f.SetSheetName("Sheet1", sheetName)

	// StreamWriter для эффективной выгрузки большого банка
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuestionHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"ID", "Текст", "Правильный ответ", "Неправильные ответы", "Тема", "Сложность", "Качество", "Агент"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков: %v", err)
	}

	for i, q := range questions {
		rowNum := i + 2
		cell := fmt.Sprintf("A%d", rowNum)

		origin := ""
		if q.OriginAgent != nil {
			origin = *q.OriginAgent
		}

		row := []interface{}{
			q.ID,
			q.Text,
			q.CorrectAnswer,
			strings.Join(q.WrongAnswers, "; "),
			q.Topic,
			q.Difficulty,
			q.QualityScore,
			origin,
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuestionHandler] Ошибка завершения StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		return
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка отправки файла: %v", err)
	}
}
