package service

import (
	"fmt"
	"log"

	"github.com/yourusername/trivia-lobby/internal/domain/entity"
)

// defaultQuestions — стартовый банк вопросов, загружаемый при первом запуске
var defaultQuestions = []entity.Question{
	{
		Text:          "What is the capital of France?",
		CorrectAnswer: "Paris",
		WrongAnswers:  entity.StringArray{"London", "Berlin", "Madrid"},
		Topic:         "Geography",
		Difficulty:    "easy",
	},
	{
		Text:          "Which planet is known as the Red Planet?",
		CorrectAnswer: "Mars",
		WrongAnswers:  entity.StringArray{"Venus", "Jupiter", "Mercury"},
		Topic:         "Science",
		Difficulty:    "easy",
	},
	{
		Text:          "What is the largest ocean on Earth?",
		CorrectAnswer: "Pacific",
		WrongAnswers:  entity.StringArray{"Atlantic", "Indian", "Arctic"},
		Topic:         "Geography",
		Difficulty:    "easy",
	},
	{
		Text:          "Who painted the Mona Lisa?",
		CorrectAnswer: "Leonardo da Vinci",
		WrongAnswers:  entity.StringArray{"Michelangelo", "Raphael", "Donatello"},
		Topic:         "Art",
		Difficulty:    "easy",
	},
	{
		Text:          "In what year was the Go programming language first released?",
		CorrectAnswer: "2009",
		WrongAnswers:  entity.StringArray{"2005", "2012", "2015"},
		Topic:         "Technology",
		Difficulty:    "medium",
	},
	{
		Text:          "What is the chemical symbol for gold?",
		CorrectAnswer: "Au",
		WrongAnswers:  entity.StringArray{"Ag", "Gd", "Go"},
		Topic:         "Science",
		Difficulty:    "easy",
	},
	{
		Text:          "Which country hosted the 2016 Summer Olympics?",
		CorrectAnswer: "Brazil",
		WrongAnswers:  entity.StringArray{"China", "United Kingdom", "Japan"},
		Topic:         "Sports",
		Difficulty:    "easy",
	},
	{
		Text:          "What is the smallest prime number?",
		CorrectAnswer: "2",
		WrongAnswers:  entity.StringArray{"1", "3", "0"},
		Topic:         "Mathematics",
		Difficulty:    "easy",
	},
	{
		Text:          "Who wrote the novel \"1984\"?",
		CorrectAnswer: "George Orwell",
		WrongAnswers:  entity.StringArray{"Aldous Huxley", "Ray Bradbury", "Arthur C. Clarke"},
		Topic:         "Literature",
		Difficulty:    "medium",
	},
	{
		Text:          "What is the longest river in the world?",
		CorrectAnswer: "Nile",
		WrongAnswers:  entity.StringArray{"Amazon", "Yangtze", "Mississippi"},
		Topic:         "Geography",
		Difficulty:    "medium",
	},
}

// SeedDefaultQuestions загружает стартовый банк вопросов, если банк пуст.
// Повторный запуск ничего не меняет.
func (s *QuestionService) SeedDefaultQuestions() error {
	count, err := s.questionRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if count > 0 {
		return nil
	}

	questions := make([]entity.Question, len(defaultQuestions))
	copy(questions, defaultQuestions)
	if err := s.questionRepo.CreateBatch(questions); err != nil {
		return fmt.Errorf("failed to seed questions: %w", err)
	}

	log.Printf("[QuestionService] Банк вопросов пуст: загружено %d стартовых вопросов", len(questions))
	return nil
}
