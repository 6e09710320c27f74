package service

import (
	"staffeval/repository"

	"gorm.io/gorm"
)

type QuestionService struct {
	questionRepository *repository.QuestionRepository
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{
		questionRepository: repository.NewQuestionRepository(db),
	}
}

func (s *QuestionService) GetAll() ([]*repository.Question, error) {
	return s.questionRepository.FindAll()
}

func (s *QuestionService) GetById(id int) (*repository.Question, error) {
	question, err := s.questionRepository.GetById(id)
	if err != nil {
		return nil, notFound(err, "Question", id)
	}
	return question, nil
}

func (s *QuestionService) Create(question *repository.Question) (*repository.Question, error) {
	question.ID = 0
	return s.questionRepository.Save(question)
}

func (s *QuestionService) Update(id int, update *repository.Question) (*repository.Question, error) {
	question, err := s.GetById(id)
	if err != nil {
		return nil, err
	}
	question.Title = update.Title
	question.Description = update.Description
	return s.questionRepository.Save(question)
}

func (s *QuestionService) Delete(id int) error {
	if _, err := s.GetById(id); err != nil {
		return err
	}
	return s.questionRepository.Delete(id)
}
