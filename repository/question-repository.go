package repository

import (
	"gorm.io/gorm"
)

type Question struct {
	ID          int     `gorm:"primaryKey"`
	Title       string  `gorm:"not null"`
	Description *string `gorm:"null"`
}

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) FindAll() ([]*Question, error) {
	questions := make([]*Question, 0)
	result := r.DB.Order("id ASC").Find(&questions)
	if result.Error != nil {
		return nil, result.Error
	}
	return questions, nil
}

func (r *QuestionRepository) GetById(id int) (*Question, error) {
	var question Question
	result := r.DB.First(&question, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &question, nil
}

func (r *QuestionRepository) Save(question *Question) (*Question, error) {
	result := r.DB.Save(question)
	if result.Error != nil {
		return nil, result.Error
	}
	return question, nil
}

func (r *QuestionRepository) Delete(id int) error {
	return r.DB.Delete(&Question{}, id).Error
}
