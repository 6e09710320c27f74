package repository

import (
	"context"
	"slices"
	"staffeval/utils"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Evaluation is the score one staff member gave another for one question
// within a group. (reviewer, subject, group, question) is unique.
type Evaluation struct {
	ID         int       `gorm:"primaryKey"`
	ReviewerID int       `gorm:"not null;uniqueIndex:idx_evaluation_key,priority:1"`
	SubjectID  int       `gorm:"not null;uniqueIndex:idx_evaluation_key,priority:2"`
	GroupID    int       `gorm:"not null;uniqueIndex:idx_evaluation_key,priority:3;index"`
	QuestionID int       `gorm:"not null;uniqueIndex:idx_evaluation_key,priority:4"`
	Point      float64   `gorm:"not null"`
	ModifiedAt time.Time `gorm:"not null"`

	Reviewer *Staff    `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE;"`
	Subject  *Staff    `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE;"`
	Group    *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE;"`
	Question *Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;"`
}

var evaluationKey = []clause.Column{
	{Name: "reviewer_id"},
	{Name: "subject_id"},
	{Name: "group_id"},
	{Name: "question_id"},
}

// EvaluationFilter narrows FindEvaluations. Nil fields are not filtered on.
type EvaluationFilter struct {
	GroupID    *int
	ReviewerID *int
	SubjectID  *int
}

type EvaluationRepository struct {
	DB *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{DB: db}
}

// UpsertEvaluationBatch inserts or updates every evaluation by its natural key
// inside a single transaction. Either all rows land or none do.
func (r *EvaluationRepository) UpsertEvaluationBatch(ctx context.Context, evaluations []*Evaluation) ([]*Evaluation, error) {
	if len(evaluations) == 0 {
		return evaluations, nil
	}
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("UpsertEvaluationBatch"))
	defer timer.ObserveDuration()

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   evaluationKey,
			DoUpdates: clause.AssignmentColumns([]string{"point", "modified_at"}),
		}).Create(&evaluations).Error
	})
	if err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (r *EvaluationRepository) FindEvaluations(ctx context.Context, filter EvaluationFilter, preloads ...string) ([]*Evaluation, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("FindEvaluations"))
	defer timer.ObserveDuration()

	query := r.DB.WithContext(ctx)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	if filter.GroupID != nil {
		query = query.Where("group_id = ?", *filter.GroupID)
	}
	if filter.ReviewerID != nil {
		query = query.Where("reviewer_id = ?", *filter.ReviewerID)
	}
	if filter.SubjectID != nil {
		query = query.Where("subject_id = ?", *filter.SubjectID)
	}
	evaluations := make([]*Evaluation, 0)
	result := query.Order("group_id ASC, subject_id ASC, question_id ASC").Find(&evaluations)
	if result.Error != nil {
		return nil, result.Error
	}
	return evaluations, nil
}

// MissingQuestions returns the ids out of questionIds that have no question row, ascending.
func (r *EvaluationRepository) MissingQuestions(ctx context.Context, questionIds []int) ([]int, error) {
	existing := make([]int, 0, len(questionIds))
	result := r.DB.WithContext(ctx).Model(&Question{}).Where("id IN ?", questionIds).Pluck("id", &existing)
	if result.Error != nil {
		return nil, result.Error
	}
	missing := make([]int, 0)
	for _, id := range utils.SortedKeys(utils.ToSet(questionIds)) {
		if !slices.Contains(existing, id) {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
