package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"staffeval/app_error"
	"staffeval/auth"
	"staffeval/metrics"
	"staffeval/repository"
	"staffeval/utils"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// MembershipOracle answers membership questions. A missing membership is not an error.
type MembershipOracle interface {
	IsMember(ctx context.Context, staffId int, groupId int) (bool, error)
	MembersOf(ctx context.Context, groupId int) ([]*repository.Staff, error)
	GroupsOf(ctx context.Context, staffId int) ([]*repository.Group, error)
	Memberships(ctx context.Context) ([]*repository.StaffGroup, error)
}

// EvaluationStore persists evaluations. UpsertEvaluationBatch must apply all rows or none.
type EvaluationStore interface {
	UpsertEvaluationBatch(ctx context.Context, evaluations []*repository.Evaluation) ([]*repository.Evaluation, error)
	FindEvaluations(ctx context.Context, filter repository.EvaluationFilter, preloads ...string) ([]*repository.Evaluation, error)
	MissingQuestions(ctx context.Context, questionIds []int) ([]int, error)
}

type BulkSubmission struct {
	GroupId   int
	SubjectId int
	Scores    Scores
}

type EvaluationService struct {
	store      EvaluationStore
	membership MembershipOracle
	publisher  EvaluationPublisher
	now        func() time.Time
}

func NewEvaluationService(store EvaluationStore, membership MembershipOracle, publisher EvaluationPublisher) *EvaluationService {
	if publisher == nil {
		publisher = NoopEvaluationPublisher{}
	}
	return &EvaluationService{
		store:      store,
		membership: membership,
		publisher:  publisher,
		now:        time.Now,
	}
}

// RequireStaff returns the staff id of the actor or fails with NotLinked.
func RequireStaff(actor auth.Actor) (int, error) {
	if actor.StaffId == nil {
		return 0, app_error.ErrNotLinked
	}
	return *actor.StaffId, nil
}

// SubmitBulk validates a submission and upserts one evaluation per question in a
// single transaction. Checks run in order and stop at the first failure; nothing
// is written unless all of them pass.
func (s *EvaluationService) SubmitBulk(ctx context.Context, actor auth.Actor, submission BulkSubmission) ([]*repository.Evaluation, error) {
	evaluations, err := s.submitBulk(ctx, actor, submission)
	outcome := "ok"
	if err != nil {
		outcome = string(app_error.KindOf(err))
		if outcome == "" {
			outcome = "unknown"
		}
	}
	metrics.SubmissionCounter.WithLabelValues(outcome).Inc()
	return evaluations, err
}

func (s *EvaluationService) submitBulk(ctx context.Context, actor auth.Actor, submission BulkSubmission) ([]*repository.Evaluation, error) {
	reviewerId, err := RequireStaff(actor)
	if err != nil {
		return nil, err
	}
	if reviewerId == submission.SubjectId {
		return nil, app_error.ErrSelfEvaluation
	}

	reviewerInGroup, err := s.membership.IsMember(ctx, reviewerId, submission.GroupId)
	if err != nil {
		return nil, app_error.Wrap(app_error.KindStorageFailure, err, "Could not check group membership")
	}
	if !reviewerInGroup {
		return nil, app_error.ErrNotGroupMember
	}
	subjectInGroup, err := s.membership.IsMember(ctx, submission.SubjectId, submission.GroupId)
	if err != nil {
		return nil, app_error.Wrap(app_error.KindStorageFailure, err, "Could not check group membership")
	}
	if !subjectInGroup {
		return nil, app_error.ErrInvalidTarget
	}

	if err := ValidateScores(submission.Scores); err != nil {
		return nil, err
	}

	modifiedAt := s.now()
	evaluations := make([]*repository.Evaluation, 0, len(submission.Scores))
	for _, questionId := range utils.SortedKeys(submission.Scores) {
		evaluations = append(evaluations, &repository.Evaluation{
			ReviewerID: reviewerId,
			SubjectID:  submission.SubjectId,
			GroupID:    submission.GroupId,
			QuestionID: questionId,
			Point:      submission.Scores[questionId],
			ModifiedAt: modifiedAt,
		})
	}

	timer := prometheus.NewTimer(metrics.UpsertDuration)
	saved, err := s.store.UpsertEvaluationBatch(ctx, evaluations)
	timer.ObserveDuration()
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return nil, s.unknownQuestions(ctx, evaluations, err)
	}
	if err != nil {
		log.Printf("evaluation upsert failed for reviewer %d subject %d group %d: %v", reviewerId, submission.SubjectId, submission.GroupId, err)
		return nil, app_error.Wrap(app_error.KindStorageFailure, err, app_error.ErrStorageFailure.Message)
	}
	metrics.ScoresUpsertedCounter.Add(float64(len(saved)))

	if len(saved) > 0 {
		if err := s.publisher.Publish(ctx, saved); err != nil {
			metrics.PublishErrorCounter.Inc()
			log.Printf("could not publish evaluations for reviewer %d subject %d group %d: %v", reviewerId, submission.SubjectId, submission.GroupId, err)
		}
	}
	return saved, nil
}

// unknownQuestions turns a foreign key violation of a batch into an InvalidInput
// naming the questions that do not exist. Reviewer, subject and group passed the
// membership checks, so the question is the only reference left to fail.
func (s *EvaluationService) unknownQuestions(ctx context.Context, evaluations []*repository.Evaluation, cause error) error {
	questionIds := utils.Map(evaluations, func(evaluation *repository.Evaluation) int { return evaluation.QuestionID })
	missing, err := s.store.MissingQuestions(ctx, questionIds)
	if err != nil || len(missing) == 0 {
		return app_error.Wrap(app_error.KindInvalidInput, cause, "Submission references an unknown question")
	}
	return &app_error.Error{
		Kind:        app_error.KindInvalidInput,
		Message:     fmt.Sprintf("Questions %v do not exist", missing),
		QuestionIds: missing,
		Err:         cause,
	}
}

// FindAll is the privileged listing, callers must check roles.
func (s *EvaluationService) FindAll(ctx context.Context, filter repository.EvaluationFilter) ([]*repository.Evaluation, error) {
	return s.store.FindEvaluations(ctx, filter, "Reviewer", "Subject", "Group", "Question")
}

func (s *EvaluationService) FindByReviewer(ctx context.Context, staffId int, groupId *int) ([]*repository.Evaluation, error) {
	filter := repository.EvaluationFilter{ReviewerID: &staffId, GroupID: groupId}
	return s.store.FindEvaluations(ctx, filter, "Subject", "Question")
}

func (s *EvaluationService) GroupsOf(ctx context.Context, staffId int) ([]*repository.Group, error) {
	return s.membership.GroupsOf(ctx, staffId)
}

// ColleaguesIn lists the members of a group other than excludingStaffId.
func (s *EvaluationService) ColleaguesIn(ctx context.Context, groupId int, excludingStaffId int) ([]*repository.Staff, error) {
	members, err := s.membership.MembersOf(ctx, groupId)
	if err != nil {
		return nil, err
	}
	return utils.Filter(members, func(staff *repository.Staff) bool {
		return staff.ID != excludingStaffId
	}), nil
}

func (s *EvaluationService) Memberships(ctx context.Context) ([]*repository.StaffGroup, error) {
	return s.membership.Memberships(ctx)
}

// IsStorageFailure reports whether err should be retried as is.
func IsStorageFailure(err error) bool {
	return errors.Is(err, app_error.ErrStorageFailure)
}
