package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"staffeval/app_error"
	"staffeval/auth"
	"staffeval/repository"
	"staffeval/utils"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type evaluationKey struct {
	reviewer, subject, group, question int
}

// memoryStore keeps evaluations and memberships in memory. A batch is staged on
// a copy and only swapped in once every row was applied.
type memoryStore struct {
	mu            sync.Mutex
	nextId        int
	evaluations   map[evaluationKey]*repository.Evaluation
	members       map[[2]int]bool
	staff         map[int]*repository.Staff
	groups        map[int]*repository.Group
	failAfterRows int
	membershipErr error
	questions     map[int]bool
	batches       int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		evaluations:   make(map[evaluationKey]*repository.Evaluation),
		members:       make(map[[2]int]bool),
		staff:         make(map[int]*repository.Staff),
		groups:        make(map[int]*repository.Group),
		failAfterRows: -1,
	}
}

func (m *memoryStore) addMember(staffId int, groupId int) {
	m.members[[2]int{staffId, groupId}] = true
	if _, ok := m.staff[staffId]; !ok {
		m.staff[staffId] = &repository.Staff{ID: staffId}
	}
	if _, ok := m.groups[groupId]; !ok {
		m.groups[groupId] = &repository.Group{ID: groupId, Name: fmt.Sprintf("group %d", groupId)}
	}
}

func (m *memoryStore) IsMember(ctx context.Context, staffId int, groupId int) (bool, error) {
	if m.membershipErr != nil {
		return false, m.membershipErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.members[[2]int{staffId, groupId}], nil
}

func (m *memoryStore) MembersOf(ctx context.Context, groupId int) ([]*repository.Staff, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	staff := make([]*repository.Staff, 0)
	for key := range m.members {
		if key[1] == groupId {
			staff = append(staff, m.staff[key[0]])
		}
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].ID < staff[j].ID })
	return staff, nil
}

func (m *memoryStore) GroupsOf(ctx context.Context, staffId int) ([]*repository.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	groups := make([]*repository.Group, 0)
	for key := range m.members {
		if key[0] == staffId {
			groups = append(groups, m.groups[key[1]])
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups, nil
}

func (m *memoryStore) Memberships(ctx context.Context) ([]*repository.StaffGroup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	memberships := make([]*repository.StaffGroup, 0)
	for key := range m.members {
		memberships = append(memberships, &repository.StaffGroup{StaffID: key[0], GroupID: key[1]})
	}
	return memberships, nil
}

func (m *memoryStore) UpsertEvaluationBatch(ctx context.Context, evaluations []*repository.Evaluation) ([]*repository.Evaluation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches++
	staged := make(map[evaluationKey]*repository.Evaluation, len(m.evaluations))
	for key, evaluation := range m.evaluations {
		copied := *evaluation
		staged[key] = &copied
	}
	nextId := m.nextId
	for i, evaluation := range evaluations {
		if m.failAfterRows >= 0 && i == m.failAfterRows {
			return nil, errors.New("connection reset")
		}
		if m.questions != nil && !m.questions[evaluation.QuestionID] {
			return nil, fmt.Errorf("insert evaluation: %w", gorm.ErrForeignKeyViolated)
		}
		key := evaluationKey{evaluation.ReviewerID, evaluation.SubjectID, evaluation.GroupID, evaluation.QuestionID}
		if existing, ok := staged[key]; ok {
			existing.Point = evaluation.Point
			existing.ModifiedAt = evaluation.ModifiedAt
			evaluation.ID = existing.ID
		} else {
			nextId++
			evaluation.ID = nextId
			copied := *evaluation
			staged[key] = &copied
		}
	}
	m.evaluations = staged
	m.nextId = nextId
	return evaluations, nil
}

func (m *memoryStore) FindEvaluations(ctx context.Context, filter repository.EvaluationFilter, preloads ...string) ([]*repository.Evaluation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*repository.Evaluation, 0)
	for _, evaluation := range m.evaluations {
		if filter.GroupID != nil && evaluation.GroupID != *filter.GroupID {
			continue
		}
		if filter.ReviewerID != nil && evaluation.ReviewerID != *filter.ReviewerID {
			continue
		}
		if filter.SubjectID != nil && evaluation.SubjectID != *filter.SubjectID {
			continue
		}
		copied := *evaluation
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].QuestionID < result[j].QuestionID })
	return result, nil
}

func (m *memoryStore) MissingQuestions(ctx context.Context, questionIds []int) ([]int, error) {
	missing := make([]int, 0)
	if m.questions == nil {
		return missing, nil
	}
	for _, id := range utils.Uniques(questionIds) {
		if !m.questions[id] {
			missing = append(missing, id)
		}
	}
	sort.Ints(missing)
	return missing, nil
}

func (m *memoryStore) point(reviewer, subject, group, question int) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	evaluation, ok := m.evaluations[evaluationKey{reviewer, subject, group, question}]
	if !ok {
		return 0, false
	}
	return evaluation.Point, true
}

type recordingPublisher struct {
	mu        sync.Mutex
	published [][]*repository.Evaluation
	err       error
}

func (p *recordingPublisher) Publish(ctx context.Context, evaluations []*repository.Evaluation) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, evaluations)
	return p.err
}

func staffActor(staffId int) auth.Actor {
	return auth.Actor{UserId: staffId + 100, StaffId: &staffId, Roles: []string{"user"}}
}

// setUp creates group 1 with staff 1, 2 and 3 and group 2 with staff 4.
func setUp() (*EvaluationService, *memoryStore, *recordingPublisher) {
	store := newMemoryStore()
	store.addMember(1, 1)
	store.addMember(2, 1)
	store.addMember(3, 1)
	store.addMember(4, 2)
	publisher := &recordingPublisher{}
	return NewEvaluationService(store, store, publisher), store, publisher
}

func TestSubmitBulkHappyPath(t *testing.T) {
	service, store, publisher := setUp()

	saved, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{
		GroupId:   1,
		SubjectId: 2,
		Scores:    Scores{1: 4, 2: 5},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	assert.Equal(t, 1, saved[0].ReviewerID)
	assert.Equal(t, 2, saved[0].SubjectID)
	assert.Equal(t, 1, saved[0].GroupID)
	assert.Equal(t, 1, saved[0].QuestionID)
	assert.Equal(t, 4.0, saved[0].Point)
	assert.Equal(t, 2, saved[1].QuestionID)
	assert.Equal(t, 5.0, saved[1].Point)
	assert.False(t, saved[0].ModifiedAt.IsZero())

	point, ok := store.point(1, 2, 1, 2)
	assert.True(t, ok)
	assert.Equal(t, 5.0, point)
	assert.Len(t, publisher.published, 1)
}

func TestSubmitBulkRejectsUnlinkedActor(t *testing.T) {
	service, store, _ := setUp()
	_, err := service.SubmitBulk(context.Background(), auth.Actor{UserId: 9}, BulkSubmission{GroupId: 1, SubjectId: 2, Scores: Scores{1: 5}})
	assert.ErrorIs(t, err, app_error.ErrNotLinked)
	assert.Equal(t, 0, store.batches)
}

func TestSubmitBulkRejectsSelfEvaluation(t *testing.T) {
	service, store, _ := setUp()

	_, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{GroupId: 1, SubjectId: 1, Scores: Scores{1: 5}})
	assert.ErrorIs(t, err, app_error.ErrSelfEvaluation)

	// self evaluation wins over membership and score problems
	_, err = service.SubmitBulk(context.Background(), staffActor(9), BulkSubmission{GroupId: 7, SubjectId: 9, Scores: Scores{1: -3}})
	assert.ErrorIs(t, err, app_error.ErrSelfEvaluation)

	assert.Equal(t, 0, store.batches)
	_, ok := store.point(1, 1, 1, 1)
	assert.False(t, ok)
}

func TestSubmitBulkRequiresReviewerMembershipBeforeScoreValidation(t *testing.T) {
	service, store, _ := setUp()
	_, err := service.SubmitBulk(context.Background(), staffActor(4), BulkSubmission{
		GroupId:   1,
		SubjectId: 2,
		Scores:    Scores{1: 42, 2: math.NaN()},
	})
	assert.ErrorIs(t, err, app_error.ErrNotGroupMember)
	assert.Equal(t, 403, err.(*app_error.Error).HTTPStatus())
	assert.Equal(t, 0, store.batches)
}

func TestSubmitBulkRejectsSubjectOutsideGroup(t *testing.T) {
	service, store, _ := setUp()
	_, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{GroupId: 1, SubjectId: 4, Scores: Scores{1: 5}})
	assert.ErrorIs(t, err, app_error.ErrInvalidTarget)
	assert.Equal(t, 400, err.(*app_error.Error).HTTPStatus())
	assert.Equal(t, 0, store.batches)
}

func TestSubmitBulkRejectsOutOfRangeScores(t *testing.T) {
	service, store, _ := setUp()
	_, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{GroupId: 1, SubjectId: 2, Scores: Scores{1: -1, 2: 11}})
	require.ErrorIs(t, err, app_error.ErrInvalidScore)

	var appErr *app_error.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []int{1, 2}, appErr.QuestionIds)
	assert.Equal(t, 0, store.batches)
}

func TestSubmitBulkScoreBounds(t *testing.T) {
	for _, point := range []float64{0, 10} {
		service, _, _ := setUp()
		_, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{GroupId: 1, SubjectId: 2, Scores: Scores{1: point}})
		assert.NoError(t, err, "point %v", point)
	}
	for _, point := range []float64{-0.1, 10.1, math.NaN(), math.Inf(1)} {
		service, _, _ := setUp()
		_, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{GroupId: 1, SubjectId: 2, Scores: Scores{1: point}})
		assert.ErrorIs(t, err, app_error.ErrInvalidScore, "point %v", point)
	}
}

func TestSubmitBulkIsIdempotent(t *testing.T) {
	service, store, _ := setUp()
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return clock }

	submission := BulkSubmission{GroupId: 1, SubjectId: 2, Scores: Scores{1: 4, 2: 5}}
	first, err := service.SubmitBulk(context.Background(), staffActor(1), submission)
	require.NoError(t, err)

	clock = clock.Add(time.Minute)
	second, err := service.SubmitBulk(context.Background(), staffActor(1), submission)
	require.NoError(t, err)

	require.Len(t, second, 2)
	for i := range second {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Point, second[i].Point)
		assert.True(t, second[i].ModifiedAt.After(first[i].ModifiedAt))
	}
	all, err := store.FindEvaluations(context.Background(), repository.EvaluationFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSubmitBulkResubmissionUpdatesInPlace(t *testing.T) {
	service, store, _ := setUp()
	_, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{GroupId: 1, SubjectId: 2, Scores: Scores{1: 4, 2: 5}})
	require.NoError(t, err)

	_, err = service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{GroupId: 1, SubjectId: 2, Scores: Scores{1: 7}})
	require.NoError(t, err)

	reviewerId := 1
	rows, err := store.FindEvaluations(context.Background(), repository.EvaluationFilter{ReviewerID: &reviewerId})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 7.0, rows[0].Point)
	assert.Equal(t, 5.0, rows[1].Point)
}

func TestSubmitBulkIsAtomicOnStorageFailure(t *testing.T) {
	service, store, publisher := setUp()
	_, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{GroupId: 1, SubjectId: 2, Scores: Scores{1: 1, 2: 1}})
	require.NoError(t, err)

	store.failAfterRows = 2
	_, err = service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{
		GroupId:   1,
		SubjectId: 2,
		Scores:    Scores{1: 9, 2: 9, 3: 9, 4: 9, 5: 9},
	})
	require.Error(t, err)
	assert.True(t, IsStorageFailure(err))
	assert.Equal(t, 503, err.(*app_error.Error).HTTPStatus())

	for question := 1; question <= 2; question++ {
		point, ok := store.point(1, 2, 1, question)
		assert.True(t, ok)
		assert.Equal(t, 1.0, point, "question %d must keep its old point", question)
	}
	for question := 3; question <= 5; question++ {
		_, ok := store.point(1, 2, 1, question)
		assert.False(t, ok, "question %d must not exist", question)
	}
	assert.Len(t, publisher.published, 1)
}

func TestSubmitBulkUnknownQuestionIsInvalidInput(t *testing.T) {
	service, store, publisher := setUp()
	store.questions = map[int]bool{1: true, 2: true}

	_, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{
		GroupId:   1,
		SubjectId: 2,
		Scores:    Scores{1: 5, 999: 5},
	})
	require.Error(t, err)
	assert.False(t, IsStorageFailure(err), "an unknown question never succeeds on retry")

	var appErr *app_error.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, app_error.KindInvalidInput, appErr.Kind)
	assert.Equal(t, 400, appErr.HTTPStatus())
	assert.Equal(t, []int{999}, appErr.QuestionIds)
	assert.Contains(t, appErr.Message, "999")
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	_, ok := store.point(1, 2, 1, 1)
	assert.False(t, ok)
	assert.Empty(t, publisher.published)
}

func TestSubmitBulkMembershipLookupFailureIsStorageFailure(t *testing.T) {
	service, store, _ := setUp()
	store.membershipErr = errors.New("timeout")
	_, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{GroupId: 1, SubjectId: 2, Scores: Scores{1: 5}})
	assert.ErrorIs(t, err, app_error.ErrStorageFailure)
	assert.Equal(t, 0, store.batches)
}

func TestSubmitBulkWithNoScoresWritesNothing(t *testing.T) {
	service, _, publisher := setUp()
	saved, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{GroupId: 1, SubjectId: 2, Scores: Scores{}})
	require.NoError(t, err)
	assert.Empty(t, saved)
	assert.Empty(t, publisher.published)
}

func TestSubmitBulkSucceedsWhenPublishingFails(t *testing.T) {
	service, store, publisher := setUp()
	publisher.err = errors.New("broker down")
	saved, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{GroupId: 1, SubjectId: 2, Scores: Scores{1: 5}})
	require.NoError(t, err)
	assert.Len(t, saved, 1)
	_, ok := store.point(1, 2, 1, 1)
	assert.True(t, ok)
}

func TestSubmitBulkConcurrentDisjointQuestions(t *testing.T) {
	service, store, _ := setUp()
	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for question := 1; question <= 10; question++ {
		wg.Add(1)
		go func(question int) {
			defer wg.Done()
			_, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{
				GroupId:   1,
				SubjectId: 3,
				Scores:    Scores{question: float64(question) / 2},
			})
			errs <- err
		}(question)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
	for question := 1; question <= 10; question++ {
		point, ok := store.point(1, 3, 1, question)
		assert.True(t, ok)
		assert.Equal(t, float64(question)/2, point)
	}
}

func TestColleaguesInExcludesSelf(t *testing.T) {
	service, _, _ := setUp()
	colleagues, err := service.ColleaguesIn(context.Background(), 1, 2)
	require.NoError(t, err)
	ids := make([]int, 0)
	for _, staff := range colleagues {
		ids = append(ids, staff.ID)
	}
	assert.Equal(t, []int{1, 3}, ids)

	colleagues, err = service.ColleaguesIn(context.Background(), 99, 2)
	require.NoError(t, err)
	assert.Empty(t, colleagues)
}

func TestGroupsOf(t *testing.T) {
	service, store, _ := setUp()
	store.addMember(1, 2)
	groups, err := service.GroupsOf(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].ID)
	assert.Equal(t, 2, groups[1].ID)
}

func TestFindByReviewerFiltersByGroup(t *testing.T) {
	service, store, _ := setUp()
	store.addMember(1, 2)
	_, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{GroupId: 1, SubjectId: 2, Scores: Scores{1: 5}})
	require.NoError(t, err)
	_, err = service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{GroupId: 2, SubjectId: 4, Scores: Scores{1: 6}})
	require.NoError(t, err)
	_, err = service.SubmitBulk(context.Background(), staffActor(2), BulkSubmission{GroupId: 1, SubjectId: 1, Scores: Scores{1: 7}})
	require.NoError(t, err)

	mine, err := service.FindByReviewer(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	groupId := 2
	mine, err = service.FindByReviewer(context.Background(), 1, &groupId)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 6.0, mine[0].Point)

	none, err := service.FindByReviewer(context.Background(), 3, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRequireStaff(t *testing.T) {
	_, err := RequireStaff(auth.Actor{})
	assert.ErrorIs(t, err, app_error.ErrNotLinked)
	staffId, err := RequireStaff(staffActor(5))
	require.NoError(t, err)
	assert.Equal(t, 5, staffId)
}

func TestSubmitBulkConcurrentSameQuestion(t *testing.T) {
	service, store, _ := setUp()
	points := []float64{2, 3.5, 6, 8.5, 10}
	var wg sync.WaitGroup
	errs := make(chan error, len(points))
	for _, point := range points {
		wg.Add(1)
		go func(point float64) {
			defer wg.Done()
			_, err := service.SubmitBulk(context.Background(), staffActor(1), BulkSubmission{
				GroupId:   1,
				SubjectId: 2,
				Scores:    Scores{1: point},
			})
			errs <- err
		}(point)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	rows, err := store.FindEvaluations(context.Background(), repository.EvaluationFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1, "concurrent upserts of one key leave a single row")
	assert.Contains(t, points, rows[0].Point)
}
