package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"staffeval/auth"
	"staffeval/repository"
	"staffeval/service"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeStore keeps memberships and evaluations in memory.
type fakeStore struct {
	mu          sync.Mutex
	members     map[int][]int
	evaluations []*repository.Evaluation
	upsertErr   error
}

func (f *fakeStore) IsMember(ctx context.Context, staffId int, groupId int) (bool, error) {
	for _, member := range f.members[groupId] {
		if member == staffId {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) MembersOf(ctx context.Context, groupId int) ([]*repository.Staff, error) {
	staff := make([]*repository.Staff, 0)
	for _, member := range f.members[groupId] {
		staff = append(staff, &repository.Staff{ID: member})
	}
	return staff, nil
}

func (f *fakeStore) GroupsOf(ctx context.Context, staffId int) ([]*repository.Group, error) {
	groups := make([]*repository.Group, 0)
	for groupId := range f.members {
		if ok, _ := f.IsMember(ctx, staffId, groupId); ok {
			groups = append(groups, &repository.Group{ID: groupId, Name: "Math"})
		}
	}
	return groups, nil
}

func (f *fakeStore) Memberships(ctx context.Context) ([]*repository.StaffGroup, error) {
	memberships := make([]*repository.StaffGroup, 0)
	for groupId, members := range f.members {
		for _, member := range members {
			memberships = append(memberships, &repository.StaffGroup{StaffID: member, GroupID: groupId})
		}
	}
	return memberships, nil
}

func (f *fakeStore) UpsertEvaluationBatch(ctx context.Context, evaluations []*repository.Evaluation) ([]*repository.Evaluation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	for _, evaluation := range evaluations {
		evaluation.ID = len(f.evaluations) + 1
		f.evaluations = append(f.evaluations, evaluation)
	}
	return evaluations, nil
}

func (f *fakeStore) FindEvaluations(ctx context.Context, filter repository.EvaluationFilter, preloads ...string) ([]*repository.Evaluation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	evaluations := make([]*repository.Evaluation, 0)
	for _, evaluation := range f.evaluations {
		if filter.ReviewerID != nil && evaluation.ReviewerID != *filter.ReviewerID {
			continue
		}
		evaluations = append(evaluations, evaluation)
	}
	return evaluations, nil
}

func (f *fakeStore) MissingQuestions(ctx context.Context, questionIds []int) ([]int, error) {
	return []int{}, nil
}

func setUpRouter(t *testing.T) (*gin.Engine, *fakeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := &fakeStore{members: map[int][]int{1: {1, 2, 3}}}
	controller := NewEvaluationController(service.NewEvaluationService(store, store, nil))
	r := gin.New()
	registerRoutes(r.Group("/api"), controller.routes())
	return r, store
}

func token(t *testing.T, staffId *int, roles ...string) string {
	t.Helper()
	tokenString, err := auth.CreateToken(auth.AccessToken, 42, staffId, roles, time.Minute)
	require.NoError(t, err)
	return tokenString
}

func linked(id int) *int {
	return &id
}

func doRequest(r *gin.Engine, method string, path string, bearer string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorKind(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
		Kind  string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	return body.Kind
}

func TestSubmitBulkRequiresToken(t *testing.T) {
	r, _ := setUpRouter(t)
	w := doRequest(r, http.MethodPost, "/api/evaluations/bulk", "", gin.H{"group_id": 1, "subject_id": 2, "scores": gin.H{"1": 8}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHENTICATED", errorKind(t, w))
}

func TestSubmitBulkRejectsGarbageToken(t *testing.T) {
	r, _ := setUpRouter(t)
	w := doRequest(r, http.MethodPost, "/api/evaluations/bulk", "not-a-token", gin.H{"group_id": 1, "subject_id": 2, "scores": gin.H{"1": 8}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitBulkCreatesEvaluations(t *testing.T) {
	r, store := setUpRouter(t)
	w := doRequest(r, http.MethodPost, "/api/evaluations/bulk", token(t, linked(1), "user"),
		gin.H{"group_id": 1, "subject_id": 2, "scores": gin.H{"2": 9.5, "1": 8}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var evaluations []Evaluation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &evaluations))
	require.Len(t, evaluations, 2)
	assert.Equal(t, 1, evaluations[0].QuestionId)
	assert.Equal(t, 8.0, evaluations[0].Point)
	assert.Equal(t, 2, evaluations[1].QuestionId)
	assert.Equal(t, 1, evaluations[1].ReviewerId)
	assert.Len(t, store.evaluations, 2)
}

func TestSubmitBulkWithoutLinkedStaff(t *testing.T) {
	r, store := setUpRouter(t)
	w := doRequest(r, http.MethodPost, "/api/evaluations/bulk", token(t, nil, "user"),
		gin.H{"group_id": 1, "subject_id": 2, "scores": gin.H{"1": 8}})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_LINKED")
	assert.Empty(t, store.evaluations)
}

func TestSubmitBulkInvalidScoreListsQuestions(t *testing.T) {
	r, store := setUpRouter(t)
	w := doRequest(r, http.MethodPost, "/api/evaluations/bulk", token(t, linked(1), "user"),
		gin.H{"group_id": 1, "subject_id": 2, "scores": gin.H{"1": 11, "2": -1, "3": 5}})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Kind        string `json:"kind"`
		QuestionIds []int  `json:"question_ids"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_SCORE", body.Kind)
	assert.Equal(t, []int{1, 2}, body.QuestionIds)
	assert.Empty(t, store.evaluations)
}

func TestSubmitBulkNonNumericScore(t *testing.T) {
	r, store := setUpRouter(t)
	w := doRequest(r, http.MethodPost, "/api/evaluations/bulk", token(t, linked(1), "user"),
		gin.H{"group_id": 1, "subject_id": 2, "scores": gin.H{"1": "eight"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.evaluations)
}

func TestSubmitBulkSubjectOutsideGroup(t *testing.T) {
	r, _ := setUpRouter(t)
	w := doRequest(r, http.MethodPost, "/api/evaluations/bulk", token(t, linked(1), "user"),
		gin.H{"group_id": 1, "subject_id": 9, "scores": gin.H{"1": 8}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TARGET")
}

func TestSubmitBulkSelfEvaluation(t *testing.T) {
	r, _ := setUpRouter(t)
	w := doRequest(r, http.MethodPost, "/api/evaluations/bulk", token(t, linked(1), "user"),
		gin.H{"group_id": 1, "subject_id": 1, "scores": gin.H{"1": 8}})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "SELF_EVALUATION")
}

func TestListAllRequiresPrivilegedRole(t *testing.T) {
	r, _ := setUpRouter(t)
	w := doRequest(r, http.MethodGet, "/api/evaluations", token(t, linked(1), "user"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorKind(t, w))

	w = doRequest(r, http.MethodGet, "/api/evaluations", token(t, nil, "moderator"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestColleaguesExcludeCaller(t *testing.T) {
	r, _ := setUpRouter(t)
	w := doRequest(r, http.MethodGet, "/api/evaluations/colleagues/1", token(t, linked(2), "user"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var staff []Staff
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &staff))
	ids := make([]int, 0, len(staff))
	for _, s := range staff {
		ids = append(ids, s.Id)
	}
	assert.Equal(t, []int{1, 3}, ids)
}

func TestColleaguesMalformedGroupId(t *testing.T) {
	r, _ := setUpRouter(t)
	w := doRequest(r, http.MethodGet, "/api/evaluations/colleagues/abc", token(t, linked(2), "user"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMyEvaluations(t *testing.T) {
	r, _ := setUpRouter(t)
	bearer := token(t, linked(1), "user")
	w := doRequest(r, http.MethodPost, "/api/evaluations/bulk", bearer, gin.H{"group_id": 1, "subject_id": 3, "scores": gin.H{"1": 4}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodGet, "/api/evaluations/my", bearer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var evaluations []Evaluation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &evaluations))
	require.Len(t, evaluations, 1)
	assert.Equal(t, 3, evaluations[0].SubjectId)

	w = doRequest(r, http.MethodGet, "/api/evaluations/my", token(t, linked(2), "user"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSubmitBulkUnknownQuestionIsBadRequest(t *testing.T) {
	r, store := setUpRouter(t)
	store.upsertErr = fmt.Errorf("insert evaluations: %w", gorm.ErrForeignKeyViolated)
	w := doRequest(r, http.MethodPost, "/api/evaluations/bulk", token(t, linked(1), "user"),
		gin.H{"group_id": 1, "subject_id": 2, "scores": gin.H{"999": 5}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", errorKind(t, w))
	assert.Empty(t, w.Header().Get("Retry-After"))
}

func TestSubmitBulkStorageFailureIsRetryable(t *testing.T) {
	r, store := setUpRouter(t)
	store.upsertErr = errors.New("connection reset")
	w := doRequest(r, http.MethodPost, "/api/evaluations/bulk", token(t, linked(1), "user"),
		gin.H{"group_id": 1, "subject_id": 2, "scores": gin.H{"1": 5}})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "STORAGE_FAILURE", errorKind(t, w))
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}
