package controller

import (
	"staffeval/app_error"
	"staffeval/repository"
	"staffeval/service"
	"staffeval/utils"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EvaluationController struct {
	evaluationService *service.EvaluationService
}

func NewEvaluationController(evaluationService *service.EvaluationService) *EvaluationController {
	return &EvaluationController{evaluationService: evaluationService}
}

func setupEvaluationController(db *gorm.DB, publisher service.EvaluationPublisher) []RouteInfo {
	e := NewEvaluationController(service.NewEvaluationService(
		repository.NewEvaluationRepository(db),
		repository.NewGroupRepository(db),
		publisher,
	))
	return e.routes()
}

func (e *EvaluationController) routes() []RouteInfo {
	basePath := "/evaluations"
	privileged := []repository.Role{repository.RoleAdmin, repository.RoleModerator}
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEvaluationsHandler(), Authenticated: true, RequiredRoles: privileged},
		{Method: "GET", Path: "/my", HandlerFunc: e.getMyEvaluationsHandler(), Authenticated: true},
		{Method: "GET", Path: "/my-groups", HandlerFunc: e.getMyGroupsHandler(), Authenticated: true},
		{Method: "GET", Path: "/colleagues/:group_id", HandlerFunc: e.getColleaguesHandler(), Authenticated: true},
		{Method: "GET", Path: "/staff2groups", HandlerFunc: e.getStaffGroupsHandler(), Authenticated: true, RequiredRoles: privileged},
		{Method: "POST", Path: "/bulk", HandlerFunc: e.submitBulkHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetEvaluations
// @Description Fetches all evaluations, optionally filtered (admin/moderator only)
// @Tags evaluation
// @Produce json
// @Param group_id query int false "Group Id"
// @Param reviewer_id query int false "Reviewer staff Id"
// @Param subject_id query int false "Subject staff Id"
// @Success 200 {array} Evaluation
// @Security BearerAuth
// @Router /evaluations [get]
func (e *EvaluationController) getEvaluationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter repository.EvaluationFilter
		var ok bool
		if filter.GroupID, ok = optionalIntQuery(c, "group_id"); !ok {
			return
		}
		if filter.ReviewerID, ok = optionalIntQuery(c, "reviewer_id"); !ok {
			return
		}
		if filter.SubjectID, ok = optionalIntQuery(c, "subject_id"); !ok {
			return
		}
		evaluations, err := e.evaluationService.FindAll(c.Request.Context(), filter)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(evaluations, toEvaluationResponse))
	}
}

// @id GetMyEvaluations
// @Description Fetches the evaluations the authenticated staff member has submitted
// @Tags evaluation
// @Produce json
// @Param group_id query int false "Group Id"
// @Success 200 {array} Evaluation
// @Security BearerAuth
// @Router /evaluations/my [get]
func (e *EvaluationController) getMyEvaluationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		staffId, err := service.RequireStaff(getActor(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		groupId, ok := optionalIntQuery(c, "group_id")
		if !ok {
			return
		}
		evaluations, err := e.evaluationService.FindByReviewer(c.Request.Context(), staffId, groupId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(evaluations, toEvaluationResponse))
	}
}

// @id GetMyGroups
// @Description Fetches the groups the authenticated staff member belongs to
// @Tags evaluation
// @Produce json
// @Success 200 {array} Group
// @Security BearerAuth
// @Router /evaluations/my-groups [get]
func (e *EvaluationController) getMyGroupsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		staffId, err := service.RequireStaff(getActor(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		groups, err := e.evaluationService.GroupsOf(c.Request.Context(), staffId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(groups, toGroupResponse))
	}
}

// @id GetColleagues
// @Description Fetches the other members of a group, the staff the caller can evaluate
// @Tags evaluation
// @Produce json
// @Param group_id path int true "Group Id"
// @Success 200 {array} Staff
// @Security BearerAuth
// @Router /evaluations/colleagues/{group_id} [get]
func (e *EvaluationController) getColleaguesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, ok := idParam(c, "group_id")
		if !ok {
			return
		}
		staffId, err := service.RequireStaff(getActor(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		colleagues, err := e.evaluationService.ColleaguesIn(c.Request.Context(), groupId, staffId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(colleagues, toStaffResponse))
	}
}

// @id GetStaffGroups
// @Description Fetches every staff to group membership (admin/moderator only)
// @Tags evaluation
// @Produce json
// @Success 200 {array} StaffGroup
// @Security BearerAuth
// @Router /evaluations/staff2groups [get]
func (e *EvaluationController) getStaffGroupsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		memberships, err := e.evaluationService.Memberships(c.Request.Context())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(memberships, toStaffGroupResponse))
	}
}

// @id SubmitEvaluations
// @Description Creates or updates the scores the caller gives a colleague, one per question
// @Tags evaluation
// @Accept json
// @Produce json
// @Param body body BulkEvaluationCreate true "Scores by question id"
// @Success 201 {array} Evaluation
// @Security BearerAuth
// @Router /evaluations/bulk [post]
func (e *EvaluationController) submitBulkHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body BulkEvaluationCreate
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		evaluations, err := e.evaluationService.SubmitBulk(c.Request.Context(), getActor(c), service.BulkSubmission{
			GroupId:   body.GroupId,
			SubjectId: body.SubjectId,
			Scores:    service.Scores(body.Scores),
		})
		if err != nil {
			if service.IsStorageFailure(err) {
				c.Header("Retry-After", "1")
			}
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, utils.Map(evaluations, toEvaluationResponse))
	}
}

type BulkEvaluationCreate struct {
	GroupId   int             `json:"group_id" binding:"required"`
	SubjectId int             `json:"subject_id" binding:"required"`
	Scores    map[int]float64 `json:"scores" binding:"required"`
}

type Evaluation struct {
	Id         int       `json:"id" binding:"required"`
	ReviewerId int       `json:"reviewer_id" binding:"required"`
	SubjectId  int       `json:"subject_id" binding:"required"`
	GroupId    int       `json:"group_id" binding:"required"`
	QuestionId int       `json:"question_id" binding:"required"`
	Point      float64   `json:"point" binding:"required"`
	ModifiedAt time.Time `json:"modified_at" binding:"required"`

	Reviewer *Staff    `json:"reviewer,omitempty"`
	Subject  *Staff    `json:"subject,omitempty"`
	Group    *Group    `json:"group,omitempty"`
	Question *Question `json:"question,omitempty"`
}

type StaffGroup struct {
	StaffId int    `json:"staff_id" binding:"required"`
	GroupId int    `json:"group_id" binding:"required"`
	Staff   *Staff `json:"staff,omitempty"`
	Group   *Group `json:"group,omitempty"`
}

func toEvaluationResponse(evaluation *repository.Evaluation) *Evaluation {
	response := &Evaluation{
		Id:         evaluation.ID,
		ReviewerId: evaluation.ReviewerID,
		SubjectId:  evaluation.SubjectID,
		GroupId:    evaluation.GroupID,
		QuestionId: evaluation.QuestionID,
		Point:      evaluation.Point,
		ModifiedAt: evaluation.ModifiedAt,
	}
	if evaluation.Reviewer != nil {
		response.Reviewer = toStaffResponse(evaluation.Reviewer)
	}
	if evaluation.Subject != nil {
		response.Subject = toStaffResponse(evaluation.Subject)
	}
	if evaluation.Group != nil {
		response.Group = toGroupResponse(evaluation.Group)
	}
	if evaluation.Question != nil {
		response.Question = toQuestionResponse(evaluation.Question)
	}
	return response
}

func toStaffGroupResponse(membership *repository.StaffGroup) *StaffGroup {
	response := &StaffGroup{
		StaffId: membership.StaffID,
		GroupId: membership.GroupID,
	}
	if membership.Staff != nil {
		response.Staff = toStaffResponse(membership.Staff)
	}
	if membership.Group != nil {
		response.Group = toGroupResponse(membership.Group)
	}
	return response
}
