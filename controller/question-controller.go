package controller

import (
	"staffeval/app_error"
	"staffeval/repository"
	"staffeval/service"
	"staffeval/utils"
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const questionsPath = "/api/questions"

type QuestionController struct {
	questionService *service.QuestionService
	cacheStore      persistence.CacheStore
}

func NewQuestionController(db *gorm.DB, cacheStore persistence.CacheStore) *QuestionController {
	return &QuestionController{
		questionService: service.NewQuestionService(db),
		cacheStore:      cacheStore,
	}
}

func setupQuestionController(db *gorm.DB, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewQuestionController(db, cacheStore)
	basePath := "/questions"
	admin := []repository.Role{repository.RoleAdmin}
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: cache.CachePage(cacheStore, time.Minute, e.getQuestionsHandler()), Authenticated: true},
		{Method: "GET", Path: "/:question_id", HandlerFunc: e.getQuestionHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createQuestionHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "PATCH", Path: "/:question_id", HandlerFunc: e.updateQuestionHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "DELETE", Path: "/:question_id", HandlerFunc: e.deleteQuestionHandler(), Authenticated: true, RequiredRoles: admin},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// invalidate drops the cached question list after a write.
func (e *QuestionController) invalidate() {
	_ = e.cacheStore.Delete(cache.CreateKey(questionsPath))
}

// @id GetQuestions
// @Description Fetches all evaluation questions
// @Tags question
// @Produce json
// @Success 200 {array} Question
// @Security BearerAuth
// @Router /questions [get]
func (e *QuestionController) getQuestionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		questions, err := e.questionService.GetAll()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(questions, toQuestionResponse))
	}
}

func (e *QuestionController) getQuestionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		questionId, ok := idParam(c, "question_id")
		if !ok {
			return
		}
		question, err := e.questionService.GetById(questionId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toQuestionResponse(question))
	}
}

func (e *QuestionController) createQuestionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var question QuestionCreate
		if err := c.ShouldBindJSON(&question); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbQuestion, err := e.questionService.Create(question.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate()
		c.JSON(201, toQuestionResponse(dbQuestion))
	}
}

func (e *QuestionController) updateQuestionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		questionId, ok := idParam(c, "question_id")
		if !ok {
			return
		}
		var question QuestionCreate
		if err := c.ShouldBindJSON(&question); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbQuestion, err := e.questionService.Update(questionId, question.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate()
		c.JSON(200, toQuestionResponse(dbQuestion))
	}
}

func (e *QuestionController) deleteQuestionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		questionId, ok := idParam(c, "question_id")
		if !ok {
			return
		}
		if err := e.questionService.Delete(questionId); err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate()
		c.Status(204)
	}
}

type QuestionCreate struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

type Question struct {
	Id          int     `json:"id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

func (q *QuestionCreate) toModel() *repository.Question {
	return &repository.Question{
		Title:       q.Title,
		Description: q.Description,
	}
}

func toQuestionResponse(question *repository.Question) *Question {
	return &Question{
		Id:          question.ID,
		Title:       question.Title,
		Description: question.Description,
	}
}
