package controller

import (
	"staffeval/app_error"
	"staffeval/repository"
	"staffeval/service"
	"staffeval/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrganizationUnitController struct {
	organizationUnitService *service.OrganizationUnitService
}

func NewOrganizationUnitController(db *gorm.DB) *OrganizationUnitController {
	return &OrganizationUnitController{
		organizationUnitService: service.NewOrganizationUnitService(db),
	}
}

func setupOrganizationUnitController(db *gorm.DB) []RouteInfo {
	e := NewOrganizationUnitController(db)
	basePath := "/organization-units"
	admin := []repository.Role{repository.RoleAdmin}
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getOrganizationUnitsHandler(), Authenticated: true},
		{Method: "GET", Path: "/:unit_id", HandlerFunc: e.getOrganizationUnitHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createOrganizationUnitHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "PATCH", Path: "/:unit_id", HandlerFunc: e.updateOrganizationUnitHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "DELETE", Path: "/:unit_id", HandlerFunc: e.deleteOrganizationUnitHandler(), Authenticated: true, RequiredRoles: admin},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

func (e *OrganizationUnitController) getOrganizationUnitsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		units, err := e.organizationUnitService.GetAll()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(units, toOrganizationUnitResponse))
	}
}

func (e *OrganizationUnitController) getOrganizationUnitHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		unitId, ok := idParam(c, "unit_id")
		if !ok {
			return
		}
		unit, err := e.organizationUnitService.GetById(unitId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toOrganizationUnitResponse(unit))
	}
}

func (e *OrganizationUnitController) createOrganizationUnitHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var unit OrganizationUnitCreate
		if err := c.ShouldBindJSON(&unit); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbUnit, err := e.organizationUnitService.Create(&repository.OrganizationUnit{ID: unit.Id, Name: unit.Name})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toOrganizationUnitResponse(dbUnit))
	}
}

func (e *OrganizationUnitController) updateOrganizationUnitHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		unitId, ok := idParam(c, "unit_id")
		if !ok {
			return
		}
		var unit OrganizationUnitUpdate
		if err := c.ShouldBindJSON(&unit); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbUnit, err := e.organizationUnitService.Update(unitId, unit.Name)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toOrganizationUnitResponse(dbUnit))
	}
}

func (e *OrganizationUnitController) deleteOrganizationUnitHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		unitId, ok := idParam(c, "unit_id")
		if !ok {
			return
		}
		if err := e.organizationUnitService.Delete(unitId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

// Organization unit ids come from the institution and are chosen by the caller.
type OrganizationUnitCreate struct {
	Id   int    `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type OrganizationUnitUpdate struct {
	Name string `json:"name" binding:"required"`
}

type OrganizationUnit struct {
	Id   int    `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func toOrganizationUnitResponse(unit *repository.OrganizationUnit) *OrganizationUnit {
	return &OrganizationUnit{
		Id:   unit.ID,
		Name: unit.Name,
	}
}
