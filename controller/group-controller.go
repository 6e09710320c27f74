package controller

import (
	"staffeval/app_error"
	"staffeval/repository"
	"staffeval/service"
	"staffeval/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GroupController struct {
	groupService *service.GroupService
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{
		groupService: service.NewGroupService(db),
	}
}

func setupGroupController(db *gorm.DB) []RouteInfo {
	e := NewGroupController(db)
	basePath := "/groups"
	admin := []repository.Role{repository.RoleAdmin}
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getGroupsHandler(), Authenticated: true},
		{Method: "GET", Path: "/:group_id", HandlerFunc: e.getGroupHandler(), Authenticated: true},
		{Method: "GET", Path: "/:group_id/members", HandlerFunc: e.getMembersHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createGroupHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "PATCH", Path: "/:group_id", HandlerFunc: e.updateGroupHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "PUT", Path: "/:group_id/members", HandlerFunc: e.updateMembersHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "DELETE", Path: "/:group_id", HandlerFunc: e.deleteGroupHandler(), Authenticated: true, RequiredRoles: admin},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

func (e *GroupController) getGroupsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := e.groupService.GetAll()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(groups, toGroupResponse))
	}
}

func (e *GroupController) getGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, ok := idParam(c, "group_id")
		if !ok {
			return
		}
		group, err := e.groupService.GetById(groupId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toGroupResponse(group))
	}
}

func (e *GroupController) getMembersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, ok := idParam(c, "group_id")
		if !ok {
			return
		}
		members, err := e.groupService.GetMembers(c.Request.Context(), groupId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(members, toStaffResponse))
	}
}

func (e *GroupController) createGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var group GroupCreate
		if err := c.ShouldBindJSON(&group); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbGroup, err := e.groupService.Create(group.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toGroupResponse(dbGroup))
	}
}

func (e *GroupController) updateGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, ok := idParam(c, "group_id")
		if !ok {
			return
		}
		var group GroupCreate
		if err := c.ShouldBindJSON(&group); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbGroup, err := e.groupService.Update(groupId, group.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toGroupResponse(dbGroup))
	}
}

func (e *GroupController) updateMembersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, ok := idParam(c, "group_id")
		if !ok {
			return
		}
		var members GroupMembersUpdate
		if err := c.ShouldBindJSON(&members); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		staff, err := e.groupService.UpdateMembers(c.Request.Context(), groupId, members.StaffIds)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(staff, toStaffResponse))
	}
}

func (e *GroupController) deleteGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, ok := idParam(c, "group_id")
		if !ok {
			return
		}
		if err := e.groupService.Delete(groupId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

type GroupCreate struct {
	Name               string `json:"name" binding:"required"`
	OrganizationUnitId *int   `json:"organization_unit_id"`
}

type GroupMembersUpdate struct {
	StaffIds []int `json:"staff_ids" binding:"required"`
}

type Group struct {
	Id                 int               `json:"id" binding:"required"`
	Name               string            `json:"name" binding:"required"`
	OrganizationUnitId *int              `json:"organization_unit_id"`
	OrganizationUnit   *OrganizationUnit `json:"organization_unit,omitempty"`
	Members            []*Staff          `json:"members,omitempty"`
}

func (g *GroupCreate) toModel() *repository.Group {
	return &repository.Group{
		Name:               g.Name,
		OrganizationUnitID: g.OrganizationUnitId,
	}
}

func toGroupResponse(group *repository.Group) *Group {
	response := &Group{
		Id:                 group.ID,
		Name:               group.Name,
		OrganizationUnitId: group.OrganizationUnitID,
	}
	if group.OrganizationUnit != nil {
		response.OrganizationUnit = toOrganizationUnitResponse(group.OrganizationUnit)
	}
	for _, membership := range group.StaffGroups {
		if membership.Staff != nil {
			response.Members = append(response.Members, toStaffResponse(membership.Staff))
		}
	}
	return response
}
