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

type UserController struct {
	userService *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		userService: service.NewUserService(db),
	}
}

func setupUserController(db *gorm.DB) []RouteInfo {
	e := NewUserController(db)
	basePath := "/users"
	admin := []repository.Role{repository.RoleAdmin}
	routes := []RouteInfo{
		{Method: "GET", Path: "/profile", HandlerFunc: e.getProfileHandler(), Authenticated: true},
		{Method: "GET", Path: "/profiles", HandlerFunc: e.getProfilesHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "POST", Path: "/link-staff", HandlerFunc: e.linkStaffHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "GET", Path: "/roles", HandlerFunc: e.getUsersWithRolesHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "POST", Path: "/:user_id/roles", HandlerFunc: e.addRoleHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "DELETE", Path: "/:user_id/roles/:role", HandlerFunc: e.removeRoleHandler(), Authenticated: true, RequiredRoles: admin},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetProfile
// @Description Fetches the authenticated user with the linked staff profile
// @Tags user
// @Produce json
// @Success 200 {object} User
// @Security BearerAuth
// @Router /users/profile [get]
func (e *UserController) getProfileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetProfile(getActor(c).UserId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id GetProfiles
// @Description Fetches all users with their linked staff profiles
// @Tags user
// @Produce json
// @Success 200 {array} User
// @Security BearerAuth
// @Router /users/profiles [get]
func (e *UserController) getProfilesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := e.userService.GetProfiles()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(users, toUserResponse))
	}
}

// @id LinkStaff
// @Description Links a user to a staff profile
// @Tags user
// @Accept json
// @Produce json
// @Param body body LinkStaff true "Link"
// @Success 200 {object} User
// @Security BearerAuth
// @Router /users/link-staff [post]
func (e *UserController) linkStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var link LinkStaff
		if err := c.ShouldBindJSON(&link); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.LinkStaff(link.UserId, link.StaffId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

func (e *UserController) getUsersWithRolesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := e.userService.GetUsersWithRoles()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(users, toUserResponse))
	}
}

func (e *UserController) addRoleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := idParam(c, "user_id")
		if !ok {
			return
		}
		var role RoleCreate
		if err := c.ShouldBindJSON(&role); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.AddRole(userId, role.Role)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toUserResponse(user))
	}
}

func (e *UserController) removeRoleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := idParam(c, "user_id")
		if !ok {
			return
		}
		user, err := e.userService.RemoveRole(userId, c.Param("role"))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

type LinkStaff struct {
	UserId  int `json:"user_id" binding:"required"`
	StaffId int `json:"staff_id" binding:"required"`
}

type RoleCreate struct {
	Role string `json:"role" binding:"required,oneof=admin moderator user"`
}

type User struct {
	Id        int       `json:"id" binding:"required"`
	Email     string    `json:"email" binding:"required"`
	StaffId   *int      `json:"staff_id"`
	Roles     []string  `json:"roles" binding:"required"`
	CreatedAt time.Time `json:"created_at" binding:"required"`
	Staff     *Staff    `json:"staff,omitempty"`
}

func toUserResponse(user *repository.User) *User {
	response := &User{
		Id:        user.ID,
		Email:     user.Email,
		StaffId:   user.StaffID,
		Roles:     user.Roles,
		CreatedAt: user.CreatedAt,
	}
	if response.Roles == nil {
		response.Roles = []string{}
	}
	if user.Staff != nil {
		response.Staff = toStaffResponse(user.Staff)
	}
	return response
}
