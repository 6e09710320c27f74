package controller

import (
	"staffeval/app_error"
	"staffeval/repository"
	"staffeval/service"
	"staffeval/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StaffController struct {
	staffService *service.StaffService
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{
		staffService: service.NewStaffService(db),
	}
}

func setupStaffController(db *gorm.DB) []RouteInfo {
	e := NewStaffController(db)
	basePath := "/staff"
	admin := []repository.Role{repository.RoleAdmin}
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getAllStaffHandler(), Authenticated: true},
		{Method: "GET", Path: "/:staff_id", HandlerFunc: e.getStaffHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createStaffHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "PATCH", Path: "/:staff_id", HandlerFunc: e.updateStaffHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:staff_id", HandlerFunc: e.deleteStaffHandler(), Authenticated: true, RequiredRoles: admin},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetAllStaff
// @Description Fetches all staff members
// @Tags staff
// @Produce json
// @Success 200 {array} Staff
// @Security BearerAuth
// @Router /staff [get]
func (e *StaffController) getAllStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, err := e.staffService.GetAll()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(staff, toStaffResponse))
	}
}

// @id GetStaff
// @Description Fetches a staff member with organization unit and groups
// @Tags staff
// @Produce json
// @Param staff_id path int true "Staff Id"
// @Success 200 {object} Staff
// @Security BearerAuth
// @Router /staff/{staff_id} [get]
func (e *StaffController) getStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		staffId, ok := idParam(c, "staff_id")
		if !ok {
			return
		}
		staff, err := e.staffService.GetById(staffId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toStaffResponse(staff))
	}
}

// @id CreateStaff
// @Description Creates a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body StaffCreate true "Staff"
// @Success 201 {object} Staff
// @Security BearerAuth
// @Router /staff [post]
func (e *StaffController) createStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var staff StaffCreate
		if err := c.ShouldBindJSON(&staff); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbStaff, err := e.staffService.Create(staff.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toStaffResponse(dbStaff))
	}
}

// @id UpdateStaff
// @Description Updates a staff member. Non admins can only update their own profile
// @Tags staff
// @Accept json
// @Produce json
// @Param staff_id path int true "Staff Id"
// @Param staff body StaffCreate true "Staff"
// @Success 200 {object} Staff
// @Security BearerAuth
// @Router /staff/{staff_id} [patch]
func (e *StaffController) updateStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		staffId, ok := idParam(c, "staff_id")
		if !ok {
			return
		}
		var staff StaffCreate
		if err := c.ShouldBindJSON(&staff); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbStaff, err := e.staffService.Update(staffId, staff.toModel(), getActor(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toStaffResponse(dbStaff))
	}
}

// @id DeleteStaff
// @Description Deletes a staff member
// @Tags staff
// @Param staff_id path int true "Staff Id"
// @Success 204
// @Security BearerAuth
// @Router /staff/{staff_id} [delete]
func (e *StaffController) deleteStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		staffId, ok := idParam(c, "staff_id")
		if !ok {
			return
		}
		if err := e.staffService.Delete(staffId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

type StaffCreate struct {
	Name               *string `json:"name"`
	PersonalEmail      *string `json:"personal_email" binding:"omitempty,email"`
	SchoolEmail        *string `json:"school_email" binding:"omitempty,email"`
	StaffCode          *string `json:"staff_code"`
	Sex                *int    `json:"sex"`
	Birthday           *string `json:"birthday"`
	Mobile             *string `json:"mobile"`
	AcademicRank       *string `json:"academic_rank"`
	AcademicDegree     *string `json:"academic_degree"`
	BankAccount        *string `json:"bank_account"`
	OrganizationUnitId *int    `json:"organization_unit_id"`
}

type Staff struct {
	Id                 int               `json:"id" binding:"required"`
	Name               *string           `json:"name"`
	PersonalEmail      *string           `json:"personal_email"`
	SchoolEmail        *string           `json:"school_email"`
	StaffCode          *string           `json:"staff_code"`
	Sex                *int              `json:"sex"`
	Birthday           *string           `json:"birthday"`
	Mobile             *string           `json:"mobile"`
	AcademicRank       *string           `json:"academic_rank"`
	AcademicDegree     *string           `json:"academic_degree"`
	BankAccount        *string           `json:"bank_account"`
	OrganizationUnitId *int              `json:"organization_unit_id"`
	OrganizationUnit   *OrganizationUnit `json:"organization_unit,omitempty"`
	Groups             []*Group          `json:"groups,omitempty"`
}

func (s *StaffCreate) toModel() *repository.Staff {
	return &repository.Staff{
		Name:               s.Name,
		PersonalEmail:      s.PersonalEmail,
		SchoolEmail:        s.SchoolEmail,
		StaffCode:          s.StaffCode,
		Sex:                s.Sex,
		Birthday:           s.Birthday,
		Mobile:             s.Mobile,
		AcademicRank:       s.AcademicRank,
		AcademicDegree:     s.AcademicDegree,
		BankAccount:        s.BankAccount,
		OrganizationUnitID: s.OrganizationUnitId,
	}
}

func toStaffResponse(staff *repository.Staff) *Staff {
	response := &Staff{
		Id:                 staff.ID,
		Name:               staff.Name,
		PersonalEmail:      staff.PersonalEmail,
		SchoolEmail:        staff.SchoolEmail,
		StaffCode:          staff.StaffCode,
		Sex:                staff.Sex,
		Birthday:           staff.Birthday,
		Mobile:             staff.Mobile,
		AcademicRank:       staff.AcademicRank,
		AcademicDegree:     staff.AcademicDegree,
		BankAccount:        staff.BankAccount,
		OrganizationUnitId: staff.OrganizationUnitID,
	}
	if staff.OrganizationUnit != nil {
		response.OrganizationUnit = toOrganizationUnitResponse(staff.OrganizationUnit)
	}
	for _, membership := range staff.StaffGroups {
		if membership.Group != nil {
			response.Groups = append(response.Groups, toGroupResponse(membership.Group))
		}
	}
	return response
}
