package service

import (
	"staffeval/app_error"
	"staffeval/auth"
	"staffeval/repository"

	"gorm.io/gorm"
)

type StaffService struct {
	staffRepository *repository.StaffRepository
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{
		staffRepository: repository.NewStaffRepository(db),
	}
}

func (s *StaffService) GetAll() ([]*repository.Staff, error) {
	return s.staffRepository.FindAll()
}

func (s *StaffService) GetById(id int) (*repository.Staff, error) {
	staff, err := s.staffRepository.GetById(id, "OrganizationUnit", "StaffGroups", "StaffGroups.Group")
	if err != nil {
		return nil, notFound(err, "Staff", id)
	}
	return staff, nil
}

func (s *StaffService) Create(staff *repository.Staff) (*repository.Staff, error) {
	return s.staffRepository.Save(staff)
}

// Update applies the non-nil fields of update. Only admins may edit other profiles.
func (s *StaffService) Update(id int, update *repository.Staff, actor auth.Actor) (*repository.Staff, error) {
	staff, err := s.staffRepository.GetById(id)
	if err != nil {
		return nil, notFound(err, "Staff", id)
	}
	isOwnProfile := actor.StaffId != nil && *actor.StaffId == id
	if !actor.HasRole(string(repository.RoleAdmin)) && !isOwnProfile {
		return nil, app_error.New(app_error.KindForbidden, "You can only update your own profile")
	}
	mergeStaff(staff, update)
	return s.staffRepository.Save(staff)
}

func (s *StaffService) Delete(id int) error {
	if _, err := s.staffRepository.GetById(id); err != nil {
		return notFound(err, "Staff", id)
	}
	return s.staffRepository.Delete(id)
}

func mergeStaff(staff *repository.Staff, update *repository.Staff) {
	set := func(target **string, value *string) {
		if value != nil {
			*target = value
		}
	}
	set(&staff.Name, update.Name)
	set(&staff.PersonalEmail, update.PersonalEmail)
	set(&staff.SchoolEmail, update.SchoolEmail)
	set(&staff.StaffCode, update.StaffCode)
	set(&staff.Birthday, update.Birthday)
	set(&staff.Mobile, update.Mobile)
	set(&staff.AcademicRank, update.AcademicRank)
	set(&staff.AcademicDegree, update.AcademicDegree)
	set(&staff.BankAccount, update.BankAccount)
	if update.Sex != nil {
		staff.Sex = update.Sex
	}
	if update.OrganizationUnitID != nil {
		staff.OrganizationUnitID = update.OrganizationUnitID
		staff.OrganizationUnit = nil
	}
}
