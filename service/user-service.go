package service

import (
	"errors"
	"staffeval/app_error"
	"staffeval/repository"
	"staffeval/utils"

	"gorm.io/gorm"
)

type UserService struct {
	userRepository  *repository.UserRepository
	staffRepository *repository.StaffRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		userRepository:  repository.NewUserRepository(db),
		staffRepository: repository.NewStaffRepository(db),
	}
}

func (s *UserService) GetUserById(userId int, preloads ...string) (*repository.User, error) {
	user, err := s.userRepository.GetUserById(userId, preloads...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.New(app_error.KindNotFound, "User not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetProfile(userId int) (*repository.User, error) {
	return s.GetUserById(userId, "Staff")
}

func (s *UserService) GetProfiles() ([]*repository.User, error) {
	return s.userRepository.GetAllUsers("Staff")
}

// LinkStaff attaches a staff profile to a user. A staff member can belong to one user only.
func (s *UserService) LinkStaff(userId int, staffId int) (*repository.User, error) {
	user, err := s.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	if _, err := s.staffRepository.GetById(staffId); err != nil {
		return nil, notFound(err, "Staff", staffId)
	}
	existing, err := s.userRepository.GetUserByStaffId(staffId)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.ID != userId {
		return nil, app_error.New(app_error.KindConflict, "Staff is already linked to another profile")
	}
	user.StaffID = &staffId
	if _, err := s.userRepository.SaveUser(user); err != nil {
		return nil, err
	}
	return s.GetProfile(userId)
}

func (s *UserService) GetUsersWithRoles() ([]*repository.User, error) {
	return s.userRepository.GetAllUsers("Staff")
}

func validRole(role string) bool {
	return utils.Contains(repository.Roles, repository.Role(role))
}

func (s *UserService) AddRole(userId int, role string) (*repository.User, error) {
	if !validRole(role) {
		return nil, app_error.Newf(app_error.KindInvalidInput, "Unknown role %s", role)
	}
	user, err := s.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	if utils.Contains(user.Roles, role) {
		return nil, app_error.New(app_error.KindConflict, "User already has this role")
	}
	user.Roles = append(user.Roles, role)
	return s.userRepository.SaveUser(user)
}

func (s *UserService) RemoveRole(userId int, role string) (*repository.User, error) {
	user, err := s.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	if !utils.Contains(user.Roles, role) {
		return nil, app_error.New(app_error.KindNotFound, "Role not found for this user")
	}
	user.Roles = utils.Filter(user.Roles, func(r string) bool { return r != role })
	return s.userRepository.SaveUser(user)
}
