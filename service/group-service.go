package service

import (
	"context"
	"staffeval/repository"
	"staffeval/utils"

	"gorm.io/gorm"
)

type GroupService struct {
	groupRepository *repository.GroupRepository
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{
		groupRepository: repository.NewGroupRepository(db),
	}
}

func (s *GroupService) GetAll() ([]*repository.Group, error) {
	return s.groupRepository.FindAll()
}

func (s *GroupService) GetById(id int) (*repository.Group, error) {
	group, err := s.groupRepository.GetById(id, "OrganizationUnit", "StaffGroups", "StaffGroups.Staff")
	if err != nil {
		return nil, notFound(err, "Group", id)
	}
	return group, nil
}

func (s *GroupService) GetMembers(ctx context.Context, id int) ([]*repository.Staff, error) {
	if _, err := s.groupRepository.GetById(id); err != nil {
		return nil, notFound(err, "Group", id)
	}
	return s.groupRepository.MembersOf(ctx, id)
}

func (s *GroupService) Create(group *repository.Group) (*repository.Group, error) {
	group.ID = 0
	return s.groupRepository.Save(group)
}

func (s *GroupService) Update(id int, update *repository.Group) (*repository.Group, error) {
	group, err := s.groupRepository.GetById(id)
	if err != nil {
		return nil, notFound(err, "Group", id)
	}
	group.Name = update.Name
	group.OrganizationUnitID = update.OrganizationUnitID
	return s.groupRepository.Save(group)
}

// UpdateMembers replaces the roster of a group and returns the new members.
func (s *GroupService) UpdateMembers(ctx context.Context, id int, staffIds []int) ([]*repository.Staff, error) {
	if _, err := s.groupRepository.GetById(id); err != nil {
		return nil, notFound(err, "Group", id)
	}
	if err := s.groupRepository.ReplaceMembers(ctx, id, utils.Uniques(staffIds)); err != nil {
		return nil, err
	}
	return s.groupRepository.MembersOf(ctx, id)
}

func (s *GroupService) Delete(id int) error {
	if _, err := s.groupRepository.GetById(id); err != nil {
		return notFound(err, "Group", id)
	}
	return s.groupRepository.Delete(id)
}
