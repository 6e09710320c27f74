package service

import (
	"errors"
	"staffeval/app_error"
	"staffeval/repository"

	"gorm.io/gorm"
)

type OrganizationUnitService struct {
	organizationUnitRepository *repository.OrganizationUnitRepository
}

func NewOrganizationUnitService(db *gorm.DB) *OrganizationUnitService {
	return &OrganizationUnitService{
		organizationUnitRepository: repository.NewOrganizationUnitRepository(db),
	}
}

func (s *OrganizationUnitService) GetAll() ([]*repository.OrganizationUnit, error) {
	return s.organizationUnitRepository.FindAll()
}

func (s *OrganizationUnitService) GetById(id int) (*repository.OrganizationUnit, error) {
	unit, err := s.organizationUnitRepository.GetById(id)
	if err != nil {
		return nil, notFound(err, "Organization unit", id)
	}
	return unit, nil
}

func (s *OrganizationUnitService) Create(unit *repository.OrganizationUnit) (*repository.OrganizationUnit, error) {
	_, err := s.organizationUnitRepository.GetById(unit.ID)
	if err == nil {
		return nil, app_error.Newf(app_error.KindConflict, "Organization unit with ID %d already exists", unit.ID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.organizationUnitRepository.Create(unit)
}

func (s *OrganizationUnitService) Update(id int, name string) (*repository.OrganizationUnit, error) {
	unit, err := s.GetById(id)
	if err != nil {
		return nil, err
	}
	unit.Name = name
	return s.organizationUnitRepository.Save(unit)
}

func (s *OrganizationUnitService) Delete(id int) error {
	if _, err := s.GetById(id); err != nil {
		return err
	}
	return s.organizationUnitRepository.Delete(id)
}
