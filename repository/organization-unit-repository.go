package repository

import (
	"gorm.io/gorm"
)

type OrganizationUnit struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

type OrganizationUnitRepository struct {
	DB *gorm.DB
}

func NewOrganizationUnitRepository(db *gorm.DB) *OrganizationUnitRepository {
	return &OrganizationUnitRepository{DB: db}
}

func (r *OrganizationUnitRepository) FindAll() ([]*OrganizationUnit, error) {
	units := make([]*OrganizationUnit, 0)
	result := r.DB.Order("id ASC").Find(&units)
	if result.Error != nil {
		return nil, result.Error
	}
	return units, nil
}

func (r *OrganizationUnitRepository) GetById(id int) (*OrganizationUnit, error) {
	var unit OrganizationUnit
	result := r.DB.First(&unit, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &unit, nil
}

func (r *OrganizationUnitRepository) Create(unit *OrganizationUnit) (*OrganizationUnit, error) {
	result := r.DB.Create(unit)
	if result.Error != nil {
		return nil, result.Error
	}
	return unit, nil
}

func (r *OrganizationUnitRepository) Save(unit *OrganizationUnit) (*OrganizationUnit, error) {
	result := r.DB.Save(unit)
	if result.Error != nil {
		return nil, result.Error
	}
	return unit, nil
}

func (r *OrganizationUnitRepository) Delete(id int) error {
	return r.DB.Delete(&OrganizationUnit{}, id).Error
}
