package repository

import (
	"gorm.io/gorm"
)

type Staff struct {
	ID                 int     `gorm:"primaryKey"`
	Name               *string `gorm:"null"`
	PersonalEmail      *string `gorm:"null"`
	SchoolEmail        *string `gorm:"null"`
	StaffCode          *string `gorm:"null"`
	Sex                *int    `gorm:"null"`
	Birthday           *string `gorm:"null"`
	Mobile             *string `gorm:"null"`
	AcademicRank       *string `gorm:"null"`
	AcademicDegree     *string `gorm:"null"`
	BankAccount        *string `gorm:"null"`
	OrganizationUnitID *int    `gorm:"null;index"`

	OrganizationUnit *OrganizationUnit `gorm:"foreignKey:OrganizationUnitID;constraint:OnDelete:SET NULL;"`
	StaffGroups      []*StaffGroup     `gorm:"foreignKey:StaffID"`
}

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) FindAll() ([]*Staff, error) {
	staff := make([]*Staff, 0)
	result := r.DB.Preload("OrganizationUnit").Order("id ASC").Find(&staff)
	if result.Error != nil {
		return nil, result.Error
	}
	return staff, nil
}

func (r *StaffRepository) GetById(id int, preloads ...string) (*Staff, error) {
	var staff Staff
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&staff, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &staff, nil
}

func (r *StaffRepository) Save(staff *Staff) (*Staff, error) {
	result := r.DB.Omit("OrganizationUnit", "StaffGroups").Save(staff)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.GetById(staff.ID, "OrganizationUnit")
}

func (r *StaffRepository) Delete(id int) error {
	return r.DB.Delete(&Staff{}, id).Error
}
