package repository

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type Group struct {
	ID                 int    `gorm:"primaryKey"`
	Name               string `gorm:"not null"`
	OrganizationUnitID *int   `gorm:"null;index"`

	OrganizationUnit *OrganizationUnit `gorm:"foreignKey:OrganizationUnitID;constraint:OnDelete:SET NULL;"`
	StaffGroups      []*StaffGroup     `gorm:"foreignKey:GroupID"`
}

// StaffGroup is the membership of a staff member in a group. The composite
// primary key guarantees at most one row per pair.
type StaffGroup struct {
	StaffID int `gorm:"primaryKey;autoIncrement:false"`
	GroupID int `gorm:"primaryKey;autoIncrement:false;index"`

	Staff *Staff `gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE;"`
	Group *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE;"`
}

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) FindAll() ([]*Group, error) {
	groups := make([]*Group, 0)
	result := r.DB.Preload("OrganizationUnit").Order("id ASC").Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}
	return groups, nil
}

func (r *GroupRepository) GetById(id int, preloads ...string) (*Group, error) {
	var group Group
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&group, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &group, nil
}

func (r *GroupRepository) Save(group *Group) (*Group, error) {
	result := r.DB.Omit("OrganizationUnit", "StaffGroups").Save(group)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.GetById(group.ID, "OrganizationUnit")
}

func (r *GroupRepository) Delete(id int) error {
	return r.DB.Delete(&Group{}, id).Error
}

// ReplaceMembers swaps the whole roster of a group for staffIds in one transaction.
func (r *GroupRepository) ReplaceMembers(ctx context.Context, groupId int, staffIds []int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", groupId).Delete(&StaffGroup{}).Error; err != nil {
			return err
		}
		if len(staffIds) == 0 {
			return nil
		}
		memberships := make([]*StaffGroup, 0, len(staffIds))
		for _, staffId := range staffIds {
			memberships = append(memberships, &StaffGroup{StaffID: staffId, GroupID: groupId})
		}
		return tx.Omit("Staff", "Group").Create(&memberships).Error
	})
}

func (r *GroupRepository) IsMember(ctx context.Context, staffId int, groupId int) (bool, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("IsMember"))
	defer timer.ObserveDuration()
	var count int64
	result := r.DB.WithContext(ctx).Model(&StaffGroup{}).
		Where("staff_id = ? AND group_id = ?", staffId, groupId).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *GroupRepository) MembersOf(ctx context.Context, groupId int) ([]*Staff, error) {
	memberships := make([]*StaffGroup, 0)
	result := r.DB.WithContext(ctx).Preload("Staff").
		Where("group_id = ?", groupId).
		Order("staff_id ASC").
		Find(&memberships)
	if result.Error != nil {
		return nil, result.Error
	}
	staff := make([]*Staff, 0, len(memberships))
	for _, membership := range memberships {
		if membership.Staff != nil {
			staff = append(staff, membership.Staff)
		}
	}
	return staff, nil
}

func (r *GroupRepository) GroupsOf(ctx context.Context, staffId int) ([]*Group, error) {
	memberships := make([]*StaffGroup, 0)
	result := r.DB.WithContext(ctx).Preload("Group").
		Where("staff_id = ?", staffId).
		Order("group_id ASC").
		Find(&memberships)
	if result.Error != nil {
		return nil, result.Error
	}
	groups := make([]*Group, 0, len(memberships))
	for _, membership := range memberships {
		if membership.Group != nil {
			groups = append(groups, membership.Group)
		}
	}
	return groups, nil
}

func (r *GroupRepository) Memberships(ctx context.Context) ([]*StaffGroup, error) {
	memberships := make([]*StaffGroup, 0)
	result := r.DB.WithContext(ctx).Preload("Staff").Preload("Group").
		Order("group_id ASC, staff_id ASC").
		Find(&memberships)
	if result.Error != nil {
		return nil, result.Error
	}
	return memberships, nil
}
