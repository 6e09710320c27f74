package repository

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

var Roles = []Role{RoleAdmin, RoleModerator, RoleUser}

type User struct {
	ID           int            `gorm:"primaryKey"`
	Email        string         `gorm:"not null;uniqueIndex"`
	PasswordHash string         `gorm:"not null"`
	StaffID      *int           `gorm:"null;uniqueIndex"`
	Roles        pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`

	Staff *Staff `gorm:"foreignKey:StaffID;constraint:OnDelete:SET NULL;"`
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetUserById(userId int, preloads ...string) (*User, error) {
	var user User
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&user, userId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*User, error) {
	var user User
	result := r.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) GetUserByStaffId(staffId int) (*User, error) {
	var user User
	result := r.DB.First(&user, "staff_id = ?", staffId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) GetAllUsers(preloads ...string) ([]*User, error) {
	users := make([]*User, 0)
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.Order("id ASC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *UserRepository) SaveUser(user *User) (*User, error) {
	result := r.DB.Omit("Staff").Save(user)
	if result.Error != nil {
		return nil, result.Error
	}
	return user, nil
}
