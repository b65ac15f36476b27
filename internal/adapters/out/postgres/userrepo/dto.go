// Package userrepo persists the household member directory.
package userrepo

import "kitchen/internal/core/domain/model/user"

// UserDTO represents the database structure for household members.
type UserDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"uniqueIndex;not null"`
	Name     string `gorm:"not null"`
	Role     string `gorm:"not null"`
	Avatar   string `gorm:"not null;default:''"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return &user.User{
		ID:       dto.ID,
		Username: dto.Username,
		Name:     dto.Name,
		Role:     role,
		Avatar:   dto.Avatar,
	}, nil
}
