// Package menurepo persists the household menu catalog.
package menurepo

import "kitchen/internal/core/domain/model/menu"

// MenuItemDTO represents the database structure for menu items.
type MenuItemDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Name            string `gorm:"not null"`
	Description     string `gorm:"not null;default:''"`
	Image           string `gorm:"not null"`
	PreparationTime int    `gorm:"not null"`
	Available       bool   `gorm:"not null;default:true"`
	Ingredients     string `gorm:"not null;default:''"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		Image:           item.Image,
		PreparationTime: item.PreparationTime,
		Available:       item.Available,
		Ingredients:     item.Ingredients,
	}
}

func toDomain(dto MenuItemDTO) *menu.Item {
	return &menu.Item{
		ID:              dto.ID,
		Name:            dto.Name,
		Description:     dto.Description,
		Image:           dto.Image,
		PreparationTime: dto.PreparationTime,
		Available:       dto.Available,
		Ingredients:     dto.Ingredients,
	}
}
