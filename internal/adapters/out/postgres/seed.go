package postgres

import (
	"context"

	"kitchen/internal/adapters/out/postgres/menurepo"
	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
	)
}

// Seed inserts the starter household data. Users and menu items are seeded
// independently, each only when its table is empty, so a redeploy never
// duplicates or overwrites data the household has since changed.
func Seed(ctx context.Context, db *gorm.DB) error {
	if err := seedUsers(ctx, db); err != nil {
		return err
	}
	return seedMenu(ctx, db)
}

func seedUsers(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&userrepo.UserDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []userrepo.UserDTO{
		{Username: "dad", Name: "Dad", Role: "chef", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=dad"},
		{Username: "mom", Name: "Mom", Role: "admin", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=mom"},
		{Username: "mia", Name: "Mia", Role: "member", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=mia"},
		{Username: "leo", Name: "Leo", Role: "member", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=leo"},
	}

	return db.WithContext(ctx).Create(&users).Error
}

func seedMenu(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&menurepo.MenuItemDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []menurepo.MenuItemDTO{
		{
			Name:            "Braised Pork Belly",
			Description:     "Slow-cooked home classic, sweet and savory",
			Image:           "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=300",
			PreparationTime: 45,
			Available:       true,
			Ingredients:     "pork belly, soy sauce, rock sugar, cooking wine, scallion, ginger",
		},
		{
			Name:            "Kung Pao Chicken",
			Description:     "Sichuan favorite, tangy with a mild kick",
			Image:           "https://images.unsplash.com/photo-1603073135628-d6ee83f08e4c?w=300",
			PreparationTime: 30,
			Available:       true,
			Ingredients:     "chicken breast, peanuts, dried chili, scallion, garlic",
		},
		{
			Name:            "Mapo Tofu",
			Description:     "Silky tofu in a numbing, spicy sauce",
			Image:           "https://images.unsplash.com/photo-1584255014406-2a68ea38e48c?w=300",
			PreparationTime: 25,
			Available:       true,
			Ingredients:     "soft tofu, ground pork, chili bean paste, Sichuan pepper, scallion",
		},
		{
			Name:            "Sweet and Sour Ribs",
			Description:     "Appetizing glaze the whole family likes",
			Image:           "https://images.unsplash.com/photo-1600891964092-4316c288032e?w=300",
			PreparationTime: 50,
			Available:       true,
			Ingredients:     "pork ribs, ketchup, vinegar, sugar, soy sauce",
		},
		{
			Name:            "Pepper Potato Strips",
			Description:     "Light and crisp everyday stir-fry",
			Image:           "https://images.unsplash.com/photo-1553621042-f6e147245754?w=300",
			PreparationTime: 15,
			Available:       true,
			Ingredients:     "potato, green pepper, garlic, vinegar",
		},
		{
			Name:            "Steamed Egg Custard",
			Description:     "Smooth and gentle, good for kids",
			Image:           "https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?w=300",
			PreparationTime: 20,
			Available:       true,
			Ingredients:     "egg, warm water, salt, sesame oil",
		},
		{
			Name:            "Tomato and Egg Stir-fry",
			Description:     "The classic pairing, ready in minutes",
			Image:           "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=300",
			PreparationTime: 20,
			Available:       true,
			Ingredients:     "tomato, egg, sugar, salt",
		},
		{
			Name:            "Leafy Greens Soup",
			Description:     "Light broth to round out the table",
			Image:           "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=300",
			PreparationTime: 10,
			Available:       true,
			Ingredients:     "greens, stock, salt, white pepper",
		},
	}

	return db.WithContext(ctx).Create(&items).Error
}
