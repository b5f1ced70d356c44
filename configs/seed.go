package configs

import (
	"log"

	"github.com/itsmelouis/kiosko/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedStaff creates the kitchen account once, from env.
func SeedStaff() error {
	db := DB()
	username := getEnv("STAFF_USERNAME", "")
	pass := getEnv("STAFF_PASSWORD", "")
	if username == "" || pass == "" {
		log.Println("skip seeding staff: missing STAFF_USERNAME/STAFF_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Staff{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	staff := entity.Staff{Username: username, Password: string(hash), Role: "staff"}
	return db.Create(&staff).Error
}

// SeedCatalog loads the Kiosko menu on an empty database.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []entity.Category{
		{Name: "Burgers", Slug: "burgers", Position: 1, IconName: "fast-food"},
		{Name: "Poulet", Slug: "poulet", Position: 2, IconName: "restaurant"},
		{Name: "Salades", Slug: "salades", Position: 3, IconName: "leaf"},
		{Name: "Accompagnements", Slug: "accompagnements", Position: 4, IconName: "grid"},
		{Name: "Desserts", Slug: "desserts", Position: 5, IconName: "ice-cream"},
		{Name: "Boissons", Slug: "boissons", Position: 6, IconName: "cafe"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	products := []entity.Product{
		{
			Name:        "Big Kiosko",
			Description: "Notre burger signature avec double steak, fromage, salade, tomates et sauce spéciale",
			BasePrice:   8.90,
			IsAvailable: true,
			CategoryID:  categories[0].ID,
			Options: []entity.ProductOption{
				{Label: "Normal", Kind: entity.KindSize, PriceDelta: 0, IsDefault: true, SortOrder: 1},
				{Label: "XL", Kind: entity.KindSize, PriceDelta: 2.00, SortOrder: 2},
				{Label: "Bacon", Kind: entity.KindExtra, PriceDelta: 1.50, SortOrder: 3},
				{Label: "Oeuf", Kind: entity.KindExtra, PriceDelta: 1.00, SortOrder: 4},
				{Label: "Double fromage", Kind: entity.KindExtra, PriceDelta: 1.00, SortOrder: 5},
			},
		},
		{
			Name:        "Cheese Burger",
			Description: "Steak haché, fromage fondu, ketchup, moutarde, cornichons",
			BasePrice:   5.90,
			IsAvailable: true,
			CategoryID:  categories[0].ID,
			Options: []entity.ProductOption{
				{Label: "Normal", Kind: entity.KindSize, PriceDelta: 0, IsDefault: true, SortOrder: 1},
				{Label: "Double", Kind: entity.KindSize, PriceDelta: 2.50, SortOrder: 2},
				{Label: "Saignant", Kind: entity.KindCooking, PriceDelta: 0, SortOrder: 3},
				{Label: "À point", Kind: entity.KindCooking, PriceDelta: 0, IsDefault: true, SortOrder: 4},
				{Label: "Bien cuit", Kind: entity.KindCooking, PriceDelta: 0, SortOrder: 5},
			},
		},
		{
			Name:        "Double Bacon",
			Description: "Double steak, double bacon, cheddar, oignons frits",
			BasePrice:   10.90,
			IsAvailable: true,
			CategoryID:  categories[0].ID,
		},
		{
			Name:        "Nuggets x6",
			Description: "6 nuggets de poulet croustillants avec sauce au choix",
			BasePrice:   4.90,
			IsAvailable: true,
			CategoryID:  categories[1].ID,
			Options: []entity.ProductOption{
				{Label: "Ketchup", Kind: entity.KindSauce, PriceDelta: 0, IsDefault: true, SortOrder: 1},
				{Label: "BBQ", Kind: entity.KindSauce, PriceDelta: 0, SortOrder: 2},
				{Label: "Curry", Kind: entity.KindSauce, PriceDelta: 0, SortOrder: 3},
			},
		},
		{
			Name:        "Chicken Wrap",
			Description: "Wrap au poulet croustillant, salade, tomate, sauce caesar",
			BasePrice:   6.50,
			IsAvailable: true,
			CategoryID:  categories[1].ID,
		},
		{
			Name:        "Salade César",
			Description: "Salade romaine, poulet grillé, parmesan, croûtons, sauce César",
			BasePrice:   8.50,
			IsAvailable: true,
			CategoryID:  categories[2].ID,
		},
		{
			Name:        "Frites",
			Description: "Frites croustillantes dorées à point",
			BasePrice:   3.50,
			IsAvailable: true,
			CategoryID:  categories[3].ID,
			Options: []entity.ProductOption{
				{Label: "Petite", Kind: entity.KindSize, PriceDelta: 0, IsDefault: true, SortOrder: 1},
				{Label: "Moyenne", Kind: entity.KindSize, PriceDelta: 0.80, SortOrder: 2},
				{Label: "Grande", Kind: entity.KindSize, PriceDelta: 1.50, SortOrder: 3},
			},
		},
		{
			Name:        "Potatoes",
			Description: "Quartiers de pommes de terre épicés",
			BasePrice:   3.90,
			IsAvailable: true,
			CategoryID:  categories[3].ID,
		},
		{
			Name:        "Sundae Chocolat",
			Description: "Glace vanille, sauce chocolat, chantilly",
			BasePrice:   3.00,
			IsAvailable: true,
			CategoryID:  categories[4].ID,
		},
		{
			Name:        "Coca-Cola",
			Description: "Coca-Cola original bien frais",
			BasePrice:   2.90,
			IsAvailable: true,
			CategoryID:  categories[5].ID,
			Options: []entity.ProductOption{
				{Label: "33cl", Kind: entity.KindSize, PriceDelta: 0, IsDefault: true, SortOrder: 1},
				{Label: "50cl", Kind: entity.KindSize, PriceDelta: 0.60, SortOrder: 2},
				{Label: "1L", Kind: entity.KindSize, PriceDelta: 1.20, SortOrder: 3},
			},
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	// demo loyalty card for the showroom kiosk
	demo := entity.User{
		LoyaltyQR: "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d",
		FirstName: "Jean",
		LastName:  "Dupont",
		Points:    150,
	}
	return db.FirstOrCreate(&demo, entity.User{LoyaltyQR: demo.LoyaltyQR}).Error
}
