package main

import (
	"log"

	"fud_backend/internal/config"
	"fud_backend/internal/models"
)

type itemFixture struct {
	name        string
	description string
	price       float64
	imageURL    string
}

var menuFixtures = []struct {
	name        string
	description string
	items       []itemFixture
}{
	{"Breakfast", "Start your day with energy.", []itemFixture{
		{"Pancakes", "Fluffy pancakes served with syrup and butter.", 600, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274119/pancakes_ow9ucn.jpg"},
		{"Omelette", "3-egg omelette with cheese, tomato and spinach.", 650, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274120/omelette_fj9zzf.jpg"},
		{"Avocado Toast", "Sourdough topped with smashed avocado and chili flakes.", 500, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274119/avocado_toast_tvgego.jpg"},
	}},
	{"Lunch", "Hearty meals for midday hunger.", []itemFixture{
		{"Grilled Chicken Sandwich", "Served with lettuce, tomato, and aioli.", 850, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274120/grilled_chicken_sandwich_siqate.jpg"},
		{"Caesar Salad", "Crisp romaine with croutons, parmesan, and Caesar dressing.", 730, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274119/caesar_salad_ti7is1.jpg"},
		{"Veggie Wrap", "Spinach wrap filled with hummus, cucumber, and roasted veggies.", 690, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274118/veggie_wrap_ajjiju.jpg"},
	}},
	{"Dinner", "Delicious dishes to end your day.", []itemFixture{
		{"Steak Frites", "Grilled sirloin steak served with crispy fries.", 1500, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274119/steak_frites_fdgydc.jpg"},
		{"Salmon Teriyaki", "Pan-seared salmon glazed in teriyaki sauce.", 1350, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274119/salmon_teriyaki_qqv6jk.jpg"},
		{"Vegetable Stir Fry", "Seasonal veggies in garlic soy sauce over rice.", 1000, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274119/vegetable_stir_fry_l7g6g2.jpg"},
		{"Pizza", "Greasy flavor", 1200, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751191799/pizza_fjmt0z.jpg"},
	}},
	{"Drinks", "Refreshing beverages and hot drinks.", []itemFixture{
		{"Iced Latte", "Espresso with chilled milk over ice.", 400, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274120/iced_latte_fv2btx.jpg"},
		{"Smoothie", "Banana, mango, and spinach smoothie.", 450, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274119/smoothie_airuod.jpg"},
		{"Hot Chocolate", "Rich cocoa with whipped cream on top.", 300, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274120/hot_chocolate_cellu0.jpg"},
	}},
	{"Desserts", "Sweet treats and baked goods.", []itemFixture{
		{"Chocolate Cake", "Decadent chocolate cake slice with ganache.", 500, "https://images.unsplash.com/photo-1578985545062-69928b1d9587"},
		{"Cheesecake", "Classic New York cheesecake with berry compote.", 550, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274118/cheesecake_a2erlo.jpg"},
		{"Ice Cream Sundae", "Vanilla ice cream with chocolate syrup and nuts.", 380, "https://res.cloudinary.com/dmbzl8jpm/image/upload/v1751274120/ice_cream_sundae_jwjb8i.jpg"},
	}},
}

// Loads the sample menus so a fresh database has something to browse.
// Idempotent: does nothing when menus already exist.
func main() {
	config.InitDB()
	db := config.GetDB()

	var count int64
	if err := db.Model(&models.Menu{}).Count(&count).Error; err != nil {
		log.Fatalf("could not inspect menus: %v", err)
	}
	if count > 0 {
		log.Println("menus already seeded, nothing to do")
		return
	}

	for _, fixture := range menuFixtures {
		menu := models.Menu{Name: fixture.name, Description: fixture.description, Available: true}
		if err := db.Create(&menu).Error; err != nil {
			log.Fatalf("could not seed menu %q: %v", fixture.name, err)
		}
		for _, it := range fixture.items {
			item := models.MenuItem{
				Name:        it.name,
				Description: it.description,
				Price:       it.price,
				ImageURL:    it.imageURL,
				Available:   true,
				MenuID:      menu.ID,
			}
			if err := db.Create(&item).Error; err != nil {
				log.Fatalf("could not seed menu item %q: %v", it.name, err)
			}
		}
	}

	log.Println("✅ Database seeded!")
}
