package main

import (
	"flag"
	"log"

	"go-hubstock-ws/internal/model"
	"go-hubstock-ws/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

// Standalone reseed tool: restores the default catalog, outlets, and
// hub stock. With -reset-stock it also rewrites existing hub quantities
// back to the defaults (outlet stock is left alone).
func main() {
	resetStock := flag.Bool("reset-stock", false, "overwrite hub stock quantities with the defaults")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()
	db.AutoMigrate(&model.Outlet{}, &model.Product{}, &model.StockEntry{})

	for _, outlet := range model.DefaultOutlets() {
		o := outlet
		o.CreatedBy = "seed"
		o.UpdatedBy = "seed"
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&o).Error; err != nil {
			log.Printf("Warning: outlet %s: %v", o.Code, err)
		}
	}

	for _, product := range model.DefaultProducts() {
		p := product
		p.CreatedBy = "seed"
		p.UpdatedBy = "seed"
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&p).Error; err != nil {
			log.Printf("Warning: product %s: %v", p.SKU, err)
		}
	}

	for sku, qty := range model.DefaultHubStock() {
		entry := model.StockEntry{LocationCode: model.HubCode, SKU: sku, Quantity: qty}
		entry.CreatedBy = "seed"
		entry.UpdatedBy = "seed"

		conflict := clause.OnConflict{DoNothing: true}
		if *resetStock {
			conflict = clause.OnConflict{
				Columns:   []clause.Column{{Name: "location_code"}, {Name: "sku"}},
				DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
			}
		}
		if err := db.Clauses(conflict).Create(&entry).Error; err != nil {
			log.Printf("Warning: hub stock %s: %v", sku, err)
		}
	}

	log.Println("Seed complete")
}
