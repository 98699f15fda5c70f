package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"wanderbook/config"
	"wanderbook/database"
	"wanderbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()
	experienceColl := db.Collection("experiences")
	promoColl := db.Collection("promo_codes")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing catalog data.
	if _, err := experienceColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear experiences collection: %v", err)
	}
	if _, err := promoColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear promo codes collection: %v", err)
	}

	type seedExperience struct {
		title       string
		description string
		location    string
		category    string
		price       float64
		duration    string
		rating      float64
		reviews     int
		highlights  []string
		included    []string
		notIncluded []string
		slotTimes   []string
		capacity    int
	}

	catalog := []seedExperience{
		{
			title:       "Sunrise Kayaking on the Backwaters",
			description: "Paddle through quiet mangrove channels as the sun comes up. Kayaking experience for all skill levels with a certified guide.",
			location:    "Alleppey",
			category:    "water",
			price:       1200,
			duration:    "3 hours",
			rating:      4.8,
			reviews:     214,
			highlights:  []string{"Sunrise views", "Mangrove channels", "Small groups"},
			included:    []string{"Kayak and paddle", "Life jacket", "Guide"},
			notIncluded: []string{"Transport to launch point"},
			slotTimes:   []string{"05:30", "06:30"},
			capacity:    8,
		},
		{
			title:       "Old Town Street Food Walk",
			description: "Taste your way through the oldest lanes of the city with a local host. Seven stops, one evening.",
			location:    "Fort Kochi",
			category:    "food",
			price:       800,
			duration:    "2.5 hours",
			rating:      4.6,
			reviews:     167,
			highlights:  []string{"Seven tastings", "Local host", "Evening walk"},
			included:    []string{"All tastings", "Bottled water"},
			notIncluded: []string{"Extra drinks"},
			slotTimes:   []string{"17:00", "19:30"},
			capacity:    12,
		},
		{
			title:       "Western Ghats Trek and Picnic",
			description: "A guided half-day trek to a ridge viewpoint, ending with a picnic lunch above the tea estates.",
			location:    "Munnar",
			category:    "adventure",
			price:       1500,
			duration:    "6 hours",
			rating:      4.9,
			reviews:     98,
			highlights:  []string{"Ridge viewpoint", "Tea estate trails", "Picnic lunch"},
			included:    []string{"Guide", "Picnic lunch", "Trail permits"},
			notIncluded: []string{"Hiking boots"},
			slotTimes:   []string{"07:00"},
			capacity:    10,
		},
		{
			title:       "Pottery Workshop with a Master Artisan",
			description: "Throw your first pot on the wheel in a working studio. All materials provided, pieces fired and shipped.",
			location:    "Jaipur",
			category:    "culture",
			price:       950,
			duration:    "2 hours",
			rating:      4.7,
			reviews:     142,
			highlights:  []string{"Wheel throwing", "Working studio", "Take your piece home"},
			included:    []string{"Clay and tools", "Apron", "Firing and shipping"},
			notIncluded: []string{"Additional pieces"},
			slotTimes:   []string{"10:00", "14:00", "16:30"},
			capacity:    6,
		},
	}

	// Offer slots for the next 14 days.
	now := time.Now()
	var docs []interface{}
	for _, e := range catalog {
		var dates []models.AvailableDate
		for d := 0; d < 14; d++ {
			day := now.AddDate(0, 0, d+1).Format("2006-01-02")
			var slots []models.Slot
			for _, t := range e.slotTimes {
				slots = append(slots, models.Slot{Time: t, Available: e.capacity, Booked: 0})
			}
			dates = append(dates, models.AvailableDate{Date: day, Slots: slots})
		}

		docs = append(docs, models.Experience{
			ID:             uuid.New().String(),
			Title:          e.title,
			Description:    e.description,
			Location:       e.location,
			Category:       e.category,
			Price:          e.price,
			Duration:       e.duration,
			Image:          fmt.Sprintf("https://images.wanderbook.example/%s.jpg", uuid.New().String()),
			Rating:         e.rating,
			ReviewCount:    e.reviews,
			Highlights:     e.highlights,
			Included:       e.included,
			NotIncluded:    e.notIncluded,
			AvailableDates: dates,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	if _, err := experienceColl.InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to insert experiences: %v", err)
	}

	promos := []interface{}{
		models.PromoCode{
			ID:         uuid.New().String(),
			Code:       "SAVE10",
			Type:       models.PromoTypePercentage,
			Value:      10,
			Active:     true,
			ExpiryDate: now.AddDate(0, 6, 0),
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		models.PromoCode{
			ID:         uuid.New().String(),
			Code:       "FLAT500",
			Type:       models.PromoTypeFlat,
			Value:      500,
			Active:     true,
			ExpiryDate: now.AddDate(0, 3, 0),
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		models.PromoCode{
			ID:         uuid.New().String(),
			Code:       "BYGONE",
			Type:       models.PromoTypePercentage,
			Value:      25,
			Active:     true,
			ExpiryDate: now.AddDate(0, 0, -30),
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
	if _, err := promoColl.InsertMany(ctx, promos); err != nil {
		log.Fatalf("Failed to insert promo codes: %v", err)
	}

	log.Printf("Seeded %d experiences and %d promo codes", len(docs), len(promos))
}
