package helper

import (
	"bookit/infras/postgres"
	"bookit/shared/timezone"
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	seedDays         = 5
	seedSlotCapacity = 8
	seedDescription  = "Curated small-group experience. Certified guide. Safety first with gear included."
)

var seedTimes = []string{"07:00 am", "9:00 am", "11:00 am", "1:00 pm"}

type seedExperience struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Location    string `db:"location"`
	Price       int    `db:"price"`
	ImageURL    string `db:"image_url"`
	Duration    string `db:"duration"`
	Category    string `db:"category"`
}

// unsplashQuery precedes the width parameter on most seed image URLs.
const unsplashQuery = "?ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&q=80&w="

var seedExperiences = []seedExperience{
	{Title: "Kayaking", Location: "Udupi", Price: 999, Duration: "3 hours", Category: "Water Sports",
		ImageURL: "https://images.unsplash.com/photo-1569965335962-2317ff2a7658" + unsplashQuery + "738"},
	{Title: "Nandi Hills Sunrise", Location: "Bangalore", Price: 899, Duration: "4 hours", Category: "Adventure",
		ImageURL: "https://plus.unsplash.com/premium_photo-1663091802527-d22997fe51f8" + unsplashQuery + "1170"},
	{Title: "Coffee Trail", Location: "Coorg", Price: 1299, Duration: "5 hours", Category: "Nature",
		ImageURL: "https://images.unsplash.com/photo-1635958067037-4c1c034eb528" + unsplashQuery + "707"},
	{Title: "Kayaking", Location: "Udupi, Karnataka", Price: 999, Duration: "3 hours", Category: "Water Sports",
		ImageURL: "https://images.unsplash.com/photo-1689841667551-eeaee48f2247" + unsplashQuery + "1170"},
	{Title: "Nandi Hills Sunrise", Location: "Bangalore", Price: 899, Duration: "4 hours", Category: "Adventure",
		ImageURL: "https://plus.unsplash.com/premium_photo-1706626270683-96ce29b74b6d" + unsplashQuery + "687"},
	{Title: "Boat Cruise", Location: "Sunderban", Price: 999, Duration: "2 hours", Category: "Water Sports",
		ImageURL: "https://images.unsplash.com/photo-1569263979104-865ab7cd8d13?w=800&q=80"},
	{Title: "Bunjee Jumping", Location: "Manali", Price: 999, Duration: "1 hour", Category: "Adventure",
		ImageURL: "https://images.unsplash.com/photo-1559677624-3c956f10d431" + unsplashQuery + "1025"},
	{Title: "Coffee Trail", Location: "Coorg", Price: 1299, Duration: "5 hours", Category: "Nature",
		ImageURL: "https://images.unsplash.com/photo-1447933601403-0c6688de566e?w=800&q=80"},
}

// Seed replaces all catalog data with a fixed set of experiences, each with four
// slots a day for the next five days. Existing bookings are removed.
func Seed(ctx context.Context, db *postgres.Connection) error {
	slotCount := 0

	err := db.WithTransaction(ctx, nil, func(tx *sqlx.Tx) error {
		for _, table := range []string{"bookings", "slots", "experiences"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		today := timezone.Today()

		for _, exp := range seedExperiences {
			exp.ID = uuid.NewString()
			exp.Description = seedDescription

			_, err := tx.NamedExecContext(ctx, `INSERT INTO experiences (id, title, description, location, price, image_url, duration, category)
				VALUES (:id, :title, :description, :location, :price, :image_url, :duration, :category)`, exp)
			if err != nil {
				return fmt.Errorf("failed to insert experience %s: %w", exp.Title, err)
			}

			for day := 1; day <= seedDays; day++ {
				date := today.AddDate(0, 0, day)

				for _, slotTime := range seedTimes {
					booked := 0
					if rand.Float64() > 0.7 { //nolint:gosec,mnd
						booked = rand.IntN(4) //nolint:gosec,mnd
					}

					_, err := tx.ExecContext(ctx,
						`INSERT INTO slots (id, experience_id, date, time, capacity, booked_count) VALUES ($1, $2, $3, $4, $5, $6)`,
						uuid.NewString(), exp.ID, date, slotTime, seedSlotCapacity, booked,
					)
					if err != nil {
						return fmt.Errorf("failed to insert slot: %w", err)
					}

					slotCount++
				}
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	log.Info().Int("experiences", len(seedExperiences)).Int("slots", slotCount).Msg("Database seeded successfully")

	return nil
}
