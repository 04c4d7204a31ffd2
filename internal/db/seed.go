package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

// SeedTestData resets the database and populates it with demo users,
// swipes, matches and a few conversations.
//
// Behavior:
//  1. Clears existing data in all four tables.
//  2. Creates 20 users (10 male, 10 female) scattered around a city
//     center, with birth dates spanning ages ~20-45.
//  3. Generates one-directional swipes (~70% likes) and guarantees a
//     handful of mutual likes, materializing a Match for each.
//  4. Drops a short message exchange into the first two matches.
//
// Compatible with both MySQL and SQLite (used by tests).
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"messages", "matches", "swipes", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	switch db.Dialector.Name() {
	case "mysql":
		for _, table := range []string{"messages", "matches", "swipes", "users"} {
			db.Exec("ALTER TABLE " + table + " AUTO_INCREMENT = 1")
		}
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name IN ('messages', 'matches', 'swipes', 'users')")
	}

	log.Println("Cleared existing data")

	// --- Seed Users (10 male, 10 female) around a city center ---
	const centerLat, centerLon = 40.7128, -74.0060

	names := []string{
		"James", "Oliver", "Noah", "Leo", "Ethan", "Lucas", "Mason", "Henry", "Daniel", "Adam",
		"Emma", "Olivia", "Ava", "Mia", "Sophia", "Isla", "Layla", "Zara", "Chloe", "Amira",
	}

	for i := 1; i <= 20; i++ {
		gender := "male"
		if i > 10 {
			gender = "female"
		}

		// spread users within roughly 40 km of the center
		lat := centerLat + (r.Float64()-0.5)*0.6
		lon := centerLon + (r.Float64()-0.5)*0.6

		age := 20 + r.Intn(26)
		birth := time.Now().AddDate(-age, 0, -r.Intn(300))

		user := User{
			Phone:         fmt.Sprintf("+1555000%04d", i),
			PhoneVerified: true,
			FirstName:     names[i-1],
			BirthDate:     &birth,
			Gender:        gender,
			Bio:           fmt.Sprintf("Hi, I'm %s. Ask me anything.", names[i-1]),
			Latitude:      &lat,
			Longitude:     &lon,
		}

		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
	}
	log.Println("Seeded 20 users.")

	// --- Seed Swipes and Matches ---
	var users []User
	if err := db.Find(&users).Error; err != nil {
		return fmt.Errorf("failed to load seeded users: %w", err)
	}

	seen := map[[2]uint64]bool{}
	matched := 0

	for _, actor := range users {
		for j := 0; j < 8; j++ {
			target := users[r.Intn(len(users))]
			if actor.ID == target.ID || actor.Gender == target.Gender {
				continue
			}
			key := [2]uint64{actor.ID, target.ID}
			if seen[key] {
				continue
			}
			seen[key] = true

			action := ActionPass
			if r.Intn(100) < 70 {
				action = ActionLike
			}

			swipe := Swipe{ActorID: actor.ID, TargetID: target.ID, Action: action}
			if err := db.Create(&swipe).Error; err != nil {
				return fmt.Errorf("failed to seed swipe: %w", err)
			}

			// guarantee some mutual likes, each backed by a Match row
			reverse := [2]uint64{target.ID, actor.ID}
			if action == ActionLike && matched < 5 && !seen[reverse] {
				seen[reverse] = true
				recip := Swipe{ActorID: target.ID, TargetID: actor.ID, Action: ActionLike}
				if err := db.Create(&recip).Error; err != nil {
					return fmt.Errorf("failed to seed reciprocal swipe: %w", err)
				}

				a, b := NormalizePair(actor.ID, target.ID)
				match := Match{UserAID: a, UserBID: b, IsActive: true}
				if err := db.Create(&match).Error; err != nil {
					return fmt.Errorf("failed to seed match: %w", err)
				}
				matched++
			}
		}
	}
	log.Printf("Seeded swipes and %d matches.", matched)

	// --- Seed Messages into the first couple of matches ---
	var matches []Match
	if err := db.Order("id").Limit(2).Find(&matches).Error; err != nil {
		return fmt.Errorf("failed to load seeded matches: %w", err)
	}

	openers := []string{"Hey! How's your week going?", "Hi there :)", "Love your bio!"}
	for _, m := range matches {
		msgs := []Message{
			{MatchID: m.ID, SenderID: m.UserAID, Content: openers[r.Intn(len(openers))], MessageType: "text"},
			{MatchID: m.ID, SenderID: m.UserBID, Content: "Hey, not bad at all. You?", MessageType: "text"},
		}
		if err := db.Create(&msgs).Error; err != nil {
			return fmt.Errorf("failed to seed messages: %w", err)
		}
	}

	return nil
}
