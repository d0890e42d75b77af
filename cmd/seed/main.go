// Seeds the database with synthetic interrelated records for development.
// Batches run in strict dependency order; the first failed insert logs the
// error and exits non-zero. Safe to run against an empty, migrated database.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"artmarket-api/config"
	"artmarket-api/database"
	"artmarket-api/internal/domain/auctions"
	"artmarket-api/internal/domain/billing"
	"artmarket-api/internal/domain/profiles"
	"artmarket-api/internal/domain/users"
	"artmarket-api/internal/domain/works"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var firstNames = []string{"Ava", "Liam", "Mia", "Noah", "Zoe", "Eli", "Ivy", "Max", "Lea", "Sam"}
var lastNames = []string{"Moreau", "Keller", "Sato", "Alvarez", "Novak", "Haddad", "Berg", "Costa", "Lindt", "Okafor"}
var cities = []string{"Berlin", "Lisbon", "Vienna", "Marseille", "Rotterdam", "Milan", "Oslo"}
var artWords = []string{"Echo", "Fragment", "Horizon", "Tide", "Ember", "Still", "Drift", "Field", "Threshold", "Relief"}
var tagWords = []string{"abstract", "figurative", "landscape", "portrait", "mixed-media", "ink", "oil", "bronze"}

func pick(list []string) string {
	return list[rand.Intn(len(list))]
}

func mustHashPassword() string {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash placeholder password: %v", err)
	}
	return string(hashed)
}

func seedUsers(db *gorm.DB) []users.User {
	hashed := mustHashPassword()
	out := make([]users.User, 0, 20)
	for i := 0; i < 20; i++ {
		first := pick(firstNames)
		last := pick(lastNames)
		password := hashed
		user := users.User{
			Email:     fmt.Sprintf("%s.%s.%d@example.com", first, last, i),
			Password:  &password,
			Phone:     fmt.Sprintf("+49 30 %07d", rand.Intn(10000000)),
			FirstName: first,
			LastName:  last,
			Avatar:    fmt.Sprintf("https://avatars.example.com/%d.png", i),
			Roles:     pq.StringArray{"USER"},
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("❌ Failed to seed user %d: %v", i, err)
		}
		out = append(out, user)
	}
	return out
}

func seedArtists(db *gorm.DB, seededUsers []users.User) []profiles.ArtistProfile {
	out := make([]profiles.ArtistProfile, 0, 5)
	for _, user := range seededUsers[:5] {
		bio := fmt.Sprintf("%s %s works between %s and %s.", user.FirstName, user.LastName, pick(cities), pick(cities))
		website := fmt.Sprintf("https://%s-%s.example.com", user.FirstName, user.LastName)
		artist := profiles.ArtistProfile{
			Bio:        &bio,
			Website:    &website,
			UserID:     user.ID,
			IsVerified: rand.Intn(2) == 0,
		}
		if err := db.Create(&artist).Error; err != nil {
			log.Fatalf("❌ Failed to seed artist for user %s: %v", user.ID, err)
		}
		out = append(out, artist)
	}
	return out
}

func seedGalleries(db *gorm.DB, seededUsers []users.User) []profiles.GalleryProfile {
	out := make([]profiles.GalleryProfile, 0, 5)
	for _, user := range seededUsers[5:10] {
		bio := fmt.Sprintf("Contemporary gallery run by %s %s.", user.FirstName, user.LastName)
		website := fmt.Sprintf("https://gallery-%s.example.com", user.LastName)
		gallery := profiles.GalleryProfile{
			Name:       fmt.Sprintf("%s %s Gallery", user.LastName, pick(artWords)),
			Bio:        &bio,
			Website:    &website,
			Location:   pick(cities),
			UserID:     user.ID,
			IsVerified: rand.Intn(2) == 0,
		}
		if err := db.Create(&gallery).Error; err != nil {
			log.Fatalf("❌ Failed to seed gallery for user %s: %v", user.ID, err)
		}
		out = append(out, gallery)
	}
	return out
}

func seedCollectors(db *gorm.DB, seededUsers []users.User) []profiles.CollectorProfile {
	out := make([]profiles.CollectorProfile, 0, 5)
	for _, user := range seededUsers[10:15] {
		bio := fmt.Sprintf("Collects %s and %s pieces.", pick(tagWords), pick(tagWords))
		website := fmt.Sprintf("https://collection-%s.example.com", user.LastName)
		collector := profiles.CollectorProfile{
			Name:       user.FirstName + " " + user.LastName,
			Email:      user.Email,
			Bio:        &bio,
			Website:    &website,
			UserID:     user.ID,
			IsVerified: rand.Intn(2) == 0,
		}
		if err := db.Create(&collector).Error; err != nil {
			log.Fatalf("❌ Failed to seed collector for user %s: %v", user.ID, err)
		}
		out = append(out, collector)
	}
	return out
}

func seedArtworks(db *gorm.DB, artists []profiles.ArtistProfile, galleries []profiles.GalleryProfile) []works.Artwork {
	out := make([]works.Artwork, 0, 10)
	for i := 0; i < 10; i++ {
		artwork := works.Artwork{
			Title:       fmt.Sprintf("%s %s %d", pick(artWords), pick(artWords), i+1),
			Description: fmt.Sprintf("A %s study in %s.", pick(tagWords), pick(tagWords)),
			Tags:        pq.StringArray{pick(tagWords), pick(tagWords), pick(tagWords)},
			Type:        pq.StringArray{works.TypeDigital, works.TypePhysical},
			Location:    pick(cities),
			Weight:      1 + rand.Float64()*99,
			Height:      10 + rand.Float64()*90,
			Width:       10 + rand.Float64()*90,
			Depth:       1 + rand.Float64()*9,
			ArtistID:    artists[i%len(artists)].ID,
			GalleryID:   galleries[i%len(galleries)].ID,
		}
		if err := db.Create(&artwork).Error; err != nil {
			log.Fatalf("❌ Failed to seed artwork %d: %v", i, err)
		}
		out = append(out, artwork)
	}
	return out
}

func seedAuctions(db *gorm.DB, artworks []works.Artwork) []auctions.Auction {
	out := make([]auctions.Auction, 0, len(artworks))
	for _, artwork := range artworks {
		start := time.Now().AddDate(0, 0, 1+rand.Intn(30))
		auction := auctions.Auction{
			ArtworkID:   artwork.ID,
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 1+rand.Intn(14)),
			StartingBid: 100 + rand.Float64()*900,
			Status:      auctions.StatusUpcoming,
		}
		if err := db.Create(&auction).Error; err != nil {
			log.Fatalf("❌ Failed to seed auction for artwork %s: %v", artwork.ID, err)
		}
		out = append(out, auction)
	}
	return out
}

func seedBids(db *gorm.DB, seededAuctions []auctions.Auction, collectors []profiles.CollectorProfile) []auctions.Bid {
	var out []auctions.Bid
	for _, auction := range seededAuctions {
		for i := 0; i < 3; i++ {
			bid := auctions.Bid{
				// amount in [startingBid, 2*startingBid)
				Amount:    auction.StartingBid + rand.Float64()*auction.StartingBid,
				BidderID:  collectors[i%len(collectors)].ID,
				AuctionID: auction.ID,
			}
			if err := db.Create(&bid).Error; err != nil {
				log.Fatalf("❌ Failed to seed bid on auction %s: %v", auction.ID, err)
			}
			out = append(out, bid)
		}
	}
	return out
}

func seedPayments(db *gorm.DB, artworks []works.Artwork, collectors []profiles.CollectorProfile) []billing.Payment {
	out := make([]billing.Payment, 0, 5)
	for _, artwork := range artworks[:5] {
		payment := billing.Payment{
			Status:            billing.StatusPaid,
			RefID:             uuid.NewString(),
			IsSuccessful:      true,
			Amount:            100 + rand.Float64()*900,
			CommissionAmount:  10 + rand.Float64()*90,
			CuratorCommission: 5 + rand.Float64()*45,
			ArtworkID:         artwork.ID,
			CollectorID:       collectors[0].ID,
		}
		if err := db.Create(&payment).Error; err != nil {
			log.Fatalf("❌ Failed to seed payment for artwork %s: %v", artwork.ID, err)
		}
		out = append(out, payment)
	}
	return out
}

func main() {
	config.LoadEnv()
	database.InitDB()
	db := database.DB

	fmt.Println("Seeding database...")

	seededUsers := seedUsers(db)
	fmt.Printf("Seeded %d users.\n", len(seededUsers))

	artists := seedArtists(db, seededUsers)
	fmt.Printf("Seeded %d artists.\n", len(artists))

	galleries := seedGalleries(db, seededUsers)
	fmt.Printf("Seeded %d galleries.\n", len(galleries))

	collectors := seedCollectors(db, seededUsers)
	fmt.Printf("Seeded %d collectors.\n", len(collectors))

	artworks := seedArtworks(db, artists, galleries)
	fmt.Printf("Seeded %d artworks.\n", len(artworks))

	seededAuctions := seedAuctions(db, artworks)
	fmt.Printf("Seeded %d auctions.\n", len(seededAuctions))

	bids := seedBids(db, seededAuctions, collectors)
	fmt.Printf("Seeded %d bids.\n", len(bids))

	paymentRows := seedPayments(db, artworks, collectors)
	fmt.Printf("Seeded %d payments.\n", len(paymentRows))

	fmt.Println("Seeding completed!")
}
