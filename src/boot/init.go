package boot

import (
	"eventspot/src/db"
	"eventspot/src/models"
	"eventspot/src/utils"
	"log"
	"time"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Venue{},
		&models.Artist{},
		&models.Event{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func strptr(s string) *string { return &s }
func uintp(v uint) *uint      { return &v }

// SeedData loads the fixed reference dataset once. Reruns are no-ops
// when users already exist.
func SeedData() error {
	conn := db.GetDb()
	var count int64
	if err := conn.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return conn.Transaction(func(tx *gorm.DB) error {
		hash, err := utils.HashPassword("password123")
		if err != nil {
			return err
		}
		testUser := models.User{
			Username: "testuser",
			Password: hash,
			Name:     "Test User",
			Email:    "test@example.com",
			Phone:    strptr("9876543210"),
			City:     strptr("Delhi"),
		}
		if err := tx.Create(&testUser).Error; err != nil {
			return err
		}

		categories := []models.Category{
			{Name: "Concerts", Icon: "fa-music", Color: "primary"},
			{Name: "Theatre", Icon: "fa-theater-masks", Color: "secondary"},
			{Name: "Comedy", Icon: "fa-laugh-beam", Color: "accent"},
			{Name: "Cultural", Icon: "fa-om", Color: "green"},
			{Name: "Tech Fest", Icon: "fa-robot", Color: "purple"},
			{Name: "Food Fests", Icon: "fa-utensils", Color: "blue"},
			{Name: "Film Festivals", Icon: "fa-film", Color: "red"},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		venues := []models.Venue{
			{Name: "Siri Fort Auditorium", Address: "August Kranti Marg", City: "Delhi", State: "Delhi", Capacity: 2000, Image: "https://images.unsplash.com/photo-1578944032637-f09897c5233d?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80"},
			{Name: "JLN Stadium", Address: "Pragati Vihar", City: "Delhi", State: "Delhi", Capacity: 60000, Image: "https://images.unsplash.com/photo-1606639421367-95576aa1c747?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80"},
			{Name: "NCPA", Address: "Nariman Point", City: "Mumbai", State: "Maharashtra", Capacity: 1200, Image: "https://images.unsplash.com/photo-1608234807905-4466023792f5?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80"},
			{Name: "Kamani Auditorium", Address: "Copernicus Marg", City: "Delhi", State: "Delhi", Capacity: 750, Image: "https://images.unsplash.com/photo-1571624436279-b272aff752b5?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80"},
			{Name: "Phoenix Marketcity", Address: "Whitefield", City: "Mumbai", State: "Maharashtra", Capacity: 5000, Image: "https://images.unsplash.com/photo-1624293258267-959a7ed72a4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80"},
			{Name: "Habitat Centre", Address: "Lodhi Road", City: "Delhi", State: "Delhi", Capacity: 1000, Image: "https://images.unsplash.com/photo-1572844986430-997270651e8a?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80"},
		}
		if err := tx.Create(&venues).Error; err != nil {
			return err
		}

		artists := []models.Artist{
			{Name: "Arijit Singh", Type: "Musician", Image: "https://images.unsplash.com/photo-1593697972646-2f348871bd56?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", Bio: strptr("Popular Bollywood playback singer")},
			{Name: "Zakir Hussain", Type: "Tabla Maestro", Image: "https://images.unsplash.com/photo-1616559051446-a19f04b52de6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", Bio: strptr("World-renowned tabla player and composer")},
			{Name: "Vir Das", Type: "Comedian", Image: "https://images.unsplash.com/photo-1527697911937-ffd76b048f15?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", Bio: strptr("Indian comedian, actor and musician")},
			{Name: "A.R. Rahman", Type: "Composer", Image: "https://images.unsplash.com/photo-1508674861872-a51e06c50c9b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", Bio: strptr("Oscar-winning composer and music producer")},
			{Name: "Shreya Ghoshal", Type: "Singer", Image: "https://images.unsplash.com/photo-1565116175827-64847f972a3f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", Bio: strptr("Popular female playback singer")},
			{Name: "Kanan Gill", Type: "Comedian", Image: "https://images.unsplash.com/photo-1533551445-66165599e97c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80", Bio: strptr("Stand-up comedian and YouTuber")},
		}
		if err := tx.Create(&artists).Error; err != nil {
			return err
		}

		events := []models.Event{
			{Title: "Navratri Festival 2023", Description: "Experience the colors and music of India's most vibrant festival", Image: "https://images.unsplash.com/photo-1587825140708-dfaf72ae4b04?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80", Date: time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC), Price: 1000, VenueID: 2, CategoryID: 4, IsFeatured: true, IsTrending: false, TotalSeats: 5000, AvailableSeats: 3500},
			{Title: "Comedy Nights with Vir Das", Description: "An evening of laughter and wit with India's top comedian", Image: "https://images.unsplash.com/photo-1592213299587-7bbb135c541d?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80", Date: time.Date(2023, 9, 28, 0, 0, 0, 0, time.UTC), Price: 800, VenueID: 1, CategoryID: 3, ArtistID: uintp(3), IsFeatured: true, IsTrending: false, TotalSeats: 500, AvailableSeats: 200},
			{Title: "Arijit Singh Live in Concert", Description: "Experience the magical voice of Bollywood's favorite singer", Image: "https://images.unsplash.com/photo-1601124178830-70b4bece5b71?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80", Date: time.Date(2023, 11, 12, 0, 0, 0, 0, time.UTC), Price: 2500, VenueID: 2, CategoryID: 1, ArtistID: uintp(1), IsFeatured: true, IsTrending: true, TotalSeats: 10000, AvailableSeats: 5000},
			{Title: "Sunburn Music Festival", Description: "India's premier electronic dance music festival", Image: "https://images.unsplash.com/photo-1563841930606-67e2bce48b78?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80", Date: time.Date(2023, 12, 28, 0, 0, 0, 0, time.UTC), Price: 1999, VenueID: 2, CategoryID: 1, IsFeatured: false, IsTrending: true, TotalSeats: 20000, AvailableSeats: 15000},
			{Title: "Rahman Live in Concert", Description: "Musical evening with the Mozart of Madras", Image: "https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80", Date: time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC), Price: 2500, VenueID: 2, CategoryID: 1, ArtistID: uintp(4), IsFeatured: false, IsTrending: true, TotalSeats: 5000, AvailableSeats: 1500},
			{Title: "Zakir Hussain - Masters of Percussion", Description: "A mesmerizing evening of Indian classical music", Image: "https://images.unsplash.com/photo-1508997449629-303059a039c0?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80", Date: time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC), Price: 1800, VenueID: 3, CategoryID: 1, ArtistID: uintp(2), IsFeatured: false, IsTrending: true, TotalSeats: 1000, AvailableSeats: 300},
			{Title: "The Comedy Factory", Description: "An evening of laughter with top Indian comedians", Image: "https://images.unsplash.com/photo-1425421669292-0c3da3b8f529?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80", Date: time.Date(2023, 10, 22, 0, 0, 0, 0, time.UTC), Price: 799, VenueID: 6, CategoryID: 3, ArtistID: uintp(6), IsFeatured: false, IsTrending: true, TotalSeats: 500, AvailableSeats: 100},
		}
		if err := tx.Create(&events).Error; err != nil {
			return err
		}
		return nil
	})
}
