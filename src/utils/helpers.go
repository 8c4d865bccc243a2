package utils

import (
	"errors"
	"eventspot/src/db"
	"eventspot/src/models"
	"eventspot/src/types"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreateUser inserts a new user after checking username/email
// uniqueness inside the same transaction. The unique indexes on both
// columns back the check.
func CreateUser(params *types.RegisterUserRequestBody) (*models.User, error) {
	hash, err := HashPassword(params.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username: params.Username,
		Password: hash,
		Name:     params.Name,
		Email:    params.Email,
		Phone:    params.Phone,
		City:     params.City,
	}
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.User{}).
			Where(&models.User{Username: params.Username}).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return types.ErrUsernameTaken
		}
		if err := tx.
			Model(&models.User{}).
			Where(&models.User{Email: params.Email}).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return types.ErrEmailTaken
		}
		if err := tx.Create(&user).Error; err != nil {
			log.Printf("Error creating user: %s\n", err.Error())
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	db := db.GetDb()
	if err := db.
		Model(&models.User{}).
		Where(&models.User{Username: username}).
		First(&user).
		Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateBooking runs the whole booking flow in one transaction. The
// guarded decrement serializes concurrent bookings on the event row
// and keeps available_seats inside [0, total_seats].
func CreateBooking(params *types.CreateBookingRequestBody, userId uint) (*models.Booking, error) {
	if len(params.SeatNumbers) > 0 && len(params.SeatNumbers) != params.NumberOfSeats {
		return nil, types.ErrSeatCountMismatch
	}
	db := db.GetDb()
	var booking models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.
			Where(&models.Event{ID: params.EventID}).
			First(&event).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrEventNotFound
			}
			return err
		}

		res := tx.
			Model(&models.Event{}).
			Where("id = ? AND available_seats >= ?", params.EventID, params.NumberOfSeats).
			UpdateColumn("available_seats", gorm.Expr("available_seats - ?", params.NumberOfSeats))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return types.ErrInsufficientSeats
		}

		// Re-read inside the transaction to position the seat block.
		if err := tx.
			Where(&models.Event{ID: params.EventID}).
			First(&event).
			Error; err != nil {
			return err
		}
		sold := event.TotalSeats - event.AvailableSeats
		seats := make(types.SeatNumbers, 0, params.NumberOfSeats)
		for n := sold - params.NumberOfSeats + 1; n <= sold; n++ {
			seats = append(seats, n)
		}

		booking = models.Booking{
			UserID:        userId,
			EventID:       params.EventID,
			NumberOfSeats: params.NumberOfSeats,
			TotalAmount:   event.Price * params.NumberOfSeats,
			Status:        "confirmed",
			SeatNumbers:   seats,
		}
		if err := tx.Create(&booking).Error; err != nil {
			log.Printf("Error in Booking transaction: %s\n", err.Error())
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func GetUserBookings(userId uint) ([]models.Booking, error) {
	var bookings []models.Booking
	db := db.GetDb()
	if err := db.
		Model(&models.Booking{}).
		Where(&models.Booking{UserID: userId}).
		Preload("Event").
		Find(&bookings).
		Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
