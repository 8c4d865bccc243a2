package main

import (
	"errors"
	"eventspot/src/monitoring"
	"eventspot/src/types"
	"eventspot/src/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input data", "errors": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			booking, err := utils.CreateBooking(&body, userId)
			if err != nil {
				switch {
				case errors.Is(err, types.ErrEventNotFound):
					monitoring.RecordBooking("not_found", 0)
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
				case errors.Is(err, types.ErrInsufficientSeats):
					monitoring.RecordBooking("insufficient", 0)
					ctx.JSON(http.StatusBadRequest, gin.H{"message": "Not enough seats available"})
				case errors.Is(err, types.ErrSeatCountMismatch):
					monitoring.RecordBooking("invalid", 0)
					ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				default:
					log.Printf("Error creating booking: %s\n", err.Error())
					monitoring.RecordBooking("error", 0)
					ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during booking creation"})
				}
				return
			}
			monitoring.RecordBooking("confirmed", booking.NumberOfSeats)
			ctx.JSON(http.StatusCreated, booking)
		}).
		GET("/bookings/user", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			bookings, err := utils.GetUserBookings(userId)
			if err != nil {
				log.Printf("Error listing bookings for user [%d]: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			ctx.JSON(http.StatusOK, bookings)
		})
	return g
}
