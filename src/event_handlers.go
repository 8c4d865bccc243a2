package main

import (
	"errors"
	"eventspot/src/db"
	"eventspot/src/models"
	"eventspot/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func eventHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/events", func(ctx *gin.Context) {
			var query types.EventListQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
				return
			}
			db := db.GetDb()
			q := db.Model(&models.Event{})
			if query.CategoryID != nil {
				q = q.Where(&models.Event{CategoryID: *query.CategoryID})
			}
			var events []models.Event
			if err := q.Find(&events).Error; err != nil {
				log.Printf("Error listing events: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			ctx.JSON(http.StatusOK, events)
		}).
		GET("/events/featured", func(ctx *gin.Context) {
			db := db.GetDb()
			var events []models.Event
			if err := db.
				Model(&models.Event{}).
				Where(&models.Event{IsFeatured: true}).
				Find(&events).
				Error; err != nil {
				log.Printf("Error listing featured events: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			ctx.JSON(http.StatusOK, events)
		}).
		GET("/events/trending", func(ctx *gin.Context) {
			db := db.GetDb()
			var events []models.Event
			if err := db.
				Model(&models.Event{}).
				Where(&models.Event{IsTrending: true}).
				Find(&events).
				Error; err != nil {
				log.Printf("Error listing trending events: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			ctx.JSON(http.StatusOK, events)
		}).
		GET("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event ID"})
				return
			}
			db := db.GetDb()
			var event models.Event
			if err := db.
				Model(&models.Event{}).
				Where(&models.Event{ID: params.ID}).
				First(&event).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			ctx.JSON(http.StatusOK, event)
		})
	return g
}
