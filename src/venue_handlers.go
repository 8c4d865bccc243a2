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

func venueHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/venues", func(ctx *gin.Context) {
			db := db.GetDb()
			var venues []models.Venue
			if err := db.Model(&models.Venue{}).Find(&venues).Error; err != nil {
				log.Printf("Error listing venues: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			ctx.JSON(http.StatusOK, venues)
		}).
		GET("/venues/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid venue ID"})
				return
			}
			db := db.GetDb()
			var venue models.Venue
			if err := db.
				Model(&models.Venue{}).
				Where(&models.Venue{ID: params.ID}).
				First(&venue).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Venue not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			ctx.JSON(http.StatusOK, venue)
		})
	return g
}
