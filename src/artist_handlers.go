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

func artistHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/artists", func(ctx *gin.Context) {
			db := db.GetDb()
			var artists []models.Artist
			if err := db.Model(&models.Artist{}).Find(&artists).Error; err != nil {
				log.Printf("Error listing artists: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			ctx.JSON(http.StatusOK, artists)
		}).
		GET("/artists/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid artist ID"})
				return
			}
			db := db.GetDb()
			var artist models.Artist
			if err := db.
				Model(&models.Artist{}).
				Where(&models.Artist{ID: params.ID}).
				First(&artist).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": "Artist not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			ctx.JSON(http.StatusOK, artist)
		})
	return g
}
