package main

import (
	"eventspot/src/db"
	"eventspot/src/models"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func categoryHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/categories", func(ctx *gin.Context) {
		db := db.GetDb()
		var categories []models.Category
		if err := db.Model(&models.Category{}).Find(&categories).Error; err != nil {
			log.Printf("Error listing categories: %s\n", err.Error())
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		ctx.JSON(http.StatusOK, categories)
	})
	return g
}
