package middlewares

import (
	"eventspot/src/config"
	"eventspot/src/db"
	"eventspot/src/lib"
	"eventspot/src/models"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(ctx *gin.Context) {
	sid, err := ctx.Cookie(config.SESSION_COOKIE_NAME)
	if err != nil || sid == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	userId, err := lib.SessionGet(ctx.Request.Context(), sid)
	if err != nil {
		log.Printf("session lookup failed: %s\n", err.Error())
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	db := db.GetDb()
	var user models.User
	if err := db.
		Model(&models.User{}).
		Where(&models.User{ID: userId}).
		First(&user).
		Error; err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	ctx.Set("id", user.ID)
	ctx.Set("username", user.Username)
	ctx.Set("email", user.Email)
	ctx.Set("sid", sid)
}
