package controllers

import (
	"errors"
	"eventspot/src/config"
	"eventspot/src/db"
	"eventspot/src/lib"
	"eventspot/src/models"
	"eventspot/src/types"
	"eventspot/src/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setSessionCookie(ctx *gin.Context, sid string, maxAge int) {
	ctx.SetCookie(config.SESSION_COOKIE_NAME, sid, maxAge, "/", "", config.IsProd(), true)
}

func AuthLogin(ctx *gin.Context) (user *models.User, status int, err error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	muser, err := utils.GetUserByUsername(body.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusUnauthorized, types.ErrInvalidCredentials
		}
		return nil, http.StatusInternalServerError, err
	}
	if !utils.VerifyPassword(muser.Password, body.Password) {
		return nil, http.StatusUnauthorized, types.ErrInvalidCredentials
	}

	sid, err := lib.SessionCreate(ctx.Request.Context(), muser.ID)
	if err != nil {
		log.Printf("Error creating session for user [%d]: %s\n", muser.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}
	setSessionCookie(ctx, sid, int(config.SESSION_TTL.Seconds()))
	return muser, http.StatusOK, nil
}

func AuthRegister(ctx *gin.Context) (user *models.User, status int, err error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	muser, err := utils.CreateUser(&body)
	if err != nil {
		if errors.Is(err, types.ErrUsernameTaken) || errors.Is(err, types.ErrEmailTaken) {
			return nil, http.StatusBadRequest, err
		}
		log.Printf("Error registering user: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}

	// Log the user in right after registration.
	sid, err := lib.SessionCreate(ctx.Request.Context(), muser.ID)
	if err != nil {
		log.Printf("Error creating session for user [%d]: %s\n", muser.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}
	setSessionCookie(ctx, sid, int(config.SESSION_TTL.Seconds()))
	return muser, http.StatusCreated, nil
}

func AuthStatus(ctx *gin.Context) (user *models.User, err error) {
	sid, err := ctx.Cookie(config.SESSION_COOKIE_NAME)
	if err != nil || sid == "" {
		return nil, errors.New("no session cookie")
	}
	userId, err := lib.SessionGet(ctx.Request.Context(), sid)
	if err != nil {
		return nil, err
	}
	conn := db.GetDb()
	var muser models.User
	if err := conn.
		Model(&models.User{}).
		Where(&models.User{ID: userId}).
		First(&muser).
		Error; err != nil {
		return nil, err
	}
	return &muser, nil
}

func AuthLogout(ctx *gin.Context) (status int, err error) {
	sid := ctx.GetString("sid")
	if sid == "" {
		return http.StatusUnauthorized, errors.New("no active session")
	}
	if err := lib.SessionDestroy(ctx.Request.Context(), sid); err != nil {
		log.Printf("Error destroying session: %s\n", err.Error())
		return http.StatusInternalServerError, err
	}
	setSessionCookie(ctx, "", -1)
	return http.StatusOK, nil
}
