package main

import (
	"errors"
	"eventspot/src/boot"
	"eventspot/src/controllers"
	"eventspot/src/db"
	"eventspot/src/middlewares"
	"eventspot/src/models"
	"eventspot/src/monitoring"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"
	"strconv"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	apiPrefix string = "/api"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

var usernameValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	name, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return usernameRe.MatchString(name)
}

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username", usernameValidatorFunc)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		mm := os.Getenv("MAINTENANCE_MODE")
		atoi, err := strconv.ParseBool(mm)
		if err == nil && atoi {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, err.Error())
			return
		}
	})
	return g
}

func apiGroup(g *gin.Engine) *gin.RouterGroup {
	api := g.Group(apiPrefix)
	return api
}

func publicRoutes(g *gin.Engine) *gin.RouterGroup {
	api := apiGroup(g)
	api = categoryHandlers(api)
	api = venueHandlers(api)
	api = artistHandlers(api)
	api = eventHandlers(api)
	return api
}

func guestAuthRoutes(g *gin.Engine) *gin.RouterGroup {
	api := apiGroup(g)
	guest := api.Group("/auth")
	guest.
		POST("/login", func(ctx *gin.Context) {
			user, status, err := controllers.AuthLogin(ctx)
			if err != nil {
				log.Printf("[AuthLogin] error: %s\n", err.Error())
				monitoring.RecordAuth("login", "failed")
				ctx.JSON(status, gin.H{"message": err.Error()})
				return
			}
			monitoring.RecordAuth("login", "ok")
			ctx.JSON(status, gin.H{"user": user})
		}).
		POST("/register", func(ctx *gin.Context) {
			user, status, err := controllers.AuthRegister(ctx)
			if err != nil {
				log.Printf("[AuthRegister] error: %s\n", err.Error())
				monitoring.RecordAuth("register", "failed")
				ctx.JSON(status, gin.H{"message": err.Error()})
				return
			}
			monitoring.RecordAuth("register", "ok")
			ctx.JSON(status, gin.H{"user": user})
		}).
		GET("/status", func(ctx *gin.Context) {
			user, err := controllers.AuthStatus(ctx)
			if err != nil {
				ctx.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"isAuthenticated": true, "user": user})
		})
	return guest
}

func authorizedRoutes(g *gin.Engine) *gin.RouterGroup {
	authorized := g.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware)
	authorized.
		POST("/auth/logout", func(ctx *gin.Context) {
			status, err := controllers.AuthLogout(ctx)
			if err != nil {
				log.Printf("Error on user logout: %s\n", err.Error())
				ctx.JSON(status, gin.H{"message": "Error during logout"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
		}).
		GET("/users/profile", func(ctx *gin.Context) {
			var user models.User
			userId := ctx.GetUint("id")
			conn := db.GetDb()
			if err := conn.
				Where(&models.User{ID: userId}).
				First(&user).
				Error; err != nil {
				ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
				return
			}
			ctx.JSON(http.StatusOK, user)
		})

	authorized = bookingHandlers(authorized)
	return authorized
}

func initLogger() {
	cwd, _ := os.Getwd()
	os.MkdirAll(path.Join(cwd, "logs"), 0o755)
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()
	registerValidations()

	conn := boot.InitDb()
	if err := boot.SeedData(); err != nil {
		log.Fatalf("error seeding data: %s", err.Error())
	}
	monitoring.NewMonitor(conn)

	router := setupRouter()

	appHost := os.Getenv("APP_HOST")
	if apiEnv == "local" || appHost == "" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Content-Type")
		cc.AllowOrigins = []string{appHost}
		cc.AllowCredentials = true
		router.Use(cors.New(cc))
	}

	router = maintenanceModeMiddleware(router)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	publicRoutes(router)

	guestAuthRoutes(router)

	authorizedRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server error: %s", err.Error())
	}
}
