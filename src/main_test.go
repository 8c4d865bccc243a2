package main

import (
	"encoding/json"
	"eventspot/src/boot"
	"eventspot/src/config"
	"eventspot/src/db"
	"eventspot/src/lib"
	"eventspot/src/models"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type TestSuite struct {
	suite.Suite
	DB    *gorm.DB
	Redis redismock.ClientMock
}

var dbi *gorm.DB

// sessionMiddleware stands in for the real auth middleware so handler
// tests don't depend on a live session store.
func sessionMiddleware(ctx *gin.Context) {
	var user models.User
	if err := dbi.
		Where(&models.User{ID: 1}).
		First(&user).
		Error; err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	ctx.Set("id", user.ID)
	ctx.Set("username", user.Username)
	ctx.Set("email", user.Email)
	ctx.Set("sid", "test-session")
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	registerValidations()

	gdb, err := gorm.Open(sqlite.Open(":memory:"))
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	inner, err := gdb.DB()
	if err != nil {
		log.Fatalf("Error accessing inner db instance: %s", err.Error())
	}
	inner.SetMaxIdleConns(1)
	inner.SetMaxOpenConns(1)
	db.NewDB(gdb)
	s.DB = gdb
	dbi = gdb

	boot.InitDb()
	if err := boot.SeedData(); err != nil {
		log.Fatalf("Could not seed data due to error: %s\n", err.Error())
	}

	client, mock := redismock.NewClientMock()
	mock.MatchExpectationsInOrder(false)
	lib.NewRedisClient(client)
	s.Redis = mock
}

func (s *TestSuite) expectSessionCreate() {
	s.Redis.Regexp().ExpectSet(`session:.+`, `\d+`, config.SESSION_TTL).SetVal("OK")
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Unsetenv("MAINTENANCE_MODE")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiGroup(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestAuthRoutes() {
	router := setupRouter()
	guestAuthRoutes(router)

	s.Run("Should register a new user and omit the password", func() {
		s.expectSessionCreate()
		jbody := map[string]any{
			"username": "newuser",
			"password": "secret123",
			"name":     "New User",
			"email":    "new@example.com",
			"city":     "Mumbai",
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/register", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 201, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		sjson := string(rbytes)
		assert.Equal(s.T(), "newuser", gjson.Get(sjson, "user.username").String())
		assert.False(s.T(), gjson.Get(sjson, "user.password").Exists())

		cookies := w.Result().Cookies()
		assert.NotEmpty(s.T(), cookies)
		assert.Equal(s.T(), config.SESSION_COOKIE_NAME, cookies[0].Name)
	})

	s.Run("Should reject a duplicate username with a 400", func() {
		jbody := map[string]any{
			"username": "testuser",
			"password": "secret123",
			"name":     "Someone Else",
			"email":    "someoneelse@example.com",
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/register", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)

		var count int64
		s.DB.Model(&models.User{}).Where(&models.User{Name: "Someone Else"}).Count(&count)
		assert.Zero(s.T(), count)
	})

	s.Run("Should reject a malformed registration body", func() {
		jbody := map[string]any{
			"username": "ab",
			"password": "short",
			"name":     "X",
			"email":    "not-an-email",
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/register", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should log in the seeded user", func() {
		s.expectSessionCreate()
		jbody := map[string]any{
			"username": "testuser",
			"password": "password123",
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.Equal(s.T(), "testuser", gjson.Get(string(rbytes), "user.username").String())
	})

	s.Run("Should reject a wrong password with a 401", func() {
		jbody := map[string]any{
			"username": "testuser",
			"password": "wrongpassword",
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 401, w.Code)
	})

	s.Run("Should report anonymous status without a cookie", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/auth/status", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.False(s.T(), gjson.Get(string(rbytes), "isAuthenticated").Bool())
	})

	s.Run("Should report authenticated status with a live session", func() {
		s.Redis.ExpectGet("session:status-sid").SetVal("1")
		s.Redis.ExpectExpire("session:status-sid", config.SESSION_TTL).SetVal(true)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: config.SESSION_COOKIE_NAME, Value: "status-sid"})
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		sjson := string(rbytes)
		assert.True(s.T(), gjson.Get(sjson, "isAuthenticated").Bool())
		assert.Equal(s.T(), "testuser", gjson.Get(sjson, "user.username").String())
	})
}

func (s *TestSuite) TestLogout() {
	router := setupRouter()
	authorizedRoutes(router)

	s.Redis.ExpectGet("session:logout-sid").SetVal("1")
	s.Redis.ExpectExpire("session:logout-sid", config.SESSION_TTL).SetVal(true)
	s.Redis.ExpectDel("session:logout-sid").SetVal(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: config.SESSION_COOKIE_NAME, Value: "logout-sid"})
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)

	// The destroyed session must not authorize further requests.
	s.Redis.ExpectGet("session:logout-sid").RedisNil()

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/users/profile", nil)
	req.AddCookie(&http.Cookie{Name: config.SESSION_COOKIE_NAME, Value: "logout-sid"})
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 401, w.Code)
}

func (s *TestSuite) TestEvents() {
	router := setupRouter()
	publicRoutes(router)

	s.Run("Should list all seeded events", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/events", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.EqualValues(s.T(), 7, gjson.Get(string(rbytes), "#").Int())
	})

	s.Run("Should filter events by category", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/events?categoryId=1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.EqualValues(s.T(), 4, gjson.Get(string(rbytes), "#").Int())
	})

	s.Run("Should list featured events", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/events/featured", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.EqualValues(s.T(), 3, gjson.Get(string(rbytes), "#").Int())
	})

	s.Run("Should list trending events", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/events/trending", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.EqualValues(s.T(), 5, gjson.Get(string(rbytes), "#").Int())
	})

	s.Run("Should return a single event", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/events/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.Equal(s.T(), "Navratri Festival 2023", gjson.Get(string(rbytes), "title").String())
	})

	s.Run("Should return 404 for an unknown event", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/events/999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 404, w.Code)
	})
}

func (s *TestSuite) TestCatalog() {
	router := setupRouter()
	publicRoutes(router)

	s.Run("Should list categories", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/categories", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.EqualValues(s.T(), 7, gjson.Get(string(rbytes), "#").Int())
	})

	s.Run("Should list venues and fetch one", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/venues", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.EqualValues(s.T(), 6, gjson.Get(string(rbytes), "#").Int())

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("GET", "/api/venues/3", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ = io.ReadAll(w.Body)
		assert.Equal(s.T(), "NCPA", gjson.Get(string(rbytes), "name").String())
	})

	s.Run("Should list artists and 404 on unknown ids", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/artists", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.EqualValues(s.T(), 6, gjson.Get(string(rbytes), "#").Int())

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("GET", "/api/artists/999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 404, w.Code)
	})
}

func (s *TestSuite) TestBookings() {
	router := setupRouter()
	api := apiGroup(router)
	api.Use(sessionMiddleware)
	bookingHandlers(api)

	s.Run("Should create a booking and decrement inventory", func() {
		jbody := map[string]any{
			"eventId":       2,
			"numberOfSeats": 3,
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 201, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		sjson := string(rbytes)
		assert.Equal(s.T(), "confirmed", gjson.Get(sjson, "status").String())
		assert.EqualValues(s.T(), 800*3, gjson.Get(sjson, "totalAmount").Int())
		assert.EqualValues(s.T(), 3, gjson.Get(sjson, "seatNumbers.#").Int())

		var event models.Event
		s.DB.First(&event, 2)
		assert.Equal(s.T(), 197, event.AvailableSeats)
	})

	s.Run("Should reject a booking beyond available seats", func() {
		jbody := map[string]any{
			"eventId":       7,
			"numberOfSeats": 150,
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		assert.Equal(s.T(), "Not enough seats available", gjson.Get(string(rbytes), "message").String())

		var event models.Event
		s.DB.First(&event, 7)
		assert.Equal(s.T(), 100, event.AvailableSeats)
	})

	s.Run("Should return 404 when booking an unknown event", func() {
		jbody := map[string]any{
			"eventId":       999,
			"numberOfSeats": 1,
		}
		sbody, _ := json.Marshal(&jbody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 404, w.Code)
	})

	s.Run("Should list the user's bookings with embedded events", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/bookings/user", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 200, w.Code)
		rbytes, _ := io.ReadAll(w.Body)
		sjson := string(rbytes)
		assert.EqualValues(s.T(), 1, gjson.Get(sjson, "#").Int())
		assert.Equal(s.T(), "Comedy Nights with Vir Das", gjson.Get(sjson, "0.event.title").String())
	})
}

func (s *TestSuite) TestProfile() {
	router := setupRouter()
	api := apiGroup(router)
	api.Use(sessionMiddleware)
	api.GET("/users/profile", func(ctx *gin.Context) {
		var user models.User
		userId := ctx.GetUint("id")
		if err := dbi.
			Where(&models.User{ID: userId}).
			First(&user).
			Error; err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		ctx.JSON(http.StatusOK, user)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/users/profile", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	sjson := string(rbytes)
	assert.Equal(s.T(), "testuser", gjson.Get(sjson, "username").String())
	assert.Equal(s.T(), "test@example.com", gjson.Get(sjson, "email").String())
	assert.False(s.T(), gjson.Get(sjson, "password").Exists())
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
