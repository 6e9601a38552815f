package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"fud_backend/internal/config"
	"fud_backend/internal/models"
)

// setupTestDB swaps the global handle for a fresh in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// one named in-memory database per test; shared cache keeps the pool's
	// connections on the same database
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal("failed to connect to test database: " + err.Error())
	}
	if err := config.Migrate(db); err != nil {
		t.Fatal("failed to migrate test database: " + err.Error())
	}
	config.DB = db
	return db
}

func jsonRequest(t *testing.T, router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewBuffer(b)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return resp
}

// multipartRequest builds a signup-style form with an optional file part.
func multipartRequest(t *testing.T, router *gin.Engine, path string, fields map[string]string, filename string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if filename != "" {
		part, err := mw.CreateFormFile("profile_picture", filename)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte("not really an image")); err != nil {
			t.Fatal(err)
		}
	}
	mw.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func createTestUser(t *testing.T, db *gorm.DB, name, email, phone string) models.User {
	t.Helper()
	user := models.User{
		Name:           name,
		Email:          email,
		PhoneNumber:    phone,
		Password:       "x",
		ProfilePicture: "/static/uploads/x.png",
		Role:           "customer",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	return user
}

func createTestMenuItem(t *testing.T, db *gorm.DB, name string, price float64) models.MenuItem {
	t.Helper()
	menu := models.Menu{Name: name + " menu", Description: "test menu", Available: true}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatal(err)
	}
	item := models.MenuItem{Name: name, Description: "test item", Price: price, Available: true, MenuID: menu.ID}
	if err := db.Create(&item).Error; err != nil {
		t.Fatal(err)
	}
	return item
}
