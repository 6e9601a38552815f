package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fud_backend/internal/config"
	"fud_backend/internal/middleware"
	"fud_backend/internal/models"
	"fud_backend/internal/storage"
)

// Signup registers an account from a multipart form. The three signup routes
// (/signup, /staff/signup, /admin/signup) share this handler and differ only in
// the default role and the label used in response messages.
func Signup(defaultRole, label string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		email := c.PostForm("email")
		phoneNumber := c.PostForm("phone_number")
		password := c.PostForm("password")
		role := c.DefaultPostForm("role", defaultRole)

		file, err := c.FormFile("profile_picture")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing profile picture"})
			return
		}
		profilePictureURL, err := storage.SaveProfilePicture(c, file)
		if err != nil {
			if errors.Is(err, storage.ErrBadExtension) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing profile picture"})
			} else {
				logrus.WithError(err).Error("profile picture write failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store profile picture"})
			}
			return
		}

		// Duplicate check is deliberately name-or-email; a duplicate phone number
		// only surfaces through the unique constraint below.
		var existing models.User
		if err := config.DB.Where("name = ? OR email = ?", name, email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": label + " already exists"})
			return
		}

		hashedPassword, err := hashPassword(password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
			return
		}

		user := models.User{
			Name:           name,
			Email:          email,
			PhoneNumber:    phoneNumber,
			Password:       hashedPassword,
			ProfilePicture: profilePictureURL,
			Role:           role,
		}

		tx := config.DB.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
			return
		}
		if err := tx.Create(&user).Error; err != nil {
			tx.Rollback()
			if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
				c.JSON(http.StatusBadRequest, gin.H{"error": label + " already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user: " + err.Error()})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
			return
		}

		token, err := middleware.GenerateAccessToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      label + " created successfully",
			"access_token": token,
			"user":         userResponse(user),
		})
	}
}

func Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a failed password check; callers must not learn
			// which of the two failed.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	accessToken, err := middleware.GenerateAccessToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	refreshToken, err := middleware.GenerateRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Logout exists for client symmetry; tokens are stateless and simply expire.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func userResponse(user models.User) gin.H {
	return gin.H{
		"id":              user.ID,
		"name":            user.Name,
		"email":           user.Email,
		"phone_number":    user.PhoneNumber,
		"profile_picture": user.ProfilePicture,
		"role":            user.Role,
	}
}
