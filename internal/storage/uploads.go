package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrBadExtension is returned when a filename fails the allow-list check.
var ErrBadExtension = errors.New("file extension not allowed")

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// UploadDir is where profile pictures land; served back under /static/uploads.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "static/uploads"
}

// AllowedFile checks the filename suffix against the image allow-list.
// Suffix only, no content sniffing.
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SaveProfilePicture writes the uploaded image under a uuid-prefixed name and
// returns the URL path to store on the user row.
func SaveProfilePicture(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if !AllowedFile(file.Filename) {
		return "", ErrBadExtension
	}

	if err := os.MkdirAll(UploadDir(), 0o755); err != nil {
		return "", err
	}

	// filepath.Base strips any path components a client smuggles in.
	filename := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(file.Filename))
	dst := filepath.Join(UploadDir(), filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}

	return "/" + filepath.ToSlash(dst), nil
}
