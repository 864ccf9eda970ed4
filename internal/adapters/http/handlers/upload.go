package handlers

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

// maxUploadSize is the photo upload ceiling (5 MiB)
const maxUploadSize = 5 * 1024 * 1024

// allowedImageTypes is the MIME allow-list for every photo upload path
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

var (
	errBadImageType = errors.New("Invalid file type. Only JPEG, PNG, and WebP are allowed")
	errImageTooBig  = errors.New("File size too large. Maximum 5MB allowed")
)

// readImageUpload validates an uploaded image against the MIME
// allow-list and size ceiling, then reads it into memory. Validation
// happens here, before anything touches the storage service.
func readImageUpload(fh *multipart.FileHeader) ([]byte, string, error) {
	mimeType := fh.Header.Get("Content-Type")
	if !allowedImageTypes[mimeType] {
		return nil, "", errBadImageType
	}
	if fh.Size > maxUploadSize {
		return nil, "", errImageTooBig
	}

	file, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	blob, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	return blob, mimeType, nil
}

// parseUpdates collects a partial update payload from either a JSON
// body or multipart form fields. Only fields actually present end up in
// the map, so absent fields are left untouched downstream.
func parseUpdates(c *fiber.Ctx) map[string]interface{} {
	updates := make(map[string]interface{})

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for key, values := range form.Value {
			if len(values) > 0 {
				updates[key] = values[0]
			}
		}
		return updates
	}

	// JSON body
	_ = c.BodyParser(&updates)
	return updates
}
