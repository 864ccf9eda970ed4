package handlers

import (
	"net/url"
	"strconv"

	"samajam-backend/internal/core/services"
	"samajam-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// GalleryHandler handles the public photo gallery reads. These routes
// answer bare JSON arrays rather than the response envelope; the
// gallery frontend consumes them directly.
type GalleryHandler struct {
	galleryService *services.GalleryService
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(galleryService *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// GetAvailableYears returns the distinct gallery years
// @Summary List gallery years
// @Tags Photos
// @Produce json
// @Success 200 {array} int
// @Router /api/photos/years [get]
func (h *GalleryHandler) GetAvailableYears(c *fiber.Ctx) error {
	years, err := h.galleryService.AvailableYears(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch available years")
	}
	return c.JSON(years)
}

// GetEventsByYear returns the distinct events of a year
// @Summary List events of a year
// @Tags Photos
// @Produce json
// @Param year path int true "Year"
// @Success 200 {array} models.GalleryEvent
// @Router /api/photos/events/{year} [get]
func (h *GalleryHandler) GetEventsByYear(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return response.BadRequest(c, "Year must be a number")
	}

	events, err := h.galleryService.EventsByYear(c.Context(), year)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch events")
	}
	return c.JSON(events)
}

// GetPhotosByYear returns a year's photos
// @Summary List photos of a year
// @Tags Photos
// @Produce json
// @Param year path int true "Year"
// @Success 200 {array} models.GalleryPhoto
// @Router /api/photos/year/{year} [get]
func (h *GalleryHandler) GetPhotosByYear(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return response.BadRequest(c, "Year must be a number")
	}

	photos, err := h.galleryService.ByYear(c.Context(), year)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch photos")
	}
	return c.JSON(photos)
}

// GetPhotosByEvent returns an event's photos
// @Summary List photos of an event
// @Tags Photos
// @Produce json
// @Param eventName path string true "Event name"
// @Success 200 {array} models.GalleryPhoto
// @Router /api/photos/event/{eventName} [get]
func (h *GalleryHandler) GetPhotosByEvent(c *fiber.Ctx) error {
	eventName, err := url.PathUnescape(c.Params("eventName"))
	if err != nil || eventName == "" {
		return response.BadRequest(c, "Event name is required")
	}

	photos, err := h.galleryService.ByEvent(c.Context(), eventName)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch photos")
	}
	return c.JSON(photos)
}

// GetRandomPhotos returns a random slideshow sample for a year. Each
// call reshuffles.
// @Summary Random photos of a year
// @Tags Photos
// @Produce json
// @Param year path int true "Year"
// @Param limit path int true "Sample size"
// @Success 200 {array} models.GalleryPhoto
// @Router /api/photos/random/{year}/{limit} [get]
func (h *GalleryHandler) GetRandomPhotos(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return response.BadRequest(c, "Year must be a number")
	}

	limit, err := strconv.Atoi(c.Params("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	photos, err := h.galleryService.Random(c.Context(), year, limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch random photos")
	}
	return c.JSON(photos)
}

// GetSocialWorkPhotos returns the social work collection
// @Summary List social work photos
// @Tags Photos
// @Produce json
// @Success 200 {array} models.GalleryPhoto
// @Router /api/photos/social-work [get]
func (h *GalleryHandler) GetSocialWorkPhotos(c *fiber.Ctx) error {
	photos, err := h.galleryService.SocialWork(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch social work photos")
	}
	return c.JSON(photos)
}
