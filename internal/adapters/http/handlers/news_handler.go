package handlers

import (
	"errors"

	"samajam-backend/internal/core/domain"
	"samajam-backend/internal/core/services"
	"samajam-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NewsHandler handles news endpoints: public reads plus the admin CRUD
type NewsHandler struct {
	newsService *services.NewsService
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsService *services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// GetAllNews lists articles, newest first
// @Summary List news articles
// @Tags News
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/news [get]
func (h *NewsHandler) GetAllNews(c *fiber.Ctx) error {
	articles, err := h.newsService.GetAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch news articles")
	}
	return response.Success(c, "", articles)
}

// GetNewsByID returns one article
// @Summary Get news article
// @Tags News
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/news/{id} [get]
func (h *NewsHandler) GetNewsByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Article id is required")
	}

	article, err := h.newsService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "News article not found")
		}
		return response.InternalServerError(c, "Failed to fetch news article")
	}

	return response.Success(c, "", article)
}

// CreateNews creates an article from multipart fields plus an optional
// image
// @Summary Create news article
// @Tags News
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/news [post]
func (h *NewsHandler) CreateNews(c *fiber.Ctx) error {
	title := c.FormValue("title")
	date := c.FormValue("date")
	excerpt := c.FormValue("excerpt")
	content := c.FormValue("content")

	if title == "" || date == "" || excerpt == "" || content == "" {
		return response.BadRequest(c, "Title, date, excerpt, and content are required")
	}

	input := &services.CreateNewsInput{
		Title:   title,
		Date:    date,
		Excerpt: excerpt,
		Content: content,
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		blob, mimeType, err := readImageUpload(fh)
		if err != nil {
			return response.BadRequest(c, err.Error())
		}
		url, err := h.newsService.UploadImage(c.Context(), blob, fh.Filename, mimeType)
		if err != nil {
			return response.InternalServerError(c, "Failed to upload news image")
		}
		input.ImageURL = &url
	}

	article, err := h.newsService.Create(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create news article")
	}

	return response.Created(c, "News article created successfully", article)
}

// UpdateNews applies a partial patch, with an optional replacement
// image
// @Summary Update news article
// @Tags News
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/news/{id} [put]
func (h *NewsHandler) UpdateNews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Article id is required")
	}

	updates := parseUpdates(c)

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		blob, mimeType, err := readImageUpload(fh)
		if err != nil {
			return response.BadRequest(c, err.Error())
		}
		url, err := h.newsService.UploadImage(c.Context(), blob, fh.Filename, mimeType)
		if err != nil {
			return response.InternalServerError(c, "Failed to upload news image")
		}
		updates["image_url"] = url
	}

	article, err := h.newsService.Update(c.Context(), uint(id), updates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "News article not found or update failed")
		}
		return response.InternalServerError(c, "Failed to update news article")
	}

	return response.Success(c, "News article updated successfully", article)
}

// DeleteNews hard deletes an article
// @Summary Delete news article
// @Tags News
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/news/{id} [delete]
func (h *NewsHandler) DeleteNews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Article id is required")
	}

	deleted, err := h.newsService.Delete(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete news article")
	}
	if !deleted {
		return response.NotFound(c, "News article not found or delete failed")
	}

	return response.Success(c, "News article deleted successfully", nil)
}
