package handlers

import (
	"errors"
	"strconv"
	"strings"

	"samajam-backend/internal/core/domain"
	"samajam-backend/internal/core/services"
	"samajam-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminUserHandler handles the admin-side member CRUD
type AdminUserHandler struct {
	memberService *services.MemberService
}

// NewAdminUserHandler creates a new admin user handler
func NewAdminUserHandler(memberService *services.MemberService) *AdminUserHandler {
	return &AdminUserHandler{memberService: memberService}
}

// GetAllMembers lists every member with admin-visible fields
// @Summary List members
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/admin/users [get]
func (h *AdminUserHandler) GetAllMembers(c *fiber.Ctx) error {
	members, err := h.memberService.GetAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch members")
	}
	return response.Success(c, "", members)
}

// GetMember returns one member with admin-visible fields
// @Summary Get member
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Serial number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/admin/users/{id} [get]
func (h *AdminUserHandler) GetMember(c *fiber.Ctx) error {
	slNo, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Serial number is required")
	}

	member, err := h.memberService.GetBySlNo(c.Context(), slNo)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to fetch member")
	}

	return response.Success(c, "", member)
}

// CreateMember creates a member from multipart fields plus an optional
// profile photo
// @Summary Create member
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/admin/users [post]
func (h *AdminUserHandler) CreateMember(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	otpPassword := c.FormValue("otp_password")
	slNoRaw := c.FormValue("sl_no")

	if name == "" || otpPassword == "" || slNoRaw == "" {
		return response.BadRequest(c, "Name, SL number, and password are required")
	}

	slNo, err := strconv.Atoi(slNoRaw)
	if err != nil {
		return response.BadRequest(c, "SL number must be a number")
	}

	input := &services.CreateMemberInput{
		SlNo:          slNo,
		Name:          name,
		Address:       c.FormValue("address"),
		FamilyMembers: c.FormValue("family_members"),
		MobileNo:      c.FormValue("mobile_no"),
		Occupation:    c.FormValue("occupation"),
		BloodGroup:    c.FormValue("blood_group"),
		NativePlace:   c.FormValue("native_place"),
		Email:         c.FormValue("email"),
		CurrentStatus: c.FormValue("current_status"),
		OtpPassword:   otpPassword,
	}

	// Optional profile photo upload
	if fh, err := c.FormFile("profile_photo"); err == nil && fh != nil {
		blob, mimeType, err := readImageUpload(fh)
		if err != nil {
			return response.BadRequest(c, err.Error())
		}
		url, err := h.memberService.UploadPhoto(c.Context(), slNo, blob, fh.Filename, mimeType)
		if err != nil {
			return response.InternalServerError(c, "Failed to upload profile photo")
		}
		input.ProfilePhoto = &url
	}

	member, err := h.memberService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrSerialInUse) {
			// 400 rather than 409 is long-established client behavior
			return response.BadRequest(c, "SL number "+slNoRaw+" already exists. Please use a different SL number.")
		}
		return response.InternalServerError(c, "Failed to create member")
	}

	return response.Created(c, "Member created successfully", member)
}

// UpdateMember applies an admin patch, with an optional replacement
// profile photo
// @Summary Update member
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Serial number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/admin/users/{id} [put]
func (h *AdminUserHandler) UpdateMember(c *fiber.Ctx) error {
	slNo, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Serial number is required")
	}

	updates := parseUpdates(c)

	if fh, err := c.FormFile("profile_photo"); err == nil && fh != nil {
		blob, mimeType, err := readImageUpload(fh)
		if err != nil {
			return response.BadRequest(c, err.Error())
		}
		url, err := h.memberService.UploadPhoto(c.Context(), slNo, blob, fh.Filename, mimeType)
		if err != nil {
			return response.InternalServerError(c, "Failed to upload profile photo")
		}
		updates["profile_photo"] = url
	}

	member, err := h.memberService.AdminUpdate(c.Context(), slNo, updates)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found or update failed")
		}
		return response.InternalServerError(c, "Failed to update member")
	}

	return response.Success(c, "Member updated successfully", member)
}

// DeleteMember hard deletes a member
// @Summary Delete member
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Serial number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/admin/users/{id} [delete]
func (h *AdminUserHandler) DeleteMember(c *fiber.Ctx) error {
	slNo, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Serial number is required")
	}

	deleted, err := h.memberService.Delete(c.Context(), slNo)
	if err != nil {
		return response.InternalServerError(c, "Failed to delete member")
	}
	if !deleted {
		return response.NotFound(c, "Member not found or delete failed")
	}

	return response.Success(c, "Member deleted successfully", nil)
}
