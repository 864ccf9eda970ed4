package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"samajam-backend/internal/core/domain"
	"samajam-backend/internal/core/services"
	"samajam-backend/internal/pkg/credentials"
	"samajam-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles member self-service endpoints
type MemberHandler struct {
	memberAuth    *services.MemberAuthService
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberAuth *services.MemberAuthService, memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{
		memberAuth:    memberAuth,
		memberService: memberService,
	}
}

// MemberLoginRequest represents member login request body. sl_no is
// accepted as a JSON number or string; encoded carries an optional
// base64 "sl_no:otp_password" pair.
type MemberLoginRequest struct {
	SlNo        json.Number `json:"sl_no"`
	OtpPassword string      `json:"otp_password"`
	Encoded     string      `json:"encoded"`
}

// Login handles member login
// @Summary Member login
// @Description Authenticate a member by serial number and OTP password
// @Tags Members
// @Accept json
// @Produce json
// @Param body body MemberLoginRequest true "Member credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/members/login [post]
func (h *MemberHandler) Login(c *fiber.Ctx) error {
	var req MemberLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	slNoRaw, otp := req.SlNo.String(), req.OtpPassword
	if req.Encoded != "" {
		var err error
		slNoRaw, otp, err = credentials.DecodeBasic(req.Encoded)
		if err != nil {
			return response.BadRequest(c, "Malformed encoded credentials")
		}
	}

	if slNoRaw == "" || otp == "" {
		return response.BadRequest(c, "Serial number and OTP password are required")
	}

	slNo, err := strconv.Atoi(slNoRaw)
	if err != nil {
		return response.BadRequest(c, "Serial number must be a number")
	}

	member, err := h.memberAuth.Authenticate(c.Context(), slNo, otp)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid serial number or OTP password")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	return response.Success(c, "Authentication successful", member)
}

// GetMember returns a member's own profile
// @Summary Get member profile
// @Tags Members
// @Produce json
// @Param sl_no path int true "Serial number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/members/{sl_no} [get]
func (h *MemberHandler) GetMember(c *fiber.Ctx) error {
	slNo, err := c.ParamsInt("sl_no")
	if err != nil {
		return response.BadRequest(c, "Serial number is required")
	}

	profile, err := h.memberService.GetProfile(c.Context(), slNo)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	return response.Success(c, "", profile)
}

// UpdateMember applies a member self-service profile patch
// @Summary Update member profile
// @Tags Members
// @Accept json
// @Produce json
// @Param sl_no path int true "Serial number"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/members/{sl_no} [put]
func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	slNo, err := c.ParamsInt("sl_no")
	if err != nil {
		return response.BadRequest(c, "Serial number is required")
	}

	updates := parseUpdates(c)
	if !hasSelfUpdatableField(updates) {
		return response.BadRequest(c, "No valid fields to update")
	}

	member, err := h.memberService.SelfUpdate(c.Context(), slNo, updates)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found or update failed")
		}
		return response.InternalServerError(c, "Internal server error")
	}

	return response.Success(c, "Member information updated successfully", member.ToProfile())
}

// UploadPhoto replaces a member's profile photo
// @Summary Upload member profile photo
// @Tags Members
// @Accept multipart/form-data
// @Produce json
// @Param sl_no path int true "Serial number"
// @Param photo formData file true "Photo file"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/members/{sl_no}/photo [post]
func (h *MemberHandler) UploadPhoto(c *fiber.Ctx) error {
	slNo, err := c.ParamsInt("sl_no")
	if err != nil {
		return response.BadRequest(c, "Serial number is required")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return response.BadRequest(c, "No file uploaded")
	}

	blob, mimeType, err := readImageUpload(fh)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	member, err := h.memberService.ReplacePhoto(c.Context(), slNo, blob, fh.Filename, mimeType)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to upload photo")
	}

	return response.Success(c, "Photo uploaded successfully", fiber.Map{
		"profile_photo": member.ProfilePhoto,
		"member":        member.ToProfile(),
	})
}

// DeletePhoto removes a member's profile photo
// @Summary Delete member profile photo
// @Tags Members
// @Produce json
// @Param sl_no path int true "Serial number"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/members/{sl_no}/photo [delete]
func (h *MemberHandler) DeletePhoto(c *fiber.Ctx) error {
	slNo, err := c.ParamsInt("sl_no")
	if err != nil {
		return response.BadRequest(c, "Serial number is required")
	}

	member, err := h.memberService.RemovePhoto(c.Context(), slNo)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, domain.ErrNoPhoto):
			return response.BadRequest(c, "No photo to delete")
		default:
			return response.InternalServerError(c, "Failed to delete photo")
		}
	}

	return response.Success(c, "Photo deleted successfully", member.ToProfile())
}

// hasSelfUpdatableField reports whether the patch touches at least one
// field a member may change
func hasSelfUpdatableField(updates map[string]interface{}) bool {
	allowed := []string{"address", "family_members", "mobile_no", "occupation", "blood_group", "native_place", "email", "current_status", "profile_photo"}
	for _, key := range allowed {
		if _, ok := updates[key]; ok {
			return true
		}
	}
	return false
}
