package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Members
// ============================================================

// Member represents the members table. The serial number is assigned by
// the admin and never changes after creation.
//
// OtpPassword holds the bcrypt hash and is never serialized. OtpPlain is
// a plaintext mirror kept so the admin can look up and communicate a
// member's OTP; it is sensitive-at-rest data and only appears in
// admin-facing responses.
type Member struct {
	SlNo          int     `gorm:"column:sl_no;primaryKey;autoIncrement:false" json:"sl_no"`
	Name          string  `gorm:"size:255;not null" json:"name"`
	Address       string  `gorm:"type:text" json:"address"`
	FamilyMembers string  `gorm:"type:text" json:"family_members"`
	MobileNo      string  `gorm:"size:50" json:"mobile_no"`
	Occupation    string  `gorm:"size:255" json:"occupation"`
	BloodGroup    string  `gorm:"size:10" json:"blood_group"`
	NativePlace   string  `gorm:"size:255" json:"native_place"`
	Email         string  `gorm:"size:255" json:"email"`
	CurrentStatus string  `gorm:"size:50;default:'Active'" json:"current_status"`
	ProfilePhoto  *string `gorm:"size:500" json:"profile_photo"`
	OtpPassword   string  `gorm:"size:255;not null" json:"-"`
	OtpPlain      string  `gorm:"size:255" json:"otp_plain,omitempty"`
}

func (Member) TableName() string {
	return "members"
}

// MemberProfile is the member-facing view of a record: profile columns
// only, no credential fields.
type MemberProfile struct {
	SlNo          int     `json:"sl_no"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	FamilyMembers string  `json:"family_members"`
	MobileNo      string  `json:"mobile_no"`
	Occupation    string  `json:"occupation"`
	BloodGroup    string  `json:"blood_group"`
	NativePlace   string  `json:"native_place"`
	Email         string  `json:"email"`
	CurrentStatus string  `json:"current_status"`
	ProfilePhoto  *string `json:"profile_photo"`
}

func (m *Member) ToProfile() *MemberProfile {
	return &MemberProfile{
		SlNo:          m.SlNo,
		Name:          m.Name,
		Address:       m.Address,
		FamilyMembers: m.FamilyMembers,
		MobileNo:      m.MobileNo,
		Occupation:    m.Occupation,
		BloodGroup:    m.BloodGroup,
		NativePlace:   m.NativePlace,
		Email:         m.Email,
		CurrentStatus: m.CurrentStatus,
		ProfilePhoto:  m.ProfilePhoto,
	}
}

// ============================================================
// News
// ============================================================

// NewsArticle represents the news_articles table. Timestamps are set by
// the repository, never taken from the client. Date is an ISO date
// string so the listing order matches lexicographic descending sort.
type NewsArticle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Date      string    `gorm:"size:20;not null;index" json:"date"`
	Excerpt   string    `gorm:"type:text" json:"excerpt"`
	Content   string    `gorm:"type:text" json:"content"`
	ImageURL  *string   `gorm:"size:500" json:"image_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (NewsArticle) TableName() string {
	return "news_articles"
}

// ============================================================
// Office bearers (externally managed reference data, read-only here)
// ============================================================

// OfficeBearer represents the office_bearers table
type OfficeBearer struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Designation  string `gorm:"size:100" json:"designation"`
	PhotoURL     string `gorm:"size:500" json:"photo_url"`
	TermStart    string `gorm:"size:10;index" json:"term_start"`
	TermEnd      string `gorm:"size:10" json:"term_end"`
	DisplayOrder int    `json:"display_order"`
}

func (OfficeBearer) TableName() string {
	return "office_bearers"
}

// ============================================================
// Gallery
// ============================================================

// GalleryPhoto represents the gallery_photos table. Category separates
// event galleries from the social_work collection.
type GalleryPhoto struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PhotoURL     string `gorm:"size:500;not null" json:"photo_url"`
	Year         int    `gorm:"index" json:"year"`
	EventName    string `gorm:"size:255" json:"event_name"`
	Description  string `gorm:"type:text" json:"description"`
	Category     string `gorm:"size:50;index" json:"category"`
	DisplayOrder int    `json:"display_order"`
}

func (GalleryPhoto) TableName() string {
	return "gallery_photos"
}

// GalleryEvent is the deduplicated event listing for a year: each
// distinct event name with its first-encountered description.
type GalleryEvent struct {
	EventName   string `json:"event_name"`
	Description string `json:"description"`
}

// AutoMigrate creates or updates the application tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Member{},
		&NewsArticle{},
		&OfficeBearer{},
		&GalleryPhoto{},
	)
}
