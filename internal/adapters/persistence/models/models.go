package models

import (
	"time"

	"gorm.io/gorm"
)

// Accommodation status lifecycle. The expiry marker is set by the daily sweep
// once end_date has passed; such records need resubmitted restrictions.
const (
	StatusPending       = "Pending"
	StatusApproved      = "Approved"
	StatusPendingUpdate = "Pending updated Restrictions"
)

// DateFormat is the wire format for start/end dates.
const DateFormat = "2006-01-02"

// Accommodation represents the accommodations table: one row per
// accommodation request ("restriction") for an associate.
type Accommodation struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	ClaimNumber       string         `gorm:"uniqueIndex;size:50;not null" json:"claim_number"`
	AssociateLogin    string         `gorm:"index;size:50;not null" json:"associate_login"`
	AssociateName     string         `gorm:"size:100" json:"associate_name"`
	ManagerLogin      string         `gorm:"size:50" json:"manager_login"`
	AssociateHomePath string         `gorm:"size:100" json:"associate_home_path"`
	ShiftPattern      string         `gorm:"size:50" json:"shift_pattern"`
	ShiftType         string         `gorm:"size:10;index" json:"shift_type"`
	Site              string         `gorm:"size:10;index" json:"site"`
	AccommodationRole string         `gorm:"size:100" json:"accommodation_role"`
	IsSeated          bool           `gorm:"default:false" json:"is_seated"`
	Restrictions      string         `gorm:"type:text" json:"restrictions"`
	Status            string         `gorm:"size:40;default:'Pending';index" json:"status"`
	StartDate         *time.Time     `gorm:"type:date" json:"start_date,omitempty"`
	EndDate           *time.Time     `gorm:"type:date" json:"end_date,omitempty"`
	RequestorLogin    string         `gorm:"size:50" json:"requestor_login"`
	SupportingDocKey  string         `gorm:"size:255" json:"-"`
	SupportingDocURL  string         `gorm:"size:1024" json:"supporting_doc_url,omitempty"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Accommodation) TableName() string {
	return "accommodations"
}

// IsCountable reports whether the record counts toward seat occupancy:
// Approved status and a seated role.
func (a *Accommodation) IsCountable() bool {
	return a.Status == StatusApproved && a.IsSeated
}

// AccommodationResponse DTO
type AccommodationResponse struct {
	ID                uint      `json:"id"`
	ClaimNumber       string    `json:"claim_number"`
	AssociateLogin    string    `json:"associate_login"`
	AssociateName     string    `json:"associate_name"`
	ManagerLogin      string    `json:"manager_login"`
	AssociateHomePath string    `json:"associate_home_path"`
	ShiftPattern      string    `json:"shift_pattern"`
	ShiftType         string    `json:"shift_type"`
	Site              string    `json:"site"`
	AccommodationRole string    `json:"accommodation_role"`
	IsSeated          bool      `json:"is_seated"`
	Restrictions      string    `json:"restrictions"`
	Status            string    `json:"status"`
	StartDate         string    `json:"start_date,omitempty"`
	EndDate           string    `json:"end_date,omitempty"`
	RequestorLogin    string    `json:"requestor_login"`
	SupportingDocURL  string    `json:"supporting_doc_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (a *Accommodation) ToResponse() *AccommodationResponse {
	resp := &AccommodationResponse{
		ID:                a.ID,
		ClaimNumber:       a.ClaimNumber,
		AssociateLogin:    a.AssociateLogin,
		AssociateName:     a.AssociateName,
		ManagerLogin:      a.ManagerLogin,
		AssociateHomePath: a.AssociateHomePath,
		ShiftPattern:      a.ShiftPattern,
		ShiftType:         a.ShiftType,
		Site:              a.Site,
		AccommodationRole: a.AccommodationRole,
		IsSeated:          a.IsSeated,
		Restrictions:      a.Restrictions,
		Status:            a.Status,
		RequestorLogin:    a.RequestorLogin,
		SupportingDocURL:  a.SupportingDocURL,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	if a.StartDate != nil {
		resp.StartDate = a.StartDate.Format(DateFormat)
	}
	if a.EndDate != nil {
		resp.EndDate = a.EndDate.Format(DateFormat)
	}
	return resp
}

// AutoMigrate runs auto migration for application tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Accommodation{},
	)
}
