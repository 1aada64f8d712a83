package models

import (
	"time"
)

type ReportStatus string

const (
	StatusOpen       ReportStatus = "OPEN"
	StatusInProgress ReportStatus = "IN_PROGRESS"
	StatusResolved   ReportStatus = "RESOLVED"
	StatusClosed     ReportStatus = "CLOSED"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Terminal reports whether the status counts as resolved for analytics.
// CLOSED is counted in the resolved bucket together with RESOLVED.
func (s ReportStatus) Terminal() bool {
	return s == StatusResolved || s == StatusClosed
}

type ReportSeverity string

const (
	SeverityLow      ReportSeverity = "LOW"
	SeverityMedium   ReportSeverity = "MEDIUM"
	SeverityHigh     ReportSeverity = "HIGH"
	SeverityCritical ReportSeverity = "CRITICAL"
)

func (s ReportSeverity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Agency is the municipal body assigned responsibility for a report.
type Agency string

const (
	AgencyMCD   Agency = "MCD"
	AgencyPWD   Agency = "PWD"
	AgencyNDMC  Agency = "NDMC"
	AgencyDDA   Agency = "DDA"
	AgencyOther Agency = "OTHER"
)

func (a Agency) Valid() bool {
	switch a {
	case AgencyMCD, AgencyPWD, AgencyNDMC, AgencyDDA, AgencyOther:
		return true
	}
	return false
}

type Report struct {
	ID                  int64          `json:"id"`
	UserID              int64          `json:"user_id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Latitude            float64        `json:"latitude"`
	Longitude           float64        `json:"longitude"`
	Address             string         `json:"address,omitempty"`
	WardID              *int64         `json:"ward_id,omitempty"`
	Status              ReportStatus   `json:"status"`
	Severity            ReportSeverity `json:"severity"`
	AssignedAgency      *Agency        `json:"assigned_agency,omitempty"`
	ImagePath           string         `json:"image_path,omitempty"`
	ResolutionImagePath string         `json:"resolution_image_path,omitempty"`
	UpvoteCount         int            `json:"upvote_count"`
	CommentCount        int            `json:"comment_count"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	ResolvedAt          *time.Time     `json:"resolved_at,omitempty"`
}

type Comment struct {
	ID        int64     `json:"id"`
	ReportID  int64     `json:"report_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditEntry records an authority action against a report.
type AuditEntry struct {
	ID        int64             `json:"id"`
	ReportID  int64             `json:"report_id"`
	UserID    int64             `json:"user_id"`
	Action    string            `json:"action"`
	OldStatus *ReportStatus     `json:"old_status,omitempty"`
	NewStatus *ReportStatus     `json:"new_status,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

const (
	AuditStatusUpdate            = "STATUS_UPDATE"
	AuditAgencyAssigned          = "AGENCY_ASSIGNED"
	AuditSeverityChanged         = "SEVERITY_CHANGED"
	AuditResolutionImageUploaded = "RESOLUTION_IMAGE_UPLOADED"
)
