package v1

import (
	"time"
)

// RegisterRequest is the account registration payload.
// @Description Account registration payload
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// LoginRequest is the credential payload for login.
// @Description Credential payload for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token to exchange for a new pair.
// @Description Refresh token exchange payload
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenResponse is the credential set returned by login and refresh.
// @Description Access and refresh tokens
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// UserResponse is the public view of an account.
// @Description Public view of a user account
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateReportRequest is the citizen report submission. It binds from
// multipart form fields so an image can ride along in the same request.
// @Description Citizen water-logging report submission
type CreateReportRequest struct {
	Title       string  `form:"title" json:"title" validate:"required,min=5,max=200"`
	Description string  `form:"description" json:"description" validate:"required,min=10,max=5000"`
	Latitude    float64 `form:"latitude" json:"latitude" validate:"required,latitude"`
	Longitude   float64 `form:"longitude" json:"longitude" validate:"required,longitude"`
	Address     string  `form:"address" json:"address,omitempty" validate:"omitempty,max=500"`
	Severity    string  `form:"severity" json:"severity,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
}

// TriageRequest is the authority update to a report. All fields are
// optional; absent fields are left untouched.
// @Description Authority triage update
type TriageRequest struct {
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
	Severity *string `json:"severity,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Agency   *string `json:"assigned_agency,omitempty" validate:"omitempty,oneof=MCD PWD NDMC DDA OTHER"`
	Notes    string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// CommentRequest is a comment on a report.
// @Description Comment payload
type CommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// ReportResponse is the full report view.
// @Description Full report view
type ReportResponse struct {
	ID                  int64      `json:"id"`
	UserID              int64      `json:"user_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Latitude            float64    `json:"latitude"`
	Longitude           float64    `json:"longitude"`
	Address             string     `json:"address,omitempty"`
	WardID              *int64     `json:"ward_id,omitempty"`
	Status              string     `json:"status"`
	Severity            string     `json:"severity"`
	AssignedAgency      *string    `json:"assigned_agency,omitempty"`
	ImagePath           string     `json:"image_path,omitempty"`
	ResolutionImagePath string     `json:"resolution_image_path,omitempty"`
	UpvoteCount         int        `json:"upvote_count"`
	CommentCount        int        `json:"comment_count"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	ResolvedAt          *time.Time `json:"resolved_at,omitempty"`
}

// ReportListResponse is a page of reports with the total match count.
// @Description Paginated report listing
type ReportListResponse struct {
	Reports  []*ReportResponse `json:"reports"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// CommentResponse is one comment on a report.
// @Description Comment on a report
type CommentResponse struct {
	ID        int64     `json:"id"`
	ReportID  int64     `json:"report_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditEntryResponse is one entry in a report's audit trail.
// @Description Audit trail entry
type AuditEntryResponse struct {
	ID        int64             `json:"id"`
	ReportID  int64             `json:"report_id"`
	UserID    int64             `json:"user_id"`
	Action    string            `json:"action"`
	OldStatus *string           `json:"old_status,omitempty"`
	NewStatus *string           `json:"new_status,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
