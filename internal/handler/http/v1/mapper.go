package v1

import "github.com/citypulse/waterlog-api/internal/models"

func ModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

func ModelToReportResponse(report *models.Report) *ReportResponse {
	resp := &ReportResponse{
		ID:                  report.ID,
		UserID:              report.UserID,
		Title:               report.Title,
		Description:         report.Description,
		Latitude:            report.Latitude,
		Longitude:           report.Longitude,
		Address:             report.Address,
		WardID:              report.WardID,
		Status:              string(report.Status),
		Severity:            string(report.Severity),
		ImagePath:           report.ImagePath,
		ResolutionImagePath: report.ResolutionImagePath,
		UpvoteCount:         report.UpvoteCount,
		CommentCount:        report.CommentCount,
		CreatedAt:           report.CreatedAt,
		UpdatedAt:           report.UpdatedAt,
		ResolvedAt:          report.ResolvedAt,
	}
	if report.AssignedAgency != nil {
		agency := string(*report.AssignedAgency)
		resp.AssignedAgency = &agency
	}
	return resp
}

func ModelsToReportResponses(reports []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = ModelToReportResponse(report)
	}
	return responses
}

func ModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		ReportID:  comment.ReportID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

func ModelsToCommentResponses(comments []*models.Comment) []*CommentResponse {
	responses := make([]*CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = ModelToCommentResponse(comment)
	}
	return responses
}

func ModelToAuditResponse(entry *models.AuditEntry) *AuditEntryResponse {
	resp := &AuditEntryResponse{
		ID:        entry.ID,
		ReportID:  entry.ReportID,
		UserID:    entry.UserID,
		Action:    entry.Action,
		Details:   entry.Details,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
	}
	if entry.OldStatus != nil {
		s := string(*entry.OldStatus)
		resp.OldStatus = &s
	}
	if entry.NewStatus != nil {
		s := string(*entry.NewStatus)
		resp.NewStatus = &s
	}
	return resp
}

func ModelsToAuditResponses(entries []*models.AuditEntry) []*AuditEntryResponse {
	responses := make([]*AuditEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ModelToAuditResponse(entry)
	}
	return responses
}
