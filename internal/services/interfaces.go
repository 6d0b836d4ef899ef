package services

import (
	"context"

	"premier-properties/internal/models"
)

// ListingsAPI is the backend surface the browser depends on.
type ListingsAPI interface {
	FetchProperties(ctx context.Context, filters models.PropertyFilters) ([]models.Property, error)
	InquirySubmitter
}

// InquirySubmitter sends contact inquiries.
type InquirySubmitter interface {
	SubmitContactInquiry(ctx context.Context, data models.ContactFormData) error
}
