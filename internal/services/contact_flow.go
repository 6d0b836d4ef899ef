package services

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"

	"premier-properties/internal/errors"
	"premier-properties/internal/models"
	"premier-properties/internal/validators"
	"premier-properties/pkg/logger"
	"premier-properties/pkg/metrics"
)

// ContactInput is the raw content of the contact form.
type ContactInput struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Message string `form:"message"`
}

// ContactFlow drives one inquiry about one property:
// idle -> sending -> sent, or sending -> error -> sending on retry.
// It has its own lock so a submission can be in flight while the session
// keeps serving reads.
type ContactFlow struct {
	mu          sync.Mutex
	propertyID  int64
	status      models.ContactStatus
	input       ContactInput
	fieldErrors validators.FieldErrors
	submitter   InquirySubmitter
	validator   validators.ContactValidator
}

func NewContactFlow(propertyID int64, submitter InquirySubmitter, validator validators.ContactValidator) *ContactFlow {
	return &ContactFlow{
		propertyID: propertyID,
		status:     models.ContactStatusIdle,
		submitter:  submitter,
		validator:  validator,
	}
}

// ContactSnapshot is a read-only copy of a ContactFlow.
type ContactSnapshot struct {
	PropertyID  int64
	Status      models.ContactStatus
	Input       ContactInput
	FieldErrors validators.FieldErrors
}

// Sending reports whether the form is locked by an in-flight submission.
func (s ContactSnapshot) Sending() bool { return s.Status == models.ContactStatusSending }

// Sent reports whether the confirmation replaces the form.
func (s ContactSnapshot) Sent() bool { return s.Status == models.ContactStatusSent }

// Failed reports whether the last submission failed.
func (s ContactSnapshot) Failed() bool { return s.Status == models.ContactStatusError }

func (f *ContactFlow) Snapshot() ContactSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	fe := make(validators.FieldErrors, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		fe[k] = v
	}
	return ContactSnapshot{
		PropertyID:  f.propertyID,
		Status:      f.status,
		Input:       f.input,
		FieldErrors: fe,
	}
}

func (f *ContactFlow) Status() models.ContactStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submit validates in and sends it. Field problems come back as an
// INVALID_PARAMETERS error and leave the status untouched. A backend failure
// is absorbed into the error status; the entered values are kept for retry.
func (f *ContactFlow) Submit(ctx context.Context, in ContactInput) error {
	f.mu.Lock()
	switch f.status {
	case models.ContactStatusSending:
		f.mu.Unlock()
		return errors.NewInvalidStateError("contact submission already in flight")
	case models.ContactStatusSent:
		f.mu.Unlock()
		return errors.NewInvalidStateError("contact inquiry already sent")
	}

	f.input = in
	data := models.ContactFormData{
		PropertyID: f.propertyID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      strings.TrimSpace(in.Phone),
		Message:    in.Message,
	}
	if err := f.validator.ValidateContact(&data); err != nil {
		var fe validators.FieldErrors
		if stderrors.As(err, &fe) {
			f.fieldErrors = fe
		}
		f.mu.Unlock()
		return errors.NewInvalidParametersError("contact form rejected", err)
	}
	f.fieldErrors = nil
	f.status = models.ContactStatusSending
	f.mu.Unlock()

	err := f.submitter.SubmitContactInquiry(context.WithoutCancel(ctx), data)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		logger.GlobalLogger.Warnf("Contact inquiry failed: property_id=%d, error=%v", f.propertyID, err)
		metrics.ContactSubmissionsTotal.WithLabelValues("failure").Inc()
		f.status = models.ContactStatusError
		return nil
	}
	logger.GlobalLogger.Printf("Contact inquiry sent: property_id=%d", f.propertyID)
	metrics.ContactSubmissionsTotal.WithLabelValues("success").Inc()
	f.status = models.ContactStatusSent
	return nil
}

// Closable reports whether the form may be dismissed.
func (f *ContactFlow) Closable() bool {
	return f.Status() != models.ContactStatusSending
}
