package services

import (
	"fmt"

	"premier-properties/internal/errors"
	"premier-properties/internal/models"
)

// DetailFlow is the open detail view of one selected property.
type DetailFlow struct {
	property   models.Property
	photoIndex int
	contact    *ContactFlow
	newContact func(propertyID int64) *ContactFlow
}

func NewDetailFlow(property models.Property, newContact func(propertyID int64) *ContactFlow) *DetailFlow {
	return &DetailFlow{property: property, newContact: newContact}
}

// DetailSnapshot is a read-only copy of a DetailFlow.
type DetailSnapshot struct {
	Property   models.Property
	PhotoIndex int
	Contact    *ContactSnapshot
}

// ContactOpen reports whether the contact form is shown.
func (s DetailSnapshot) ContactOpen() bool { return s.Contact != nil }

func (d *DetailFlow) Snapshot() DetailSnapshot {
	snap := DetailSnapshot{Property: d.Property(), PhotoIndex: d.PhotoIndex()}
	if d.contact != nil {
		c := d.contact.Snapshot()
		snap.Contact = &c
	}
	return snap
}

func (d *DetailFlow) Property() models.Property {
	return d.property
}

func (d *DetailFlow) PhotoIndex() int {
	return d.photoIndex
}

// SelectPhoto moves the gallery to index i.
func (d *DetailFlow) SelectPhoto(i int) error {
	if i < 0 || i >= len(d.property.Photos) {
		return errors.NewInvalidParametersError(
			fmt.Sprintf("photo index %d out of range for %d photos", i, len(d.property.Photos)), nil)
	}
	d.photoIndex = i
	return nil
}

// OpenContact shows the contact form. A form that is already open is kept.
func (d *DetailFlow) OpenContact() *ContactFlow {
	if d.contact == nil {
		d.contact = d.newContact(d.property.ID)
	}
	return d.contact
}

// Contact returns the open contact form, or nil.
func (d *DetailFlow) Contact() *ContactFlow {
	return d.contact
}

// CloseContact hides the contact form and discards its state. It is refused
// while a submission is in flight.
func (d *DetailFlow) CloseContact() error {
	if d.contact == nil {
		return nil
	}
	if !d.contact.Closable() {
		return errors.NewInvalidStateError("cannot close contact form while sending")
	}
	d.contact = nil
	return nil
}
