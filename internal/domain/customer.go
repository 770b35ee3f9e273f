package domain

import "time"

type DocumentType struct {
	ID        string
	Name      string
	State     bool
	DeletedAt *time.Time
}

func (d *DocumentType) EntityID() string         { return d.ID }
func (d *DocumentType) SoftDeleted() bool        { return d.DeletedAt != nil }
func (d *DocumentType) MarkDeleted(at time.Time) { d.DeletedAt = &at }

type Customer struct {
	ID             string
	FullName       string
	Document       string
	DocumentTypeID string
	Email          string
	PasswordHash   string
	Phone          string
	State          bool
	AvatarURL      *string
	CreatedAt      time.Time
	DeletedAt      *time.Time
}

func (c *Customer) EntityID() string         { return c.ID }
func (c *Customer) SoftDeleted() bool        { return c.DeletedAt != nil }
func (c *Customer) MarkDeleted(at time.Time) { c.DeletedAt = &at }
