package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Availability struct {
	Virtual  bool `gorm:"column:virtual;not null;default:false" json:"virtual"`
	InPerson bool `gorm:"column:in_person;not null;default:false" json:"inPerson"`
}

// Doctor is read-only reference data served by the doctor directory.
type Doctor struct {
	ID              string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Specialty       string          `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Rating          float64         `gorm:"not null" json:"rating"`
	Experience      int             `gorm:"not null" json:"experience"` // years
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultationFee"`
	Availability    Availability    `gorm:"embedded;embeddedPrefix:available_" json:"availability"`
	Image           string          `gorm:"type:text" json:"image"`
	Location        *string         `gorm:"type:varchar(255)" json:"location,omitempty"`
	NextAvailable   time.Time       `gorm:"not null" json:"nextAvailable"`
	SortOrder       int             `gorm:"not null;default:0" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d Doctor) Clone() Doctor {
	c := d
	if d.Location != nil {
		loc := *d.Location
		c.Location = &loc
	}
	return c
}

func CloneDoctors(in []Doctor) []Doctor {
	if in == nil {
		return nil
	}
	out := make([]Doctor, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
