package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Report is one abuse report, captured at submission time from the
// reporter's session and (if present) its partner's. It doubles as the
// append-only log line and the Postgres row; json tags define the log
// format, gorm tags the table.
type Report struct {
	ID                string         `gorm:"primaryKey" json:"reportId"`
	ReporterID        string         `gorm:"index" json:"reporter"`
	PartnerID         string         `json:"partner,omitempty"`
	RoomID            string         `gorm:"index" json:"roomId,omitempty"`
	ReporterCountry   string         `json:"reporterCountry,omitempty"`
	PartnerCountry    string         `json:"partnerCountry,omitempty"`
	ReporterNickname  string         `json:"reporterNickname,omitempty"`
	PartnerNickname   string         `json:"partnerNickname,omitempty"`
	ReporterHasAvatar bool           `json:"reporterHasAvatar"`
	PartnerHasAvatar  bool           `json:"partnerHasAvatar"`
	ReporterInterests pq.StringArray `gorm:"type:text[]" json:"reporterInterests,omitempty"`
	PartnerInterests  pq.StringArray `gorm:"type:text[]" json:"partnerInterests,omitempty"`
	Reason            string         `gorm:"type:text" json:"reason"`
	Timestamp         time.Time      `json:"timestamp"`
}

// BeforeCreate assigns a report ID when the row is inserted without one.
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
