package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReportSnapshot is a materialized report for a resolved time window, stored
// as JSON so it can be served later without recomputation.
type ReportSnapshot struct {
	gorm.Model

	Period      string         `gorm:"size:16;index" json:"period"`
	WindowStart time.Time      `json:"window_start"`
	WindowEnd   time.Time      `json:"window_end"`
	Payload     datatypes.JSON `json:"payload"`
}
