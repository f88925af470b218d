package entity

import (
	"time"

	"gorm.io/datatypes"
)

// ReportRecord archives one generation run: the composed request we
// sent to the analysis backend and the raw response it returned.
type ReportRecord struct {
	Id          uint   `gorm:"primaryKey;autoIncrement"`
	UserId      string `gorm:"index"`
	SessionId   string `gorm:"index"`
	CompanyName string
	NaicsCode   int
	Succeeded   bool
	Request     datatypes.JSON
	Response    datatypes.JSON
	CreatedAt   time.Time
}
