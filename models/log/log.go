package log

import "time"

// Log stores one sanitized request/response pair written by the async logger.
type Log struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Method          string    `gorm:"size:10"   json:"method"`
	URL             string    `gorm:"type:text" json:"url"`
	RequestBody     string    `gorm:"type:text" json:"request_body"`
	ResponseBody    string    `gorm:"type:text" json:"response_body"`
	RequestHeaders  string    `gorm:"type:text" json:"request_headers"`
	ResponseHeaders string    `gorm:"type:text" json:"response_headers"`
	StatusCode      int       `json:"status_code"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}
