package models

// TimeBlock is an ad-hoc single-day exclusion window for an assistant,
// created by staff and consulted only by the availability checks.
type TimeBlock struct {
	ID        string `json:"id"`
	Assistant string `json:"assistant"`
	Date      string `json:"date"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Reason    string `json:"reason"`
}

// CreateTimeBlockRequest records a new exclusion window.
type CreateTimeBlockRequest struct {
	Assistant string `json:"assistant" binding:"required"`
	Date      string `json:"date"`
	Start     string `json:"start" binding:"required"`
	End       string `json:"end" binding:"required"`
	Reason    string `json:"reason"`
}
