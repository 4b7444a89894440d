package dto

// GenerateTimeSlotsRequest drives the raw day-template generator for a class.
// Days defaults to MON..SAT when empty; the generator runs once per day label.
type GenerateTimeSlotsRequest struct {
	StartTime    string   `json:"start_time"    binding:"required,len=5"`
	EndTime      string   `json:"end_time"      binding:"required,len=5"`
	PeriodLength int      `json:"period_length" binding:"required,min=1"`
	BreakLength  int      `json:"break_length"  binding:"omitempty,min=0"`
	Days         []string `json:"days,omitempty"`
}

// TimeSlotListRequest filters the persisted raw slots of a class.
type TimeSlotListRequest struct {
	Day string `form:"day"`
}

// TimeSlotResponse is one raw labeled block in API responses.
type TimeSlotResponse struct {
	ID        string `json:"time_slot_id"`
	ClassID   string `json:"class_id"`
	Day       string `json:"day"`
	Type      string `json:"type"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
