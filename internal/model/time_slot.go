package model

// Slot type constants for TimeSlot.Type.
const (
	SlotTypePeriod = "PERIOD"
	SlotTypeBreak  = "BREAK"
	SlotTypeLunch  = "LUNCH"
)

// Slot day labels (abbreviated vocabulary, distinct from the full
// Monday..Sunday names used by timetable entries).
var SlotDays = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT"}

// TimeSlot maps to time_slots: a raw labeled day-template block for a class,
// not linked to any subject or teacher.
type TimeSlot struct {
	TimeSlotID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"time_slot_id"`
	ClassID    string `gorm:"type:uuid;not null"                             json:"class_id"`
	Day        string `gorm:"type:varchar(3);not null"                       json:"day"` // MON..SAT
	Type       string `gorm:"type:varchar(10);not null;default:'PERIOD'"     json:"type"`
	StartTime  string `gorm:"type:varchar(5);not null"                       json:"start_time"` // "HH:MM"
	EndTime    string `gorm:"type:varchar(5);not null"                       json:"end_time"`   // "HH:MM"
	BaseModel
}

// TableName sets the table name.
func (TimeSlot) TableName() string { return "time_slots" }
