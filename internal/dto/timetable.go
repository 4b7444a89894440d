package dto

// GenerateTimetableRequest carries the optional per-run scheduling config.
// Overrides and break windows are copied verbatim onto each generated
// Timetable header.
type GenerateTimetableRequest struct {
	PeriodsPerDayOverrides map[string]int `json:"periods_per_day_overrides,omitempty"`
	BreakStartTime         *string        `json:"break_start_time,omitempty" binding:"omitempty,len=5"`
	BreakEndTime           *string        `json:"break_end_time,omitempty"   binding:"omitempty,len=5"`
}

// TimetableEntryResponse is one scheduled period in API responses.
type TimetableEntryResponse struct {
	ID           string `json:"timetable_entry_id"`
	TimetableID  string `json:"timetable_id"`
	ClassID      string `json:"class_id"`
	SectionID    string `json:"section_id"`
	SubjectID    string `json:"subject_id"`
	SubjectName  string `json:"subject_name,omitempty"`
	TeacherID    string `json:"teacher_id"`
	TeacherName  string `json:"teacher_name,omitempty"`
	DayOfWeek    string `json:"day_of_week"`
	PeriodNumber int    `json:"period_number"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

// TimetableResponse is a generated timetable header with its entries.
type TimetableResponse struct {
	ID                     string                   `json:"timetable_id"`
	ClassID                string                   `json:"class_id"`
	SectionID              string                   `json:"section_id"`
	SectionName            string                   `json:"section_name,omitempty"`
	TeacherID              string                   `json:"teacher_id,omitempty"`
	PeriodsPerDay          int                      `json:"periods_per_day"`
	PeriodsPerDayOverrides map[string]int           `json:"periods_per_day_overrides,omitempty"`
	BreakStartTime         *string                  `json:"break_start_time,omitempty"`
	BreakEndTime           *string                  `json:"break_end_time,omitempty"`
	Entries                []TimetableEntryResponse `json:"entries,omitempty"`
}

// WeeklyTimetableRequest selects the weekly view subject: exactly one of
// SectionID or TeacherID must be set.
type WeeklyTimetableRequest struct {
	SectionID string `form:"section_id"`
	TeacherID string `form:"teacher_id"`
}

// WeeklyDayGroup is one weekday's entries in the grouped weekly view.
type WeeklyDayGroup struct {
	Day     string                   `json:"day"`
	Entries []TimetableEntryResponse `json:"entries"`
}

// WeeklyTimetableResponse is the Monday..Friday grouped view. Days is an
// ordered list so the fixed 5-day order survives JSON serialization.
type WeeklyTimetableResponse struct {
	ClassID string           `json:"class_id"`
	Days    []WeeklyDayGroup `json:"days"`
}
