package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/codewithnuh/school-management-system-sub000/internal/model"
	"github.com/codewithnuh/school-management-system-sub000/internal/repository"
	"github.com/codewithnuh/school-management-system-sub000/pkg/apperrors"
)

// ExportService renders a section's latest timetable as a downloadable file.
//
// Exports return a bytes.Buffer plus a suggested filename; the handler layer
// sets the HTTP headers and streams the buffer.
type ExportService interface {
	// ExportSectionXLSX renders the timetable as a weekday-by-period grid.
	ExportSectionXLSX(ctx context.Context, classID, sectionID string) (*bytes.Buffer, string, error)
	// ExportSectionICS renders the timetable as weekly recurring
	// iCalendar events.
	ExportSectionICS(ctx context.Context, classID, sectionID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) loadSectionEntries(ctx context.Context, classID, sectionID string) (*model.Timetable, string, error) {
	timetable, err := s.repo.Timetable.GetBySection(ctx, classID, sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.NotFound("timetable", sectionID)
		}
		s.logger.Error("load timetable for export failed", zap.String("sectionID", sectionID), zap.Error(err))
		return nil, "", err
	}
	if len(timetable.Entries) == 0 {
		return nil, "", apperrors.NotFound("timetable entries for section", sectionID)
	}

	sectionName := sectionID
	if timetable.Section != nil && timetable.Section.Name != "" {
		sectionName = timetable.Section.Name
	}
	sortEntriesCanonical(timetable.Entries)
	return timetable, sectionName, nil
}

// ════════════════════════════════════════════════════════════
// ExportSectionXLSX — weekday columns × period rows
// ════════════════════════════════════════════════════════════
//
// Layout:
//   - title row with the section name, merged across the grid
//   - header: | Period | Time | Monday | ... | Sunday | (only days present)
//   - cell text: "Subject (Teacher)", "-" where a day has no such period

func (s *exportService) ExportSectionXLSX(ctx context.Context, classID, sectionID string) (*bytes.Buffer, string, error) {
	timetable, sectionName, err := s.loadSectionEntries(ctx, classID, sectionID)
	if err != nil {
		return nil, "", err
	}

	// index entries and collect the day/period axes
	type gridKey struct {
		day    string
		period int
	}
	cells := make(map[gridKey]model.TimetableEntry, len(timetable.Entries))
	daySeen := make(map[string]bool)
	periodTime := make(map[int]string)
	maxPeriod := 0

	for _, e := range timetable.Entries {
		cells[gridKey{e.DayOfWeek, e.PeriodNumber}] = e
		daySeen[e.DayOfWeek] = true
		if _, ok := periodTime[e.PeriodNumber]; !ok {
			periodTime[e.PeriodNumber] = e.StartTime + "-" + e.EndTime
		}
		if e.PeriodNumber > maxPeriod {
			maxPeriod = e.PeriodNumber
		}
	}

	var days []string
	for _, d := range entryDays {
		if daySeen[d] {
			days = append(days, d)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Timetable"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 14)
	for i := range days {
		col := exportColName(2 + i)
		f.SetColWidth(sheetName, col, col, 24)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// title row
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — Weekly Timetable", sectionName))
	f.MergeCell(sheetName, "A1", exportCell(exportColName(1+len(days)), 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// header row
	row := 2
	f.SetCellValue(sheetName, exportCell("A", row), "Period")
	f.SetCellValue(sheetName, exportCell("B", row), "Time")
	for i, d := range days {
		f.SetCellValue(sheetName, exportCell(exportColName(2+i), row), d)
	}

	// one row per period number
	row = 3
	for p := 1; p <= maxPeriod; p++ {
		f.SetCellValue(sheetName, exportCell("A", row), p)
		f.SetCellValue(sheetName, exportCell("B", row), periodTime[p])
		for i, d := range days {
			col := exportColName(2 + i)
			if e, ok := cells[gridKey{d, p}]; ok {
				f.SetCellValue(sheetName, exportCell(col, row), entryCellText(e))
			} else {
				f.SetCellValue(sheetName, exportCell(col, row), "-")
			}
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("timetable_%s.xlsx", sectionName)
	return buf, filename, nil
}

func entryCellText(e model.TimetableEntry) string {
	subject := e.SubjectID
	if e.Subject != nil && e.Subject.Name != "" {
		subject = e.Subject.Name
	}
	if e.Teacher != nil && e.Teacher.Name != "" {
		return subject + " (" + e.Teacher.Name + ")"
	}
	return subject
}

// ════════════════════════════════════════════════════════════
// ExportSectionICS — RFC 5545 weekly recurrence
// ════════════════════════════════════════════════════════════
//
// Each entry becomes one VEVENT anchored to its weekday in the current
// week, repeating with FREQ=WEEKLY so calendar clients project it forward.

var icsByDay = map[string]string{
	"Monday":    "MO",
	"Tuesday":   "TU",
	"Wednesday": "WE",
	"Thursday":  "TH",
	"Friday":    "FR",
	"Saturday":  "SA",
	"Sunday":    "SU",
}

func (s *exportService) ExportSectionICS(ctx context.Context, classID, sectionID string) (*bytes.Buffer, string, error) {
	timetable, sectionName, err := s.loadSectionEntries(ctx, classID, sectionID)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//school-management-system//timetable//EN")

	now := time.Now()
	weekMonday := mondayOf(now)

	for _, e := range timetable.Entries {
		byDay, ok := icsByDay[e.DayOfWeek]
		if !ok {
			continue
		}
		startMin, err := parseClock(e.StartTime)
		if err != nil {
			return nil, "", err
		}
		endMin, err := parseClock(e.EndTime)
		if err != nil {
			return nil, "", err
		}

		anchor := weekMonday.AddDate(0, 0, dayRank[e.DayOfWeek])
		start := anchor.Add(time.Duration(startMin) * time.Minute)
		end := anchor.Add(time.Duration(endMin) * time.Minute)

		event := cal.AddEvent(fmt.Sprintf("%s-%s-%d", e.TimetableEntryID, byDay, e.PeriodNumber))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(entryCellText(e))
		event.SetDescription(fmt.Sprintf("Period %d, %s", e.PeriodNumber, sectionName))
		event.AddRrule("FREQ=WEEKLY;BYDAY=" + byDay)
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("timetable_%s.ics", sectionName)
	return buf, filename, nil
}

// mondayOf returns midnight of the Monday of t's week.
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// ── cell addressing helpers ──

func exportColName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx)
	return name
}

func exportCell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
