package service

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/codewithnuh/school-management-system-sub000/internal/dto"
	"github.com/codewithnuh/school-management-system-sub000/internal/model"
	"github.com/codewithnuh/school-management-system-sub000/internal/repository"
	"github.com/codewithnuh/school-management-system-sub000/pkg/apperrors"
	"github.com/codewithnuh/school-management-system-sub000/pkg/redis"
)

// TimetableService builds and reads back weekly section timetables.
//
// Generation is class-scoped and all-or-nothing: every section's header and
// entries are built in memory first, then written in one transaction, so a
// failure on any section leaves no rows behind. Each run appends fresh rows;
// a second run for the same class yields a second set of timetables.
type TimetableService interface {
	// Generate builds one timetable per section of the class.
	Generate(ctx context.Context, classID string, req *dto.GenerateTimetableRequest) ([]dto.TimetableResponse, error)
	// GetTimetable returns a section's most recent timetable with entries.
	GetTimetable(ctx context.Context, classID, sectionID string) (*dto.TimetableResponse, error)
	// GetTeacherTimetable returns all of a teacher's entries in canonical
	// Monday..Sunday order.
	GetTeacherTimetable(ctx context.Context, teacherID string) ([]dto.TimetableEntryResponse, error)
	// GetWeeklyTimetable returns the Monday..Friday grouped view for either
	// a section or a teacher of the class.
	GetWeeklyTimetable(ctx context.Context, classID string, req *dto.WeeklyTimetableRequest) (*dto.WeeklyTimetableResponse, error)
}

type timetableService struct {
	repo   *repository.Repository
	cache  *redis.Client // nil disables caching
	logger *zap.Logger
}

// NewTimetableService creates a TimetableService. cache may be nil.
func NewTimetableService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) TimetableService {
	return &timetableService{repo: repo, cache: cache, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Generate — round-robin weekly timetable per section
// ════════════════════════════════════════════════════════════
//
// Per section: one Timetable header, then for each weekday one entry per
// period. Subject/teacher pairs rotate through the section's roster in
// order, so period n always gets roster[(n-1) mod len(roster)]. Start
// times are 08:00-based with a single break-aware shift (see entryStart).

func (s *timetableService) Generate(ctx context.Context, classID string, req *dto.GenerateTimetableRequest) ([]dto.TimetableResponse, error) {
	if req == nil {
		req = &dto.GenerateTimetableRequest{}
	}

	// 1. class and sections
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("class", classID)
		}
		s.logger.Error("load class failed", zap.String("classID", classID), zap.Error(err))
		return nil, err
	}
	if len(class.Sections) == 0 {
		return nil, apperrors.Validation("class %s has no sections", classID)
	}

	// 2. scheduling parameters
	if class.PeriodsPerDay <= 0 {
		return nil, apperrors.Validation("class %s has non-positive periods per day (%d)", classID, class.PeriodsPerDay)
	}
	if class.PeriodLength <= 0 {
		return nil, apperrors.Validation("class %s has non-positive period length (%d)", classID, class.PeriodLength)
	}

	// break window, validated once per run
	breakDuration := 0
	if req.BreakStartTime != nil && req.BreakEndTime != nil {
		breakDuration, err = minutesBetween(*req.BreakStartTime, *req.BreakEndTime)
		if err != nil {
			return nil, err
		}
		if breakDuration <= 0 {
			return nil, apperrors.Validation("break window %s-%s has non-positive duration", *req.BreakStartTime, *req.BreakEndTime)
		}
	}

	// 3. build all sections in memory, sequentially
	timetables := make([]*model.Timetable, 0, len(class.Sections))
	for _, section := range class.Sections {
		roster, err := s.repo.SectionTeacher.ListBySection(ctx, section.SectionID)
		if err != nil {
			s.logger.Error("load section roster failed", zap.String("sectionID", section.SectionID), zap.Error(err))
			return nil, err
		}
		if len(roster) == 0 {
			return nil, apperrors.Validation("section %s has no subject-teacher assignments", section.SectionID)
		}

		timetable := &model.Timetable{
			ClassID:                classID,
			SectionID:              section.SectionID,
			TeacherID:              roster[0].TeacherID,
			PeriodsPerDay:          class.PeriodsPerDay,
			PeriodsPerDayOverrides: model.WeekdayOverrides(req.PeriodsPerDayOverrides),
			BreakStartTime:         req.BreakStartTime,
			BreakEndTime:           req.BreakEndTime,
		}

		for _, day := range entryDays {
			periodsForDay := class.PeriodsPerDay
			if override, ok := req.PeriodsPerDayOverrides[day]; ok {
				periodsForDay = override
			}
			if periodsForDay <= 0 {
				continue
			}

			for n := 1; n <= periodsForDay; n++ {
				pair := roster[(n-1)%len(roster)]

				start, err := entryStart(n, class.PeriodLength, req.BreakStartTime, breakDuration)
				if err != nil {
					return nil, err
				}
				end, err := addMinutes(start, class.PeriodLength)
				if err != nil {
					return nil, err
				}

				timetable.Entries = append(timetable.Entries, model.TimetableEntry{
					ClassID:      classID,
					SectionID:    section.SectionID,
					SubjectID:    pair.SubjectID,
					TeacherID:    pair.TeacherID,
					DayOfWeek:    day,
					PeriodNumber: n,
					StartTime:    start,
					EndTime:      end,
				})
			}
		}

		timetables = append(timetables, timetable)
	}

	// 4. one transaction for the whole run
	if err := s.repo.Timetable.CreateBatch(ctx, timetables); err != nil {
		s.logger.Error("persist timetables failed", zap.String("classID", classID), zap.Error(err))
		return nil, err
	}

	s.invalidateWeeklyCache(ctx, classID)

	s.logger.Info("timetables generated",
		zap.String("classID", classID),
		zap.Int("sections", len(timetables)),
	)

	result := make([]dto.TimetableResponse, 0, len(timetables))
	for _, t := range timetables {
		result = append(result, toTimetableResponse(t))
	}
	return result, nil
}

// entryStart computes the start time of period n. The base is 08:00 plus
// (n-1) whole periods. When a break window is set and the unadjusted start
// falls past the break's start, the break duration is added exactly once;
// later periods are not re-checked against further breaks.
func entryStart(n, periodLength int, breakStart *string, breakDuration int) (string, error) {
	minutesToAdd := (n - 1) * periodLength

	if breakStart != nil && breakDuration > 0 {
		unadjusted, err := addMinutes(dayStartTime, minutesToAdd)
		if err != nil {
			return "", err
		}
		unadjustedMin, err := parseClock(unadjusted)
		if err != nil {
			return "", err
		}
		breakStartMin, err := parseClock(*breakStart)
		if err != nil {
			return "", err
		}
		if unadjustedMin > breakStartMin {
			minutesToAdd += breakDuration
		}
	}

	return addMinutes(dayStartTime, minutesToAdd)
}

// ════════════════════════════════════════════════════════════
// Read-side views
// ════════════════════════════════════════════════════════════

func (s *timetableService) GetTimetable(ctx context.Context, classID, sectionID string) (*dto.TimetableResponse, error) {
	timetable, err := s.repo.Timetable.GetBySection(ctx, classID, sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("timetable", sectionID)
		}
		s.logger.Error("load timetable failed", zap.String("sectionID", sectionID), zap.Error(err))
		return nil, err
	}

	sortEntriesCanonical(timetable.Entries)
	resp := toTimetableResponse(timetable)
	return &resp, nil
}

func (s *timetableService) GetTeacherTimetable(ctx context.Context, teacherID string) ([]dto.TimetableEntryResponse, error) {
	if teacherID == "" {
		return nil, apperrors.Validation("teacher id must not be empty")
	}

	entries, err := s.repo.TimetableEntry.ListByTeacher(ctx, teacherID)
	if err != nil {
		s.logger.Error("load teacher entries failed", zap.String("teacherID", teacherID), zap.Error(err))
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.NotFound("timetable entries for teacher", teacherID)
	}

	sortEntriesCanonical(entries)
	return toEntryResponses(entries), nil
}

func (s *timetableService) GetWeeklyTimetable(ctx context.Context, classID string, req *dto.WeeklyTimetableRequest) (*dto.WeeklyTimetableResponse, error) {
	if (req.SectionID == "") == (req.TeacherID == "") {
		return nil, apperrors.Validation("exactly one of section_id or teacher_id is required")
	}

	cacheKey := "weekly:" + classID + ":section:" + req.SectionID + ":teacher:" + req.TeacherID
	if cached := s.readWeeklyCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	var (
		entries []model.TimetableEntry
		err     error
	)
	if req.SectionID != "" {
		entries, err = s.repo.TimetableEntry.ListBySection(ctx, classID, req.SectionID)
	} else {
		entries, err = s.repo.TimetableEntry.ListByClassAndTeacher(ctx, classID, req.TeacherID)
	}
	if err != nil {
		s.logger.Error("load weekly entries failed", zap.String("classID", classID), zap.Error(err))
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.NotFound("timetable entries for class", classID)
	}

	// group by weekday in the fixed Monday..Friday order; weekend entries
	// are excluded from this view
	byDay := make(map[string][]model.TimetableEntry, len(weeklyViewDays))
	for _, e := range entries {
		byDay[e.DayOfWeek] = append(byDay[e.DayOfWeek], e)
	}

	resp := &dto.WeeklyTimetableResponse{ClassID: classID}
	for _, day := range weeklyViewDays {
		dayEntries, ok := byDay[day]
		if !ok {
			continue
		}
		sortEntriesCanonical(dayEntries)
		resp.Days = append(resp.Days, dto.WeeklyDayGroup{
			Day:     day,
			Entries: toEntryResponses(dayEntries),
		})
	}
	if len(resp.Days) == 0 {
		return nil, apperrors.NotFound("weekday timetable entries for class", classID)
	}

	s.writeWeeklyCache(ctx, cacheKey, resp)
	return resp, nil
}

// ── weekly view cache (best effort, nil-safe) ──

func (s *timetableService) readWeeklyCache(ctx context.Context, key string) *dto.WeeklyTimetableResponse {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.GetWeekly(ctx, key)
	if err != nil {
		s.logger.Warn("weekly cache read failed", zap.Error(err))
		return nil
	}
	if payload == "" {
		return nil
	}
	var resp dto.WeeklyTimetableResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *timetableService) writeWeeklyCache(ctx context.Context, key string, resp *dto.WeeklyTimetableResponse) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.SetWeekly(ctx, key, string(payload)); err != nil {
		s.logger.Warn("weekly cache write failed", zap.Error(err))
	}
}

func (s *timetableService) invalidateWeeklyCache(ctx context.Context, classID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateClass(ctx, classID); err != nil {
		s.logger.Warn("weekly cache invalidation failed", zap.String("classID", classID), zap.Error(err))
	}
}

// ── response converters ──

func toTimetableResponse(t *model.Timetable) dto.TimetableResponse {
	resp := dto.TimetableResponse{
		ID:                     t.TimetableID,
		ClassID:                t.ClassID,
		SectionID:              t.SectionID,
		TeacherID:              t.TeacherID,
		PeriodsPerDay:          t.PeriodsPerDay,
		PeriodsPerDayOverrides: map[string]int(t.PeriodsPerDayOverrides),
		BreakStartTime:         t.BreakStartTime,
		BreakEndTime:           t.BreakEndTime,
		Entries:                toEntryResponses(t.Entries),
	}
	if t.Section != nil {
		resp.SectionName = t.Section.Name
	}
	return resp
}

func toEntryResponses(entries []model.TimetableEntry) []dto.TimetableEntryResponse {
	result := make([]dto.TimetableEntryResponse, 0, len(entries))
	for _, e := range entries {
		r := dto.TimetableEntryResponse{
			ID:           e.TimetableEntryID,
			TimetableID:  e.TimetableID,
			ClassID:      e.ClassID,
			SectionID:    e.SectionID,
			SubjectID:    e.SubjectID,
			TeacherID:    e.TeacherID,
			DayOfWeek:    e.DayOfWeek,
			PeriodNumber: e.PeriodNumber,
			StartTime:    e.StartTime,
			EndTime:      e.EndTime,
		}
		if e.Subject != nil {
			r.SubjectName = e.Subject.Name
		}
		if e.Teacher != nil {
			r.TeacherName = e.Teacher.Name
		}
		result = append(result, r)
	}
	return result
}
