package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/codewithnuh/school-management-system-sub000/internal/dto"
	"github.com/codewithnuh/school-management-system-sub000/internal/model"
	"github.com/codewithnuh/school-management-system-sub000/internal/repository"
	"github.com/codewithnuh/school-management-system-sub000/pkg/apperrors"
)

// ── test helpers ──

func setupTestTimeSlotService() (TimeSlotService, *mockClassRepo, *mockTimeSlotRepo) {
	classRepo := newMockClassRepo()
	timeSlotRepo := newMockTimeSlotRepo()
	repo := &repository.Repository{
		Class:          classRepo,
		SectionTeacher: newMockSectionTeacherRepo(),
		Timetable:      newMockTimetableRepo(),
		TimetableEntry: newMockTimetableEntryRepo(),
		TimeSlot:       timeSlotRepo,
	}
	svc := NewTimeSlotService(repo, zap.NewNop())
	return svc, classRepo, timeSlotRepo
}

// ── GenerateTimeSlots tests ──

func TestGenerateTimeSlots_PeriodsOnly(t *testing.T) {
	slots, err := GenerateTimeSlots("08:00", "10:00", 60, 0, "MON")
	if err != nil {
		t.Fatalf("GenerateTimeSlots should succeed: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].StartTime != "08:00" || slots[0].EndTime != "09:00" {
		t.Errorf("slot 0: expected 08:00-09:00, got %s-%s", slots[0].StartTime, slots[0].EndTime)
	}
	if slots[1].StartTime != "09:00" || slots[1].EndTime != "10:00" {
		t.Errorf("slot 1: expected 09:00-10:00, got %s-%s", slots[1].StartTime, slots[1].EndTime)
	}
	for i, sl := range slots {
		if sl.Type != model.SlotTypePeriod {
			t.Errorf("slot %d: expected PERIOD, got %s", i, sl.Type)
		}
		if sl.Day != "MON" {
			t.Errorf("slot %d: expected day MON, got %s", i, sl.Day)
		}
	}
}

func TestGenerateTimeSlots_WithBreaks(t *testing.T) {
	slots, err := GenerateTimeSlots("08:00", "10:00", 45, 10, "TUE")
	if err != nil {
		t.Fatalf("GenerateTimeSlots should succeed: %v", err)
	}
	// 08:00-08:45 P, 08:45-08:55 B, 08:55-09:40 P, 09:40-09:50 B;
	// the next period would end 10:35 > 10:00, dropped
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}
	if slots[1].Type != model.SlotTypeBreak {
		t.Errorf("slot 1: expected BREAK, got %s", slots[1].Type)
	}
	if slots[2].StartTime != "08:55" || slots[2].EndTime != "09:40" {
		t.Errorf("slot 2: expected 08:55-09:40, got %s-%s", slots[2].StartTime, slots[2].EndTime)
	}
	if slots[3].StartTime != "09:40" || slots[3].EndTime != "09:50" {
		t.Errorf("slot 3: expected 09:40-09:50, got %s-%s", slots[3].StartTime, slots[3].EndTime)
	}
}

func TestGenerateTimeSlots_PartialPeriodDropped(t *testing.T) {
	slots, err := GenerateTimeSlots("08:00", "09:30", 60, 0, "WED")
	if err != nil {
		t.Fatalf("GenerateTimeSlots should succeed: %v", err)
	}
	// 08:00-09:00 fits; 09:00-10:00 would pass 09:30, dropped not truncated
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].EndTime != "09:00" {
		t.Errorf("expected end 09:00, got %s", slots[0].EndTime)
	}
}

func TestGenerateTimeSlots_WindowTooSmall(t *testing.T) {
	slots, err := GenerateTimeSlots("08:00", "08:30", 45, 0, "MON")
	if err != nil {
		t.Fatalf("GenerateTimeSlots should succeed: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected 0 slots, got %d", len(slots))
	}
}

func TestGenerateTimeSlots_InvalidInputs(t *testing.T) {
	cases := []struct {
		name                      string
		start, end                string
		periodLength, breakLength int
		day                       string
	}{
		{"zero period length", "08:00", "10:00", 0, 0, "MON"},
		{"negative break length", "08:00", "10:00", 45, -5, "MON"},
		{"bad day label", "08:00", "10:00", 45, 0, "Monday"},
		{"bad start time", "8:00", "10:00", 45, 0, "MON"},
		{"bad end time", "08:00", "25:00", 45, 0, "MON"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateTimeSlots(tc.start, tc.end, tc.periodLength, tc.breakLength, tc.day)
			var validation *apperrors.ValidationError
			if !errors.As(err, &validation) {
				t.Errorf("expected ValidationError, got: %v", err)
			}
		})
	}
}

// ── GenerateForClass tests ──

func TestTimeSlotService_GenerateForClass_Success(t *testing.T) {
	svc, classRepo, tsRepo := setupTestTimeSlotService()
	classRepo.classes["class-001"] = &model.Class{ClassID: "class-001", Name: "Grade 8"}

	req := &dto.GenerateTimeSlotsRequest{
		StartTime:    "08:00",
		EndTime:      "09:30",
		PeriodLength: 45,
		Days:         []string{"MON", "TUE"},
	}

	slots, err := svc.GenerateForClass(context.Background(), "class-001", req)
	if err != nil {
		t.Fatalf("GenerateForClass should succeed: %v", err)
	}
	// 2 periods per day across 2 days
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}
	if len(tsRepo.slots) != 4 {
		t.Errorf("expected 4 persisted slots, got %d", len(tsRepo.slots))
	}
	for _, sl := range slots {
		if sl.ClassID != "class-001" {
			t.Errorf("expected class-001 on every slot, got %s", sl.ClassID)
		}
	}
}

func TestTimeSlotService_GenerateForClass_DefaultsToAllDays(t *testing.T) {
	svc, classRepo, _ := setupTestTimeSlotService()
	classRepo.classes["class-001"] = &model.Class{ClassID: "class-001"}

	req := &dto.GenerateTimeSlotsRequest{
		StartTime:    "08:00",
		EndTime:      "08:45",
		PeriodLength: 45,
	}

	slots, err := svc.GenerateForClass(context.Background(), "class-001", req)
	if err != nil {
		t.Fatalf("GenerateForClass should succeed: %v", err)
	}
	if len(slots) != len(model.SlotDays) {
		t.Errorf("expected one slot per default day (%d), got %d", len(model.SlotDays), len(slots))
	}
}

func TestTimeSlotService_GenerateForClass_ClassNotFound(t *testing.T) {
	svc, _, _ := setupTestTimeSlotService()

	req := &dto.GenerateTimeSlotsRequest{StartTime: "08:00", EndTime: "10:00", PeriodLength: 45}
	_, err := svc.GenerateForClass(context.Background(), "nonexistent", req)
	var notFound *apperrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("expected NotFoundError, got: %v", err)
	}
}

func TestTimeSlotService_GenerateForClass_EmptyWindow(t *testing.T) {
	svc, classRepo, _ := setupTestTimeSlotService()
	classRepo.classes["class-001"] = &model.Class{ClassID: "class-001"}

	req := &dto.GenerateTimeSlotsRequest{StartTime: "08:00", EndTime: "08:30", PeriodLength: 45}
	_, err := svc.GenerateForClass(context.Background(), "class-001", req)
	var validation *apperrors.ValidationError
	if !errors.As(err, &validation) {
		t.Errorf("expected ValidationError for empty result, got: %v", err)
	}
}

// ── ListByClass tests ──

func TestTimeSlotService_ListByClass_FilterByDay(t *testing.T) {
	svc, _, tsRepo := setupTestTimeSlotService()
	tsRepo.slots = []model.TimeSlot{
		{TimeSlotID: "s1", ClassID: "class-001", Day: "MON", Type: model.SlotTypePeriod},
		{TimeSlotID: "s2", ClassID: "class-001", Day: "TUE", Type: model.SlotTypePeriod},
		{TimeSlotID: "s3", ClassID: "class-002", Day: "MON", Type: model.SlotTypePeriod},
	}

	slots, err := svc.ListByClass(context.Background(), "class-001", &dto.TimeSlotListRequest{Day: "MON"})
	if err != nil {
		t.Fatalf("ListByClass should succeed: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].ID != "s1" {
		t.Errorf("expected s1, got %s", slots[0].ID)
	}
}

func TestTimeSlotService_ListByClass_InvalidDay(t *testing.T) {
	svc, _, _ := setupTestTimeSlotService()

	_, err := svc.ListByClass(context.Background(), "class-001", &dto.TimeSlotListRequest{Day: "Funday"})
	var validation *apperrors.ValidationError
	if !errors.As(err, &validation) {
		t.Errorf("expected ValidationError, got: %v", err)
	}
}
