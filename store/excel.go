package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/puttdental/backend-allotment/allocation"
	"github.com/puttdental/backend-allotment/models"
)

// Sheet names, matching the original workbook.
const (
	sheetSchedule    = "Sheet1"
	sheetMeta        = "Meta"
	sheetAssistants  = "Assistants"
	sheetDoctors     = "Doctors"
	sheetAttendance  = "Assistants_Attendance"
	sheetDuties      = "Duties_Master"
	sheetAssignments = "Duty_Assignments"
	sheetDutyRuns    = "Duty_Runs"
	sheetPatients    = "Patients"
)

var profileHeader = []string{
	"id", "name", "kind", "department", "contact_email", "contact_phone",
	"status", "weekly_off", "pref_first", "pref_second", "pref_third",
	"created_at", "updated_at", "created_by", "updated_by",
}

// scheduleHeader is the visible grid header plus three bookkeeping columns
// the dashboard needs (stable row ids and actual start/end stamps).
var scheduleHeader = append(append([]string(nil), models.ScheduleColumns...),
	"Row ID", "Actual Start", "Actual End")

var sheetHeaders = map[string][]string{
	sheetSchedule:    scheduleHeader,
	sheetMeta:        {"save_version", "saved_at", "time_blocks_updated_at", "meta_json"},
	sheetAssistants:  profileHeader,
	sheetDoctors:     profileHeader,
	sheetAttendance:  {"DATE", "ASSISTANT", "PUNCH IN", "PUNCH OUT", "ID"},
	sheetDuties:      {"id", "title", "frequency", "default_minutes", "op", "active", "created_at"},
	sheetAssignments: {"id", "duty_id", "assistant", "op", "est_minutes", "active"},
	sheetDutyRuns:    {"id", "date", "assistant", "duty_id", "status", "started_at", "due_at", "ended_at", "est_minutes", "op"},
	sheetPatients:    {"id", "name"},
}

// ExcelStore persists everything to a local workbook. It is the fallback
// backend when Supabase is not configured or unreachable. A mutex serializes
// workbook access since excelize files are not safe for concurrent use.
type ExcelStore struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewExcelStore opens (or creates) the workbook at path.
func NewExcelStore(path string, logger *zap.Logger) (*ExcelStore, error) {
	s := &ExcelStore{path: path, logger: logger}
	if err := s.ensureWorkbook(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ExcelStore) Name() string { return "excel" }

func (s *ExcelStore) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	return f.Close()
}

// ensureWorkbook creates a fresh workbook with every sheet and header when
// the file does not exist yet.
func (s *ExcelStore) ensureWorkbook() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	}

	s.logger.Info("creating new workbook", zap.String("path", s.path))
	f := excelize.NewFile()
	defer f.Close()

	for name, header := range sheetHeaders {
		if name != sheetSchedule {
			if _, err := f.NewSheet(name); err != nil {
				return fmt.Errorf("create sheet %s: %w", name, err)
			}
		}
		if err := setRow(f, name, 1, toCells(header)); err != nil {
			return err
		}
	}
	return f.SaveAs(s.path)
}

func (s *ExcelStore) withWorkbook(write bool, fn func(f *excelize.File) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return err
	}
	if write {
		if err := f.Save(); err != nil {
			return fmt.Errorf("save workbook %s: %w", s.path, err)
		}
	}
	return nil
}

func (s *ExcelStore) LoadSchedule() (*models.ScheduleState, error) {
	state := models.NewScheduleState()
	err := s.withWorkbook(false, func(f *excelize.File) error {
		rows, err := dataRows(f, sheetSchedule)
		if err != nil {
			return err
		}
		for _, r := range rows {
			row := models.ScheduleRow{
				PatientID:   cell(r, 0),
				PatientName: cell(r, 1),
				InTime:      cell(r, 2),
				OutTime:     cell(r, 3),
				Procedure:   cell(r, 4),
				Doctor:      cell(r, 5),
				First:       cell(r, 6),
				Second:      cell(r, 7),
				Third:       cell(r, 8),
				CasePaper:   cell(r, 9),
				OP:          cell(r, 10),
				Suction:     cell(r, 11),
				Cleaning:    cell(r, 12),
				Status:      cell(r, 13),
				Reminder:    cell(r, 14),
				ID:          cell(r, 15),
				ActualStart: cell(r, 16),
				ActualEnd:   cell(r, 17),
			}
			if row.ID == "" {
				row.ID = uuid.NewString()
			}
			state.Rows = append(state.Rows, row)
		}

		metaRows, err := dataRows(f, sheetMeta)
		if err != nil || len(metaRows) == 0 {
			return nil
		}
		m := metaRows[0]
		if blob := cell(m, 3); blob != "" {
			var meta models.ScheduleMeta
			if err := json.Unmarshal([]byte(blob), &meta); err == nil {
				state.Meta = meta
				return nil
			}
			s.logger.Warn("unreadable meta_json cell, falling back to columns")
		}
		state.Meta.SaveVersion, _ = strconv.Atoi(cell(m, 0))
		state.Meta.SavedAt = cell(m, 1)
		state.Meta.TimeBlocksUpdatedAt = cell(m, 2)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *ExcelStore) SaveSchedule(state *models.ScheduleState) error {
	state.Meta.SaveVersion++
	state.Meta.SavedAt = time.Now().Format(time.RFC3339)

	return s.withWorkbook(true, func(f *excelize.File) error {
		rows := make([][]interface{}, 0, len(state.Rows))
		for _, r := range state.Rows {
			id := r.ID
			if id == "" {
				id = uuid.NewString()
			}
			rows = append(rows, []interface{}{
				r.PatientID, r.PatientName, r.InTime, r.OutTime, r.Procedure,
				r.Doctor, r.First, r.Second, r.Third, r.CasePaper, r.OP,
				r.Suction, r.Cleaning, r.Status, r.Reminder,
				id, r.ActualStart, r.ActualEnd,
			})
		}
		if err := rewriteSheet(f, sheetSchedule, rows); err != nil {
			return err
		}

		metaJSON, err := json.Marshal(state.Meta)
		if err != nil {
			return fmt.Errorf("encode schedule meta: %w", err)
		}
		return rewriteSheet(f, sheetMeta, [][]interface{}{{
			state.Meta.SaveVersion, state.Meta.SavedAt,
			state.Meta.TimeBlocksUpdatedAt, string(metaJSON),
		}})
	})
}

func profileSheet(kind string) string {
	if kind == models.KindDoctors {
		return sheetDoctors
	}
	return sheetAssistants
}

func (s *ExcelStore) ListProfiles(kind string) ([]models.Profile, error) {
	sheets := []string{sheetAssistants, sheetDoctors}
	if kind != "" {
		sheets = []string{profileSheet(kind)}
	}

	var profiles []models.Profile
	err := s.withWorkbook(false, func(f *excelize.File) error {
		for _, sheet := range sheets {
			rows, err := dataRows(f, sheet)
			if err != nil {
				return err
			}
			for _, r := range rows {
				profiles = append(profiles, profileFromRow(r))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func profileFromRow(r []string) models.Profile {
	p := models.Profile{
		ID:         cell(r, 0),
		Name:       cell(r, 1),
		Kind:       cell(r, 2),
		Department: cell(r, 3),
		Status:     cell(r, 6),
		WeeklyOff:  cell(r, 7),
		PrefFirst:  cell(r, 8),
		PrefSecond: cell(r, 9),
		PrefThird:  cell(r, 10),
		CreatedAt:  cell(r, 11),
		UpdatedAt:  cell(r, 12),
		CreatedBy:  cell(r, 13),
		UpdatedBy:  cell(r, 14),
	}
	if v := cell(r, 4); v != "" {
		p.ContactEmail = &v
	}
	if v := cell(r, 5); v != "" {
		p.ContactPhone = &v
	}
	return p
}

func profileToRow(p models.Profile) []interface{} {
	email, phone := "", ""
	if p.ContactEmail != nil {
		email = *p.ContactEmail
	}
	if p.ContactPhone != nil {
		phone = *p.ContactPhone
	}
	return []interface{}{
		p.ID, p.Name, p.Kind, p.Department, email, phone, p.Status,
		p.WeeklyOff, p.PrefFirst, p.PrefSecond, p.PrefThird,
		p.CreatedAt, p.UpdatedAt, p.CreatedBy, p.UpdatedBy,
	}
}

func (s *ExcelStore) UpsertProfile(profile models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	sheet := profileSheet(profile.Kind)

	return s.withWorkbook(true, func(f *excelize.File) error {
		rows, err := dataRows(f, sheet)
		if err != nil {
			return err
		}
		out := make([][]interface{}, 0, len(rows)+1)
		replaced := false
		for _, r := range rows {
			existing := profileFromRow(r)
			if existing.ID == profile.ID ||
				allocation.NormalizeIdentity(existing.Name) == allocation.NormalizeIdentity(profile.Name) {
				profile.ID = existing.ID
				out = append(out, profileToRow(profile))
				replaced = true
				continue
			}
			out = append(out, profileToRow(existing))
		}
		if !replaced {
			out = append(out, profileToRow(profile))
		}
		return rewriteSheet(f, sheet, out)
	})
}

func (s *ExcelStore) DeleteProfile(id string) error {
	return s.withWorkbook(true, func(f *excelize.File) error {
		for _, sheet := range []string{sheetAssistants, sheetDoctors} {
			rows, err := dataRows(f, sheet)
			if err != nil {
				return err
			}
			out := make([][]interface{}, 0, len(rows))
			found := false
			for _, r := range rows {
				if cell(r, 0) == id {
					found = true
					continue
				}
				out = append(out, profileToRow(profileFromRow(r)))
			}
			if found {
				return rewriteSheet(f, sheet, out)
			}
		}
		return nil
	})
}

func (s *ExcelStore) ListAttendance(date string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := s.withWorkbook(false, func(f *excelize.File) error {
		rows, err := dataRows(f, sheetAttendance)
		if err != nil {
			return err
		}
		for _, r := range rows {
			rec := models.AttendanceRecord{
				Date:      cell(r, 0),
				Assistant: cell(r, 1),
				PunchIn:   cell(r, 2),
				PunchOut:  cell(r, 3),
				ID:        cell(r, 4),
			}
			if date != "" && rec.Date != date {
				continue
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *ExcelStore) SaveAttendance(record models.AttendanceRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	return s.withWorkbook(true, func(f *excelize.File) error {
		rows, err := dataRows(f, sheetAttendance)
		if err != nil {
			return err
		}
		out := make([][]interface{}, 0, len(rows)+1)
		replaced := false
		for _, r := range rows {
			sameID := cell(r, 4) == record.ID
			samePair := cell(r, 0) == record.Date &&
				allocation.NormalizeIdentity(cell(r, 1)) == allocation.NormalizeIdentity(record.Assistant)
			if sameID || samePair {
				out = append(out, []interface{}{record.Date, record.Assistant, record.PunchIn, record.PunchOut, record.ID})
				replaced = true
				continue
			}
			out = append(out, []interface{}{cell(r, 0), cell(r, 1), cell(r, 2), cell(r, 3), cell(r, 4)})
		}
		if !replaced {
			out = append(out, []interface{}{record.Date, record.Assistant, record.PunchIn, record.PunchOut, record.ID})
		}
		return rewriteSheet(f, sheetAttendance, out)
	})
}

func (s *ExcelStore) ListDuties() ([]models.Duty, error) {
	var duties []models.Duty
	err := s.withWorkbook(false, func(f *excelize.File) error {
		rows, err := dataRows(f, sheetDuties)
		if err != nil {
			return err
		}
		for _, r := range rows {
			duties = append(duties, models.Duty{
				ID:             cell(r, 0),
				Title:          cell(r, 1),
				Frequency:      cell(r, 2),
				DefaultMinutes: atoi(cell(r, 3)),
				OP:             cell(r, 4),
				Active:         parseBool(cell(r, 5)),
				CreatedAt:      cell(r, 6),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return duties, nil
}

func (s *ExcelStore) SaveDuty(duty models.Duty) error {
	if duty.ID == "" {
		duty.ID = uuid.NewString()
	}
	row := []interface{}{duty.ID, duty.Title, duty.Frequency, duty.DefaultMinutes, duty.OP, duty.Active, duty.CreatedAt}
	return s.upsertByID(sheetDuties, duty.ID, row)
}

func (s *ExcelStore) ListDutyAssignments() ([]models.DutyAssignment, error) {
	var assignments []models.DutyAssignment
	err := s.withWorkbook(false, func(f *excelize.File) error {
		rows, err := dataRows(f, sheetAssignments)
		if err != nil {
			return err
		}
		for _, r := range rows {
			assignments = append(assignments, models.DutyAssignment{
				ID:         cell(r, 0),
				DutyID:     cell(r, 1),
				Assistant:  cell(r, 2),
				OP:         cell(r, 3),
				EstMinutes: atoi(cell(r, 4)),
				Active:     parseBool(cell(r, 5)),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *ExcelStore) SaveDutyAssignment(assignment models.DutyAssignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	row := []interface{}{assignment.ID, assignment.DutyID, assignment.Assistant, assignment.OP, assignment.EstMinutes, assignment.Active}
	return s.upsertByID(sheetAssignments, assignment.ID, row)
}

func (s *ExcelStore) ListDutyRuns(date string) ([]models.DutyRun, error) {
	var runs []models.DutyRun
	err := s.withWorkbook(false, func(f *excelize.File) error {
		rows, err := dataRows(f, sheetDutyRuns)
		if err != nil {
			return err
		}
		for _, r := range rows {
			run := models.DutyRun{
				ID:         cell(r, 0),
				Date:       cell(r, 1),
				Assistant:  cell(r, 2),
				DutyID:     cell(r, 3),
				Status:     cell(r, 4),
				StartedAt:  cell(r, 5),
				DueAt:      cell(r, 6),
				EndedAt:    cell(r, 7),
				EstMinutes: atoi(cell(r, 8)),
				OP:         cell(r, 9),
			}
			if date != "" && run.Date != date {
				continue
			}
			runs = append(runs, run)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (s *ExcelStore) SaveDutyRun(run models.DutyRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	row := []interface{}{run.ID, run.Date, run.Assistant, run.DutyID, run.Status, run.StartedAt, run.DueAt, run.EndedAt, run.EstMinutes, run.OP}
	return s.upsertByID(sheetDutyRuns, run.ID, row)
}

func (s *ExcelStore) ListPatients() ([]models.Patient, error) {
	var patients []models.Patient
	err := s.withWorkbook(false, func(f *excelize.File) error {
		rows, err := dataRows(f, sheetPatients)
		if err != nil {
			return err
		}
		for _, r := range rows {
			patients = append(patients, models.Patient{ID: cell(r, 0), Name: cell(r, 1)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (s *ExcelStore) SavePatient(patient models.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.NewString()
	}
	return s.upsertByID(sheetPatients, patient.ID, []interface{}{patient.ID, patient.Name})
}

// upsertByID replaces the data row whose first column matches id, or appends.
func (s *ExcelStore) upsertByID(sheet, id string, row []interface{}) error {
	return s.withWorkbook(true, func(f *excelize.File) error {
		rows, err := dataRows(f, sheet)
		if err != nil {
			return err
		}
		out := make([][]interface{}, 0, len(rows)+1)
		replaced := false
		for _, r := range rows {
			if cell(r, 0) == id {
				out = append(out, row)
				replaced = true
				continue
			}
			out = append(out, toCells(r))
		}
		if !replaced {
			out = append(out, row)
		}
		return rewriteSheet(f, sheet, out)
	})
}

// rewriteSheet replaces a sheet's contents with its header plus rows.
func rewriteSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	if err := f.DeleteSheet(sheet); err != nil {
		return fmt.Errorf("reset sheet %s: %w", sheet, err)
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("recreate sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, toCells(sheetHeaders[sheet])); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cellName, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cellName, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}

// dataRows returns a sheet's rows minus the header, skipping blank lines.
func dataRows(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	var out [][]string
	for i, r := range rows {
		if i == 0 {
			continue
		}
		empty := true
		for _, v := range r {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, r)
		}
	}
	return out, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func toCells[T any](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
