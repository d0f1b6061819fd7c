package handlers

import (
	"sort"

	"attendance_backend/models"
	"attendance_backend/store"
)

// fakeStore is an in-memory AttendanceStore with the same contract as
// the Postgres implementation, including the (employeeId, date)
// uniqueness rule.
type fakeStore struct {
	records []models.AttendanceRecord
	nextID  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (f *fakeStore) Insert(rec *models.AttendanceRecord) error {
	for _, existing := range f.records {
		if existing.EmployeeID == rec.EmployeeID && existing.Date == rec.Date {
			return store.ErrDuplicateRecord
		}
	}
	rec.ID = f.nextID
	f.nextID++
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeStore) GetByEmployeeAndDate(employeeID, date string) (*models.AttendanceRecord, error) {
	for i := range f.records {
		if f.records[i].EmployeeID == employeeID && f.records[i].Date == date {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, store.ErrNoRecord
}

func (f *fakeStore) Save(rec *models.AttendanceRecord) error {
	for i := range f.records {
		if f.records[i].ID == rec.ID {
			f.records[i] = *rec
			return nil
		}
	}
	return store.ErrNoRecord
}

func (f *fakeStore) Patch(id int, fields models.UpdateAttendanceRequest) (*models.AttendanceRecord, error) {
	for i := range f.records {
		if f.records[i].ID != id {
			continue
		}
		rec := &f.records[i]
		if fields.EmployeeName != nil {
			rec.EmployeeName = *fields.EmployeeName
		}
		if fields.Department != nil {
			rec.Department = *fields.Department
		}
		if fields.Status != nil {
			rec.Status = *fields.Status
		}
		if fields.CheckInTime != nil {
			rec.CheckInTime = *fields.CheckInTime
		}
		if fields.CheckOutTime != nil {
			rec.CheckOutTime = *fields.CheckOutTime
		}
		if fields.IsCheckedIn != nil {
			rec.IsCheckedIn = *fields.IsCheckedIn
		}
		if fields.IsOnBreak != nil {
			rec.IsOnBreak = *fields.IsOnBreak
		}
		if fields.BreakStartTime != nil {
			rec.BreakStartTime = *fields.BreakStartTime
		}
		if fields.BreakEndTime != nil {
			rec.BreakEndTime = *fields.BreakEndTime
		}
		if fields.BreakTime != nil {
			rec.BreakTime = *fields.BreakTime
		}
		if fields.TotalHours != nil {
			rec.TotalHours = *fields.TotalHours
		}
		if fields.SupervisorID != nil {
			rec.SupervisorID = *fields.SupervisorID
		}
		out := *rec
		return &out, nil
	}
	return nil, store.ErrNoRecord
}

func (f *fakeStore) History(filter models.HistoryFilter) ([]models.AttendanceRecord, error) {
	matched := []models.AttendanceRecord{}
	for _, rec := range f.records {
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.StartDate != "" && rec.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && rec.Date > filter.EndDate {
			continue
		}
		matched = append(matched, rec)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date > matched[j].Date
	})
	if len(matched) > store.HistoryLimit {
		matched = matched[:store.HistoryLimit]
	}
	return matched, nil
}

func (f *fakeStore) Team(supervisorID, date string) ([]models.AttendanceRecord, error) {
	matched := []models.AttendanceRecord{}
	for _, rec := range f.records {
		if rec.Date != date {
			continue
		}
		if supervisorID != "" && rec.SupervisorID != supervisorID {
			continue
		}
		matched = append(matched, rec)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CheckInTime < matched[j].CheckInTime
	})
	return matched, nil
}

func (f *fakeStore) Week(employeeID, startDate, endDate string) ([]models.AttendanceRecord, error) {
	matched := []models.AttendanceRecord{}
	for _, rec := range f.records {
		if employeeID != "" && rec.EmployeeID != employeeID {
			continue
		}
		if rec.Date < startDate || rec.Date > endDate {
			continue
		}
		matched = append(matched, rec)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date < matched[j].Date
	})
	return matched, nil
}

func (f *fakeStore) List(filter models.ListFilter) ([]models.AttendanceRecord, int, error) {
	matched := []models.AttendanceRecord{}
	for _, rec := range f.records {
		if filter.Date != "" && rec.Date != filter.Date {
			continue
		}
		if filter.Department != "" && rec.Department != filter.Department {
			continue
		}
		matched = append(matched, rec)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date > matched[j].Date
		}
		return matched[i].CheckInTime < matched[j].CheckInTime
	})

	total := len(matched)
	offset := (filter.Page - 1) * filter.Limit
	if offset >= total {
		return []models.AttendanceRecord{}, total, nil
	}
	end := offset + filter.Limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}
