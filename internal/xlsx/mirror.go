// Package xlsx maintains the spreadsheet mirror of the store: a two-sheet
// workbook ("Employees", "Applicants") that receives a row on every profile
// save and application submit. Appends are whole-file read-modify-write:
// the workbook is opened, the row added under the last used row, and the
// file saved back, guarded by a mutex so concurrent requests do not corrupt
// the file. Mirror failures are reported to the caller, which logs and moves
// on; the mirror is never allowed to fail a request.
package xlsx

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet names inside the workbook.
const (
	SheetEmployees  = "Employees"
	SheetApplicants = "Applicants"
)

var (
	employeeHeader = []any{"emp_id", "name", "age", "income", "sat", "overtime",
		"involve", "feedback", "leaves_taken", "ts"}
	applicantHeader = []any{"name", "designation", "experience", "role", "ts"}
)

// EmployeeRow is one mirrored profile save.
type EmployeeRow struct {
	EmpID       string
	Name        string
	Age         int
	Income      int
	Sat         int
	OverTime    string
	Involve     int
	Feedback    string
	LeavesTaken int
	TS          time.Time
}

// ApplicantRow is one mirrored application submit.
type ApplicantRow struct {
	Name        string
	Designation string
	Experience  int
	Role        string
	TS          time.Time
}

// Mirror is the capability the services layer depends on.
type Mirror interface {
	AppendEmployee(row EmployeeRow) error
	AppendApplicant(row ApplicantRow) error
}

// FileMirror is the excelize-backed Mirror implementation.
type FileMirror struct {
	mu   sync.Mutex
	path string
}

// NewFileMirror opens the workbook at path, creating it with both sheets and
// header rows when it does not exist yet.
func NewFileMirror(path string) (*FileMirror, error) {
	m := &FileMirror{path: path}
	if _, err := os.Stat(path); err == nil {
		return m, nil
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetEmployees); err != nil {
		return nil, fmt.Errorf("init employees sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetApplicants); err != nil {
		return nil, fmt.Errorf("init applicants sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetEmployees, "A1", &employeeHeader); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(SheetApplicants, "A1", &applicantHeader); err != nil {
		return nil, err
	}
	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("create workbook: %w", err)
	}
	return m, nil
}

// AppendEmployee adds one row to the Employees sheet.
func (m *FileMirror) AppendEmployee(row EmployeeRow) error {
	return m.appendRow(SheetEmployees, []any{
		row.EmpID, row.Name, row.Age, row.Income, row.Sat, row.OverTime,
		row.Involve, row.Feedback, row.LeavesTaken, row.TS.Format(time.RFC3339),
	})
}

// AppendApplicant adds one row to the Applicants sheet.
func (m *FileMirror) AppendApplicant(row ApplicantRow) error {
	return m.appendRow(SheetApplicants, []any{
		row.Name, row.Designation, row.Experience, row.Role, row.TS.Format(time.RFC3339),
	})
}

// appendRow performs the read-modify-write cycle for one sheet.
func (m *FileMirror) appendRow(sheet string, values []any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := excelize.OpenFile(m.path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("append to sheet %s: %w", sheet, err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
