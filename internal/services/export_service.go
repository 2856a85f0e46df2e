package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/selamstaff/backend/internal/models"
	pgrepo "github.com/selamstaff/backend/internal/repositories/postgres"
	"github.com/selamstaff/backend/internal/utils"
	"github.com/xuri/excelize/v2"
)

const (
	ExportEntityCandidates = "candidates"
	ExportEntityEmployers  = "employers"
	ExportEntityAgencies   = "agencies"
)

// ExportService renders a collection (optionally filtered by status) into an
// Excel workbook or a letterheaded PDF for download from the admin dashboard.
type ExportService interface {
	Workbook(ctx context.Context, entity string, status models.Status) (data []byte, filename string, err error)
	PDF(ctx context.Context, entity string, status models.Status) (data []byte, filename string, err error)
}

type exportService struct {
	candidates pgrepo.RecordRepository[models.Candidate]
	employers  pgrepo.RecordRepository[models.Employer]
	agencies   pgrepo.RecordRepository[models.Agency]

	letterhead string
}

func NewExportService(
	candidates pgrepo.RecordRepository[models.Candidate],
	employers pgrepo.RecordRepository[models.Employer],
	agencies pgrepo.RecordRepository[models.Agency],
) ExportService {
	return &exportService{
		candidates: candidates,
		employers:  employers,
		agencies:   agencies,
		letterhead: "SelamStaff Recruitment",
	}
}

type exportTable struct {
	title   string
	headers []string
	rows    [][]string
}

func (s *exportService) table(ctx context.Context, entity string, status models.Status) (*exportTable, error) {
	const op = "ExportService"

	if status != "" && !status.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid status filter", nil)
	}

	switch entity {
	case ExportEntityCandidates:
		rows, err := s.candidates.List(ctx)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to list candidates", err)
		}
		t := &exportTable{
			title:   "Candidates",
			headers: []string{"ID", "Name", "Gender", "Date of Birth", "Phone", "Email", "Region", "Passport No.", "Preferred Country", "Preferred Job", "Status", "Registered"},
		}
		for _, c := range rows {
			if status != "" && c.Status != status {
				continue
			}
			t.rows = append(t.rows, []string{
				c.ID,
				c.FirstName + " " + c.LastName,
				c.Gender,
				c.DateOfBirth,
				c.Phone,
				c.Email,
				c.Region,
				c.PassportNumber,
				c.PreferredCountry,
				c.PreferredJob,
				string(c.Status),
				c.CreatedAt.Format("2006-01-02"),
			})
		}
		return t, nil

	case ExportEntityEmployers:
		rows, err := s.employers.List(ctx)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to list employers", err)
		}
		t := &exportTable{
			title:   "Employers",
			headers: []string{"ID", "Company", "Email", "Phone", "Country", "City", "Contact", "Sector", "Employees", "Status", "Verified", "Registered"},
		}
		for _, e := range rows {
			if status != "" && e.Status != status {
				continue
			}
			t.rows = append(t.rows, []string{
				e.ID,
				e.CompanyName,
				e.CompanyEmail,
				e.CompanyPhone,
				e.Country,
				e.City,
				e.ContactName,
				e.Sector,
				fmt.Sprintf("%d", e.EmployeeCount),
				string(e.Status),
				fmt.Sprintf("%t", e.Verified),
				e.CreatedAt.Format("2006-01-02"),
			})
		}
		return t, nil

	case ExportEntityAgencies:
		rows, err := s.agencies.List(ctx)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to list agencies", err)
		}
		t := &exportTable{
			title:   "Agencies",
			headers: []string{"ID", "Agency", "License No.", "Email", "Phone", "Region", "Director", "Recruiters", "Services", "Status", "Verified", "Registered"},
		}
		for _, a := range rows {
			if status != "" && a.Status != status {
				continue
			}
			t.rows = append(t.rows, []string{
				a.ID,
				a.AgencyName,
				a.LicenseNumber,
				a.Email,
				a.Phone,
				a.Region,
				a.DirectorName,
				fmt.Sprintf("%d", a.RecruiterCount),
				strings.Join(a.ServicesOffered, ", "),
				string(a.Status),
				fmt.Sprintf("%t", a.Verified),
				a.CreatedAt.Format("2006-01-02"),
			})
		}
		return t, nil
	}

	return nil, utils.E(utils.CodeInvalidArgument, op, "unknown export entity", nil)
}

func (s *exportService) Workbook(ctx context.Context, entity string, status models.Status) ([]byte, string, error) {
	const op = "ExportService.Workbook"

	t, err := s.table(ctx, entity, status)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for i, h := range t.headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", utils.E(utils.CodeInternal, op, "failed to write workbook", err)
		}
	}
	for ri, row := range t.rows {
		for ci, v := range row {
			cell, _ := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", utils.E(utils.CodeInternal, op, "failed to write workbook", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to serialize workbook", err)
	}
	return buf.Bytes(), entity + ".xlsx", nil
}

func (s *exportService) PDF(ctx context.Context, entity string, status models.Status) ([]byte, string, error) {
	const op = "ExportService.PDF"

	t, err := s.table(ctx, entity, status)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// letterhead
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, s.letterhead)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("%s report - generated %s", t.title, time.Now().UTC().Format("2006-01-02 15:04 UTC")))
	pdf.Ln(12)

	colW := 267.0 / float64(len(t.headers)) // usable width on A4 landscape

	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range t.headers {
		pdf.CellFormat(colW, 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 7)
	for _, row := range t.rows {
		for _, v := range row {
			pdf.CellFormat(colW, 6, truncate(v, 28), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to serialize pdf", err)
	}
	return buf.Bytes(), entity + ".pdf", nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-2] + ".."
}
