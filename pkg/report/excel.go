// Package report renders statistics bundles into downloadable workbooks.
package report

import (
	"bytes"
	"fmt"

	"github.com/suritel/worklog-api/internal/repository"
	"github.com/xuri/excelize/v2"
)

const (
	sheetOverview     = "개요"
	sheetEngineers    = "엔지니어별"
	sheetDepartments  = "부서별"
	sheetClients      = "고객사별"
	sheetIncidents    = "고객사 장애"
	sheetMonthlyTrend = "월별 추이"
)

var bucketHeaders = []string{"정기점검", "장애지원", "기술지원", "교육", "기타"}

// RenderDetailedStatistics renders the detailed statistics bundle as an xlsx
// workbook, one sheet per report section.
func RenderDetailedStatistics(stats *repository.DetailedStatistics) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeOverview(f, stats.Overview); err != nil {
		return nil, err
	}
	if err := writeEngineers(f, stats.ByEngineer); err != nil {
		return nil, err
	}
	if err := writeDepartments(f, stats.ByDepartment); err != nil {
		return nil, err
	}
	if err := writeClients(f, stats.ByClient); err != nil {
		return nil, err
	}
	if err := writeClientIncidents(f, stats.ClientIncidents); err != nil {
		return nil, err
	}
	if err := writeMonthlyTrend(f, stats.MonthlyTrend); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex(sheetOverview); err == nil {
		f.SetActiveSheet(idx)
	}

	return f.WriteToBuffer()
}

func newSheet(f *excelize.File, name string) error {
	_, err := f.NewSheet(name)
	return err
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeOverview(f *excelize.File, ov repository.Overview) error {
	if err := newSheet(f, sheetOverview); err != nil {
		return err
	}

	rows := [][]any{
		{"항목", "건수"},
		{"전체", ov.Total},
		{"등록", ov.StatusRegistered},
		{"관리자확인", ov.StatusChecked},
		{"승인완료", ov.StatusApproved},
		{"정기점검", ov.TypeRegular},
		{"장애지원", ov.TypeIncident},
		{"기술지원", ov.TypeTech},
		{"교육", ov.TypeTraining},
		{"기타", ov.TypeEtc},
	}
	for i, row := range rows {
		if err := setRow(f, sheetOverview, i+1, row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetOverview, "A", "B", 14)
}

func writeEngineers(f *excelize.File, engineers []repository.EngineerStats) error {
	if err := newSheet(f, sheetEngineers); err != nil {
		return err
	}

	header := append([]any{"이름", "직급", "부서", "전체"}, toAnySlice(bucketHeaders)...)
	header = append(header, "작업 시간(h)")
	if err := setRow(f, sheetEngineers, 1, header); err != nil {
		return err
	}

	for i, e := range engineers {
		row := []any{
			e.UserName, e.Position, e.DeptName, e.Total,
			e.RegularCheck, e.IncidentSupport, e.TechSupport, e.Training, e.EtcWork,
			e.TotalHours,
		}
		if err := setRow(f, sheetEngineers, i+2, row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetEngineers, "A", "C", 14)
}

func writeDepartments(f *excelize.File, departments []repository.DepartmentStats) error {
	if err := newSheet(f, sheetDepartments); err != nil {
		return err
	}

	header := append([]any{"부서", "전체", "엔지니어 수"}, toAnySlice(bucketHeaders)...)
	header = append(header, "작업 시간(h)")
	if err := setRow(f, sheetDepartments, 1, header); err != nil {
		return err
	}

	for i, d := range departments {
		row := []any{
			d.DeptName, d.Total, d.EngineerCount,
			d.RegularCheck, d.IncidentSupport, d.TechSupport, d.Training, d.EtcWork,
			d.TotalHours,
		}
		if err := setRow(f, sheetDepartments, i+2, row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetDepartments, "A", "A", 16)
}

func writeClients(f *excelize.File, clients []repository.ClientStats) error {
	if err := newSheet(f, sheetClients); err != nil {
		return err
	}

	header := append([]any{"고객사", "전체"}, toAnySlice(bucketHeaders)...)
	header = append(header, "작업 시간(h)")
	if err := setRow(f, sheetClients, 1, header); err != nil {
		return err
	}

	for i, c := range clients {
		row := []any{
			c.ClientName, c.Total,
			c.RegularCheck, c.IncidentSupport, c.TechSupport, c.Training, c.EtcWork,
			c.TotalHours,
		}
		if err := setRow(f, sheetClients, i+2, row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetClients, "A", "A", 20)
}

func writeClientIncidents(f *excelize.File, clientIncidents []repository.ClientIncidents) error {
	if err := newSheet(f, sheetIncidents); err != nil {
		return err
	}

	if err := setRow(f, sheetIncidents, 1, []any{"고객사", "영향도", "원인분류", "건수", "재발 건수"}); err != nil {
		return err
	}

	row := 2
	for _, ci := range clientIncidents {
		for _, inc := range ci.Incidents {
			values := []any{ci.ClientName, inc.Severity, inc.CauseType, inc.Count, inc.RecurrenceCount}
			if err := setRow(f, sheetIncidents, row, values); err != nil {
				return err
			}
			row++
		}
	}

	return f.SetColWidth(sheetIncidents, "A", "C", 16)
}

func writeMonthlyTrend(f *excelize.File, trend []repository.MonthlyTrend) error {
	if err := newSheet(f, sheetMonthlyTrend); err != nil {
		return err
	}

	if err := setRow(f, sheetMonthlyTrend, 1, []any{"월", "전체", "정기점검", "장애지원", "기술지원"}); err != nil {
		return err
	}

	for i, m := range trend {
		row := []any{m.Month, m.Total, m.RegularCheck, m.IncidentSupport, m.TechSupport}
		if err := setRow(f, sheetMonthlyTrend, i+2, row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetMonthlyTrend, "A", "A", 12)
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// SummaryFileName builds the suggested download name for a rendered report.
func SummaryFileName(date string) string {
	return fmt.Sprintf("work-statistics-%s.xlsx", date)
}
