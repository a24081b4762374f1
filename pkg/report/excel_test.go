package report

import (
	"testing"

	"github.com/suritel/worklog-api/internal/repository"
	"github.com/xuri/excelize/v2"
)

func sampleStats() *repository.DetailedStatistics {
	return &repository.DetailedStatistics{
		Overview: repository.Overview{
			Total:            12,
			StatusRegistered: 5,
			StatusChecked:    4,
			StatusApproved:   3,
			TypeRegular:      6,
			TypeIncident:     3,
			TypeTech:         2,
			TypeTraining:     1,
		},
		ByEngineer: []repository.EngineerStats{
			{UserID: 1, UserName: "홍길동", Position: "선임", DeptName: "기술1팀", Total: 8, RegularCheck: 4, IncidentSupport: 2, TechSupport: 2, TotalHours: 16.5},
			{UserID: 2, UserName: "김철수", Position: "책임", DeptName: "기술2팀", Total: 4, RegularCheck: 2, Training: 1, EtcWork: 1, TotalHours: 7.0},
		},
		ByDepartment: []repository.DepartmentStats{
			{DeptID: 1, DeptName: "기술1팀", Total: 8, EngineerCount: 1, TotalHours: 16.5},
		},
		ByClient: []repository.ClientStats{
			{ClientID: 1, ClientName: "가나상사", Total: 12, TotalHours: 23.5},
		},
		ClientIncidents: []repository.ClientIncidents{
			{
				ClientID:   1,
				ClientName: "가나상사",
				Incidents: []repository.IncidentStat{
					{Severity: "Critical", CauseType: "SW", Count: 2, RecurrenceCount: 1},
					{Severity: "Minor", CauseType: "HW", Count: 1},
				},
			},
		},
		MonthlyTrend: []repository.MonthlyTrend{
			{Month: "2026-02", Total: 5, RegularCheck: 3, IncidentSupport: 1, TechSupport: 1},
			{Month: "2026-03", Total: 7, RegularCheck: 3, IncidentSupport: 2, TechSupport: 2},
		},
	}
}

func TestRenderDetailedStatistics(t *testing.T) {
	buf, err := RenderDetailedStatistics(sampleStats())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("workbook is empty")
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("rendered workbook is not readable: %v", err)
	}
	defer f.Close()

	wantSheets := []string{"개요", "엔지니어별", "부서별", "고객사별", "고객사 장애", "월별 추이"}
	got := f.GetSheetList()
	sheetSet := make(map[string]bool, len(got))
	for _, name := range got {
		sheetSet[name] = true
	}
	for _, name := range wantSheets {
		if !sheetSet[name] {
			t.Errorf("missing sheet %q, got %v", name, got)
		}
	}
	if sheetSet["Sheet1"] {
		t.Error("default sheet should be removed")
	}

	// Overview total.
	val, err := f.GetCellValue("개요", "B2")
	if err != nil {
		t.Fatalf("read overview cell: %v", err)
	}
	if val != "12" {
		t.Errorf("overview total = %q, want 12", val)
	}

	// First engineer row.
	name, _ := f.GetCellValue("엔지니어별", "A2")
	if name != "홍길동" {
		t.Errorf("engineer name = %q, want 홍길동", name)
	}
	hours, _ := f.GetCellValue("엔지니어별", "J2")
	if hours != "16.5" {
		t.Errorf("engineer hours = %q, want 16.5", hours)
	}

	// Incident rows flatten per (severity, cause_type).
	sev, _ := f.GetCellValue("고객사 장애", "B3")
	if sev != "Minor" {
		t.Errorf("second incident severity = %q, want Minor", sev)
	}
}

func TestRenderDetailedStatistics_Empty(t *testing.T) {
	buf, err := RenderDetailedStatistics(&repository.DetailedStatistics{})
	if err != nil {
		t.Fatalf("render of empty bundle failed: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("rendered workbook is not readable: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("엔지니어별")
	if err != nil {
		t.Fatalf("read engineer sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("empty bundle should render header only, got %d rows", len(rows))
	}
}

func TestSummaryFileName(t *testing.T) {
	if got := SummaryFileName("20260301"); got != "work-statistics-20260301.xlsx" {
		t.Errorf("unexpected file name: %s", got)
	}
}
