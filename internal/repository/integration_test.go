//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/model"
	"github.com/suritel/worklog-api/internal/repository"
	"github.com/suritel/worklog-api/internal/util"
)

var (
	testDB   *gorm.DB
	testRepo *repository.Repository
)

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=worklog password=worklog dbname=worklog_test sslmode=disable TimeZone=Asia/Seoul"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot connect to test database: %v\n", err)
		os.Exit(1)
	}

	err = testDB.AutoMigrate(
		&model.Department{},
		&model.User{},
		&model.Client{},
		&model.Project{},
		&model.ManagerContact{},
		&model.Product{},
		&model.Incident{},
		&model.WorkLog{},
		&model.FileUpload{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "auto migrate failed: %v\n", err)
		os.Exit(1)
	}

	testRepo = repository.NewRepository(testDB, zap.NewNop().Sugar(), nil)

	os.Exit(m.Run())
}

// setupBaseData seeds a department, engineer, client, project and contact,
// returning a cleanup that removes them bottom-up.
func setupBaseData(t *testing.T) (*model.User, *model.Project, *model.ManagerContact, func()) {
	t.Helper()
	ctx := context.Background()
	nano := time.Now().UnixNano()

	dept := &model.Department{DeptName: fmt.Sprintf("기술%d", nano%100000)}
	if err := testDB.WithContext(ctx).Create(dept).Error; err != nil {
		t.Fatalf("failed to create department: %v", err)
	}

	user := &model.User{
		DeptID:   dept.DeptID,
		Email:    fmt.Sprintf("engineer%d@suritel.co.kr", nano),
		Name:     "홍길동",
		Position: "선임",
		Password: "$2a$12$placeholder",
		Role:     constant.UserRoleEngineer,
		IsActive: true,
	}
	if err := testDB.WithContext(ctx).Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	client := &model.Client{ClientName: fmt.Sprintf("고객사%d", nano%100000)}
	if err := testDB.WithContext(ctx).Create(client).Error; err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	project := &model.Project{
		ClientID:       client.ClientID,
		DeptID:         dept.DeptID,
		ProjectName:    fmt.Sprintf("유지보수%d", nano%100000),
		ContractPeriod: "2026-01-01 ~ 2026-12-31",
	}
	if err := testDB.WithContext(ctx).Create(project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	contact := &model.ManagerContact{
		ProjectID: project.ProjectID,
		Name:      "김담당",
		Email:     fmt.Sprintf("contact%d@client.co.kr", nano),
		Phone:     "010-0000-0000",
	}
	if err := testDB.WithContext(ctx).Create(contact).Error; err != nil {
		t.Fatalf("failed to create contact: %v", err)
	}

	cleanup := func() {
		testDB.Where("contact_id = ?", contact.ContactID).Delete(&model.ManagerContact{})
		testDB.Where("project_id = ?", project.ProjectID).Delete(&model.Project{})
		testDB.Where("client_id = ?", client.ClientID).Delete(&model.Client{})
		testDB.Where("user_id = ?", user.UserID).Delete(&model.User{})
		testDB.Where("dept_id = ?", dept.DeptID).Delete(&model.Department{})
	}
	return user, project, contact, cleanup
}

func newWorkLog(user *model.User, project *model.Project, contact *model.ManagerContact, workType string) *model.WorkLog {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	return &model.WorkLog{
		UserID:         user.UserID,
		ProjectID:      project.ProjectID,
		ContactID:      contact.ContactID,
		WorkStart:      start,
		WorkEnd:        start.Add(2 * time.Hour),
		WorkType:       workType,
		SupprtType:     "방문",
		ServiceType:    "유지보수",
		ProductType:    "DB",
		ProductVersion: "11.2",
		Details:        "점검 수행",
		Status:         constant.WorkStatusRegistered,
	}
}

func deleteWorkLogRows(logID uint) {
	var wl model.WorkLog
	if err := testDB.Where("log_id = ?", logID).First(&wl).Error; err == nil {
		testDB.Where("log_id = ?", logID).Delete(&model.FileUpload{})
		testDB.Where("log_id = ?", logID).Delete(&model.WorkLog{})
		if wl.IncidentID != nil {
			testDB.Where("incident_id = ?", *wl.IncidentID).Delete(&model.Incident{})
		}
	}
}

func TestWorkLogCreate_PlainWork(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	created, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "정기점검"), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer deleteWorkLogRows(created.LogID)

	if created.Status != constant.WorkStatusRegistered {
		t.Errorf("expected status 등록, got %s", created.Status)
	}
	if created.IncidentID != nil {
		t.Error("plain work must not carry an incident")
	}
}

func TestWorkLogCreate_RejectsUnknownProject(t *testing.T) {
	user, _, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	wl := newWorkLog(user, &model.Project{ProjectID: 999999999}, contact, "정기점검")
	_, err := testRepo.WorkLog.Create(ctx, nil, wl, nil)
	if !repository.IsKind(err, repository.KindValidationFailed) {
		t.Fatalf("unknown project must be rejected as validation failure, got %v", err)
	}
}

func TestWorkLogCreate_RejectsSoftDeletedProject(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	if err := testDB.Model(&model.Project{}).
		Where("project_id = ?", project.ProjectID).
		Update("is_deleted", true).Error; err != nil {
		t.Fatalf("failed to soft delete project: %v", err)
	}

	_, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "정기점검"), nil)
	if !repository.IsKind(err, repository.KindValidationFailed) {
		t.Fatalf("soft-deleted project must be rejected, got %v", err)
	}
}

func TestWorkLogUpdate_RejectsUnknownReferences(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	created, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "기술지원"), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer deleteWorkLogRows(created.LogID)

	badContact := uint(999999999)
	_, err = testRepo.WorkLog.Update(ctx, nil, created.LogID, repository.WorkLogUpdate{ContactID: &badContact}, nil)
	if !repository.IsKind(err, repository.KindValidationFailed) {
		t.Fatalf("unknown contact must be rejected, got %v", err)
	}

	badProject := uint(999999999)
	_, err = testRepo.WorkLog.Update(ctx, nil, created.LogID, repository.WorkLogUpdate{ProjectID: &badProject}, nil)
	if !repository.IsKind(err, repository.KindValidationFailed) {
		t.Fatalf("unknown project must be rejected, got %v", err)
	}

	// The record is untouched.
	reloaded, err := testRepo.WorkLog.FindByID(ctx, nil, created.LogID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.ProjectID != project.ProjectID || reloaded.ContactID != contact.ContactID {
		t.Errorf("references must be unchanged after rejected update: project=%d contact=%d", reloaded.ProjectID, reloaded.ContactID)
	}
}

func TestWorkLogCreate_IncidentTypeRequiresIncident(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	_, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "장애처리"), nil)
	if !repository.IsKind(err, repository.KindValidationFailed) {
		t.Fatalf("expected validation failure without incident payload, got %v", err)
	}
}

func TestWorkLogCreate_IncidentBackfill(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	incident := &repository.IncidentData{
		ActionType: constant.IncidentActionPermanent,
		StartTime:  time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
		EndTime:    time.Date(2026, 3, 10, 10, 30, 0, 0, time.Local),
		Severity:   constant.IncidentSeverityMajor,
		CauseType:  "SW",
	}
	created, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "장애처리"), incident)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer deleteWorkLogRows(created.LogID)

	if created.IncidentID == nil {
		t.Fatal("incident_id must be backfilled on the work log")
	}
	if created.Incident == nil {
		t.Fatal("incident association must be loaded")
	}
	if created.Incident.LogID != created.LogID {
		t.Errorf("incident back-reference mismatch: got %d want %d", created.Incident.LogID, created.LogID)
	}
	if created.Incident.IsRecurrence != constant.RecurrenceNo {
		t.Errorf("is_recurrence should default to N, got %s", created.Incident.IsRecurrence)
	}
}

// A failed incident insert must roll the work-log insert back with it.
func TestWorkLogCreate_AtomicOnIncidentFailure(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	wl := newWorkLog(user, project, contact, "장애처리")
	wl.Details = fmt.Sprintf("원자성 검증 %d", time.Now().UnixNano())

	// cause_type is varchar(20); this payload passes the field presence check
	// and fails only at the incident insert, mid-transaction.
	incident := &repository.IncidentData{
		ActionType: constant.IncidentActionTemporary,
		StartTime:  wl.WorkStart,
		EndTime:    wl.WorkEnd,
		Severity:   constant.IncidentSeverityMajor,
		CauseType:  "over-twenty-characters-long",
	}

	_, err := testRepo.WorkLog.Create(ctx, nil, wl, incident)
	if err == nil {
		t.Fatal("expected the incident insert to fail")
	}

	var count int64
	testDB.Model(&model.WorkLog{}).Where("details = ?", wl.Details).Count(&count)
	if count != 0 {
		t.Errorf("work log row must not survive a failed incident insert, found %d", count)
	}
	testDB.Model(&model.Incident{}).Where("log_id = ?", wl.LogID).Count(&count)
	if count != 0 {
		t.Errorf("incident row must not survive the rollback, found %d", count)
	}
}

func TestWorkLogCreate_IncidentMissingSeverity(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	incident := &repository.IncidentData{
		ActionType: constant.IncidentActionTemporary,
		StartTime:  time.Now(),
		EndTime:    time.Now().Add(time.Hour),
		CauseType:  "HW",
	}
	_, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "장애지원"), incident)
	if !repository.IsKind(err, repository.KindValidationFailed) {
		t.Fatalf("expected validation failure for missing severity, got %v", err)
	}
}

func TestWorkLogChangeStatus_FullApprovalPath(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	created, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "기술지원"), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer deleteWorkLogRows(created.LogID)

	reviewed, err := testRepo.WorkLog.ChangeStatus(ctx, nil, created.LogID, constant.WorkStatusManagerReviewed)
	if err != nil {
		t.Fatalf("등록 -> 관리자확인 should succeed: %v", err)
	}
	if reviewed.Status != constant.WorkStatusManagerReviewed {
		t.Errorf("expected 관리자확인, got %s", reviewed.Status)
	}

	approved, err := testRepo.WorkLog.ChangeStatus(ctx, nil, created.LogID, constant.WorkStatusApproved)
	if err != nil {
		t.Fatalf("관리자확인 -> 승인완료 should succeed: %v", err)
	}
	if approved.Status != constant.WorkStatusApproved {
		t.Errorf("expected 승인완료, got %s", approved.Status)
	}

	// Approved is terminal.
	_, err = testRepo.WorkLog.ChangeStatus(ctx, nil, created.LogID, constant.WorkStatusRegistered)
	if !repository.IsKind(err, repository.KindValidationFailed) {
		t.Fatalf("expected transition rejection from 승인완료, got %v", err)
	}
}

func TestWorkLogChangeStatus_RejectBackToRegistered(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	created, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "교육"), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer deleteWorkLogRows(created.LogID)

	if _, err := testRepo.WorkLog.ChangeStatus(ctx, nil, created.LogID, constant.WorkStatusManagerReviewed); err != nil {
		t.Fatalf("등록 -> 관리자확인 should succeed: %v", err)
	}

	rejected, err := testRepo.WorkLog.ChangeStatus(ctx, nil, created.LogID, constant.WorkStatusRegistered)
	if err != nil {
		t.Fatalf("관리자확인 -> 등록 reject path should succeed: %v", err)
	}
	if rejected.Status != constant.WorkStatusRegistered {
		t.Errorf("expected 등록 after reject, got %s", rejected.Status)
	}
}

func TestWorkLogChangeStatus_SkippingReviewFails(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	created, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "정기점검"), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer deleteWorkLogRows(created.LogID)

	_, err = testRepo.WorkLog.ChangeStatus(ctx, nil, created.LogID, constant.WorkStatusApproved)
	if !repository.IsKind(err, repository.KindValidationFailed) {
		t.Fatalf("등록 -> 승인완료 must be rejected, got %v", err)
	}
}

func TestWorkLogDelete_OnlyRegistered(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	created, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "정기점검"), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer deleteWorkLogRows(created.LogID)

	if _, err := testRepo.WorkLog.ChangeStatus(ctx, nil, created.LogID, constant.WorkStatusManagerReviewed); err != nil {
		t.Fatalf("status change failed: %v", err)
	}

	err = testRepo.WorkLog.Delete(ctx, nil, created.LogID)
	if !repository.IsKind(err, repository.KindValidationFailed) {
		t.Fatalf("delete of reviewed log must be rejected, got %v", err)
	}
}

func TestWorkLogDelete_CascadesIncidentAndFiles(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	incident := &repository.IncidentData{
		ActionType: constant.IncidentActionTemporary,
		StartTime:  time.Now().Add(-time.Hour),
		EndTime:    time.Now(),
		Severity:   constant.IncidentSeverityCritical,
		CauseType:  "NW",
	}
	created, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "장애대응"), incident)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	file := &model.FileUpload{
		LogID:        created.LogID,
		UserID:       user.UserID,
		OriginalName: "장애보고서.pdf",
		StoredName:   "none",
		FilePath:     "",
		FileSize:     1024,
	}
	if err := testDB.WithContext(ctx).Create(file).Error; err != nil {
		t.Fatalf("failed to create file row: %v", err)
	}

	if err := testRepo.WorkLog.Delete(ctx, nil, created.LogID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var count int64
	testDB.Model(&model.WorkLog{}).Where("log_id = ?", created.LogID).Count(&count)
	if count != 0 {
		t.Error("work log row must be gone")
	}
	testDB.Model(&model.Incident{}).Where("log_id = ?", created.LogID).Count(&count)
	if count != 0 {
		t.Error("incident row must be gone")
	}
	testDB.Model(&model.FileUpload{}).Where("log_id = ?", created.LogID).Count(&count)
	if count != 0 {
		t.Error("file rows must be gone")
	}
}

func TestWorkLogUpdate_AttachIncidentLater(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	created, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "기술지원"), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer deleteWorkLogRows(created.LogID)

	// Switching to an incident type without the incident payload must fail.
	incidentType := "장애처리"
	_, err = testRepo.WorkLog.Update(ctx, nil, created.LogID, repository.WorkLogUpdate{WorkType: &incidentType}, nil)
	if !repository.IsKind(err, repository.KindValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}

	// With the payload the incident is created and linked.
	incident := &repository.IncidentData{
		ActionType: constant.IncidentActionGuidance,
		StartTime:  time.Now().Add(-30 * time.Minute),
		EndTime:    time.Now(),
		Severity:   constant.IncidentSeverityMinor,
		CauseType:  "설정",
	}
	updated, err := testRepo.WorkLog.Update(ctx, nil, created.LogID, repository.WorkLogUpdate{WorkType: &incidentType}, incident)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.IncidentID == nil || updated.Incident == nil {
		t.Fatal("incident must be created and linked by the update")
	}
}

func TestWorkLogFindAll_DateRangeInclusiveEnd(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	wl := newWorkLog(user, project, contact, "정기점검")
	wl.WorkStart = time.Date(2026, 3, 31, 23, 30, 0, 0, time.Local)
	wl.WorkEnd = time.Date(2026, 4, 1, 0, 30, 0, 0, time.Local)
	created, err := testRepo.WorkLog.Create(ctx, nil, wl, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer deleteWorkLogRows(created.LogID)

	dr, err := util.ParseDateRange("2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("parse range failed: %v", err)
	}

	logs, total, err := testRepo.WorkLog.FindAll(ctx, nil, repository.WorkLogFilter{
		UserID: user.UserID,
		Range:  dr,
	})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if total != 1 || len(logs) != 1 {
		t.Fatalf("a log at 23:30 on the end date must be inside the range, got total=%d", total)
	}
}

func TestProjectSoftDelete_GuardedByWorkLogs(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	created, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "정기점검"), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer deleteWorkLogRows(created.LogID)

	err = testRepo.Project.SoftDelete(ctx, nil, project.ProjectID)
	if !repository.IsKind(err, repository.KindValidationFailed) {
		t.Fatalf("project with work logs must not be deletable, got %v", err)
	}

	if err := testRepo.WorkLog.Delete(ctx, nil, created.LogID); err != nil {
		t.Fatalf("work log delete failed: %v", err)
	}
	if err := testRepo.Project.SoftDelete(ctx, nil, project.ProjectID); err != nil {
		t.Fatalf("soft delete should succeed once logs are gone: %v", err)
	}

	_, err = testRepo.Project.GetByID(ctx, nil, project.ProjectID)
	if !repository.IsKind(err, repository.KindNotFound) {
		t.Fatalf("soft-deleted project must be invisible, got %v", err)
	}
}

func TestContactDelete_GuardedByWorkLogs(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	created, err := testRepo.WorkLog.Create(ctx, nil, newWorkLog(user, project, contact, "기술지원"), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer deleteWorkLogRows(created.LogID)

	err = testRepo.Contact.Delete(ctx, nil, contact.ContactID)
	if !repository.IsKind(err, repository.KindValidationFailed) {
		t.Fatalf("contact referenced by a work log must not be deletable, got %v", err)
	}
}

func TestProductCreate_DuplicateTypeName(t *testing.T) {
	ctx := context.Background()
	nano := time.Now().UnixNano()

	p1 := &model.Product{ProductType: "DB", ProductName: fmt.Sprintf("제품%d", nano)}
	if _, err := testRepo.Product.Create(ctx, nil, p1); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	defer testDB.Where("product_id = ?", p1.ProductID).Delete(&model.Product{})

	p2 := &model.Product{ProductType: "DB", ProductName: p1.ProductName}
	_, err := testRepo.Product.Create(ctx, nil, p2)
	if !repository.IsKind(err, repository.KindConflict) {
		t.Fatalf("duplicate type/name must conflict, got %v", err)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	user, _, _, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	dup := &model.User{
		DeptID:   user.DeptID,
		Email:    user.Email,
		Name:     "중복",
		Position: "사원",
		Password: "$2a$12$placeholder",
		Role:     constant.UserRoleEngineer,
	}
	_, err := testRepo.User.Create(ctx, nil, dup)
	if !repository.IsKind(err, repository.KindConflict) {
		t.Fatalf("duplicate email must conflict, got %v", err)
	}
}

func TestStatistics_CountsAndBuckets(t *testing.T) {
	user, project, contact, cleanup := setupBaseData(t)
	defer cleanup()
	ctx := context.Background()

	var logIDs []uint
	for _, workType := range []string{"정기점검", "기술지원", "장애처리"} {
		wl := newWorkLog(user, project, contact, workType)
		var incident *repository.IncidentData
		if workType == "장애처리" {
			incident = &repository.IncidentData{
				ActionType: constant.IncidentActionPermanent,
				StartTime:  wl.WorkStart,
				EndTime:    wl.WorkEnd,
				Severity:   constant.IncidentSeverityMajor,
				CauseType:  "SW",
			}
		}
		created, err := testRepo.WorkLog.Create(ctx, nil, wl, incident)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		logIDs = append(logIDs, created.LogID)
	}
	defer func() {
		for _, id := range logIDs {
			deleteWorkLogRows(id)
		}
	}()

	dr, _ := util.ParseDateRange("2026-03-01", "2026-03-31")
	stats, err := testRepo.Statistics.GetStatistics(ctx, dr)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if stats.TotalCount < 3 {
		t.Errorf("expected at least 3 logs in range, got %d", stats.TotalCount)
	}

	detailed, err := testRepo.Statistics.GetDetailedStatistics(ctx, dr)
	if err != nil {
		t.Fatalf("detailed statistics failed: %v", err)
	}
	if detailed.Overview.Total < 3 {
		t.Errorf("overview total too small: %d", detailed.Overview.Total)
	}

	var mine *repository.EngineerStats
	for i := range detailed.ByEngineer {
		if detailed.ByEngineer[i].UserName == user.Name {
			mine = &detailed.ByEngineer[i]
			break
		}
	}
	if mine == nil {
		t.Fatal("engineer row missing from detailed statistics")
	}
	if mine.IncidentSupport < 1 {
		t.Errorf("incident bucket must count 장애처리, got %d", mine.IncidentSupport)
	}
	if mine.EtcWork != 0 {
		t.Errorf("기술지원 must not fall into the etc bucket, got %d", mine.EtcWork)
	}
	// Three two-hour sessions.
	if mine.TotalHours < 6.0 {
		t.Errorf("total hours too small: %f", mine.TotalHours)
	}
}
