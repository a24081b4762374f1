package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/model"
	"github.com/suritel/worklog-api/internal/util"
	"gorm.io/gorm"
)

// WorkLogRepository owns the work-log lifecycle: creation and update paired
// with the optional incident record, the approval state machine, and the
// delete guard with its cascade.
type WorkLogRepository struct {
	*baseRepository
}

const (
	msgWorkLogNotFound       = "작업 로그를 찾을 수 없습니다."
	msgIncidentDataRequired  = "장애 관련 작업 유형에는 장애 상세 정보가 필수입니다."
	msgIncidentFieldsMissing = "장애 상세의 영향도(severity)와 원인분류(cause_type)는 필수입니다."
	msgDeleteOnlyRegistered  = "등록 상태의 작업 로그만 삭제할 수 있습니다."
	msgInvalidProjectRef     = "유효하지 않은 프로젝트 ID입니다."
	msgInvalidContactRef     = "유효하지 않은 담당자 ID입니다."
)

// WorkLogFilter narrows FindAll. Zero values mean "no filter".
type WorkLogFilter struct {
	UserID      uint
	ProjectID   uint
	WorkType    string
	Status      constant.WorkStatus
	ProductType string
	Keyword     string
	Range       util.DateRange
	Page        uint
	Limit       uint
}

// WorkLogUpdate carries a partial work-log update; nil fields are left
// untouched.
type WorkLogUpdate struct {
	ProjectID      *uint
	ContactID      *uint
	WorkStart      *time.Time
	WorkEnd        *time.Time
	WorkType       *string
	SupprtType     *string
	ServiceType    *string
	ProductType    *string
	ProductVersion *string
	Details        *string
}

// IncidentData is the incident payload accompanying a create or update.
type IncidentData struct {
	ActionType   constant.IncidentActionType
	StartTime    time.Time
	EndTime      time.Time
	Severity     constant.IncidentSeverity
	CauseType    string
	IsRecurrence string
}

func (d IncidentData) toModel(logID uint) *model.Incident {
	isRecurrence := d.IsRecurrence
	if isRecurrence == "" {
		isRecurrence = constant.RecurrenceNo
	}

	return &model.Incident{
		LogID:        logID,
		ActionType:   d.ActionType,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		Severity:     d.Severity,
		CauseType:    d.CauseType,
		IsRecurrence: isRecurrence,
	}
}

// validateIncidentData rejects an incident payload missing the mandatory
// severity or cause classification.
func validateIncidentData(incident *IncidentData) error {
	if incident.Severity == "" || incident.CauseType == "" {
		return NewValidationFailed(msgIncidentFieldsMissing)
	}
	return nil
}

// checkReferences verifies that the referenced project is a live (non-deleted)
// row and that the contact exists. Nil ids are skipped, so partial updates only
// pay for the references they touch.
func (wr WorkLogRepository) checkReferences(ctx context.Context, tx *gorm.DB, projectID, contactID *uint) error {
	if projectID != nil {
		var count int64
		if err := tx.WithContext(ctx).Model(&model.Project{}).
			Where("project_id = ? AND is_deleted = ?", *projectID, false).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return NewValidationFailed(msgInvalidProjectRef)
		}
	}

	if contactID != nil {
		var count int64
		if err := tx.WithContext(ctx).Model(&model.ManagerContact{}).
			Where("contact_id = ?", *contactID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return NewValidationFailed(msgInvalidContactRef)
		}
	}

	return nil
}

// Create inserts the work log and, when supplied, its incident inside one
// transaction. Incident-type work without an incident payload is rejected
// before anything is written. The caller must have set UserID from the
// authenticated actor.
func (wr WorkLogRepository) Create(ctx context.Context, tx *gorm.DB, workLog *model.WorkLog, incident *IncidentData) (*model.WorkLog, error) {
	wr.logger.Debugf("Create work log for user %d, work type %s", workLog.UserID, workLog.WorkType)

	if util.IsIncidentWorkType(workLog.WorkType) {
		if incident == nil {
			return nil, NewValidationFailed(msgIncidentDataRequired)
		}
		if err := validateIncidentData(incident); err != nil {
			return nil, err
		}
	}

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	workLog.Status = constant.WorkStatusRegistered
	workLog.IncidentID = nil

	txErr := wr.withTx(db, func(tx *gorm.DB) error {
		if err := wr.checkReferences(ctx, tx, &workLog.ProjectID, &workLog.ContactID); err != nil {
			return err
		}

		if err := tx.WithContext(ctx).Create(workLog).Error; err != nil {
			return err
		}

		if incident != nil {
			newIncident := incident.toModel(workLog.LogID)
			if err := tx.WithContext(ctx).Create(newIncident).Error; err != nil {
				return err
			}

			if err := tx.WithContext(ctx).Model(&model.WorkLog{}).
				Where("log_id = ?", workLog.LogID).
				Update("incident_id", newIncident.IncidentID).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return wr.FindByID(ctx, nil, workLog.LogID)
}

// applyDateRange narrows the query to the inclusive work_start window.
func applyDateRange(query *gorm.DB, dr util.DateRange) *gorm.DB {
	switch {
	case dr.Start != nil && dr.End != nil:
		return query.Where("work_start BETWEEN ? AND ?", *dr.Start, *dr.End)
	case dr.Start != nil:
		return query.Where("work_start >= ?", *dr.Start)
	case dr.End != nil:
		return query.Where("work_start <= ?", *dr.End)
	default:
		return query
	}
}

func (wr WorkLogRepository) FindAll(ctx context.Context, tx *gorm.DB, filter WorkLogFilter) ([]model.WorkLog, int64, error) {
	wr.logger.Debugf("Find work logs with filter: %+v", filter)

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.WorkLog{})

	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.ProjectID != 0 {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.WorkType != "" {
		query = query.Where("work_type = ?", filter.WorkType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ProductType != "" {
		query = query.Where("product_type = ?", filter.ProductType)
	}
	if filter.Keyword != "" {
		query = query.Where("details LIKE ?", "%"+filter.Keyword+"%")
	}
	query = applyDateRange(query, filter.Range)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	limit := filter.Limit
	if limit == 0 {
		limit = constant.DefaultPageSize
	}

	var workLogs []model.WorkLog
	if err := query.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id", "name", "email", "position")
		}).
		Preload("Project").
		Preload("Project.Client").
		Preload("Contact").
		Preload("Incident").
		Preload("Files").
		Order("work_start DESC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&workLogs).Error; err != nil {
		return nil, 0, err
	}

	return workLogs, total, nil
}

func (wr WorkLogRepository) FindByID(ctx context.Context, tx *gorm.DB, logID uint) (*model.WorkLog, error) {
	wr.logger.Debugf("Find work log by id: %d", logID)

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var workLog model.WorkLog
	if err := db.WithContext(ctx).Model(&model.WorkLog{}).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id", "dept_id", "name", "email", "position")
		}).
		Preload("User.Department").
		Preload("Project").
		Preload("Project.Client").
		Preload("Contact").
		Preload("Incident").
		Preload("Files").
		Where("log_id = ?", logID).
		First(&workLog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound(msgWorkLogNotFound)
		}
		return nil, err
	}

	return &workLog, nil
}

func (wu WorkLogUpdate) changes() map[string]any {
	changes := map[string]any{}
	if wu.ProjectID != nil {
		changes["project_id"] = *wu.ProjectID
	}
	if wu.ContactID != nil {
		changes["contact_id"] = *wu.ContactID
	}
	if wu.WorkStart != nil {
		changes["work_start"] = *wu.WorkStart
	}
	if wu.WorkEnd != nil {
		changes["work_end"] = *wu.WorkEnd
	}
	if wu.WorkType != nil {
		changes["work_type"] = *wu.WorkType
	}
	if wu.SupprtType != nil {
		changes["supprt_type"] = *wu.SupprtType
	}
	if wu.ServiceType != nil {
		changes["service_type"] = *wu.ServiceType
	}
	if wu.ProductType != nil {
		changes["product_type"] = *wu.ProductType
	}
	if wu.ProductVersion != nil {
		changes["product_version"] = *wu.ProductVersion
	}
	if wu.Details != nil {
		changes["details"] = *wu.Details
	}
	return changes
}

// Update applies a partial work-log update and upserts the incident record in
// one transaction. Ownership checks (only the author or a manager/admin) are
// the caller's responsibility.
func (wr WorkLogRepository) Update(ctx context.Context, tx *gorm.DB, logID uint, workData WorkLogUpdate, incident *IncidentData) (*model.WorkLog, error) {
	wr.logger.Debugf("Update work log id: %d", logID)

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	txErr := wr.withTx(db, func(tx *gorm.DB) error {
		var workLog model.WorkLog
		if err := tx.WithContext(ctx).Where("log_id = ?", logID).First(&workLog).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFound(msgWorkLogNotFound)
			}
			return err
		}

		// The incident rule is re-checked against the effective work type,
		// which the update itself may change.
		effectiveWorkType := workLog.WorkType
		if workData.WorkType != nil {
			effectiveWorkType = *workData.WorkType
		}
		if util.IsIncidentWorkType(effectiveWorkType) && incident != nil {
			if err := validateIncidentData(incident); err != nil {
				return err
			}
		}

		if err := wr.checkReferences(ctx, tx, workData.ProjectID, workData.ContactID); err != nil {
			return err
		}

		if changes := workData.changes(); len(changes) > 0 {
			if err := tx.WithContext(ctx).Model(&model.WorkLog{}).
				Where("log_id = ?", logID).
				Updates(changes).Error; err != nil {
				return err
			}
		}

		if incident != nil {
			if workLog.IncidentID != nil {
				if err := tx.WithContext(ctx).Model(&model.Incident{}).
					Where("incident_id = ?", *workLog.IncidentID).
					Updates(incident.toModel(logID)).Error; err != nil {
					return err
				}
			} else {
				newIncident := incident.toModel(logID)
				if err := tx.WithContext(ctx).Create(newIncident).Error; err != nil {
					return err
				}
				if err := tx.WithContext(ctx).Model(&model.WorkLog{}).
					Where("log_id = ?", logID).
					Update("incident_id", newIncident.IncidentID).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return wr.FindByID(ctx, nil, logID)
}

// ChangeStatus advances the approval state machine. Anything outside the
// fixed transition table fails with the disallowed transition named and the
// record untouched; only the status column is written on success.
func (wr WorkLogRepository) ChangeStatus(ctx context.Context, tx *gorm.DB, logID uint, newStatus constant.WorkStatus) (*model.WorkLog, error) {
	wr.logger.Debugf("Change status of work log %d to %s", logID, newStatus)

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var workLog model.WorkLog
	if err := db.WithContext(ctx).Where("log_id = ?", logID).First(&workLog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound(msgWorkLogNotFound)
		}
		return nil, err
	}

	if !util.CanChangeStatus(workLog.Status, newStatus) {
		allowed := util.AllowedNextStatuses(workLog.Status)
		allowedMsg := "없음"
		if len(allowed) > 0 {
			allowedMsg = ""
			for i, s := range allowed {
				if i > 0 {
					allowedMsg += ", "
				}
				allowedMsg += string(s)
			}
		}
		return nil, NewValidationFailed(fmt.Sprintf(
			"'%s' 상태에서 '%s' 상태로 변경할 수 없습니다. 허용 전이: [%s]",
			workLog.Status, newStatus, allowedMsg))
	}

	if err := db.WithContext(ctx).Model(&model.WorkLog{}).
		Where("log_id = ?", logID).
		Update("status", newStatus).Error; err != nil {
		return nil, err
	}

	return wr.FindByID(ctx, nil, logID)
}

// Delete removes a registered work log with its incident and attachment rows
// in one transaction. Reviewed and approved logs cannot be deleted. Stored
// attachment objects are removed best-effort after the rows commit.
func (wr WorkLogRepository) Delete(ctx context.Context, tx *gorm.DB, logID uint) error {
	wr.logger.Debugf("Delete work log id: %d", logID)

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var workLog model.WorkLog
	if err := db.WithContext(ctx).Where("log_id = ?", logID).First(&workLog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFound(msgWorkLogNotFound)
		}
		return err
	}

	if workLog.Status != constant.WorkStatusRegistered {
		return NewValidationFailed(msgDeleteOnlyRegistered)
	}

	var files []model.FileUpload
	if err := db.WithContext(ctx).Where("log_id = ?", logID).Find(&files).Error; err != nil {
		return err
	}

	txErr := wr.withTx(db, func(tx *gorm.DB) error {
		if workLog.IncidentID != nil {
			if err := tx.WithContext(ctx).
				Where("incident_id = ?", *workLog.IncidentID).
				Delete(&model.Incident{}).Error; err != nil {
				return err
			}
		}

		if err := tx.WithContext(ctx).
			Where("log_id = ?", logID).
			Delete(&model.FileUpload{}).Error; err != nil {
			return err
		}

		if err := tx.WithContext(ctx).
			Where("log_id = ?", logID).
			Delete(&model.WorkLog{}).Error; err != nil {
			return err
		}

		return nil
	})
	if txErr != nil {
		return txErr
	}

	for _, file := range files {
		if err := wr.removeStoredObject(ctx, file); err != nil {
			wr.logger.Errorf("Failed to remove stored object %s for deleted work log %d: %v", file.StoredName, logID, err)
		}
	}

	return nil
}
