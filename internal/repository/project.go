package repository

import (
	"context"
	"errors"

	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
}

const (
	msgProjectNotFound   = "프로젝트를 찾을 수 없습니다."
	msgInvalidClient     = "유효하지 않은 고객사 ID입니다."
	msgProjectHasLogs    = "해당 프로젝트에 작업 로그가 존재하여 삭제할 수 없습니다."
)

type ProjectFilter struct {
	ClientID uint
	DeptID   uint
	Page     uint
	Limit    uint
}

func (pr ProjectRepository) FindAll(ctx context.Context, tx *gorm.DB, filter ProjectFilter) ([]model.Project, int64, error) {
	pr.logger.Debugf("Find projects with filter: %+v", filter)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Project{}).Where("is_deleted = ?", false)
	if filter.ClientID != 0 {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.DeptID != 0 {
		query = query.Where("dept_id = ?", filter.DeptID)
	}

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

	var projects []model.Project
	if err := query.
		Preload("Client").
		Preload("Department").
		Preload("Contacts").
		Order("project_id ASC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func (pr ProjectRepository) GetByID(ctx context.Context, tx *gorm.DB, projectID uint) (*model.Project, error) {
	pr.logger.Debugf("Get project by id: %d", projectID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).
		Preload("Client").
		Preload("Department").
		Preload("Contacts").
		Where("project_id = ? AND is_deleted = ?", projectID, false).
		First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound(msgProjectNotFound)
		}
		return nil, err
	}

	return &project, nil
}

// Create validates that the client exists and is not soft-deleted.
func (pr *ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error) {
	pr.logger.Debugf("Create project: %s", project.ProjectName)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var clientCount int64
	if err := db.WithContext(ctx).Model(&model.Client{}).
		Where("client_id = ? AND is_deleted = ?", project.ClientID, false).
		Count(&clientCount).Error; err != nil {
		return nil, err
	}
	if clientCount == 0 {
		return nil, NewValidationFailed(msgInvalidClient)
	}

	if err := db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}

	return pr.GetByID(ctx, nil, project.ProjectID)
}

func (pr *ProjectRepository) Update(ctx context.Context, tx *gorm.DB, projectID uint, changes map[string]any) (*model.Project, error) {
	pr.logger.Debugf("Update project id: %d", projectID)

	if _, err := pr.GetByID(ctx, tx, projectID); err != nil {
		return nil, err
	}

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if len(changes) > 0 {
		if err := db.WithContext(ctx).Model(&model.Project{}).
			Where("project_id = ?", projectID).
			Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return pr.GetByID(ctx, nil, projectID)
}

// SoftDelete marks the project deleted, refusing while work logs reference it.
func (pr *ProjectRepository) SoftDelete(ctx context.Context, tx *gorm.DB, projectID uint) error {
	pr.logger.Debugf("Soft delete project id: %d", projectID)

	if _, err := pr.GetByID(ctx, tx, projectID); err != nil {
		return err
	}

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var workLogCount int64
	if err := db.WithContext(ctx).Model(&model.WorkLog{}).
		Where("project_id = ?", projectID).
		Count(&workLogCount).Error; err != nil {
		return err
	}
	if workLogCount > 0 {
		return NewValidationFailed(msgProjectHasLogs)
	}

	return db.WithContext(ctx).Model(&model.Project{}).
		Where("project_id = ?", projectID).
		Update("is_deleted", true).Error
}
