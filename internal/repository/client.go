package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/model"
	"gorm.io/gorm"
)

// ClientRepository manages customer companies. Clients and their projects use
// logical deletion (is_deleted), unlike work logs which are removed
// physically.
type ClientRepository struct {
	*baseRepository
}

const msgClientNotFound = "고객사를 찾을 수 없습니다."

func (cr ClientRepository) FindAll(ctx context.Context, tx *gorm.DB, page, limit uint) ([]model.Client, int64, error) {
	cr.logger.Debug("Find all clients")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Client{}).Where("is_deleted = ?", false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = constant.DefaultPageSize
	}

	var clients []model.Client
	if err := query.
		Preload("Projects", "is_deleted = ?", false).
		Order("client_id ASC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&clients).Error; err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

func (cr ClientRepository) GetByID(ctx context.Context, tx *gorm.DB, clientID uint) (*model.Client, error) {
	cr.logger.Debugf("Get client by id: %d", clientID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var client model.Client
	if err := db.WithContext(ctx).
		Preload("Projects", "is_deleted = ?", false).
		Preload("Projects.Contacts").
		Preload("Projects.Department").
		Where("client_id = ? AND is_deleted = ?", clientID, false).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound(msgClientNotFound)
		}
		return nil, err
	}

	return &client, nil
}

func (cr *ClientRepository) Create(ctx context.Context, tx *gorm.DB, client *model.Client) (*model.Client, error) {
	cr.logger.Debugf("Create client: %s", client.ClientName)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, err
	}

	return client, nil
}

func (cr *ClientRepository) Update(ctx context.Context, tx *gorm.DB, clientID uint, clientName string) (*model.Client, error) {
	cr.logger.Debugf("Update client id: %d", clientID)

	if _, err := cr.GetByID(ctx, tx, clientID); err != nil {
		return nil, err
	}

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Client{}).
		Where("client_id = ?", clientID).
		Update("client_name", clientName).Error; err != nil {
		return nil, err
	}

	return cr.GetByID(ctx, nil, clientID)
}

// SoftDelete marks the client and its projects deleted, refusing while any of
// those projects still has work logs.
func (cr *ClientRepository) SoftDelete(ctx context.Context, tx *gorm.DB, clientID uint) error {
	cr.logger.Debugf("Soft delete client id: %d", clientID)

	if _, err := cr.GetByID(ctx, tx, clientID); err != nil {
		return err
	}

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var projects []model.Project
	if err := db.WithContext(ctx).
		Where("client_id = ? AND is_deleted = ?", clientID, false).
		Find(&projects).Error; err != nil {
		return err
	}

	for _, project := range projects {
		var workLogCount int64
		if err := db.WithContext(ctx).Model(&model.WorkLog{}).
			Where("project_id = ?", project.ProjectID).
			Count(&workLogCount).Error; err != nil {
			return err
		}
		if workLogCount > 0 {
			return NewValidationFailed(fmt.Sprintf(
				"해당 고객사의 프로젝트(%s)에 작업 로그가 존재하여 삭제할 수 없습니다. 프로젝트를 먼저 정리해 주세요.",
				project.ProjectName))
		}
	}

	return cr.withTx(db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Model(&model.Project{}).
			Where("client_id = ?", clientID).
			Update("is_deleted", true).Error; err != nil {
			return err
		}

		return tx.WithContext(ctx).Model(&model.Client{}).
			Where("client_id = ?", clientID).
			Update("is_deleted", true).Error
	})
}
