package repository

import (
	"context"
	"errors"

	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/model"
	"gorm.io/gorm"
)

type ContactRepository struct {
	*baseRepository
}

const (
	msgContactNotFound = "담당자를 찾을 수 없습니다."
	msgContactHasLogs  = "해당 담당자에 연관된 작업 로그가 존재하여 삭제할 수 없습니다."
)

func (cr ContactRepository) FindByProject(ctx context.Context, tx *gorm.DB, projectID uint) ([]model.ManagerContact, error) {
	cr.logger.Debugf("Find contacts for project id: %d", projectID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var contacts []model.ManagerContact
	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("contact_id ASC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}

	return contacts, nil
}

func (cr ContactRepository) GetByID(ctx context.Context, tx *gorm.DB, contactID uint) (*model.ManagerContact, error) {
	cr.logger.Debugf("Get contact by id: %d", contactID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var contact model.ManagerContact
	if err := db.WithContext(ctx).Where("contact_id = ?", contactID).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound(msgContactNotFound)
		}
		return nil, err
	}

	return &contact, nil
}

// Create validates the target project before inserting the contact.
func (cr *ContactRepository) Create(ctx context.Context, tx *gorm.DB, contact *model.ManagerContact) (*model.ManagerContact, error) {
	cr.logger.Debugf("Create contact %s for project id: %d", contact.Name, contact.ProjectID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var projectCount int64
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Where("project_id = ? AND is_deleted = ?", contact.ProjectID, false).
		Count(&projectCount).Error; err != nil {
		return nil, err
	}
	if projectCount == 0 {
		return nil, NewValidationFailed(msgProjectNotFound)
	}

	if err := db.WithContext(ctx).Create(contact).Error; err != nil {
		return nil, err
	}

	return contact, nil
}

func (cr *ContactRepository) Update(ctx context.Context, tx *gorm.DB, contactID uint, changes map[string]any) (*model.ManagerContact, error) {
	cr.logger.Debugf("Update contact id: %d", contactID)

	if _, err := cr.GetByID(ctx, tx, contactID); err != nil {
		return nil, err
	}

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if len(changes) > 0 {
		if err := db.WithContext(ctx).Model(&model.ManagerContact{}).
			Where("contact_id = ?", contactID).
			Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return cr.GetByID(ctx, nil, contactID)
}

// Delete refuses while work logs still reference the contact.
func (cr *ContactRepository) Delete(ctx context.Context, tx *gorm.DB, contactID uint) error {
	cr.logger.Debugf("Delete contact id: %d", contactID)

	if _, err := cr.GetByID(ctx, tx, contactID); err != nil {
		return err
	}

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var workLogCount int64
	if err := db.WithContext(ctx).Model(&model.WorkLog{}).
		Where("contact_id = ?", contactID).
		Count(&workLogCount).Error; err != nil {
		return err
	}
	if workLogCount > 0 {
		return NewValidationFailed(msgContactHasLogs)
	}

	return db.WithContext(ctx).Where("contact_id = ?", contactID).Delete(&model.ManagerContact{}).Error
}
