package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/model"
	"gorm.io/gorm"
)

type DepartmentRepository struct {
	*baseRepository
}

const msgDepartmentNotFound = "부서를 찾을 수 없습니다."

func (dr DepartmentRepository) FindAll(ctx context.Context, tx *gorm.DB) ([]model.Department, error) {
	dr.logger.Debug("Find all departments")

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var departments []model.Department
	if err := db.WithContext(ctx).Order("dept_id ASC").Find(&departments).Error; err != nil {
		return nil, err
	}

	return departments, nil
}

func (dr DepartmentRepository) GetByID(ctx context.Context, tx *gorm.DB, deptID uint) (*model.Department, error) {
	dr.logger.Debugf("Get department by id: %d", deptID)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var dept model.Department
	if err := db.WithContext(ctx).Where("dept_id = ?", deptID).First(&dept).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound(msgDepartmentNotFound)
		}
		return nil, err
	}

	return &dept, nil
}

func (dr *DepartmentRepository) Create(ctx context.Context, tx *gorm.DB, dept *model.Department) (*model.Department, error) {
	dr.logger.Debugf("Create department: %s", dept.DeptName)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(dept).Error; err != nil {
		return nil, err
	}

	return dept, nil
}

func (dr *DepartmentRepository) Update(ctx context.Context, tx *gorm.DB, deptID uint, deptName string) (*model.Department, error) {
	dr.logger.Debugf("Update department id: %d", deptID)

	if _, err := dr.GetByID(ctx, tx, deptID); err != nil {
		return nil, err
	}

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Department{}).
		Where("dept_id = ?", deptID).
		Update("dept_name", deptName).Error; err != nil {
		return nil, err
	}

	return dr.GetByID(ctx, nil, deptID)
}

// Delete removes a department only while no user belongs to it.
func (dr *DepartmentRepository) Delete(ctx context.Context, tx *gorm.DB, deptID uint) error {
	dr.logger.Debugf("Delete department id: %d", deptID)

	if _, err := dr.GetByID(ctx, tx, deptID); err != nil {
		return err
	}

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var userCount int64
	if err := db.WithContext(ctx).Model(&model.User{}).Where("dept_id = ?", deptID).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return NewValidationFailed(fmt.Sprintf("해당 부서에 소속된 사용자(%d명)가 있어 삭제할 수 없습니다.", userCount))
	}

	return db.WithContext(ctx).Where("dept_id = ?", deptID).Delete(&model.Department{}).Error
}
