package repository

import (
	"context"
	"errors"

	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
}

const (
	msgUserNotFound   = "사용자를 찾을 수 없습니다."
	msgEmailInUse     = "이미 사용 중인 이메일입니다."
	msgAccountDormant = "비활성화된 계정입니다. 관리자에게 문의하세요."
)

type UserFilter struct {
	DeptID   uint
	Role     constant.UserRole
	IsActive *bool
	Page     uint
	Limit    uint
}

func (ur UserRepository) GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %d", userID)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Preload("Department").Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound(msgUserNotFound)
		}
		return nil, err
	}

	return &user, nil
}

func (ur UserRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.User, error) {
	ur.logger.Debugf("Get user by email: %s", email)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Preload("Department").Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound(msgUserNotFound)
		}
		return nil, err
	}

	return &user, nil
}

func (ur UserRepository) FindAll(ctx context.Context, tx *gorm.DB, filter UserFilter) ([]model.User, int64, error) {
	ur.logger.Debugf("Find users with filter: %+v", filter)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.User{})
	if filter.DeptID != 0 {
		query = query.Where("dept_id = ?", filter.DeptID)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
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

	var users []model.User
	if err := query.
		Preload("Department").
		Order("user_id ASC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Create rejects a duplicate email inside the same transaction as the insert.
// The caller hashes the password beforehand.
func (ur *UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser *model.User) (*model.User, error) {
	ur.logger.Debugf("Create user with email: %s", newUser.Email)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	txErr := ur.withTx(db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.WithContext(ctx).Model(&model.User{}).Where("email = ?", newUser.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return NewConflict(msgEmailInUse)
		}

		return tx.WithContext(ctx).Create(newUser).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return ur.GetByID(ctx, nil, newUser.UserID)
}

func (ur *UserRepository) Update(ctx context.Context, tx *gorm.DB, userID uint, changes map[string]any) (*model.User, error) {
	ur.logger.Debugf("Update user id: %d", userID)

	if _, err := ur.GetByID(ctx, tx, userID); err != nil {
		return nil, err
	}

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if len(changes) > 0 {
		if err := db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return ur.GetByID(ctx, nil, userID)
}

// SetActive toggles the account flag; deactivation is the soft form of
// deleting a user.
func (ur *UserRepository) SetActive(ctx context.Context, tx *gorm.DB, userID uint, active bool) (*model.User, error) {
	return ur.Update(ctx, tx, userID, map[string]any{"is_active": active})
}
