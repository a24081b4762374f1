package repository

import (
	"context"
	"errors"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/model"
	"gorm.io/gorm"
)

type FileUploadRepository struct {
	*baseRepository
}

const msgFileNotFound = "첨부파일을 찾을 수 없습니다."

func (fr FileUploadRepository) Create(ctx context.Context, tx *gorm.DB, file *model.FileUpload) (*model.FileUpload, error) {
	fr.logger.Debugf("Create file upload for work log %d: %s", file.LogID, file.OriginalName)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(file).Error; err != nil {
		return nil, err
	}

	return file, nil
}

func (fr FileUploadRepository) FindByID(ctx context.Context, tx *gorm.DB, fileID uint) (*model.FileUpload, error) {
	fr.logger.Debugf("Find file upload by id: %d", fileID)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var file model.FileUpload
	if err := db.WithContext(ctx).Where("file_id = ?", fileID).First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound(msgFileNotFound)
		}
		return nil, err
	}

	return &file, nil
}

func (fr FileUploadRepository) FindByLogID(ctx context.Context, tx *gorm.DB, logID uint) ([]model.FileUpload, error) {
	fr.logger.Debugf("Find file uploads for work log: %d", logID)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var files []model.FileUpload
	if err := db.WithContext(ctx).Where("log_id = ?", logID).Order("file_id ASC").Find(&files).Error; err != nil {
		return nil, err
	}

	return files, nil
}

// Delete removes the metadata row, then the stored object best-effort.
func (fr FileUploadRepository) Delete(ctx context.Context, tx *gorm.DB, fileID uint) error {
	fr.logger.Debugf("Delete file upload id: %d", fileID)

	file, err := fr.FindByID(ctx, tx, fileID)
	if err != nil {
		return err
	}

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Where("file_id = ?", fileID).Delete(&model.FileUpload{}).Error; err != nil {
		return err
	}

	if err := fr.removeStoredObject(ctx, *file); err != nil {
		fr.logger.Errorf("Failed to remove stored object %s: %v", file.StoredName, err)
	}

	return nil
}

// PresignedURL generates a short-lived download link for the stored object.
func (fr FileUploadRepository) PresignedURL(ctx context.Context, file model.FileUpload) (string, error) {
	if file.FilePath == "" || file.StoredName == "" {
		return "", NewNotFound(msgFileNotFound)
	}

	url, err := fr.s3.PresignedGetObject(ctx, file.FilePath, file.StoredName, 60*time.Minute, nil)
	if err != nil {
		return "", err
	}

	return url.String(), nil
}

// removeStoredObject deletes the attachment bytes from object storage.
// FilePath carries the bucket, StoredName the object key.
func (b baseRepository) removeStoredObject(ctx context.Context, file model.FileUpload) error {
	if b.s3 == nil || file.FilePath == "" || file.StoredName == "" {
		return nil
	}

	return b.s3.RemoveObject(ctx, file.FilePath, file.StoredName, minio.RemoveObjectOptions{})
}
