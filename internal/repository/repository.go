package repository

import (
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
	s3     *minio.Client
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB         *gorm.DB
	User       *UserRepository
	Department *DepartmentRepository
	Client     *ClientRepository
	Project    *ProjectRepository
	Contact    *ContactRepository
	Product    *ProductRepository
	WorkLog    *WorkLogRepository
	FileUpload *FileUploadRepository
	Statistics *StatisticsRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger, s3 *minio.Client) *baseRepository {
	return &baseRepository{db: db, logger: logger, s3: s3}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger, s3 *minio.Client) *Repository {
	br := newBaseRepository(db, logger, s3)

	return &Repository{
		DB:         db,
		User:       &UserRepository{baseRepository: br},
		Department: &DepartmentRepository{baseRepository: br},
		Client:     &ClientRepository{baseRepository: br},
		Project:    &ProjectRepository{baseRepository: br},
		Contact:    &ContactRepository{baseRepository: br},
		Product:    &ProductRepository{baseRepository: br},
		WorkLog:    &WorkLogRepository{baseRepository: br},
		FileUpload: &FileUploadRepository{baseRepository: br},
		Statistics: &StatisticsRepository{baseRepository: br},
	}
}

// withTx wraps fn in a database transaction; fn's error triggers a full
// rollback before it propagates.
func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Debugf("withTx transaction rolled back: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
