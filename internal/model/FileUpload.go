package model

// FileUpload stores attachment metadata only; the bytes live in object
// storage under StoredName.
type FileUpload struct {
	FileID uint `gorm:"column:file_id;primaryKey;autoIncrement" json:"file_id"`
	LogID  uint `gorm:"column:log_id;not null" json:"log_id"`
	UserID uint `gorm:"column:user_id;not null" json:"user_id"`

	OriginalName string `gorm:"column:original_name;type:varchar(255);not null" json:"original_name"`
	StoredName   string `gorm:"column:stored_name;type:varchar(255)" json:"stored_name"`
	FilePath     string `gorm:"column:file_path;type:varchar(500)" json:"file_path"`
	FileSize     int64  `gorm:"column:file_size" json:"file_size"`
}

func (f FileUpload) TableName() string {
	return "file_uploads"
}
