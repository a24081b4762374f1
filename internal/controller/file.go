package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/model"
	"github.com/suritel/worklog-api/internal/util"
)

type FileController struct {
	*baseController
}

// Upload stores the attachment bytes in object storage, then records the
// metadata row against the work log.
func (fc FileController) Upload(ctx *gin.Context) {
	user, err := fc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	logID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := fc.app.Repository.WorkLog.FindByID(ctx, nil, logID); err != nil {
		fc.responseError(ctx, err)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "첨부 파일이 필요합니다.", util.GenerateErrorMessages(err, "file"), nil)
		return
	}

	info, err := util.UploadFileToS3ByFileHeader(fileHeader, &util.FileUploadOptions{
		DirectoryPath: util.GetWorkLogDirectoryPath(logID),
		UniquePrefix:  true,
		Bucket:        fc.app.Config.Minio.BUCKET,
		S3:            fc.app.S3,
	})
	if err != nil {
		fc.app.Logger.Errorf("Failed to upload attachment for log %d: %v", logID, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "파일 업로드에 실패했습니다.", nil, nil)
		return
	}

	file, err := fc.app.Repository.FileUpload.Create(ctx, nil, &model.FileUpload{
		LogID:        logID,
		UserID:       user.UserID,
		OriginalName: fileHeader.Filename,
		StoredName:   info.Key,
		FilePath:     info.Bucket,
		FileSize:     fileHeader.Size,
	})
	if err != nil {
		fc.responseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, util.BuildResponseSuccess(gin.H{"file": file}))
}

func (fc FileController) ListByWorkLog(ctx *gin.Context) {
	logID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	files, err := fc.app.Repository.FileUpload.FindByLogID(ctx, nil, logID)
	if err != nil {
		fc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"files": files})
}

// Download responds with a short-lived presigned URL instead of proxying the
// object bytes.
func (fc FileController) Download(ctx *gin.Context) {
	fileID, err := paramID(ctx, "fileId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	file, err := fc.app.Repository.FileUpload.FindByID(ctx, nil, fileID)
	if err != nil {
		fc.responseError(ctx, err)
		return
	}

	url, err := fc.app.Repository.FileUpload.PresignedURL(ctx, *file)
	if err != nil {
		fc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"url":           url,
		"original_name": file.OriginalName,
	})
}

func (fc FileController) Delete(ctx *gin.Context) {
	user, err := fc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	fileID, err := paramID(ctx, "fileId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	file, err := fc.app.Repository.FileUpload.FindByID(ctx, nil, fileID)
	if err != nil {
		fc.responseError(ctx, err)
		return
	}

	if file.UserID != user.UserID && !util.IsManagerial(user.Role) {
		util.ResponseFailed(ctx, http.StatusForbidden, "해당 파일에 대한 권한이 없습니다.", nil, nil)
		return
	}

	if err := fc.app.Repository.FileUpload.Delete(ctx, nil, fileID); err != nil {
		fc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
