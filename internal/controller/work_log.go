package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/model"
	"github.com/suritel/worklog-api/internal/repository"
	"github.com/suritel/worklog-api/internal/util"
)

type WorkLogController struct {
	*baseController
}

const (
	msgWorkEndBeforeStart = "작업 종료 시간은 시작 시간보다 빠를 수 없습니다."
	msgNoPermission       = "해당 작업 로그에 대한 권한이 없습니다."
)

// incidentRequest is the optional incident payload on create/update.
type incidentRequest struct {
	ActionType   string    `json:"action_type" binding:"required,strNotEmpty,max=50"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	Severity     string    `json:"severity" binding:"required,strNotEmpty,max=20"`
	CauseType    string    `json:"cause_type" binding:"required,strNotEmpty,max=20"`
	IsRecurrence string    `json:"is_recurrence" binding:"omitempty,oneof=Y N"`
}

func (ir incidentRequest) toData() *repository.IncidentData {
	return &repository.IncidentData{
		ActionType:   constant.IncidentActionType(ir.ActionType),
		StartTime:    ir.StartTime,
		EndTime:      ir.EndTime,
		Severity:     constant.IncidentSeverity(ir.Severity),
		CauseType:    ir.CauseType,
		IsRecurrence: ir.IsRecurrence,
	}
}

func (wc WorkLogController) Create(ctx *gin.Context) {
	type Request struct {
		ProjectID      uint             `json:"project_id" binding:"required"`
		ContactID      uint             `json:"contact_id" binding:"required"`
		WorkStart      time.Time        `json:"work_start" binding:"required"`
		WorkEnd        time.Time        `json:"work_end" binding:"required"`
		WorkType       string           `json:"work_type" binding:"required,strNotEmpty,max=50"`
		SupprtType     string           `json:"supprt_type" binding:"required,strNotEmpty,max=50"`
		ServiceType    string           `json:"service_type" binding:"required,strNotEmpty,max=50"`
		ProductType    string           `json:"product_type" binding:"required,strNotEmpty,max=50"`
		ProductVersion string           `json:"product_version" binding:"required,strNotEmpty,max=50"`
		Details        string           `json:"details" binding:"required,strNotEmpty"`
		Incident       *incidentRequest `json:"incident"`
	}
	var body Request

	user, err := wc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.WorkEnd.Before(body.WorkStart) {
		util.ResponseFailed(ctx, http.StatusBadRequest, msgWorkEndBeforeStart, nil, nil)
		return
	}

	workLog := &model.WorkLog{
		UserID:         user.UserID,
		ProjectID:      body.ProjectID,
		ContactID:      body.ContactID,
		WorkStart:      body.WorkStart,
		WorkEnd:        body.WorkEnd,
		WorkType:       body.WorkType,
		SupprtType:     body.SupprtType,
		ServiceType:    body.ServiceType,
		ProductType:    body.ProductType,
		ProductVersion: body.ProductVersion,
		Details:        body.Details,
		Status:         constant.WorkStatusRegistered,
	}

	var incident *repository.IncidentData
	if body.Incident != nil {
		incident = body.Incident.toData()
	}

	created, err := wc.app.Repository.WorkLog.Create(ctx, nil, workLog, incident)
	if err != nil {
		wc.responseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, util.BuildResponseSuccess(gin.H{"workLog": created}))
}

func (wc WorkLogController) GetAll(ctx *gin.Context) {
	type Request struct {
		UserID      uint   `form:"user_id"`
		ProjectID   uint   `form:"project_id"`
		WorkType    string `form:"work_type"`
		Status      string `form:"status"`
		ProductType string `form:"product_type"`
		Keyword     string `form:"keyword"`
		StartDate   string `form:"start_date"`
		EndDate     string `form:"end_date"`
		Page        uint   `form:"page,default=1"`
		Limit       uint   `form:"limit,default=20" binding:"cmax=100"`
	}
	var query Request

	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	dateRange, err := util.ParseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid date range", util.GenerateErrorMessages(err), nil)
		return
	}

	logs, total, err := wc.app.Repository.WorkLog.FindAll(ctx, nil, repository.WorkLogFilter{
		UserID:      query.UserID,
		ProjectID:   query.ProjectID,
		WorkType:    query.WorkType,
		Status:      constant.WorkStatus(query.Status),
		ProductType: query.ProductType,
		Keyword:     query.Keyword,
		Range:       dateRange,
		Page:        query.Page,
		Limit:       query.Limit,
	})
	if err != nil {
		wc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"workLogs":  logs,
		"total":     total,
		"page":      query.Page,
		"totalPage": util.CalculateTotalPage(total, query.Limit),
	})
}

func (wc WorkLogController) GetByID(ctx *gin.Context) {
	logID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	workLog, err := wc.app.Repository.WorkLog.FindByID(ctx, nil, logID)
	if err != nil {
		wc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"workLog": workLog})
}

func (wc WorkLogController) Update(ctx *gin.Context) {
	type Request struct {
		ProjectID      *uint            `json:"project_id"`
		ContactID      *uint            `json:"contact_id"`
		WorkStart      *time.Time       `json:"work_start"`
		WorkEnd        *time.Time       `json:"work_end"`
		WorkType       *string          `json:"work_type" binding:"omitempty,strNotEmpty,max=50"`
		SupprtType     *string          `json:"supprt_type" binding:"omitempty,strNotEmpty,max=50"`
		ServiceType    *string          `json:"service_type" binding:"omitempty,strNotEmpty,max=50"`
		ProductType    *string          `json:"product_type" binding:"omitempty,strNotEmpty,max=50"`
		ProductVersion *string          `json:"product_version" binding:"omitempty,strNotEmpty,max=50"`
		Details        *string          `json:"details" binding:"omitempty,strNotEmpty"`
		Incident       *incidentRequest `json:"incident"`
	}
	var body Request

	user, err := wc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	logID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	existing, err := wc.app.Repository.WorkLog.FindByID(ctx, nil, logID)
	if err != nil {
		wc.responseError(ctx, err)
		return
	}

	if existing.UserID != user.UserID && !util.IsManagerial(user.Role) {
		util.ResponseFailed(ctx, http.StatusForbidden, msgNoPermission, nil, nil)
		return
	}

	// The effective interval after the partial update must stay ordered.
	start := existing.WorkStart
	if body.WorkStart != nil {
		start = *body.WorkStart
	}
	end := existing.WorkEnd
	if body.WorkEnd != nil {
		end = *body.WorkEnd
	}
	if end.Before(start) {
		util.ResponseFailed(ctx, http.StatusBadRequest, msgWorkEndBeforeStart, nil, nil)
		return
	}

	var incident *repository.IncidentData
	if body.Incident != nil {
		incident = body.Incident.toData()
	}

	updated, err := wc.app.Repository.WorkLog.Update(ctx, nil, logID, repository.WorkLogUpdate{
		ProjectID:      body.ProjectID,
		ContactID:      body.ContactID,
		WorkStart:      body.WorkStart,
		WorkEnd:        body.WorkEnd,
		WorkType:       body.WorkType,
		SupprtType:     body.SupprtType,
		ServiceType:    body.ServiceType,
		ProductType:    body.ProductType,
		ProductVersion: body.ProductVersion,
		Details:        body.Details,
	}, incident)
	if err != nil {
		wc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"workLog": updated})
}

func (wc WorkLogController) ChangeStatus(ctx *gin.Context) {
	type Request struct {
		Status string `json:"status" binding:"required,strNotEmpty"`
	}
	var body Request

	logID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	newStatus := constant.WorkStatus(body.Status)
	if !newStatus.Valid() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "유효하지 않은 상태값입니다.", nil, nil)
		return
	}

	updated, err := wc.app.Repository.WorkLog.ChangeStatus(ctx, nil, logID, newStatus)
	if err != nil {
		wc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"workLog": updated})
}

func (wc WorkLogController) Delete(ctx *gin.Context) {
	user, err := wc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	logID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	existing, err := wc.app.Repository.WorkLog.FindByID(ctx, nil, logID)
	if err != nil {
		wc.responseError(ctx, err)
		return
	}

	if existing.UserID != user.UserID && !util.IsManagerial(user.Role) {
		util.ResponseFailed(ctx, http.StatusForbidden, msgNoPermission, nil, nil)
		return
	}

	if err := wc.app.Repository.WorkLog.Delete(ctx, nil, logID); err != nil {
		wc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
