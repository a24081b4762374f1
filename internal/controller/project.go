package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/model"
	"github.com/suritel/worklog-api/internal/repository"
	"github.com/suritel/worklog-api/internal/util"
)

type ProjectController struct {
	*baseController
}

func (pc ProjectController) GetAll(ctx *gin.Context) {
	type Request struct {
		ClientID uint `form:"client_id"`
		DeptID   uint `form:"dept_id"`
		Page     uint `form:"page,default=1"`
		Limit    uint `form:"limit,default=20" binding:"cmax=100"`
	}
	var query Request

	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	projects, total, err := pc.app.Repository.Project.FindAll(ctx, nil, repository.ProjectFilter{
		ClientID: query.ClientID,
		DeptID:   query.DeptID,
		Page:     query.Page,
		Limit:    query.Limit,
	})
	if err != nil {
		pc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"projects":  projects,
		"total":     total,
		"page":      query.Page,
		"totalPage": util.CalculateTotalPage(total, query.Limit),
	})
}

func (pc ProjectController) GetByID(ctx *gin.Context) {
	projectID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := pc.app.Repository.Project.GetByID(ctx, nil, projectID)
	if err != nil {
		pc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"project": project})
}

func (pc ProjectController) Create(ctx *gin.Context) {
	type Request struct {
		ClientID       uint   `json:"client_id" binding:"required"`
		DeptID         uint   `json:"dept_id" binding:"required"`
		ProjectName    string `json:"project_name" binding:"required,strNotEmpty,max=100"`
		ContractPeriod string `json:"contract_period" binding:"required,strNotEmpty,max=100"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := pc.app.Repository.Project.Create(ctx, nil, &model.Project{
		ClientID:       body.ClientID,
		DeptID:         body.DeptID,
		ProjectName:    body.ProjectName,
		ContractPeriod: body.ContractPeriod,
	})
	if err != nil {
		pc.responseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, util.BuildResponseSuccess(gin.H{"project": project}))
}

func (pc ProjectController) Update(ctx *gin.Context) {
	type Request struct {
		ClientID       *uint   `json:"client_id"`
		DeptID         *uint   `json:"dept_id"`
		ProjectName    *string `json:"project_name" binding:"omitempty,strNotEmpty,max=100"`
		ContractPeriod *string `json:"contract_period" binding:"omitempty,strNotEmpty,max=100"`
	}
	var body Request

	projectID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	changes := map[string]any{}
	if body.ClientID != nil {
		changes["client_id"] = *body.ClientID
	}
	if body.DeptID != nil {
		changes["dept_id"] = *body.DeptID
	}
	if body.ProjectName != nil {
		changes["project_name"] = *body.ProjectName
	}
	if body.ContractPeriod != nil {
		changes["contract_period"] = *body.ContractPeriod
	}

	project, err := pc.app.Repository.Project.Update(ctx, nil, projectID, changes)
	if err != nil {
		pc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"project": project})
}

func (pc ProjectController) Delete(ctx *gin.Context) {
	projectID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := pc.app.Repository.Project.SoftDelete(ctx, nil, projectID); err != nil {
		pc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
