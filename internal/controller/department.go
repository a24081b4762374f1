package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/model"
	"github.com/suritel/worklog-api/internal/util"
)

type DepartmentController struct {
	*baseController
}

func (dc DepartmentController) GetAll(ctx *gin.Context) {
	departments, err := dc.app.Repository.Department.FindAll(ctx, nil)
	if err != nil {
		dc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"departments": departments})
}

func (dc DepartmentController) Create(ctx *gin.Context) {
	var body model.Department

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	dept, err := dc.app.Repository.Department.Create(ctx, nil, &model.Department{DeptName: body.DeptName})
	if err != nil {
		dc.responseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, util.BuildResponseSuccess(gin.H{"department": dept}))
}

func (dc DepartmentController) Update(ctx *gin.Context) {
	var body model.Department

	deptID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	dept, err := dc.app.Repository.Department.Update(ctx, nil, deptID, body.DeptName)
	if err != nil {
		dc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"department": dept})
}

func (dc DepartmentController) Delete(ctx *gin.Context) {
	deptID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := dc.app.Repository.Department.Delete(ctx, nil, deptID); err != nil {
		dc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
