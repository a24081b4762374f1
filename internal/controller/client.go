package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/model"
	"github.com/suritel/worklog-api/internal/util"
)

type ClientController struct {
	*baseController
}

func (cc ClientController) GetAll(ctx *gin.Context) {
	type Request struct {
		Page  uint `form:"page,default=1"`
		Limit uint `form:"limit,default=20" binding:"cmax=100"`
	}
	var query Request

	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	clients, total, err := cc.app.Repository.Client.FindAll(ctx, nil, query.Page, query.Limit)
	if err != nil {
		cc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"clients":   clients,
		"total":     total,
		"page":      query.Page,
		"totalPage": util.CalculateTotalPage(total, query.Limit),
	})
}

func (cc ClientController) GetByID(ctx *gin.Context) {
	clientID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	client, err := cc.app.Repository.Client.GetByID(ctx, nil, clientID)
	if err != nil {
		cc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"client": client})
}

func (cc ClientController) Create(ctx *gin.Context) {
	var body model.Client

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	client, err := cc.app.Repository.Client.Create(ctx, nil, &model.Client{ClientName: body.ClientName})
	if err != nil {
		cc.responseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, util.BuildResponseSuccess(gin.H{"client": client}))
}

func (cc ClientController) Update(ctx *gin.Context) {
	var body model.Client

	clientID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	client, err := cc.app.Repository.Client.Update(ctx, nil, clientID, body.ClientName)
	if err != nil {
		cc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"client": client})
}

func (cc ClientController) Delete(ctx *gin.Context) {
	clientID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.app.Repository.Client.SoftDelete(ctx, nil, clientID); err != nil {
		cc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
