package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/model"
	"github.com/suritel/worklog-api/internal/util"
)

type ContactController struct {
	*baseController
}

func (cc ContactController) GetByProject(ctx *gin.Context) {
	projectID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	contacts, err := cc.app.Repository.Contact.FindByProject(ctx, nil, projectID)
	if err != nil {
		cc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"contacts": contacts})
}

func (cc ContactController) Create(ctx *gin.Context) {
	type Request struct {
		ProjectID uint   `json:"project_id" binding:"required"`
		Name      string `json:"name" binding:"required,strNotEmpty,max=50"`
		Email     string `json:"email" binding:"required,email,max=100"`
		Phone     string `json:"phone" binding:"required,strNotEmpty,max=20"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	contact, err := cc.app.Repository.Contact.Create(ctx, nil, &model.ManagerContact{
		ProjectID: body.ProjectID,
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
	})
	if err != nil {
		cc.responseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, util.BuildResponseSuccess(gin.H{"contact": contact}))
}

func (cc ContactController) Update(ctx *gin.Context) {
	type Request struct {
		Name  *string `json:"name" binding:"omitempty,strNotEmpty,max=50"`
		Email *string `json:"email" binding:"omitempty,email,max=100"`
		Phone *string `json:"phone" binding:"omitempty,strNotEmpty,max=20"`
	}
	var body Request

	contactID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	changes := map[string]any{}
	if body.Name != nil {
		changes["name"] = *body.Name
	}
	if body.Email != nil {
		changes["email"] = *body.Email
	}
	if body.Phone != nil {
		changes["phone"] = *body.Phone
	}

	contact, err := cc.app.Repository.Contact.Update(ctx, nil, contactID, changes)
	if err != nil {
		cc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"contact": contact})
}

func (cc ContactController) Delete(ctx *gin.Context) {
	contactID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.app.Repository.Contact.Delete(ctx, nil, contactID); err != nil {
		cc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
