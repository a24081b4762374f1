package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/mailer"
	"github.com/suritel/worklog-api/internal/model"
	"github.com/suritel/worklog-api/internal/repository"
	"github.com/suritel/worklog-api/internal/util"
)

type UserController struct {
	*baseController
}

func (uc UserController) GetAll(ctx *gin.Context) {
	type Request struct {
		DeptID   uint   `form:"dept_id"`
		Role     string `form:"role"`
		IsActive *bool  `form:"is_active"`
		Page     uint   `form:"page,default=1"`
		Limit    uint   `form:"limit,default=20" binding:"cmax=100"`
	}
	var query Request

	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	users, total, err := uc.app.Repository.User.FindAll(ctx, nil, repository.UserFilter{
		DeptID:   query.DeptID,
		Role:     constant.UserRole(query.Role),
		IsActive: query.IsActive,
		Page:     query.Page,
		Limit:    query.Limit,
	})
	if err != nil {
		uc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"users":     users,
		"total":     total,
		"page":      query.Page,
		"totalPage": util.CalculateTotalPage(total, query.Limit),
	})
}

func (uc UserController) GetByID(ctx *gin.Context) {
	userID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := uc.app.Repository.User.GetByID(ctx, nil, userID)
	if err != nil {
		uc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"user": user})
}

func (uc UserController) Create(ctx *gin.Context) {
	type Request struct {
		DeptID   uint   `json:"dept_id" binding:"required"`
		Email    string `json:"email" binding:"required,email,max=50"`
		Name     string `json:"name" binding:"required,strNotEmpty,max=50"`
		Position string `json:"position" binding:"required,strNotEmpty,max=20"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	role := constant.UserRole(body.Role)
	if !role.Valid() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "유효하지 않은 역할입니다.", nil, nil)
		return
	}

	hashed, err := util.HashPassword(body.Password)
	if err != nil {
		uc.app.Logger.Errorf("Failed to hash password: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", nil, nil)
		return
	}

	user, err := uc.app.Repository.User.Create(ctx, nil, &model.User{
		DeptID:   body.DeptID,
		Email:    body.Email,
		Name:     body.Name,
		Position: body.Position,
		Password: hashed,
		Role:     role,
		IsActive: true,
	})
	if err != nil {
		uc.responseError(ctx, err)
		return
	}

	// Account mail failure must not fail the create.
	go func() {
		vars := struct {
			Name         string
			Email        string
			TempPassword string
		}{
			Name:         user.Name,
			Email:        user.Email,
			TempPassword: body.Password,
		}
		if _, err := uc.app.Mailer.Send(mailer.ACCOUNT_CREATED_TEMPLATE, user.Name, user.Email, vars); err != nil {
			uc.app.Logger.Errorf("Failed to send account created mail to %s: %v", user.Email, err)
		}
	}()

	ctx.JSON(http.StatusCreated, util.BuildResponseSuccess(gin.H{"user": user}))
}

func (uc UserController) Update(ctx *gin.Context) {
	type Request struct {
		DeptID   *uint   `json:"dept_id"`
		Name     *string `json:"name" binding:"omitempty,strNotEmpty,max=50"`
		Position *string `json:"position" binding:"omitempty,strNotEmpty,max=20"`
		Password *string `json:"password" binding:"omitempty,min=8"`
		Role     *string `json:"role"`
	}
	var body Request

	userID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	changes := map[string]any{}
	if body.DeptID != nil {
		changes["dept_id"] = *body.DeptID
	}
	if body.Name != nil {
		changes["name"] = *body.Name
	}
	if body.Position != nil {
		changes["position"] = *body.Position
	}
	if body.Role != nil {
		role := constant.UserRole(*body.Role)
		if !role.Valid() {
			util.ResponseFailed(ctx, http.StatusBadRequest, "유효하지 않은 역할입니다.", nil, nil)
			return
		}
		changes["role"] = role
	}
	if body.Password != nil {
		hashed, err := util.HashPassword(*body.Password)
		if err != nil {
			uc.app.Logger.Errorf("Failed to hash password: %v", err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "", nil, nil)
			return
		}
		changes["password"] = hashed
	}

	user, err := uc.app.Repository.User.Update(ctx, nil, userID, changes)
	if err != nil {
		uc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"user": user})
}

func (uc UserController) Deactivate(ctx *gin.Context) {
	uc.setActive(ctx, false)
}

func (uc UserController) Activate(ctx *gin.Context) {
	uc.setActive(ctx, true)
}

func (uc UserController) setActive(ctx *gin.Context, active bool) {
	userID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := uc.app.Repository.User.SetActive(ctx, nil, userID, active)
	if err != nil {
		uc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"user": user})
}
