package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/auth"
	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/util"
)

type AuthController struct {
	*baseController
}

const (
	msgInvalidCredentials = "이메일 또는 비밀번호가 올바르지 않습니다."
	msgInvalidRefresh     = "리프레시 토큰이 만료되었거나 유효하지 않습니다."
)

func (ac AuthController) Login(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,strNotEmpty"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		ac.app.Logger.Debugf("Login binding failed: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.GetByEmail(ctx, nil, body.Email)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, msgInvalidCredentials, nil, nil)
		return
	}

	if !user.IsActive {
		util.ResponseFailed(ctx, http.StatusForbidden, "비활성화된 계정입니다. 관리자에게 문의하세요.", nil, nil)
		return
	}

	if !util.ComparePassword(user.Password, body.Password) {
		util.ResponseFailed(ctx, http.StatusUnauthorized, msgInvalidCredentials, nil, nil)
		return
	}

	refreshToken, accessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	})
	if err != nil {
		ac.app.Logger.Errorf("Failed to generate tokens: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

func (ac AuthController) RefreshAccessToken(ctx *gin.Context) {
	type Request struct {
		RefreshToken string `json:"refresh_token" binding:"required,strNotEmpty"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(body.RefreshToken)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, msgInvalidRefresh, util.GenerateErrorMessages(err), nil)
		return
	}

	if jwtClaims.Type != constant.JWT_TYPE_REFRESH {
		util.ResponseFailed(ctx, http.StatusUnauthorized, msgInvalidRefresh, util.GenerateErrorMessages(errors.New("invalid jwt token type")), nil)
		return
	}

	// Re-read the user so a deactivated account cannot keep refreshing.
	user, err := ac.app.Repository.User.GetByID(ctx, nil, jwtClaims.User.UserID)
	if err != nil || !user.IsActive {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "유효하지 않은 리프레시 토큰입니다.", nil, nil)
		return
	}

	newRefreshToken, newAccessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	})
	if err != nil {
		ac.app.Logger.Errorf("Failed to refresh tokens: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"accessToken":  newAccessToken,
		"refreshToken": newRefreshToken,
	})
}

func (ac AuthController) Me(ctx *gin.Context) {
	authUser, err := ac.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.GetByID(ctx, nil, authUser.UserID)
	if err != nil {
		ac.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"user": user})
}
