package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{"service": "worklog-api"})
}
