package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/model"
	"github.com/suritel/worklog-api/internal/util"
)

type ProductController struct {
	*baseController
}

func (pc ProductController) GetAll(ctx *gin.Context) {
	products, err := pc.app.Repository.Product.FindAll(ctx, nil, ctx.Query("product_type"))
	if err != nil {
		pc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"products": products})
}

func (pc ProductController) GetGrouped(ctx *gin.Context) {
	grouped, err := pc.app.Repository.Product.FindGroupedByType(ctx, nil)
	if err != nil {
		pc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"products": grouped})
}

func (pc ProductController) GetByID(ctx *gin.Context) {
	productID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	product, err := pc.app.Repository.Product.GetByID(ctx, nil, productID)
	if err != nil {
		pc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"product": product})
}

func (pc ProductController) Create(ctx *gin.Context) {
	type Request struct {
		ProductType string `json:"product_type" binding:"required,strNotEmpty,max=50"`
		ProductName string `json:"product_name" binding:"required,strNotEmpty,max=100"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	product, err := pc.app.Repository.Product.Create(ctx, nil, &model.Product{
		ProductType: body.ProductType,
		ProductName: body.ProductName,
	})
	if err != nil {
		pc.responseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, util.BuildResponseSuccess(gin.H{"product": product}))
}

func (pc ProductController) Update(ctx *gin.Context) {
	type Request struct {
		ProductType *string `json:"product_type" binding:"omitempty,strNotEmpty,max=50"`
		ProductName *string `json:"product_name" binding:"omitempty,strNotEmpty,max=100"`
	}
	var body Request

	productID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	changes := map[string]any{}
	if body.ProductType != nil {
		changes["product_type"] = *body.ProductType
	}
	if body.ProductName != nil {
		changes["product_name"] = *body.ProductName
	}

	product, err := pc.app.Repository.Product.Update(ctx, nil, productID, changes)
	if err != nil {
		pc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"product": product})
}

func (pc ProductController) Delete(ctx *gin.Context) {
	productID, err := paramID(ctx, "id")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := pc.app.Repository.Product.Delete(ctx, nil, productID); err != nil {
		pc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
