package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	appcontext "github.com/suritel/worklog-api/internal/app_context"
	"github.com/suritel/worklog-api/internal/auth"
	"github.com/suritel/worklog-api/internal/repository"
	"github.com/suritel/worklog-api/internal/util"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index      *IndexController
	Auth       *AuthController
	User       *UserController
	Department *DepartmentController
	Client     *ClientController
	Project    *ProjectController
	Contact    *ContactController
	Product    *ProductController
	WorkLog    *WorkLogController
	File       *FileController
	Statistics *StatisticsController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:      &IndexController{baseController: bc},
		Auth:       &AuthController{baseController: bc},
		User:       &UserController{baseController: bc},
		Department: &DepartmentController{baseController: bc},
		Client:     &ClientController{baseController: bc},
		Project:    &ProjectController{baseController: bc},
		Contact:    &ContactController{baseController: bc},
		Product:    &ProductController{baseController: bc},
		WorkLog:    &WorkLogController{baseController: bc},
		File:       &FileController{baseController: bc},
		Statistics: &StatisticsController{baseController: bc},
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}

// responseError maps a repository error onto the HTTP status for its kind.
// Anything that is not an ApplicationError becomes a 500.
func (b *baseController) responseError(ctx *gin.Context, err error) {
	var appErr *repository.ApplicationError
	if !errors.As(err, &appErr) {
		b.app.Logger.Errorf("Unhandled error: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", nil, nil)
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case repository.KindNotFound:
		status = http.StatusNotFound
	case repository.KindValidationFailed:
		status = http.StatusBadRequest
	case repository.KindConflict:
		status = http.StatusConflict
	case repository.KindForbidden:
		status = http.StatusForbidden
	}

	util.ResponseFailed(ctx, status, appErr.Message, nil, nil)
}

// paramID parses a positive numeric :id style path parameter.
func paramID(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return uint(id), nil
}
