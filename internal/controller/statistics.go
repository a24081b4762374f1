package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/util"
	"github.com/suritel/worklog-api/pkg/report"
)

type StatisticsController struct {
	*baseController
}

func (sc StatisticsController) parseRange(ctx *gin.Context) (util.DateRange, bool) {
	dateRange, err := util.ParseDateRange(ctx.Query("start_date"), ctx.Query("end_date"))
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid date range", util.GenerateErrorMessages(err), nil)
		return util.DateRange{}, false
	}
	return dateRange, true
}

func (sc StatisticsController) GetStatistics(ctx *gin.Context) {
	dateRange, ok := sc.parseRange(ctx)
	if !ok {
		return
	}

	stats, err := sc.app.Repository.Statistics.GetStatistics(ctx, dateRange)
	if err != nil {
		sc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, stats)
}

func (sc StatisticsController) GetDetailedStatistics(ctx *gin.Context) {
	dateRange, ok := sc.parseRange(ctx)
	if !ok {
		return
	}

	stats, err := sc.app.Repository.Statistics.GetDetailedStatistics(ctx, dateRange)
	if err != nil {
		sc.responseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, stats)
}

// ExportDetailedStatistics streams the detailed report as an xlsx workbook.
func (sc StatisticsController) ExportDetailedStatistics(ctx *gin.Context) {
	dateRange, ok := sc.parseRange(ctx)
	if !ok {
		return
	}

	stats, err := sc.app.Repository.Statistics.GetDetailedStatistics(ctx, dateRange)
	if err != nil {
		sc.responseError(ctx, err)
		return
	}

	buf, err := report.RenderDetailedStatistics(stats)
	if err != nil {
		sc.app.Logger.Errorf("Failed to render statistics workbook: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "통계 보고서 생성에 실패했습니다.", nil, nil)
		return
	}

	fileName := report.SummaryFileName(time.Now().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
