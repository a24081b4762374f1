package repository

import (
	"context"

	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/model"
	"github.com/suritel/worklog-api/internal/util"
	"gorm.io/gorm"
)

// StatisticsRepository computes the read-side reports. Every method is
// read-only; the queries composing one report run outside a shared
// transaction, so a concurrent write may land between them. Acceptable for
// reporting.
type StatisticsRepository struct {
	*baseRepository
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type WorkTypeCount struct {
	WorkType string `json:"work_type"`
	Count    int64  `json:"count"`
}

type UserCount struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Count  int64  `json:"count"`
}

type Statistics struct {
	TotalCount int64           `json:"totalCount"`
	ByStatus   []StatusCount   `json:"byStatus"`
	ByWorkType []WorkTypeCount `json:"byWorkType"`
	ByUser     []UserCount     `json:"byUser"`
}

// GetStatistics returns the dashboard counts over the inclusive date range.
func (sr StatisticsRepository) GetStatistics(ctx context.Context, dateRange util.DateRange) (*Statistics, error) {
	sr.logger.Debugf("Get statistics for range: %+v", dateRange)

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	base := func() *gorm.DB {
		return applyDateRange(sr.db.WithContext(ctx).Model(&model.WorkLog{}), dateRange)
	}

	var stats Statistics
	if err := base().Count(&stats.TotalCount).Error; err != nil {
		return nil, err
	}

	if err := base().
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&stats.ByStatus).Error; err != nil {
		return nil, err
	}
	if stats.ByStatus == nil {
		stats.ByStatus = []StatusCount{}
	}

	if err := base().
		Select("work_type, COUNT(*) AS count").
		Group("work_type").
		Scan(&stats.ByWorkType).Error; err != nil {
		return nil, err
	}
	if stats.ByWorkType == nil {
		stats.ByWorkType = []WorkTypeCount{}
	}

	if err := applyDateRange(sr.db.WithContext(ctx).Model(&model.WorkLog{}).
		Select("work_log.user_id, users.name, COUNT(*) AS count").
		Joins("JOIN users ON work_log.user_id = users.user_id"), dateRange).
		Group("work_log.user_id, users.name").
		Scan(&stats.ByUser).Error; err != nil {
		return nil, err
	}
	if stats.ByUser == nil {
		stats.ByUser = []UserCount{}
	}

	return &stats, nil
}

type Overview struct {
	Total            int64 `json:"total"`
	StatusRegistered int64 `json:"status_registered"`
	StatusChecked    int64 `json:"status_checked"`
	StatusApproved   int64 `json:"status_approved"`
	TypeRegular      int64 `json:"type_regular"`
	TypeIncident     int64 `json:"type_incident"`
	TypeTech         int64 `json:"type_tech"`
	TypeTraining     int64 `json:"type_training"`
	TypeEtc          int64 `json:"type_etc"`
}

type EngineerStats struct {
	UserID          uint    `json:"user_id"`
	UserName        string  `json:"user_name"`
	Position        string  `json:"position"`
	DeptName        string  `json:"dept_name"`
	Total           int64   `json:"total"`
	RegularCheck    int64   `json:"regular_check"`
	IncidentSupport int64   `json:"incident_support"`
	TechSupport     int64   `json:"tech_support"`
	Training        int64   `json:"training"`
	EtcWork         int64   `json:"etc_work"`
	TotalHours      float64 `json:"total_hours"`
}

type DepartmentStats struct {
	DeptID          uint    `json:"dept_id"`
	DeptName        string  `json:"dept_name"`
	Total           int64   `json:"total"`
	EngineerCount   int64   `json:"engineer_count"`
	RegularCheck    int64   `json:"regular_check"`
	IncidentSupport int64   `json:"incident_support"`
	TechSupport     int64   `json:"tech_support"`
	Training        int64   `json:"training"`
	EtcWork         int64   `json:"etc_work"`
	TotalHours      float64 `json:"total_hours"`
}

type ClientStats struct {
	ClientID        uint    `json:"client_id"`
	ClientName      string  `json:"client_name"`
	Total           int64   `json:"total"`
	RegularCheck    int64   `json:"regular_check"`
	IncidentSupport int64   `json:"incident_support"`
	TechSupport     int64   `json:"tech_support"`
	Training        int64   `json:"training"`
	EtcWork         int64   `json:"etc_work"`
	TotalHours      float64 `json:"total_hours"`
}

type IncidentStat struct {
	Severity        string `json:"severity"`
	CauseType       string `json:"cause_type"`
	Count           int64  `json:"count"`
	RecurrenceCount int64  `json:"recurrence_count"`
}

type ClientIncidents struct {
	ClientID   uint           `json:"client_id"`
	ClientName string         `json:"client_name"`
	Incidents  []IncidentStat `json:"incidents"`
}

type MonthlyTrend struct {
	Month           string `json:"month"`
	Total           int64  `json:"total"`
	RegularCheck    int64  `json:"regular_check"`
	IncidentSupport int64  `json:"incident_support"`
	TechSupport     int64  `json:"tech_support"`
}

type DetailedStatistics struct {
	Overview        Overview          `json:"overview"`
	ByEngineer      []EngineerStats   `json:"byEngineer"`
	ByDepartment    []DepartmentStats `json:"byDepartment"`
	ByClient        []ClientStats     `json:"byClient"`
	ClientIncidents []ClientIncidents `json:"clientIncidents"`
	MonthlyTrend    []MonthlyTrend    `json:"monthlyTrend"`
}

// bucketCases is the shared CASE expression set for the five work-type
// buckets. The three incident types collapse into incident_support; anything
// not named lands in etc_work.
const bucketCases = `
		SUM(CASE WHEN w.work_type = '정기점검' THEN 1 ELSE 0 END) AS regular_check,
		SUM(CASE WHEN w.work_type IN ('장애지원','장애처리','장애대응') THEN 1 ELSE 0 END) AS incident_support,
		SUM(CASE WHEN w.work_type = '기술지원' THEN 1 ELSE 0 END) AS tech_support,
		SUM(CASE WHEN w.work_type = '교육' THEN 1 ELSE 0 END) AS training,
		SUM(CASE WHEN w.work_type = '기타' THEN 1 ELSE 0 END) AS etc_work`

// totalHoursExpr sums whole worked minutes and converts to hours rounded to
// one decimal.
const totalHoursExpr = `
		COALESCE(ROUND((SUM(FLOOR(EXTRACT(EPOCH FROM (w.work_end - w.work_start)) / 60)) / 60)::numeric, 1), 0) AS total_hours`

// dateCondition renders the inclusive work_start filter as a SQL fragment
// with its positional arguments, for the raw aggregate queries.
func dateCondition(dr util.DateRange) (string, []any) {
	switch {
	case dr.Start != nil && dr.End != nil:
		return " AND w.work_start BETWEEN ? AND ?", []any{*dr.Start, *dr.End}
	case dr.Start != nil:
		return " AND w.work_start >= ?", []any{*dr.Start}
	case dr.End != nil:
		return " AND w.work_start <= ?", []any{*dr.End}
	default:
		return "", nil
	}
}

// GetDetailedStatistics builds the full reporting bundle. The monthly trend
// is always the trailing six months from now, regardless of the supplied
// range.
func (sr StatisticsRepository) GetDetailedStatistics(ctx context.Context, dateRange util.DateRange) (*DetailedStatistics, error) {
	sr.logger.Debugf("Get detailed statistics for range: %+v", dateRange)

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	cond, args := dateCondition(dateRange)
	result := DetailedStatistics{
		ByEngineer:      []EngineerStats{},
		ByDepartment:    []DepartmentStats{},
		ByClient:        []ClientStats{},
		ClientIncidents: []ClientIncidents{},
		MonthlyTrend:    []MonthlyTrend{},
	}

	overviewQuery := `
	SELECT
		COUNT(*) AS total,
		SUM(CASE WHEN w.status = '등록' THEN 1 ELSE 0 END) AS status_registered,
		SUM(CASE WHEN w.status = '관리자확인' THEN 1 ELSE 0 END) AS status_checked,
		SUM(CASE WHEN w.status = '승인완료' THEN 1 ELSE 0 END) AS status_approved,
		SUM(CASE WHEN w.work_type = '정기점검' THEN 1 ELSE 0 END) AS type_regular,
		SUM(CASE WHEN w.work_type IN ('장애지원','장애처리','장애대응') THEN 1 ELSE 0 END) AS type_incident,
		SUM(CASE WHEN w.work_type = '기술지원' THEN 1 ELSE 0 END) AS type_tech,
		SUM(CASE WHEN w.work_type = '교육' THEN 1 ELSE 0 END) AS type_training,
		SUM(CASE WHEN w.work_type = '기타' THEN 1 ELSE 0 END) AS type_etc
	FROM work_log w
	WHERE 1=1` + cond
	if err := sr.db.WithContext(ctx).Raw(overviewQuery, args...).Scan(&result.Overview).Error; err != nil {
		return nil, err
	}

	engineerQuery := `
	SELECT
		u.user_id, u.name AS user_name, u.position,
		d.dept_name,
		COUNT(*) AS total,` + bucketCases + `,` + totalHoursExpr + `
	FROM work_log w
	JOIN users u ON w.user_id = u.user_id
	LEFT JOIN departments d ON u.dept_id = d.dept_id
	WHERE 1=1` + cond + `
	GROUP BY u.user_id, u.name, u.position, d.dept_name
	ORDER BY total DESC`
	if err := sr.db.WithContext(ctx).Raw(engineerQuery, args...).Scan(&result.ByEngineer).Error; err != nil {
		return nil, err
	}

	departmentQuery := `
	SELECT
		d.dept_id, d.dept_name,
		COUNT(*) AS total,
		COUNT(DISTINCT w.user_id) AS engineer_count,` + bucketCases + `,` + totalHoursExpr + `
	FROM work_log w
	JOIN users u ON w.user_id = u.user_id
	JOIN departments d ON u.dept_id = d.dept_id
	WHERE 1=1` + cond + `
	GROUP BY d.dept_id, d.dept_name
	ORDER BY total DESC`
	if err := sr.db.WithContext(ctx).Raw(departmentQuery, args...).Scan(&result.ByDepartment).Error; err != nil {
		return nil, err
	}

	clientQuery := `
	SELECT
		c.client_id, c.client_name,
		COUNT(*) AS total,` + bucketCases + `,` + totalHoursExpr + `
	FROM work_log w
	JOIN projects p ON w.project_id = p.project_id
	JOIN client c ON p.client_id = c.client_id
	WHERE 1=1` + cond + `
	GROUP BY c.client_id, c.client_name
	ORDER BY total DESC`
	if err := sr.db.WithContext(ctx).Raw(clientQuery, args...).Scan(&result.ByClient).Error; err != nil {
		return nil, err
	}

	type clientIncidentRow struct {
		ClientID        uint
		ClientName      string
		Severity        string
		CauseType       string
		Cnt             int64
		RecurrenceCount int64
	}
	clientIncidentQuery := `
	SELECT
		c.client_id, c.client_name,
		i.severity, i.cause_type,
		COUNT(*) AS cnt,
		SUM(CASE WHEN i.is_recurrence = 'Y' THEN 1 ELSE 0 END) AS recurrence_count
	FROM incidents i
	JOIN work_log w ON i.log_id = w.log_id
	JOIN projects p ON w.project_id = p.project_id
	JOIN client c ON p.client_id = c.client_id
	WHERE 1=1` + cond + `
	GROUP BY c.client_id, c.client_name, i.severity, i.cause_type
	ORDER BY c.client_name, cnt DESC`
	var incidentRows []clientIncidentRow
	if err := sr.db.WithContext(ctx).Raw(clientIncidentQuery, args...).Scan(&incidentRows).Error; err != nil {
		return nil, err
	}

	// Regroup the flat rows per client; row order already sorts incidents by
	// count descending within each client.
	indexByClient := map[uint]int{}
	for _, row := range incidentRows {
		idx, ok := indexByClient[row.ClientID]
		if !ok {
			result.ClientIncidents = append(result.ClientIncidents, ClientIncidents{
				ClientID:   row.ClientID,
				ClientName: row.ClientName,
				Incidents:  []IncidentStat{},
			})
			idx = len(result.ClientIncidents) - 1
			indexByClient[row.ClientID] = idx
		}
		result.ClientIncidents[idx].Incidents = append(result.ClientIncidents[idx].Incidents, IncidentStat{
			Severity:        row.Severity,
			CauseType:       row.CauseType,
			Count:           row.Cnt,
			RecurrenceCount: row.RecurrenceCount,
		})
	}

	monthlyTrendQuery := `
	SELECT
		to_char(w.work_start, 'YYYY-MM') AS month,
		COUNT(*) AS total,
		SUM(CASE WHEN w.work_type = '정기점검' THEN 1 ELSE 0 END) AS regular_check,
		SUM(CASE WHEN w.work_type IN ('장애지원','장애처리','장애대응') THEN 1 ELSE 0 END) AS incident_support,
		SUM(CASE WHEN w.work_type = '기술지원' THEN 1 ELSE 0 END) AS tech_support
	FROM work_log w
	WHERE w.work_start >= NOW() - INTERVAL '6 months'
	GROUP BY to_char(w.work_start, 'YYYY-MM')
	ORDER BY month ASC`
	if err := sr.db.WithContext(ctx).Raw(monthlyTrendQuery).Scan(&result.MonthlyTrend).Error; err != nil {
		return nil, err
	}

	return &result, nil
}
