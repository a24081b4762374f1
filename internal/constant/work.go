package constant

// Status and incident literals are stored and served verbatim. They double as
// wire values, so they must never be translated or re-cased.

type WorkStatus string

const (
	WorkStatusRegistered      WorkStatus = "등록"
	WorkStatusManagerReviewed WorkStatus = "관리자확인"
	WorkStatusApproved        WorkStatus = "승인완료"
)

func (s WorkStatus) Valid() bool {
	switch s {
	case WorkStatusRegistered, WorkStatusManagerReviewed, WorkStatusApproved:
		return true
	}
	return false
}

// Work types that require an attached incident record.
const (
	WorkTypeIncidentSupport  = "장애지원"
	WorkTypeIncidentHandling = "장애처리"
	WorkTypeIncidentResponse = "장애대응"
)

// Work types recognized as dedicated statistics buckets. Anything not listed
// here (and not an incident type) falls into the "etc" bucket.
const (
	WorkTypeRegularCheck = "정기점검"
	WorkTypeTechSupport  = "기술지원"
	WorkTypeTraining     = "교육"
	WorkTypeEtc          = "기타"
)

type IncidentSeverity string

const (
	IncidentSeverityCritical IncidentSeverity = "Critical"
	IncidentSeverityMajor    IncidentSeverity = "Major"
	IncidentSeverityMinor    IncidentSeverity = "Minor"
)

type IncidentActionType string

const (
	IncidentActionTemporary  IncidentActionType = "임시"
	IncidentActionPermanent  IncidentActionType = "영구"
	IncidentActionGuidance   IncidentActionType = "가이드"
	IncidentActionMonitoring IncidentActionType = "모니터링"
)

const (
	RecurrenceYes = "Y"
	RecurrenceNo  = "N"
)
