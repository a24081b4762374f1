package util

import (
	"slices"

	"github.com/suritel/worklog-api/internal/constant"
)

// statusTransitions is the approval state machine for work logs. A rejected
// review goes back to 등록; 승인완료 is terminal.
var statusTransitions = map[constant.WorkStatus][]constant.WorkStatus{
	constant.WorkStatusRegistered:      {constant.WorkStatusManagerReviewed},
	constant.WorkStatusManagerReviewed: {constant.WorkStatusApproved, constant.WorkStatusRegistered},
	constant.WorkStatusApproved:        {},
}

func AllowedNextStatuses(current constant.WorkStatus) []constant.WorkStatus {
	return statusTransitions[current]
}

func CanChangeStatus(current, next constant.WorkStatus) bool {
	return slices.Contains(statusTransitions[current], next)
}

var incidentWorkTypes = []string{
	constant.WorkTypeIncidentSupport,
	constant.WorkTypeIncidentHandling,
	constant.WorkTypeIncidentResponse,
}

// IsIncidentWorkType reports whether a work log of this type must carry an
// incident record.
func IsIncidentWorkType(workType string) bool {
	return slices.Contains(incidentWorkTypes, workType)
}
