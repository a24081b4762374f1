package util

import (
	"testing"

	"github.com/suritel/worklog-api/internal/constant"
)

func TestCanChangeStatus(t *testing.T) {
	tests := []struct {
		name    string
		current constant.WorkStatus
		next    constant.WorkStatus
		want    bool
	}{
		{"registered to reviewed", constant.WorkStatusRegistered, constant.WorkStatusManagerReviewed, true},
		{"registered directly to approved", constant.WorkStatusRegistered, constant.WorkStatusApproved, false},
		{"registered to itself", constant.WorkStatusRegistered, constant.WorkStatusRegistered, false},
		{"reviewed to approved", constant.WorkStatusManagerReviewed, constant.WorkStatusApproved, true},
		{"reviewed rejected back to registered", constant.WorkStatusManagerReviewed, constant.WorkStatusRegistered, true},
		{"reviewed to itself", constant.WorkStatusManagerReviewed, constant.WorkStatusManagerReviewed, false},
		{"approved is terminal, to registered", constant.WorkStatusApproved, constant.WorkStatusRegistered, false},
		{"approved is terminal, to reviewed", constant.WorkStatusApproved, constant.WorkStatusManagerReviewed, false},
		{"approved to itself", constant.WorkStatusApproved, constant.WorkStatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanChangeStatus(tt.current, tt.next); got != tt.want {
				t.Errorf("CanChangeStatus(%s, %s) = %v, want %v", tt.current, tt.next, got, tt.want)
			}
		})
	}
}

func TestAllowedNextStatuses(t *testing.T) {
	if got := AllowedNextStatuses(constant.WorkStatusApproved); len(got) != 0 {
		t.Errorf("approved should have no allowed transitions, got %v", got)
	}
	if got := AllowedNextStatuses(constant.WorkStatusManagerReviewed); len(got) != 2 {
		t.Errorf("reviewed should allow two transitions, got %v", got)
	}
}

func TestIsIncidentWorkType(t *testing.T) {
	for _, wt := range []string{"장애지원", "장애처리", "장애대응"} {
		if !IsIncidentWorkType(wt) {
			t.Errorf("%s should be an incident work type", wt)
		}
	}
	for _, wt := range []string{"정기점검", "기술지원", "교육", "기타", ""} {
		if IsIncidentWorkType(wt) {
			t.Errorf("%s should not be an incident work type", wt)
		}
	}
}

