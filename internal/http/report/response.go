package report

import (
	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/proposal"
	"github.com/acadfund/acadfund/internal/report"
)

type categoryStatsResponse struct {
	Requested int64 `json:"requested"`
	Approved  int64 `json:"approved"`
	Count     int   `json:"count"`
}

type cycleStatsResponse struct {
	CycleName       string                           `json:"cycle_name"`
	AcademicYear    string                           `json:"academic_year"`
	AllocatedBudget int64                            `json:"allocated_budget"`
	SpentBudget     int64                            `json:"spent_budget"`
	TotalProposals  int                              `json:"total_proposals"`
	ApprovedCount   int                              `json:"approved_count"`
	RejectedCount   int                              `json:"rejected_count"`
	SubmittedCount  int                              `json:"submitted_count"`
	DraftCount      int                              `json:"draft_count"`
	TotalRequested  int64                            `json:"total_requested"`
	TotalApproved   int64                            `json:"total_approved"`
	ApprovalRate    float64                          `json:"approval_rate"`
	UtilizationRate float64                          `json:"utilization_rate"`
	ByPriority      map[proposal.Priority]int        `json:"by_priority"`
	ByCategory      map[string]categoryStatsResponse `json:"by_category"`
}

func toCycleStatsResponse(stats *report.CycleStats) cycleStatsResponse {
	resp := cycleStatsResponse{
		CycleName:       stats.CycleName,
		AcademicYear:    stats.AcademicYear,
		AllocatedBudget: stats.AllocatedBudget,
		SpentBudget:     stats.SpentBudget,
		TotalProposals:  stats.TotalProposals,
		ApprovedCount:   stats.ApprovedCount,
		RejectedCount:   stats.RejectedCount,
		SubmittedCount:  stats.SubmittedCount,
		DraftCount:      stats.DraftCount,
		TotalRequested:  stats.TotalRequested,
		TotalApproved:   stats.TotalApproved,
		ApprovalRate:    stats.ApprovalRate,
		UtilizationRate: stats.UtilizationRate,
		ByPriority:      stats.ByPriority,
		ByCategory:      make(map[string]categoryStatsResponse, len(stats.ByCategory)),
	}

	for category, cs := range stats.ByCategory {
		resp.ByCategory[category] = categoryStatsResponse{
			Requested: cs.Requested,
			Approved:  cs.Approved,
			Count:     cs.Count,
		}
	}

	return resp
}

type departmentStatsResponse struct {
	DepartmentID   uuid.UUID `json:"department_id"`
	Name           string    `json:"name"`
	Code           string    `json:"code"`
	TotalProposals int       `json:"total_proposals"`
	ApprovedCount  int       `json:"approved_count"`
	RejectedCount  int       `json:"rejected_count"`
	TotalRequested int64     `json:"total_requested"`
	TotalApproved  int64     `json:"total_approved"`
}

type institutionalStatsResponse struct {
	Year           string                    `json:"year"`
	CycleCount     int                       `json:"cycle_count"`
	TotalAllocated int64                     `json:"total_allocated"`
	TotalSpent     int64                     `json:"total_spent"`
	TotalProposals int                       `json:"total_proposals"`
	TotalApproved  int64                     `json:"total_approved"`
	Departments    []departmentStatsResponse `json:"departments"`
}

func toInstitutionalStatsResponse(stats *report.InstitutionalStats) institutionalStatsResponse {
	resp := institutionalStatsResponse{
		Year:           stats.Year,
		CycleCount:     stats.CycleCount,
		TotalAllocated: stats.TotalAllocated,
		TotalSpent:     stats.TotalSpent,
		TotalProposals: stats.TotalProposals,
		TotalApproved:  stats.TotalApproved,
		Departments:    make([]departmentStatsResponse, len(stats.Departments)),
	}

	for i, ds := range stats.Departments {
		resp.Departments[i] = departmentStatsResponse{
			DepartmentID:   ds.DepartmentID,
			Name:           ds.Name,
			Code:           ds.Code,
			TotalProposals: ds.TotalProposals,
			ApprovedCount:  ds.ApprovedCount,
			RejectedCount:  ds.RejectedCount,
			TotalRequested: ds.TotalRequested,
			TotalApproved:  ds.TotalApproved,
		}
	}

	return resp
}
