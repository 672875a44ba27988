// Package report builds read-only views over proposals and cycles for
// coordinators and admins. It owns no storage; everything is derived from
// the domain services on each call.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/cycle"
	"github.com/acadfund/acadfund/internal/department"
	"github.com/acadfund/acadfund/internal/fault"
	"github.com/acadfund/acadfund/internal/proposal"
)

type ProposalDirectory interface {
	List(ctx context.Context, caller actor.Actor, filter proposal.ListFilter) ([]*proposal.Proposal, error)
}

type CycleDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*cycle.Cycle, error)
	List(ctx context.Context, filter cycle.ListFilter) ([]*cycle.Cycle, error)
}

type DepartmentDirectory interface {
	List(ctx context.Context) ([]*department.Department, error)
}

type Service struct {
	proposals   ProposalDirectory
	cycles      CycleDirectory
	departments DepartmentDirectory
}

func NewService(proposals ProposalDirectory, cycles CycleDirectory, departments DepartmentDirectory) *Service {
	return &Service{proposals: proposals, cycles: cycles, departments: departments}
}

// Proposals returns the filtered proposal report, visibility-scoped to the
// caller like every other proposal read.
func (s *Service) Proposals(ctx context.Context, caller actor.Actor, filter proposal.ListFilter) ([]*proposal.Proposal, error) {
	return s.proposals.List(ctx, caller, filter)
}

type CategoryStats struct {
	Requested int64
	Approved  int64
	Count     int
}

type CycleStats struct {
	CycleName       string
	AcademicYear    string
	AllocatedBudget int64
	SpentBudget     int64

	TotalProposals int
	ApprovedCount  int
	RejectedCount  int
	SubmittedCount int
	DraftCount     int

	TotalRequested int64
	TotalApproved  int64

	ApprovalRate    float64
	UtilizationRate float64

	ByPriority map[proposal.Priority]int
	ByCategory map[string]CategoryStats
}

func (s *Service) CycleStats(ctx context.Context, caller actor.Actor, cycleID uuid.UUID) (*CycleStats, error) {
	c, err := s.cycles.Get(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	proposals, err := s.proposals.List(ctx, caller, proposal.ListFilter{CycleID: &cycleID})
	if err != nil {
		return nil, fmt.Errorf("listing cycle proposals: %w", err)
	}

	stats := &CycleStats{
		CycleName:       c.Name,
		AcademicYear:    c.AcademicYear,
		AllocatedBudget: c.AllocatedBudget,
		SpentBudget:     c.SpentBudget,
		TotalProposals:  len(proposals),
		ByPriority:      make(map[proposal.Priority]int),
		ByCategory:      make(map[string]CategoryStats),
	}

	for _, p := range proposals {
		switch p.Status {
		case proposal.StatusApproved:
			stats.ApprovedCount++
			stats.TotalApproved += p.TotalAmount
		case proposal.StatusRejected:
			stats.RejectedCount++
		case proposal.StatusSubmitted:
			stats.SubmittedCount++
		case proposal.StatusDraft:
			stats.DraftCount++
		}

		stats.TotalRequested += p.TotalAmount
		stats.ByPriority[p.Priority]++

		for _, item := range p.Items {
			category := "other"
			if item.Keyword != nil && item.Keyword.Category != "" {
				category = item.Keyword.Category
			}

			cs := stats.ByCategory[category]
			cs.Requested += item.TotalCost
			cs.Count++

			if p.Status == proposal.StatusApproved {
				cs.Approved += item.TotalCost
			}

			stats.ByCategory[category] = cs
		}
	}

	if stats.TotalProposals > 0 {
		stats.ApprovalRate = float64(stats.ApprovedCount) / float64(stats.TotalProposals) * 100
	}

	if c.AllocatedBudget > 0 {
		stats.UtilizationRate = float64(stats.TotalApproved) / float64(c.AllocatedBudget) * 100
	}

	return stats, nil
}

type DepartmentStats struct {
	DepartmentID   uuid.UUID
	Name           string
	Code           string
	TotalProposals int
	ApprovedCount  int
	RejectedCount  int
	TotalRequested int64
	TotalApproved  int64
}

type InstitutionalStats struct {
	Year           string
	CycleCount     int
	TotalAllocated int64
	TotalSpent     int64
	TotalProposals int
	TotalApproved  int64
	Departments    []DepartmentStats
}

// InstitutionalStats aggregates every cycle whose academic year starts with
// the given year, broken down by department. Admin only.
func (s *Service) InstitutionalStats(ctx context.Context, caller actor.Actor, year string) (*InstitutionalStats, error) {
	if !caller.IsAdmin() {
		return nil, fault.Authorizationf("only admins can view institutional stats")
	}

	if year == "" {
		return nil, fault.Validationf("year is required")
	}

	cycles, err := s.cycles.List(ctx, cycle.ListFilter{AcademicYearPrefix: &year})
	if err != nil {
		return nil, fmt.Errorf("listing cycles: %w", err)
	}

	stats := &InstitutionalStats{
		Year:       year,
		CycleCount: len(cycles),
	}

	var allProposals []*proposal.Proposal

	for _, c := range cycles {
		stats.TotalAllocated += c.AllocatedBudget
		stats.TotalSpent += c.SpentBudget

		proposals, err := s.proposals.List(ctx, caller, proposal.ListFilter{CycleID: &c.ID})
		if err != nil {
			return nil, fmt.Errorf("listing proposals for cycle %s: %w", c.ID, err)
		}

		allProposals = append(allProposals, proposals...)
	}

	stats.TotalProposals = len(allProposals)

	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing departments: %w", err)
	}

	for _, d := range departments {
		ds := DepartmentStats{DepartmentID: d.ID, Name: d.Name, Code: d.Code}

		for _, p := range allProposals {
			if p.DepartmentID != d.ID {
				continue
			}

			ds.TotalProposals++
			ds.TotalRequested += p.TotalAmount

			switch p.Status {
			case proposal.StatusApproved:
				ds.ApprovedCount++
				ds.TotalApproved += p.TotalAmount
			case proposal.StatusRejected:
				ds.RejectedCount++
			}
		}

		stats.TotalApproved += ds.TotalApproved
		stats.Departments = append(stats.Departments, ds)
	}

	return stats, nil
}
