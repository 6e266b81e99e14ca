package services

import (
	"fmt"

	"dealership-backend/apperrors"
	"dealership-backend/config"
	"dealership-backend/db/models"
	leads_repositories "dealership-backend/leads/repositories"
	users_repositories "dealership-backend/users/repositories"

	"go.uber.org/zap"
)

// LeadNotifier pushes realtime notifications to connected staff.
// Delivery is best-effort; implementations must never block.
type LeadNotifier interface {
	NotifyAssignment(lead *models.Lead)
	NotifyStatusChange(lead *models.Lead)
}

// Actor identifies who is performing a lifecycle operation. Filled from
// the auth token payload at the HTTP boundary.
type Actor struct {
	ID    string
	Name  string
	Email string
	Role  models.Role
}

// LifecycleService owns every lead status transition. All writes are
// single-document read-modify-write; concurrent edits resolve
// last-write-wins, with the audit log as the record of what happened.
type LifecycleService struct {
	leadRepo leads_repositories.LeadRepository
	userRepo users_repositories.UserRepository
	notifier LeadNotifier
}

func NewLifecycleService(
	leadRepo leads_repositories.LeadRepository,
	userRepo users_repositories.UserRepository,
	notifier LeadNotifier,
) *LifecycleService {
	return &LifecycleService{
		leadRepo: leadRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// CreateLead validates and persists a new lead at C0.
func (s *LifecycleService) CreateLead(lead *models.Lead) (*models.Lead, error) {
	if lead.CustomerName == "" || lead.Phone == "" {
		return nil, fmt.Errorf("customer name and phone are required: %w", apperrors.ErrInvalidInput)
	}
	if lead.ModelName == "" && lead.ProductID == nil {
		return nil, fmt.Errorf("a product reference is required: %w", apperrors.ErrInvalidInput)
	}

	lead.Status = models.StageC0
	return s.leadRepo.CreateLead(lead)
}

// AssignLead resolves the assignee and attaches them to the lead. A
// lead still at C0 (or carrying a stray status) is forced to C1. No
// audit entry is appended here: assignment is visible through the
// assignee fields themselves, and field staff treat the dseUpdates log
// as a conversation trail, not an assignment ledger.
func (s *LifecycleService) AssignLead(leadID, assigneeID string) (*models.Lead, error) {
	lead, err := s.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return nil, err
	}

	assignee, err := s.userRepo.GetUserByID(assigneeID)
	if err != nil {
		return nil, err
	}

	if !assignee.Role.DSECapable() {
		return nil, fmt.Errorf("user %s has role %s, leads can only be assigned to DSE accounts: %w",
			assigneeID, assignee.Role, apperrors.ErrInvalidRole)
	}

	lead.AssigneeID = &assignee.ID
	name := assignee.FullName()
	lead.AssigneeName = &name
	lead.AssigneeEmail = &assignee.Email

	if lead.Status == models.StageC0 || !models.ValidStage(lead.Status) {
		lead.Status = models.StageC1
	}

	updated, err := s.leadRepo.UpdateLead(lead)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyAssignment(updated)
	}
	return updated, nil
}

// ApplyDseUpdate appends a status-change note from the field. Only the
// assigned party (matched by id, email or name) or an elevated role may
// post one. The audit entry is appended even when the status itself
// does not change.
func (s *LifecycleService) ApplyDseUpdate(leadID string, actor Actor, newStatus *models.LeadStage, message string) (*models.Lead, error) {
	lead, err := s.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return nil, err
	}

	if !actor.Role.Elevated() && !lead.IsAssignedTo(actor.ID, actor.Email, actor.Name) {
		return nil, fmt.Errorf("actor %s is neither the assignee nor an elevated role: %w",
			actor.ID, apperrors.ErrForbidden)
	}

	prior := lead.Status
	target := lead.Status
	if newStatus != nil {
		if !models.ValidStage(*newStatus) {
			return nil, fmt.Errorf("status %q is not a valid stage: %w", *newStatus, apperrors.ErrInvalidStatus)
		}
		target = *newStatus
	}

	lead.AppendUpdate(actor.ID, actor.Name, message, target)
	updated, err := s.leadRepo.UpdateLead(lead)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil && target != prior {
		s.notifier.NotifyStatusChange(updated)
	}
	return updated, nil
}

// FinalizeCosting consumes the costing-finalized event. A lead at C2
// moves to C3 with a system-authored audit entry; any other stage is a
// no-op, which makes redelivery and the reconciliation sweep safe.
func (s *LifecycleService) FinalizeCosting(leadID string) error {
	lead, err := s.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return err
	}

	if lead.Status != models.StageC2 {
		config.Logger.Debug("Costing finalized for lead not at C2, nothing to do",
			zap.String("lead_id", leadID),
			zap.String("status", string(lead.Status)),
		)
		return nil
	}

	lead.AppendUpdate("system", "system", "Internal costing finalized; moved to C3", models.StageC3)
	updated, err := s.leadRepo.UpdateLead(lead)
	if err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.NotifyStatusChange(updated)
	}
	return nil
}

// MarkQuoted records that a quotation was created against the lead.
// The resulting status is the literal "quotation", outside the C0-C3
// set; downstream reports key on that value, so it stays.
func (s *LifecycleService) MarkQuoted(leadID string, actor Actor) (*models.Lead, error) {
	lead, err := s.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return nil, err
	}

	lead.AppendUpdate(actor.ID, actor.Name, "Quotation created", models.StageQuotation)
	updated, err := s.leadRepo.UpdateLead(lead)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyStatusChange(updated)
	}
	return updated, nil
}
