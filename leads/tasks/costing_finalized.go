package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"dealership-backend/config"
	leads_services "dealership-backend/leads/services"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeCostingFinalized is enqueued by the costing controller after its
// own write commits. The lead status change rides this event instead of
// happening inline, so the two writes' non-atomicity is explicit: the
// lead may briefly stay at C2 after its costing is saved.
const TypeCostingFinalized = "lead:costing_finalized"

type CostingFinalizedPayload struct {
	LeadID    string `json:"lead_id"`
	CostingID string `json:"costing_id"`
}

func NewCostingFinalizedTask(leadID, costingID string) (*asynq.Task, error) {
	payload, err := json.Marshal(CostingFinalizedPayload{LeadID: leadID, CostingID: costingID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCostingFinalized, payload), nil
}

// CostingFinalizedHandler applies the C2->C3 transition. Safe under
// redelivery: the lifecycle service no-ops for leads not at C2.
type CostingFinalizedHandler struct {
	lifecycle *leads_services.LifecycleService
}

func NewCostingFinalizedHandler(lifecycle *leads_services.LifecycleService) *CostingFinalizedHandler {
	return &CostingFinalizedHandler{lifecycle: lifecycle}
}

func (h *CostingFinalizedHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p CostingFinalizedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal costing finalized payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.lifecycle.FinalizeCosting(p.LeadID); err != nil {
		config.Logger.Error("Costing finalize transition failed",
			zap.String("lead_id", p.LeadID),
			zap.String("costing_id", p.CostingID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
