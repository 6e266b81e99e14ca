package tasks

import (
	"dealership-backend/config"
	leads_repositories "dealership-backend/leads/repositories"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReconcileStuckLeads re-enqueues finalization for leads left at C2
// whose costing write committed but whose status change did not (crash
// or dropped task between the two writes). Run from cron.
func ReconcileStuckLeads(leadRepo leads_repositories.LeadRepository, client *asynq.Client) {
	ids, err := leadRepo.LeadIDsStuckAtC2()
	if err != nil {
		config.Logger.Error("Reconciliation sweep query failed", zap.Error(err))
		return
	}

	for _, id := range ids {
		task, err := NewCostingFinalizedTask(id, "")
		if err != nil {
			config.Logger.Error("Reconciliation: building task failed", zap.String("lead_id", id), zap.Error(err))
			continue
		}
		if _, err := client.Enqueue(task); err != nil {
			config.Logger.Error("Reconciliation: enqueue failed", zap.String("lead_id", id), zap.Error(err))
		}
	}

	if len(ids) > 0 {
		config.Logger.Info("Reconciliation sweep re-enqueued stuck leads", zap.Int("count", len(ids)))
	}
}
