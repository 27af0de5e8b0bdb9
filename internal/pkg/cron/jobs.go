package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
)

const (
	JobDocumentCompliance = "document-compliance"
	JobAbsenceSLA         = "absence-sla"
)

// OperationsJobs holds the background sweeps of the operations console
type OperationsJobs struct {
	guardService   guard.GuardService
	absenceService absence.AbsenceService
}

func NewOperationsJobs(guardService guard.GuardService, absenceService absence.AbsenceService) *OperationsJobs {
	return &OperationsJobs{
		guardService:   guardService,
		absenceService: absenceService,
	}
}

// RegisterJobs adds both sweeps to the scheduler
func (j *OperationsJobs) RegisterJobs(scheduler *Scheduler, complianceInterval, slaInterval time.Duration) {
	scheduler.AddJob(JobDocumentCompliance, complianceInterval, j.EnforceDocumentCompliance)
	scheduler.AddJob(JobAbsenceSLA, slaInterval, j.FlagSLABreaches)
}

// EnforceDocumentCompliance reclassifies documents and blocks guards with
// expired ones
func (j *OperationsJobs) EnforceDocumentCompliance(ctx context.Context) error {
	result, err := j.guardService.EnforceDocumentCompliance(ctx)
	if err != nil {
		return err
	}
	if len(result.Blocked) > 0 || result.Expired > 0 {
		slog.Info("Cron: Document compliance sweep finished",
			"checked", result.Checked,
			"expired", result.Expired,
			"alerts", result.Alerts,
			"blocked", len(result.Blocked))
	}
	return nil
}

// FlagSLABreaches records pending absences left open past the response SLA
func (j *OperationsJobs) FlagSLABreaches(ctx context.Context) error {
	result, err := j.absenceService.FlagSLABreaches(ctx)
	if err != nil {
		return err
	}
	if len(result.Breached) > 0 {
		slog.Warn("Cron: Absence SLA breaches recorded", "pending", result.Pending, "breached", result.Breached)
	}
	return nil
}
