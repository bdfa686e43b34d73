package jobs

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/remittance"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type remittanceSettler interface {
	Handle(ctx context.Context, cmd commands.SettleRemittancesCommand) ([]*remittance.Record, error)
}

// SettlementJob settles the previous calendar day's delivered COD shipments.
// Re-running it for the same day is harmless: settlement only creates missing records.
type SettlementJob struct {
	handler  remittanceSettler
	schedule string
	location *time.Location
	clock    func() time.Time
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewSettlementJob creates the job. Day boundaries are taken in loc.
func NewSettlementJob(handler remittanceSettler, schedule string, loc *time.Location, logger *zap.Logger) *SettlementJob {
	return &SettlementJob{
		handler:  handler,
		schedule: schedule,
		location: loc,
		clock:    time.Now,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		logger:   logger.With(zap.String("component", "settlement_job")),
	}
}

// Start registers the settlement on its schedule and starts the scheduler.
func (j *SettlementJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Settlement job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running settlement to finish.
func (j *SettlementJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Settlement job stopped")
}

// previousDay returns [yesterday 00:00, today 00:00) in the job's location.
func (j *SettlementJob) previousDay() (time.Time, time.Time) {
	today := now.With(j.clock().In(j.location)).BeginningOfDay()
	return today.AddDate(0, 0, -1), today
}

func (j *SettlementJob) run(ctx context.Context) {
	start, end := j.previousDay()
	cmd, err := commands.NewSettleRemittancesCommand(start, end, end)
	if err != nil {
		j.logger.Error("Invalid settlement period", zap.Time("start", start), zap.Time("end", end), zap.Error(err))
		return
	}

	records, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("Settlement failed", zap.Time("start", start), zap.Error(err))
		return
	}
	j.logger.Info("Settlement completed", zap.Time("start", start), zap.Int("records", len(records)))
}
