package eventrepo_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/eventrepo"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/suite"
)

type EventRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg     *pgtest.Database
	log    *eventrepo.GormCarrierEventLog
	outbox *eventrepo.GormOutbox
}

func (suite *EventRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background(), &eventrepo.CarrierEventDTO{}, &eventrepo.OutboxDTO{})
	suite.Require().NoError(err)
	suite.pg = pg
	suite.log = eventrepo.NewGormCarrierEventLog(pg.DB)
	suite.outbox = eventrepo.NewGormOutbox(pg.DB)
}

func (suite *EventRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("carrier_events", "outbox"))
}

func (suite *EventRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *EventRepositoryIntegrationTestSuite) TestCarrierEventLog_DeduplicatesByEventID() {
	ctx := context.Background()
	event := ports.CarrierEvent{
		EventID:    "bluedart-7781",
		ShipmentID: kernel.NewUUID(),
		Status:     shipment.CarrierDeliveryFailed,
		Reason:     "door locked",
		ReceivedAt: time.Now(),
	}

	recorded, err := suite.log.Record(ctx, event)
	suite.Require().NoError(err)
	suite.True(recorded)

	recorded, err = suite.log.Record(ctx, event)
	suite.Require().NoError(err)
	suite.False(recorded)
}

func (suite *EventRepositoryIntegrationTestSuite) TestOutbox_PendingThenMarkSent() {
	ctx := context.Background()
	first := events.RemittancePaid{RecordID: kernel.NewUUID().String(), ShipmentID: kernel.NewUUID().String(), Reference: "UTR1"}
	second := events.RemittancePaid{RecordID: kernel.NewUUID().String(), ShipmentID: kernel.NewUUID().String(), Reference: "UTR2"}
	suite.Require().NoError(suite.outbox.Append(ctx, first, second))

	pending, err := suite.outbox.Pending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(first.ShipmentID, pending[0].Key)
	suite.Equal(events.TypeRemittancePaid, pending[0].EventType)

	var decoded events.RemittancePaid
	suite.Require().NoError(json.Unmarshal(pending[1].Payload, &decoded))
	suite.Equal("UTR2", decoded.Reference)

	suite.Require().NoError(suite.outbox.MarkSent(ctx, []kernel.UUID{pending[0].ID}, time.Now()))

	pending, err = suite.outbox.Pending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(second.ShipmentID, pending[0].Key)
}

func (suite *EventRepositoryIntegrationTestSuite) TestOutbox_LeaseHidesBatchFromOtherRelays() {
	ctx := context.Background()
	first := events.RemittancePaid{RecordID: kernel.NewUUID().String(), ShipmentID: kernel.NewUUID().String(), Reference: "UTR1"}
	second := events.RemittancePaid{RecordID: kernel.NewUUID().String(), ShipmentID: kernel.NewUUID().String(), Reference: "UTR2"}
	suite.Require().NoError(suite.outbox.Append(ctx, first, second))
	now := time.Now()

	leased, err := suite.outbox.Lease(ctx, 10, now, time.Minute)
	suite.Require().NoError(err)
	suite.Require().Len(leased, 2)
	suite.Equal(first.ShipmentID, leased[0].Key)

	again, err := suite.outbox.Lease(ctx, 10, now.Add(time.Second), time.Minute)
	suite.Require().NoError(err)
	suite.Empty(again)

	suite.Require().NoError(suite.outbox.MarkSent(ctx, []kernel.UUID{leased[0].ID}, now))
	suite.Require().NoError(suite.outbox.Release(ctx, []kernel.UUID{leased[1].ID}))

	retried, err := suite.outbox.Lease(ctx, 10, now.Add(time.Second), time.Minute)
	suite.Require().NoError(err)
	suite.Require().Len(retried, 1)
	suite.Equal(second.ShipmentID, retried[0].Key)

	expired, err := suite.outbox.Lease(ctx, 10, now.Add(2*time.Minute), time.Minute)
	suite.Require().NoError(err)
	suite.Require().Len(expired, 1)
	suite.Equal(retried[0].ID, expired[0].ID)
}

func TestEventRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EventRepositoryIntegrationTestSuite))
}
