package ndrrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/ndrrepo"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ndr"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

var openedAt = time.Date(2026, 8, 4, 18, 0, 0, 0, time.UTC)

type NDRRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *ndrrepo.GormNDRRepository
	tracker    *MockAggregateTracker
}

func (suite *NDRRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background(), &ndrrepo.CaseDTO{}, &ndrrepo.TransitionDTO{})
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *NDRRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("ndr_case_history", "ndr_cases"))
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = ndrrepo.NewGormNDRRepository(suite.pg.DB, suite.tracker)
}

func (suite *NDRRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *NDRRepositoryIntegrationTestSuite) openCase(shipmentID kernel.UUID, at time.Time) *ndr.Case {
	c, err := ndr.OpenCase(kernel.NewUUID(), shipmentID, "consignee not available", at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), c))
	return c
}

func (suite *NDRRepositoryIntegrationTestSuite) TestAddAndGet_RestoresHistory() {
	ctx := context.Background()
	c := suite.openCase(kernel.NewUUID(), openedAt)
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", c.ID(), c)

	got, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(ndr.ActionRequired, got.Status())
	suite.Equal(1, got.Attempts())
	suite.Require().Len(got.History(), 1)
	suite.Equal(ndr.ActionRequired, got.History()[0].To)
}

func (suite *NDRRepositoryIntegrationTestSuite) TestUpdate_AppendsOnlyNewTransitions() {
	ctx := context.Background()
	c := suite.openCase(kernel.NewUUID(), openedAt)

	suite.Require().NoError(c.ApplyAction(ndr.ReAttempt, "consignee home after 6pm", openedAt.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, c))
	suite.Require().NoError(c.RecordFailure("door locked", openedAt.Add(26*time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, c))

	got, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(ndr.ActionRequired, got.Status())
	suite.Equal(2, got.Attempts())
	suite.Equal(ndr.ReAttempt, got.Action())

	history := got.History()
	suite.Require().Len(history, 3)
	suite.Equal(ndr.ActionRequested, history[1].To)
	suite.Equal(ndr.ReAttempt, history[1].Action)
	suite.Equal("door locked", history[2].Reason)

	var rows int64
	suite.Require().NoError(suite.pg.DB.Model(&ndrrepo.TransitionDTO{}).Count(&rows).Error)
	suite.Equal(int64(3), rows)
}

func (suite *NDRRepositoryIntegrationTestSuite) TestGetOpenByShipment_IgnoresTerminalCases() {
	ctx := context.Background()
	shipmentID := kernel.NewUUID()

	closed := suite.openCase(shipmentID, openedAt)
	_, err := closed.Resolve(ndr.RTO, "returned", openedAt.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, closed))

	_, err = suite.repository.GetOpenByShipment(ctx, shipmentID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	open := suite.openCase(shipmentID, openedAt.Add(2*time.Hour))
	got, err := suite.repository.GetOpenByShipment(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Equal(open.ID(), got.ID())
}

func (suite *NDRRepositoryIntegrationTestSuite) TestList_FiltersByStatusOldestFirst() {
	ctx := context.Background()
	newer := suite.openCase(kernel.NewUUID(), openedAt.Add(time.Hour))
	older := suite.openCase(kernel.NewUUID(), openedAt)
	requested := suite.openCase(kernel.NewUUID(), openedAt.Add(2*time.Hour))
	suite.Require().NoError(requested.ApplyAction(ndr.Hold24h, "festival", openedAt.Add(3*time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, requested))

	all, err := suite.repository.List(ctx, ndr.UnknownStatus)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal(older.ID(), all[0].ID())
	suite.Equal(newer.ID(), all[1].ID())

	waiting, err := suite.repository.List(ctx, ndr.ActionRequired)
	suite.Require().NoError(err)
	suite.Len(waiting, 2)
}

func (suite *NDRRepositoryIntegrationTestSuite) TestUpdate_UnknownCase() {
	c, err := ndr.OpenCase(kernel.NewUUID(), kernel.NewUUID(), "refused", openedAt)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.repository.Update(context.Background(), c), errs.ErrObjectNotFound)
}

func TestNDRRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NDRRepositoryIntegrationTestSuite))
}
