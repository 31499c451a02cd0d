package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	postgres_adapter "supplychain/internal/adapters/out/postgres"
	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/adapters/out/postgres/outboxrepo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/participant"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	seller      = kernel.MustNewPrincipal("0x00000000000000000000000000000000000000a1")
	buyer       = kernel.MustNewPrincipal("0x00000000000000000000000000000000000000b2")
	transporter = kernel.MustNewPrincipal("0x00000000000000000000000000000000000000c3")
)

// UnitOfWorkIntegrationTestSuite runs the unit of work, its repositories and the
// readers against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	outbox    ports.OutboxUnitOfWorkFactory
	readers   ports.Readers
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.AutoMigrate(db))

	factory := postgres_adapter.NewGormUnitOfWorkFactory(db)
	suite.factory = factory
	suite.outbox = factory
	suite.readers = postgres_adapter.NewReaders(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE roles, herders, slaughterhouses, transporters,
		orders, sequences, outbox_messages CASCADE`).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Begin on an active unit of work is a no-op")
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWritesOrderAndOutbox() {
	ctx := context.Background()
	uow := suite.begin()

	id, err := uow.SequenceRepository().Next(ctx, ports.SequenceOrder, order.FirstID)
	suite.Require().NoError(err)
	suite.Equal(order.FirstID, id)

	o, err := order.NewOrder(id, 1, seller, buyer, 4)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(o.Confirm(seller, true))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	got, err := suite.readers.Orders().Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, got.Status())

	messages := suite.unprocessed()
	suite.Require().Len(messages, 2)
	suite.Equal(string(order.EventOrderPlaced), messages[0].EventType)
	suite.Equal(string(order.EventOrderConfirmed), messages[1].EventType)
	for _, m := range messages {
		suite.Equal(id, m.OrderID)
		suite.Nil(m.ProcessedAt)

		var envelope map[string]any
		suite.Require().NoError(json.Unmarshal(m.Payload, &envelope))
		suite.Equal(m.ID.String(), envelope["event_id"])
		suite.Equal(m.EventType, envelope["event_type"])
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEverything() {
	ctx := context.Background()
	uow := suite.begin()

	id, err := uow.SequenceRepository().Next(ctx, ports.SequenceOrder, order.FirstID)
	suite.Require().NoError(err)
	o, err := order.NewOrder(id, 1, seller, buyer, 4)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.readers.Orders().Get(ctx, id)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Empty(suite.unprocessed())

	next, err := suite.readers.Sequences().Peek(ctx, ports.SequenceOrder, order.FirstID)
	suite.Require().NoError(err)
	suite.Equal(id, next, "rolled-back ids are handed out again")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRoleRepository() {
	ctx := context.Background()

	a, err := suite.readers.Roles().Get(ctx, seller)
	suite.Require().NoError(err)
	suite.Equal(role.None, a.Role())

	uow := suite.begin()
	suite.Require().NoError(a.Choose(role.Herder))
	suite.Require().NoError(uow.RoleRepository().Add(ctx, a))

	again, err := role.RestoreAssignment(seller, role.None)
	suite.Require().NoError(err)
	suite.Require().NoError(again.Choose(role.Transporter))
	err = uow.RoleRepository().Add(ctx, again)
	suite.Require().ErrorIs(err, errs.ErrAlreadyAssigned)
	suite.Require().ErrorContains(err, "HERDER")

	unassigned, err := role.NewAssignment(buyer)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(uow.RoleRepository().Add(ctx, unassigned), errs.ErrInvalidArgument)

	suite.Require().NoError(uow.Commit(ctx), "rejected writes leave the transaction usable")

	got, err := suite.readers.Roles().Get(ctx, seller)
	suite.Require().NoError(err)
	suite.Equal(role.Herder, got.Role())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestParticipantRepository() {
	ctx := context.Background()
	uow := suite.begin()
	participants := uow.ParticipantRepository()

	herder, err := participant.NewHerder(1, seller, "Location A", 100, 10,
		participant.AimagStats{TotalLivestock: 1000, PastureCarryingCapacity: 500, TotalHerderNumber: 100})
	suite.Require().NoError(err)
	suite.Require().NoError(participants.AddHerder(ctx, herder))

	duplicate, err := participant.NewHerder(2, seller, "Location B", 1, 1, participant.AimagStats{})
	suite.Require().NoError(err)
	suite.Require().ErrorIs(participants.AddHerder(ctx, duplicate), errs.ErrAlreadyRegistered)

	slaughterhouse, err := participant.NewSlaughterhouse(1, buyer, "Location B", 20)
	suite.Require().NoError(err)
	suite.Require().NoError(participants.AddSlaughterhouse(ctx, slaughterhouse))

	carrier, err := participant.NewTransporter(1, transporter, "Location C", "Truck Info", 5)
	suite.Require().NoError(err)
	suite.Require().NoError(participants.AddTransporter(ctx, carrier))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.readers.Participants()

	gotHerder, err := reader.GetHerder(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal("Location A", gotHerder.Location())
	suite.Equal(participant.AimagStats{TotalLivestock: 1000, PastureCarryingCapacity: 500, TotalHerderNumber: 100},
		gotHerder.Aimag())
	suite.True(gotHerder.Owner().IsEqual(seller))

	gotSlaughterhouse, err := reader.GetSlaughterhouse(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(20), gotSlaughterhouse.PricePerKg())

	gotTransporter, err := reader.GetTransporter(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal("Truck Info", gotTransporter.TruckInfo())

	_, err = reader.GetSlaughterhouse(ctx, 2)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	id, err := reader.FindID(ctx, role.Transporter, transporter)
	suite.Require().NoError(err)
	suite.Equal(int64(1), id)

	_, err = reader.FindID(ctx, role.Herder, transporter)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = reader.FindID(ctx, role.None, seller)
	suite.Require().ErrorIs(err, errs.ErrInvalidArgument)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSequenceRepository() {
	ctx := context.Background()
	uow := suite.begin()
	sequences := uow.SequenceRepository()

	for want := int64(1); want <= 3; want++ {
		got, err := sequences.Next(ctx, ports.SequenceHerder, 1)
		suite.Require().NoError(err)
		suite.Equal(want, got)
	}
	first, err := sequences.Next(ctx, ports.SequenceTransporter, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(1), first, "sequences are independent")

	peek, err := sequences.Peek(ctx, ports.SequenceHerder, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(4), peek)
	suite.Require().NoError(uow.Commit(ctx))

	peek, err = suite.readers.Sequences().Peek(ctx, ports.SequenceSlaughterhouse, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(1), peek)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOutboxRepository() {
	ctx := context.Background()
	occurred := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	relay := suite.beginOutbox()
	messages := make([]ports.OutboxMessage, 0, 3)
	for i := range 3 {
		messages = append(messages, ports.OutboxMessage{
			ID:         uuid.New(),
			EventType:  "order.placed",
			OrderID:    int64(i),
			Payload:    []byte(`{"n":1}`),
			OccurredAt: occurred,
		})
	}
	suite.Require().NoError(relay.OutboxRepository().Add(ctx, messages...))
	suite.Require().NoError(relay.Commit(ctx))

	relay = suite.beginOutbox()
	batch, err := relay.OutboxRepository().GetUnprocessed(ctx, 2)
	suite.Require().NoError(err)
	suite.Require().Len(batch, 2)
	suite.Equal(messages[0].ID, batch[0].ID)
	suite.Equal(messages[1].ID, batch[1].ID)
	suite.JSONEq(`{"n":1}`, string(batch[0].Payload))
	suite.True(occurred.Equal(batch[0].OccurredAt))

	processedAt := occurred.Add(time.Minute)
	suite.Require().NoError(relay.OutboxRepository().MarkProcessed(ctx, []uuid.UUID{batch[0].ID, batch[1].ID},
		processedAt))
	suite.Require().NoError(relay.OutboxRepository().MarkProcessed(ctx, nil, processedAt))
	suite.Require().NoError(relay.Commit(ctx))

	rest := suite.unprocessed()
	suite.Require().Len(rest, 1)
	suite.Equal(messages[2].ID, rest[0].ID)

	var processed outboxrepo.OutboxMessageDTO
	suite.Require().NoError(suite.db.First(&processed, "id = ?", messages[0].ID).Error)
	suite.Require().NotNil(processed.ProcessedAt)
	suite.True(processedAt.Equal(*processed.ProcessedAt))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOutboxUnitOfWork_SkipsLockedRows() {
	ctx := context.Background()
	seed := suite.beginOutbox()
	messages := []ports.OutboxMessage{
		{ID: uuid.New(), EventType: "order.placed", Payload: []byte(`{}`), OccurredAt: time.Now().UTC()},
		{ID: uuid.New(), EventType: "order.placed", OrderID: 1, Payload: []byte(`{}`), OccurredAt: time.Now().UTC()},
	}
	suite.Require().NoError(seed.OutboxRepository().Add(ctx, messages...))
	suite.Require().NoError(seed.Commit(ctx))

	first := suite.beginOutbox()
	batch, err := first.OutboxRepository().GetUnprocessed(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(batch, 1)
	suite.Equal(messages[0].ID, batch[0].ID)

	second := suite.beginOutbox()
	other, err := second.OutboxRepository().GetUnprocessed(ctx, 0)
	suite.Require().NoError(err)
	suite.Require().Len(other, 1)
	suite.Equal(messages[1].ID, other[0].ID)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOutboxUnitOfWork_DoesNotWaitForEngine() {
	ctx := context.Background()
	engine := suite.begin()
	o, err := order.NewOrder(0, 1, seller, buyer, 4)
	suite.Require().NoError(err)
	suite.Require().NoError(engine.OrderRepository().Add(ctx, o))

	done := make(chan error, 1)
	go func() {
		relay := suite.outbox.CreateOutbox()
		if err := relay.Begin(ctx); err != nil {
			done <- err
			return
		}
		defer func() { _ = relay.Rollback(ctx) }()
		_, err := relay.OutboxRepository().GetUnprocessed(ctx, 10)
		done <- err
	}()

	select {
	case err := <-done:
		suite.Require().NoError(err)
	case <-time.After(5 * time.Second):
		suite.Fail("relay blocked by an open engine unit of work")
	}
	suite.Require().NoError(engine.Commit(ctx))
	suite.Len(suite.unprocessed(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_BeginWaitsForActiveUnitOfWork() {
	ctx := context.Background()
	first := suite.begin()

	began := make(chan error, 1)
	second := suite.factory.Create()
	go func() { began <- second.Begin(ctx) }()

	select {
	case <-began:
		suite.Fail("second unit of work started while the first was active")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(first.Commit(ctx))

	select {
	case err := <-began:
		suite.Require().NoError(err)
	case <-time.After(5 * time.Second):
		suite.Fail("second unit of work never started")
	}
	suite.Require().NoError(second.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReaders_SeeCommittedStateOnly() {
	ctx := context.Background()
	uow := suite.begin()
	o, err := order.NewOrder(0, 1, seller, buyer, 4)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	_, err = suite.readers.Orders().Get(ctx, 0)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.Commit(ctx))

	_, err = suite.readers.Orders().Get(ctx, 0)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	o, err := order.NewOrder(2, 1, seller, buyer, 4)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count, "writes outside a transaction go straight to the pool")
}

func (suite *UnitOfWorkIntegrationTestSuite) begin() ports.UnitOfWork {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(context.Background()))
	suite.T().Cleanup(func() { _ = uow.Rollback(context.Background()) })
	return uow
}

func (suite *UnitOfWorkIntegrationTestSuite) beginOutbox() ports.OutboxUnitOfWork {
	uow := suite.outbox.CreateOutbox()
	suite.Require().NoError(uow.Begin(context.Background()))
	suite.T().Cleanup(func() { _ = uow.Rollback(context.Background()) })
	return uow
}

func (suite *UnitOfWorkIntegrationTestSuite) unprocessed() []ports.OutboxMessage {
	uow := suite.beginOutbox()
	messages, err := uow.OutboxRepository().GetUnprocessed(context.Background(), 0)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Rollback(context.Background()))
	return messages
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
