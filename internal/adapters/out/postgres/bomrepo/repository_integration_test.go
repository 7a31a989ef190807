package bomrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/adapters/out/postgres/bomrepo"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/adapters/out/postgres/orderrepo"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/bom"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// BomTemplateRepositoryIntegrationTestSuite provides integration tests for
// BomTemplateRepository using PostgreSQL containers.
type BomTemplateRepositoryIntegrationTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	bomRepository *bomrepo.GormBomTemplateRepository
	tracker       *MockAggregateTracker
}

func (suite *BomTemplateRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema; order lines are needed for the snapshot
	// reference scan
	suite.Require().NoError(db.AutoMigrate(
		&bomrepo.TemplateDTO{},
		&bomrepo.TemplateLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
	))
}

func (suite *BomTemplateRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bom_templates, bom_template_lines, orders, order_lines").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.bomRepository = bomrepo.NewGormBomTemplateRepository(suite.db, suite.tracker)
}

func (suite *BomTemplateRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BomTemplateRepositoryIntegrationTestSuite) TestAdd_ValidTemplate_Success() {
	ctx := context.Background()
	template := suite.createTestTemplate(kernel.NewUUID(), "KIT-STD", 0)

	err := suite.bomRepository.Add(ctx, template)
	suite.Require().NoError(err)

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", template.ID(), template)

	var count int64
	suite.Require().NoError(suite.db.Model(&bomrepo.TemplateLineDTO{}).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *BomTemplateRepositoryIntegrationTestSuite) TestGet_ExistingTemplate_RoundTrips() {
	ctx := context.Background()
	template := suite.createTestTemplate(kernel.NewUUID(), "KIT-STD", 0)
	suite.Require().NoError(suite.bomRepository.Add(ctx, template))

	retrieved, err := suite.bomRepository.Get(ctx, template.ID())
	suite.Require().NoError(err)

	suite.Equal(template.ID(), retrieved.ID())
	suite.Equal("KIT-STD", retrieved.Code())
	suite.Equal(1.0, retrieved.BaseQuantity())
	suite.Require().Len(retrieved.Lines(), 2)
	suite.Equal(template.Ratios(), retrieved.Ratios())
}

func (suite *BomTemplateRepositoryIntegrationTestSuite) TestGet_PreservesLineOrder() {
	ctx := context.Background()

	template, err := bom.NewTemplate(kernel.NewUUID(), kernel.NewUUID(), "KIT-STD", 1)
	suite.Require().NoError(err)

	componentIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	for i, componentID := range componentIDs {
		line, lineErr := bom.NewTemplateLine(componentID, false, float64(i+1))
		suite.Require().NoError(lineErr)
		suite.Require().NoError(template.AddLine(line))
	}

	suite.Require().NoError(suite.bomRepository.Add(ctx, template))

	retrieved, err := suite.bomRepository.Get(ctx, template.ID())
	suite.Require().NoError(err)

	suite.Require().Len(retrieved.Lines(), len(componentIDs))
	for i, line := range retrieved.Lines() {
		suite.Equal(componentIDs[i], line.ComponentID(), "Recipe order must survive a persistence round trip")
		suite.Equal(float64(i+1), line.Quantity())
	}
}

func (suite *BomTemplateRepositoryIntegrationTestSuite) TestGet_NonExistentTemplate_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.bomRepository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *BomTemplateRepositoryIntegrationTestSuite) TestFindDefaultForProduct_PicksLowestSortOrder() {
	ctx := context.Background()
	productID := kernel.NewUUID()

	alternate := suite.createTestTemplate(productID, "KIT-ALT", 10)
	preferred := suite.createTestTemplate(productID, "KIT-STD", 1)
	snapshot := suite.createTestTemplate(productID, "KIT-SNAP", bom.SnapshotSortOrder)

	suite.Require().NoError(suite.bomRepository.Add(ctx, alternate))
	suite.Require().NoError(suite.bomRepository.Add(ctx, preferred))
	suite.Require().NoError(suite.bomRepository.Add(ctx, snapshot))

	found, ok, err := suite.bomRepository.FindDefaultForProduct(ctx, productID)
	suite.Require().NoError(err)
	suite.Require().True(ok)
	suite.Equal(preferred.ID(), found.ID(), "Lowest sort order should win over alternates and snapshots")
}

func (suite *BomTemplateRepositoryIntegrationTestSuite) TestFindDefaultForProduct_NoTemplate_ReturnsFalse() {
	ctx := context.Background()

	found, ok, err := suite.bomRepository.FindDefaultForProduct(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(ok)
	suite.Nil(found)
}

func (suite *BomTemplateRepositoryIntegrationTestSuite) TestRemoveUnreferencedSnapshots() {
	ctx := context.Background()
	productID := kernel.NewUUID()

	catalog := suite.createTestTemplate(productID, "KIT-STD", 0)
	referencedSnapshot := suite.createTestTemplate(productID, "KIT-STD - 2026-09-01 - Dupont SARL", bom.SnapshotSortOrder)
	orphanSnapshot := suite.createTestTemplate(productID, "KIT-STD - 2026-08-15 - Durand SA", bom.SnapshotSortOrder)

	suite.Require().NoError(suite.bomRepository.Add(ctx, catalog))
	suite.Require().NoError(suite.bomRepository.Add(ctx, referencedSnapshot))
	suite.Require().NoError(suite.bomRepository.Add(ctx, orphanSnapshot))

	// An order line still points at one of the snapshots
	suite.seedLineReferencing(referencedSnapshot.ID())

	removed, err := suite.bomRepository.RemoveUnreferencedSnapshots(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, removed)

	// Catalog template and referenced snapshot survive
	_, err = suite.bomRepository.Get(ctx, catalog.ID())
	suite.Require().NoError(err)
	_, err = suite.bomRepository.Get(ctx, referencedSnapshot.ID())
	suite.Require().NoError(err)

	// Orphan is gone
	_, err = suite.bomRepository.Get(ctx, orphanSnapshot.ID())
	suite.Require().Error(err)
}

func (suite *BomTemplateRepositoryIntegrationTestSuite) TestRemoveUnreferencedSnapshots_NothingToRemove() {
	ctx := context.Background()

	catalog := suite.createTestTemplate(kernel.NewUUID(), "KIT-STD", 0)
	suite.Require().NoError(suite.bomRepository.Add(ctx, catalog))

	removed, err := suite.bomRepository.RemoveUnreferencedSnapshots(ctx)
	suite.Require().NoError(err)
	suite.Equal(0, removed)
}

// createTestTemplate creates a template with two component lines.
func (suite *BomTemplateRepositoryIntegrationTestSuite) createTestTemplate(productID kernel.UUID, code string, sortOrder int) *bom.Template {
	template, err := bom.RestoreTemplate(
		kernel.NewUUID(),
		productID,
		code,
		1,
		false,
		false,
		sortOrder,
		nil,
	)
	suite.Require().NoError(err)

	hingeLine, err := bom.NewTemplateLine(kernel.NewUUID(), false, 2)
	suite.Require().NoError(err)
	suite.Require().NoError(template.AddLine(hingeLine))

	panelLine, err := bom.NewTemplateLine(kernel.NewUUID(), false, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(template.AddLine(panelLine))

	return template
}

// seedLineReferencing inserts a minimal order line pointing at the given template.
func (suite *BomTemplateRepositoryIntegrationTestSuite) seedLineReferencing(templateID kernel.UUID) {
	orderID := uuid.New()
	suite.Require().NoError(suite.db.Create(&orderrepo.OrderDTO{
		ID:           orderID,
		Reference:    "SO0042",
		CustomerName: "Dupont SARL",
		Currency:     "EUR",
		PlacedAt:     time.Now(),
		Status:       0,
	}).Error)

	rawTemplateID := templateID.Bytes()
	suite.Require().NoError(suite.db.Create(&orderrepo.LineDTO{
		ID:                 uuid.New(),
		OrderID:            orderID,
		Position:           0,
		ProductID:          uuid.New(),
		ProductIsComposite: true,
		Description:        "Kitchen kit",
		Quantity:           1,
		UnitPrice:          decimal.NewFromInt(100),
		UnitCost:           decimal.NewFromInt(60),
		BomTemplateID:      &rawTemplateID,
		Subtotal:           decimal.NewFromInt(100),
		Margin:             decimal.NewFromInt(40),
	}).Error)
}

func TestBomTemplateRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BomTemplateRepositoryIntegrationTestSuite))
}
