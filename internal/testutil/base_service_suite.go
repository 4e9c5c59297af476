package testutil

import (
	"context"
	"time"

	"github.com/quickinvoice/quickinvoice/internal/config"
	"github.com/quickinvoice/quickinvoice/internal/domain/export"
	"github.com/quickinvoice/quickinvoice/internal/domain/invoice"
	"github.com/quickinvoice/quickinvoice/internal/logger"
	"github.com/quickinvoice/quickinvoice/internal/repository/memory"
	"github.com/stretchr/testify/suite"
)

// Stores holds the repository interfaces for testing
type Stores struct {
	DraftRepo  invoice.Repository
	ExportRepo export.Repository
}

// BaseServiceTestSuite provides common functionality for service test suites.
// The stores are the production in-memory repositories; a fresh set is built
// per test so no state leaks between tests.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.config = config.GetDefaultConfig()

	log, err := logger.NewLogger(s.config)
	s.Require().NoError(err)
	s.logger = log

	s.stores = Stores{
		DraftRepo:  memory.NewDraftRepository(s.config, log),
		ExportRepo: memory.NewExportRepository(s.config, log),
	}
	s.now = time.Now().UTC()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
