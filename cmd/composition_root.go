package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/openweather"
	"fulfillment/internal/adapters/out/postgres/decisionrepo"
	"fulfillment/internal/adapters/out/shipstation"
	"fulfillment/internal/adapters/out/ups"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"
)

type CompositionRoot struct {
	gormDB *gorm.DB
	logger *slog.Logger

	orderStore *shipstation.Client
	carrier    *ups.Client
	weather    *openweather.Client
	decisions  *decisionrepo.GormDecisionRepository
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	orderStore, err := shipstation.NewClient(shipstation.Config{
		BaseURL:          config.ShipStationBaseURL,
		APIKey:           config.ShipStationAPIKey,
		APISecret:        config.ShipStationAPISecret,
		OriginPostalCode: config.OriginPostalCode,
	}, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	carrier, err := ups.NewClient(ups.Config{
		ClientID:         config.UPSClientID,
		ClientSecret:     config.UPSClientSecret,
		AuthURL:          config.UPSAuthURL,
		APIURL:           config.UPSAPIURL,
		OriginPostalCode: config.OriginPostalCode,
	}, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	weather, err := openweather.NewClient(openweather.Config{
		APIKey:  config.OpenWeatherAPIKey,
		BaseURL: config.OpenWeatherBaseURL,
	}, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		logger:     logger,
		orderStore: orderStore,
		carrier:    carrier,
		weather:    weather,
		decisions:  decisionrepo.NewGormDecisionRepository(gormDB),
	}, nil
}

func (c *CompositionRoot) createProcessor() commands.OrderLifecycleProcessor {
	engine := commands.NewShippingPolicyEngine(
		c.orderStore,
		c.orderStore,
		c.carrier,
		c.orderStore,
		commands.NewWeatherAdvisor(c.weather),
		c.logger,
	)
	expander := commands.NewSubscriptionExpander(c.orderStore, c.logger)

	return commands.NewOrderLifecycleProcessor(
		c.orderStore,
		c.orderStore,
		engine,
		expander,
		c.decisions,
		time.Now,
		c.logger,
	)
}

func (c *CompositionRoot) CreateProcessPendingOrdersCommandHandler() commands.ProcessPendingOrdersCommandHandler {
	return commands.NewProcessPendingOrdersCommandHandler(c.createProcessor())
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	return commands.NewProcessOrderCommandHandler(c.orderStore, c.createProcessor())
}

func (c *CompositionRoot) CreateGetRecentDecisionsQueryHandler() queries.GetRecentDecisionsQueryHandler {
	return queries.NewGetRecentDecisionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateProcessPendingOrdersCommandHandler(), c.logger)
}
