package cmd

import (
	"log/slog"

	"parcels/internal/adapters/out/notify"
	"parcels/internal/adapters/out/postgres"
	"parcels/internal/adapters/out/rediscache"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher ports.NotificationDispatcher
	cache      ports.TrackingCache
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: notify.NewSlogDispatcher(logger),
		cache:      rediscache.NewTrackingCache(redisClient),
	}
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterParcelCommandHandler() commands.RegisterParcelCommandHandler {
	return commands.NewRegisterParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateMarkReceivedCommandHandler() commands.MarkReceivedCommandHandler {
	return commands.NewMarkReceivedCommandHandler(c.parcelUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateRecordWeighingCommandHandler() commands.RecordWeighingCommandHandler {
	return commands.NewRecordWeighingCommandHandler(c.parcelUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateResolveWeightIssueCommandHandler() commands.ResolveWeightIssueCommandHandler {
	return commands.NewResolveWeightIssueCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateSortParcelCommandHandler() commands.SortParcelCommandHandler {
	return commands.NewSortParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateSortBatchCommandHandler() commands.SortBatchCommandHandler {
	return commands.NewSortBatchCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceParcelCommandHandler() commands.AdvanceParcelCommandHandler {
	return commands.NewAdvanceParcelCommandHandler(c.parcelUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateSearchParcelsQueryHandler() queries.SearchParcelsQueryHandler {
	return queries.NewSearchParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSortableParcelsQueryHandler() queries.GetSortableParcelsQueryHandler {
	return queries.NewGetSortableParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	// The tracking view only reads, so the repository runs outside any
	// transaction on the shared connection.
	repo := c.uowFactory.Create().ParcelRepository()
	return queries.NewTrackParcelQueryHandler(repo, c.cache)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}
