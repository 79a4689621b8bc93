package cmd

import (
	"log/slog"

	"inventory/internal/adapters/out/csvexport"
	"inventory/internal/adapters/out/postgres"
	"inventory/internal/adapters/out/postgres/auditrepo"
	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/ports"
	"inventory/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	auditLog   ports.AuditLog
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		auditLog:   auditrepo.NewGormAuditLog(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	var f commands.RequestCollegeStockUoWFactory = FuncRequestCollegeStockUoWFactory(
		func() commands.RequestCollegeStockUoW {
			return c.uowFactory.Create()
		})
	return commands.NewCreateRequestCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateApproveRequestCommandHandler() commands.ApproveRequestCommandHandler {
	var f commands.RequestStockUoWFactory = FuncRequestStockUoWFactory(func() commands.RequestStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveRequestCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateRejectRequestCommandHandler() commands.RejectRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectRequestCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreatePickupRequestCommandHandler() commands.PickupRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPickupRequestCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateDeliverRequestCommandHandler() commands.DeliverRequestCommandHandler {
	var f commands.RequestCustodyUoWFactory = FuncRequestCustodyUoWFactory(func() commands.RequestCustodyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverRequestCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreatePickupReturnCommandHandler() commands.PickupReturnCommandHandler {
	var f commands.RequestCustodyUoWFactory = FuncRequestCustodyUoWFactory(func() commands.RequestCustodyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPickupReturnCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateDeliverReturnCommandHandler() commands.DeliverReturnCommandHandler {
	var f commands.RequestStockUoWFactory = FuncRequestStockUoWFactory(func() commands.RequestStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverReturnCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateItemCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveItemCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustStockCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateRegisterCollegeCommandHandler() commands.RegisterCollegeCommandHandler {
	var f commands.CollegeUoWFactory = FuncCollegeUoWFactory(func() commands.CollegeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCollegeCommandHandler(f)
}

func (c *CompositionRoot) CreateGetPendingRequestsQueryHandler() queries.GetPendingRequestsQueryHandler {
	return queries.NewGetPendingRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRequestsByStageQueryHandler() queries.GetRequestsByStageQueryHandler {
	return queries.NewGetRequestsByStageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCollegeRequestsQueryHandler() queries.GetCollegeRequestsQueryHandler {
	return queries.NewGetCollegeRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetItemsQueryHandler() queries.GetItemsQueryHandler {
	return queries.NewGetItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockItemsQueryHandler() queries.GetLowStockItemsQueryHandler {
	return queries.NewGetLowStockItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCollegeCustodyQueryHandler() queries.GetCollegeCustodyQueryHandler {
	return queries.NewGetCollegeCustodyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCustodyQueryHandler() queries.GetAllCustodyQueryHandler {
	return queries.NewGetAllCustodyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.auditLog)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetLowStockItemsQueryHandler(),
		c.config.LowStockSchedule,
		csvexport.NewExporter(c.gormDB),
		c.config.BackupDir,
		c.config.AuditExportSchedule,
		c.logger,
	)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncCollegeUoWFactory func() commands.CollegeUoW

func (f FuncCollegeUoWFactory) Create() commands.CollegeUoW {
	return f()
}

type FuncRequestStockUoWFactory func() commands.RequestStockUoW

func (f FuncRequestStockUoWFactory) Create() commands.RequestStockUoW {
	return f()
}

type FuncRequestCollegeStockUoWFactory func() commands.RequestCollegeStockUoW

func (f FuncRequestCollegeStockUoWFactory) Create() commands.RequestCollegeStockUoW {
	return f()
}

type FuncRequestCustodyUoWFactory func() commands.RequestCustodyUoW

func (f FuncRequestCustodyUoWFactory) Create() commands.RequestCustodyUoW {
	return f()
}
