package gateway

import (
	"github.com/pharmanet/pharmacy-console/internal/config"
	"github.com/pharmanet/pharmacy-console/internal/service/medication"
	"github.com/pharmanet/pharmacy-console/internal/service/pharmacy"
	"github.com/pharmanet/pharmacy-console/internal/service/user"
	"github.com/pharmanet/pharmacy-console/internal/session"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
	pkgtime "github.com/pharmanet/pharmacy-console/pkg/time"
)

type Container struct {
	Sessions    *SessionResolver
	Users       *user.Service
	Pharmacies  *pharmacy.Service
	Medications *medication.Service

	mediaBaseURL string
	clock        pkgtime.Clock
	logger       log.Logger
}

func NewContainer(
	cfg *config.Config,
	stores session.StoreProvider,
	clock pkgtime.Clock,
	logger log.Logger,
) *Container {
	newServiceClient := func(service config.Service) pkghttp.Client {
		return pkghttp.NewClient(
			pkghttp.WithClientDestination(string(service), cfg.ServiceURL(service)),
			pkghttp.WithRequestLogging(logger, log.LevelDebug, log.LevelWarn),
		)
	}
	tokens := SessionTokenSource()

	return &Container{
		Sessions:     NewSessionResolver(stores, clock, cfg.Gateway.SessionTTL),
		Users:        user.NewService(newServiceClient(config.ServiceUser), tokens),
		Pharmacies:   pharmacy.NewService(newServiceClient(config.ServicePharmacy), tokens),
		Medications:  medication.NewService(newServiceClient(config.ServiceMedication), tokens),
		mediaBaseURL: cfg.MediaBaseURL,
		clock:        clock,
		logger:       logger,
	}
}

// RegisterHTTPHandlers mounts every route. Guarded subtrees take the role
// check as a subrouter middleware; everything else stays public.
func (c *Container) RegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	adminOnly := c.Sessions.RequireRoles(session.RoleAdmin)
	managerOnly := c.Sessions.RequireRoles(session.RoleManager)
	employeeOnly := c.Sessions.RequireRoles(session.RoleEmployee)

	registry.Register(NewCatalogHandler(c.Medications, c.mediaBaseURL, c.logger))
	registry.Register(NewManufacturersHandler(c.Medications, c.logger))
	registry.Register(NewLoginHandler(c.Users, c.Sessions, c.logger))
	registry.Register(NewLogoutHandler(c.logger))
	registry.Register(NewSessionHandler())
	registry.Register(NewCompleteRegistrationHandler(c.Users, c.logger))

	registry.Register(NewListUsersHandler(c.Users, c.logger), adminOnly)
	registry.Register(NewExportUsersHandler(c.Users, c.logger), adminOnly)
	registry.Register(NewInviteUserHandler(c.Users, c.logger), adminOnly)
	registry.Register(NewUpdateUserHandler(c.Users, c.logger), adminOnly)
	registry.Register(NewDeleteUserHandler(c.Users, c.logger), adminOnly)

	registry.Register(NewMostSoldHandler(c.Pharmacies, c.logger), managerOnly)
	registry.Register(NewSaleTrendsHandler(c.Pharmacies, c.clock, c.logger), managerOnly)
	registry.Register(NewExportTrendsHandler(c.Pharmacies, c.clock, c.logger), managerOnly)
	registry.Register(NewRegisterInventoryHandler(c.Pharmacies, c.logger), managerOnly)
	registry.Register(NewCreateMedicationHandler(c.Medications, c.logger), managerOnly)

	registry.Register(NewPharmacyMedicationsHandler(c.Pharmacies, c.logger), employeeOnly)
	registry.Register(NewRecordSaleHandler(c.Pharmacies, c.logger), employeeOnly)
	registry.Register(NewUpdateInventoryHandler(c.Pharmacies, c.logger), employeeOnly)
}
