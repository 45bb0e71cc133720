package services

import (
	portsrepo "github.com/advisorkit/fna_app/internal/core/ports/repositories"
	portssvc "github.com/advisorkit/fna_app/internal/core/ports/services"
	"github.com/advisorkit/fna_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.ClientSvc = NewClientService(repos.ClientRepo)
	container.PlanSvc = NewPlanService(repos.PlanRepo, repos.ClientRepo, repos.LiabilityRepo, repos.PlanCache)
	container.LiabilitySvc = NewLiabilityService(repos.LiabilityRepo, repos.PlanRepo)
	container.ReportSvc = NewReportService(container.PlanSvc, repos.ClientRepo)
	container.UserSvc = NewUserService(repos.UserRepo)
	container.AuthSvc = NewAuthService(cfg, repos.UserRepo)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.ClientSvcFacade    = (*clientService)(nil)
	_ portssvc.PlanSvcFacade      = (*planService)(nil)
	_ portssvc.LiabilitySvcFacade = (*liabilityService)(nil)
	_ portssvc.ReportSvcFacade    = (*reportService)(nil)
	_ portssvc.UserSvcFacade      = (*userService)(nil)
	_ portssvc.AuthSvcFacade      = (*authService)(nil)
)
