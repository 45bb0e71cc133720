package services

// ServiceContainer bundles every service facade for injection into the
// HTTP handlers.
type ServiceContainer struct {
	ClientSvc    ClientSvcFacade
	PlanSvc      PlanSvcFacade
	LiabilitySvc LiabilitySvcFacade
	ReportSvc    ReportSvcFacade
	UserSvc      UserSvcFacade
	AuthSvc      AuthSvcFacade
}
