package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	ClientRepo    ClientRepository
	PlanRepo      PlanRepository
	LiabilityRepo LiabilityRepository
	UserRepo      UserRepository
	PlanCache     PlanCache
}
