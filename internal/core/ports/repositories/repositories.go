package repositories

// RepositoryProvider bundles every repository an application container needs.
type RepositoryProvider struct {
	VoucherRepo    VoucherRepositoryFacade
	AccountRepo    AccountRepositoryFacade
	ContractRepo   ContractRepositoryFacade
	MasterDataRepo MasterDataRepositoryFacade
	UserRepo       UserRepositoryFacade
	ReportingRepo  ReportingRepository
}
