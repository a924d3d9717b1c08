package services

import (
	portsrepo "github.com/crestprop/lease_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/crestprop/lease_ledger_app/internal/core/ports/services"
	"github.com/crestprop/lease_ledger_app/internal/platform/config"
)

// Container holds all the services and manages their dependencies.
type Container struct {
	Voucher      portssvc.VoucherSvcFacade
	Account      portssvc.AccountSvcFacade
	Contract     portssvc.ContractSvcFacade
	LeaseInvoice portssvc.LeaseInvoiceSvcFacade
	MasterData   portssvc.MasterDataSvcFacade
	User         portssvc.UserSvcFacade
	Token        portssvc.TokenSvcFacade
	GoogleOAuth  portssvc.GoogleOAuthHandlerSvcFacade
	Reporting    portssvc.ReportingSvcFacade
}

// NewContainer creates a new service container with properly initialized dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *Container {
	container := &Container{}

	container.User = NewUserService(repos.UserRepo)
	container.Account = NewAccountService(repos.AccountRepo)
	container.MasterData = NewMasterDataService(repos.MasterDataRepo)

	// The voucher service needs the user service for approval role checks.
	container.Voucher = NewVoucherService(repos.VoucherRepo, repos.AccountRepo, container.User)

	container.Contract = NewContractService(repos.ContractRepo, repos.AccountRepo)
	container.LeaseInvoice = NewLeaseInvoiceService(repos.ContractRepo, container.Voucher)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.VoucherSvcFacade            = (*voucherService)(nil)
	_ portssvc.AccountSvcFacade            = (*accountService)(nil)
	_ portssvc.ContractSvcFacade           = (*contractService)(nil)
	_ portssvc.LeaseInvoiceSvcFacade       = (*leaseInvoiceService)(nil)
	_ portssvc.MasterDataSvcFacade         = (*masterDataService)(nil)
	_ portssvc.UserSvcFacade               = (*userService)(nil)
	_ portssvc.TokenSvcFacade              = (*tokenService)(nil)
	_ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)
	_ portssvc.ReportingSvcFacade          = (*reportingService)(nil)
)
