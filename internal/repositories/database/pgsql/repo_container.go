package pgsql

import (
	portsrepo "github.com/crestprop/lease_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		VoucherRepo:    newPgxVoucherRepository(dbPool),
		AccountRepo:    newPgxAccountRepository(dbPool),
		ContractRepo:   newPgxContractRepository(dbPool),
		MasterDataRepo: newPgxMasterDataRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
		ReportingRepo:  newPgxReportingRepository(dbPool),
	}
}
