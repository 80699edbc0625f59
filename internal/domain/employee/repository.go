package employee

import "context"

// EmployeeRepository defines data access for employee records. All methods
// take companyID to prevent cross-company access.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByIdentifier(ctx context.Context, identifier string, companyID string) (Employee, error)
	ListByCompanyID(ctx context.Context, companyID string, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, companyID string, req UpdateEmployeeRequest) error
	Deactivate(ctx context.Context, id string, companyID string) error
}
