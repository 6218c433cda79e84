package employee

import "context"

// EmployeeRepository defines data access methods for employees. Employees are
// addressed by their business employee ID, not the surrogate row ID.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *Employee) error
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp *Employee) error

	// Delete removes the employee and cascades its attendance records.
	Delete(ctx context.Context, employeeID string) error

	Count(ctx context.Context) (int64, error)
}

type EmployeeService interface {
	Create(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	Get(ctx context.Context, employeeID string) (*EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}
