package employee

import (
	"context"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/hrmslite/hrms-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	attendance.AttendanceRepository
}

func NewEmployeeService(db *database.DB, repo employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{db: db, EmployeeRepository: repo, AttendanceRepository: attendanceRepo}
}

func toResponse(emp *employee.Employee) *employee.EmployeeResponse {
	return &employee.EmployeeResponse{
		ID:          emp.ID,
		EmployeeID:  emp.EmployeeID,
		FullName:    emp.FullName,
		Email:       emp.Email,
		Department:  emp.Department,
		Designation: emp.Designation,
		Status:      string(emp.Status),
		CreatedAt:   emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req *employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp := &employee.Employee{
		EmployeeID:  req.EmployeeID,
		FullName:    req.FullName,
		Email:       req.Email,
		Department:  req.Department,
		Designation: req.Designation,
		Status:      employee.StatusActive,
	}
	if err := s.EmployeeRepository.Create(ctx, emp); err != nil {
		return nil, err
	}
	return toResponse(emp), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, employeeID string) (*employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, *toResponse(&employees[i]))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req *employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Designation != nil {
		emp.Designation = *req.Designation
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return nil, err
	}
	return toResponse(emp), nil
}

// Delete removes the employee together with their attendance records.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, employeeID string) error {
	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.AttendanceRepository.DeleteByEmployee(ctx, employeeID); err != nil {
			return err
		}
		return s.EmployeeRepository.Delete(ctx, employeeID)
	})
}
