package employee

import (
	"context"

	"hrpulse/internal/domain/auth"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) CredentialsByEmail(ctx context.Context, email string) (Credentials, error) {
	return s.store.CredentialsByEmail(ctx, email)
}

func (s *Service) GetEmployee(ctx context.Context, employeeID string) (Employee, error) {
	return s.store.GetEmployee(ctx, employeeID)
}

func (s *Service) IsManagerOf(ctx context.Context, employeeID, managerID string) (bool, error) {
	return s.store.IsManagerOf(ctx, employeeID, managerID)
}

// EmployeeContext hydrates the caller from the store. This runs on every
// authenticated request; the token is never the source of role or manager.
func (s *Service) EmployeeContext(ctx context.Context, employeeID string) (auth.EmployeeContext, error) {
	emp, err := s.store.GetEmployee(ctx, employeeID)
	if err != nil {
		return auth.EmployeeContext{}, err
	}
	return auth.EmployeeContext{
		EmployeeID: emp.ID,
		Role:       emp.Role,
		ManagerID:  emp.ManagerID,
	}, nil
}
