package employee

import "context"

type StoreAPI interface {
	CredentialsByEmail(ctx context.Context, email string) (Credentials, error)
	GetEmployee(ctx context.Context, employeeID string) (Employee, error)
	IsManagerOf(ctx context.Context, employeeID, managerID string) (bool, error)
}
