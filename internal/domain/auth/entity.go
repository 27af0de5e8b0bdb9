package auth

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleGuard      Role = "VIGILANTE"
	RoleHR         Role = "RH"
	RoleAuditor    Role = "AUDITOR"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleGuard, RoleHR, RoleAuditor:
		return true
	}
	return false
}

// Operator is a person allowed to open a console session.
type Operator struct {
	ID           string
	Name         string
	CPF          string
	Role         Role
	Registration *string
	PasswordHash string
}

// OperatorDirectory resolves operators by CPF.
type OperatorDirectory interface {
	FindByCPF(cpf string) (Operator, bool)
}
