package fixtures

import (
	"fmt"

	"github.com/srad-secure/srad-backend-go/internal/domain/auth"
	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

// consoleOperators are the fixed console identities. Logins are looked up by
// CPF only; every operator shares the demo password.
var consoleOperators = []auth.Operator{
	{ID: "u1", Name: "Diretoria SRAD", CPF: "000", Role: auth.RoleAdmin},
	{ID: "u2", Name: "SVP Regional Alpha", CPF: "111", Role: auth.RoleSupervisor},
	{ID: "u3", Name: "João Silva", CPF: "222", Role: auth.RoleGuard, Registration: strPtr("1001")},
	{ID: "u4", Name: "RH Mariana", CPF: "333", Role: auth.RoleHR},
	{ID: "u5", Name: "Auditoria Externa", CPF: "444", Role: auth.RoleAuditor},
}

// OperatorDirectory is an in-memory auth.OperatorDirectory
type OperatorDirectory struct {
	byCPF map[string]auth.Operator
}

// NewOperatorDirectory hashes password for every console operator.
func NewOperatorDirectory(password string, cost int) (*OperatorDirectory, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	d := &OperatorDirectory{byCPF: make(map[string]auth.Operator, len(consoleOperators))}
	for _, op := range consoleOperators {
		op.PasswordHash = string(hash)
		d.byCPF[op.CPF] = op
	}
	return d, nil
}

func (d *OperatorDirectory) FindByCPF(cpf string) (auth.Operator, bool) {
	op, ok := d.byCPF[validator.DigitsOnly(cpf)]
	return op, ok
}
