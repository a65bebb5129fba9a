// Package access holds the role-based permission table. Every route names an
// Operation and the Authorize middleware asks Decide whether the current
// principal may perform it.
package access

import (
	"github.com/riwi/jobboard-backend/pkg/enums"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
)

// Operation names one API operation.
type Operation string

const (
	OpAuthRegister Operation = "auth.register"
	OpAuthLogin    Operation = "auth.login"
	OpAuthLogout   Operation = "auth.logout"

	OpApplicationsApply         Operation = "applications.apply"
	OpApplicationsList          Operation = "applications.list"
	OpApplicationsListMine      Operation = "applications.list_mine"
	OpApplicationsListByVacancy Operation = "applications.list_by_vacancy"
	OpApplicationsRemove        Operation = "applications.remove"
	OpApplicationsUpdateStatus  Operation = "applications.update_status"

	OpVacanciesCreate       Operation = "vacancies.create"
	OpVacanciesList         Operation = "vacancies.list"
	OpVacanciesListPublic   Operation = "vacancies.list_public"
	OpVacanciesGet          Operation = "vacancies.get"
	OpVacanciesUpdate       Operation = "vacancies.update"
	OpVacanciesToggleActive Operation = "vacancies.toggle_active"
	OpVacanciesDelete       Operation = "vacancies.delete"

	OpUsersList   Operation = "users.list"
	OpUsersGet    Operation = "users.get"
	OpUsersUpdate Operation = "users.update"
	OpUsersDelete Operation = "users.delete"
)

// Policy describes who may perform an operation. Public operations need no
// principal. A non-public policy with no roles admits any authenticated
// principal.
type Policy struct {
	Public bool
	Roles  []enums.Role
}

var (
	anyone        = Policy{Public: true}
	authenticated = Policy{}
	adminOnly     = Policy{Roles: []enums.Role{enums.RoleAdmin}}
	staff         = Policy{Roles: []enums.Role{enums.RoleAdmin, enums.RoleGestor}}
	coderOnly     = Policy{Roles: []enums.Role{enums.RoleCoder}}
)

var permissions = map[Operation]Policy{
	OpAuthRegister: anyone,
	OpAuthLogin:    anyone,
	OpAuthLogout:   anyone,

	OpApplicationsApply:         coderOnly,
	OpApplicationsList:          staff,
	OpApplicationsListMine:      coderOnly,
	OpApplicationsListByVacancy: staff,
	OpApplicationsRemove:        adminOnly,
	OpApplicationsUpdateStatus:  staff,

	OpVacanciesCreate:       staff,
	OpVacanciesList:         authenticated,
	OpVacanciesListPublic:   anyone,
	OpVacanciesGet:          authenticated,
	OpVacanciesUpdate:       staff,
	OpVacanciesToggleActive: staff,
	OpVacanciesDelete:       adminOnly,

	OpUsersList:   adminOnly,
	OpUsersGet:    adminOnly,
	OpUsersUpdate: adminOnly,
	OpUsersDelete: adminOnly,
}

// PolicyFor returns the policy registered for op.
func PolicyFor(op Operation) (Policy, bool) {
	p, ok := permissions[op]
	return p, ok
}

// Operations lists every registered operation.
func Operations() []Operation {
	ops := make([]Operation, 0, len(permissions))
	for op := range permissions {
		ops = append(ops, op)
	}
	return ops
}

// Decide returns nil when principal may perform op. Unknown operations are
// denied with an internal error.
func Decide(principal *Principal, op Operation) error {
	policy, ok := permissions[op]
	if !ok {
		return pkgerrors.Newf(pkgerrors.CodeInternal, "no access policy registered for %q", op)
	}
	if policy.Public {
		return nil
	}
	if principal == nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "Authentication required")
	}
	if len(policy.Roles) == 0 {
		return nil
	}
	for _, role := range policy.Roles {
		if principal.Role == role {
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeForbidden, "You do not have permission to perform this action")
}
