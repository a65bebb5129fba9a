package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riwi/jobboard-backend/pkg/enums"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
)

const (
	allow     = ""
	noAuth    = pkgerrors.CodeUnauthorized
	forbidden = pkgerrors.CodeForbidden
)

func TestDecideRoleMatrix(t *testing.T) {
	type row struct {
		op                         Operation
		anon, admin, gestor, coder pkgerrors.Code
	}
	matrix := []row{
		{OpAuthRegister, allow, allow, allow, allow},
		{OpAuthLogin, allow, allow, allow, allow},
		{OpAuthLogout, allow, allow, allow, allow},
		{OpApplicationsApply, noAuth, forbidden, forbidden, allow},
		{OpApplicationsList, noAuth, allow, allow, forbidden},
		{OpApplicationsListMine, noAuth, forbidden, forbidden, allow},
		{OpApplicationsListByVacancy, noAuth, allow, allow, forbidden},
		{OpApplicationsRemove, noAuth, allow, forbidden, forbidden},
		{OpApplicationsUpdateStatus, noAuth, allow, allow, forbidden},
		{OpVacanciesCreate, noAuth, allow, allow, forbidden},
		{OpVacanciesList, noAuth, allow, allow, allow},
		{OpVacanciesListPublic, allow, allow, allow, allow},
		{OpVacanciesGet, noAuth, allow, allow, allow},
		{OpVacanciesUpdate, noAuth, allow, allow, forbidden},
		{OpVacanciesToggleActive, noAuth, allow, allow, forbidden},
		{OpVacanciesDelete, noAuth, allow, forbidden, forbidden},
		{OpUsersList, noAuth, allow, forbidden, forbidden},
		{OpUsersGet, noAuth, allow, forbidden, forbidden},
		{OpUsersUpdate, noAuth, allow, forbidden, forbidden},
		{OpUsersDelete, noAuth, allow, forbidden, forbidden},
	}
	require.Len(t, matrix, len(Operations()), "every registered operation needs a matrix row")

	principals := []struct {
		name string
		p    *Principal
		pick func(row) pkgerrors.Code
	}{
		{"anonymous", nil, func(r row) pkgerrors.Code { return r.anon }},
		{"admin", &Principal{UserID: 1, Role: enums.RoleAdmin}, func(r row) pkgerrors.Code { return r.admin }},
		{"gestor", &Principal{UserID: 2, Role: enums.RoleGestor}, func(r row) pkgerrors.Code { return r.gestor }},
		{"coder", &Principal{UserID: 3, Role: enums.RoleCoder}, func(r row) pkgerrors.Code { return r.coder }},
	}

	for _, r := range matrix {
		for _, pr := range principals {
			want := pr.pick(r)
			err := Decide(pr.p, r.op)
			if want == allow {
				assert.NoError(t, err, "%s as %s", r.op, pr.name)
				continue
			}
			assert.True(t, pkgerrors.IsCode(err, want), "%s as %s: expected %s, got %v", r.op, pr.name, want, err)
		}
	}
}

func TestDecideUnknownOperationFailsClosed(t *testing.T) {
	err := Decide(&Principal{Role: enums.RoleAdmin}, Operation("vacancies.explode"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInternal))
}

func TestDecideUnknownRoleIsForbidden(t *testing.T) {
	err := Decide(&Principal{Role: enums.Role("intern")}, OpVacanciesCreate)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeForbidden))
}

func TestPolicyFor(t *testing.T) {
	p, ok := PolicyFor(OpVacanciesListPublic)
	require.True(t, ok)
	assert.True(t, p.Public)

	_, ok = PolicyFor(Operation("missing"))
	assert.False(t, ok)
}

func TestPrincipalContextRoundTrip(t *testing.T) {
	assert.Nil(t, PrincipalFrom(context.Background()))

	p := &Principal{UserID: 9, Email: "a@b.c", Role: enums.RoleCoder}
	ctx := WithPrincipal(context.Background(), p)
	assert.Same(t, p, PrincipalFrom(ctx))
}
