package controllers

import (
	"net/http"

	"github.com/riwi/jobboard-backend/api/responses"
	"github.com/riwi/jobboard-backend/api/validators"
	"github.com/riwi/jobboard-backend/internal/access"
	"github.com/riwi/jobboard-backend/internal/applications"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/logger"
)

func applicationServiceUnavailable(w http.ResponseWriter, r *http.Request, logg *logger.Logger) {
	err := pkgerrors.New(pkgerrors.CodeInternal, "application service unavailable")
	responses.WriteError(r.Context(), logg, w, r, err)
}

func requirePrincipal(r *http.Request) (*access.Principal, error) {
	principal := access.PrincipalFrom(r.Context())
	if principal == nil || principal.UserID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authentication required")
	}
	return principal, nil
}

// ApplicationApply handles POST /applications/apply for the signed-in coder.
func ApplicationApply(svc applications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			applicationServiceUnavailable(w, r, logg)
			return
		}

		principal, err := requirePrincipal(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		var body applications.ApplyRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		created, err := svc.Apply(r.Context(), principal.UserID, body.VacancyID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created, "")
	}
}

func ApplicationList(svc applications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			applicationServiceUnavailable(w, r, logg)
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func ApplicationListMine(svc applications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			applicationServiceUnavailable(w, r, logg)
			return
		}

		principal, err := requirePrincipal(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		list, err := svc.ListMine(r.Context(), principal.UserID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func ApplicationListByVacancy(svc applications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			applicationServiceUnavailable(w, r, logg)
			return
		}

		vacancyID, err := validators.ParseIDParam(r, "vacancyId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		list, err := svc.ListByVacancy(r.Context(), vacancyID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func ApplicationRemove(svc applications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			applicationServiceUnavailable(w, r, logg)
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		if err := svc.Remove(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// ApplicationUpdateStatus moves an application through the review workflow.
func ApplicationUpdateStatus(svc applications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			applicationServiceUnavailable(w, r, logg)
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		var body applications.UpdateStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		updated, err := svc.UpdateStatus(r.Context(), id, body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}
