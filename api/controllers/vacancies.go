package controllers

import (
	"net/http"

	"github.com/riwi/jobboard-backend/api/responses"
	"github.com/riwi/jobboard-backend/api/validators"
	"github.com/riwi/jobboard-backend/internal/vacancies"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/logger"
)

const vacancyIDParam = "id"

func vacancyServiceUnavailable(w http.ResponseWriter, r *http.Request, logg *logger.Logger) {
	err := pkgerrors.New(pkgerrors.CodeInternal, "vacancy service unavailable")
	responses.WriteError(r.Context(), logg, w, r, err)
}

// VacancyCreate handles POST /vacancies.
func VacancyCreate(svc vacancies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			vacancyServiceUnavailable(w, r, logg)
			return
		}

		var body vacancies.CreateVacancyRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		vacancy, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, vacancy, "")
	}
}

// VacancyListActive serves both the authenticated and the public listing.
func VacancyListActive(svc vacancies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			vacancyServiceUnavailable(w, r, logg)
			return
		}

		list, err := svc.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func VacancyGet(svc vacancies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			vacancyServiceUnavailable(w, r, logg)
			return
		}

		id, err := validators.ParseIDParam(r, vacancyIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		vacancy, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, vacancy)
	}
}

func VacancyUpdate(svc vacancies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			vacancyServiceUnavailable(w, r, logg)
			return
		}

		id, err := validators.ParseIDParam(r, vacancyIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		var body vacancies.UpdateVacancyRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		vacancy, err := svc.Update(r.Context(), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, vacancy)
	}
}

// VacancyToggleActive flips the active flag; the body is ignored.
func VacancyToggleActive(svc vacancies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			vacancyServiceUnavailable(w, r, logg)
			return
		}

		id, err := validators.ParseIDParam(r, vacancyIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		vacancy, err := svc.ToggleActive(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, vacancy)
	}
}

func VacancyDelete(svc vacancies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			vacancyServiceUnavailable(w, r, logg)
			return
		}

		id, err := validators.ParseIDParam(r, vacancyIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
