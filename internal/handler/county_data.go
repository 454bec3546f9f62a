// Package handler exposes the HTTP handlers for the API. This file
// implements the county_data endpoint: validate the payload, resolve the
// ZIP to a county FIPS code, then fetch the matching health records.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cs1060f25/perdogarcia-hw4/internal/model"
	"github.com/cs1060f25/perdogarcia-hw4/internal/repository"
	"github.com/cs1060f25/perdogarcia-hw4/internal/validate"
)

// CountyDataHandler bundles dependencies for the county_data endpoint.
type CountyDataHandler struct {
	Repo *repository.HealthRepo
}

// NewCountyDataHandler constructs the handler around a health data
// repository.
func NewCountyDataHandler(repo *repository.HealthRepo) *CountyDataHandler {
	return &CountyDataHandler{Repo: repo}
}

// noDataMsg is shared by the unknown-ZIP and no-rows-for-measure outcomes.
// The two cases are distinguishable inside the resolver (ErrZipNotFound vs
// an empty slice) but the external contract flattens them to one response.
const noDataMsg = "No data found for the given zip code and measure"

// CountyData handles POST /county_data. Validation runs entirely before any
// store access, and lookup values travel to the store as bound parameters
// only, so a payload full of SQL syntax can at worst produce the not-found
// response.
func (h *CountyDataHandler) CountyData(c echo.Context) error {
	var body map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil || len(body) == 0 {
		// Missing body, non-JSON body, a JSON value that is not an
		// object, or an empty object all land here.
		return apiError(c, http.StatusBadRequest, "Request must contain JSON data")
	}

	zip, measure, err := validate.Payload(body)
	if err != nil {
		switch {
		case errors.Is(err, validate.ErrTeapot):
			return apiError(c, http.StatusTeapot, "I'm a teapot")
		case errors.Is(err, validate.ErrMissingZip):
			return apiError(c, http.StatusBadRequest, "Missing required parameter: zip")
		case errors.Is(err, validate.ErrMissingMeasure):
			return apiError(c, http.StatusBadRequest, "Missing required parameter: measure_name")
		case errors.Is(err, validate.ErrZipFormat):
			return apiError(c, http.StatusNotFound, "Invalid zip code format. Must be 5 digits.")
		case errors.Is(err, validate.ErrUnknownMeasure):
			return apiError(c, http.StatusNotFound, "Invalid measure_name")
		}
		return apiError(c, http.StatusInternalServerError, "Internal server error")
	}

	ctx := c.Request().Context()
	fips, err := h.Repo.CountyCodeForZip(ctx, zip)
	if err != nil {
		if errors.Is(err, repository.ErrZipNotFound) {
			return apiError(c, http.StatusNotFound, noDataMsg)
		}
		return storeError(c, err)
	}

	records, err := h.Repo.RecordsForCountyMeasure(ctx, fips, measure)
	if err != nil {
		return storeError(c, err)
	}
	if len(records) == 0 {
		return apiError(c, http.StatusNotFound, noDataMsg)
	}
	return c.JSON(http.StatusOK, records)
}

// storeError reports a store failure without leaking driver error text to
// the caller. The wrapped detail goes to the log only.
func storeError(c echo.Context, err error) error {
	c.Logger().Error(err)
	if errors.Is(err, repository.ErrStoreNotFound) {
		return apiError(c, http.StatusInternalServerError, "Database not found")
	}
	return apiError(c, http.StatusInternalServerError, "Database error")
}

// apiError writes the stable two-field error envelope.
func apiError(c echo.Context, status int, msg string) error {
	return c.JSON(status, model.APIError{Error: msg, Status: status})
}
