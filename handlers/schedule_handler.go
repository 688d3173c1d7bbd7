package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/Dosada05/championship/services"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

func NewScheduleHandler(scheduleService services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// TeamPairings godoc
// @Summary League schedule
// @Description Round-robin over clubs built from complete registrations.
// @Tags schedules
// @Produce json
// @Param legs query int false "1 or 2" default(1)
// @Param q query string false "Fuzzy filter on club, league or player"
// @Success 200 {object} brackets.Schedule
// @Failure 400 {object} map[string]string
// @Router /team-pairings [get]
func (h *ScheduleHandler) TeamPairings(w http.ResponseWriter, r *http.Request) {
	opts, err := pairingsOptions(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	schedule, err := h.scheduleService.TeamPairings(r.Context(), opts)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, schedule, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Knockout godoc
// @Summary Knockout bracket
// @Tags schedules
// @Produce json
// @Param seed query int false "Shuffle seed for a reproducible draw"
// @Success 200 {object} brackets.TournamentResult
// @Failure 400 {object} map[string]string
// @Router /knockout [get]
func (h *ScheduleHandler) Knockout(w http.ResponseWriter, r *http.Request) {
	seed, err := querySeed(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.scheduleService.Knockout(r.Context(), seed)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Playoffs godoc
// @Summary Random playoff round over individual players
// @Tags schedules
// @Produce json
// @Param seed query int false "Shuffle seed"
// @Success 200 {object} brackets.PlayoffResult
// @Failure 400 {object} map[string]string
// @Router /playoffs [get]
func (h *ScheduleHandler) Playoffs(w http.ResponseWriter, r *http.Request) {
	seed, err := querySeed(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.scheduleService.Playoffs(r.Context(), seed)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportPairings godoc
// @Summary League schedule as an Excel workbook
// @Tags schedules
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param legs query int false "1 or 2" default(1)
// @Param q query string false "Fuzzy filter"
// @Success 200 {file} file
// @Router /team-pairings/export.xlsx [get]
func (h *ScheduleHandler) ExportPairings(w http.ResponseWriter, r *http.Request) {
	opts, err := pairingsOptions(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.scheduleService.ExportPairings(r.Context(), opts, &buf); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeWorkbook(w, r, "team-pairings.xlsx", &buf)
}

// ExportKnockout godoc
// @Summary Knockout bracket as an Excel workbook
// @Tags schedules
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param seed query int false "Shuffle seed"
// @Success 200 {file} file
// @Router /knockout/export.xlsx [get]
func (h *ScheduleHandler) ExportKnockout(w http.ResponseWriter, r *http.Request) {
	seed, err := querySeed(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.scheduleService.ExportKnockout(r.Context(), seed, &buf); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeWorkbook(w, r, "knockout.xlsx", &buf)
}

// Publish godoc
// @Summary Publish the league schedule to object storage
// @Tags admin
// @Produce json
// @Param legs query int false "1 or 2" default(1)
// @Success 201 {object} storage.UploadResult
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string "Storage not configured"
// @Security BearerAuth
// @Router /schedules/publish [post]
func (h *ScheduleHandler) Publish(w http.ResponseWriter, r *http.Request) {
	legs, err := queryLegs(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.scheduleService.Publish(r.Context(), legs)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Unpublish godoc
// @Summary Remove a published schedule
// @Tags admin
// @Param scheduleID path string true "Published schedule id"
// @Success 204
// @Failure 422 {object} map[string]interface{}
// @Security BearerAuth
// @Router /schedules/{scheduleID} [delete]
func (h *ScheduleHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.Unpublish(r.Context(), chi.URLParam(r, "scheduleID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pairingsOptions(r *http.Request) (services.PairingsOptions, error) {
	legs, err := queryLegs(r)
	if err != nil {
		return services.PairingsOptions{}, err
	}
	return services.PairingsOptions{Legs: legs, Query: r.URL.Query().Get("q")}, nil
}

func writeWorkbook(w http.ResponseWriter, r *http.Request, filename string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		serverErrorResponse(w, r, err)
	}
}
