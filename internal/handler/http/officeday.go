package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/officetrack/officeday-backend-go/internal/domain/calendar"
	"github.com/officetrack/officeday-backend-go/internal/handler/http/response"
)

type OfficeDayHandler interface {
	Log(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Permissions(w http.ResponseWriter, r *http.Request)
}

type officeDayHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewOfficeDayHandler(calendarService calendar.CalendarService) OfficeDayHandler {
	return &officeDayHandlerImpl{
		calendarService: calendarService,
	}
}

// Log implements OfficeDayHandler.
func (h *officeDayHandlerImpl) Log(w http.ResponseWriter, r *http.Request) {
	var req calendar.LogOfficeDayRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Failed to decode log office day request", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	session := calendar.Session{}
	if err := h.calendarService.LogOfficeDay(r.Context(), &session, req.Day(time.Now(), time.Local)); err != nil {
		slog.Error("Failed to log office day", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Office day logged", nil)
}

// List implements OfficeDayHandler.
func (h *officeDayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	monthsBack := 0
	if v := r.URL.Query().Get("months_back"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "months_back must be a non-negative integer", nil)
			return
		}
		monthsBack = parsed
	}

	session := calendar.Session{}
	officeDays, err := h.calendarService.LoadRecentOfficeDays(r.Context(), &session, monthsBack)
	if err != nil {
		slog.Error("Failed to load office days", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]calendar.OfficeDayResponse, 0, len(officeDays))
	for _, day := range officeDays {
		items = append(items, calendar.ToOfficeDayResponse(day))
	}

	response.Success(w, calendar.ListOfficeDaysResponse{
		OfficeDays: items,
		Total:      len(items),
	})
}

// Today implements OfficeDayHandler.
func (h *officeDayHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	session := calendar.Session{}
	logged := h.calendarService.HasOfficeDayToday(r.Context(), &session)

	response.Success(w, calendar.TodayResponse{LoggedToday: logged})
}

// Delete implements OfficeDayHandler.
func (h *officeDayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		response.BadRequest(w, "Event id is required", nil)
		return
	}

	session := calendar.Session{}
	if err := h.calendarService.DeleteOfficeDay(r.Context(), &session, eventID); err != nil {
		slog.Error("Failed to delete office day", "error", err, "event_id", eventID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office day deleted", nil)
}

// Permissions implements OfficeDayHandler.
func (h *officeDayHandlerImpl) Permissions(w http.ResponseWriter, r *http.Request) {
	granted := h.calendarService.HasPermissions(r.Context())
	response.Success(w, calendar.PermissionsResponse{Granted: granted})
}
