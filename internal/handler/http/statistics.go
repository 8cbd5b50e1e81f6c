package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/officetrack/officeday-backend-go/internal/domain/calendar"
	"github.com/officetrack/officeday-backend-go/internal/domain/statistics"
	"github.com/officetrack/officeday-backend-go/internal/handler/http/response"
)

// historyMonthsBack is how far the year/month selector endpoints look for
// logged office days.
const historyMonthsBack = 60

type StatisticsHandler interface {
	Month(w http.ResponseWriter, r *http.Request)
	Quarter(w http.ResponseWriter, r *http.Request)
	Year(w http.ResponseWriter, r *http.Request)
	Range(w http.ResponseWriter, r *http.Request)
	Years(w http.ResponseWriter, r *http.Request)
	Months(w http.ResponseWriter, r *http.Request)
	GetQuarterConfig(w http.ResponseWriter, r *http.Request)
	UpdateQuarterConfig(w http.ResponseWriter, r *http.Request)
	ResetQuarterConfig(w http.ResponseWriter, r *http.Request)
}

type statisticsHandlerImpl struct {
	statisticsService statistics.StatisticsService
	calendarService   calendar.CalendarService
}

func NewStatisticsHandler(statisticsService statistics.StatisticsService, calendarService calendar.CalendarService) StatisticsHandler {
	return &statisticsHandlerImpl{
		statisticsService: statisticsService,
		calendarService:   calendarService,
	}
}

// loadOfficeDayDates loads the office-day dates overlapping [start, end).
// Statistics calls take the current office-day set as an explicit argument,
// so every request reloads from the calendar store.
func (h *statisticsHandlerImpl) loadOfficeDayDates(r *http.Request, start, end time.Time) ([]time.Time, error) {
	session := calendar.Session{}
	events, err := h.calendarService.LoadOfficeDays(r.Context(), &session, start, end)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(events))
	for _, ev := range events {
		dates = append(dates, ev.StartDate)
	}
	return dates, nil
}

// yearWindow is the query window for a single statistics year, padded one day
// on each side so UTC-midnight boundary events are not cut off by the store's
// range filter.
func yearWindow(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return start, end
}

func queryInt(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	return v, err == nil
}

// Month implements StatisticsHandler.
func (h *statisticsHandlerImpl) Month(w http.ResponseWriter, r *http.Request) {
	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year is required", nil)
		return
	}
	month, ok := queryInt(r, "month")
	if !ok || month < 0 || month > 11 {
		response.BadRequest(w, "month must be an integer between 0 and 11", nil)
		return
	}

	start, end := yearWindow(year)
	officeDays, err := h.loadOfficeDayDates(r, start, end)
	if err != nil {
		slog.Error("Failed to load office days for month stats", "error", err)
		response.HandleError(w, err)
		return
	}

	stats, err := h.statisticsService.CalculateMonthStats(r.Context(), year, month, officeDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// Quarter implements StatisticsHandler.
func (h *statisticsHandlerImpl) Quarter(w http.ResponseWriter, r *http.Request) {
	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year is required", nil)
		return
	}
	quarter := statistics.Quarter(r.URL.Query().Get("quarter"))
	if !quarter.Valid() {
		response.BadRequest(w, "quarter must be one of Q1-Q4", nil)
		return
	}

	start, end := yearWindow(year)
	officeDays, err := h.loadOfficeDayDates(r, start, end)
	if err != nil {
		slog.Error("Failed to load office days for quarter stats", "error", err)
		response.HandleError(w, err)
		return
	}

	stats, err := h.statisticsService.CalculateQuarterStats(r.Context(), year, quarter, officeDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// Year implements StatisticsHandler.
func (h *statisticsHandlerImpl) Year(w http.ResponseWriter, r *http.Request) {
	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year is required", nil)
		return
	}

	start, end := yearWindow(year)
	officeDays, err := h.loadOfficeDayDates(r, start, end)
	if err != nil {
		slog.Error("Failed to load office days for year stats", "error", err)
		response.HandleError(w, err)
		return
	}

	stats, err := h.statisticsService.CalculateYearStats(r.Context(), year, officeDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// Range implements StatisticsHandler.
func (h *statisticsHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse("2006-01-02", r.URL.Query().Get("start"))
	if err != nil {
		response.BadRequest(w, "start must be a date in YYYY-MM-DD format", nil)
		return
	}
	end, err := time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err != nil {
		response.BadRequest(w, "end must be a date in YYYY-MM-DD format", nil)
		return
	}

	officeDays, err := h.loadOfficeDayDates(r, start.AddDate(0, 0, -1), end.AddDate(0, 0, 2))
	if err != nil {
		slog.Error("Failed to load office days for range stats", "error", err)
		response.HandleError(w, err)
		return
	}

	stats, err := h.statisticsService.CalculateCustomPeriodStats(r.Context(), start, end, officeDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// Years implements StatisticsHandler.
func (h *statisticsHandlerImpl) Years(w http.ResponseWriter, r *http.Request) {
	session := calendar.Session{}
	events, err := h.calendarService.LoadRecentOfficeDays(r.Context(), &session, historyMonthsBack)
	if err != nil {
		slog.Error("Failed to load office days for year list", "error", err)
		response.HandleError(w, err)
		return
	}

	dates := make([]time.Time, 0, len(events))
	for _, ev := range events {
		dates = append(dates, ev.StartDate)
	}

	response.Success(w, statistics.AvailableYearsResponse{
		Years: h.statisticsService.GetAvailableYears(dates),
	})
}

// Months implements StatisticsHandler.
func (h *statisticsHandlerImpl) Months(w http.ResponseWriter, r *http.Request) {
	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year is required", nil)
		return
	}

	start, end := yearWindow(year)
	officeDays, err := h.loadOfficeDayDates(r, start, end)
	if err != nil {
		slog.Error("Failed to load office days for month list", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, statistics.AvailableMonthsResponse{
		Year:   year,
		Months: h.statisticsService.GetAvailableMonths(year, officeDays),
	})
}

// GetQuarterConfig implements StatisticsHandler.
func (h *statisticsHandlerImpl) GetQuarterConfig(w http.ResponseWriter, r *http.Request) {
	config, err := h.statisticsService.GetQuarterConfig(r.Context())
	if err != nil {
		slog.Error("Failed to load quarter config", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, config)
}

// UpdateQuarterConfig implements StatisticsHandler.
func (h *statisticsHandlerImpl) UpdateQuarterConfig(w http.ResponseWriter, r *http.Request) {
	var req statistics.UpdateQuarterConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode quarter config request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.statisticsService.SetQuarterConfig(r.Context(), req.Config()); err != nil {
		slog.Error("Failed to store quarter config", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Quarter configuration updated", req.Config())
}

// ResetQuarterConfig implements StatisticsHandler.
func (h *statisticsHandlerImpl) ResetQuarterConfig(w http.ResponseWriter, r *http.Request) {
	config, err := h.statisticsService.ResetQuarterConfig(r.Context())
	if err != nil {
		slog.Error("Failed to reset quarter config", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Quarter configuration reset", config)
}
