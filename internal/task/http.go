package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"chorepet/internal/event"
	"chorepet/internal/model"
)

type Handler struct {
	svc *Service
	hub *event.Hub

	// clock is swappable in tests
	clock func() time.Time
}

func NewHandler(svc *Service, hub *event.Hub) *Handler {
	return &Handler{
		svc:   svc,
		hub:   hub,
		clock: time.Now,
	}
}

func (h *Handler) SetClock(fn func() time.Time) {
	h.clock = fn
}

func (h *Handler) today() string {
	return h.clock().Format(model.DateLayout)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func (h *Handler) publish(events []event.Event) {
	if h.hub != nil {
		h.hub.Publish(events...)
	}
}

// Tasks handles GET /tasks.
func (h *Handler) Tasks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ts, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tasksOrEmpty(ts))
}

// Today handles GET /tasks/today.
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ts, err := h.svc.ListByDate(r.Context(), h.today())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tasksOrEmpty(ts))
}

// Overdue handles GET /tasks/overdue.
func (h *Handler) Overdue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ts, err := h.svc.ListOverdue(r.Context(), h.today())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tasksOrEmpty(ts))
}

// Upcoming handles GET /tasks/upcoming.
func (h *Handler) Upcoming(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ts, err := h.svc.ListUpcoming(r.Context(), h.today())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tasksOrEmpty(ts))
}

// Streak handles GET /tasks/streak.
func (h *Handler) Streak(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	n, err := h.svc.Streak(r.Context(), h.today())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"streak": n})
}

// Add handles POST /add.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var in struct {
		Name       string `json:"task_name"`
		Date       string `json:"task_date"`
		Difficulty string `json:"task_difficulty"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return
	}

	t, events, err := h.svc.AddTask(r.Context(), in.Name, in.Date, in.Difficulty)
	switch {
	case errors.Is(err, ErrEmptyField), errors.Is(err, ErrBadDate):
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, ErrDuplicate):
		writeErr(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publish(events)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Task added successfully!",
		"task":    t,
	})
}

// Complete handles POST /tasks/complete.
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var in struct {
		TaskID    int  `json:"task_id"`
		Completed bool `json:"completed"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return
	}

	money, events, err := h.svc.ToggleCompletion(r.Context(), in.TaskID, in.Completed)
	if errors.Is(err, ErrNotFound) {
		writeErr(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publish(events)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Task updated successfully",
		"new_money": money,
	})
}

// Delete handles DELETE /delete/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	raw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/delete/"), "/")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeErr(w, http.StatusNotFound, "task not found")
		return
	}

	events, err := h.svc.DeleteTask(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		writeErr(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publish(events)
	writeJSON(w, http.StatusOK, map[string]any{"message": "Task deleted successfully!"})
}

func tasksOrEmpty(ts []model.Task) []model.Task {
	if ts == nil {
		return []model.Task{}
	}
	return ts
}
