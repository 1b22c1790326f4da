package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taskbridge/taskbridge/internal/api/shared"
	"github.com/taskbridge/taskbridge/internal/config"
	"github.com/taskbridge/taskbridge/internal/domain"
	"github.com/taskbridge/taskbridge/internal/queue"
)

// HealthResponse is the fixed payload returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// SubmitTaskResponse confirms a successful task submission.
type SubmitTaskResponse struct {
	Message string `json:"message"`
}

// TaskHandler handles task submission HTTP requests.
type TaskHandler struct {
	brokerCfg *config.BrokerConfig
	publisher queue.Publisher
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(
	brokerCfg *config.BrokerConfig,
	publisher queue.Publisher,
	logger *slog.Logger,
) *TaskHandler {
	return &TaskHandler{
		brokerCfg: brokerCfg,
		publisher: publisher,
		logger:    logger,
	}
}

// HealthCheck handles GET / requests. It always reports success; broker state
// is deliberately not probed here.
func (h *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("health check called", "remote_addr", r.RemoteAddr)
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "API Server is running"})
}

// SubmitTask handles POST /submit_task requests.
//
// The flow is strictly linear: decode, validate, check broker configuration,
// publish, respond. Rate limiting happens in middleware before this handler
// runs. Every outcome is converted to an HTTP response here; nothing
// propagates to the server as an unhandled fault.
func (h *TaskHandler) SubmitTask(w http.ResponseWriter, r *http.Request) {
	var task domain.Task
	if err := shared.DecodeJSON(r, &task); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if err := shared.ValidateRequest(&task); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	// The broker URL is checked per request rather than at startup so a
	// misconfigured deployment still boots and health-checks; submissions
	// report the problem until the URL is set.
	if h.brokerCfg.URL == "" {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			GetSafeErrorMessage(ErrBrokerNotConfigured), ErrBrokerNotConfigured)
		return
	}

	body, err := json.Marshal(task)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Info("received valid task",
		"remote_addr", r.RemoteAddr,
		"keyword", task.Keyword,
		"email", task.Email,
		"trace_id", shared.GetTraceID(r.Context()))

	if err := h.publisher.Publish(r.Context(), body); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Info("task published to queue",
		"queue", h.brokerCfg.Queue,
		"keyword", task.Keyword,
		"trace_id", shared.GetTraceID(r.Context()))

	shared.RespondWithJSON(w, r, http.StatusOK, SubmitTaskResponse{Message: "Task submitted successfully"})
}
