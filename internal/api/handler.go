package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	interf "github.com/glkeru/rewards/internal/interfaces"
	model "github.com/glkeru/rewards/internal/models"
	services "github.com/glkeru/rewards/internal/services"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 16

type Handler struct {
	router      *mux.Router
	dashboard   *services.DashboardService
	payout      *services.PayoutService
	reconciler  *services.Reconciler
	completions *services.CompletionService
	gateway     interf.Gateway
	logger      *zap.Logger
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

// Стоимость курса берется из каталога, клиент ее не передает
type CourseProgressRequest struct {
	Progress int `json:"progress"`
}

func (r CourseProgressRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Progress, validation.Min(0)),
	)
}

type CourseProgressResponse struct {
	Progress      int   `json:"progress"`
	TokensAwarded int64 `json:"tokensAwarded"`
}

type ProjectProgressRequest struct {
	Completed bool `json:"completed"`
}

type ProjectProgressResponse struct {
	Completed     bool  `json:"completed"`
	TokensAwarded int64 `json:"tokensAwarded"`
}

type CompletionResponse struct {
	TokensAwarded int64 `json:"tokensAwarded"`
}

// internalToken защищает /completions. Пустой токен - маршрут не регистрируется
func NewHandler(dashboard *services.DashboardService, payout *services.PayoutService, reconciler *services.Reconciler,
	completions *services.CompletionService, gateway interf.Gateway, internalToken string, logger *zap.Logger) *Handler {
	router := mux.NewRouter()
	handler := &Handler{router, dashboard, payout, reconciler, completions, gateway, logger}
	router.Use(MiddlewareLog())
	router.HandleFunc("/payments/dashboard", MiddlewareUser(handler.DashboardHandler)).Methods(http.MethodGet)
	router.HandleFunc("/payments/history", MiddlewareUser(handler.HistoryHandler)).Methods(http.MethodGet)
	router.HandleFunc("/payments/cashout", MiddlewareUser(handler.CashoutHandler)).Methods(http.MethodPost)
	router.HandleFunc("/payments/webhook", handler.WebhookHandler).Methods(http.MethodPost)
	router.HandleFunc("/courses/{id}/progress", MiddlewareUser(handler.CourseProgressHandler)).Methods(http.MethodPost)
	router.HandleFunc("/projects/{id}/progress", MiddlewareUser(handler.ProjectProgressHandler)).Methods(http.MethodPut)
	if internalToken != "" {
		router.HandleFunc("/completions", MiddlewareInternal(internalToken, handler.CompletionHandler)).Methods(http.MethodPost)
	}

	return handler
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(w, req)
}

// Дополнительные маршруты (например /metrics) в том же роутере
func (h *Handler) Handle(path string, handler http.Handler) {
	h.router.Handle(path, handler)
}

func (h *Handler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(j)
}

// ошибка сервиса в HTTP статус
func errorStatus(err error) int {
	var verr validation.Errors
	switch {
	case errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrInsufficientBalance),
		errors.Is(err, model.ErrInvalidSignature),
		errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrGateway):
		return http.StatusBadGateway
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		return "Invalid token amount"
	case errors.Is(err, model.ErrInsufficientBalance):
		return "Insufficient tokens"
	case errors.Is(err, model.ErrGateway):
		return "Payment gateway error"
	case errors.Is(err, model.ErrInvalidSignature):
		return "Invalid signature"
	}
	if errorStatus(err) == http.StatusInternalServerError {
		return "Internal error"
	}
	return err.Error()
}

func (h *Handler) writeError(w http.ResponseWriter, service string, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.Log("Request failed", service, err)
	}
	writeJSON(w, status, ErrorResponse{errorMessage(err)})
}

// тело запроса в структуру
func decodeBody(req *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(req.Body, maxBodySize))
	if err != nil {
		return err
	}
	defer req.Body.Close()
	return json.Unmarshal(body, v)
}

// Баланс и история выплат
func (h *Handler) DashboardHandler(w http.ResponseWriter, req *http.Request) {
	dashboard, err := h.dashboard.Summary(req.Context(), userFrom(req.Context()))
	if err != nil {
		h.writeError(w, "DashboardHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *Handler) HistoryHandler(w http.ResponseWriter, req *http.Request) {
	history, err := h.dashboard.History(req.Context(), userFrom(req.Context()))
	if err != nil {
		h.writeError(w, "HistoryHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// Вывод токенов
func (h *Handler) CashoutHandler(w http.ResponseWriter, req *http.Request) {
	cashout := model.CashoutRequest{}
	err := decodeBody(req, &cashout)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{"Body is not correct"})
		return
	}
	if err = cashout.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{"Invalid token amount"})
		return
	}
	result, err := h.payout.Cashout(req.Context(), userFrom(req.Context()), cashout.Tokens)
	if err != nil {
		h.writeError(w, "CashoutHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Уведомления платежного шлюза. После проверки подписи подтверждаются,
// кроме случая, когда выплата возвращена в pending и нужна повторная доставка
func (h *Handler) WebhookHandler(w http.ResponseWriter, req *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(req.Body, maxBodySize))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{"Body is not correct"})
		return
	}
	defer req.Body.Close()

	event, err := h.gateway.ParseEvent(payload, req.Header.Get("Stripe-Signature"))
	if err != nil {
		h.logger.Warn("Webhook verification failed", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{"Invalid signature"})
		return
	}
	// остальные ошибки логирует Reconciler, повтор доставки их не исправит
	err = h.reconciler.Handle(context.WithoutCancel(req.Context()), event)
	if errors.Is(err, model.ErrReconcileDeferred) {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{"Retry later"})
		return
	}
	writeJSON(w, http.StatusOK, WebhookResponse{true})
}

// Прогресс курса
func (h *Handler) CourseProgressHandler(w http.ResponseWriter, req *http.Request) {
	progress := CourseProgressRequest{}
	err := decodeBody(req, &progress)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{"Body is not correct"})
		return
	}
	if err = progress.Validate(); err != nil {
		h.writeError(w, "CourseProgressHandler", err)
		return
	}
	marker, awarded, err := h.completions.CourseProgress(req.Context(), userFrom(req.Context()), mux.Vars(req)["id"], progress.Progress)
	if err != nil {
		h.writeError(w, "CourseProgressHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, CourseProgressResponse{marker.Progress, awarded})
}

// Отметка о завершении проекта
func (h *Handler) ProjectProgressHandler(w http.ResponseWriter, req *http.Request) {
	progress := ProjectProgressRequest{}
	err := decodeBody(req, &progress)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{"Body is not correct"})
		return
	}
	marker, awarded, err := h.completions.ProjectCompleted(req.Context(), userFrom(req.Context()), mux.Vars(req)["id"], progress.Completed)
	if err != nil {
		h.writeError(w, "ProjectProgressHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, ProjectProgressResponse{marker.Completed, awarded})
}

// Событие завершения от внутреннего трекера
func (h *Handler) CompletionHandler(w http.ResponseWriter, req *http.Request) {
	event := model.CompletionEvent{}
	err := decodeBody(req, &event)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{"Body is not correct"})
		return
	}
	awarded, err := h.completions.Complete(req.Context(), event)
	if err != nil {
		h.writeError(w, "CompletionHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, CompletionResponse{awarded})
}
