package cards

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	interf "github.com/glkeru/loyalty/cards/internal/interfaces"
	model "github.com/glkeru/loyalty/cards/internal/models"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type CardsHandler struct {
	router  *mux.Router
	service interf.CardsService
	logger  *zap.Logger
}

func NewHandler(service interf.CardsService, logger *zap.Logger) *CardsHandler {
	router := mux.NewRouter()
	handler := &CardsHandler{router, service, logger}

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// программы
	router.HandleFunc("/programs", handler.CreateProgramHandler).Methods(http.MethodPost)
	router.HandleFunc("/programs/{id}", handler.GetProgramHandler).Methods(http.MethodGet)
	router.HandleFunc("/programs/{id}", handler.UpdateProgramHandler).Methods(http.MethodPut)
	router.HandleFunc("/programs/{id}/activate", handler.programActivation(true)).Methods(http.MethodPost)
	router.HandleFunc("/programs/{id}/deactivate", handler.programActivation(false)).Methods(http.MethodPost)

	// награды
	router.HandleFunc("/programs/{id}/rewards", handler.AddRewardHandler).Methods(http.MethodPost)
	router.HandleFunc("/programs/{id}/rewards/{rewardId}", handler.UpdateRewardHandler).Methods(http.MethodPut)
	router.HandleFunc("/programs/{id}/rewards/{rewardId}/activate", handler.rewardActivation(true)).Methods(http.MethodPost)
	router.HandleFunc("/programs/{id}/rewards/{rewardId}/deactivate", handler.rewardActivation(false)).Methods(http.MethodPost)

	// карты
	router.HandleFunc("/cards", handler.EnrollHandler).Methods(http.MethodPost)
	router.HandleFunc("/cards/{id}", handler.GetCardHandler).Methods(http.MethodGet)
	router.HandleFunc("/cards/{id}/balance", handler.GetBalanceHandler).Methods(http.MethodGet)
	router.HandleFunc("/cards/{id}/transactions", handler.GetTransactionsHandler).Methods(http.MethodGet)
	router.HandleFunc("/cards/{id}/stamps", handler.IssueStampsHandler).Methods(http.MethodPost)
	router.HandleFunc("/cards/{id}/points", handler.AddPointsHandler).Methods(http.MethodPost)
	router.HandleFunc("/cards/{id}/redemptions", handler.RedeemHandler).Methods(http.MethodPost)
	router.HandleFunc("/cards/{id}/suspend", handler.SuspendHandler).Methods(http.MethodPost)
	router.HandleFunc("/cards/{id}/reactivate", handler.ReactivateHandler).Methods(http.MethodPost)

	router.Use(MiddlewareLog())
	return handler
}

func (h *CardsHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(w, req)
}

func (h *CardsHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// Программы

func (h *CardsHandler) CreateProgramHandler(w http.ResponseWriter, req *http.Request) {
	body := ProgramRequest{}
	if !h.decode(w, req, "CreateProgramHandler", &body) {
		return
	}
	rules, err := body.rules()
	if err != nil {
		h.fail(w, "CreateProgramHandler", err)
		return
	}
	program, err := h.service.CreateProgram(req.Context(), model.ProgramParams{
		BrandID:      body.BrandID,
		Type:         model.ProgramType(body.Type),
		ProgramRules: rules,
	})
	if err != nil {
		h.fail(w, "CreateProgramHandler", err)
		return
	}
	h.write(w, "CreateProgramHandler", http.StatusCreated, newProgramResponse(program))
}

func (h *CardsHandler) GetProgramHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID[model.ProgramTag](w, req, "id")
	if !ok {
		return
	}
	program, err := h.service.GetProgram(req.Context(), id)
	if err != nil {
		h.fail(w, "GetProgramHandler", err)
		return
	}
	h.write(w, "GetProgramHandler", http.StatusOK, newProgramResponse(program))
}

func (h *CardsHandler) UpdateProgramHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID[model.ProgramTag](w, req, "id")
	if !ok {
		return
	}
	body := RulesRequest{}
	if !h.decode(w, req, "UpdateProgramHandler", &body) {
		return
	}
	rules, err := body.rules()
	if err != nil {
		h.fail(w, "UpdateProgramHandler", err)
		return
	}
	program, err := h.service.UpdateProgram(req.Context(), id, rules)
	if err != nil {
		h.fail(w, "UpdateProgramHandler", err)
		return
	}
	h.write(w, "UpdateProgramHandler", http.StatusOK, newProgramResponse(program))
}

func (h *CardsHandler) programActivation(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id, ok := pathID[model.ProgramTag](w, req, "id")
		if !ok {
			return
		}
		program, err := h.service.SetProgramActive(req.Context(), id, active)
		if err != nil {
			h.fail(w, "SetProgramActive", err)
			return
		}
		h.write(w, "SetProgramActive", http.StatusOK, newProgramResponse(program))
	}
}

// Награды

func (h *CardsHandler) AddRewardHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID[model.ProgramTag](w, req, "id")
	if !ok {
		return
	}
	body := RewardRequest{}
	if !h.decode(w, req, "AddRewardHandler", &body) {
		return
	}
	reward, err := h.service.AddReward(req.Context(), id, body.details())
	if err != nil {
		h.fail(w, "AddRewardHandler", err)
		return
	}
	h.write(w, "AddRewardHandler", http.StatusCreated, newRewardResponse(reward))
}

func (h *CardsHandler) UpdateRewardHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID[model.ProgramTag](w, req, "id")
	if !ok {
		return
	}
	rewardID, ok := pathID[model.RewardTag](w, req, "rewardId")
	if !ok {
		return
	}
	body := RewardRequest{}
	if !h.decode(w, req, "UpdateRewardHandler", &body) {
		return
	}
	reward, err := h.service.UpdateReward(req.Context(), id, rewardID, body.details())
	if err != nil {
		h.fail(w, "UpdateRewardHandler", err)
		return
	}
	h.write(w, "UpdateRewardHandler", http.StatusOK, newRewardResponse(reward))
}

func (h *CardsHandler) rewardActivation(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id, ok := pathID[model.ProgramTag](w, req, "id")
		if !ok {
			return
		}
		rewardID, ok := pathID[model.RewardTag](w, req, "rewardId")
		if !ok {
			return
		}
		reward, err := h.service.SetRewardActive(req.Context(), id, rewardID, active)
		if err != nil {
			h.fail(w, "SetRewardActive", err)
			return
		}
		h.write(w, "SetRewardActive", http.StatusOK, newRewardResponse(reward))
	}
}

// Карты

func (h *CardsHandler) EnrollHandler(w http.ResponseWriter, req *http.Request) {
	body := EnrollRequest{}
	if !h.decode(w, req, "EnrollHandler", &body) {
		return
	}
	card, err := h.service.Enroll(req.Context(), body.ProgramID, body.CustomerID, body.origin())
	if err != nil {
		h.fail(w, "EnrollHandler", err)
		return
	}
	h.write(w, "EnrollHandler", http.StatusCreated, newCardResponse(card))
}

func (h *CardsHandler) GetCardHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID[model.CardTag](w, req, "id")
	if !ok {
		return
	}
	card, err := h.service.GetCard(req.Context(), id)
	if err != nil {
		h.fail(w, "GetCardHandler", err)
		return
	}
	h.write(w, "GetCardHandler", http.StatusOK, newCardResponse(card))
}

func (h *CardsHandler) GetBalanceHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID[model.CardTag](w, req, "id")
	if !ok {
		return
	}
	balance, err := h.service.GetBalance(req.Context(), id)
	if err != nil {
		h.fail(w, "GetBalanceHandler", err)
		return
	}
	h.write(w, "GetBalanceHandler", http.StatusOK, balance)
}

// История: ?from=&to= в RFC 3339 или YYYY-MM-DD, границы включаются
func (h *CardsHandler) GetTransactionsHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID[model.CardTag](w, req, "id")
	if !ok {
		return
	}
	from, err := parseBound(req.URL.Query().Get("from"), time.Time{}, false)
	if err != nil {
		h.fail(w, "GetTransactionsHandler", err)
		return
	}
	to, err := parseBound(req.URL.Query().Get("to"), model.MaxTime, true)
	if err != nil {
		h.fail(w, "GetTransactionsHandler", err)
		return
	}
	txs, err := h.service.GetTransactions(req.Context(), id, from, to)
	if err != nil {
		h.fail(w, "GetTransactionsHandler", err)
		return
	}
	resp := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = newTransactionResponse(tx)
	}
	h.write(w, "GetTransactionsHandler", http.StatusOK, resp)
}

func (h *CardsHandler) IssueStampsHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID[model.CardTag](w, req, "id")
	if !ok {
		return
	}
	body := StampsRequest{}
	if !h.decode(w, req, "IssueStampsHandler", &body) {
		return
	}
	tx, err := h.service.IssueStamps(req.Context(), id, body.Quantity, body.origin())
	if err != nil {
		h.fail(w, "IssueStampsHandler", err)
		return
	}
	h.write(w, "IssueStampsHandler", http.StatusCreated, newTransactionResponse(tx))
}

func (h *CardsHandler) AddPointsHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID[model.CardTag](w, req, "id")
	if !ok {
		return
	}
	body := PointsRequest{}
	if !h.decode(w, req, "AddPointsHandler", &body) {
		return
	}
	tx, err := h.service.AddPurchasePoints(req.Context(), id, body.Amount, body.origin())
	if err != nil {
		h.fail(w, "AddPointsHandler", err)
		return
	}
	h.write(w, "AddPointsHandler", http.StatusCreated, newTransactionResponse(tx))
}

func (h *CardsHandler) RedeemHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID[model.CardTag](w, req, "id")
	if !ok {
		return
	}
	body := RedemptionRequest{}
	if !h.decode(w, req, "RedeemHandler", &body) {
		return
	}
	tx, err := h.service.RedeemReward(req.Context(), id, body.RewardID, body.origin())
	if err != nil {
		h.fail(w, "RedeemHandler", err)
		return
	}
	h.write(w, "RedeemHandler", http.StatusCreated, newTransactionResponse(tx))
}

func (h *CardsHandler) SuspendHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID[model.CardTag](w, req, "id")
	if !ok {
		return
	}
	card, err := h.service.SuspendCard(req.Context(), id)
	if err != nil {
		h.fail(w, "SuspendHandler", err)
		return
	}
	h.write(w, "SuspendHandler", http.StatusOK, newCardResponse(card))
}

func (h *CardsHandler) ReactivateHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID[model.CardTag](w, req, "id")
	if !ok {
		return
	}
	card, err := h.service.ReactivateCard(req.Context(), id)
	if err != nil {
		h.fail(w, "ReactivateHandler", err)
		return
	}
	h.write(w, "ReactivateHandler", http.StatusOK, newCardResponse(card))
}

// Вспомогательные

func (h *CardsHandler) decode(w http.ResponseWriter, req *http.Request, service string, v any) bool {
	defer req.Body.Close()
	err := json.NewDecoder(req.Body).Decode(v)
	if err != nil {
		h.logger.Debug("Unmarshal", zap.String("service", service), zap.Error(err))
		http.Error(w, "Body is not correct: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *CardsHandler) write(w http.ResponseWriter, service string, status int, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		h.Log("Marshal", service, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(j)
}

// fail answers with the status matching the error class; only unexpected errors are logged
func (h *CardsHandler) fail(w http.ResponseWriter, service string, err error) {
	code := StatusCode(err)
	if code == http.StatusInternalServerError {
		h.Log("Request failed", service, err)
	}
	http.Error(w, err.Error(), code)
}

func StatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidOperation), errors.Is(err, model.ErrConcurrentUpdate):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func pathID[T any](w http.ResponseWriter, req *http.Request, name string) (model.ID[T], bool) {
	id, err := model.ParseID[T](mux.Vars(req)[name])
	if err != nil {
		http.Error(w, fmt.Sprintf("%s is not correct", name), http.StatusBadRequest)
		return id, false
	}
	return id, true
}

func parseBound(s string, def time.Time, endOfDay bool) (time.Time, error) {
	if s == "" {
		return def, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", model.ErrInvalidArgument, s)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
