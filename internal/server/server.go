// Package server exposes the schedule engine over HTTP: callers POST a YAML
// configuration and receive the resulting schedules back. The engine itself
// stays free of wire formats; this package is a thin collaborator calling
// the same operations the CLI does.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/JYeeRen/early-payment/internal/config"
	"github.com/JYeeRen/early-payment/internal/scenario"
	"github.com/JYeeRen/early-payment/pkg/constants"
	"github.com/JYeeRen/early-payment/pkg/output"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
}

// NewRouter constructs the HTTP router serving the schedule API.
func NewRouter(logger *zap.Logger, maxBodySize int64) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize}

	router := mux.NewRouter()
	router.HandleFunc("/api/schedule", h.handleSchedule).Methods(http.MethodPost)
	router.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet)
	return router
}

type paymentResponse struct {
	Period             int    `json:"period"`
	PaymentDate        string `json:"paymentDate"`
	RemainingPrincipal string `json:"remainingPrincipal"`
	InterestRate       string `json:"interestRate"`
	Interest           string `json:"interest"`
	Principal          string `json:"principal"`
	Total              string `json:"total"`
	EarlyPayment       string `json:"earlyPayment,omitempty"`
}

type scenarioResponse struct {
	Name          string            `json:"name"`
	FinalPeriod   int               `json:"finalPeriod"`
	TotalInterest string            `json:"totalInterest"`
	TotalPaid     string            `json:"totalPaid"`
	Payments      []paymentResponse `json:"payments"`
}

type scheduleResponse struct {
	Warnings  []string           `json:"warnings,omitempty"`
	Scenarios []scenarioResponse `json:"scenarios"`
}

// handleSchedule parses a YAML configuration from the request body, runs
// every configured scenario, and responds with JSON, or with the pretty
// rendering when the client asks for text/plain.
func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBodySize+1))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("reading request body: %w", err))
		return
	}
	if int64(len(body)) > h.maxBodySize {
		h.writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Errorf("request body exceeds %d bytes", h.maxBodySize))
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		h.writeError(w, http.StatusBadRequest, errors.New("empty request body"))
		return
	}

	var conf config.Configuration
	if err := yaml.Unmarshal(body, &conf); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("parsing configuration: %w", err))
		return
	}

	l, err := conf.Loan.ToLoan()
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	plans, err := conf.ToPlans()
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	results, err := scenario.Run(h.logger, l, plans)
	if err != nil {
		h.logger.Error("failed to run scenarios",
			zap.String("op", "server.handleSchedule"),
			zap.Error(err),
		)
		h.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/plain") {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		output.PrettyFormat(w, results)
		return
	}

	resp := scheduleResponse{Warnings: conf.ValidateConfiguration()}
	for _, result := range results {
		resp.Scenarios = append(resp.Scenarios, toScenarioResponse(result))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.handleSchedule"),
			zap.Error(err),
		)
	}
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *handler) writeError(w http.ResponseWriter, status int, err error) {
	h.logger.Warn("request rejected",
		zap.String("op", "server.writeError"),
		zap.Int("status", status),
		zap.Error(err),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func toScenarioResponse(result scenario.Result) scenarioResponse {
	resp := scenarioResponse{
		Name:          result.Name,
		FinalPeriod:   result.FinalPeriod,
		TotalInterest: result.TotalInterest.StringFixed(2),
		TotalPaid:     result.TotalPaid.StringFixed(2),
		Payments:      make([]paymentResponse, 0, len(result.Schedule)),
	}
	for _, pmt := range result.Schedule {
		p := paymentResponse{
			Period:             pmt.Period,
			PaymentDate:        pmt.PaymentDate.Format(constants.DateTimeLayout),
			RemainingPrincipal: pmt.RemainingPrincipal.StringFixed(2),
			InterestRate:       pmt.InterestRate.String(),
			Interest:           pmt.Interest.StringFixed(2),
			Principal:          pmt.PrincipalPayment.StringFixed(2),
			Total:              pmt.TotalPayment.StringFixed(2),
		}
		if pmt.EarlyPayment.Valid {
			p.EarlyPayment = pmt.EarlyPayment.Decimal.StringFixed(2)
		}
		resp.Payments = append(resp.Payments, p)
	}
	return resp
}
