package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"membership-credits/internal/domain"
	"membership-credits/internal/domain/ports/repository"
	"membership-credits/internal/infra/logging"
	"membership-credits/internal/usecase"
)

const validationMessage = "Not a valid integer, please try again."

func formatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// handleHistory renders the balance and the transaction history, newest
// first, with amounts converted to dollars at the configured ratio.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFrom(ctx)

	entries, err := s.credits.History(ctx, user.ID)
	if err != nil {
		logging.With(ctx, s.log).Error().Err(err).Msg("fetch ledger history")
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	balance, err := s.credits.DollarBalance(ctx, user.ID)
	if err != nil {
		logging.With(ctx, s.log).Error().Err(err).Msg("compute dollar balance")
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	ratio := s.credits.CreditsPerDollar()
	rows := make([]historyRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, historyRow{
			Timestamp: e.OccurredAt.Format("2006-01-02 15:04:05"),
			Amount:    usecase.FormatCredits(e.Value, ratio),
			Comment:   e.Comment,
		})
	}

	s.render(w, historyPage, historyData{
		Nav:     s.menu.Entries(),
		Balance: fmt.Sprintf("$%.2f", balance),
		Rows:    rows,
	})
}

func (s *Server) handleAddForm(w http.ResponseWriter, r *http.Request) {
	s.renderAdd(w, r, "", "")
}

// handleAddSubmit validates the amount and creates the purchase invoice.
// Invalid input re-renders the form; the fatal taxonomy (no eligible product,
// invoice validation failure) surfaces as a 500 and is logged for operators.
func (s *Server) handleAddSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFrom(ctx)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	amount := r.PostFormValue("amount")
	if amount == "" {
		s.renderAdd(w, r, "", "")
		return
	}

	redirect, err := s.purchase.Submit(ctx, user, amount)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			s.renderAdd(w, r, amount, validationMessage)
			return
		}
		logging.With(ctx, s.log).Error().Err(err).Str("amount", amount).Msg("credit purchase failed")
		http.Error(w, "Could not create invoice", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

func (s *Server) renderAdd(w http.ResponseWriter, r *http.Request, amount, validationError string) {
	ctx := r.Context()
	user := userFrom(ctx)
	balance, err := s.credits.DollarBalance(ctx, user.ID)
	if err != nil {
		logging.With(ctx, s.log).Error().Err(err).Msg("compute dollar balance")
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	s.render(w, addPage, addData{
		Nav:             s.menu.Entries(),
		Balance:         fmt.Sprintf("$%.2f", balance),
		Amount:          amount,
		ValidationError: validationError,
	})
}

// handlePay shows the payment-initiation page for an invoice secure ID.
// Actual payment processing belongs to the payment layer.
func (s *Server) handlePay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	secureID := chi.URLParam(r, "secureID")

	inv, err := s.invoices.FindBySecureID(ctx, secureID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		logging.With(ctx, s.log).Error().Err(err).Msg("lookup invoice")
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	items := make([]payItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, payItem{
			Description: it.Description,
			Qty:         it.Qty,
			Unit:        formatCents(it.UnitPriceCents),
			Total:       formatCents(it.TotalCents),
		})
	}
	s.render(w, payPage, payData{
		Nav:       s.menu.Entries(),
		InvoiceID: inv.ID,
		Items:     items,
		Total:     formatCents(inv.TotalCents),
		Status:    string(inv.Status),
	})
}

func (s *Server) render(w http.ResponseWriter, page *template.Template, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, data); err != nil {
		s.log.Error().Err(err).Msg("render template")
	}
}

// ===== Admin settings API =====

type settingsResponse struct {
	CreditsPerDollar int64 `json:"credits_per_dollar"`
	Configured       bool  `json:"configured"`
}

func (s *Server) handleSettingsGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, settingsResponse{
		CreditsPerDollar: s.credits.CreditsPerDollar(),
		Configured:       s.credits.IsConfigured(),
	})
}

func (s *Server) handleSettingsPut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		CreditsPerDollar int64 `json:"credits_per_dollar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.CreditsPerDollar < 1 {
		http.Error(w, "credits_per_dollar must be >= 1", http.StatusBadRequest)
		return
	}

	value := strconv.FormatInt(req.CreditsPerDollar, 10)
	if err := s.settings.Set(ctx, repository.SettingKeyCreditsPerDollar, value); err != nil {
		logging.With(ctx, s.log).Error().Err(err).Msg("persist credits setting")
		http.Error(w, "Failed to save setting", http.StatusInternalServerError)
		return
	}
	s.credits.Reload(req.CreditsPerDollar)

	writeJSON(w, http.StatusOK, settingsResponse{
		CreditsPerDollar: s.credits.CreditsPerDollar(),
		Configured:       s.credits.IsConfigured(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// handleDevLogin mints a session for an existing user. Registered only when
// the server runs with -dev.
func (s *Server) handleDevLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	userID := r.PostFormValue("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		http.Error(w, "Unknown user", http.StatusNotFound)
		return
	}

	sid := uuid.NewString()
	if err := s.sessions.Set(ctx, sid, userID, 0); err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	w.WriteHeader(http.StatusNoContent)
}
