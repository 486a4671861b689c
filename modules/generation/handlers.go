package generation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jonathanbrink/swayleo-app-sub000/pkg/brand"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/export"
	gencore "github.com/jonathanbrink/swayleo-app-sub000/pkg/generation"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/genlimit"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/llm"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/mailer"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/prompt"
)

type handlers struct {
	opts RouterOptions
}

type generateRequest struct {
	BrandID           uuid.UUID `json:"brand_id"`
	UserID            uuid.UUID `json:"user_id"`
	EmailType         string    `json:"email_type"`
	SubjectLineCount  int       `json:"subject_line_count"`
	VariationCount    int       `json:"variation_count"`
	AdditionalContext string    `json:"additional_context,omitempty"`
	Tone              string    `json:"tone,omitempty"`
	IncludeEmoji      bool      `json:"include_emoji"`
	MaxLength         string    `json:"max_length,omitempty"`
	Provider          string    `json:"provider,omitempty"`
}

func (h *handlers) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := r.Context()

	b, err := h.opts.Brands.GetBrand(ctx, req.BrandID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	kit, err := h.opts.Brands.GetBrandKit(ctx, b.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	entries, err := h.opts.Knowledge.ListEntries(ctx, b.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if h.opts.Limiter != nil {
		if err := h.opts.Limiter.Allow(ctx, b.OrganizationID); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	email, err := h.opts.Generator.Generate(ctx, *b, *kit, gencore.Request{
		BrandID:           req.BrandID,
		UserID:            req.UserID,
		EmailType:         prompt.EmailType(req.EmailType),
		SubjectLineCount:  req.SubjectLineCount,
		VariationCount:    req.VariationCount,
		AdditionalContext: req.AdditionalContext,
		Tone:              prompt.Tone(req.Tone),
		IncludeEmoji:      req.IncludeEmoji,
		MaxLength:         prompt.Length(req.MaxLength),
		Provider:          llm.Provider(req.Provider),
	}, entries)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, email)
}

func (h *handlers) formats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"formats": export.Formats()})
}

type exportRequest struct {
	Format    string `json:"format"`
	BrandName string `json:"brand_name,omitempty"`
	EmailType string `json:"email_type,omitempty"`

	SubjectLine string `json:"subject_line"`
	PreviewText string `json:"preview_text,omitempty"`
	Headline    string `json:"headline,omitempty"`
	Body        string `json:"body"`
	CTA         string `json:"cta,omitempty"`
}

func (r exportRequest) email() export.Email {
	return export.Email{
		SubjectLine: r.SubjectLine,
		PreviewText: r.PreviewText,
		Headline:    r.Headline,
		Body:        r.Body,
		CTA:         r.CTA,
	}
}

func (h *handlers) export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var content string
	switch req.Format {
	case "text":
		content = export.AsText(req.email())
	default:
		var err error
		content, err = export.AsESP(req.Format, req.email(), export.Options{
			BrandName: req.BrandName,
			EmailType: req.EmailType,
		})
		if err != nil {
			h.fail(w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"format":  req.Format,
		"content": content,
	})
}

type testSendRequest struct {
	To string `json:"to"`

	SubjectLine string `json:"subject_line"`
	PreviewText string `json:"preview_text,omitempty"`
	Headline    string `json:"headline,omitempty"`
	Body        string `json:"body"`
	CTA         string `json:"cta,omitempty"`
}

func (h *handlers) testSend(w http.ResponseWriter, r *http.Request) {
	var req testSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := h.opts.Sender.Send(r.Context(), mailer.SendParams{
		To:      req.To,
		Subject: req.SubjectLine,
		HTMLBody: export.AsHTML(export.Email{
			SubjectLine: req.SubjectLine,
			PreviewText: req.PreviewText,
			Headline:    req.Headline,
			Body:        req.Body,
			CTA:         req.CTA,
		}),
		Tag: "test-send",
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}

type saveEmailRequest struct {
	BrandID     uuid.UUID `json:"brand_id"`
	CreatedBy   uuid.UUID `json:"created_by"`
	EmailType   string    `json:"email_type"`
	SubjectLine string    `json:"subject_line"`
	PreviewText string    `json:"preview_text,omitempty"`
	Headline    string    `json:"headline,omitempty"`
	Body        string    `json:"body"`
	CTA         string    `json:"cta,omitempty"`
	Model       string    `json:"model,omitempty"`
}

func (h *handlers) saveEmail(w http.ResponseWriter, r *http.Request) {
	var req saveEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.SubjectLine == "" || req.Body == "" {
		writeError(w, http.StatusUnprocessableEntity, "subject_line and body are required")
		return
	}

	email := &brand.SavedEmail{
		ID:          uuid.New(),
		BrandID:     req.BrandID,
		EmailType:   req.EmailType,
		SubjectLine: req.SubjectLine,
		PreviewText: req.PreviewText,
		Headline:    req.Headline,
		Body:        req.Body,
		CTA:         req.CTA,
		Status:      brand.StatusDraft,
		Model:       req.Model,
		CreatedBy:   req.CreatedBy,
	}
	if err := h.opts.SavedEmails.CreateSavedEmail(r.Context(), email); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, email)
}

func (h *handlers) listSavedEmails(w http.ResponseWriter, r *http.Request) {
	brandID, err := uuid.Parse(r.URL.Query().Get("brand_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "brand_id query parameter is required")
		return
	}

	emails, err := h.opts.SavedEmails.ListSavedEmails(r.Context(), brandID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"emails": emails})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *handlers) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid email id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.opts.SavedEmails.UpdateStatus(r.Context(), id, brand.Status(req.Status)); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

// fail maps domain errors onto HTTP statuses and logs server-side failures.
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.opts.Logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, brand.ErrBrandNotFound),
		errors.Is(err, brand.ErrKitNotFound),
		errors.Is(err, brand.ErrEmailNotFound):
		return http.StatusNotFound
	case errors.Is(err, gencore.ErrInvalidRequest),
		errors.Is(err, gencore.ErrProviderNotConfigured),
		errors.Is(err, export.ErrUnknownFormat),
		errors.Is(err, mailer.ErrInvalidParams),
		errors.Is(err, brand.ErrInvalidStatus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, brand.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, genlimit.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, gencore.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, gencore.ErrRequestFailed),
		errors.Is(err, gencore.ErrInvalidResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
