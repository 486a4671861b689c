// Package generation exposes the email generation core over HTTP as a
// mountable chi router: one-shot generation, export formatting, saved-email
// workflow, and test sends to a real inbox.
package generation

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/jonathanbrink/swayleo-app-sub000/pkg/brand"
	gencore "github.com/jonathanbrink/swayleo-app-sub000/pkg/generation"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/genlimit"
	"github.com/jonathanbrink/swayleo-app-sub000/pkg/mailer"
)

// RouterOptions wires the collaborators the module needs. Brands, Knowledge,
// and Generator are required; the rest are optional and gate their routes.
type RouterOptions struct {
	Generator *gencore.Service
	Brands    brand.BrandStore
	Knowledge brand.KnowledgeStore

	// SavedEmails enables the saved-email workflow routes when set.
	SavedEmails brand.SavedEmailStore

	// Limiter enforces the per-organization monthly quota when set.
	Limiter *genlimit.Limiter

	// Sender enables POST /test-send when set.
	Sender mailer.Sender

	Logger *slog.Logger
}

// Router creates the generation module router.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/generation", generation.Router(generation.RouterOptions{
//	    Generator: svc,
//	    Brands:    store,
//	    Knowledge: store,
//	}))
func Router(opts RouterOptions) chi.Router {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	h := &handlers{opts: opts}

	r := chi.NewRouter()
	r.Post("/generate", h.generate)
	r.Get("/formats", h.formats)
	r.Post("/export", h.export)

	if opts.Sender != nil {
		r.Post("/test-send", h.testSend)
	}
	if opts.SavedEmails != nil {
		r.Route("/emails", func(emails chi.Router) {
			emails.Get("/", h.listSavedEmails)
			emails.Post("/", h.saveEmail)
			emails.Post("/{id}/status", h.updateStatus)
		})
	}

	return r
}
