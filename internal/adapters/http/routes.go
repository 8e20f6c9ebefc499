package web

import (
	"net/http"

	"prodojo/internal/adapters/http/middleware"
)

// registerRoutes mounts every API route on the mux. Admin routes other than
// login are wrapped with bearer-token auth. ID-scoped routes use subtree
// patterns; the mux picks the longest matching prefix, so
// /api/admin/classes/cancel/{id} resolves ahead of /api/admin/classes/{id}.
func registerRoutes(mux *http.ServeMux) {
	requireAuth := middleware.RequireAuth(tokenSigner)
	admin := func(h http.HandlerFunc) http.Handler { return requireAuth(h) }

	// Public
	mux.HandleFunc("/api/", handleRoot)
	mux.HandleFunc("/api/status", handleStatus)
	mux.HandleFunc("/api/classes", handleClasses)
	mux.HandleFunc("/api/classes/resolved", handleClassesResolved)
	mux.HandleFunc("/api/classes/cancelled", handleClassesCancelled)
	mux.HandleFunc("/api/events", handleEvents)
	mux.HandleFunc("/api/coaches", handleCoaches)
	mux.HandleFunc("/api/trainers", handleTrainers)
	mux.HandleFunc("/api/testimonials", handleTestimonials)
	mux.HandleFunc("/api/gallery", handleGallery)
	mux.HandleFunc("/api/success-stories", handleSuccessStories)
	mux.HandleFunc("/api/endorsements", handleEndorsements)
	mux.HandleFunc("/api/tips", handleTips)
	mux.HandleFunc("/api/contact", handleContact)
	mux.HandleFunc("/api/newsletter/subscribe", handleSubscribe)

	// Admin auth
	mux.HandleFunc("/api/admin/login", handleAdminLogin)
	mux.Handle("/api/admin/verify", admin(handleAdminVerify))

	// Admin schedule
	mux.Handle("/api/admin/classes", admin(handleAdminClasses))
	mux.Handle("/api/admin/classes/", admin(handleAdminClassByID))
	mux.Handle("/api/admin/classes/cancel", admin(handleCancelClass))
	mux.Handle("/api/admin/classes/cancel/", admin(handleRestoreClass))

	// Admin content collections
	mux.Handle("/api/admin/events", admin(handleAdminEvents))
	mux.Handle("/api/admin/events/", admin(handleAdminEventByID))
	mux.Handle("/api/admin/coaches", admin(handleAdminCoaches))
	mux.Handle("/api/admin/coaches/", admin(handleAdminCoachByID))
	mux.Handle("/api/admin/trainers", admin(handleAdminTrainers))
	mux.Handle("/api/admin/trainers/", admin(handleAdminTrainerByID))
	mux.Handle("/api/admin/testimonials", admin(handleAdminTestimonials))
	mux.Handle("/api/admin/testimonials/", admin(handleAdminTestimonialByID))
	mux.Handle("/api/admin/gallery", admin(handleAdminGallery))
	mux.Handle("/api/admin/gallery/", admin(handleAdminGalleryByID))
	mux.Handle("/api/admin/success-stories", admin(handleAdminSuccessStories))
	mux.Handle("/api/admin/success-stories/", admin(handleAdminSuccessStoryByID))
	mux.Handle("/api/admin/endorsements", admin(handleAdminEndorsements))
	mux.Handle("/api/admin/endorsements/", admin(handleAdminEndorsementByID))
	mux.Handle("/api/admin/tips", admin(handleAdminTips))
	mux.Handle("/api/admin/tips/", admin(handleAdminTipByID))

	// Admin inbox and newsletter
	mux.Handle("/api/admin/contacts", admin(handleAdminContacts))
	mux.Handle("/api/admin/contacts/", admin(handleAdminContacts))
	mux.Handle("/api/admin/newsletter-subscriptions", admin(handleAdminSubscriptions))
	mux.Handle("/api/admin/newsletter-subscriptions/", admin(handleAdminSubscriptions))
	mux.Handle("/api/admin/newsletter-subscriptions/export", admin(handleExportSubscriptions))
	mux.Handle("/api/admin/newsletter-subscriptions/broadcast", admin(handleBroadcast))

	// Admin media library
	mux.Handle("/api/admin/upload", admin(handleAdminUpload))
	mux.Handle("/api/admin/media", admin(handleAdminMedia))
	mux.Handle("/api/admin/media/", admin(handleAdminMediaByID))

	// Admin observability
	mux.Handle("/api/admin/perf", admin(handleAdminPerf))
}
