package web

import (
	"net/http"
	"time"

	"prodojo/internal/adapters/email"
	"prodojo/internal/adapters/http/middleware"
	"prodojo/internal/adapters/http/perf"
	accountStore "prodojo/internal/adapters/storage/account"
	coachStore "prodojo/internal/adapters/storage/coach"
	contactStore "prodojo/internal/adapters/storage/contact"
	endorsementStore "prodojo/internal/adapters/storage/endorsement"
	eventStore "prodojo/internal/adapters/storage/event"
	galleryStore "prodojo/internal/adapters/storage/gallery"
	mediaStore "prodojo/internal/adapters/storage/media"
	newsletterStore "prodojo/internal/adapters/storage/newsletter"
	scheduleStore "prodojo/internal/adapters/storage/schedule"
	statusStore "prodojo/internal/adapters/storage/status"
	successStoryStore "prodojo/internal/adapters/storage/successstory"
	testimonialStore "prodojo/internal/adapters/storage/testimonial"
	tipStore "prodojo/internal/adapters/storage/tip"
	trainerStore "prodojo/internal/adapters/storage/trainer"
)

// Stores holds all storage dependencies.
type Stores struct {
	AdminStore        accountStore.Store
	ClassStore        scheduleStore.Store
	OverrideStore     scheduleStore.OverrideStore
	EventStore        eventStore.Store
	CoachStore        coachStore.Store
	TrainerStore      trainerStore.Store
	TestimonialStore  testimonialStore.Store
	GalleryStore      galleryStore.Store
	EndorsementStore  endorsementStore.Store
	SuccessStoryStore successStoryStore.Store
	TipStore          tipStore.Store
	ContactStore      contactStore.Store
	SubscriptionStore newsletterStore.Store
	MediaStore        mediaStore.Store
	StatusStore       statusStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global token signer instance (set by NewMux)
var tokenSigner *middleware.TokenSigner

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var contactNotifyAddress string

// mediaDir is the on-disk root for uploaded files (set by NewMux).
var mediaDir string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, notifyTo string) {
	emailSender = sender
	contactNotifyAddress = notifyTo
}

// NewMux wires HTTP handlers for the app.
func NewMux(mediaPath string, s *Stores, collector *perf.Collector, signer *middleware.TokenSigner) http.Handler {
	stores = s
	perfCollector = collector
	tokenSigner = signer
	mediaDir = mediaPath

	mux := http.NewServeMux()
	mux.Handle("/media/", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaPath))))
	registerRoutes(mux)

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> SecurityHeaders -> CORS -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CORS(nil),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
