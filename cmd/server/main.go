package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "prodojo/internal/adapters/email"
	web "prodojo/internal/adapters/http"
	"prodojo/internal/adapters/http/middleware"
	"prodojo/internal/adapters/http/perf"
	"prodojo/internal/adapters/storage"
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
	"prodojo/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	dbPath := envOrDefault("PRODOJO_DB", "prodojo.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Println("Database initialized successfully!")

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	adminStore := accountStore.NewSQLiteStore(timedDB)
	classStore := scheduleStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AdminStore:        adminStore,
		ClassStore:        classStore,
		OverrideStore:     scheduleStore.NewOverrideSQLiteStore(timedDB),
		EventStore:        eventStore.NewSQLiteStore(timedDB),
		CoachStore:        coachStore.NewSQLiteStore(timedDB),
		TrainerStore:      trainerStore.NewSQLiteStore(timedDB),
		TestimonialStore:  testimonialStore.NewSQLiteStore(timedDB),
		GalleryStore:      galleryStore.NewSQLiteStore(timedDB),
		EndorsementStore:  endorsementStore.NewSQLiteStore(timedDB),
		SuccessStoryStore: successStoryStore.NewSQLiteStore(timedDB),
		TipStore:          tipStore.NewSQLiteStore(timedDB),
		ContactStore:      contactStore.NewSQLiteStore(timedDB),
		SubscriptionStore: newsletterStore.NewSQLiteStore(timedDB),
		MediaStore:        mediaStore.NewSQLiteStore(timedDB),
		StatusStore:       statusStore.NewSQLiteStore(timedDB),
	}

	// Seed default admin account if none exists
	adminUsername := envOrDefault("PRODOJO_ADMIN_USERNAME", "admin")
	adminPassword := envOrDefault("PRODOJO_ADMIN_PASSWORD", "TCProDojo2024!")
	seedAdminDeps := orchestrators.SeedAdminDeps{
		AdminStore: adminStore,
		Username:   adminUsername,
		Password:   adminPassword,
	}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedAdminDeps); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Seed the default weekly schedule if no classes exist
	seedClassDeps := orchestrators.SeedClassesDeps{ClassStore: classStore}
	if err := orchestrators.ExecuteSeedClasses(context.Background(), seedClassDeps); err != nil {
		log.Fatalf("failed to seed classes: %v", err)
	}

	// Configure email sender
	resendKey := os.Getenv("PRODOJO_RESEND_KEY")
	emailFrom := envOrDefault("PRODOJO_RESEND_FROM", "TC Pro Dojo <noreply@tcprodojo.com>")
	contactEmail := envOrDefault("PRODOJO_CONTACT_EMAIL", "info@tcprodojo.com")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), contactEmail)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), contactEmail)
		if os.Getenv("PRODOJO_ENV") == "production" {
			log.Println("WARNING: PRODOJO_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set PRODOJO_RESEND_KEY for real delivery)")
		}
	}

	// Bearer-token signing secret. Persist a stable secret in production;
	// a random one would invalidate admin sessions on restart.
	jwtSecret := os.Getenv("PRODOJO_JWT_SECRET")
	if jwtSecret == "" {
		if os.Getenv("PRODOJO_ENV") == "production" {
			log.Fatal("PRODOJO_JWT_SECRET must be set in production")
		}
		jwtSecret = "dev-only-secret"
		log.Println("WARNING: PRODOJO_JWT_SECRET is not set — using a development secret")
	}
	signer := middleware.NewTokenSigner([]byte(jwtSecret))

	mediaDir := envOrDefault("PRODOJO_MEDIA_DIR", "media")
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		log.Fatalf("failed to create media directory: %v", err)
	}

	mux := web.NewMux(mediaDir, stores, collector, signer)

	addr := envOrDefault("PRODOJO_ADDR", ":8080")
	log.Printf("TC Pro Dojo %s starting on %s (env=%s)", version, addr, envOrDefault("PRODOJO_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
