package web

import (
	"net/http"
	"strings"

	"prodojo/internal/application/projections"
	coachDomain "prodojo/internal/domain/coach"
	successStoryDomain "prodojo/internal/domain/successstory"
	testimonialDomain "prodojo/internal/domain/testimonial"
	trainerDomain "prodojo/internal/domain/trainer"
)

// --- Coaches ---

// handleCoaches handles GET /api/coaches.
func handleCoaches(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	coaches, err := stores.CoachStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	if coaches == nil {
		coaches = []coachDomain.Coach{}
	}
	writeJSON(w, http.StatusOK, coaches)
}

// coachInput is the admin payload for creating or updating a coach.
type coachInput struct {
	Name         string   `json:"name"`
	Aka          string   `json:"aka"`
	Title        string   `json:"title"`
	Specialty    string   `json:"specialty"`
	Experience   string   `json:"experience"`
	Bio          string   `json:"bio"`
	Achievements []string `json:"achievements"`
	PhotoURL     string   `json:"photo_url"`
	DisplayOrder int      `json:"display_order"`
}

// handleAdminCoaches handles GET/POST for /api/admin/coaches.
func handleAdminCoaches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		coaches, err := stores.CoachStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if coaches == nil {
			coaches = []coachDomain.Coach{}
		}
		writeJSON(w, http.StatusOK, coaches)
		return
	}

	if r.Method == "POST" {
		var input coachInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		c := coachDomain.Coach{
			ID:           generateID(),
			Name:         input.Name,
			Aka:          input.Aka,
			Title:        input.Title,
			Specialty:    input.Specialty,
			Experience:   input.Experience,
			Bio:          input.Bio,
			Achievements: input.Achievements,
			PhotoURL:     input.PhotoURL,
			DisplayOrder: input.DisplayOrder,
			CreatedAt:    timeNow().UTC(),
		}
		if err := c.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.CoachStore.Save(ctx, c); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, c)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handleAdminCoachByID handles PUT/DELETE for /api/admin/coaches/{id}.
func handleAdminCoachByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/coaches/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "coach id is required", http.StatusBadRequest)
		return
	}

	if r.Method == "PUT" {
		existing, err := stores.CoachStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "coach not found", http.StatusNotFound)
			return
		}
		var input coachInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		c := coachDomain.Coach{
			ID:           existing.ID,
			Name:         input.Name,
			Aka:          input.Aka,
			Title:        input.Title,
			Specialty:    input.Specialty,
			Experience:   input.Experience,
			Bio:          input.Bio,
			Achievements: input.Achievements,
			PhotoURL:     input.PhotoURL,
			DisplayOrder: input.DisplayOrder,
			CreatedAt:    existing.CreatedAt,
		}
		if err := c.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.CoachStore.Save(ctx, c); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
		return
	}

	if r.Method == "DELETE" {
		deleted, err := stores.CoachStore.Delete(ctx, id)
		if err != nil {
			internalError(w, err)
			return
		}
		if !deleted {
			http.Error(w, "coach not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// --- Trainers ---

// handleTrainers handles GET /api/trainers.
func handleTrainers(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	trainers, err := stores.TrainerStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	if trainers == nil {
		trainers = []trainerDomain.Trainer{}
	}
	writeJSON(w, http.StatusOK, trainers)
}

type trainerInput struct {
	Name         string   `json:"name"`
	Aka          string   `json:"aka"`
	Title        string   `json:"title"`
	Specialty    string   `json:"specialty"`
	Experience   string   `json:"experience"`
	Bio          string   `json:"bio"`
	Achievements []string `json:"achievements"`
}

// handleAdminTrainers handles GET/POST for /api/admin/trainers.
func handleAdminTrainers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		trainers, err := stores.TrainerStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if trainers == nil {
			trainers = []trainerDomain.Trainer{}
		}
		writeJSON(w, http.StatusOK, trainers)
		return
	}

	if r.Method == "POST" {
		var input trainerInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		t := trainerDomain.Trainer{
			ID:           generateID(),
			Name:         input.Name,
			Aka:          input.Aka,
			Title:        input.Title,
			Specialty:    input.Specialty,
			Experience:   input.Experience,
			Bio:          input.Bio,
			Achievements: input.Achievements,
			CreatedAt:    timeNow().UTC(),
		}
		if err := t.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.TrainerStore.Save(ctx, t); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handleAdminTrainerByID handles PUT/DELETE for /api/admin/trainers/{id}.
func handleAdminTrainerByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/trainers/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "trainer id is required", http.StatusBadRequest)
		return
	}

	if r.Method == "PUT" {
		existing, err := stores.TrainerStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "trainer not found", http.StatusNotFound)
			return
		}
		var input trainerInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		t := trainerDomain.Trainer{
			ID:           existing.ID,
			Name:         input.Name,
			Aka:          input.Aka,
			Title:        input.Title,
			Specialty:    input.Specialty,
			Experience:   input.Experience,
			Bio:          input.Bio,
			Achievements: input.Achievements,
			CreatedAt:    existing.CreatedAt,
		}
		if err := t.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.TrainerStore.Save(ctx, t); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
		return
	}

	if r.Method == "DELETE" {
		deleted, err := stores.TrainerStore.Delete(ctx, id)
		if err != nil {
			internalError(w, err)
			return
		}
		if !deleted {
			http.Error(w, "trainer not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// --- Testimonials ---

// handleTestimonials handles GET /api/testimonials.
func handleTestimonials(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	testimonials, err := stores.TestimonialStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	if testimonials == nil {
		testimonials = []testimonialDomain.Testimonial{}
	}
	writeJSON(w, http.StatusOK, testimonials)
}

type testimonialInput struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Text     string `json:"text"`
	PhotoURL string `json:"photo_url"`
	VideoURL string `json:"video_url"`
}

// handleAdminTestimonials handles GET/POST for /api/admin/testimonials.
func handleAdminTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		testimonials, err := stores.TestimonialStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if testimonials == nil {
			testimonials = []testimonialDomain.Testimonial{}
		}
		writeJSON(w, http.StatusOK, testimonials)
		return
	}

	if r.Method == "POST" {
		var input testimonialInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		t := testimonialDomain.Testimonial{
			ID:        generateID(),
			Name:      input.Name,
			Role:      input.Role,
			Text:      input.Text,
			PhotoURL:  input.PhotoURL,
			VideoURL:  input.VideoURL,
			CreatedAt: timeNow().UTC(),
		}
		if err := t.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.TestimonialStore.Save(ctx, t); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handleAdminTestimonialByID handles PUT/DELETE for /api/admin/testimonials/{id}.
func handleAdminTestimonialByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/testimonials/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "testimonial id is required", http.StatusBadRequest)
		return
	}

	if r.Method == "PUT" {
		existing, err := stores.TestimonialStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "testimonial not found", http.StatusNotFound)
			return
		}
		var input testimonialInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		t := testimonialDomain.Testimonial{
			ID:        existing.ID,
			Name:      input.Name,
			Role:      input.Role,
			Text:      input.Text,
			PhotoURL:  input.PhotoURL,
			VideoURL:  input.VideoURL,
			CreatedAt: existing.CreatedAt,
		}
		if err := t.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.TestimonialStore.Save(ctx, t); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
		return
	}

	if r.Method == "DELETE" {
		deleted, err := stores.TestimonialStore.Delete(ctx, id)
		if err != nil {
			internalError(w, err)
			return
		}
		if !deleted {
			http.Error(w, "testimonial not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// --- Success stories ---

// handleSuccessStories handles GET /api/success-stories. Bios are rendered
// from markdown for the public payload.
func handleSuccessStories(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	stories, err := projections.QueryGetSuccessStories(r.Context(), stores.SuccessStoryStore)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stories)
}

type storyInput struct {
	Name          string `json:"name"`
	Promotion     string `json:"promotion"`
	Achievement   string `json:"achievement"`
	YearGraduated string `json:"year_graduated"`
	Bio           string `json:"bio"`
	PhotoURL      string `json:"photo_url"`
	DisplayOrder  int    `json:"display_order"`
}

// handleAdminSuccessStories handles GET/POST for /api/admin/success-stories.
func handleAdminSuccessStories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		stories, err := stores.SuccessStoryStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if stories == nil {
			stories = []successStoryDomain.Story{}
		}
		writeJSON(w, http.StatusOK, stories)
		return
	}

	if r.Method == "POST" {
		var input storyInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		s := successStoryDomain.Story{
			ID:            generateID(),
			Name:          input.Name,
			Promotion:     input.Promotion,
			Achievement:   input.Achievement,
			YearGraduated: input.YearGraduated,
			Bio:           input.Bio,
			PhotoURL:      input.PhotoURL,
			DisplayOrder:  input.DisplayOrder,
			CreatedAt:     timeNow().UTC(),
		}
		if err := s.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.SuccessStoryStore.Save(ctx, s); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, s)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handleAdminSuccessStoryByID handles PUT/DELETE for /api/admin/success-stories/{id}.
func handleAdminSuccessStoryByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/success-stories/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "story id is required", http.StatusBadRequest)
		return
	}

	if r.Method == "PUT" {
		existing, err := stores.SuccessStoryStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "story not found", http.StatusNotFound)
			return
		}
		var input storyInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		s := successStoryDomain.Story{
			ID:            existing.ID,
			Name:          input.Name,
			Promotion:     input.Promotion,
			Achievement:   input.Achievement,
			YearGraduated: input.YearGraduated,
			Bio:           input.Bio,
			PhotoURL:      input.PhotoURL,
			DisplayOrder:  input.DisplayOrder,
			CreatedAt:     existing.CreatedAt,
		}
		if err := s.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.SuccessStoryStore.Save(ctx, s); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
		return
	}

	if r.Method == "DELETE" {
		deleted, err := stores.SuccessStoryStore.Delete(ctx, id)
		if err != nil {
			internalError(w, err)
			return
		}
		if !deleted {
			http.Error(w, "story not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}
