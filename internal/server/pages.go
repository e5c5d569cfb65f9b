package server

import "net/http"

type PageData struct {
	Title       string
	Description string
}

type ThankYouPageData struct {
	PageData
	Type string
}

type LoginPageData struct {
	PageData
	Error string
}

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "page.home", PageData{
		Title:       "Overnight Newborn Care in Lake Tahoe & Truckee | Tahoe Night Nurse",
		Description: "Trusted overnight newborn care for 0–6 months in Lake Tahoe & Truckee. Join the parent interest list or apply as a night-nurse caregiver. Private, high-touch intake—no bookings online.",
	})
}

func (s *Service) handleParentsPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "page.parents", PageData{
		Title:       "Parent Interest Form | Tahoe Night Nurse",
		Description: "Tell us about your family and timing. We'll keep you posted as availability opens in Lake Tahoe & Truckee.",
	})
}

func (s *Service) handleCaregiversPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "page.caregivers", PageData{
		Title:       "Caregiver Application | Tahoe Night Nurse",
		Description: "Apply to be considered for overnight newborn care opportunities in the Tahoe area.",
	})
}

func (s *Service) handleNannyNetworkPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "page.nanny_network", PageData{
		Title:       "Join Our Network | Tahoe Night Nurse",
		Description: "Join the premier night nanny network in Lake Tahoe & Truckee. Premium rates, vetted families, flexible scheduling.",
	})
}

func (s *Service) handleThankYouPage(w http.ResponseWriter, r *http.Request) {
	submissionType := r.URL.Query().Get("type")
	if submissionType == "" {
		submissionType = "parent"
	}

	s.renderPage(w, "page.thank_you", ThankYouPageData{
		PageData: PageData{
			Title:       "Thank You | Tahoe Night Nurse",
			Description: "Thank you for your interest.",
		},
		Type: submissionType,
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Service) renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.WithError(err).WithField("template", name).Error("failed to render page")
		s.internalServerError(w)
	}
}
