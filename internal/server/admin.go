package server

import (
	"fmt"
	"net/http"
	"time"

	"nightnurse/internal/export"
	"nightnurse/pkg/types"
)

type AdminPageData struct {
	PageData
	ParentsCount     int64
	CaregiversCount  int64
	RecentParents    []*types.Parent
	RecentCaregivers []*types.Caregiver
}

// RequireAdmin gates the operator surface. This is a browser-facing page,
// not an API, so failure is a redirect to the login view rather than a 401.
func (s *Service) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.isAdmin(r) {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Service) isAdmin(r *http.Request) bool {
	cookie, err := r.Cookie(s.config.CookieName)
	if err != nil {
		return false
	}

	var isAdmin bool
	if err := s.cookie.Decode(s.config.CookieName, cookie.Value, &isAdmin); err != nil {
		s.logger.WithError(err).Debug("failed to decode admin session cookie")
		return false
	}

	return isAdmin
}

func (s *Service) setAdminSession(w http.ResponseWriter) error {
	encoded, err := s.cookie.Encode(s.config.CookieName, true)
	if err != nil {
		return fmt.Errorf("encode admin session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.Environment == "production",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   s.config.SessionMaxAgeSec,
	})

	return nil
}

func (s *Service) clearAdminSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.Environment == "production",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (s *Service) handleGetAdminLogin(w http.ResponseWriter, r *http.Request) {
	if s.isAdmin(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	s.renderPage(w, "page.login", LoginPageData{
		PageData: PageData{Title: "Admin Login | Tahoe Night Nurse"},
		Error:    r.URL.Query().Get("error"),
	})
}

func (s *Service) handlePostAdminLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/login?error=Invalid credentials", http.StatusSeeOther)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if username != s.config.AdminUser || password != s.config.AdminPass {
		s.logger.WithField("username", username).Warn("failed admin login attempt")
		http.Redirect(w, r, "/admin/login?error=Invalid credentials", http.StatusSeeOther)
		return
	}

	if err := s.setAdminSession(w); err != nil {
		s.logger.WithError(err).Error("failed to set admin session")
		s.internalServerError(w)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Service) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	s.clearAdminSession(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Service) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	parents, err := s.parents.All(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to load parents for dashboard")
		s.internalServerError(w)
		return
	}

	caregivers, err := s.caregivers.All(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to load caregivers for dashboard")
		s.internalServerError(w)
		return
	}

	parentsCount, err := s.parents.Count(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to count parents for dashboard")
		s.internalServerError(w)
		return
	}

	caregiversCount, err := s.caregivers.Count(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to count caregivers for dashboard")
		s.internalServerError(w)
		return
	}

	s.renderPage(w, "page.admin", AdminPageData{
		PageData:         PageData{Title: "Admin | Tahoe Night Nurse"},
		ParentsCount:     parentsCount,
		CaregiversCount:  caregiversCount,
		RecentParents:    head(parents, 10),
		RecentCaregivers: head(caregivers, 10),
	})
}

func (s *Service) handleAdminExport(w http.ResponseWriter, r *http.Request) {
	exportType := r.URL.Query().Get("type")
	if exportType == "" {
		exportType = "parents"
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s-%s.csv", exportType, time.Now().Format("2006-01-02"))))

	var err error
	if exportType == "parents" {
		var parents []*types.Parent
		if parents, err = s.parents.All(r.Context()); err == nil {
			err = export.Parents(w, parents)
		}
	} else {
		var caregivers []*types.Caregiver
		if caregivers, err = s.caregivers.All(r.Context()); err == nil {
			err = export.Caregivers(w, caregivers)
		}
	}

	if err != nil {
		s.logger.WithError(err).WithField("type", exportType).Error("failed to generate export")
		w.Header().Del("Content-Disposition")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Error generating export"))
	}
}

func head[T any](records []T, n int) []T {
	if len(records) < n {
		return records
	}
	return records[:n]
}
