package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nightnurse/internal/intake"
	"nightnurse/pkg/types"
)

const (
	submitErrMsg      = "We couldn't submit right now. Please try again in a moment."
	applicationErrMsg = "We couldn't submit your application right now. Please try again."

	storeTimeout = 5 * time.Second
)

// wantsJSON mirrors the request's own content type: clients posting JSON get
// JSON back, browsers posting forms get redirected.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Content-Type"), "json")
}

// decodeSubmission fills dst and returns the fields actually submitted, for
// the operator notification. JSON bodies are flattened to form values first
// so boolean and numeric JSON fields decode the same as their form-encoded
// counterparts.
func (s *Service) decodeSubmission(r *http.Request, dst any) (map[string]string, error) {
	var values url.Values

	if wantsJSON(r) {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, err
		}
		values = jsonValues(raw)
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		values = r.PostForm
	}

	if err := decoder.Decode(dst, values); err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(values))
	for name, vals := range values {
		fields[name] = strings.Join(vals, ", ")
	}
	return fields, nil
}

func jsonValues(raw map[string]any) url.Values {
	values := url.Values{}
	for name, v := range raw {
		switch val := v.(type) {
		case nil:
			// treated as not submitted
		case []any:
			for _, item := range val {
				values.Add(name, scalarString(item))
			}
		default:
			values.Add(name, scalarString(val))
		}
	}
	return values
}

func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// redirectThankYou acknowledges a submission. Bot-flagged submissions take
// this exact path too, so an automated sender can't tell it was detected.
func (s *Service) redirectThankYou(w http.ResponseWriter, r *http.Request, kind string) {
	http.Redirect(w, r, "/thank-you?type="+kind, http.StatusSeeOther)
}

func (s *Service) acknowledge(w http.ResponseWriter, r *http.Request, kind string, duplicate bool) {
	if wantsJSON(r) {
		s.respondJSON(w, http.StatusOK, map[string]any{"ok": true, "duplicate": duplicate})
		return
	}
	s.redirectThankYou(w, r, kind)
}

func (s *Service) handleParentSubmit(w http.ResponseWriter, r *http.Request) {
	var sub types.ParentSubmission
	fields, err := s.decodeSubmission(r, &sub)
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "invalid form payload"})
		return
	}

	errs, bot := intake.ValidateParent(sub)
	if bot {
		s.redirectThankYou(w, r, "parent")
		return
	}
	if len(errs) > 0 {
		s.respondJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "errors": errs})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	record := intake.NewParent(sub)
	duplicate, err := s.parents.Upsert(ctx, record)
	if err != nil {
		s.logger.WithError(err).Error("failed to save parent")
		s.respondJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": submitErrMsg})
		return
	}

	go s.notifier.Notify("parent", fields)

	s.acknowledge(w, r, "parent", duplicate)
}

func (s *Service) handleCaregiverSubmit(w http.ResponseWriter, r *http.Request) {
	var sub types.CaregiverSubmission
	fields, err := s.decodeSubmission(r, &sub)
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "invalid form payload"})
		return
	}

	errs, bot := intake.ValidateCaregiver(sub)
	if bot {
		s.redirectThankYou(w, r, "caregiver")
		return
	}
	if len(errs) > 0 {
		s.respondJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "errors": errs})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	record := intake.NewCaregiver(sub)
	duplicate, err := s.caregivers.Upsert(ctx, record)
	if err != nil {
		s.logger.WithError(err).Error("failed to save caregiver")
		s.respondJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": submitErrMsg})
		return
	}

	go s.notifier.Notify("caregiver", fields)

	s.acknowledge(w, r, "caregiver", duplicate)
}

func (s *Service) handleApplicationSubmit(w http.ResponseWriter, r *http.Request) {
	var sub types.ApplicationSubmission
	fields, err := s.decodeSubmission(r, &sub)
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "invalid form payload"})
		return
	}

	errs, bot := intake.ValidateApplication(sub)
	if bot {
		s.redirectThankYou(w, r, "nanny")
		return
	}
	if len(errs) > 0 {
		s.respondJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "errors": errs})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	record := intake.NewCaregiverFromApplication(sub)
	duplicate, err := s.caregivers.Upsert(ctx, record)
	if err != nil {
		s.logger.WithError(err).Error("failed to save nanny application")
		s.respondJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": applicationErrMsg})
		return
	}

	fields["form_type"] = "Enhanced Nanny Network Application"
	go s.notifier.Notify("nanny", fields)

	s.acknowledge(w, r, "nanny", duplicate)
}
