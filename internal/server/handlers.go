package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bizforge/internal/common/errors"
	"bizforge/internal/common/metrics"
	"bizforge/internal/deploy"
	"bizforge/internal/marketing"
	"bizforge/internal/models"
	"bizforge/internal/sitegen"
	"bizforge/internal/staticgen"
	"bizforge/internal/validation"
)

const (
	targetNextJS = "nextjs"
	targetStatic = "static"
)

// decodeBusiness reads, schema-validates and unmarshals the request body.
func decodeBusiness(r *http.Request) (models.BusinessInfo, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return models.BusinessInfo{}, fmt.Errorf("read body: %w", err)
	}
	if err := validation.ValidateBusiness(raw); err != nil {
		return models.BusinessInfo{}, err
	}

	var biz models.BusinessInfo
	if err := json.Unmarshal(raw, &biz); err != nil {
		return models.BusinessInfo{}, errors.NewProfileValidationFailedError(err.Error())
	}
	return biz, nil
}

func (s *Server) baseURL(r *http.Request) string {
	if base := r.URL.Query().Get("baseUrl"); base != "" {
		return base
	}
	return s.defaultBaseURL
}

func targetOf(r *http.Request) (string, error) {
	target := r.URL.Query().Get("target")
	switch target {
	case "", targetNextJS:
		return targetNextJS, nil
	case targetStatic:
		return targetStatic, nil
	default:
		return "", fmt.Errorf("unknown target %q", target)
	}
}

func (s *Server) generate(biz models.BusinessInfo, baseURL, target string) models.FileMap {
	start := time.Now()

	var files models.FileMap
	if target == targetStatic {
		files = staticgen.Generate(biz, baseURL)
	} else {
		files = sitegen.Generate(biz, baseURL)
	}

	metrics.SitesGenerated.WithLabelValues(target).Inc()
	metrics.GenerationDuration.WithLabelValues(target).Observe(time.Since(start).Seconds())
	return files
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	s.serveGenerate(w, r, targetNextJS)
}

func (s *Server) handleGenerateStatic(w http.ResponseWriter, r *http.Request) {
	s.serveGenerate(w, r, targetStatic)
}

func (s *Server) serveGenerate(w http.ResponseWriter, r *http.Request, target string) {
	biz, err := decodeBusiness(r)
	if err != nil {
		respondError(w, err)
		return
	}

	files := s.generate(biz, s.baseURL(r), target)
	s.obs.RecordRequest(r.Context(), "/api/v1/generate", "ok")

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"target":    target,
		"fileCount": len(files),
		"files":     files,
	})
}

func (s *Server) handleGenerateArchive(w http.ResponseWriter, r *http.Request) {
	target, err := targetOf(r)
	if err != nil {
		respondBadRequest(w, "invalid target", err)
		return
	}

	biz, err := decodeBusiness(r)
	if err != nil {
		respondError(w, err)
		return
	}

	files := s.generate(biz, s.baseURL(r), target)
	archive, err := BuildArchive(files)
	if err != nil {
		s.log.Error("archive build failed", map[string]interface{}{"error": err.Error()})
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to build archive"})
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s-%s.zip"`, deploy.Slugify(biz.Name), target))
	w.WriteHeader(http.StatusOK)
	w.Write(archive)
}

func (s *Server) handleDeploy(w http.ResponseWriter, r *http.Request) {
	target, err := targetOf(r)
	if err != nil {
		respondBadRequest(w, "invalid target", err)
		return
	}

	biz, err := decodeBusiness(r)
	if err != nil {
		respondError(w, err)
		return
	}

	files := s.generate(biz, s.baseURL(r), target)

	record := models.DeployRecord{
		ID:        uuid.NewString(),
		State:     models.DeployStatePending,
		StartedAt: time.Now().UTC(),
	}
	if err := s.statuses.Put(r.Context(), record); err != nil {
		s.log.Warn("deploy record write failed", map[string]interface{}{"error": err.Error()})
	}

	result := s.deployer.Deploy(r.Context(), biz, files)

	record.State = stateForResult(result)
	record.URL = result.NetlifyURL
	record.Error = result.Error
	if err := s.statuses.Put(r.Context(), record); err != nil {
		s.log.Warn("deploy record update failed", map[string]interface{}{"error": err.Error()})
	}

	if err := s.notifier.DeployFinished(r.Context(), biz, result); err != nil {
		s.log.Warn("deploy notification failed", map[string]interface{}{"error": err.Error()})
	}

	s.obs.RecordRequest(r.Context(), "/api/v1/deploy", record.State)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"deployId":   record.ID,
		"success":    result.Success,
		"netlifyUrl": result.NetlifyURL,
		"error":      result.Error,
	})
}

// stateForResult folds a deploy result into a record state, keeping the
// timeout distinct from a remote error.
func stateForResult(result models.DeployResult) string {
	if result.Success {
		return models.DeployStateReady
	}
	if result.Error == errors.NewDeployTimedOutError(0).Message {
		return models.DeployStateTimedOut
	}
	return models.DeployStateError
}

func (s *Server) handleDeployStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "deployId")

	record, ok, err := s.statuses.Get(r.Context(), id)
	if err != nil {
		s.log.Error("deploy status read failed", map[string]interface{}{"deployId": id, "error": err.Error()})
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read deploy status"})
		return
	}
	if !ok {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "deploy not found"})
		return
	}
	respondJSON(w, http.StatusOK, record)
}

func (s *Server) handleMarketingCopy(w http.ResponseWriter, r *http.Request) {
	biz, err := decodeBusiness(r)
	if err != nil {
		respondError(w, err)
		return
	}

	platform := r.URL.Query().Get("platform")
	if platform == "" {
		platform = marketing.PlatformFacebook
	}

	profile := marketing.FindIndustryProfile(biz.BusinessType, biz.Name, biz.Services)
	adCopy := marketing.GenerateAdCopy(profile, biz.Name, biz.Services, biz.City, platform)
	metrics.MarketingCopyRequests.WithLabelValues(platform).Inc()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"industry": profile.Name,
		"platform": platform,
		"copy":     adCopy,
	})
}

func (s *Server) handleMarketingPrompts(w http.ResponseWriter, r *http.Request) {
	biz, err := decodeBusiness(r)
	if err != nil {
		respondError(w, err)
		return
	}

	platform := r.URL.Query().Get("platform")
	if platform == "" {
		platform = marketing.PlatformInstagram
	}

	profile := marketing.FindIndustryProfile(biz.BusinessType, biz.Name, biz.Services)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"industry":    profile.Name,
		"platform":    platform,
		"imagePrompt": marketing.GenerateImagePrompt(profile, biz, platform),
		"videoScript": marketing.GenerateVideoScript(profile, biz, platform),
	})
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	biz, err := decodeBusiness(r)
	if err != nil {
		respondError(w, err)
		return
	}

	saved, err := s.profiles.Create(r.Context(), biz)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	saved, err := s.profiles.Get(r.Context(), chi.URLParam(r, "profileId"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

func (s *Server) handlePatchProfile(w http.ResponseWriter, r *http.Request) {
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		respondBadRequest(w, "invalid request body", err)
		return
	}

	saved, err := s.profiles.Patch(r.Context(), chi.URLParam(r, "profileId"), patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}
