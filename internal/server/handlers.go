package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rizeos/skill-match/internal/match"
)

// noTextFromPDF is returned when a resume PDF decodes but yields nothing.
const noTextFromPDF = "No text extracted from PDF. Please use a text-based (non-scanned) PDF."

// ExtractSkillsRequest represents the request body for /skills/extract.
// At least one of the fields must carry meaningful content.
type ExtractSkillsRequest struct {
	Text         string `json:"text"`
	ResumeBase64 string `json:"resume_base64"`
}

// ExtractSkillsResponse carries the extracted skills. Both fields hold the
// same list; extractedSkills exists for structured UI consumers.
type ExtractSkillsResponse struct {
	Skills          []string `json:"skills"`
	ExtractedSkills []string `json:"extractedSkills"`
}

// MatchRequest represents the request body for /match.
type MatchRequest struct {
	JobDescription  string   `json:"job_description" validate:"required"`
	CandidateBio    string   `json:"candidate_bio" validate:"required"`
	JobSkills       []string `json:"job_skills"`
	CandidateSkills []string `json:"candidate_skills"`
}

// MatchResponse carries the 0-100 fitment score.
type MatchResponse struct {
	Score float64 `json:"score"`
}

// RecommendationRequest is shared by both recommendation endpoints.
type RecommendationRequest struct {
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
	Jobs   []string `json:"jobs"`
}

// handleRoot returns a bare liveness probe.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"data": map[string]string{"status": "ok"},
	})
}

// handleExtractSkills extracts normalized skills from free text or a
// base64-encoded PDF resume.
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req ExtractSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	text, err := s.resolveText(req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ProviderTimeout)
	defer cancel()

	skills := s.pipeline.Skills(ctx, text)
	if skills == nil {
		skills = []string{}
	}

	s.jsonResponse(w, http.StatusOK, ExtractSkillsResponse{
		Skills:          skills,
		ExtractedSkills: skills,
	})
}

// resolveText combines direct text with text extracted from a base64 PDF,
// when one is supplied. PDF problems are client errors.
func (s *Server) resolveText(req ExtractSkillsRequest) (string, error) {
	text := req.Text
	if req.ResumeBase64 == "" {
		return text, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(req.ResumeBase64)
	if err != nil {
		return "", &ErrInvalidInput{Message: "Invalid resume: " + err.Error()}
	}
	pages, err := s.pdf.ExtractPages(decoded)
	if err != nil {
		return "", &ErrInvalidInput{Message: "Invalid resume: " + err.Error()}
	}
	text += strings.Join(pages, "\n")

	if strings.TrimSpace(text) == "" {
		return "", &ErrInvalidInput{Message: noTextFromPDF}
	}
	return text, nil
}

// handleMatch scores a job description against a candidate bio.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if strings.TrimSpace(req.JobDescription) == "" || strings.TrimSpace(req.CandidateBio) == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_description and candidate_bio must be non-empty")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ProviderTimeout)
	defer cancel()

	provider, err := s.embedProvider(ctx)
	if err != nil {
		provErr := &ErrProvider{Op: "embedding", Err: err}
		s.errorResponse(w, HTTPStatus(provErr), provErr.Error())
		return
	}

	score, err := match.Score(ctx, provider, req.JobDescription, req.CandidateBio, req.JobSkills, req.CandidateSkills)
	if err != nil {
		provErr := &ErrProvider{Op: "embedding", Err: err}
		s.errorResponse(w, HTTPStatus(provErr), provErr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, MatchResponse{Score: score})
}

// handleRecruiterRecommendations turns the first skills into candidate
// search suggestions.
func (s *Server) handleRecruiterRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	topSkills := req.Skills
	if len(topSkills) > 5 {
		topSkills = topSkills[:5]
	}
	suggestions := make([]string, 0, len(topSkills))
	for _, skill := range topSkills {
		suggestions = append(suggestions, fmt.Sprintf("Search candidates with %s", skill))
	}
	if topSkills == nil {
		topSkills = []string{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"suggestions": suggestions,
			"top_skills":  topSkills,
		},
	})
}

// handleSeekerRecommendations suggests the first jobs, or a profile
// completion nudge when there are none.
func (s *Server) handleSeekerRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	suggestions := req.Jobs
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	if len(suggestions) == 0 {
		suggestions = []string{"Complete your profile to see matches"}
	}
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"suggestions": suggestions,
			"skills":      skills,
		},
	})
}
