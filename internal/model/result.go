package model

// CandidateSource identifies where a name or profile candidate came from.
type CandidateSource string

const (
	// Name candidate sources.
	SourceMeta          CandidateSource = "meta"
	SourceHeading       CandidateSource = "heading"
	SourceTitleFallback CandidateSource = "title_fallback"
	SourceURLDerived    CandidateSource = "url_derived"
	SourceProfilePage   CandidateSource = "profile_page"

	// Profile candidate sources.
	SourceConfiguredSelector CandidateSource = "configured_selector"
	SourcePageScan           CandidateSource = "page_scan"
	SourceSubpageScan        CandidateSource = "subpage_scan"
	SourceGenerated          CandidateSource = "generated"
	SourceSearchEngine       CandidateSource = "search_engine"
)

// NameCandidate is a tentative company name with its provenance. Candidates
// are compared by source precedence only and are never persisted.
type NameCandidate struct {
	Value  string          `json:"value"`
	Source CandidateSource `json:"source"`
}

// ProfileCandidate is a tentative external profile URL. Candidates from
// generated or search-engine stages must be verified before promotion;
// candidates observed directly in markup are trusted as-is.
type ProfileCandidate struct {
	URL      string          `json:"url"`
	Source   CandidateSource `json:"source"`
	Verified bool            `json:"verified"`
}

// ResolutionResult is the single structured output of one resolution.
// Error is set if and only if the top-level fetch failed; every other field
// may be absent on an otherwise successful run.
type ResolutionResult struct {
	URL         string   `json:"url"`
	Name        string   `json:"name,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	ProfileURL  string   `json:"profile_url,omitempty"`
	Industry    string   `json:"industry,omitempty"`
	CompanySize string   `json:"company_size,omitempty"`
	FoundedYear string   `json:"founded_year,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// AddWarning appends a degradation note to the result.
func (r *ResolutionResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
