package reconcile

import "time"

// Status classifies one reconciled key.
type Status string

const (
	// StatusOK means the key is recorded in the ledger and present in storage.
	StatusOK Status = "ok"
	// StatusMissingStorage means the ledger records an upload the bucket no longer holds.
	StatusMissingStorage Status = "missing_storage"
	// StatusUntracked means the bucket holds an object the ledger never recorded.
	StatusUntracked Status = "untracked"
)

// Result is the reconciliation output for a single object key.
type Result struct {
	Key            string `json:"key"`
	LedgerPresent  bool   `json:"ledger_present"`
	StoragePresent bool   `json:"storage_present"`
	Status         Status `json:"status"`
}

// Summary provides aggregate counts over a reconciliation.
type Summary struct {
	Total          int `json:"total"`
	Matched        int `json:"matched"`
	MissingStorage int `json:"missing_storage"`
	Untracked      int `json:"untracked"`
}

// Report is the outcome of a full reconciliation.
type Report struct {
	// Results lists only keys that need attention unless IncludeMatched is set.
	Results []Result  `json:"results"`
	Summary Summary   `json:"summary"`
	Built   time.Time `json:"built"`
}

// Spec configures a reconciliation.
type Spec struct {
	// Prefix limits the storage listing.
	Prefix string
	// CacheTTL keeps built indices for repeated calls. Zero disables caching.
	CacheTTL time.Duration
	// IncludeMatched keeps StatusOK entries in Report.Results.
	IncludeMatched bool
}

// CacheKey returns the key under which indices for this spec are cached.
func (s *Spec) CacheKey() string {
	return "ledger|" + s.Prefix
}
