package reconcile

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Run reconciles the ledger against storage. Both indices are loaded concurrently.
func Run(ctx context.Context, spec *Spec, ledger, store Source) (*Report, error) {
	idx, err := buildIndices(ctx, spec, ledger, store)
	if err != nil {
		return nil, err
	}
	return compare(spec, idx), nil
}

func buildIndices(ctx context.Context, spec *Spec, ledger, store Source) (*indices, error) {
	var ledgerSet, storageSet map[string]struct{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ledgerSet, err = ledger.Keys(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		storageSet, err = store.Keys(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Ledger keys outside the prefix are not part of this listing.
	if spec.Prefix != "" {
		for key := range ledgerSet {
			if !strings.HasPrefix(key, spec.Prefix) {
				delete(ledgerSet, key)
			}
		}
	}

	return &indices{
		ledger:  ledgerSet,
		storage: storageSet,
		built:   time.Now(),
		ttl:     spec.CacheTTL,
	}, nil
}

func compare(spec *Spec, idx *indices) *Report {
	union := make(map[string]struct{}, len(idx.ledger)+len(idx.storage))
	for key := range idx.ledger {
		union[key] = struct{}{}
	}
	for key := range idx.storage {
		union[key] = struct{}{}
	}

	report := &Report{Results: []Result{}, Built: idx.built}
	for key := range union {
		_, inLedger := idx.ledger[key]
		_, inStorage := idx.storage[key]

		res := Result{Key: key, LedgerPresent: inLedger, StoragePresent: inStorage}
		switch {
		case inLedger && inStorage:
			res.Status = StatusOK
			report.Summary.Matched++
		case inLedger:
			res.Status = StatusMissingStorage
			report.Summary.MissingStorage++
		default:
			res.Status = StatusUntracked
			report.Summary.Untracked++
		}
		report.Summary.Total++

		if res.Status != StatusOK || spec.IncludeMatched {
			report.Results = append(report.Results, res)
		}
	}

	// Sort results by key for deterministic output
	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Key < report.Results[j].Key
	})
	return report
}
