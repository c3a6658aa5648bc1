package esg

import (
	"github.com/rs/zerolog"

	xfin "github.com/DhruvParmar10/XFIN"
	"github.com/DhruvParmar10/XFIN/yahoo"
)

// Source fetches ESG scores for a ticker. *yahoo.Client satisfies it; tests
// substitute stubs.
type Source interface {
	ESG(ticker string) (*yahoo.Scores, error)
}

// Fetcher resolves the best ticker for a holding and runs the fetch chain:
// cache, then the remote source under the improved ticker, then under the
// original one.
type Fetcher struct {
	store  *Store
	source Source
	log    zerolog.Logger
}

// NewFetcher builds a fetcher over the cache and remote source. store may
// be nil to disable caching.
func NewFetcher(store *Store, source Source, log zerolog.Logger) *Fetcher {
	return &Fetcher{store: store, source: source, log: log}
}

// Fetch returns ESG scores for a holding, or nil when no source knows it.
// The holding's name, ISIN and symbol are combined into the best possible
// ticker first; when that remapping changes the ticker, the original one is
// still tried as a fallback.
func (f *Fetcher) Fetch(companyName, isin, ticker string) (*yahoo.Scores, error) {
	improved := xfin.ResolveTicker(companyName, isin, ticker)
	if improved != ticker {
		f.log.Debug().Str("company", companyName).Str("from", ticker).Str("to", improved).Msg("ticker remapped")
	}

	if scores, err := f.lookup(improved, companyName); scores != nil || err != nil {
		return scores, err
	}
	if improved != ticker && ticker != "" {
		return f.lookup(ticker, companyName)
	}
	return nil, nil
}

// lookup runs cache-then-source for one ticker, caching any fresh result.
func (f *Fetcher) lookup(ticker, companyName string) (*yahoo.Scores, error) {
	if f.store != nil {
		cached, err := f.store.Get(ticker)
		if err != nil {
			f.log.Warn().Err(err).Str("ticker", ticker).Msg("esg cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	scores, err := f.source.ESG(ticker)
	if err != nil {
		return nil, err
	}
	if scores == nil {
		return nil, nil
	}
	if f.store != nil {
		if err := f.store.Put(ticker, companyName, scores); err != nil {
			f.log.Warn().Err(err).Str("ticker", ticker).Msg("esg cache write failed")
		}
	}
	return scores, nil
}
