// Package xfin provides portfolio stress testing over broker-exported CSV
// files of heterogeneous, unpredictable formats.
//
// The core functionalities include:
//   - Ingestion: tolerant recovery of tabular data from broker exports,
//     including fuzzy column-role resolution and per-row salvage of holdings
//     whose identity fields are missing or mangled.
//   - Classification: mapping each holding to a coarse asset category and an
//     industry sector using fixed lookup tables and keyword heuristics.
//   - Stress Analysis: aggregating holdings into a weighted composition and
//     applying named stress scenarios to produce an impact estimate, a risk
//     level, a recovery-time estimate and a simplified VaR figure.
//   - Ticker Resolution: mapping company names, ISINs and raw symbols to
//     canonical exchange tickers for market-data and ESG lookups.
//
// The package is purely synchronous and CPU bound. All network and storage
// concerns (sector lookups, ESG fetching and caching, rendering, the CLI)
// live in subpackages and reach the core only as already-resolved values or
// small collaborator interfaces.
package xfin
