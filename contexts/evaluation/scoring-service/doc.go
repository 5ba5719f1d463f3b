// Package scoringservice implements evaluation scoring inside the
// evaluation context.
//
// The module owns weighted evaluation criteria, per-criterion score entries
// (one per applicant and criterion, upsert semantics), the aggregated total
// score, deterministic rankings, and tie-group detection feeding the
// tie-break lottery.
package scoringservice
