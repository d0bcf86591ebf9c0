// Package genre assigns genres to books that have none.
//
// A RuleClassifier handles well known authors and strong title keywords locally. Books it
// cannot place are sent in batches to an OpenAI compatible chat completions endpoint when an
// API key is configured. The Runner spaces remote requests with a token bucket limiter and
// retries failed batches with doubling backoff; a batch that still fails is left unclassified
// for the next run.
//
// Merge folds alias labels (misspellings, narrow sub-genres) into canonical ones.
package genre
