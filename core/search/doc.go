// Package search defines the shared types of the BigSpring search API:
// queries, intent classification results, response tiers, retrieved source
// chunks and play recommendations, plus the credential interfaces the HTTP
// client consumes.
//
// Semantics used across the package:
//
//   - Tier: quality/provenance classification of an answer. Tier1 is an
//     out-of-scope refusal, Tier2 a general professional answer without
//     retrieval, Tier3 a "no results" message, TierGrounded a cited answer
//     generated from retrieved context.
//   - Source: a retrieved chunk of assigned material backing a grounded
//     answer, ordered by relevance.
//   - Recommendation: a play suggested alongside the answer, ordered by the
//     server.
package search
