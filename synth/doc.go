// SPDX-License-Identifier: MIT
// Package synth generates deterministic graph fixtures and synthetic social
// datasets for tests, benchmarks and the CLI's -synthetic mode.
//
// Two families are provided:
//
//   - Topology constructors (Cycle, Path, Star, Complete, Disjoint) composed
//     by Build into a core.Graph. Constructors allocate consecutive node ids
//     starting at the configured base, so constructors applied in sequence
//     always produce disjoint parts.
//   - Dataset generators (Social, Locations) that produce the raw inputs of
//     an analysis run: a directed, asymmetric connection list with a heavy
//     degree tail, and partial node coordinates clustered around a few
//     population centres.
//
// Determinism: same options, seed and call order ⇒ identical output.
//
// Errors: every validation failure wraps core.ErrInvalidConfiguration,
// refined by ErrTooFewVertices or ErrInvalidProbability.
package synth
