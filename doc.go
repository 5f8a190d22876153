// Package geosocial analyses large geo-tagged social graphs in memory:
// it samples a tractable working subgraph from a raw crawl, then detects
// communities, builds a geographic minimum spanning forest and estimates
// the typical shortest-path length.
//
// Pipeline:
//
//	raw rows ──► sampler ──► core.Graph ──┬─► labelprop  (communities)
//	                                      ├─► spanning   (forest, km)
//	                                      └─► pathsample (BFS pairs)
//
// Packages:
//
//	core/       dense CSR graph, builder, components, error taxonomy
//	geo/        coordinates and haversine distance
//	rng/        seeded random streams
//	sampler/    hub-plus-random subgraph sampling
//	unionfind/  disjoint sets for Kruskal
//	labelprop/  asynchronous label propagation and partition statistics
//	spanning/   Kruskal and Prim spanning forests with statistics
//	bfs/        traversal with hooks and early-exit pair distance
//	pathsample/ random-pair path-length estimation
//	synth/      fixture topologies and synthetic social datasets
//	ingest/     location and connection file loaders
//	config/     YAML/TOML run configuration
//	logging/    zap logger construction
//	metrics/    Prometheus run metrics
//	analysis/   the orchestrated pipeline
//	report/     text summary
//
// Every random stage takes an explicit source; the same seed reproduces the
// same run.
//
//	go run ./cmd/geosocial -synthetic 10000 -seed 7
package geosocial
