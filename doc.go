// Package cityroute is an emergency-response route planner for city road
// networks: shortest travel times from a station to every location, side by
// side comparison of stations, and what-if congestion on individual roads.
//
// 🚑 What's inside?
//
//	• Graph: immutable, validated road network with categorised locations
//	• Shortest paths: Dijkstra with heap or linear-scan frontier and a trace stream
//	• Perturbation: congested copies of a network, the original never changes
//	• Analysis: rankings, two-station comparison, route-change detection, dispatch
//	• Loading: YAML, TOML, OpenStreetMap XML, Neo4j, plus a built-in sample city
//	• History: SQLite run store; terminal tables for every report
//	• Tooling: synthetic grid/ring/random networks, hop counts and components
//
// Packages:
//
//	core/     — Location, Connection, Graph; Build, Neighbors, Clone, WithWeight
//	dijkstra/ — ComputeShortestPaths, Result, Recorder, trace events
//	perturb/  — WithModifiedWeight, Apply, Scale, Parse
//	analysis/ — RankByDistance, CompareSources, DetectRouteChange, Dispatch,
//	            CongestionImpact, ComputeAll
//	loader/   — network definitions from files, Neo4j and the sample city
//	builder/  — Grid, Ring, RandomSparse generators with seeded weights
//	bfs/      — hop-count search, Components, Connected
//	store/    — SQLite run history
//	report/   — lipgloss tables
//	config/   — TOML configuration with environment overrides
//	logging/  — logrus setup and the engine trace hook
//	cmd/cityroute — the CLI
//
// Quick ASCII example (minutes on each road):
//
//	Hospital_A ─4─ Intersection_Central ─4─ Market
//	                      │                   │
//	                      3                   3
//	                      └── FireStation ────┘
//
// Jam Intersection_Central—Market to 15 and the route to Market moves through
// FireStation: 10 minutes instead of 8.
//
//	go install github.com/katalvlaran/cityroute/cmd/cityroute@latest
package cityroute
