// Package loader turns road-network definitions into validated core.Graph values.
//
// A network is described by a Definition: a name, a list of locations with an
// optional category, and a list of undirected connections weighted in minutes.
// Definitions come from:
//
//   - YAML files (LoadYAML / DecodeYAML),
//   - TOML files (LoadTOML / DecodeTOML),
//   - OpenStreetMap XML extracts (LoadOSM / DecodeOSM),
//   - a Neo4j database (ReadNeo4j), through the GraphClient interface,
//   - the embedded sample city (Sample).
//
// Load picks the decoder from the file extension.
//
// Every path ends in Definition.Graph, which hands the data to core.Build, so
// all input is validated the same way regardless of where it came from.
package loader
