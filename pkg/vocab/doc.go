// Package vocab holds the per-family SCPI command vocabulary.
//
// The DS1000Z and DS2000A families speak closely related but distinct
// command sets (different screenshot queries, channel counts, and transfer
// chunk sizes), so the vocabulary is data, not code: each family has an
// embedded YAML manifest mapping operation names to command templates.
// Load validates at startup that a manifest defines every operation the
// driver uses; a missing entry is a manifest bug, not a runtime surprise.
package vocab
