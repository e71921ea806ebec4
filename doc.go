package goarr

// Package goarr provides:
//
// - A stable error model via Issues (JSON Pointer, code, record, field, declared type)
// - Decode options carried by context (fail-fast vs collect)
// - Presence metadata for preserving encodes through WithMeta-style APIs
// - A pluggable JSON driver with duplicate-key detection
//
// Design policy:
// - Keep only shared public types in the root package.
// - Place scalar and enum codecs under codec/, the record descriptor and the
//   generic decoder/encoder under record/, and the HTTP layer under transport/.
// - Service catalogs live in sonarr/ and radarr/; the CLI under cmd/goarr.
//
// Typical usage:
//
//	q, err := record.DecodeJSON[sonarr.QueueItem](ctx, body)
//	body, err := record.EncodeJSON(ctx, episode)
//
//	dm, err := record.DecodeWithMeta[sonarr.Series](ctx, wire)
//	wire2, err := record.EncodePreserving(ctx, dm)
