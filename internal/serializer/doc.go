// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package serializer shapes API resources to and from their JSON-LD
// representation.
//
// Which attributes are read or written depends on the serialization groups of
// the operation. Each resource carries a static attribute table mapping every
// attribute to its groups; an operation without groups sees every attribute.
// Related resources are referenced by IRI, or embedded when the related type
// exposes attributes in the active groups.
package serializer
