// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package supplier defines the vendor records built from the warehouse
// compliance query and the grouping logic that assembles them from flat
// contact rows.
package supplier
