// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package config loads the YAML run configurations: the notification
// settings for the notify pipeline and the column mapping for the
// consolidation pipeline.
package config
