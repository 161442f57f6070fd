// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package pipeline provides the core building blocks to create and run the
// two data pipelines of the tool: the vendor notification run
// (query -> vendor records -> email dispatch) and the spreadsheet
// consolidation run (read -> merge -> sink).
package pipeline
