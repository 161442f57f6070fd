// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package warehouse provides the abstracted query and load interfaces over
// the data warehouse and their database/sql implementation. The concrete
// driver (postgres or snowflake) and connection settings come from
// environment variables.
package warehouse
