// Package finance provides the state layer of a personal finance tracker.
// It is designed to be local-first: all data lives in a directory of JSON
// files, giving users full control and transparency over their records.
//
// The core functionalities include:
//   - Transaction tracking: recording income and expense events, grouped by
//     category, with balance, monthly and per-category aggregations.
//   - Portfolio management: holdings of crypto, stock and forex assets valued
//     against a manually updatable price table, with profit/loss, distribution
//     and ranking statistics.
//   - Budgeting: a monthly spending limit consulted advisory-style before
//     recording new expenses.
//   - Observability: both stores publish their collections as streams with
//     replay-latest-on-subscribe semantics, so any number of views can react
//     to mutations.
//
// This package serves as the foundational logic for the `finapp` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package finance
