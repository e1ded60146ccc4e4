// Package sales loads sales transactions from CSV and aggregates them with
// small pure functions.
//
// Common usage:
// - Load/LoadFile: decode a CSV of transactions, lenient on bad numerics
// - Map/Filter/Reduce/GroupBy: generic building blocks for aggregation
// - Analysis: revenue totals, groupings, top products, trends, statistics
// - WriteReport: the full console report over an Analysis
package sales
