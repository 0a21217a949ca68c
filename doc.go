// Package allocation provides a small, composable pipeline for computing
// portfolio allocations: tables of per-asset weights keyed by day.
//
// The core abstractions are:
//   - Stage: anything that can produce an allocation Table for a sequence
//     of days. Stages are pure: same configuration and days, same table.
//   - DayStage: a simpler contract for stages whose computation is
//     independent per day; EachDay adapts one into a full Stage.
//   - Combinators: stages that wrap an upstream stage and transform its
//     table, forming a linear chain (e.g. EqualWeight).
//
// The entry point is Allocation (or AllocationStrings), which normalizes
// the requested days (parsing, deduplication, chronological sort) before
// invoking the stage, so every stage can assume a canonical day sequence.
//
// This package serves as the foundational logic for the `palloc`
// command-line tool.
package allocation
