// Package itemset prepares raw transactions for FP-tree construction.
//
// An FP-tree expects every transaction reduced to its frequent items and
// sorted by descending global frequency. This package does that work:
//
//   - ReadTransactions parses one transaction per line.
//   - CountSupport counts, per item, the transactions containing it.
//   - Ranking keeps the items with support ≥ minSupport, ordered by support
//     descending and label ascending, and reorders transactions to match.
//   - Prepare chains the three steps.
//
// The resulting Ranking.Ranks() map plugs into fptree.WithItemRank so the
// tree can verify the order it receives.
package itemset
