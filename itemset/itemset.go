package itemset

import (
	"errors"
	"fmt"
	"sort"
)

// ErrBadMinSupport indicates a minimum support below 1.
var ErrBadMinSupport = errors.New("itemset: minimum support must be at least 1")

// Transaction is one input record: a sequence of item labels.
type Transaction []string

// CountSupport returns, for every item, the number of transactions that
// contain it. Repeated items inside one transaction are counted once; empty
// labels are ignored.
// Complexity: O(total items)
func CountSupport(txs []Transaction) map[string]int {
	support := make(map[string]int)
	seen := make(map[string]struct{})
	for _, tx := range txs {
		for k := range seen {
			delete(seen, k)
		}
		for _, item := range tx {
			if item == "" {
				continue
			}
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			support[item]++
		}
	}

	return support
}

// Ranking is the global item order used to sort transactions: support
// descending, label ascending on ties. Rank 0 is the most frequent item.
type Ranking struct {
	items   []string
	rank    map[string]int
	support map[string]int
}

// NewRanking keeps the items of support whose count is at least minSupport
// and ranks them.
func NewRanking(support map[string]int, minSupport int) (*Ranking, error) {
	if minSupport < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMinSupport, minSupport)
	}

	r := &Ranking{
		rank:    make(map[string]int),
		support: make(map[string]int),
	}
	for item, s := range support {
		if item == "" || s < minSupport {
			continue
		}
		r.items = append(r.items, item)
		r.support[item] = s
	}
	sort.Slice(r.items, func(i, j int) bool {
		si, sj := r.support[r.items[i]], r.support[r.items[j]]
		if si != sj {
			return si > sj
		}
		return r.items[i] < r.items[j]
	})
	for i, item := range r.items {
		r.rank[item] = i
	}

	return r, nil
}

// Items returns the ranked items, most frequent first.
func (r *Ranking) Items() []string { return append([]string(nil), r.items...) }

// Len returns the number of ranked (frequent) items.
func (r *Ranking) Len() int { return len(r.items) }

// Rank returns the position of item, or false if it is not frequent.
func (r *Ranking) Rank(item string) (int, bool) {
	i, ok := r.rank[item]

	return i, ok
}

// Support returns the support of a frequent item, 0 otherwise.
func (r *Ranking) Support(item string) int { return r.support[item] }

// Ranks returns a copy of the item → rank map.
func (r *Ranking) Ranks() map[string]int {
	out := make(map[string]int, len(r.rank))
	for item, i := range r.rank {
		out[item] = i
	}

	return out
}

// Order returns the frequent items of tx, deduplicated and sorted by rank.
// The input is not modified. The result is empty, never nil.
func (r *Ranking) Order(tx Transaction) Transaction {
	out := make(Transaction, 0, len(tx))
	seen := make(map[string]struct{}, len(tx))
	for _, item := range tx {
		if _, ok := r.rank[item]; !ok {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return r.rank[out[i]] < r.rank[out[j]] })

	return out
}

// Prepare counts support over txs, ranks the items reaching minSupport and
// returns every transaction reordered by that ranking. Transactions with no
// frequent item are dropped.
func Prepare(txs []Transaction, minSupport int) ([]Transaction, *Ranking, error) {
	r, err := NewRanking(CountSupport(txs), minSupport)
	if err != nil {
		return nil, nil, err
	}

	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if o := r.Order(tx); len(o) > 0 {
			out = append(out, o)
		}
	}

	return out, r, nil
}
