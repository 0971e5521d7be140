package itemset

import (
	"bufio"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"
)

// maxLine bounds a single transaction line.
const maxLine = 1 << 20

// hashStandIn hides '#' from the shell-like tokenizer, which would otherwise
// drop the rest of the line at any word starting with it. Comment lines are
// filtered before splitting.
const hashStandIn = "\uE000"

// ReadOption configures ReadTransactions.
type ReadOption func(*readOptions)

type readOptions struct {
	sep     string // "" selects shell-like splitting
	comment string
}

// WithSeparator splits lines on sep instead of shell-like whitespace
// splitting. Items are trimmed and empty items dropped.
func WithSeparator(sep string) ReadOption {
	return func(o *readOptions) { o.sep = sep }
}

// WithComment sets the line comment prefix (default "#"). An empty prefix
// disables comments.
func WithComment(prefix string) ReadOption {
	return func(o *readOptions) { o.comment = prefix }
}

// ReadTransactions reads one transaction per line from r.
//
// Blank lines and comment lines are skipped. By default a line is split like
// a shell command line, so quoted items may contain spaces:
//
//	bread "peanut butter" milk
//
// Errors name the offending line.
func ReadTransactions(r io.Reader, opts ...ReadOption) ([]Transaction, error) {
	o := readOptions{comment: "#"}
	for _, opt := range opts {
		opt(&o)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		txs  []Transaction
		line int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || (o.comment != "" && strings.HasPrefix(text, o.comment)) {
			continue
		}

		tx, err := o.split(text)
		if err != nil {
			return nil, errors.Wrapf(err, "itemset: line %d", line)
		}
		if len(tx) > 0 {
			txs = append(txs, tx)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "itemset: reading after line %d", line)
	}

	return txs, nil
}

func (o readOptions) split(text string) (Transaction, error) {
	if o.sep == "" {
		if strings.Contains(text, hashStandIn) {
			return nil, errors.Errorf("item contains reserved rune %U", []rune(hashStandIn)[0])
		}
		parts, err := shlex.Split(strings.ReplaceAll(text, "#", hashStandIn))
		if err != nil {
			return nil, err
		}
		for i, p := range parts {
			parts[i] = strings.ReplaceAll(p, hashStandIn, "#")
		}
		return dropEmpty(parts), nil
	}

	return dropEmpty(strings.Split(text, o.sep)), nil
}

func dropEmpty(parts []string) Transaction {
	var tx Transaction
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tx = append(tx, p)
		}
	}

	return tx
}
