package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fpgrowth/fptree"
	"github.com/katalvlaran/fpgrowth/itemset"
)

// app holds flag values shared by every subcommand.
type app struct {
	logLevel string
	logJSON  bool

	input      string
	sep        string
	minSupport int

	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:          "fptree",
		Short:        "Build and inspect FP-trees from transaction files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logJSON)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVar(&a.logJSON, "log-json", false, "write logs as JSON lines")

	root.AddCommand(newBuildCmd(a), newHeadersCmd(a))

	return root
}

// addInputFlags registers the flags every tree-building command needs.
func (a *app) addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&a.input, "input", "i", "", "transaction file, one transaction per line (- for stdin)")
	f.StringVar(&a.sep, "sep", "", "item separator (default: shell-like whitespace splitting)")
	f.IntVar(&a.minSupport, "min-support", 1, "minimum number of transactions an item must occur in")
	_ = cmd.MarkFlagRequired("input")
}

// buildTree reads the input, ranks items and inserts every transaction.
func (a *app) buildTree(stdin io.Reader) (*fptree.Tree, error) {
	var r io.Reader = stdin
	if a.input != "-" {
		f, err := os.Open(a.input)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}

	var opts []itemset.ReadOption
	if a.sep != "" {
		opts = append(opts, itemset.WithSeparator(a.sep))
	}
	raw, err := itemset.ReadTransactions(r, opts...)
	if err != nil {
		return nil, err
	}

	txs, ranking, err := itemset.Prepare(raw, a.minSupport)
	if err != nil {
		return nil, err
	}
	a.log.Info().
		Int("transactions", len(raw)).
		Int("kept", len(txs)).
		Int("frequent_items", ranking.Len()).
		Int("min_support", a.minSupport).
		Msg("transactions prepared")

	tree := fptree.NewTree(
		fptree.WithItemRank(ranking.Ranks()),
		fptree.WithLogger(a.log),
	)
	for i, tx := range txs {
		if err := tree.InsertTransaction(tx); err != nil {
			return nil, errors.Wrapf(err, "insert transaction %d", i+1)
		}
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	a.log.Info().
		Int("nodes", tree.NodeCount()).
		Bool("one_branch", tree.HasOneBranch()).
		Msg("tree built")

	return tree, nil
}
