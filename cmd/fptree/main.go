// Command fptree builds an FP-tree from a transaction file and prints its
// structure or its header table.
//
//	fptree build   --input baskets.txt --min-support 2
//	fptree headers --input baskets.csv --sep , --min-support 3
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
