// Command clrs runs the algorithm exercises.
//
//	clrs sort -8 923 17 1
//	clrs add 00110 01010
//
// Bit strings are written least significant bit first.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paperboard/learnopengl/clrs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	root := &cobra.Command{
		Use:   "clrs",
		Short: "Introduction to Algorithms exercises",
	}

	root.AddCommand(&cobra.Command{
		Use:   "sort <int>...",
		Short: "Insertion sort integers",
		// negative numbers are values, not flags
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := make([]int, len(args))
			for i, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("not an integer: %q", a)
				}
				nums[i] = n
			}

			clrs.InsertionSort(nums)

			out := make([]string, len(nums))
			for i, n := range nums {
				out[i] = strconv.Itoa(n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "add <bits> <bits>",
		Short: "Add two equal length binary numbers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := clrs.ParseBits(args[0])
			if err != nil {
				return err
			}
			b, err := clrs.ParseBits(args[1])
			if err != nil {
				return err
			}
			sum, err := clrs.BinaryAdd(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), clrs.FormatBits(sum))
			return nil
		},
	})

	return root

}
