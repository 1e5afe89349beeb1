package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var bucketsJSON bool
var mbRegion string

// bucketsCmd represents the buckets command
var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "List all buckets owned by the account",
	Long:  `Lists every bucket the configured credentials can see, in the order the storage service returns them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := setup()
		if err != nil {
			return err
		}

		buckets, err := client.ListBuckets(cmd.Context())
		if err != nil {
			return err
		}

		if bucketsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(buckets)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCREATED")
		for _, b := range buckets {
			fmt.Fprintf(w, "%s\t%s\n", b.Name, humanize.Time(b.CreationDate))
		}
		return w.Flush()
	},
}

// mbCmd represents the mb (make bucket) command
var mbCmd = &cobra.Command{
	Use:   "mb <bucket>",
	Short: "Create a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, client, err := setup()
		if err != nil {
			return err
		}

		if err := client.MakeBucket(cmd.Context(), args[0], mbRegion); err != nil {
			return err
		}
		logg.Info("Bucket created", zap.String("bucket", args[0]))
		return nil
	},
}

// rbCmd represents the rb (remove bucket) command
var rbCmd = &cobra.Command{
	Use:   "rb <bucket>",
	Short: "Remove an empty bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, client, err := setup()
		if err != nil {
			return err
		}

		if err := client.RemoveBucket(cmd.Context(), args[0]); err != nil {
			return err
		}
		logg.Info("Bucket removed", zap.String("bucket", args[0]))
		return nil
	},
}

func init() {
	bucketsCmd.Flags().BoolVar(&bucketsJSON, "json", false, "output as JSON")
	mbCmd.Flags().StringVar(&mbRegion, "region", "", "region for the new bucket (defaults to the configured region)")

	RootCmd.AddCommand(bucketsCmd)
	RootCmd.AddCommand(mbCmd)
	RootCmd.AddCommand(rbCmd)
}
