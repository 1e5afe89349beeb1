package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var lsJSON bool
var presignTTL time.Duration

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls <bucket> [prefix]",
	Short: "List objects in a bucket",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := setup()
		if err != nil {
			return err
		}

		prefix := ""
		if len(args) > 1 {
			prefix = args[1]
		}

		objects, err := client.ListObjects(cmd.Context(), args[0], prefix)
		if err != nil {
			return err
		}

		if lsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(objects)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tSIZE\tMODIFIED")
		for _, obj := range objects {
			fmt.Fprintf(w, "%s\t%s\t%s\n", obj.Key, humanize.IBytes(uint64(obj.Size)), humanize.Time(obj.LastModified))
		}
		return w.Flush()
	},
}

// statCmd represents the stat command
var statCmd = &cobra.Command{
	Use:   "stat <bucket> <key>",
	Short: "Show object metadata",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := setup()
		if err != nil {
			return err
		}

		info, err := client.StatObject(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	},
}

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put <bucket> <key> <file>",
	Short: "Upload a local file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, client, err := setup()
		if err != nil {
			return err
		}

		info, err := client.UploadFile(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		logg.Info("Object uploaded",
			zap.String("bucket", info.Bucket),
			zap.String("key", info.Key),
			zap.String("size", humanize.IBytes(uint64(info.Size))))
		return nil
	},
}

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <bucket> <key> <file>",
	Short: "Download an object to a local file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, client, err := setup()
		if err != nil {
			return err
		}

		if err := client.DownloadFile(cmd.Context(), args[0], args[1], args[2]); err != nil {
			return err
		}
		logg.Info("Object downloaded",
			zap.String("bucket", args[0]),
			zap.String("key", args[1]),
			zap.String("file", args[2]))
		return nil
	},
}

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <bucket> <key>",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, client, err := setup()
		if err != nil {
			return err
		}

		if err := client.RemoveObject(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		logg.Info("Object removed", zap.String("bucket", args[0]), zap.String("key", args[1]))
		return nil
	},
}

// presignCmd represents the presign command
var presignCmd = &cobra.Command{
	Use:   "presign <bucket> <key>",
	Short: "Generate a time-limited download URL",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := setup()
		if err != nil {
			return err
		}

		url, err := client.PresignedGetURL(cmd.Context(), args[0], args[1], presignTTL)
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	},
}

func init() {
	lsCmd.Flags().BoolVar(&lsJSON, "json", false, "output as JSON")
	presignCmd.Flags().DurationVar(&presignTTL, "ttl", time.Hour, "how long the URL stays valid (max 168h)")

	RootCmd.AddCommand(lsCmd)
	RootCmd.AddCommand(statCmd)
	RootCmd.AddCommand(putCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(rmCmd)
	RootCmd.AddCommand(presignCmd)
}
