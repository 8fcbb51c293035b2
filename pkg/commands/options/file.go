package options

import (
	"github.com/spf13/cobra"
)

// FileOptions
type FileOptions struct {
	File string
}

func AddFileArgs(cmd *cobra.Command, o *FileOptions) {
	cmd.PersistentFlags().StringVarP(&o.File, "file", "f", "",
		"Use this journal file instead of the one in settings.")
}
