package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notifica/notifica"
)

var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Print the compiled-in notification backend",
	Long: `Print the name of the notification backend compiled into this
binary. Backend selection happens at build time per target operating
system; there is no runtime probing or fallback.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(notifica.Backend())
	},
}

func init() {
	rootCmd.AddCommand(backendCmd)
}
