// cmd/vindecoder/cmd/init.go
package cmd

import (
	"vindecoder/cmd/vindecoder/cmd/history"
)

func init() {
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.AddCommand(history.HistoryCmd)
	history.HistoryCmd.AddCommand(history.ListCmd)
	history.HistoryCmd.AddCommand(history.SelectCmd)
}
