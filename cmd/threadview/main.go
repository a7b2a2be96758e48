package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"video-share-api/internal/client"
	"video-share-api/internal/treeview"
	"video-share-api/internal/tui"
)

var (
	serverURL string
	author    string
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "threadview <video-id>",
	Short: "Browse and manage a video's comment threads from the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID := args[0]

		logger := zap.NewNop()
		api := client.NewCommentAPIClient(serverURL, timeout, logger)
		tree := treeview.NewTree(api, videoID)

		program := tea.NewProgram(tui.NewModel(tree, videoID, author), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("thread viewer failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080/api", "Base URL of the video share API")
	rootCmd.Flags().StringVar(&author, "author", "anonymous", "Author name for posted comments")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "HTTP request timeout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
