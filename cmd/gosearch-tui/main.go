package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"

	"gosearch/models"
	"gosearch/tui"
)

func main() {
	cfg, err := models.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	logger.SetLogLevel(cfg.LogLevel)

	// Log lines would tear the alternate screen, so record while running
	// and report once the terminal is restored
	recorder := models.NewRecordingSearcher(nil, cfg.RecentLimit)

	p := tea.NewProgram(tui.New(recorder), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, q := range recorder.Recent() {
		logger.Info(models.SearchMessage(q.Text), "query_id", q.ID, "source", string(q.Source), "theme", q.Theme)
	}
}
