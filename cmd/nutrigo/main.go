package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/omarkhayat/nutrigo"
	"github.com/omarkhayat/nutrigo/charmlog"
	"github.com/omarkhayat/nutrigo/gemini"
	"github.com/omarkhayat/nutrigo/kv"
	"github.com/omarkhayat/nutrigo/remind"
	"github.com/omarkhayat/nutrigo/store"
)

var logger nutrigo.Logger

func main() {
	// conf
	conf := nutrigo.LoadConfig()
	f, err := os.OpenFile(conf.LogPath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o666)
	if err != nil {
		panic(err)
	}
	defer f.Close() //nolint:errcheck
	logger = charmlog.NewLogger(charmlog.Options{Writer: f, Level: conf.LogLevel})
	logger.Info("loaded config", "storage", conf.StorageBackend, "dataPath", conf.DataPath)

	// persistence
	db, err := kv.Open(conf, logger)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		fmt.Println(colorize(colorRed, "could not open storage: "+err.Error()))
		os.Exit(1)
	}
	defer db.Close() //nolint:errcheck

	// assistant (optional; everything but AI features works without it)
	var assistant nutrigo.Assistant
	if conf.GeminiAPIKey != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := gemini.NewClient(ctx, conf.GeminiAPIKey, logger)
		cancel()
		if err != nil {
			logger.Warn("assistant unavailable", "error", err)
		} else {
			assistant = client
			defer client.Close() //nolint:errcheck
		}
	}

	// stores
	notifier := &teaNotifier{enabled: conf.Reminders}
	sched := remind.NewScheduler(notifier, logger)
	users := store.NewUsers(db, assistant, logger)
	tasks := store.NewTasks(db, sched, logger)
	sleep := store.NewSleep(db, logger)
	testimonials := store.NewTestimonials(db, logger)
	streak := store.NewStreak(db, logger)

	fmt.Println(colorize(colorGreen, logo))
	fmt.Printf("\nEnter \"/h\" for help\n\n")

	userinput := textinput.New()
	userinput.Focus()
	userinput.CharLimit = 280
	userinput.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	m := model{
		l:            logger,
		users:        users,
		tasks:        tasks,
		sleep:        sleep,
		testimonials: testimonials,
		streak:       streak,
		assistant:    assistant,
		language:     nutrigo.Language(conf.Language),
		cmdTimeout:   30 * time.Second,
		userinput:    userinput,
		vp:           viewport.New(0, 0),
	}

	// resume a persisted session if one exists
	if u, ok := users.CurrentSession(); ok {
		m.user = &u
		streak.TouchToday()
	}

	p := tea.NewProgram(m)
	notifier.SetProgram(p)

	// a prior process's timers did not survive; rebuild from stored tasks
	tasks.RestoreReminders()

	if _, err := p.Run(); err != nil {
		logger.Error(err.Error())
	}
}
