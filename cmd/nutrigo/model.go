package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/omarkhayat/nutrigo"
	"github.com/omarkhayat/nutrigo/store"
)

const logo = `
	███╗   ██╗██╗   ██╗████████╗██████╗ ██╗ ██████╗  ██████╗
	████╗  ██║██║   ██║╚══██╔══╝██╔══██╗██║██╔════╝ ██╔═══██╗
	██╔██╗ ██║██║   ██║   ██║   ██████╔╝██║██║  ███╗██║   ██║
	██║╚██╗██║██║   ██║   ██║   ██╔══██╗██║██║   ██║██║   ██║
	██║ ╚████║╚██████╔╝   ██║   ██║  ██║██║╚██████╔╝╚██████╔╝
	╚═╝  ╚═══╝ ╚═════╝    ╚═╝   ╚═╝  ╚═╝╚═╝ ╚═════╝  ╚═════╝`

const commandHelp = `COMMANDS:
  /signup <user> <password>: create an account
  /login <user> <password>: log in
  /logout: log out

  /add <text> [p:low|medium|high] [due:YYYY-MM-DD] [at:HH:MM]: add a task
  /done <n>: toggle task n
  /rm <n>: delete task n

  /sleep <hours> <good|average|poor> [YYYY-MM-DD]: log last night's sleep
  /review <1-5> <quote>: leave a review
  /reviews: show all reviews

  /tips <fitness|mentalWellness|sleepHygiene|stressManagement> [query]: AI health tips
  /meal <gain|loss>: AI one-day meal plan
  /bmi <weight-kg> <height-cm>: AI BMI narrative
  /chat <message>: talk to the assistant
`

type model struct {
	// children
	vp        viewport.Model
	userinput textinput.Model

	// supplied
	l            nutrigo.Logger
	users        *store.Users
	tasks        *store.Tasks
	sleep        *store.Sleep
	testimonials *store.Testimonials
	streak       *store.Streak
	assistant    nutrigo.Assistant

	// state
	user     *nutrigo.User
	chat     nutrigo.ChatSession
	taskView []nutrigo.Task
	output   string
	alerts   []string
	quitting bool
	h        int

	// configuration
	language   nutrigo.Language
	cmdTimeout time.Duration
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var tiCmd, vpCmd, cmd tea.Cmd

	m, cmd = m.updateParent(msg)

	m.userinput, tiCmd = m.userinput.Update(msg)
	switch msg.(type) {
	case tea.KeyMsg:
		// vp updates on KeyMsg cause view flickering
	default:
		m.vp, vpCmd = m.vp.Update(msg)
	}

	return m, tea.Batch(tiCmd, vpCmd, cmd)
}

func (m model) updateParent(msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case ReminderMsg:
		m.addAlert(fmt.Sprintf("%s: %s", msg.title, msg.body), colorYellow)
		m.refresh()
		return m, nil
	case TipsMsg:
		m.output = renderTips(msg.tips)
		m.refresh()
		return m, nil
	case MealPlanMsg:
		m.output = renderMealPlan(msg.plan)
		m.refresh()
		return m, nil
	case BMIMsg:
		m.output = renderBMI(msg.result)
		m.refresh()
		return m, nil
	case chatSessionMsg:
		m.chat = msg.session
		m.output = msg.reply
		m.refresh()
		return m, nil
	case ErrorMsg:
		m.addAlert(msg.err.Error(), colorRed)
		m.refresh()
		return m, nil
	case tea.WindowSizeMsg:
		m.h = msg.Height
		m.userinput.Width = msg.Width
		m.vp.Width = msg.Width
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			input := strings.TrimSpace(m.userinput.Value())
			m.userinput.Reset()
			if input == "" {
				return m, nil
			}

			var cmd tea.Cmd
			m.alerts = nil
			m, cmd = m.handleInput(input)
			m.refresh()
			return m, cmd
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) handleInput(input string) (model, tea.Cmd) {
	parts := strings.SplitN(input, " ", 2)
	cmd, arg := parts[0], ""
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}

	switch cmd {
	case "/h":
		m.addAlert(commandHelp, colorYellow)
		return m, nil
	case "/signup":
		return m.handleSignup(arg)
	case "/login":
		return m.handleLogin(arg)
	case "/logout":
		if err := m.users.ClearCurrentSession(); err != nil {
			m.l.Warn("could not clear session", "error", err)
		}
		m.user = nil
		m.chat = nil
		m.output = ""
		return m, nil
	}

	if m.user == nil {
		m.addAlert("log in first (/login or /signup)", colorRed)
		return m, nil
	}

	switch cmd {
	case "/add":
		return m.handleAdd(arg)
	case "/done":
		return m.handleToggle(arg)
	case "/rm":
		return m.handleDelete(arg)
	case "/sleep":
		return m.handleSleep(arg)
	case "/review":
		return m.handleReview(arg)
	case "/reviews":
		m.output = renderTestimonials(m.testimonials.ListAll())
		return m, nil
	case "/tips":
		return m.handleTips(arg)
	case "/meal":
		return m.handleMeal(arg)
	case "/bmi":
		return m.handleBMI(arg)
	case "/chat":
		return m.handleChat(arg)
	}

	m.addAlert("unknown command; /h for help", colorYellow)
	return m, nil
}

func (m model) handleSignup(arg string) (model, tea.Cmd) {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		m.addAlert("usage: /signup <user> <password>", colorYellow)
		return m, nil
	}

	timeout, cancel := m.newTimeout()
	defer cancel()
	user, err := m.users.Signup(timeout, fields[0], fields[1])
	if err != nil {
		m.addAlert(err.Error(), colorRed)
		return m, nil
	}
	return m.startSession(user)
}

func (m model) handleLogin(arg string) (model, tea.Cmd) {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		m.addAlert("usage: /login <user> <password>", colorYellow)
		return m, nil
	}

	timeout, cancel := m.newTimeout()
	defer cancel()
	user, err := m.users.Login(timeout, fields[0], fields[1])
	if err != nil {
		m.addAlert(err.Error(), colorRed)
		return m, nil
	}
	return m.startSession(user)
}

func (m model) startSession(user nutrigo.User) (model, tea.Cmd) {
	if err := m.users.SetCurrentSession(user); err != nil {
		m.l.Warn("could not persist session", "error", err)
	}
	m.user = &user
	m.output = ""
	count := m.streak.TouchToday()
	m.addAlert(fmt.Sprintf("welcome %s - day streak: %d", user.Username, count), colorGreen)
	return m, nil
}

// handleAdd parses "/add <text> [p:priority] [due:date] [at:time]".
func (m model) handleAdd(arg string) (model, tea.Cmd) {
	if arg == "" {
		m.addAlert("usage: /add <text> [p:low|medium|high] [due:YYYY-MM-DD] [at:HH:MM]", colorYellow)
		return m, nil
	}

	req := store.CreateTaskRequest{
		Priority: nutrigo.PriorityMedium,
		UserID:   m.user.ID,
	}
	var words []string
	for _, w := range strings.Fields(arg) {
		switch {
		case strings.HasPrefix(w, "p:"):
			p := nutrigo.TaskPriority(strings.TrimPrefix(w, "p:"))
			switch p {
			case nutrigo.PriorityLow, nutrigo.PriorityMedium, nutrigo.PriorityHigh:
				req.Priority = p
			default:
				m.addAlert("priority must be low, medium, or high", colorRed)
				return m, nil
			}
		case strings.HasPrefix(w, "due:"):
			req.DueDate = strings.TrimPrefix(w, "due:")
		case strings.HasPrefix(w, "at:"):
			req.ReminderTime = strings.TrimPrefix(w, "at:")
		default:
			words = append(words, w)
		}
	}
	req.Text = strings.Join(words, " ")

	if _, err := m.tasks.Create(req); err != nil {
		m.addAlert(err.Error(), colorRed)
	}
	return m, nil
}

func (m model) handleToggle(arg string) (model, tea.Cmd) {
	id, ok := m.taskAt(arg)
	if !ok {
		m.addAlert("usage: /done <n>", colorYellow)
		return m, nil
	}
	if _, err := m.tasks.Toggle(id); err != nil {
		m.addAlert(err.Error(), colorRed)
	}
	return m, nil
}

func (m model) handleDelete(arg string) (model, tea.Cmd) {
	id, ok := m.taskAt(arg)
	if !ok {
		m.addAlert("usage: /rm <n>", colorYellow)
		return m, nil
	}
	if !m.tasks.Delete(id) {
		m.addAlert("no such task", colorRed)
	}
	return m, nil
}

// taskAt resolves a 1-based display index against the last rendered list.
func (m model) taskAt(arg string) (int64, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(m.taskView) {
		return 0, false
	}
	return m.taskView[n-1].ID, true
}

func (m model) handleSleep(arg string) (model, tea.Cmd) {
	fields := strings.Fields(arg)
	if len(fields) < 2 {
		m.addAlert("usage: /sleep <hours> <good|average|poor> [YYYY-MM-DD]", colorYellow)
		return m, nil
	}
	hours, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || hours < 0 || hours > 14 {
		m.addAlert("hours must be a number between 0 and 14", colorRed)
		return m, nil
	}
	quality := nutrigo.SleepQuality(fields[1])
	switch quality {
	case nutrigo.QualityGood, nutrigo.QualityAverage, nutrigo.QualityPoor:
	default:
		m.addAlert("quality must be good, average, or poor", colorRed)
		return m, nil
	}
	date := time.Now().Format(nutrigo.DateFormat)
	if len(fields) > 2 {
		if _, err := time.Parse(nutrigo.DateFormat, fields[2]); err != nil {
			m.addAlert("date must look like 2025-01-31", colorRed)
			return m, nil
		}
		date = fields[2]
	}

	if _, err := m.sleep.AddLog(m.user.ID, date, hours, quality); err != nil {
		m.addAlert(err.Error(), colorRed)
	}
	return m, nil
}

func (m model) handleReview(arg string) (model, tea.Cmd) {
	parts := strings.SplitN(arg, " ", 2)
	if len(parts) < 2 {
		m.addAlert("usage: /review <1-5> <quote>", colorYellow)
		return m, nil
	}
	rating, err := strconv.Atoi(parts[0])
	if err != nil || rating < 1 || rating > 5 {
		m.addAlert("rating must be 1-5", colorRed)
		return m, nil
	}

	if _, err := m.testimonials.Add(m.user.ID, m.user.Username, parts[1], rating); err != nil {
		m.addAlert(err.Error(), colorRed)
		return m, nil
	}
	m.addAlert("thanks for the review!", colorGreen)
	return m, nil
}

func (m model) handleTips(arg string) (model, tea.Cmd) {
	if m.assistant == nil {
		m.addAlert("assistant not configured (set NUTRIGO_GEMINI_API_KEY)", colorRed)
		return m, nil
	}
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		m.addAlert("usage: /tips <category> [query]", colorYellow)
		return m, nil
	}
	category := nutrigo.TipCategory(fields[0])
	query := strings.Join(fields[1:], " ")
	m.addAlert("asking the assistant...", colorCyan)

	return m, func() tea.Msg {
		timeout, cancel := m.newTimeout()
		defer cancel()
		tips, err := m.assistant.GenerateTips(timeout, m.language, category, query)
		if err != nil {
			return ErrorMsg{err: err}
		}
		return TipsMsg{tips: tips}
	}
}

func (m model) handleMeal(arg string) (model, tea.Cmd) {
	if m.assistant == nil {
		m.addAlert("assistant not configured (set NUTRIGO_GEMINI_API_KEY)", colorRed)
		return m, nil
	}
	goal := nutrigo.MealPlanGoal(arg)
	if goal != nutrigo.GoalGain && goal != nutrigo.GoalLoss {
		m.addAlert("usage: /meal <gain|loss>", colorYellow)
		return m, nil
	}
	m.addAlert("asking the assistant...", colorCyan)

	return m, func() tea.Msg {
		timeout, cancel := m.newTimeout()
		defer cancel()
		plan, err := m.assistant.GenerateMealPlan(timeout, m.language, goal)
		if err != nil {
			return ErrorMsg{err: err}
		}
		return MealPlanMsg{plan: plan}
	}
}

func (m model) handleBMI(arg string) (model, tea.Cmd) {
	if m.assistant == nil {
		m.addAlert("assistant not configured (set NUTRIGO_GEMINI_API_KEY)", colorRed)
		return m, nil
	}
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		m.addAlert("usage: /bmi <weight-kg> <height-cm>", colorYellow)
		return m, nil
	}
	weight, werr := strconv.ParseFloat(fields[0], 64)
	height, herr := strconv.ParseFloat(fields[1], 64)
	if werr != nil || herr != nil || weight <= 0 || height <= 0 {
		m.addAlert("weight and height must be positive numbers", colorRed)
		return m, nil
	}
	m.addAlert("asking the assistant...", colorCyan)

	return m, func() tea.Msg {
		timeout, cancel := m.newTimeout()
		defer cancel()
		result, err := m.assistant.ComputeBMI(timeout, weight, height)
		if err != nil {
			return ErrorMsg{err: err}
		}
		return BMIMsg{result: result}
	}
}

func (m model) handleChat(arg string) (model, tea.Cmd) {
	if m.assistant == nil {
		m.addAlert("assistant not configured (set NUTRIGO_GEMINI_API_KEY)", colorRed)
		return m, nil
	}
	if arg == "" {
		m.addAlert("usage: /chat <message>", colorYellow)
		return m, nil
	}
	m.addAlert("asking the assistant...", colorCyan)

	chat := m.chat
	return m, func() tea.Msg {
		timeout, cancel := m.newTimeout()
		defer cancel()
		if chat == nil {
			var err error
			chat, err = m.assistant.StartChat(timeout)
			if err != nil {
				return ErrorMsg{err: err}
			}
		}
		reply, err := chat.Send(timeout, arg, nil)
		if err != nil {
			return ErrorMsg{err: err}
		}
		return chatSessionMsg{session: chat, reply: reply}
	}
}

// chatSessionMsg carries both the reply and the (possibly new) session so
// follow-up turns reuse the same conversation.
type chatSessionMsg struct {
	session nutrigo.ChatSession
	reply   string
}

func (m model) newTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.cmdTimeout)
}

func (m *model) addAlert(alert string, c color) {
	m.alerts = append(m.alerts, colorize(c, alert))
}

// refresh re-renders the dashboard into the viewport.
func (m *model) refresh() {
	m.vp.SetContent(m.renderDashboard())
	contentHeight := lipgloss.Height(m.renderDashboard())
	footerHeight := lipgloss.Height(m.renderFooter())
	m.vp.Height = min(contentHeight, m.h-footerHeight)
	m.vp.GotoBottom()
}

func (m *model) renderDashboard() string {
	if m.user == nil {
		return faintStyle.Render("not logged in - /login <user> <password> or /signup to get started")
	}

	var sb strings.Builder

	tasks := m.tasks.ListByUser(m.user.ID)
	// incomplete first, then storage order
	sort.SliceStable(tasks, func(i, j int) bool { return !tasks[i].Completed && tasks[j].Completed })
	m.taskView = tasks

	sb.WriteString(fmt.Sprintf("%s - streak: %d day(s)\n\n", m.user.Username, m.streak.CurrentStreak()))
	sb.WriteString("TASKS\n")
	if len(tasks) == 0 {
		sb.WriteString(faintStyle.Render("  nothing yet - /add <text>") + "\n")
	}
	for i, t := range tasks {
		line := fmt.Sprintf("  %d. %s %s (%s)", i+1, checkbox(t.Completed), t.Text, t.Priority)
		if t.DueDate != "" {
			line += " due " + t.DueDate
			if t.ReminderTime != "" {
				line += " at " + t.ReminderTime
			}
		}
		if t.Completed {
			line = faintStyle.Render(line)
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\nSLEEP\n")
	logs := m.sleep.ListByUser(m.user.ID)
	if len(logs) == 0 {
		sb.WriteString(faintStyle.Render("  no logs - /sleep <hours> <quality>") + "\n")
	} else {
		// newest first for display
		for i := len(logs) - 1; i >= 0 && i >= len(logs)-7; i-- {
			l := logs[i]
			sb.WriteString(fmt.Sprintf("  %s  %.1fh  %s\n", l.Date, l.Hours, l.Quality))
		}
		sb.WriteString(fmt.Sprintf("  average: %sh\n", m.sleep.AverageHours(m.user.ID)))
	}

	if m.output != "" {
		sb.WriteString("\n" + m.output + "\n")
	}

	return sb.String()
}

func (m model) renderFooter() string {
	if m.quitting {
		return ""
	}

	var footer strings.Builder
	footer.WriteRune('\n')
	footer.WriteString(m.userinput.View())
	footer.WriteString("\n\n")

	if len(m.alerts) > 0 {
		footer.WriteString(strings.Join(m.alerts, "\n"))
		footer.WriteString("\n\n")
	} else {
		footer.WriteString(faintStyle.Render("(ctrl+c to quit)"))
		footer.WriteRune('\n')
	}

	return footer.String()
}

func (m model) View() string {
	return lipgloss.JoinVertical(0, m.vp.View(), m.renderFooter())
}
