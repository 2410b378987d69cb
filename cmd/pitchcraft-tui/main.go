package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultAPIURL = "http://localhost:3000"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepLoggingIn
	stepLoadingPitches
	stepBrowsingPitches
	stepEnteringIdea
	stepGenerating
	stepViewingPitch
)

type pitchSummary struct {
	ID           string `json:"id"`
	ProjectName  string `json:"project_name"`
	Tagline      string `json:"tagline"`
	PitchContent string `json:"pitch_content"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type model struct {
	apiURL       string
	step         step
	cursor       int
	pitches      []pitchSummary
	selected     *pitchSummary
	email        string
	loginPass    string
	token        string
	currentInput string
	message      string
	quitting     bool
}

type loginSuccessMsg struct{ token string }
type pitchesLoadedMsg []pitchSummary
type pitchGeneratedMsg struct {
	pitch    pitchSummary
	fallback bool
}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	apiURL := os.Getenv("PITCHCRAFT_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return model{
		apiURL: apiURL,
		step:   stepEnteringEmail,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) typing() bool {
	return m.step == stepEnteringEmail || m.step == stepEnteringPassword || m.step == stepEnteringIdea
}

func callAPI(apiURL, method, path, token string, payload any) (envelope, error) {
	client := &http.Client{Timeout: 60 * time.Second}

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return envelope{}, err
		}
	}

	req, err := http.NewRequest(method, apiURL+path, &body)
	if err != nil {
		return envelope{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("cannot reach the PitchCraft API at %s", apiURL)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("unexpected reply from the API")
	}
	if !env.Success {
		return envelope{}, fmt.Errorf("%s", env.Message)
	}
	return env, nil
}

func loginUser(apiURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		env, err := callAPI(apiURL, http.MethodPost, "/auth/login", "", map[string]string{
			"email":    email,
			"password": password,
		})
		if err != nil {
			return errMsg{err}
		}

		var data struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
			return errMsg{fmt.Errorf("login reply carried no token")}
		}
		return loginSuccessMsg{token: data.Token}
	}
}

func loadPitches(apiURL, token string) tea.Cmd {
	return func() tea.Msg {
		env, err := callAPI(apiURL, http.MethodGet, "/pitches", token, nil)
		if err != nil {
			return errMsg{err}
		}

		var data struct {
			Pitches []pitchSummary `json:"pitches"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return errMsg{fmt.Errorf("could not read pitch list")}
		}
		return pitchesLoadedMsg(data.Pitches)
	}
}

func generatePitch(apiURL, token, idea string) tea.Cmd {
	return func() tea.Msg {
		env, err := callAPI(apiURL, http.MethodPost, "/pitches/generate", token, map[string]string{
			"idea_description": idea,
		})
		if err != nil {
			return errMsg{err}
		}

		var data struct {
			Pitch    pitchSummary `json:"pitch"`
			Fallback bool         `json:"fallback"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return errMsg{fmt.Errorf("could not read generated pitch")}
		}
		return pitchGeneratedMsg{pitch: data.Pitch, fallback: data.Fallback}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.step == stepBrowsingPitches {
				m.quitting = true
				return m, tea.Quit
			}
			if m.step == stepViewingPitch {
				m.step = stepBrowsingPitches
				return m, nil
			}
			if m.typing() {
				m.currentInput += "q"
			}

		case "up", "k":
			if m.step == stepBrowsingPitches && m.cursor > 0 {
				m.cursor--
			} else if msg.String() == "k" && m.typing() {
				m.currentInput += "k"
			}

		case "down", "j":
			if m.step == stepBrowsingPitches && m.cursor < len(m.pitches)-1 {
				m.cursor++
			} else if msg.String() == "j" && m.typing() {
				m.currentInput += "j"
			}

		case "n":
			if m.step == stepBrowsingPitches {
				m.currentInput = ""
				m.step = stepEnteringIdea
				return m, nil
			}
			if m.typing() {
				m.currentInput += "n"
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case "enter":
			switch m.step {
			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.loginPass = m.currentInput
					m.currentInput = ""
					m.step = stepLoggingIn
					m.message = "Logging in..."
					return m, loginUser(m.apiURL, m.email, m.loginPass)
				}

			case stepBrowsingPitches:
				if len(m.pitches) > 0 {
					m.selected = &m.pitches[m.cursor]
					m.step = stepViewingPitch
				}

			case stepEnteringIdea:
				if m.currentInput != "" {
					idea := m.currentInput
					m.currentInput = ""
					m.step = stepGenerating
					m.message = "Generating pitch..."
					return m, generatePitch(m.apiURL, m.token, idea)
				}
			}

		default:
			if m.typing() {
				if msg.String() == "space" {
					m.currentInput += " "
				} else {
					m.currentInput += msg.String()
				}
			}
		}

	case loginSuccessMsg:
		m.token = msg.token
		m.step = stepLoadingPitches
		m.message = successStyle.Render("Logged in as " + m.email)
		return m, loadPitches(m.apiURL, m.token)

	case pitchesLoadedMsg:
		m.pitches = []pitchSummary(msg)
		m.cursor = 0
		m.step = stepBrowsingPitches

	case pitchGeneratedMsg:
		if msg.fallback {
			m.message = errorStyle.Render("Generation service unavailable, showing example content")
		} else {
			m.message = successStyle.Render("Pitch generated: " + msg.pitch.ProjectName)
		}
		m.step = stepLoadingPitches
		return m, loadPitches(m.apiURL, m.token)

	case errMsg:
		m.message = errorStyle.Render(msg.err.Error())
		switch m.step {
		case stepLoggingIn:
			m.currentInput = ""
			m.step = stepEnteringEmail
		case stepGenerating:
			m.step = stepBrowsingPitches
		default:
			m.step = stepBrowsingPitches
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("PitchCraft") + "\n\n")

	if m.message != "" {
		s.WriteString(m.message + "\n\n")
	}

	switch m.step {
	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("*", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepLoggingIn, stepLoadingPitches, stepGenerating:
		s.WriteString("Working...\n")

	case stepBrowsingPitches:
		if len(m.pitches) == 0 {
			s.WriteString("No pitches yet.\n")
		} else {
			s.WriteString(promptStyle.Render("Your pitches:\n\n"))
			for i, p := range m.pitches {
				cursor := " "
				style := normalStyle
				if m.cursor == i {
					cursor = ">"
					style = selectedStyle
				}
				s.WriteString(fmt.Sprintf("%s %s %s\n", cursor, style.Render(p.ProjectName), dimStyle.Render("["+p.Status+"]")))
			}
		}
		s.WriteString("\nUp/Down to move, Enter to view, n for new pitch, q to quit\n")

	case stepEnteringIdea:
		s.WriteString(promptStyle.Render("Describe your idea (at least 20 characters):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepViewingPitch:
		if m.selected != nil {
			s.WriteString(promptStyle.Render(m.selected.ProjectName) + "\n")
			s.WriteString(dimStyle.Render(m.selected.Tagline) + "\n\n")
			s.WriteString(m.selected.PitchContent + "\n")
		}
		s.WriteString("\nPress q to go back\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
