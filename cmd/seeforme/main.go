// Command seeforme runs the assistant in a terminal: press space to ask a
// question, read the conversation as it unfolds, hear the replies.
//
// Configuration is environment-driven:
//
//	GATEWAY_URL          use the API gateway for transcription, vision and refinement
//	DEEPGRAM_API_KEY     direct deepgram transcription and speech synthesis
//	NEBIUS_API_KEY       direct nebius vision analysis
//	GEMINI_API_KEY       direct gemini reply refinement
//	CAMERA_SNAPSHOT_URL  HTTP camera snapshot endpoint
//	FEED_ADDR            optional address to serve the websocket event feed on
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	orchestration "github.com/riteshh/seeforme-core/core"
	"github.com/riteshh/seeforme-core/core/audio/miniaudio"
	"github.com/riteshh/seeforme-core/core/capture/httpcam"
	"github.com/riteshh/seeforme-core/core/capture/microphone"
	"github.com/riteshh/seeforme-core/core/feed"
	refinementgemini "github.com/riteshh/seeforme-core/core/refinement/gemini"
	refinementgateway "github.com/riteshh/seeforme-core/core/refinement/gateway"
	"github.com/riteshh/seeforme-core/core/speech"
	speechdeepgram "github.com/riteshh/seeforme-core/core/speech/deepgram"
	transcriptiondeepgram "github.com/riteshh/seeforme-core/core/transcription/deepgram"
	transcriptiongateway "github.com/riteshh/seeforme-core/core/transcription/gateway"
	visiongateway "github.com/riteshh/seeforme-core/core/vision/gateway"
	visionnebius "github.com/riteshh/seeforme-core/core/vision/nebius"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	audioClient, err := miniaudio.NewClient()
	if err != nil {
		log.Fatalf("Failed to initialize audio: %v", err)
	}
	defer audioClient.Close()

	opts := []orchestration.OrchestratorOption{
		orchestration.WithRecorder(microphone.NewRecorder(audioClient)),
	}
	opts = append(opts, cameraOptions()...)
	opts = append(opts, serviceOptions()...)
	opts = append(opts, speakerOptions(audioClient)...)
	opts = append(opts, feedOptions()...)

	orchestrator := orchestration.NewOrchestrator(opts...)
	defer orchestrator.Close()

	updates := make(chan tea.Msg, 32)
	orchestrator.Orchestrate(ctx,
		orchestration.WithStateChangedCallback(func(state orchestration.State) {
			updates <- stateMsg{state: state}
		}),
		orchestration.WithMessageCallback(func(message orchestration.ChatMessage) {
			updates <- chatMsg{message: message}
		}),
	)

	program := tea.NewProgram(newModel(orchestrator, updates), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("Failed to run console: %v", err)
	}
}

func cameraOptions() []orchestration.OrchestratorOption {
	camera, err := httpcam.NewCamera()
	if err != nil {
		log.Printf("Camera disabled: %v", err)
		return nil
	}
	return []orchestration.OrchestratorOption{orchestration.WithCamera(camera)}
}

func serviceOptions() []orchestration.OrchestratorOption {
	if os.Getenv("GATEWAY_URL") != "" {
		return gatewayOptions()
	}
	return directOptions()
}

func gatewayOptions() []orchestration.OrchestratorOption {
	var opts []orchestration.OrchestratorOption

	if client, err := transcriptiongateway.NewClient(); err == nil {
		opts = append(opts, orchestration.WithTranscriptionClient(client))
	} else {
		log.Printf("Gateway transcription disabled: %v", err)
	}
	if client, err := visiongateway.NewClient(); err == nil {
		opts = append(opts, orchestration.WithVisionClient(client))
	} else {
		log.Printf("Gateway vision disabled: %v", err)
	}
	if client, err := refinementgateway.NewClient(); err == nil {
		opts = append(opts, orchestration.WithRefinementClient(client))
	} else {
		log.Printf("Gateway refinement disabled: %v", err)
	}
	return opts
}

func directOptions() []orchestration.OrchestratorOption {
	var opts []orchestration.OrchestratorOption

	if os.Getenv("DEEPGRAM_API_KEY") != "" {
		opts = append(opts, orchestration.WithTranscriptionClient(transcriptiondeepgram.NewTranscriptionClient()))
	}
	if client, err := visionnebius.NewClient(); err == nil {
		opts = append(opts, orchestration.WithVisionClient(client))
	} else {
		log.Printf("Vision disabled: %v", err)
	}
	if client, err := refinementgemini.NewClient(); err == nil {
		opts = append(opts, orchestration.WithRefinementClient(client))
	} else {
		log.Printf("Refinement disabled: %v", err)
	}
	return opts
}

func speakerOptions(playback speech.Playback) []orchestration.OrchestratorOption {
	synthesizer, err := speechdeepgram.NewSynthesisClient()
	if err != nil {
		log.Printf("Speech output disabled: %v", err)
		return nil
	}
	return []orchestration.OrchestratorOption{
		orchestration.WithSpeaker(speech.NewSpeaker(synthesizer, playback)),
	}
}

func feedOptions() []orchestration.OrchestratorOption {
	addr := os.Getenv("FEED_ADDR")
	if addr == "" {
		return nil
	}

	broadcaster := feed.NewBroadcaster()
	go func() {
		if err := http.ListenAndServe(addr, broadcaster.Handler()); err != nil {
			log.Printf("Event feed stopped: %v", err)
		}
	}()
	return []orchestration.OrchestratorOption{orchestration.WithEventPublisher(broadcaster)}
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle    = lipgloss.NewStyle().Faint(true)
)

type stateMsg struct{ state orchestration.State }

type chatMsg struct{ message orchestration.ChatMessage }

type model struct {
	orchestrator *orchestration.Orchestrator
	updates      chan tea.Msg

	viewport viewport.Model
	spinner  spinner.Model
	state    orchestration.State
	messages []orchestration.ChatMessage
	width    int
	ready    bool
}

func newModel(orchestrator *orchestration.Orchestrator, updates chan tea.Msg) model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return model{
		orchestrator: orchestrator,
		updates:      updates,
		spinner:      s,
		state:        orchestration.StateIdle,
		messages:     orchestrator.Conversation(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForUpdate())
}

func (m model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		return <-m.updates
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.orchestrator.Close()
			return m, tea.Quit
		case " ":
			if m.state == orchestration.StateListening {
				m.orchestrator.StopListening()
			} else {
				m.orchestrator.StartListening()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}
		m.refreshViewport()

	case stateMsg:
		m.state = msg.state
		return m, m.waitForUpdate()

	case chatMsg:
		m.messages = append(m.messages, msg.message)
		m.refreshViewport()
		return m, m.waitForUpdate()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) refreshViewport() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for _, message := range m.messages {
		style := assistantStyle
		label := "assistant"
		if message.Role == orchestration.RoleUser {
			style = userStyle
			label = "you"
		}
		line := fmt.Sprintf("%s  %s", label, message.Text)
		b.WriteString(style.Render(wordwrap.String(line, m.width-2)))
		b.WriteString("\n\n")
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m model) View() string {
	if !m.ready {
		return "starting..."
	}

	var status string
	switch m.state {
	case orchestration.StateListening:
		status = m.spinner.View() + " listening... press space to stop"
	case orchestration.StateProcessing:
		status = m.spinner.View() + " thinking..."
	default:
		status = "press space to ask, q to quit"
	}

	return titleStyle.Render("SeeForMe") + "\n" +
		m.viewport.View() + "\n" +
		statusStyle.Render(status)
}
