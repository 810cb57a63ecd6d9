package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quiz-widget/backend/internal/chat"
	"quiz-widget/backend/internal/model"
	"quiz-widget/backend/internal/quiz"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if !m.ready {
		return "  Initializing..."
	}
	if m.session != nil {
		return m.renderQuiz()
	}

	header := headerStyle.Width(m.width).Render(m.opts.Title)
	divider := mutedStyle.Render(strings.Repeat("─", max(m.width, 1)))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.renderStatus(),
		divider,
		m.input.View(),
	)
}

func (m Model) renderStatus() string {
	switch {
	case m.snap.Status == model.StatusError:
		text := m.errText
		if text == "" {
			text = "Something went wrong."
		}
		return errorStyle.Render("✗ "+text) + mutedStyle.Render("  (esc to dismiss)")
	case m.snap.Status == model.StatusSubmitted:
		return m.spinner.View() + mutedStyle.Render(" Thinking...")
	case m.snap.Status == model.StatusStreaming:
		return mutedStyle.Render("… Typing")
	case m.notice != "":
		return mutedStyle.Render(m.notice)
	default:
		return mutedStyle.Render("enter send · ctrl+o open quiz · ctrl+c quit")
	}
}

// latestQuizCard locates the newest ready quiz, the one ctrl+o opens.
func latestQuizCard(messages []chat.MessageView) (int, int) {
	for mi := len(messages) - 1; mi >= 0; mi-- {
		parts := messages[mi].Parts
		for pi := len(parts) - 1; pi >= 0; pi-- {
			if parts[pi].Kind == chat.ViewQuizReady {
				return mi, pi
			}
		}
	}
	return -1, -1
}

func (m Model) renderConversation() string {
	latestMsg, latestPart := latestQuizCard(m.snap.Messages)
	var b strings.Builder
	for i, msg := range m.snap.Messages {
		if i > 0 {
			b.WriteString("\n")
		}
		if msg.Role == model.RoleUser {
			b.WriteString(userLabel.Render("You"))
		} else {
			b.WriteString(assistantLabel.Render("Assistant"))
		}
		b.WriteString("\n")
		for j, part := range msg.Parts {
			b.WriteString(m.renderPart(msg.Role, part, i == latestMsg && j == latestPart))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderPart(role model.Role, part chat.PartView, openable bool) string {
	switch part.Kind {
	case chat.ViewText:
		if role == model.RoleUser || m.md == nil {
			return "  " + part.Text
		}
		rendered, err := m.md.Render(part.Text)
		if err != nil {
			return "  " + part.Text
		}
		return strings.TrimRight(rendered, "\n")
	case chat.ViewQuizLoading:
		return "  " + m.spinner.View() + mutedStyle.Render(" Generating quiz...")
	case chat.ViewQuizReady:
		card := selectedStyle.Render(part.Quiz.Title) + "\n" +
			mutedStyle.Render(fmt.Sprintf("%d questions", part.Quiz.QuestionCount))
		if openable {
			card += "\nctrl+o to open"
		}
		return quizCardStyle.Render(card)
	case chat.ViewQuizInvalid:
		return "  " + errorStyle.Render("Quiz could not be displayed: "+part.Error)
	case chat.ViewQuizError:
		return "  " + errorStyle.Render("Quiz generation failed: "+part.Error)
	}
	return ""
}

func (m Model) renderQuiz() string {
	st := m.session.Snapshot()
	var body string
	if st.Phase == quiz.PhaseReviewing {
		body = renderReview(st)
	} else {
		body = renderQuestion(st, m.width)
	}
	w := max(min(m.width-4, 72), 30)
	return modalStyle.Width(w).Render(body)
}

func renderQuestion(st quiz.State, width int) string {
	var b strings.Builder
	b.WriteString(selectedStyle.Render(st.Title))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Question %d of %d", st.CurrentIndex+1, st.QuestionCount)))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d%%", st.Progress)))
	b.WriteString("\n")
	b.WriteString(progressBar(st.Progress, max(min(width-12, 60), 10)))
	b.WriteString("\n\n")
	b.WriteString(st.Question.Text)
	b.WriteString("\n\n")
	for i, opt := range st.Question.Options {
		line := fmt.Sprintf("%c) %s", 'a'+i, opt)
		if st.Selected != nil && *st.Selected == i {
			b.WriteString(selectedStyle.Render("● " + line))
		} else {
			b.WriteString("○ " + line)
		}
		b.WriteString("\n")
	}
	next := "→ next"
	if st.IsLast {
		next = "→ finish"
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("1-4/a-d choose · ← back · " + next + " · esc close"))
	return b.String()
}

func renderReview(st quiz.State) string {
	r := st.Result
	var b strings.Builder
	b.WriteString(selectedStyle.Render("Quiz Results"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score: %d/%d (%d%%)", r.Score, r.Total, r.Percentage))
	b.WriteString("\n\n")
	for i, item := range r.Items {
		mark := successStyle.Render("✓")
		if !item.Correct {
			mark = errorStyle.Render("✗")
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", mark, i+1, item.Question))
		b.WriteString("   " + mutedStyle.Render("Your answer:") + " " + item.YourAnswer + "\n")
		if !item.Correct {
			b.WriteString("   " + mutedStyle.Render("Correct answer:") + " " + item.CorrectAnswer + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("r retake · esc back to chat"))
	return b.String()
}

func progressBar(percent, width int) string {
	filled := width * percent / 100
	return selectedStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", width-filled))
}
