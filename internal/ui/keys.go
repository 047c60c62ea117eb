package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/storedash/internal/state"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.showProblems {
		m.showProblems = false
		return m, nil
	}
	m.notice = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?", "h":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.inventory.SetStyles(m.theme.TableStyles())
		m.spinner.Style = m.theme.Styles().AccentText
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		m.syncContent()
		return m, nil

	case "tab", "right", "l":
		return m, m.switchDomain(1)

	case "shift+tab", "left":
		return m, m.switchDomain(-1)

	case "1", "2", "3", "4", "5", "6":
		idx := int(msg.String()[0] - '1')
		return m, m.setDomain(state.Domains[idx])

	case "r":
		return m, m.refresh()

	case "L":
		if m.logFile == "" {
			m.notice = "로그 파일이 설정되지 않았습니다."
			return m, nil
		}
		return m, loadProblemsCmd(m.logFile)
	}

	if m.session == nil {
		return m, nil
	}

	switch msg.String() {
	case "s", "S":
		delta := 1
		if msg.String() == "S" {
			delta = -1
		}
		m.prefs.StoreID = m.session.CycleStore(delta)
		m.savePrefs()
		return m, m.refresh()

	case "[", "]":
		delta := 1
		if msg.String() == "[" {
			delta = -1
		}
		m.session.ShiftMonth(delta)
		return m, m.refresh()

	case "v":
		d := m.active()
		if d != state.DomainMealKits && d != state.DomainLaundry {
			m.notice = "서버 재고 조회는 밀키트와 세탁용품에서만 가능합니다."
			return m, nil
		}
		m.refreshing++
		return m, serverLowStockCmd(m.ctx, m.session, d)
	}

	if m.active() == state.DomainMealKits {
		return m.handleMealKitKey(msg)
	}

	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

// handleMealKitKey routes cart keys and row movement to the inventory table;
// paging keys scroll the sections below it.
func (m Model) handleMealKitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "a":
		if id, ok := m.selectedKit(); ok {
			m.session.MealKits.AddToCart(id)
			return m, fetchSnapshotCmd(m.session)
		}
		return m, nil
	case "backspace", "delete":
		if id, ok := m.selectedKit(); ok {
			m.session.MealKits.RemoveFromCart(id)
			return m, fetchSnapshotCmd(m.session)
		}
		return m, nil
	case "x":
		m.session.MealKits.ClearCart()
		return m, fetchSnapshotCmd(m.session)
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inventory, cmd = m.inventory.Update(msg)
	return m, cmd
}

func (m Model) selectedKit() (int64, bool) {
	cursor := m.inventory.Cursor()
	if cursor < 0 || cursor >= len(m.kitIDs) {
		return 0, false
	}
	return m.kitIDs[cursor], true
}

func (m *Model) switchDomain(delta int) tea.Cmd {
	idx := slices.Index(state.Domains, m.active())
	n := len(state.Domains)
	return m.setDomain(state.Domains[((idx+delta)%n+n)%n])
}

func (m *Model) setDomain(d state.Domain) tea.Cmd {
	if m.session == nil {
		m.snapshot.Active = d
		m.layout()
		return nil
	}
	m.session.SetActive(d)
	m.snapshot.Active = d
	m.prefs.Section = d.String()
	m.savePrefs()
	m.content.GotoTop()
	m.layout()
	return m.refresh()
}
