package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-catalog-keeper/internal/service"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusList focusArea = iota
	focusForm
)

const (
	inputName = iota
	inputPrice
	inputCategory
	inputImageURL
	inputCount
)

// catalogModel is the single screen of the client: the live ordered list on
// top, the editable form below, overlays for delete confirmation. The form
// draft itself lives in the session service; the inputs here are only its
// editing surface and are pushed back via SetForm on every keystroke.
type catalogModel struct {
	ctx      context.Context
	services *service.ClientServices

	items []models.CatalogItem
	idx   int

	inputs []textinput.Model
	focus  int
	area   focusArea

	confirming  bool
	confirmName string

	submitting bool
	status     string
}

func newCatalogModel(ctx context.Context, services *service.ClientServices) catalogModel {
	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[inputName].Placeholder = "название"
	inputs[inputPrice].Placeholder = "цена"
	inputs[inputCategory].Placeholder = "категория"
	inputs[inputImageURL].Placeholder = "ссылка на изображение"

	return catalogModel{
		ctx:      ctx,
		services: services,
		items:    services.SyncService.Items(),
		inputs:   inputs,
	}
}

func (m catalogModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdWaitForUpdate())
}

func (m catalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotUpdatedMsg:
		m.items = m.services.SyncService.Items()
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, m.cmdWaitForUpdate()

	case updatesClosedMsg:
		return m, nil

	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			// черновик и ошибка остаются у сервиса, форму не трогаем
			return m, nil
		}
		m.status = "Запись сохранена"
		m.loadForm(m.services.SessionService.Form())
		m.toList()
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			return m, nil
		}
		m.status = "Запись удалена"
		m.loadForm(m.services.SessionService.Form())
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if m.confirming {
		return m.updateConfirm(keyMsg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.area == focusForm {
		return m.updateForm(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m catalogModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit

	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}

	case key.Matches(keyMsg, keys.newItem):
		m.services.SessionService.BeginCreate()
		m.loadForm(m.services.SessionService.Form())
		m.toForm()

	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.edit):
		item, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		if err := m.services.SessionService.BeginEdit(item.ID); err != nil {
			return m, nil
		}
		m.loadForm(m.services.SessionService.Form())
		m.toForm()

	case key.Matches(keyMsg, keys.delete):
		item, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		if err := m.services.SessionService.RequestDelete(item.ID); err != nil {
			return m, nil
		}
		m.confirming = true
		m.confirmName = item.Name

	case key.Matches(keyMsg, keys.copy):
		item, ok := m.current()
		if !ok || item.ImageURL == "" {
			m.status = "Нечего копировать"
			return m, nil
		}
		if err := clipboard.WriteAll(item.ImageURL); err != nil {
			m.status = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Скопировано"

	case key.Matches(keyMsg, keys.tab):
		m.toForm()

	case key.Matches(keyMsg, keys.esc):
		m.status = ""
		m.services.FailureState.Clear()
	}

	return m, nil
}

func (m catalogModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.services.SessionService.Cancel()
		m.loadForm(m.services.SessionService.Form())
		m.toList()
		return m, nil

	case "tab":
		m.setFocus((m.focus + 1) % inputCount)
		return m, nil

	case "shift+tab":
		m.setFocus((m.focus + inputCount - 1) % inputCount)
		return m, nil

	case "enter":
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		m.status = ""
		return m, m.cmdSubmit()
	}

	return m.updateInputs(keyMsg)
}

func (m catalogModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirming = false
		return m, m.cmdResolveDelete(true)

	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.confirming = false
		// отказ ничего не отправляет на сервер
		_ = m.services.SessionService.ResolveDelete(m.ctx, false)
		return m, nil
	}

	return m, nil
}

func (m catalogModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.area != focusForm {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.services.SessionService.SetForm(m.formState())
	return m, cmd
}

// ── commands ────────────────────────────────────────────────────────────────

func (m catalogModel) cmdWaitForUpdate() tea.Cmd {
	ctx := m.ctx
	updates := m.services.SyncService.Updates()

	return func() tea.Msg {
		select {
		case <-updates:
			return snapshotUpdatedMsg{}
		case <-ctx.Done():
			return updatesClosedMsg{}
		}
	}
}

func (m catalogModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		return submitDoneMsg{err: svc.Submit(ctx)}
	}
}

func (m catalogModel) cmdResolveDelete(confirmed bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService

	return func() tea.Msg {
		return deleteDoneMsg{err: svc.ResolveDelete(ctx, confirmed)}
	}
}

// ── state helpers ───────────────────────────────────────────────────────────

func (m catalogModel) current() (models.CatalogItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.CatalogItem{}, false
	}
	return m.items[m.idx], true
}

func (m catalogModel) formState() models.FormState {
	return models.FormState{
		Name:     m.inputs[inputName].Value(),
		Price:    m.inputs[inputPrice].Value(),
		Category: m.inputs[inputCategory].Value(),
		ImageURL: m.inputs[inputImageURL].Value(),
	}
}

func (m *catalogModel) loadForm(form models.FormState) {
	m.inputs[inputName].SetValue(form.Name)
	m.inputs[inputPrice].SetValue(form.Price)
	m.inputs[inputCategory].SetValue(form.Category)
	m.inputs[inputImageURL].SetValue(form.ImageURL)
}

func (m *catalogModel) toForm() {
	m.area = focusForm
	m.status = ""
	m.setFocus(inputName)
}

func (m *catalogModel) toList() {
	m.area = focusList
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *catalogModel) setFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// ── view ────────────────────────────────────────────────────────────────────

func (m catalogModel) View() string {
	if m.confirming {
		return confirmModel{message: m.confirmName}.View()
	}

	out := m.viewList()
	out += "\n"
	out += m.viewForm()

	if failure := m.services.FailureState.Failure(); failure != nil {
		out += "\n" + errorStyle.Render("Ошибка: "+failureMessage(failure)) + "\n"
	} else if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	hotKeys := "n: новая │ enter: изм. │ ctrl+d: уд. │ c: копия ссылки │ tab: форма │ ↑/↓: нав."
	if m.area == focusForm {
		hotKeys = "esc: к списку │ tab: след. поле │ enter: сохранить"
	}

	return renderPage("КАТАЛОГ", strings.TrimRight(out, "\n"), hotKeys)
}

func (m catalogModel) viewList() string {
	if len(m.items) == 0 {
		return "Записей нет\n"
	}

	out := "Наименование             │ Цена       │ Категория\n"
	out += "─────────────────────────┼────────────┼────────────────\n"
	for i, item := range m.items {
		cursor := " "
		if i == m.idx && m.area == focusList {
			cursor = ">"
		}

		out += fmt.Sprintf(
			"%s %-23s │ %10.2f │ %s\n",
			cursor,
			fitText(item.Name, 23),
			item.Price,
			fitText(item.Category, 16),
		)
	}

	return out
}

func (m catalogModel) viewForm() string {
	title := "Новая запись"
	if m.services.SessionService.Phase() == models.PhaseEdit {
		title = "Редактирование: " + fitText(m.inputs[inputName].Value(), 24)
	}

	out := title + "\n"
	out += "Название:    [" + m.inputs[inputName].View() + "]\n"
	out += "Цена:        [" + m.inputs[inputPrice].View() + "]\n"
	out += "Категория:   [" + m.inputs[inputCategory].View() + "]\n"
	out += "Изображение: [" + m.inputs[inputImageURL].View() + "]\n"
	if m.submitting {
		out += "Действие     [Сохранение...]\n"
	}

	return out
}

func failureMessage(failure *models.Failure) string {
	if failure.Kind == models.FailureTransport {
		return humanizeServerUnavailableError(failure.Message)
	}
	return failure.Message
}
