package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/atomicstack/tui-popup-loop/internal/menu"
	"github.com/atomicstack/tui-popup-loop/internal/ui/command"
	"github.com/atomicstack/tui-popup-loop/internal/ui/popup"
)

func (m *Model) menuContext() menu.Context {
	return menu.Context{Bus: m.bus}
}

// actionMenu builds the popup listing the application's actions. Callbacks
// only enqueue signals, so their effects are applied on later iterations.
func (m *Model) actionMenu() *popup.ActionMenu {
	handlers := menu.ActionHandlers()
	ctx := m.menuContext()
	rootItems := menu.RootItems()
	items := make([]popup.Item, 0, len(rootItems))
	for _, item := range rootItems {
		req := command.Request{
			ID:      item.ID,
			Label:   item.Label,
			Handler: handlers[item.ID],
			Item:    item,
		}
		items = append(items, popup.Item{
			Shortcut: item.Shortcut,
			Title:    item.Label,
			Action:   m.commands.Execute(ctx, req),
		})
	}
	return popup.NewActionMenu(menu.Title, items)
}

func actionMenuHelp() []key.Binding {
	k := popup.DefaultActionKeys
	return []key.Binding{k.Up, k.Down, k.Select, k.Cancel}
}
