package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/monster-codex/internal/pkg/pagination"
)

const appTitle = "MONSTER CODEX"

// MsgTruncated notes that filtering only sees the first batch
const MsgTruncated = "※ 絞り込みは先頭200件が対象です"

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.screen {
	case screenDetail:
		b.WriteString(m.renderDetailScreen())
	case screenAsk:
		b.WriteString(m.renderAsk())
	default:
		b.WriteString(m.renderList())
	}
	return b.String()
}

func (m *Model) renderHeader() string {
	title := m.styles.Title.Render(appTitle)
	theme := m.styles.Muted.Render(fmt.Sprintf("theme: %s", m.theme))
	if m.screen == screenList {
		return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", m.search.View(), "  ", theme)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", theme)
}

func (m *Model) renderList() string {
	var b strings.Builder
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(m.spinner.View() + " " + m.styles.Muted.Render(MsgLoading))
		b.WriteString("\n")
		return b.String()
	}

	if m.list == nil {
		return b.String()
	}

	if len(m.list.Monsters) == 0 {
		b.WriteString(m.styles.Muted.Render("該当するモンスターがいません"))
		b.WriteString("\n")
	}
	for i, mon := range m.list.Monsters {
		b.WriteString(m.renderRow(mon, i == m.selected))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.list.TotalItems > 0 {
		b.WriteString(m.styles.Muted.Render(m.list.Summary.String()))
		b.WriteString("\n")
	}
	if strip := m.renderPageStrip(m.list.Controls); strip != "" {
		b.WriteString(strip)
		b.WriteString("\n")
	}
	if m.list.Truncated {
		b.WriteString(m.styles.Muted.Render(MsgTruncated))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp(m.keys.listHelp()))
	return b.String()
}

func (m *Model) renderFilterBar() string {
	element := m.criteria.Element
	if element == "" {
		element = entities.ElementAll
	}
	sort := m.criteria.Sort
	if sort == "" {
		sort = entities.SortDefault
	}
	parts := []string{
		m.styles.Label.Render("属性:") + " " + element,
		m.styles.Label.Render("並び順:") + " " + sort.Label(),
	}
	if m.criteria.Active() {
		parts = append(parts, m.styles.Muted.Render("[r] リセット"))
	}
	return strings.Join(parts, "   ")
}

func (m *Model) renderRow(mon *entities.Monster, selected bool) string {
	cursor := "  "
	style := m.styles.Row
	if selected {
		cursor = "> "
		style = m.styles.Selected
	}
	line := fmt.Sprintf("%s%s", cursor, mon.Name)
	if mon.Species != "" {
		line += "  " + m.styles.Muted.Render(mon.Species)
	}
	line += "  " + strings.Join(entities.DisplayElements(mon.Elements), "/")
	line += "  " + m.styles.Stars.Render(fmt.Sprintf("危険度 %d", mon.ThreatLevel))
	return style.Render(line)
}

func (m *Model) renderPageStrip(items []pagination.Item) string {
	if len(items) == 0 {
		return ""
	}
	out := make([]string, 0, len(items)+2)
	if m.pager.HasPrev() {
		out = append(out, "‹")
	}
	for _, it := range items {
		if !it.Ellipsis && it.Page == m.pager.Current {
			out = append(out, m.styles.Current.Render(it.String()))
			continue
		}
		out = append(out, it.String())
	}
	if m.pager.HasNext() {
		out = append(out, "›")
	}
	return strings.Join(out, " ")
}

func (m *Model) renderDetailScreen() string {
	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("[esc] 一覧に戻る"))
		return b.String()
	}
	if m.loading || m.detail == nil {
		b.WriteString(m.spinner.View() + " " + m.styles.Muted.Render(MsgLoading))
		return b.String()
	}
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderHelp(m.keys.detailHelp()))
	return b.String()
}

func (m *Model) renderDetail() string {
	mon := m.detail
	if mon == nil {
		return ""
	}
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render(mon.Name))
	if mon.Title != "" {
		b.WriteString("  " + s.Subtitle.Render(mon.Title))
	}
	b.WriteString("\n")
	if m.source == catalog.SourceAI || m.source == catalog.SourceArchive {
		b.WriteString(s.Muted.Render("AI 調査記録"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(s.Label.Render(label) + " " + value + "\n")
	}
	field("種族", mon.Species)
	field("危険度", fmt.Sprintf("%d / %d", mon.ThreatLevel, entities.MaxThreatLevel))
	if mon.Size.Max > 0 {
		field("サイズ", fmt.Sprintf("%d - %d cm", mon.Size.Min, mon.Size.Max))
	}
	field("属性", strings.Join(entities.DisplayElements(mon.Elements), "、"))
	field("状態異常", strings.Join(mon.Ailments, "、"))
	field("生息地", strings.Join(mon.Habitats, "、"))
	field("称号", strings.Join(mon.Titles, "、"))

	if mon.Description != "" {
		b.WriteString("\n" + mon.Description + "\n")
	}

	if len(mon.Weaknesses) > 0 {
		b.WriteString("\n" + s.Label.Render("弱点") + "\n")
		for _, w := range mon.Weaknesses {
			b.WriteString(fmt.Sprintf("  %s %s\n", w.Element, s.Stars.Render(stars(w.Stars))))
		}
	}

	if len(mon.KeyDrops) > 0 {
		b.WriteString("\n" + s.Label.Render("主な素材") + "\n")
		for _, d := range mon.KeyDrops {
			b.WriteString(fmt.Sprintf("  %s  %s\n", d.Name, s.Muted.Render(fmt.Sprintf("RARE %d", d.Rarity))))
		}
	}

	if len(mon.Tips) > 0 {
		b.WriteString("\n" + s.Label.Render("攻略メモ") + "\n")
		for _, t := range mon.Tips {
			b.WriteString("  • " + t + "\n")
		}
	}

	if len(mon.BGM) > 0 {
		b.WriteString("\n" + s.Label.Render("BGM") + "\n")
		for _, t := range mon.BGM {
			b.WriteString("  ♪ " + t.Name + "\n")
		}
	}

	if len(mon.Ranking) > 0 {
		b.WriteString("\n" + s.Label.Render("人気投票") + "\n")
		for _, r := range mon.Ranking {
			b.WriteString(fmt.Sprintf("  %s: %s位\n", r.VoteYear, r.Ranking))
		}
	}
	return b.String()
}

func (m *Model) renderAsk() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render("AI に聞く"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("覚えている特徴を入力してください"))
	b.WriteString("\n\n")
	b.WriteString(m.question.View())
	b.WriteString("\n")
	if m.loading {
		b.WriteString("\n" + m.spinner.View() + " " + m.styles.Muted.Render(MsgLoading))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.errMsg))
	}
	b.WriteString("\n\n" + m.styles.Muted.Render("[enter] 送信  [esc] 閉じる"))
	return m.styles.Modal.Render(b.String())
}

func (m *Model) renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Muted.Render(strings.Join(parts, " • "))
}

func stars(n int) string {
	n = max(0, min(n, entities.MaxStars))
	return strings.Repeat("★", n) + strings.Repeat("☆", entities.MaxStars-n)
}
