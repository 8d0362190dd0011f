package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTradeButton_PressAnimates(t *testing.T) {
	b := NewTradeButton(Buy, testTheme())

	b, cmd := b.Press()
	if b.State() != StatePressed {
		t.Fatalf("state = %v, want StatePressed", b.State())
	}
	if cmd == nil {
		t.Fatal("Press should schedule an animation frame")
	}

	// Drive a few frames; press depth must move toward 1.
	prev := b.PressDepth()
	for i := 0; i < 10; i++ {
		b, _ = b.Update(ButtonFrameMsg{Side: Buy})
	}
	if b.PressDepth() <= prev {
		t.Errorf("press depth did not advance: %f -> %f", prev, b.PressDepth())
	}
	if b.PressDepth() > 1.5 {
		t.Errorf("press depth overshot badly: %f", b.PressDepth())
	}
}

func TestTradeButton_ReleaseSpringsBack(t *testing.T) {
	b := NewTradeButton(Sell, testTheme())
	b, _ = b.Press()
	for i := 0; i < 60; i++ {
		b, _ = b.Update(ButtonFrameMsg{Side: Sell})
	}
	pressed := b.PressDepth()

	b, cmd := b.Release()
	if b.State() != StateIdle {
		t.Fatalf("state = %v, want StateIdle", b.State())
	}
	if cmd == nil {
		t.Fatal("Release should schedule an animation frame")
	}
	for i := 0; i < 120; i++ {
		b, _ = b.Update(ButtonFrameMsg{Side: Sell})
	}
	if b.PressDepth() >= pressed {
		t.Errorf("press depth did not spring back: %f -> %f", pressed, b.PressDepth())
	}
}

func TestTradeButton_SettlesAndStopsTicking(t *testing.T) {
	b := NewTradeButton(Buy, testTheme())
	b, _ = b.Press()

	var cmd tea.Cmd
	for i := 0; i < 600; i++ {
		b, cmd = b.Update(ButtonFrameMsg{Side: Buy})
		if cmd == nil {
			break
		}
	}
	if cmd != nil {
		t.Error("spring never settled; button would tick forever")
	}
	if b.PressDepth() != 1 {
		t.Errorf("settled press depth = %f, want 1", b.PressDepth())
	}
}

func TestTradeButton_DisabledIgnoresPress(t *testing.T) {
	b := NewTradeButton(Buy, testTheme()).Disable()

	b, cmd := b.Press()
	if cmd != nil {
		t.Error("disabled button scheduled an animation frame")
	}
	if b.State() != StateDisabled {
		t.Errorf("state = %v, want StateDisabled", b.State())
	}

	b, _ = b.Update(ButtonFrameMsg{Side: Buy})
	if b.PressDepth() != 0 {
		t.Errorf("disabled button animated: depth %f", b.PressDepth())
	}
}

func TestTradeButton_EnableRestoresIdle(t *testing.T) {
	b := NewTradeButton(Sell, testTheme()).Disable().Enable()
	if b.State() != StateIdle {
		t.Errorf("state = %v, want StateIdle", b.State())
	}
	if _, cmd := b.Press(); cmd == nil {
		t.Error("re-enabled button should accept presses")
	}
}

func TestTradeButton_IgnoresOtherSidesFrames(t *testing.T) {
	b := NewTradeButton(Buy, testTheme())
	b, _ = b.Press()
	b, _ = b.Update(ButtonFrameMsg{Side: Sell})
	if b.PressDepth() != 0 {
		t.Error("buy button advanced on a sell frame")
	}
}

func TestTradeButton_Labels(t *testing.T) {
	buy := NewTradeButton(Buy, testTheme()).View()
	if !strings.Contains(buy, "BUY") {
		t.Error("buy button missing BUY label")
	}
	sell := NewTradeButton(Sell, testTheme()).View()
	if !strings.Contains(sell, "SELL") {
		t.Error("sell button missing SELL label")
	}
}
