package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-loading/pkg/orchestrator"
)

type scriptDriver struct {
	inputs        []string
	selectIdx     []int
	confirm       []bool
	selectErr     error
	infoMessages  []string
	selectConfigs []SelectConfig
	inputPos      int
	selectPos     int
	confirmPos    int
}

func (s *scriptDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *scriptDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *scriptDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.selectErr != nil {
		return 0, s.selectErr
	}
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	s.selectConfigs = append(s.selectConfigs, cfg)
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *scriptDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newTestPicker(t *testing.T, driver Driver) *Picker {
	t.Helper()
	picker, err := New(orchestrator.New(), WithDriver(driver))
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}
	return picker
}

func TestPicker_SelectsVariantAndRenderer(t *testing.T) {
	driver := &scriptDriver{
		selectIdx: []int{7, 2},
		confirm:   []bool{false},
		inputs:    []string{"Working on it", "Progress report"},
	}
	picker := newTestPicker(t, driver)

	req, err := picker.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if req.Variant != "ripple" {
		t.Fatalf("unexpected variant: %q", req.Variant)
	}
	if req.Renderer != "page" {
		t.Fatalf("unexpected renderer: %q", req.Renderer)
	}
	if req.Label != "Working on it" {
		t.Fatalf("unexpected label: %q", req.Label)
	}
	if req.Title != "Progress report" {
		t.Fatalf("unexpected title: %q", req.Title)
	}
	if req.Overrides != nil {
		t.Fatalf("expected no overrides, got %v", req.Overrides)
	}
	if req.Class != "" {
		t.Fatalf("expected generated class left to the orchestrator, got %q", req.Class)
	}

	if len(driver.selectConfigs) != 2 {
		t.Fatalf("expected two select prompts, got %d", len(driver.selectConfigs))
	}
	variantOptions := driver.selectConfigs[0].Options
	if variantOptions[0] != "Dual ring (dual_ring)" {
		t.Fatalf("catalog label not applied: %q", variantOptions[0])
	}
	if variantOptions[6] != "ring" {
		t.Fatalf("label matching the name should stay bare: %q", variantOptions[6])
	}
}

func TestPicker_CustomizeCollectsOverrides(t *testing.T) {
	driver := &scriptDriver{
		selectIdx: []int{0, 0},
		confirm:   []bool{true},
		inputs:    []string{"banana", "64", "#0f766e", "", "ld-live", ""},
	}
	picker := newTestPicker(t, driver)

	req, err := picker.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if req.Variant != "dual_ring" {
		t.Fatalf("unexpected variant: %q", req.Variant)
	}
	if req.Renderer != "fragment" {
		t.Fatalf("unexpected renderer: %q", req.Renderer)
	}
	if req.Class != "ld-live" {
		t.Fatalf("unexpected class: %q", req.Class)
	}
	if req.Title != "" {
		t.Fatalf("title should only be collected for the page renderer, got %q", req.Title)
	}

	want := map[string]any{
		"size":  64.0,
		"color": "#0f766e",
	}
	if diff := cmp.Diff(want, req.Overrides); diff != "" {
		t.Fatalf("overrides mismatch (-want +got):\n%s", diff)
	}

	if len(driver.infoMessages) != 1 || !strings.Contains(driver.infoMessages[0], "Invalid size") {
		t.Fatalf("expected one size validation message, got %v", driver.infoMessages)
	}
}

func TestPicker_InvalidSelectionRetries(t *testing.T) {
	driver := &scriptDriver{
		selectIdx: []int{-1, 6, 0},
		confirm:   []bool{false},
		inputs:    []string{""},
	}
	picker := newTestPicker(t, driver)

	req, err := picker.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if req.Variant != "ring" {
		t.Fatalf("unexpected variant after retry: %q", req.Variant)
	}
	if len(driver.infoMessages) != 1 || driver.infoMessages[0] != "Invalid selection" {
		t.Fatalf("expected retry message, got %v", driver.infoMessages)
	}
}

func TestPicker_AbortPropagates(t *testing.T) {
	driver := &scriptDriver{selectErr: ErrAborted}
	picker := newTestPicker(t, driver)

	_, err := picker.Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestNew_RequiresOrchestrator(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatalf("expected error for nil orchestrator")
	}
}
