package tui_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/providers/staticmeta"
	"github.com/goliatone/go-formbuilder/pkg/tui"
)

type stubDriver struct {
	inputs    []string
	passwords []string
	confirms  []bool
	selects   []int
	multis    [][]int

	messages []string
}

func (d *stubDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	d.messages = append(d.messages, cfg.Message)
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *stubDriver) Password(_ context.Context, cfg tui.InputConfig) (string, error) {
	d.messages = append(d.messages, cfg.Message)
	out := d.passwords[0]
	d.passwords = d.passwords[1:]
	return out, nil
}

func (d *stubDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	d.messages = append(d.messages, cfg.Message)
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *stubDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	d.messages = append(d.messages, cfg.Message)
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func (d *stubDriver) MultiSelect(_ context.Context, cfg tui.SelectConfig) ([]int, error) {
	d.messages = append(d.messages, cfg.Message)
	out := d.multis[0]
	d.multis = d.multis[1:]
	return out, nil
}

func (d *stubDriver) Info(context.Context, string) error { return nil }

func testProvider() *staticmeta.Provider {
	return staticmeta.New(staticmeta.Definition{
		Name: "account",
		Columns: []model.Column{
			{Name: "email", Type: model.ColumnString},
			{Name: "password", Type: model.ColumnString},
			{Name: "admin", Type: model.ColumnBoolean},
		},
		Associations: []model.Association{
			{Name: "team", Macro: model.BelongsTo, Target: "teams", ForeignKey: "team_id"},
			{Name: "roles", Macro: model.HasMany, Target: "roles"},
		},
	})
}

func TestPreview_Run(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"ada@example.com"},
		passwords: []string{"s3cret"},
		confirms:  []bool{true},
	}
	preview, err := tui.NewPreview(testProvider(), tui.WithDriver(driver))
	if err != nil {
		t.Fatalf("construct preview: %v", err)
	}

	values, err := preview.Run(context.Background(), []string{"email", "password", "admin"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := map[string]any{
		"email":    "ada@example.com",
		"password": "s3cret",
		"admin":    true,
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	// email resolves to an email input, which still prompts as plain text;
	// password and boolean pick their dedicated prompts through the
	// message trail
	wantMessages := []string{"Email", "Password", "Admin?"}
	if diff := cmp.Diff(wantMessages, driver.messages); diff != "" {
		t.Fatalf("prompt messages mismatch (-want +got):\n%s", diff)
	}
}

func TestPreview_Association(t *testing.T) {
	source := staticmeta.NewSource(map[string][]model.Choice{
		"teams": {{Label: "Platform", Value: "1"}, {Label: "Growth", Value: "2"}},
		"roles": {{Label: "Admin", Value: "10"}, {Label: "Editor", Value: "20"}},
	})
	driver := &stubDriver{selects: []int{1}, multis: [][]int{{0, 1}}}
	preview, err := tui.NewPreview(testProvider(), tui.WithDriver(driver), tui.WithRecordSource(source))
	if err != nil {
		t.Fatalf("construct preview: %v", err)
	}

	picked, err := preview.Association(context.Background(), "team")
	if err != nil {
		t.Fatalf("belongs_to: %v", err)
	}
	if picked != "2" {
		t.Fatalf("belongs_to value = %v, want 2", picked)
	}

	many, err := preview.Association(context.Background(), "roles")
	if err != nil {
		t.Fatalf("has_many: %v", err)
	}
	if diff := cmp.Diff([]string{"10", "20"}, many); diff != "" {
		t.Fatalf("has_many values mismatch (-want +got):\n%s", diff)
	}
}

func TestPreview_UnknownAssociation(t *testing.T) {
	preview, err := tui.NewPreview(testProvider(), tui.WithDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("construct preview: %v", err)
	}
	if _, err := preview.Association(context.Background(), "ghosts"); err == nil {
		t.Fatal("expected error for unknown association")
	}
}

func TestNewPreview_NilProvider(t *testing.T) {
	if _, err := tui.NewPreview(nil); err == nil {
		t.Fatal("expected error for nil provider")
	}
}
