package quickpick

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/laughmeter/internal/cli"
	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := cli.NewContext(store)
	out := &bytes.Buffer{}
	ctx.Out = out
	return ctx, out
}

func names(t *testing.T, ctx *cli.Context) string {
	t.Helper()
	list, err := ctx.Journal.People()
	if err != nil {
		t.Fatalf("failed to load people: %v", err)
	}
	return strings.Join(list.Names(), ",")
}

func TestListCmd_Defaults(t *testing.T) {
	ctx, out := setupTestDB(t)
	if err := (&ListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := " 1. Friends\n 2. Partner\n 3. Family\n 4. Work\n 5. Self\n"
	if out.String() != want {
		t.Errorf("list output = %q, want %q", out.String(), want)
	}
	if names(t, ctx) != strings.Join(constants.DefaultPeople, ",") {
		t.Errorf("defaults = %s", names(t, ctx))
	}
}

type runner interface {
	Run(*cli.Context) error
}

func TestPeopleCommands(t *testing.T) {
	ctx, out := setupTestDB(t)

	steps := []struct {
		name    string
		cmd     runner
		want    string
		wantOut string
	}{
		{"add trims", &AddCmd{Name: " Mum "}, "Friends,Partner,Family,Work,Self,Mum", "✓ Added Mum"},
		{"remove by position", &RemoveCmd{Target: "2"}, "Friends,Family,Work,Self,Mum", "✓ Removed Partner"},
		{"remove by name", &RemoveCmd{Target: "Self"}, "Friends,Family,Work,Mum", "✓ Removed Self"},
		{"move to front", &MoveCmd{Target: "Mum", To: 1}, "Mum,Friends,Family,Work", "✓ Moved Mum to position 1"},
		{"rename", &RenameCmd{Target: "4", Name: "Office"}, "Mum,Friends,Family,Office", "✓ Renamed Work to Office"},
	}
	for _, step := range steps {
		out.Reset()
		if err := step.cmd.Run(ctx); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		if got := names(t, ctx); got != step.want {
			t.Errorf("%s: people = %s, want %s", step.name, got, step.want)
		}
		if got := strings.TrimSpace(out.String()); got != step.wantOut {
			t.Errorf("%s: output = %q, want %q", step.name, got, step.wantOut)
		}
	}
}

func TestPeopleCommands_Errors(t *testing.T) {
	ctx, _ := setupTestDB(t)

	tests := []struct {
		name string
		cmd  runner
		code apperrors.ErrorCode
	}{
		{"duplicate", &AddCmd{Name: "Friends"}, apperrors.ErrConflict},
		{"blank", &AddCmd{Name: "   "}, apperrors.ErrInvalidInput},
		{"position out of range", &RemoveCmd{Target: "9"}, apperrors.ErrInvalidInput},
		{"unknown name", &RemoveCmd{Target: "Nobody"}, apperrors.ErrNotFound},
		{"move past end", &MoveCmd{Target: "1", To: 6}, apperrors.ErrInvalidInput},
		{"rename onto existing", &RenameCmd{Target: "1", Name: "Work"}, apperrors.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(ctx); !apperrors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}
	if got := names(t, ctx); got != strings.Join(constants.DefaultPeople, ",") {
		t.Errorf("failed commands changed the list: %s", got)
	}
}

func TestRemoveAll_StaysEmpty(t *testing.T) {
	ctx, out := setupTestDB(t)
	for range constants.DefaultPeople {
		if err := (&RemoveCmd{Target: "1"}).Run(ctx); err != nil {
			t.Fatalf("remove failed: %v", err)
		}
	}
	if got := names(t, ctx); got != "" {
		t.Errorf("people = %q, want empty", got)
	}
	out.Reset()
	if err := (&ListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No people saved") {
		t.Errorf("list output = %q", out.String())
	}
}
