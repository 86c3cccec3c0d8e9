// Package quickpick holds the commands that manage the people offered when
// logging a laugh.
package quickpick

import (
	"strconv"
	"strings"

	"github.com/julianstephens/laughmeter/internal/cli"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/people"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	list, err := ctx.Journal.People()
	if err != nil {
		return err
	}
	if list.Len() == 0 {
		ctx.Println("No people saved. Add one with: laughmeter people add <name>")
		return nil
	}
	for i, name := range list.Names() {
		ctx.Printf("%2d. %s\n", i+1, name)
	}
	return nil
}

type AddCmd struct {
	Name string `arg:"" help:"Name to add."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	return update(ctx, func(list *people.List) (string, error) {
		if err := list.Add(c.Name); err != nil {
			return "", err
		}
		return "✓ Added " + strings.TrimSpace(c.Name), nil
	})
}

type RemoveCmd struct {
	Target string `arg:"" help:"Position (1-based) or name to remove."`
}

func (c *RemoveCmd) Run(ctx *cli.Context) error {
	return update(ctx, func(list *people.List) (string, error) {
		i, err := position(list, c.Target)
		if err != nil {
			return "", err
		}
		name := list.Names()[i]
		if err := list.Remove(i); err != nil {
			return "", err
		}
		return "✓ Removed " + name, nil
	})
}

type MoveCmd struct {
	Target string `arg:"" help:"Position (1-based) or name to move."`
	To     int    `arg:"" help:"New position (1-based)."`
}

func (c *MoveCmd) Run(ctx *cli.Context) error {
	return update(ctx, func(list *people.List) (string, error) {
		i, err := position(list, c.Target)
		if err != nil {
			return "", err
		}
		name := list.Names()[i]
		if err := list.Move(i, c.To-1); err != nil {
			return "", err
		}
		return "✓ Moved " + name + " to position " + strconv.Itoa(c.To), nil
	})
}

type RenameCmd struct {
	Target string `arg:"" help:"Position (1-based) or name to rename."`
	Name   string `arg:"" help:"New name."`
}

func (c *RenameCmd) Run(ctx *cli.Context) error {
	return update(ctx, func(list *people.List) (string, error) {
		i, err := position(list, c.Target)
		if err != nil {
			return "", err
		}
		old := list.Names()[i]
		if err := list.Rename(i, c.Name); err != nil {
			return "", err
		}
		return "✓ Renamed " + old + " to " + strings.TrimSpace(c.Name), nil
	})
}

// update loads the list, applies fn and saves the result.
func update(ctx *cli.Context, fn func(*people.List) (string, error)) error {
	list, err := ctx.Journal.People()
	if err != nil {
		return err
	}
	msg, err := fn(list)
	if err != nil {
		return err
	}
	if err := ctx.Journal.SavePeople(list); err != nil {
		return err
	}
	ctx.Println(msg)
	return nil
}

// position resolves a 1-based position or an exact name to an index.
func position(list *people.List, target string) (int, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(target)); err == nil {
		return n - 1, nil
	}
	if i := list.IndexOf(target); i >= 0 {
		return i, nil
	}
	return 0, apperrors.NewNotFound("person", target)
}
