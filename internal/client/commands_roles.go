package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-biz-admin/internal/tui"
	"github.com/MKhiriev/go-biz-admin/models"
)

var roleHeaders = []string{"ID", "Name", "Description", "Permissions"}

func roleRow(r models.Role) []string {
	return []string{fmt.Sprint(r.ID), r.Name, r.Description, strings.Join(r.Permissions, ", ")}
}

func (a *App) listRoles(ctx context.Context, _ []string) error {
	roles, err := a.services.RoleService.List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, roleRow(r))
	}
	fmt.Fprintln(a.out, tui.RenderTable(roleHeaders, rows))
	return nil
}

func (a *App) getRole(ctx context.Context, args []string) error {
	id, err := idArg("roles get", args)
	if err != nil {
		return err
	}

	role, err := a.services.RoleService.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, tui.RenderTable(roleHeaders, [][]string{roleRow(role)}))
	return nil
}

func (a *App) createRole(ctx context.Context, args []string) error {
	fs := newFlagSet("roles create", a.out)
	name := fs.String("name", "", "role name")
	description := fs.String("description", "", "role description")
	permissions := fs.String("permissions", "", "comma separated permissions")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	role, err := a.services.RoleService.Create(ctx, models.Role{
		Name:        *name,
		Description: *description,
		Permissions: splitList(*permissions),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, tui.RenderTable(roleHeaders, [][]string{roleRow(role)}))
	return nil
}

func (a *App) deleteRole(ctx context.Context, args []string) error {
	fs := newFlagSet("roles delete", a.out)
	yes := fs.Bool("yes", false, "delete without asking")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	id, err := idArg("roles delete", positional)
	if err != nil {
		return err
	}

	if err = a.confirmDelete(fmt.Sprintf("role %d", id), *yes); err != nil {
		return err
	}
	if err = a.services.RoleService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Role %d deleted\n", id)
	return nil
}
