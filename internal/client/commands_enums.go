package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-biz-admin/internal/tui"
)

// listEnums prints the values of one enumeration. -raw prints the
// normalized payload as received.
func (a *App) listEnums(ctx context.Context, args []string) error {
	fs := newFlagSet("enums", a.out)
	raw := fs.Bool("raw", false, "print the payload as JSON")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: enums <TYPE>", ErrUsage)
	}
	enumType := strings.ToUpper(positional[0])

	if *raw {
		payload, err := a.services.CoreEnumService.GetByType(ctx, enumType)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, string(payload))
		return nil
	}

	values, err := a.services.CoreEnumService.ListByType(ctx, enumType)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{fmt.Sprint(v.ID), v.Code, v.Name, fmt.Sprint(v.SortOrder), fmt.Sprint(v.Active)})
	}
	fmt.Fprintln(a.out, tui.RenderTable([]string{"ID", "Code", "Name", "Order", "Active"}, rows))
	return nil
}
