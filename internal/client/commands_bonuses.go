package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-biz-admin/internal/tui"
	"github.com/MKhiriev/go-biz-admin/models"
)

var bonusHeaders = []string{"ID", "Employee", "Type", "Amount", "Currency", "Reason", "Awarded"}

func bonusRow(b models.Bonus) []string {
	employee := fmt.Sprint(b.EmployeeID)
	if b.EmployeeName != "" {
		employee += " " + b.EmployeeName
	}
	awarded := ""
	if !b.AwardedAt.IsZero() {
		awarded = b.AwardedAt.Format("2006-01-02")
	}
	return []string{
		fmt.Sprint(b.ID), employee, b.Type,
		strconv.FormatFloat(b.Amount, 'f', 2, 64), b.Currency, b.Reason, awarded,
	}
}

func (a *App) listBonuses(ctx context.Context, args []string) error {
	fs := newFlagSet("bonuses list", a.out)
	employee := fs.Int64("employee", 0, "only bonuses of this employee id")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	bonuses, err := a.services.BonusService.List(ctx, *employee)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(bonuses))
	for _, b := range bonuses {
		rows = append(rows, bonusRow(b))
	}
	fmt.Fprintln(a.out, tui.RenderTable(bonusHeaders, rows))
	return nil
}

func (a *App) createBonus(ctx context.Context, args []string) error {
	fs := newFlagSet("bonuses create", a.out)
	employee := fs.Int64("employee", 0, "employee id")
	amount := fs.Float64("amount", 0, "bonus amount")
	currency := fs.String("currency", "", "ISO 4217 currency code")
	bonusType := fs.String("type", "", "BONUS_TYPE code")
	reason := fs.String("reason", "", "free-form reason")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	bonus, err := a.services.BonusService.Create(ctx, models.Bonus{
		EmployeeID: *employee,
		Amount:     *amount,
		Currency:   *currency,
		Type:       *bonusType,
		Reason:     *reason,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, tui.RenderTable(bonusHeaders, [][]string{bonusRow(bonus)}))
	return nil
}

func (a *App) deleteBonus(ctx context.Context, args []string) error {
	fs := newFlagSet("bonuses delete", a.out)
	yes := fs.Bool("yes", false, "delete without asking")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	id, err := idArg("bonuses delete", positional)
	if err != nil {
		return err
	}

	if err = a.confirmDelete(fmt.Sprintf("bonus %d", id), *yes); err != nil {
		return err
	}
	if err = a.services.BonusService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Bonus %d deleted\n", id)
	return nil
}
