package famfolio

import (
	"errors"
	"fmt"
	"log"
)

// ApplyPlan backfills one recurring plan up to 'today'. For every trading
// day strictly after the plan's cursor it synthesizes one buy at that day's
// close for the plan's fixed quantity, then advances the cursor to 'today'.
//
// The cursor advances to the check-in date, not to the last trading day
// found, so a run on a quiet weekend still resyncs the plan to now and the
// next run starts from there. Running twice on the same day is a no-op the
// second time: the cursor is already at 'today'.
func ApplyPlan(plan RecurringPlan, today Date, quotes Quotes) ([]Transaction, RecurringPlan, error) {
	cursor := plan.Cursor()
	if !cursor.Before(today) {
		return nil, plan, nil
	}

	candles, err := quotes.DailyPrices(plan.Ticker, cursor, today)
	if err != nil {
		return nil, plan, fmt.Errorf("plan %s/%s %s: %w", plan.Owner, plan.Account, plan.Ticker, err)
	}

	memo := plan.Memo
	if memo == "" {
		memo = "recurring buy"
	}
	var txs []Transaction
	for _, c := range candles {
		// The cursor day itself was applied by the previous run.
		if !c.Date.After(cursor) {
			continue
		}
		txs = append(txs, NewTransaction(plan.Owner, plan.Account, Buy, plan.Ticker, c.Date, c.Close, plan.Quantity, memo))
	}

	plan.LastApplied = today
	return txs, plan, nil
}

// ApplyPlans backfills every plan. A failing plan is skipped and reported,
// it never stops the rest of the batch; its cursor stays where it was so
// the next run retries the same gap. The updated plans are returned in the
// input order, and the joined error describes every skipped plan.
func ApplyPlans(plans []RecurringPlan, today Date, quotes Quotes) ([]Transaction, []RecurringPlan, error) {
	var all []Transaction
	updated := make([]RecurringPlan, 0, len(plans))
	var errs error

	for _, plan := range plans {
		txs, next, err := ApplyPlan(plan, today, quotes)
		if err != nil {
			log.Printf("recurring: skipping %v", err)
			errs = errors.Join(errs, err)
			updated = append(updated, plan)
			continue
		}
		all = append(all, txs...)
		updated = append(updated, next)
	}
	return all, updated, errs
}
