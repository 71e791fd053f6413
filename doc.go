// Package famfolio is the core of a family investment dashboard for the
// Korean market.
//
// The ledger is three hand-editable CSV tables: buy/sell transactions, cash
// deposits, and recurring-buy plans. Everything else is recomputed from
// them on demand: open positions with their average cost, per-account asset
// summaries, the daily invested/value/profit series, drawdown signals for a
// watchlist, and a snapshot that grounds the conversational mentor.
//
// Market data comes from a Quotes provider (see the krx subpackage for the
// live one). A computation pass wraps the provider in a Cache so each
// ticker is fetched once, and a failed fetch degrades only that ticker's
// values to zero instead of failing the whole report.
package famfolio
