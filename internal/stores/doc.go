// Package stores holds one observable store per dashboard domain: meal
// kits, laundry supplies, home appliances, order statistics, the store
// list and users.
//
// Each store owns its lists and one Status (busy flag plus error slot) per
// fetch, and exposes Fetch operations plus a Snapshot that returns copies.
// A fetch touches only its own slot. Fetch
// operations never return errors: on failure the store logs the cause,
// resets the affected lists to empty and records a fixed user-facing
// message. An empty ranking is not a failure; it leaves an empty list and
// a message naming the period.
//
// Rankings are computed client side from the rows the endpoint returns:
// a stable descending sort on one metric, truncated to TopN.
package stores
