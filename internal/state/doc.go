// Package state holds the per-session objects shared by the background
// refresher and the presentation layer.
//
// # Session
//
// A Session owns exactly one instance of every domain store from
// internal/stores, built at startup on top of a single api.Requester.
// The presentation layer reads Session.Snapshot on its own schedule; the
// refresher and key handlers call Refresh for one domain at a time.
//
//	Refresher / key handler:          UI:
//	  session.Refresh(ctx, d)           snap := session.Snapshot()
//	    store.FetchX(ctx, ...)            render(snap)
//	      tracker.Get(...)
//
// Each store guards its own fields with a mutex. A Snapshot copies them one
// store at a time, so two stores may reflect different refresh passes.
// Concurrent fetches on one store are last-write-wins.
//
// # Health
//
// Every request goes through a Tracker, which counts consecutive transport
// failures. The server answering with a non-2xx status or an undecodable
// body does not count as a failure. Health.IsOffline reports two or more
// failures in a row and drives the refresher's backoff and the offline
// badge.
package state
