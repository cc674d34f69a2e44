// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package feed delivers change notifications to clients watching results.

The contract is deliberately thin: an Event says which table changed and
how ("votes"/"insert"), never what the rows contain. On receipt a client
re-fetches and re-aggregates from a fresh full read; there is no
incremental update path. Dropped events are therefore harmless - the next
event triggers the same re-fetch.

Two implementations:

  - MemoryFeed: in-process hub; the default for single-node deployments
    and what the tests use.
  - RedisFeed: pub/sub over redis, so a vote accepted by any API node
    reaches subscribers connected to every node. Selected automatically
    when a redis address is configured.
*/
package feed
