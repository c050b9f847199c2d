// Package store implements catalog.Repository. Store persists artist
// aggregates in Postgres through database/sql and the pgx driver; Memory keeps
// them in-process for local runs and tests.
package store
